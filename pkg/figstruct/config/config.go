// Package config handles figstruct configuration loading.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig indicates a configuration value out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the root configuration structure.
type Config struct {
	Export    ExportConfig    `yaml:"export" toml:"export"`
	Transport TransportConfig `yaml:"transport" toml:"transport"`
	Log       LogConfig       `yaml:"log" toml:"log"`
}

// ExportConfig holds export settings.
type ExportConfig struct {
	// Schema is flat or plotly.
	Schema string `yaml:"schema" toml:"schema"`
	Pretty bool   `yaml:"pretty" toml:"pretty"`
	// Raster is auto or raw.
	Raster string `yaml:"raster" toml:"raster"`
	// AllowPartial leaves out axes with unsupported scales.
	AllowPartial bool `yaml:"allow_partial" toml:"allow_partial"`
	// XLSXPath, if set, also writes the series to a workbook.
	XLSXPath string `yaml:"xlsx_path" toml:"xlsx_path"`
	// AxesDir, if set, also writes one JSON file per axes.
	AxesDir string `yaml:"axes_dir" toml:"axes_dir"`
}

// TransportConfig holds the viewer channel settings.
type TransportConfig struct {
	// Kind is stdout, file or websocket.
	Kind string `yaml:"kind" toml:"kind"`
	Path string `yaml:"path" toml:"path"`
	URL  string `yaml:"url" toml:"url"`
	// Timeout is the websocket write deadline as a duration string.
	Timeout string `yaml:"timeout" toml:"timeout"`
	// Prefix and Command introduce each payload line.
	Prefix  string `yaml:"prefix" toml:"prefix"`
	Command string `yaml:"command" toml:"command"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
	// Format is console or json.
	Format string `yaml:"format" toml:"format"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Export: ExportConfig{
			Schema:       "flat",
			Raster:       "auto",
			AllowPartial: true,
		},
		Transport: TransportConfig{
			Kind:    "stdout",
			Timeout: "10s",
			Prefix:  "deepforge-cmd",
			Command: "PLOT",
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load loads configuration from a .yaml, .yml or .toml file on top of the
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault loads config from path, or returns the defaults if path is
// empty.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	checks := []struct {
		name, value string
		allowed     []string
	}{
		{"export.schema", c.Export.Schema, []string{"flat", "plotly"}},
		{"export.raster", c.Export.Raster, []string{"auto", "raw"}},
		{"transport.kind", c.Transport.Kind, []string{"stdout", "file", "websocket"}},
		{"log.format", c.Log.Format, []string{"console", "json"}},
	}
	for _, ch := range checks {
		if !slices.Contains(ch.allowed, ch.value) {
			return fmt.Errorf("%w: %s must be one of %s, got %q",
				ErrInvalidConfig, ch.name, strings.Join(ch.allowed, ", "), ch.value)
		}
	}
	switch c.Transport.Kind {
	case "file":
		if c.Transport.Path == "" {
			return fmt.Errorf("%w: transport.path is required for file transport", ErrInvalidConfig)
		}
	case "websocket":
		if c.Transport.URL == "" {
			return fmt.Errorf("%w: transport.url is required for websocket transport", ErrInvalidConfig)
		}
	}
	if c.Transport.Prefix == "" || c.Transport.Command == "" {
		return fmt.Errorf("%w: transport.prefix and transport.command must be set", ErrInvalidConfig)
	}
	_, err := c.Transport.WriteTimeout()
	return err
}

// WriteTimeout parses the transport timeout.
func (t TransportConfig) WriteTimeout() (time.Duration, error) {
	d, err := time.ParseDuration(t.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: transport.timeout: %v", ErrInvalidConfig, err)
	}
	return d, nil
}
