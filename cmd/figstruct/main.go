// Package main provides the CLI entry point for figstruct-go.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ukaji3/figstruct-go/pkg/figstruct"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/config"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/models"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/output"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/parser"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/scene/memory"
)

var (
	configPath string
	outputPath string
	pretty     bool
	schema     string
	raster     string
	transport  string
	url        string
	axesDir    string
	xlsxPath   string
	logLevel   string
	logFormat  string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "figstruct [figure.yaml...]",
		Short: "Extract structured data from plotted figures",
		Long: `figstruct-go extracts a renderer-agnostic description of figures (axes,
series, images, 3D scenes) and publishes it to a viewer as JSON.`,
		Args:          cobra.MinimumNArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "Config file (.yaml, .yml or .toml)")
	flags.StringVarP(&outputPath, "output", "o", "", "Write the JSON records to this file instead of sending them")
	flags.BoolVar(&pretty, "pretty", false, "Pretty-print JSON files")
	flags.StringVar(&schema, "schema", "flat", "Output schema: flat, plotly")
	flags.StringVar(&raster, "raster", "auto", "Raster value mapping: auto, raw")
	flags.StringVar(&transport, "transport", "stdout", "Viewer transport: stdout, file, websocket")
	flags.StringVar(&url, "url", "", "Websocket URL, or file path for the file transport")
	flags.StringVar(&axesDir, "axes-dir", "", "Directory for per-axes output files")
	flags.StringVar(&xlsxPath, "xlsx", "", "Write the series to an xlsx workbook")
	flags.StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "console", "Log format: console, json")
	return rootCmd
}

// loadConfig reads the config file and applies the flags set on the
// command line.
func loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}
	overrides := []struct {
		flag string
		dst  *string
		val  string
	}{
		{"schema", &cfg.Export.Schema, schema},
		{"raster", &cfg.Export.Raster, raster},
		{"axes-dir", &cfg.Export.AxesDir, axesDir},
		{"xlsx", &cfg.Export.XLSXPath, xlsxPath},
		{"transport", &cfg.Transport.Kind, transport},
		{"log-level", &cfg.Log.Level, logLevel},
		{"log-format", &cfg.Log.Format, logFormat},
	}
	for _, o := range overrides {
		if flags.Changed(o.flag) {
			*o.dst = o.val
		}
	}
	if flags.Changed("pretty") {
		cfg.Export.Pretty = pretty
	}
	if flags.Changed("url") {
		if cfg.Transport.Kind == "file" {
			cfg.Transport.Path = url
		} else {
			cfg.Transport.URL = url
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg config.LogConfig, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level: %w", err)
	}
	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// newSender opens the viewer transport. The returned close function is
// never nil.
func newSender(cfg config.TransportConfig) (output.Sender, func() error, error) {
	switch cfg.Kind {
	case "file":
		f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open transport file: %w", err)
		}
		return output.WriterSender{W: f}, f.Close, nil
	case "websocket":
		wait, err := cfg.WriteTimeout()
		if err != nil {
			return nil, nil, err
		}
		s := output.NewWebSocketSender(cfg.URL)
		s.WriteWait = wait
		return s, s.Close, nil
	default:
		return output.WriterSender{W: os.Stdout}, func() error { return nil }, nil
	}
}

func exportOptions(cfg *config.Config, log *zerolog.Logger) figstruct.Options {
	allow := cfg.Export.AllowPartial
	return figstruct.Options{
		Schema:       figstruct.Schema(cfg.Export.Schema),
		Raster:       parser.RasterMode(cfg.Export.Raster),
		Logger:       log,
		AllowPartial: &allow,
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	log, err := newLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	opts := exportOptions(cfg, &log)

	// Load figures
	figs := make([]*memory.Figure, 0, len(args))
	for _, path := range args {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", path)
		}
		fig, err := memory.LoadFile(path)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		figs = append(figs, fig)
	}

	// Write records to a file, or publish them to the viewer
	if outputPath != "" {
		if err := writeRecords(figs, opts, cfg.Export.Pretty); err != nil {
			return err
		}
	} else {
		sender, closeSender, err := newSender(cfg.Transport)
		if err != nil {
			return err
		}
		reg := figstruct.NewRegistry()
		for _, fig := range figs {
			c := figstruct.NewCanvas(fig, sender, opts)
			c.Command = output.Command{Prefix: cfg.Transport.Prefix, Name: cfg.Transport.Command}
			reg.Add(c)
		}
		showErr := reg.Show(context.Background())
		if err := closeSender(); err != nil && showErr == nil {
			showErr = err
		}
		if showErr != nil {
			return fmt.Errorf("publishing failed: %w", showErr)
		}
	}

	// Flat records feed the per-axes files and the workbook
	if cfg.Export.AxesDir == "" && cfg.Export.XLSXPath == "" {
		return nil
	}
	flatOpts := opts
	flatOpts.Schema = figstruct.SchemaFlat
	for _, fig := range figs {
		res, err := figstruct.Export(fig, flatOpts)
		if err != nil {
			return fmt.Errorf("extraction failed: %w", err)
		}
		if cfg.Export.AxesDir != "" {
			if err := output.WriteAxesFiles(res.Flat, cfg.Export.AxesDir, cfg.Export.Pretty); err != nil {
				return fmt.Errorf("failed to write axes files: %w", err)
			}
		}
		if cfg.Export.XLSXPath != "" {
			path := workbookPath(cfg.Export.XLSXPath, res.Flat, len(figs))
			if err := output.WriteXLSX(res.Flat, path); err != nil {
				return fmt.Errorf("failed to write workbook: %w", err)
			}
		}
	}
	return nil
}

// writeRecords writes one JSON record, or a list of records when several
// figures were given.
func writeRecords(figs []*memory.Figure, opts figstruct.Options, pretty bool) error {
	records := make([]any, 0, len(figs))
	for _, fig := range figs {
		res, err := figstruct.Export(fig, opts)
		if err != nil {
			return fmt.Errorf("extraction failed: %w", err)
		}
		records = append(records, res.Record())
	}
	var v any = records
	if len(records) == 1 {
		v = records[0]
	}
	jsonData, err := output.ToJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// workbookPath numbers the workbook by figure when several are written.
func workbookPath(path string, rec *models.FigureRecord, count int) string {
	if count <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s_figure%d%s", strings.TrimSuffix(path, ext), rec.ID, ext)
}
