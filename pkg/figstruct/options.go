// Package figstruct extracts a renderer-agnostic description of a plotted
// figure and publishes it to a remote viewer.
package figstruct

import (
	"github.com/rs/zerolog"

	"github.com/ukaji3/figstruct-go/pkg/figstruct/parser"
)

// Schema represents the output schema of an export.
type Schema string

const (
	// SchemaFlat is the flat figure record read by the viewer's own plots.
	SchemaFlat Schema = "flat"
	// SchemaPlotly is a plotly figure, with a scene per 3D axes.
	SchemaPlotly Schema = "plotly"
)

// Options configures export behavior.
type Options struct {
	// Schema specifies the output schema (flat, plotly).
	Schema Schema
	// Raster specifies how image values are mapped to bytes.
	// If empty, defaults to parser.RasterAuto.
	Raster parser.RasterMode
	// Logger receives warnings. If nil, nothing is logged.
	Logger *zerolog.Logger
	// AllowPartial specifies whether axes failing with an unsupported
	// scale are left out instead of failing the export.
	// If nil, defaults to true.
	AllowPartial *bool
}

// DefaultOptions returns default export options.
func DefaultOptions() Options {
	return Options{
		Schema: SchemaFlat,
		Raster: parser.RasterAuto,
	}
}

// ShouldAllowPartial returns whether failing axes are left out.
func (o Options) ShouldAllowPartial() bool {
	if o.AllowPartial != nil {
		return *o.AllowPartial
	}
	return true
}

// RasterMode returns the raster mode, defaulting to parser.RasterAuto.
func (o Options) RasterMode() parser.RasterMode {
	if o.Raster == "" {
		return parser.RasterAuto
	}
	return o.Raster
}

// Log returns the configured logger, or a disabled one.
func (o Options) Log() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}
