package figstruct

import (
	"fmt"

	"github.com/ukaji3/figstruct-go/pkg/figstruct/models"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/parser"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/plotly"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/scene"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/state"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/walker"
)

// Result is the outcome of an export. Exactly one of Flat and Plotly is
// set, matching the requested schema.
type Result struct {
	Schema Schema
	Flat   *models.FigureRecord
	Plotly *models.PlotlyFigure
	// Skipped holds the errors of axes left out of a partial export.
	Skipped error
}

// Record returns the record to serialize.
func (r *Result) Record() any {
	if r.Schema == SchemaPlotly {
		return r.Plotly
	}
	return r.Flat
}

// Export extracts fig in the schema selected by opts. Records are built
// fresh on every call and fig is only read.
func Export(fig scene.Figure, opts Options) (*Result, error) {
	log := opts.Log()
	p := parser.New(log)

	switch opts.Schema {
	case SchemaFlat, "":
		rec, err := state.Build(fig, p, opts.RasterMode())
		if err != nil {
			return nil, fmt.Errorf("export figure %d: %w", fig.Number(), err)
		}
		return &Result{Schema: SchemaFlat, Flat: rec}, nil

	case SchemaPlotly:
		r := plotly.NewRenderer(p, opts.RasterMode())
		if err := walker.Walk(fig, r.Handlers()); err != nil {
			return nil, fmt.Errorf("export figure %d: %w", fig.Number(), err)
		}
		res := &Result{Schema: SchemaPlotly, Plotly: r.Figure(), Skipped: r.Err()}
		if res.Skipped != nil {
			if !opts.ShouldAllowPartial() {
				return nil, fmt.Errorf("export figure %d: %w", fig.Number(), res.Skipped)
			}
			log.Warn().Err(res.Skipped).Int("figure", fig.Number()).Msg("partial export")
		}
		return res, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSchema, opts.Schema)
	}
}
