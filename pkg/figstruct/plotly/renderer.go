// Package plotly builds plotly figure JSON from a scene, including 3D
// scenes for 3D axes.
package plotly

import (
	"errors"
	"strings"

	"go.uber.org/multierr"

	"github.com/ukaji3/figstruct-go/pkg/figstruct/models"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/parser"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/scene"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/walker"
)

// Renderer accumulates a plotly figure during a walk. A Renderer is used
// for a single export.
type Renderer struct {
	parser *parser.Parser
	raster parser.RasterMode

	fig       *models.PlotlyFigure
	numAxes   int
	xBounds   parser.Extent
	yBounds   parser.Extent
	axesCount int
	current   *axesState

	// errs collects the per-axes errors that did not abort the walk.
	errs error
}

// axesState is the layout of the axes being walked.
type axesState struct {
	n int
	// xDates converts x values to date strings on date axes.
	xDates  scene.DateConverter
	xaxis   *models.AxisRecord
	yaxis   *models.AxisRecord
	scene   *models.SceneRecord
	domainX models.Range
	domainY models.Range
}

// NewRenderer returns a renderer using p for primitive conversion.
func NewRenderer(p *parser.Parser, raster parser.RasterMode) *Renderer {
	return &Renderer{parser: p, raster: raster}
}

// Render walks fig with the 2D handlers and the 3D overrides. Axes that
// fail with ErrUnsupportedScale are left out; their errors are returned
// together with the figure. Any other error aborts the export and the
// figure is nil.
func Render(fig scene.Figure, p *parser.Parser, raster parser.RasterMode) (*models.PlotlyFigure, error) {
	r := NewRenderer(p, raster)
	if err := walker.Walk(fig, r.Handlers()); err != nil {
		return nil, err
	}
	return r.Figure(), r.Err()
}

// Figure returns the figure built so far.
func (r *Renderer) Figure() *models.PlotlyFigure {
	return r.fig
}

// Err returns the aggregated per-axes errors, nil if there were none.
func (r *Renderer) Err() error {
	return r.errs
}

// Handlers returns the 2D handlers with the 3D overrides applied.
func (r *Renderer) Handlers() walker.Handlers {
	return walker.Override(r.BaseHandlers(), r.Overrides3D())
}

// BaseHandlers returns the handlers drawing 2D axes.
func (r *Renderer) BaseHandlers() walker.Handlers {
	return walker.Handlers{
		OpenFigure:      r.openFigure,
		CloseAxes:       r.closeAxes,
		OpenAxes:        r.openAxes,
		Label:           r.label,
		Line:            r.line,
		LineCollection:  r.lineCollection,
		PointCollection: r.pointCollection,
		Image:           r.image,
	}
}

func (r *Renderer) openFigure(fig scene.Figure) error {
	r.fig = models.NewPlotlyFigure()
	r.numAxes = len(fig.Axes())
	r.xBounds, r.yBounds = parser.UnionBounds(fig.Axes())

	w, h := fig.Size()
	width := parser.InchesToPixels(w, fig.DPI())
	height := parser.InchesToPixels(h, fig.DPI())
	r.fig.Layout.Width = width
	r.fig.Layout.Height = height
	r.fig.Layout.AutoSize = false
	r.fig.Layout.HoverMode = "closest"
	r.fig.Layout.Margin = models.Margin{
		L: parser.FractionToPixels(r.xBounds[0], width),
		R: parser.FractionToPixels(1-r.xBounds[1], width),
		T: parser.FractionToPixels(1-r.yBounds[1], height),
		B: parser.FractionToPixels(r.yBounds[0], height),
	}
	if title := fig.SupTitle(); title != "" {
		r.fig.Layout.Title = &models.LayoutTitle{Text: title}
	}
	return nil
}

// beginAxes reserves the next axes number. The number is only taken by
// commitAxes, so skipped axes leave no gap in the layout keys.
func (r *Renderer) beginAxes() *axesState {
	r.current = &axesState{n: r.axesCount + 1}
	return r.current
}

func (r *Renderer) commitAxes(ax *walker.AxesContext, st *axesState) {
	r.axesCount = st.n
	if ax.Axes.HasLegend() {
		r.fig.Layout.ShowLegend = true
	}
}

// fail records err for the axes. Unsupported scales skip the axes and the
// walk continues; anything else aborts it.
func (r *Renderer) fail(ax *walker.AxesContext, component string, err error) error {
	xerr := parser.NewExtractionError(ax.Index, component, err)
	if errors.Is(err, parser.ErrUnsupportedScale) {
		r.parser.Log.Warn().Err(err).Int("axes", ax.Index).Msg("skipping axes")
		r.errs = multierr.Append(r.errs, xerr)
		return walker.SkipAxes
	}
	return xerr
}

func (r *Renderer) openAxes(ax *walker.AxesContext) error {
	st := r.beginAxes()
	x, y, err := r.parser.BuildXYAxes(ax.Axes, r.xBounds, r.yBounds)
	if err != nil {
		return r.fail(ax, "axes", err)
	}
	x.Anchor, y.Anchor = YRef(st.n), XRef(st.n)
	st.xaxis, st.yaxis = &x, &y
	st.domainX, st.domainY = *x.Domain, *y.Domain
	if x.Type == string(parser.ScaleDate) {
		st.xDates = ax.Axes.XAxis().Converter()
	}
	r.fig.Layout.Axes[XAxisKey(st.n)] = st.xaxis
	r.fig.Layout.Axes[YAxisKey(st.n)] = st.yaxis
	r.commitAxes(ax, st)
	return nil
}

func (r *Renderer) closeAxes(*walker.AxesContext) error {
	r.current = nil
	return nil
}

func textFont(t scene.Text) *models.Font {
	size := models.Float(t.FontSize())
	return &models.Font{Size: &size, Color: parser.ToHex(t.Color(), false)}
}

func (r *Renderer) label(_ *walker.AxesContext, kind walker.LabelKind, text scene.Text) error {
	switch kind {
	case walker.LabelTitle:
		r.title(text)
	case walker.LabelX:
		parser.ApplyLabel(r.current.xaxis, text)
	case walker.LabelY:
		parser.ApplyLabel(r.current.yaxis, text)
	}
	return nil
}

// title places an axes title. A lone axes without a figure title uses the
// layout title; otherwise the title is an annotation above the axes.
func (r *Renderer) title(text scene.Text) {
	if text.Text() == "" {
		return
	}
	if r.numAxes == 1 && r.fig.Layout.Title == nil {
		r.fig.Layout.Title = &models.LayoutTitle{Text: text.Text(), Font: textFont(text)}
		return
	}
	st := r.current
	r.fig.Layout.Annotations = append(r.fig.Layout.Annotations, models.Annotation{
		Text:      text.Text(),
		X:         (st.domainX[0] + st.domainX[1]) / 2,
		Y:         st.domainY[1],
		XRef:      "paper",
		YRef:      "paper",
		XAnchor:   "center",
		YAnchor:   "bottom",
		ShowArrow: false,
		Font:      textFont(text),
	})
}

// traceName hides labels the host keeps out of legends.
func traceName(label string) string {
	if strings.HasPrefix(label, "_") {
		return ""
	}
	return label
}
