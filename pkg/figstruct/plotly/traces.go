package plotly

import (
	"seehuhn.de/go/geom/vec"

	"github.com/ukaji3/figstruct-go/pkg/figstruct/models"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/parser"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/scene"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/walker"
)

// traceMode combines the line and marker parts of a trace. It is empty when
// neither is drawn.
func traceMode(line *models.LineStyle, marker *models.MarkerStyle) string {
	switch {
	case line != nil && marker != nil:
		return "lines+markers"
	case line != nil:
		return "lines"
	case marker != nil:
		return "markers"
	}
	return ""
}

func lineStyle(l scene.Line) *models.LineStyle {
	if !parser.HasLine(l.LineStyle()) {
		return nil
	}
	return &models.LineStyle{
		Color: parser.MergeColorAndOpacity(l.Color(), l.Alpha()),
		Width: models.Float(l.LineWidth()),
		Dash:  parser.ConvertDash(l.LineStyle()),
	}
}

func markerStyle(l scene.Line, symbol func(string) string) *models.MarkerStyle {
	if !parser.HasMarker(l.Marker()) {
		return nil
	}
	m := &models.MarkerStyle{
		Color:  models.Batch[string]{parser.ToHex(l.MarkerFaceColor(), false)},
		Symbol: models.Batch[string]{symbol(l.Marker())},
		Size:   models.Batch[models.Float]{models.Float(l.MarkerSize())},
		Line: &models.MarkerLine{
			Color: models.Batch[string]{parser.ToHex(l.MarkerEdgeColor(), false)},
			Width: models.Batch[models.Float]{models.Float(l.MarkerEdgeWidth())},
		},
	}
	if a := l.Alpha(); a != nil {
		opacity := models.Float(*a)
		m.Opacity = &opacity
	}
	return m
}

// collectionMarker styles the markers of a point batch.
func collectionMarker(raw scene.PathCollection, c *parser.Collection, symbol func(string) string) *models.MarkerStyle {
	symbols := make(models.Batch[string], len(c.Paths))
	for i, p := range c.Paths {
		symbols[i] = symbol(parser.PathMarker(p.Codes))
	}
	return &models.MarkerStyle{
		Color:  rgbaBatch(raw.FaceColors()),
		Symbol: symbols,
		Size:   parser.ConvertSizes(raw.Sizes()),
		Line: &models.MarkerLine{
			Color: rgbaBatch(raw.EdgeColors()),
			Width: c.LineWidths,
		},
	}
}

func rgbaBatch(cs []scene.Color) models.Batch[string] {
	out := make(models.Batch[string], len(cs))
	for i, c := range cs {
		out[i] = parser.RGBAString(c, c.A)
	}
	return out
}

// xValues renders x coordinates as numbers, or as date strings on date
// axes.
func (st *axesState) xValues(xs []float64) []any {
	out := make([]any, len(xs))
	if st.xDates != nil {
		for i, s := range parser.DateStrings(st.xDates, xs) {
			out[i] = s
		}
		return out
	}
	for i, x := range xs {
		out[i] = models.Float(x)
	}
	return out
}

func split(pts []vec.Vec2) (xs, ys []float64) {
	xs = make([]float64, len(pts))
	ys = make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}

func (r *Renderer) line(ax *walker.AxesContext, item walker.LineItem) error {
	l := item.Line
	res, err := r.parser.Resolve(l.Transform(), ax.Refs, l.XYData(), nil)
	if err != nil {
		return parser.NewExtractionError(ax.Index, "line", err)
	}
	if res.Space != parser.SpaceData {
		r.parser.Log.Warn().Int("axes", ax.Index).Str("space", string(res.Space)).
			Msg("line not linked to data coordinates, not drawing")
		return nil
	}

	ls, ms := lineStyle(l), markerStyle(l, parser.ConvertSymbol)
	mode := traceMode(ls, ms)
	if mode == "" {
		return nil
	}
	st := r.current
	xs, ys := split(res.Data)
	r.fig.AddTrace(&models.ScatterTrace{
		Type:   "scatter",
		Mode:   mode,
		Name:   traceName(l.Label()),
		X:      st.xValues(xs),
		Y:      models.Floats(ys),
		XAxis:  XRef(st.n),
		YAxis:  YRef(st.n),
		Line:   ls,
		Marker: ms,
	})
	return nil
}

func (r *Renderer) lineCollection(ax *walker.AxesContext, item walker.CollectionItem) error {
	lines, err := parser.ProcessLineCollection(item.Lines)
	if err != nil {
		return parser.NewExtractionError(ax.Index, item.Kind.String(), err)
	}
	st := r.current
	for _, rec := range lines {
		xs := make([]float64, len(rec.Points))
		ys := make([]models.Float, len(rec.Points))
		for i, p := range rec.Points {
			xs[i], ys[i] = float64(p[0]), p[1]
		}
		r.fig.AddTrace(&models.ScatterTrace{
			Type:  "scatter",
			Mode:  "lines",
			Name:  traceName(rec.Label),
			X:     st.xValues(xs),
			Y:     ys,
			XAxis: XRef(st.n),
			YAxis: YRef(st.n),
			Line: &models.LineStyle{
				Color: rec.Color,
				Width: rec.LineWidth,
				Dash:  parser.ConvertDash(rec.LineStyle),
			},
		})
	}
	return nil
}

// pointBatch processes a point batch and reports whether its offsets are
// in data coordinates.
func (r *Renderer) pointBatch(ax *walker.AxesContext, item walker.CollectionItem) (*parser.Collection, bool, error) {
	c, err := r.parser.ProcessCollection(ax.Refs, item.Collection, nil, nil)
	if err != nil {
		return nil, false, parser.NewExtractionError(ax.Index, item.Kind.String(), err)
	}
	if c.OffsetSpace != parser.SpaceData {
		r.parser.Log.Warn().Int("axes", ax.Index).Str("space", string(c.OffsetSpace)).
			Msg("path collection not linked to data coordinates, not drawing")
		return nil, false, nil
	}
	return c, true, nil
}

func (r *Renderer) pointCollection(ax *walker.AxesContext, item walker.CollectionItem) error {
	c, ok, err := r.pointBatch(ax, item)
	if !ok {
		return err
	}
	st := r.current
	xs, ys := split(c.Offsets)
	r.fig.AddTrace(&models.ScatterTrace{
		Type:   "scatter",
		Mode:   "markers",
		Name:   traceName(item.Collection.Label()),
		X:      st.xValues(xs),
		Y:      models.Floats(ys),
		XAxis:  XRef(st.n),
		YAxis:  YRef(st.n),
		Marker: collectionMarker(item.Points, c, parser.ConvertSymbol),
	})
	return nil
}

func (r *Renderer) image(ax *walker.AxesContext, _ int, img scene.Image) error {
	encoded, channels, err := parser.EncodeRaster(img.Array(), r.raster)
	if err != nil {
		return parser.NewExtractionError(ax.Index, "image", err)
	}
	rows, cols := img.Size()
	z, err := parser.DecodeRaster(encoded, rows, cols, channels)
	if err != nil {
		return parser.NewExtractionError(ax.Index, "image", err)
	}
	st := r.current
	r.fig.AddTrace(&models.ImageTrace{
		Type:  "image",
		Z:     z,
		XAxis: XRef(st.n),
		YAxis: YRef(st.n),
	})
	return nil
}
