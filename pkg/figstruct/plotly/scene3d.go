package plotly

import (
	"fmt"

	"github.com/ukaji3/figstruct-go/pkg/figstruct/models"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/parser"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/scene"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/walker"
)

// Overrides3D returns the hooks drawing 3D axes. Each delegates to the
// base hook for 2D axes. 2D primitives on 3D axes have no layout axes to
// refer to and are skipped.
func (r *Renderer) Overrides3D() walker.Overrides {
	return walker.Overrides{
		OpenAxes:        r.openAxes3D,
		Label:           r.label3D,
		Line:            r.line3D,
		LineCollection:  r.lineCollection3D,
		PointCollection: r.pointCollection3D,
		Image:           r.image3D,
	}
}

func (r *Renderer) skipFlat(ax *walker.AxesContext, primitive string) {
	r.parser.Log.Warn().Int("axes", ax.Index).Str("primitive", primitive).
		Msg("2D primitive on 3D axes, not drawing")
}

func (r *Renderer) lineCollection3D(base walker.CollectionHook, ax *walker.AxesContext, item walker.CollectionItem) error {
	if !ax.Is3D() {
		return base(ax, item)
	}
	r.skipFlat(ax, "line batch")
	return nil
}

func (r *Renderer) image3D(base walker.ImageHook, ax *walker.AxesContext, index int, img scene.Image) error {
	if !ax.Is3D() {
		return base(ax, index, img)
	}
	r.skipFlat(ax, "image")
	return nil
}

func (r *Renderer) openAxes3D(base walker.AxesHook, ax *walker.AxesContext) error {
	if !ax.Is3D() {
		return base(ax)
	}
	st := r.beginAxes()
	sc, err := r.parser.BuildScene(ax.Axes, ax.Z, r.xBounds, r.yBounds)
	if err != nil {
		return r.fail(ax, "scene", err)
	}
	st.scene = sc
	st.domainX, st.domainY = sc.Domain.X, sc.Domain.Y
	if sc.XAxis.Type == string(parser.ScaleDate) {
		st.xDates = ax.Axes.XAxis().Converter()
	}
	r.fig.Layout.Scenes[SceneKey(st.n)] = sc
	r.commitAxes(ax, st)
	return nil
}

func (r *Renderer) label3D(base walker.LabelHook, ax *walker.AxesContext, kind walker.LabelKind, text scene.Text) error {
	if !ax.Is3D() {
		return base(ax, kind, text)
	}
	sc := r.current.scene
	switch kind {
	case walker.LabelX:
		parser.ApplyLabel(&sc.XAxis, text)
	case walker.LabelY:
		parser.ApplyLabel(&sc.YAxis, text)
	case walker.LabelZ:
		parser.ApplyLabel(&sc.ZAxis, text)
	default:
		return base(ax, kind, text)
	}
	return nil
}

func (r *Renderer) line3D(base walker.LineHook, ax *walker.AxesContext, item walker.LineItem) error {
	if !ax.Is3D() {
		return base(ax, item)
	}
	if item.Kind != walker.Line3D {
		r.skipFlat(ax, "line")
		return nil
	}
	l := item.Line
	res, err := r.parser.Resolve(l.Transform(), ax.Refs, nil, nil)
	if err != nil {
		return parser.NewExtractionError(ax.Index, "line", err)
	}
	if res.Space != parser.SpaceData {
		r.parser.Log.Warn().Int("axes", ax.Index).Str("space", string(res.Space)).
			Msg("3D line not linked to data coordinates, not drawing")
		return nil
	}

	xs, ys, zs := item.Data3D.Data3D()
	if len(ys) != len(xs) || len(zs) != len(xs) {
		return parser.NewExtractionError(ax.Index, "line", fmt.Errorf("%w: 3D line with %d, %d, %d coordinates",
			parser.ErrInvalidShape, len(xs), len(ys), len(zs)))
	}
	ls, ms := lineStyle(l), markerStyle(l, parser.Symbol3D)
	mode := traceMode(ls, ms)
	if mode == "" {
		return nil
	}
	st := r.current
	r.fig.AddTrace(&models.Scatter3DTrace{
		Type:   "scatter3d",
		Mode:   mode,
		Name:   traceName(l.Label()),
		X:      st.xValues(xs),
		Y:      models.Floats(ys),
		Z:      models.Floats(zs),
		Scene:  SceneKey(st.n),
		Line:   ls,
		Marker: ms,
	})
	return nil
}

func (r *Renderer) pointCollection3D(base walker.CollectionHook, ax *walker.AxesContext, item walker.CollectionItem) error {
	if !ax.Is3D() {
		return base(ax, item)
	}
	if item.Kind != walker.PointBatch3D {
		r.skipFlat(ax, "point batch")
		return nil
	}
	c, ok, err := r.pointBatch(ax, item)
	if !ok {
		return err
	}
	xs := make([]float64, len(c.Offsets3D))
	ys := make([]float64, len(c.Offsets3D))
	zs := make([]float64, len(c.Offsets3D))
	for i, p := range c.Offsets3D {
		xs[i], ys[i], zs[i] = p[0], p[1], p[2]
	}
	st := r.current
	r.fig.AddTrace(&models.Scatter3DTrace{
		Type:   "scatter3d",
		Mode:   "markers",
		Name:   traceName(item.Collection.Label()),
		X:      st.xValues(xs),
		Y:      models.Floats(ys),
		Z:      models.Floats(zs),
		Scene:  SceneKey(st.n),
		Marker: collectionMarker(item.Points, c, parser.Symbol3D),
	})
	return nil
}
