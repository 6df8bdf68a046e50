package walker

import "github.com/ukaji3/figstruct-go/pkg/figstruct/scene"

// Overrides replace hooks of a base handler set. Each override receives
// the base hook and may delegate to it; the base hook passed in is never
// nil.
type Overrides struct {
	OpenFigure      func(base FigureHook, fig scene.Figure) error
	CloseFigure     func(base FigureHook, fig scene.Figure) error
	OpenAxes        func(base AxesHook, ax *AxesContext) error
	CloseAxes       func(base AxesHook, ax *AxesContext) error
	Label           func(base LabelHook, ax *AxesContext, kind LabelKind, text scene.Text) error
	Line            func(base LineHook, ax *AxesContext, line LineItem) error
	LineCollection  func(base CollectionHook, ax *AxesContext, c CollectionItem) error
	PointCollection func(base CollectionHook, ax *AxesContext, c CollectionItem) error
	Image           func(base ImageHook, ax *AxesContext, index int, img scene.Image) error
}

// Override returns base with the non-nil hooks of over applied.
func Override(base Handlers, over Overrides) Handlers {
	out := base
	if over.OpenFigure != nil {
		b := orNopFigure(base.OpenFigure)
		out.OpenFigure = func(fig scene.Figure) error { return over.OpenFigure(b, fig) }
	}
	if over.CloseFigure != nil {
		b := orNopFigure(base.CloseFigure)
		out.CloseFigure = func(fig scene.Figure) error { return over.CloseFigure(b, fig) }
	}
	if over.OpenAxes != nil {
		b := orNopAxes(base.OpenAxes)
		out.OpenAxes = func(ax *AxesContext) error { return over.OpenAxes(b, ax) }
	}
	if over.CloseAxes != nil {
		b := orNopAxes(base.CloseAxes)
		out.CloseAxes = func(ax *AxesContext) error { return over.CloseAxes(b, ax) }
	}
	if over.Label != nil {
		b := base.Label
		if b == nil {
			b = func(*AxesContext, LabelKind, scene.Text) error { return nil }
		}
		out.Label = func(ax *AxesContext, kind LabelKind, text scene.Text) error {
			return over.Label(b, ax, kind, text)
		}
	}
	if over.Line != nil {
		b := base.Line
		if b == nil {
			b = func(*AxesContext, LineItem) error { return nil }
		}
		out.Line = func(ax *AxesContext, line LineItem) error { return over.Line(b, ax, line) }
	}
	if over.LineCollection != nil {
		b := orNopCollection(base.LineCollection)
		out.LineCollection = func(ax *AxesContext, c CollectionItem) error { return over.LineCollection(b, ax, c) }
	}
	if over.PointCollection != nil {
		b := orNopCollection(base.PointCollection)
		out.PointCollection = func(ax *AxesContext, c CollectionItem) error { return over.PointCollection(b, ax, c) }
	}
	if over.Image != nil {
		b := base.Image
		if b == nil {
			b = func(*AxesContext, int, scene.Image) error { return nil }
		}
		out.Image = func(ax *AxesContext, index int, img scene.Image) error { return over.Image(b, ax, index, img) }
	}
	return out
}

func orNopFigure(h FigureHook) FigureHook {
	if h == nil {
		return func(scene.Figure) error { return nil }
	}
	return h
}

func orNopAxes(h AxesHook) AxesHook {
	if h == nil {
		return func(*AxesContext) error { return nil }
	}
	return h
}

func orNopCollection(h CollectionHook) CollectionHook {
	if h == nil {
		return func(*AxesContext, CollectionItem) error { return nil }
	}
	return h
}
