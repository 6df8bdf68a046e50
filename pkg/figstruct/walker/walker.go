package walker

import (
	"errors"

	"github.com/ukaji3/figstruct-go/pkg/figstruct/scene"
)

// SkipAxes is returned by an OpenAxes hook to skip the rest of that axes.
// The walk continues with the next axes.
var SkipAxes = errors.New("skip this axes")

// LabelKind names the text labels of an axes.
type LabelKind string

const (
	LabelTitle LabelKind = "title"
	LabelX     LabelKind = "xlabel"
	LabelY     LabelKind = "ylabel"
	LabelZ     LabelKind = "zlabel"
)

// Hook types, one per primitive kind.
type (
	FigureHook     func(fig scene.Figure) error
	AxesHook       func(ax *AxesContext) error
	LabelHook      func(ax *AxesContext, kind LabelKind, text scene.Text) error
	LineHook       func(ax *AxesContext, line LineItem) error
	CollectionHook func(ax *AxesContext, c CollectionItem) error
	ImageHook      func(ax *AxesContext, index int, img scene.Image) error
)

// Handlers is the strategy map of a walk. Nil hooks are skipped.
type Handlers struct {
	OpenFigure      FigureHook
	CloseFigure     FigureHook
	OpenAxes        AxesHook
	CloseAxes       AxesHook
	Label           LabelHook
	Line            LineHook
	LineCollection  CollectionHook
	PointCollection CollectionHook
	Image           ImageHook
}

// Walk classifies fig and walks it with h.
func Walk(fig scene.Figure, h Handlers) error {
	return WalkClassified(Classify(fig), h)
}

// WalkClassified visits the figure, then each axes in order: its labels,
// lines, batches and images. The first hook error other than SkipAxes
// aborts the walk.
func WalkClassified(c *Classified, h Handlers) error {
	if h.OpenFigure != nil {
		if err := h.OpenFigure(c.Figure); err != nil {
			return err
		}
	}
	for _, ax := range c.Axes {
		err := walkAxes(ax, h)
		if errors.Is(err, SkipAxes) {
			continue
		}
		if err != nil {
			return err
		}
	}
	if h.CloseFigure != nil {
		return h.CloseFigure(c.Figure)
	}
	return nil
}

func walkAxes(ca *ClassifiedAxes, h Handlers) error {
	ctx := &ca.AxesContext
	if h.OpenAxes != nil {
		if err := h.OpenAxes(ctx); err != nil {
			return err
		}
	}

	if h.Label != nil {
		labels := []struct {
			kind LabelKind
			text scene.Text
		}{
			{LabelTitle, ca.Axes.Title()},
			{LabelX, ca.Axes.XAxis().Label()},
			{LabelY, ca.Axes.YAxis().Label()},
		}
		if ca.Is3D() {
			labels = append(labels, struct {
				kind LabelKind
				text scene.Text
			}{LabelZ, ca.Z.ZAxis().Label()})
		}
		for _, l := range labels {
			if err := h.Label(ctx, l.kind, l.text); err != nil {
				return err
			}
		}
	}

	if h.Line != nil {
		for _, l := range ca.Lines {
			if err := h.Line(ctx, l); err != nil {
				return err
			}
		}
	}

	for _, c := range ca.Collections {
		var hook CollectionHook
		switch c.Kind {
		case LineBatch:
			hook = h.LineCollection
		case PointBatch, PointBatch3D:
			hook = h.PointCollection
		}
		if hook == nil {
			continue
		}
		if err := hook(ctx, c); err != nil {
			return err
		}
	}

	if h.Image != nil {
		for i, img := range ca.Images {
			if err := h.Image(ctx, i, img); err != nil {
				return err
			}
		}
	}

	if h.CloseAxes != nil {
		return h.CloseAxes(ctx)
	}
	return nil
}
