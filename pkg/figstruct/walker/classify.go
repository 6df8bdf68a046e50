// Package walker traverses a figure and dispatches its primitives to a set
// of handlers.
package walker

import (
	"github.com/ukaji3/figstruct-go/pkg/figstruct/parser"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/scene"
)

// AxesKind tells 2D and 3D axes apart.
type AxesKind int

const (
	Axes2D AxesKind = iota
	Axes3D
)

// LineKind tells 2D and 3D lines apart.
type LineKind int

const (
	Line2D LineKind = iota
	Line3D
)

// CollectionKind classifies a primitive batch.
type CollectionKind int

const (
	// OtherBatch is a batch no handler draws.
	OtherBatch CollectionKind = iota
	LineBatch
	PointBatch
	PointBatch3D
)

func (k CollectionKind) String() string {
	switch k {
	case LineBatch:
		return "line batch"
	case PointBatch:
		return "point batch"
	case PointBatch3D:
		return "3D point batch"
	default:
		return "other batch"
	}
}

// AxesContext is an axes with its capabilities resolved.
type AxesContext struct {
	// Index is the position of the axes in the figure.
	Index  int
	Kind   AxesKind
	Figure scene.Figure
	Axes   scene.Axes
	// Z is set for 3D axes only.
	Z    scene.ZAxes
	Refs *parser.AxesRefs
}

// Is3D reports whether the axes is three dimensional.
func (c *AxesContext) Is3D() bool {
	return c.Kind == Axes3D
}

// LineItem is a line with its capabilities resolved.
type LineItem struct {
	// Index is the position of the line within its axes.
	Index int
	Kind  LineKind
	Line  scene.Line
	// Data3D is set for 3D lines only.
	Data3D scene.Line3D
}

// CollectionItem is a batch with its capabilities resolved. Exactly the
// field matching Kind is set among Lines, Points and Points3D.
type CollectionItem struct {
	Index      int
	Kind       CollectionKind
	Collection scene.Collection
	Lines      scene.LineCollection
	Points     scene.PathCollection
	Points3D   scene.Path3DCollection
}

// ClassifiedAxes is an axes and its classified primitives.
type ClassifiedAxes struct {
	AxesContext
	Lines       []LineItem
	Collections []CollectionItem
	Images      []scene.Image
}

// Classified is a figure with every capability resolved.
type Classified struct {
	Figure scene.Figure
	Axes   []*ClassifiedAxes
}

// Classify resolves the capabilities of fig once.
func Classify(fig scene.Figure) *Classified {
	out := &Classified{Figure: fig}
	for i, ax := range fig.Axes() {
		ca := &ClassifiedAxes{
			AxesContext: AxesContext{
				Index:  i,
				Kind:   Axes2D,
				Figure: fig,
				Axes:   ax,
				Refs:   parser.RefsOf(ax, fig),
			},
			Images: ax.Images(),
		}
		if z, ok := ax.(scene.ZAxes); ok {
			ca.Kind, ca.Z = Axes3D, z
		}
		for j, l := range ax.Lines() {
			item := LineItem{Index: j, Kind: Line2D, Line: l}
			if l3, ok := l.(scene.Line3D); ok {
				item.Kind, item.Data3D = Line3D, l3
			}
			ca.Lines = append(ca.Lines, item)
		}
		for j, c := range ax.Collections() {
			ca.Collections = append(ca.Collections, classifyCollection(j, c))
		}
		out.Axes = append(out.Axes, ca)
	}
	return out
}

func classifyCollection(index int, c scene.Collection) CollectionItem {
	item := CollectionItem{Index: index, Kind: OtherBatch, Collection: c}
	switch v := c.(type) {
	case scene.LineCollection:
		item.Kind, item.Lines = LineBatch, v
	case scene.Path3DCollection:
		item.Kind, item.Points, item.Points3D = PointBatch3D, v, v
	case scene.PathCollection:
		item.Kind, item.Points = PointBatch, v
	}
	return item
}
