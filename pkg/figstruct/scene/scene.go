// Package scene defines the capabilities figstruct consumes from a host
// plotting scene graph: figures, axes, primitives and their transforms.
//
// The exporter only ever calls accessors; it never mutates a scene.
package scene

import (
	"time"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Figure is the root of a scene graph.
type Figure interface {
	// Number is the figure manager number used as the record id.
	Number() int
	// SupTitle is the figure-level title, empty if none was set.
	SupTitle() string
	// Size is the figure size in inches.
	Size() (width, height float64)
	DPI() float64
	// TransFigure maps figure-fraction coordinates to display coordinates.
	TransFigure() Transform
	// Axes returns the axes in declaration order.
	Axes() []Axes
}

// Axes is a 2D plotting area. 3D axes additionally implement ZAxes.
type Axes interface {
	Title() Text
	XAxis() Axis
	YAxis() Axis
	XLim() [2]float64
	YLim() [2]float64
	// Bounds is the axes position in figure fraction: x0, y0, width, height.
	Bounds() [4]float64
	TransData() Transform
	TransAxes() Transform
	HasLegend() bool

	Lines() []Line
	Collections() []Collection
	Images() []Image
}

// ZAxes is the capability that marks an axes as three dimensional.
type ZAxes interface {
	ZAxis() Axis
	ZLim() [2]float64
}

// Text is a text primitive such as an axes title or axis label.
type Text interface {
	Text() string
	FontSize() float64
	Color() Color
	Position() vec.Vec2
	Transform() Transform
	Visible() bool
}

// Axis is one axis (x, y or z) of an axes.
type Axis interface {
	Label() Text
	// Scale is the host scale name, e.g. "linear", "log", "symlog".
	Scale() string
	// LogBase is the base of a logarithmic scale.
	LogBase() float64
	// Converter returns the date converter of the axis, nil for numeric axes.
	Converter() DateConverter
	MajorLocator() Locator
	MajorFormatter() Formatter
	TickLabels() []Text
	// LabelOn reports whether the primary tick labels (bottom/left) are on.
	LabelOn() bool
	GridOn() bool
	Visible() bool
}

// LocatorKind tags the tick locator of an axis.
type LocatorKind int

const (
	LocatorAuto LocatorKind = iota
	LocatorFixed
)

// Locator describes the major tick locations of an axis.
type Locator struct {
	Kind LocatorKind
	// Ticks are the current tick locations.
	Ticks []float64
}

// FormatterKind tags the tick formatter of an axis.
type FormatterKind int

const (
	FormatterAuto FormatterKind = iota
	FormatterNull
	FormatterFixed
	FormatterDate
	FormatterLogMathtext
)

// Formatter describes the major tick label formatter of an axis.
type Formatter struct {
	Kind FormatterKind
	// Seq holds the labels of a fixed formatter.
	Seq []string
}

// DateConverter converts axis numbers into calendar dates.
type DateConverter interface {
	// Epoch is the instant corresponding to axis value 0; axis units are days.
	Epoch() time.Time
}

// PeriodConverter is a date converter whose axis values are period
// ordinals of a fixed frequency.
type PeriodConverter interface {
	DateConverter
	// Freq is the period frequency code, e.g. "D", "M", "H".
	Freq() string
}

// Line is a single 2D line primitive.
type Line interface {
	XYData() []vec.Vec2
	Label() string
	Color() Color
	// Marker is the marker symbol; "None" or "" means no marker.
	Marker() string
	LineStyle() string
	LineWidth() float64
	MarkerSize() float64
	MarkerFaceColor() Color
	MarkerEdgeColor() Color
	MarkerEdgeWidth() float64
	// Alpha is the primitive opacity, nil if unset.
	Alpha() *float64
	ZOrder() float64
	Transform() Transform
}

// Line3D is the capability of a line carrying a third coordinate.
type Line3D interface {
	Data3D() (xs, ys, zs []float64)
}

// Collection is a batch of primitives sharing one transform.
type Collection interface {
	Label() string
	// Transform is the master transform applied to every path.
	Transform() Transform
	OffsetTransform() Transform
	Offsets() []vec.Vec2
	Paths() []*path.Data
	PathTransforms() []matrix.Matrix
	LineWidths() []float64
	FaceColors() []Color
	EdgeColors() []Color
	Alpha() *float64
	ZOrder() float64
	// OffsetPosition is "data" or "screen".
	OffsetPosition() string
}

// LineCollection is a batch of polylines.
type LineCollection interface {
	Collection
	Segments() [][]vec.Vec2
	Colors() []Color
}

// PathCollection is a batch of markers, e.g. a scatter plot.
type PathCollection interface {
	Collection
	Sizes() []float64
}

// Path3DCollection is a path collection carrying explicit 3D offsets.
type Path3DCollection interface {
	PathCollection
	Offsets3D() [3]MaskedArray
}

// Image is a raster image primitive.
type Image interface {
	// Size is the array size as (rows, columns).
	Size() (rows, cols int)
	Visible() bool
	Array() MaskedArray
}
