// Package memory is an in-memory scene graph. It backs figures loaded from
// description files and the package tests.
package memory

import (
	"time"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"github.com/ukaji3/figstruct-go/pkg/figstruct/parser"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/scene"
)

// DefaultFontSize is the font size of texts created without one.
const DefaultFontSize = 10

// DefaultBounds is the position of a single subplot in figure fraction.
var DefaultBounds = [4]float64{0.125, 0.11, 0.775, 0.77}

// Figure is the root of an in-memory scene.
type Figure struct {
	Num    int
	Title  string
	Width  float64
	Height float64
	Dots   float64

	axes []scene.Axes
}

// NewFigure returns an empty 6.4x4.8 inch figure at 100 dpi.
func NewFigure(num int) *Figure {
	return &Figure{Num: num, Width: 6.4, Height: 4.8, Dots: 100}
}

func (f *Figure) Number() int { return f.Num }
func (f *Figure) SupTitle() string { return f.Title }
func (f *Figure) Size() (width, height float64) { return f.Width, f.Height }
func (f *Figure) DPI() float64 { return f.Dots }
func (f *Figure) Axes() []scene.Axes { return f.axes }

// TransFigure maps figure fraction to display pixels.
func (f *Figure) TransFigure() scene.Transform {
	return scene.NewAffine("transFigure", matrix.Scale(f.Width*f.Dots, f.Height*f.Dots))
}

// AddAxes appends a 2D axes at the default position.
func (f *Figure) AddAxes() *Axes {
	ax := newAxes(f)
	f.axes = append(f.axes, ax)
	return ax
}

// AddAxes3D appends a 3D axes at the default position.
func (f *Figure) AddAxes3D() *Axes3D {
	ax := &Axes3D{Axes: newAxes(f), Z: NewAxis(), ZLimits: [2]float64{0, 1}}
	f.axes = append(f.axes, ax)
	return ax
}

// Text is a text primitive.
type Text struct {
	Value  string
	Size   float64
	Fill   scene.Color
	At     vec.Vec2
	Trans  scene.Transform
	Hidden bool
}

// NewText returns a visible black text of the default size.
func NewText(s string) *Text {
	return &Text{Value: s, Size: DefaultFontSize, Fill: scene.RGB(0, 0, 0)}
}

func (t *Text) Text() string { return t.Value }
func (t *Text) FontSize() float64 { return t.Size }
func (t *Text) Color() scene.Color { return t.Fill }
func (t *Text) Position() vec.Vec2 { return t.At }
func (t *Text) Visible() bool { return !t.Hidden }

func (t *Text) Transform() scene.Transform {
	if t.Trans == nil {
		return scene.Identity()
	}
	return t.Trans
}

// Axis is one axis of an axes.
type Axis struct {
	LabelText *Text
	ScaleName string
	Base      float64
	Conv      scene.DateConverter
	Locator   scene.Locator
	Formatter scene.Formatter
	Labels    []*Text
	LabelsOff bool
	Grid      bool
	Hidden    bool
}

// NewAxis returns a linear axis with automatic ticks and one visible
// tick label style.
func NewAxis() *Axis {
	return &Axis{
		LabelText: NewText(""),
		ScaleName: "linear",
		Base:      10,
		Labels:    []*Text{NewText("")},
	}
}

func (a *Axis) Label() scene.Text { return a.LabelText }
func (a *Axis) Scale() string { return a.ScaleName }
func (a *Axis) LogBase() float64 { return a.Base }
func (a *Axis) Converter() scene.DateConverter { return a.Conv }
func (a *Axis) MajorLocator() scene.Locator { return a.Locator }
func (a *Axis) MajorFormatter() scene.Formatter { return a.Formatter }
func (a *Axis) LabelOn() bool { return !a.LabelsOff }
func (a *Axis) GridOn() bool { return a.Grid }
func (a *Axis) Visible() bool { return !a.Hidden }

func (a *Axis) TickLabels() []scene.Text {
	out := make([]scene.Text, len(a.Labels))
	for i, l := range a.Labels {
		out[i] = l
	}
	return out
}

// SetFixedTicks pins the tick locations and, if given, their labels.
func (a *Axis) SetFixedTicks(ticks []float64, labels []string) {
	a.Locator = scene.Locator{Kind: scene.LocatorFixed, Ticks: ticks}
	if labels != nil {
		a.Formatter = scene.Formatter{Kind: scene.FormatterFixed, Seq: labels}
	}
}

// DateConverter interprets axis values as days since Start, or since
// parser.DefaultEpoch when Start is unset.
type DateConverter struct {
	Start time.Time
}

func (c DateConverter) Epoch() time.Time {
	if c.Start.IsZero() {
		return parser.DefaultEpoch
	}
	return c.Start
}

// PeriodConverter interprets axis values as period ordinals.
type PeriodConverter struct {
	DateConverter
	Frequency string
}

func (c PeriodConverter) Freq() string { return c.Frequency }
