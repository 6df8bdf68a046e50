package memory

import (
	"seehuhn.de/go/geom/matrix"

	"github.com/ukaji3/figstruct-go/pkg/figstruct/scene"
)

// Axes is a 2D axes.
type Axes struct {
	TitleText *Text
	X, Y      *Axis
	XLimits   [2]float64
	YLimits   [2]float64
	Position  [4]float64
	Legend    bool

	fig         *Figure
	lines       []scene.Line
	collections []scene.Collection
	images      []scene.Image
}

func newAxes(f *Figure) *Axes {
	return &Axes{
		TitleText: NewText(""),
		X:         NewAxis(),
		Y:         NewAxis(),
		XLimits:   [2]float64{0, 1},
		YLimits:   [2]float64{0, 1},
		Position:  DefaultBounds,
		fig:       f,
	}
}

func (a *Axes) Title() scene.Text { return a.TitleText }
func (a *Axes) XAxis() scene.Axis { return a.X }
func (a *Axes) YAxis() scene.Axis { return a.Y }
func (a *Axes) XLim() [2]float64 { return a.XLimits }
func (a *Axes) YLim() [2]float64 { return a.YLimits }
func (a *Axes) Bounds() [4]float64 { return a.Position }
func (a *Axes) HasLegend() bool { return a.Legend }
func (a *Axes) Lines() []scene.Line { return a.lines }
func (a *Axes) Collections() []scene.Collection { return a.collections }
func (a *Axes) Images() []scene.Image { return a.images }

// TransAxes maps axes fraction to display pixels.
func (a *Axes) TransAxes() scene.Transform {
	b := a.Position
	box := scene.NewAffine("bbox", matrix.Scale(b[2], b[3]).Translate(b[0], b[1]))
	return scene.Compose(box, a.fig.TransFigure())
}

// TransData maps data coordinates to display pixels.
func (a *Axes) TransData() scene.Transform {
	return scene.Compose(a.transLimits(), a.TransAxes())
}

// transLimits maps the view limits onto the unit square.
func (a *Axes) transLimits() scene.Transform {
	x, y := a.XLimits, a.YLimits
	sx := 1 / (x[1] - x[0])
	sy := 1 / (y[1] - y[0])
	return scene.NewAffine("transLimits", matrix.Matrix{sx, 0, 0, sy, -x[0] * sx, -y[0] * sy})
}

// Figure returns the figure holding a.
func (a *Axes) Figure() *Figure { return a.fig }

// AddLine appends a line and links it to data coordinates.
func (a *Axes) AddLine(l *Line) *Line {
	l.ax = a
	a.lines = append(a.lines, l)
	return l
}

// AddLine3D appends a 3D line.
func (a *Axes) AddLine3D(l *Line3D) *Line3D {
	l.ax = a
	a.lines = append(a.lines, l)
	return l
}

// AddCollection appends a batch. Its transforms default to data coordinates
// for offsets and the identity for paths.
func (a *Axes) AddCollection(c scene.Collection) {
	if b, ok := c.(interface{ base() *Collection }); ok {
		b.base().ax = a
	}
	a.collections = append(a.collections, c)
}

// AddImage appends an image.
func (a *Axes) AddImage(img *Image) {
	a.images = append(a.images, img)
}

// Axes3D is a 3D axes.
type Axes3D struct {
	*Axes
	Z       *Axis
	ZLimits [2]float64
}

func (a *Axes3D) ZAxis() scene.Axis { return a.Z }
func (a *Axes3D) ZLim() [2]float64 { return a.ZLimits }
