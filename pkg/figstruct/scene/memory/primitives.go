package memory

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/ukaji3/figstruct-go/pkg/figstruct/scene"
)

// Line is a 2D line.
type Line struct {
	XY         []vec.Vec2
	LabelStr   string
	Col        scene.Color
	MarkerStr  string
	Style      string
	Width      float64
	MSize      float64
	MFace      scene.Color
	MEdge      scene.Color
	MEdgeWidth float64
	Opacity    *float64
	Z          float64
	Trans      scene.Transform

	ax *Axes
}

// NewLine returns a solid blue line without markers.
func NewLine(xy []vec.Vec2) *Line {
	blue := scene.RGB(0.12156862745098039, 0.4666666666666667, 0.7058823529411765)
	return &Line{
		XY:         xy,
		Col:        blue,
		MarkerStr:  "None",
		Style:      "-",
		Width:      1.5,
		MSize:      6,
		MFace:      blue,
		MEdge:      blue,
		MEdgeWidth: 1,
		Z:          2,
	}
}

func (l *Line) XYData() []vec.Vec2 { return l.XY }
func (l *Line) Label() string { return l.LabelStr }
func (l *Line) Color() scene.Color { return l.Col }
func (l *Line) Marker() string { return l.MarkerStr }
func (l *Line) LineStyle() string { return l.Style }
func (l *Line) LineWidth() float64 { return l.Width }
func (l *Line) MarkerSize() float64 { return l.MSize }
func (l *Line) MarkerFaceColor() scene.Color { return l.MFace }
func (l *Line) MarkerEdgeColor() scene.Color { return l.MEdge }
func (l *Line) MarkerEdgeWidth() float64 { return l.MEdgeWidth }
func (l *Line) Alpha() *float64 { return l.Opacity }
func (l *Line) ZOrder() float64 { return l.Z }

func (l *Line) Transform() scene.Transform {
	if l.Trans != nil || l.ax == nil {
		return l.Trans
	}
	return l.ax.TransData()
}

// Line3D is a line with a third coordinate.
type Line3D struct {
	*Line
	Zs []float64
}

// NewLine3D returns a 3D line through the given coordinates.
func NewLine3D(xs, ys, zs []float64) *Line3D {
	xy := make([]vec.Vec2, len(xs))
	for i := range xs {
		xy[i] = vec.Vec2{X: xs[i], Y: ys[i]}
	}
	return &Line3D{Line: NewLine(xy), Zs: zs}
}

func (l *Line3D) Data3D() (xs, ys, zs []float64) {
	xs = make([]float64, len(l.XY))
	ys = make([]float64, len(l.XY))
	for i, p := range l.XY {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys, l.Zs
}

// Collection holds the state shared by all batches.
type Collection struct {
	LabelStr  string
	Trans     scene.Transform
	OffTrans  scene.Transform
	Offs      []vec.Vec2
	PathList  []*path.Data
	PathTrans []matrix.Matrix
	Widths    []float64
	Faces     []scene.Color
	Edges     []scene.Color
	Opacity   *float64
	Z         float64
	OffsetPos string

	ax *Axes
}

func (c *Collection) base() *Collection { return c }
func (c *Collection) Label() string { return c.LabelStr }
func (c *Collection) Offsets() []vec.Vec2 { return c.Offs }
func (c *Collection) Paths() []*path.Data { return c.PathList }
func (c *Collection) PathTransforms() []matrix.Matrix { return c.PathTrans }
func (c *Collection) LineWidths() []float64 { return c.Widths }
func (c *Collection) FaceColors() []scene.Color { return c.Faces }
func (c *Collection) EdgeColors() []scene.Color { return c.Edges }
func (c *Collection) Alpha() *float64 { return c.Opacity }
func (c *Collection) ZOrder() float64 { return c.Z }

func (c *Collection) OffsetPosition() string {
	if c.OffsetPos == "" {
		return "screen"
	}
	return c.OffsetPos
}

func (c *Collection) Transform() scene.Transform {
	if c.Trans == nil {
		return scene.Identity()
	}
	return c.Trans
}

func (c *Collection) OffsetTransform() scene.Transform {
	if c.OffTrans != nil || c.ax == nil {
		return c.OffTrans
	}
	return c.ax.TransData()
}

// LineCollection is a batch of polylines.
type LineCollection struct {
	Collection
	Segs      [][]vec.Vec2
	SegColors []scene.Color
}

// NewLineCollection returns a batch of segments with the given styles.
func NewLineCollection(segs [][]vec.Vec2, colors []scene.Color, widths []float64) *LineCollection {
	return &LineCollection{
		Collection: Collection{Widths: widths, Edges: colors, Z: 2},
		Segs:       segs,
		SegColors:  colors,
	}
}

func (c *LineCollection) Segments() [][]vec.Vec2 { return c.Segs }
func (c *LineCollection) Colors() []scene.Color { return c.SegColors }

// PathCollection is a batch of markers.
type PathCollection struct {
	Collection
	SizeList []float64
}

// NewScatter returns a batch of circle markers at the given offsets.
func NewScatter(offsets []vec.Vec2, sizes []float64, faces []scene.Color) *PathCollection {
	return &PathCollection{
		Collection: Collection{
			Offs:      offsets,
			PathList:  []*path.Data{UnitCircle()},
			PathTrans: sizeTransforms(sizes),
			Widths:    []float64{1},
			Faces:     faces,
			Edges:     faces,
			Z:         1,
		},
		SizeList: sizes,
	}
}

func (c *PathCollection) Sizes() []float64 { return c.SizeList }

// Path3DCollection is a marker batch with explicit 3D offsets.
type Path3DCollection struct {
	*PathCollection
	Offs3D [3]scene.MaskedArray
}

// NewScatter3D returns a 3D marker batch.
func NewScatter3D(xs, ys, zs []float64, sizes []float64, faces []scene.Color) *Path3DCollection {
	offsets := make([]vec.Vec2, len(xs))
	for i := range xs {
		offsets[i] = vec.Vec2{X: xs[i], Y: ys[i]}
	}
	return &Path3DCollection{
		PathCollection: NewScatter(offsets, sizes, faces),
		Offs3D: [3]scene.MaskedArray{
			scene.NewArray(xs, len(xs)),
			scene.NewArray(ys, len(ys)),
			scene.NewArray(zs, len(zs)),
		},
	}
}

func (c *Path3DCollection) Offsets3D() [3]scene.MaskedArray { return c.Offs3D }

// sizeTransforms scales the unit marker to each area-like size in points.
func sizeTransforms(sizes []float64) []matrix.Matrix {
	out := make([]matrix.Matrix, len(sizes))
	for i, s := range sizes {
		r := math.Sqrt(s) / 2
		out[i] = matrix.Scale(r, r)
	}
	return out
}

// UnitCircle returns a unit circle made of eight cubic arcs.
func UnitCircle() *path.Data {
	const n = 8
	k := 4.0 / 3 * math.Tan(math.Pi/(2*n))
	p := &path.Data{}
	at := func(a float64) vec.Vec2 { return vec.Vec2{X: math.Cos(a), Y: math.Sin(a)} }
	p.Cmds = append(p.Cmds, path.CmdMoveTo)
	p.Coords = append(p.Coords, at(0))
	for i := 0; i < n; i++ {
		a0 := 2 * math.Pi * float64(i) / n
		a1 := 2 * math.Pi * float64(i+1) / n
		p0, p1 := at(a0), at(a1)
		c0 := vec.Vec2{X: p0.X - k*p0.Y, Y: p0.Y + k*p0.X}
		c1 := vec.Vec2{X: p1.X + k*p1.Y, Y: p1.Y - k*p1.X}
		p.Cmds = append(p.Cmds, path.CmdCubeTo)
		p.Coords = append(p.Coords, c0, c1, p1)
	}
	p.Cmds = append(p.Cmds, path.CmdClose)
	return p
}

// Image is a raster image.
type Image struct {
	Data   scene.MaskedArray
	Hidden bool
}

// NewImage returns a visible image over a row-major array.
func NewImage(data []float64, shape ...int) *Image {
	return &Image{Data: scene.NewArray(data, shape...)}
}

func (img *Image) Visible() bool { return !img.Hidden }
func (img *Image) Array() scene.MaskedArray { return img.Data }

func (img *Image) Size() (rows, cols int) {
	if len(img.Data.Shape) < 2 {
		return 0, 0
	}
	return img.Data.Shape[0], img.Data.Shape[1]
}
