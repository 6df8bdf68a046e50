package memory

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/vec"

	"github.com/ukaji3/figstruct-go/pkg/figstruct/parser"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/scene"
)

// FigureSpec is the file description of a figure.
type FigureSpec struct {
	ID    int        `yaml:"id"`
	Title string     `yaml:"title"`
	Size  [2]float64 `yaml:"size"`
	DPI   float64    `yaml:"dpi"`
	Axes  []AxesSpec `yaml:"axes"`
}

// AxesSpec describes one axes. Setting ZLim makes it a 3D axes.
type AxesSpec struct {
	Title  string      `yaml:"title"`
	Bounds *[4]float64 `yaml:"bounds"`
	XLim   [2]float64  `yaml:"xlim"`
	YLim   [2]float64  `yaml:"ylim"`
	ZLim   *[2]float64 `yaml:"zlim"`
	X      AxisSpec    `yaml:"xaxis"`
	Y      AxisSpec    `yaml:"yaxis"`
	Z      AxisSpec    `yaml:"zaxis"`
	Legend bool        `yaml:"legend"`

	Lines    []LineSpec    `yaml:"lines"`
	Segments []SegmentSpec `yaml:"segments"`
	Scatter  []ScatterSpec `yaml:"scatter"`
	Images   []ImageSpec   `yaml:"images"`
}

// AxisSpec describes one axis.
type AxisSpec struct {
	Label      string    `yaml:"label"`
	Scale      string    `yaml:"scale"`
	Base       float64   `yaml:"base"`
	Epoch      string    `yaml:"epoch"`
	Period     string    `yaml:"period"`
	Ticks      []float64 `yaml:"ticks"`
	TickLabels []string  `yaml:"ticklabels"`
	HideLabels bool      `yaml:"hidelabels"`
	Grid       bool      `yaml:"grid"`
	Top        bool      `yaml:"top"`
}

// LineSpec describes a line, 3D when Z is set.
type LineSpec struct {
	X         []float64 `yaml:"x"`
	Y         []float64 `yaml:"y"`
	Z         []float64 `yaml:"z"`
	Label     string    `yaml:"label"`
	Color     string    `yaml:"color"`
	Marker    string    `yaml:"marker"`
	LineStyle string    `yaml:"linestyle"`
	LineWidth float64   `yaml:"linewidth"`
	Alpha     *float64  `yaml:"alpha"`
}

// SegmentSpec describes a batch of polylines.
type SegmentSpec struct {
	Segments [][][2]float64 `yaml:"segments"`
	Colors   []string       `yaml:"colors"`
	Widths   []float64      `yaml:"widths"`
	Label    string         `yaml:"label"`
}

// ScatterSpec describes a marker batch, 3D when Z is set.
type ScatterSpec struct {
	X      []float64 `yaml:"x"`
	Y      []float64 `yaml:"y"`
	Z      []float64 `yaml:"z"`
	Sizes  []float64 `yaml:"sizes"`
	Colors []string  `yaml:"colors"`
	Label  string    `yaml:"label"`
}

// ImageSpec describes an image; exactly one of Gray and Pixels is set.
type ImageSpec struct {
	Gray   [][]float64   `yaml:"gray"`
	Pixels [][][]float64 `yaml:"pixels"`
}

// LoadFile reads a figure description file.
func LoadFile(path string) (*Figure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Load decodes a figure description.
func Load(r io.Reader) (*Figure, error) {
	var spec FigureSpec
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("decode figure: %w", err)
	}
	return Build(spec)
}

// Build constructs a figure from its description.
func Build(spec FigureSpec) (*Figure, error) {
	fig := NewFigure(spec.ID)
	fig.Title = spec.Title
	if spec.Size[0] > 0 && spec.Size[1] > 0 {
		fig.Width, fig.Height = spec.Size[0], spec.Size[1]
	}
	if spec.DPI > 0 {
		fig.Dots = spec.DPI
	}

	for i, as := range spec.Axes {
		if err := buildAxes(fig, as); err != nil {
			return nil, fmt.Errorf("axes %d: %w", i, err)
		}
	}
	return fig, nil
}

func buildAxes(fig *Figure, spec AxesSpec) error {
	var ax *Axes
	if spec.ZLim != nil {
		ax3 := fig.AddAxes3D()
		ax3.ZLimits = *spec.ZLim
		if err := applyAxis(ax3.Z, spec.Z); err != nil {
			return fmt.Errorf("z axis: %w", err)
		}
		ax = ax3.Axes
	} else {
		ax = fig.AddAxes()
	}

	ax.TitleText.Value = spec.Title
	ax.Legend = spec.Legend
	if spec.Bounds != nil {
		ax.Position = *spec.Bounds
	}
	if spec.XLim != [2]float64{} {
		ax.XLimits = spec.XLim
	}
	if spec.YLim != [2]float64{} {
		ax.YLimits = spec.YLim
	}
	if err := applyAxis(ax.X, spec.X); err != nil {
		return fmt.Errorf("x axis: %w", err)
	}
	if err := applyAxis(ax.Y, spec.Y); err != nil {
		return fmt.Errorf("y axis: %w", err)
	}

	for i, ls := range spec.Lines {
		if err := addLine(ax, ls); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
	}
	for i, ss := range spec.Segments {
		if err := addSegments(ax, ss); err != nil {
			return fmt.Errorf("segments %d: %w", i, err)
		}
	}
	for i, ss := range spec.Scatter {
		if err := addScatter(ax, ss); err != nil {
			return fmt.Errorf("scatter %d: %w", i, err)
		}
	}
	for i, is := range spec.Images {
		if err := addImage(ax, is); err != nil {
			return fmt.Errorf("image %d: %w", i, err)
		}
	}
	return nil
}

func applyAxis(a *Axis, spec AxisSpec) error {
	a.LabelText.Value = spec.Label
	if spec.Scale != "" {
		a.ScaleName = spec.Scale
	}
	if spec.Base > 0 {
		a.Base = spec.Base
	}
	if spec.Epoch != "" || spec.Period != "" {
		conv := DateConverter{}
		if spec.Epoch != "" {
			t, err := time.Parse(time.RFC3339, spec.Epoch)
			if err != nil {
				return fmt.Errorf("epoch: %w", err)
			}
			conv.Start = t
		}
		if spec.Period != "" {
			a.Conv = PeriodConverter{DateConverter: conv, Frequency: spec.Period}
		} else {
			a.Conv = conv
		}
	}
	if spec.Ticks != nil {
		a.SetFixedTicks(spec.Ticks, spec.TickLabels)
	}
	for _, l := range a.Labels {
		l.Hidden = spec.HideLabels
	}
	a.Grid = spec.Grid
	a.LabelsOff = spec.Top
	return nil
}

func parseColors(specs []string) ([]scene.Color, error) {
	out := make([]scene.Color, len(specs))
	for i, s := range specs {
		c, err := parser.ParseColor(s)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

func addLine(ax *Axes, spec LineSpec) error {
	if len(spec.X) != len(spec.Y) || (spec.Z != nil && len(spec.Z) != len(spec.X)) {
		return fmt.Errorf("%w: coordinate lengths differ", parser.ErrInvalidShape)
	}
	var l *Line
	if spec.Z != nil {
		l3 := ax.AddLine3D(NewLine3D(spec.X, spec.Y, spec.Z))
		l = l3.Line
	} else {
		xy := make([]vec.Vec2, len(spec.X))
		for i := range spec.X {
			xy[i] = vec.Vec2{X: spec.X[i], Y: spec.Y[i]}
		}
		l = ax.AddLine(NewLine(xy))
	}

	if spec.Label != "" {
		l.LabelStr = spec.Label
	} else {
		l.LabelStr = fmt.Sprintf("_line%d", len(ax.lines)-1)
	}
	if spec.Color != "" {
		c, err := parser.ParseColor(spec.Color)
		if err != nil {
			return err
		}
		l.Col, l.MFace, l.MEdge = c, c, c
	}
	if spec.Marker != "" {
		l.MarkerStr = spec.Marker
	}
	if spec.LineStyle != "" {
		l.Style = spec.LineStyle
	}
	if spec.LineWidth > 0 {
		l.Width = spec.LineWidth
	}
	l.Opacity = spec.Alpha
	return nil
}

func addSegments(ax *Axes, spec SegmentSpec) error {
	colors, err := parseColors(spec.Colors)
	if err != nil {
		return err
	}
	segs := make([][]vec.Vec2, len(spec.Segments))
	for i, seg := range spec.Segments {
		segs[i] = make([]vec.Vec2, len(seg))
		for j, p := range seg {
			segs[i][j] = vec.Vec2{X: p[0], Y: p[1]}
		}
	}
	widths := spec.Widths
	if widths == nil {
		widths = []float64{1.5}
	}
	lc := NewLineCollection(segs, colors, widths)
	lc.LabelStr = spec.Label
	ax.AddCollection(lc)
	return nil
}

func addScatter(ax *Axes, spec ScatterSpec) error {
	if len(spec.X) != len(spec.Y) || (spec.Z != nil && len(spec.Z) != len(spec.X)) {
		return fmt.Errorf("%w: coordinate lengths differ", parser.ErrInvalidShape)
	}
	colors, err := parseColors(spec.Colors)
	if err != nil {
		return err
	}
	if len(colors) == 0 {
		colors = []scene.Color{scene.RGB(0.12156862745098039, 0.4666666666666667, 0.7058823529411765)}
	}
	sizes := spec.Sizes
	if sizes == nil {
		sizes = []float64{36}
	}

	if spec.Z != nil {
		c := NewScatter3D(spec.X, spec.Y, spec.Z, sizes, colors)
		c.LabelStr = spec.Label
		ax.AddCollection(c)
		return nil
	}
	offsets := make([]vec.Vec2, len(spec.X))
	for i := range spec.X {
		offsets[i] = vec.Vec2{X: spec.X[i], Y: spec.Y[i]}
	}
	c := NewScatter(offsets, sizes, colors)
	c.LabelStr = spec.Label
	ax.AddCollection(c)
	return nil
}

func addImage(ax *Axes, spec ImageSpec) error {
	switch {
	case spec.Gray != nil && spec.Pixels == nil:
		rows := len(spec.Gray)
		cols := 0
		if rows > 0 {
			cols = len(spec.Gray[0])
		}
		data := make([]float64, 0, rows*cols)
		for _, row := range spec.Gray {
			if len(row) != cols {
				return fmt.Errorf("%w: ragged image rows", parser.ErrInvalidShape)
			}
			data = append(data, row...)
		}
		ax.AddImage(NewImage(data, rows, cols))
	case spec.Pixels != nil && spec.Gray == nil:
		rows := len(spec.Pixels)
		cols, channels := 0, 0
		if rows > 0 && len(spec.Pixels[0]) > 0 {
			cols, channels = len(spec.Pixels[0]), len(spec.Pixels[0][0])
		}
		data := make([]float64, 0, rows*cols*channels)
		for _, row := range spec.Pixels {
			if len(row) != cols {
				return fmt.Errorf("%w: ragged image rows", parser.ErrInvalidShape)
			}
			for _, px := range row {
				if len(px) != channels {
					return fmt.Errorf("%w: ragged image pixels", parser.ErrInvalidShape)
				}
				data = append(data, px...)
			}
		}
		ax.AddImage(NewImage(data, rows, cols, channels))
	default:
		return fmt.Errorf("%w: image needs exactly one of gray or pixels", parser.ErrInvalidShape)
	}
	return nil
}
