// Package state builds the flat figure record consumed by the remote viewer.
package state

import (
	"fmt"

	"github.com/ukaji3/figstruct-go/pkg/figstruct/models"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/parser"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/scene"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/walker"
)

// Builder accumulates a FigureRecord during a walk.
type Builder struct {
	parser  *parser.Parser
	raster  parser.RasterMode
	record  *models.FigureRecord
	current *models.AxesRecord
}

// NewBuilder returns a builder using p for primitive conversion.
func NewBuilder(p *parser.Parser, raster parser.RasterMode) *Builder {
	return &Builder{parser: p, raster: raster}
}

// Build walks fig and returns its flat record.
func Build(fig scene.Figure, p *parser.Parser, raster parser.RasterMode) (*models.FigureRecord, error) {
	b := NewBuilder(p, raster)
	if err := walker.Walk(fig, b.Handlers()); err != nil {
		return nil, err
	}
	return b.Record(), nil
}

// Record returns the record built so far.
func (b *Builder) Record() *models.FigureRecord {
	return b.record
}

// Handlers returns the hooks filling the record.
func (b *Builder) Handlers() walker.Handlers {
	return walker.Handlers{
		OpenFigure:      b.openFigure,
		OpenAxes:        b.openAxes,
		CloseAxes:       b.closeAxes,
		Label:           b.label,
		Line:            b.line,
		LineCollection:  b.lineCollection,
		PointCollection: b.pointCollection,
		Image:           b.image,
	}
}

func (b *Builder) openFigure(fig scene.Figure) error {
	b.record = &models.FigureRecord{
		ID:    fig.Number(),
		Title: fig.SupTitle(),
		Axes:  []models.AxesRecord{},
	}
	return nil
}

func (b *Builder) openAxes(ax *walker.AxesContext) error {
	rec := models.NewAxesRecord()
	rec.XLim = models.RangeOf(ax.Axes.XLim())
	rec.YLim = models.RangeOf(ax.Axes.YLim())
	if ax.Is3D() {
		rec.SetZ(ax.Z.ZLim(), "")
	}
	b.current = &rec
	return nil
}

func (b *Builder) closeAxes(*walker.AxesContext) error {
	b.record.Axes = append(b.record.Axes, *b.current)
	b.current = nil
	return nil
}

func (b *Builder) label(_ *walker.AxesContext, kind walker.LabelKind, text scene.Text) error {
	s := text.Text()
	switch kind {
	case walker.LabelTitle:
		b.current.Title = s
	case walker.LabelX:
		b.current.XLabel = s
	case walker.LabelY:
		b.current.YLabel = s
	case walker.LabelZ:
		b.current.ZLabel = &s
	}
	return nil
}

// defaultLabel is the label the host assigns to the i-th unlabeled line.
func defaultLabel(i int) string {
	return fmt.Sprintf("_line%d", i)
}

func (b *Builder) line(_ *walker.AxesContext, item walker.LineItem) error {
	l := item.Line
	rec := models.LineRecord{
		Color:     parser.ToHex(l.Color(), false),
		Marker:    parser.NormalizeMarker(l.Marker()),
		LineStyle: l.LineStyle(),
		LineWidth: models.Float(l.LineWidth()),
	}
	if label := l.Label(); label != defaultLabel(item.Index) {
		rec.Label = label
	}

	if item.Kind == walker.Line3D {
		xs, ys, zs := item.Data3D.Data3D()
		if len(ys) != len(xs) || len(zs) != len(xs) {
			return fmt.Errorf("%w: 3D line with %d, %d, %d coordinates", parser.ErrInvalidShape, len(xs), len(ys), len(zs))
		}
		rec.Points = make([]models.Point, len(xs))
		for i := range xs {
			rec.Points[i] = models.Pt(xs[i], ys[i], zs[i])
		}
	} else {
		xy := l.XYData()
		rec.Points = make([]models.Point, len(xy))
		for i, p := range xy {
			rec.Points[i] = models.Pt(p.X, p.Y)
		}
	}
	b.current.Lines = append(b.current.Lines, rec)
	return nil
}

func (b *Builder) lineCollection(_ *walker.AxesContext, item walker.CollectionItem) error {
	lines, err := parser.ProcessLineCollection(item.Lines)
	if err != nil {
		return err
	}
	b.current.Lines = append(b.current.Lines, lines...)
	return nil
}

func (b *Builder) pointCollection(ax *walker.AxesContext, item walker.CollectionItem) error {
	c, err := b.parser.ProcessCollection(ax.Refs, item.Collection, ax.Axes.TransAxes(), nil)
	if err != nil {
		return err
	}
	b.current.ScatterPoints = append(b.current.ScatterPoints, models.ScatterRecord{
		Color:  c.FaceColors,
		Points: c.Points(),
		Marker: ".",
		Label:  "",
		Width:  parser.ConvertSizes(item.Points.Sizes()),
	})
	return nil
}

func (b *Builder) image(_ *walker.AxesContext, _ int, img scene.Image) error {
	encoded, channels, err := parser.EncodeRaster(img.Array(), b.raster)
	if err != nil {
		return err
	}
	rows, cols := img.Size()
	b.current.Images = append(b.current.Images, models.ImageRecord{
		Height:      rows,
		Width:       cols,
		Visible:     img.Visible(),
		RGBAMatrix:  encoded,
		NumChannels: channels,
	})
	return nil
}
