package parser

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"github.com/ukaji3/figstruct-go/pkg/figstruct/models"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/scene"
)

// Offset orders.
const (
	OffsetBefore = "before"
	OffsetAfter  = "after"
)

var offsetOrders = map[string]string{
	"data":   OffsetBefore,
	"screen": OffsetAfter,
}

// VectorPath is a vectorized path resolved into a coordinate space.
type VectorPath struct {
	Space    Space
	Vertices []vec.Vec2
	Codes    []byte
}

// Collection holds the geometry and style of a primitive batch.
type Collection struct {
	OffsetSpace Space
	Offsets     []vec.Vec2
	// Offsets3D holds one [x,y,z] triple per primitive of a 3D batch.
	Offsets3D [][3]float64
	// OffsetOrder tells whether offsets apply before or after the path
	// transforms.
	OffsetOrder    string
	Paths          []VectorPath
	PathTransforms []matrix.Matrix

	LineWidths models.Batch[models.Float]
	FaceColors models.Batch[string]
	EdgeColors models.Batch[string]
	Alpha      *float64
	ZOrder     float64
}

// Is3D reports whether the batch carries explicit 3D offsets.
func (c *Collection) Is3D() bool {
	return c.Offsets3D != nil
}

// Points returns the batch offsets as record points, 3D when available.
func (c *Collection) Points() []models.Point {
	if c.Is3D() {
		out := make([]models.Point, len(c.Offsets3D))
		for i, p := range c.Offsets3D {
			out[i] = models.Pt(p[0], p[1], p[2])
		}
		return out
	}
	out := make([]models.Point, len(c.Offsets))
	for i, p := range c.Offsets {
		out[i] = models.Pt(p.X, p.Y)
	}
	return out
}

// ProcessCollection extracts geometry and style from a batch. Offsets are
// resolved with forceOffset and every path with forcePath; either may be
// nil.
func (p *Parser) ProcessCollection(refs *AxesRefs, c scene.Collection, forcePath, forceOffset scene.Transform) (*Collection, error) {
	order, ok := offsetOrders[c.OffsetPosition()]
	if !ok {
		return nil, fmt.Errorf("%w: offset position %q", ErrInvalidShape, c.OffsetPosition())
	}

	offsetTrans := c.OffsetTransform()
	if offsetTrans == nil {
		offsetTrans = scene.Identity()
	}
	offsets, err := p.Resolve(offsetTrans, refs, c.Offsets(), forceOffset)
	if err != nil {
		return nil, fmt.Errorf("resolve offsets: %w", err)
	}

	master := c.Transform()
	if master == nil {
		master = scene.Identity()
	}
	paths := make([]VectorPath, 0, len(c.Paths()))
	for _, raw := range c.Paths() {
		verts, codes := VectorizePath(raw, nil, false)
		res, err := p.Resolve(master, refs, verts, forcePath)
		if err != nil {
			return nil, fmt.Errorf("resolve path: %w", err)
		}
		paths = append(paths, VectorPath{Space: res.Space, Vertices: res.Data, Codes: codes})
	}

	out := &Collection{
		OffsetSpace:    offsets.Space,
		Offsets:        offsets.Data,
		OffsetOrder:    order,
		Paths:          paths,
		PathTransforms: c.PathTransforms(),
		LineWidths:     Widths(c.LineWidths()),
		FaceColors:     ColorsToHex(c.FaceColors(), true),
		EdgeColors:     ColorsToHex(c.EdgeColors(), true),
		Alpha:          c.Alpha(),
		ZOrder:         c.ZOrder(),
	}

	if c3, ok := c.(scene.Path3DCollection); ok {
		out.Offsets3D, err = Stack3D(c3.Offsets3D())
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Stack3D transposes three per-axis arrays into [x,y,z] triples. The raw
// data is used and masks are ignored.
func Stack3D(axes [3]scene.MaskedArray) ([][3]float64, error) {
	xs, ys, zs := axes[0].RawData(), axes[1].RawData(), axes[2].RawData()
	if len(xs) != len(ys) || len(xs) != len(zs) {
		return nil, fmt.Errorf("%w: 3D offsets of lengths %d, %d, %d", ErrInvalidShape, len(xs), len(ys), len(zs))
	}
	out := make([][3]float64, len(xs))
	for i := range xs {
		out[i] = [3]float64{xs[i], ys[i], zs[i]}
	}
	return out, nil
}

// ProcessLineCollection flattens a line batch into one record per segment.
// Colors and widths cycle over the batch.
func ProcessLineCollection(c scene.LineCollection) ([]models.LineRecord, error) {
	segments := c.Segments()
	out := make([]models.LineRecord, 0, len(segments))
	if len(segments) == 0 {
		return out, nil
	}
	colors, widths := c.Colors(), c.LineWidths()
	if len(colors) == 0 || len(widths) == 0 {
		return nil, fmt.Errorf("%w: line batch with %d colors and %d widths", ErrInvalidShape, len(colors), len(widths))
	}
	for i, seg := range segments {
		points := make([]models.Point, len(seg))
		for j, p := range seg {
			points[j] = models.Pt(p.X, p.Y)
		}
		out = append(out, models.LineRecord{
			Points:    points,
			Label:     c.Label(),
			Color:     ToHex(colors[i%len(colors)], false),
			Marker:    ".",
			LineStyle: "solid",
			LineWidth: models.Float(widths[i%len(widths)]),
		})
	}
	return out, nil
}
