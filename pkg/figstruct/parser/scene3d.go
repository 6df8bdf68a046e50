package parser

import (
	"fmt"
	"math"

	"github.com/ukaji3/figstruct-go/pkg/figstruct/models"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/scene"
)

// Extent is a [min, max] interval in figure fraction.
type Extent [2]float64

// UnionBounds returns the horizontal and vertical extent covered by all
// axes of fig.
func UnionBounds(axes []scene.Axes) (x, y Extent) {
	if len(axes) == 0 {
		return Extent{0, 1}, Extent{0, 1}
	}
	x = Extent{math.Inf(1), math.Inf(-1)}
	y = Extent{math.Inf(1), math.Inf(-1)}
	for _, ax := range axes {
		b := ax.Bounds()
		x[0] = math.Min(x[0], b[0])
		x[1] = math.Max(x[1], b[0]+b[2])
		y[0] = math.Min(y[0], b[1])
		y[1] = math.Max(y[1], b[1]+b[3])
	}
	return x, y
}

func fraction(lo, hi float64, e Extent) models.Range {
	span := e[1] - e[0]
	if span == 0 {
		return models.Range{0, 1}
	}
	return models.Range{models.Float((lo - e[0]) / span), models.Float((hi - e[0]) / span)}
}

// ConvertXDomain maps the horizontal axes bounds into the extent.
func ConvertXDomain(bounds [4]float64, e Extent) models.Range {
	return fraction(bounds[0], bounds[0]+bounds[2], e)
}

// ConvertYDomain maps the vertical axes bounds into the extent.
func ConvertYDomain(bounds [4]float64, e Extent) models.Range {
	return fraction(bounds[1], bounds[1]+bounds[3], e)
}

// ConvertZDomain maps the depth of a 3D axes, taken from its width and
// height bounds, into the extent.
func ConvertZDomain(bounds [4]float64, e Extent) models.Range {
	return fraction(bounds[2], bounds[2]+bounds[3], e)
}

// BuildXYAxes builds the layout records of a 2D axes.
func (p *Parser) BuildXYAxes(ax scene.Axes, xb, yb Extent) (x, y models.AxisRecord, err error) {
	bounds := ax.Bounds()
	xp, err := ReadAxis(ax.XAxis(), false)
	if err != nil {
		return x, y, fmt.Errorf("x axis: %w", err)
	}
	yp, err := ReadAxis(ax.YAxis(), true)
	if err != nil {
		return x, y, fmt.Errorf("y axis: %w", err)
	}
	if x, err = p.AxisRecord("x", ax.XAxis(), xp, ax.XLim()); err != nil {
		return x, y, err
	}
	if y, err = p.AxisRecord("y", ax.YAxis(), yp, ax.YLim()); err != nil {
		return x, y, err
	}
	xd, yd := ConvertXDomain(bounds, xb), ConvertYDomain(bounds, yb)
	x.Domain, y.Domain = &xd, &yd
	return x, y, nil
}

// BuildScene builds the scene record of a 3D axes. xb and yb are the union
// extents of all axes of the figure.
func (p *Parser) BuildScene(ax scene.Axes, z scene.ZAxes, xb, yb Extent) (*models.SceneRecord, error) {
	axes := []struct {
		name string
		axis scene.Axis
		lim  [2]float64
	}{
		{"x", ax.XAxis(), ax.XLim()},
		{"y", ax.YAxis(), ax.YLim()},
		{"z", z.ZAxis(), z.ZLim()},
	}
	var recs [3]models.AxisRecord
	for i, a := range axes {
		props, err := ReadAxis(a.axis, false)
		if err != nil {
			return nil, fmt.Errorf("%s axis: %w", a.name, err)
		}
		rec, err := p.AxisRecord(a.name, a.axis, props, a.lim)
		if err != nil {
			return nil, err
		}
		rec.Side = ""
		recs[i] = rec
	}

	bounds := ax.Bounds()
	zd := ConvertZDomain(bounds, Extent{0, 1})
	recs[2].Domain = &zd
	return &models.SceneRecord{
		XAxis: recs[0],
		YAxis: recs[1],
		ZAxis: recs[2],
		Domain: models.SceneDomain{
			X: ConvertXDomain(bounds, xb),
			Y: ConvertYDomain(bounds, yb),
		},
	}, nil
}
