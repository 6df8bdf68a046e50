package parser

import (
	"fmt"
	"math"

	"github.com/ukaji3/figstruct-go/pkg/figstruct/models"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/scene"
)

// ScaleKind is an axis scale supported by the exporters.
type ScaleKind string

const (
	ScaleLinear ScaleKind = "linear"
	ScaleLog    ScaleKind = "log"
	ScaleDate   ScaleKind = "date"
)

// AxisScale returns the scale kind of a. Axes with a date converter are
// date axes; any scale other than linear or log is ErrUnsupportedScale.
func AxisScale(a scene.Axis) (ScaleKind, error) {
	if a.Converter() != nil {
		return ScaleDate, nil
	}
	switch s := ScaleKind(a.Scale()); s {
	case ScaleLinear, ScaleLog:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedScale, a.Scale())
	}
}

// AxisProps are the properties read from one axis.
type AxisProps struct {
	Scale ScaleKind
	// Position is bottom/top for horizontal axes, left/right for vertical.
	Position string
	NTicks   int
	// TickValues is nil unless the axis uses fixed tick locations.
	TickValues []float64
	TickFormat models.TickFormat
	// FontSize is the size of the first tick label, nil without labels.
	FontSize *float64
	GridOn   bool
	Visible  bool
}

// ReadAxis collects the properties of a.
func ReadAxis(a scene.Axis, vertical bool) (AxisProps, error) {
	scale, err := AxisScale(a)
	if err != nil {
		return AxisProps{}, err
	}
	props := AxisProps{
		Scale:   scale,
		GridOn:  a.GridOn(),
		Visible: a.Visible(),
	}

	switch {
	case vertical && a.LabelOn():
		props.Position = "left"
	case vertical:
		props.Position = "right"
	case a.LabelOn():
		props.Position = "bottom"
	default:
		props.Position = "top"
	}

	loc := a.MajorLocator()
	props.NTicks = len(loc.Ticks)
	if loc.Kind == scene.LocatorFixed {
		props.TickValues = append([]float64{}, loc.Ticks...)
	}

	labels := a.TickLabels()
	props.TickFormat = tickFormat(a.MajorFormatter(), labels)
	if len(labels) > 0 {
		size := labels[0].FontSize()
		props.FontSize = &size
	}
	return props, nil
}

func tickFormat(f scene.Formatter, labels []scene.Text) models.TickFormat {
	switch f.Kind {
	case scene.FormatterNull:
		return models.TickFormat{Hidden: true}
	case scene.FormatterFixed:
		return models.TickFormat{Labels: append([]string{}, f.Seq...)}
	}
	for _, l := range labels {
		if l.Visible() {
			return models.TickFormat{}
		}
	}
	return models.TickFormat{Hidden: true}
}

// AxisRecord builds the layout record of one axis with numeric range lim.
func (p *Parser) AxisRecord(name string, a scene.Axis, props AxisProps, lim [2]float64) (models.AxisRecord, error) {
	grid, visible := props.GridOn, props.Visible
	rec := models.AxisRecord{
		Type:       string(props.Scale),
		Range:      models.NumericRange(lim[0], lim[1]),
		Side:       props.Position,
		Ticks:      "inside",
		TickValues: nil,
		TickFormat: props.TickFormat,
		ShowGrid:   &grid,
		Visible:    &visible,
		TickFont:   &models.Font{},
	}
	if props.TickValues != nil {
		rec.TickValues = models.Floats(props.TickValues)
	}
	if props.FontSize != nil {
		size := models.Float(*props.FontSize)
		rec.TickFont.Size = &size
	}

	switch props.Scale {
	case ScaleDate:
		dom, err := DateDomain(a.Converter(), lim)
		if err != nil {
			return rec, fmt.Errorf("%s axis: %w", name, err)
		}
		rec.Range = models.AxisRange{Dates: []string{dom[0].String(), dom[1].String()}}
	case ScaleLinear:
		p.linearTicks(name, &rec, props)
	case ScaleLog:
		p.logTicks(name, &rec, props, lim, a.LogBase())
	}

	if props.Scale != ScaleDate && a.MajorFormatter().Kind == scene.FormatterLogMathtext {
		rec.ExponentFormat = "e"
	}
	return rec, nil
}

// linearTicks emits tick0/dtick for evenly spaced fixed ticks and nticks
// otherwise.
func (p *Parser) linearTicks(name string, rec *models.AxisRecord, props AxisProps) {
	tv := props.TickValues
	if len(tv) < 2 {
		rec.NTicks = &props.NTicks
		return
	}
	step := roundTo(tv[1]-tv[0], 12)
	for i := 2; i < len(tv); i++ {
		if roundTo(tv[i]-tv[i-1], 12) != step {
			p.Log.Warn().Str("axis", name).Msg("linear tick spacing not even, ignoring tick formatting")
			rec.NTicks = &props.NTicks
			return
		}
	}
	tick0, dtick := models.Float(tv[0]), models.Float(tv[1]-tv[0])
	rec.Tick0, rec.DTick = &tick0, &dtick
}

// logTicks emits log10 ranges for base-10 axes and degrades other bases
// to an autoranged linear axis.
func (p *Parser) logTicks(name string, rec *models.AxisRecord, props AxisProps, lim [2]float64, base float64) {
	if base != 10 {
		p.Log.Warn().Str("axis", name).Float64("base", base).Msg("converted non-base-10 log scale to linear")
		rec.Type = string(ScaleLinear)
		rec.Range = models.AxisRange{}
		return
	}
	if tv := props.TickValues; len(tv) >= 2 {
		tick0, dtick := models.Float(tv[0]), models.Float(tv[1]-tv[0])
		rec.Tick0, rec.DTick = &tick0, &dtick
	} else {
		rec.NTicks = &props.NTicks
	}
	rec.Range = models.NumericRange(math.Log10(lim[0]), math.Log10(lim[1]))
}

func roundTo(v float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(v*scale) / scale
}

// ApplyLabel sets the axis title from a label. Empty labels add nothing.
func ApplyLabel(rec *models.AxisRecord, label scene.Text) {
	if label == nil || label.Text() == "" {
		return
	}
	size := models.Float(label.FontSize())
	rec.Title = label.Text()
	rec.TitleFont = &models.Font{Size: &size, Color: ToHex(label.Color(), false)}
}
