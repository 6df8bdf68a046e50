package models

import "encoding/json"

// SceneRecord describes the layout of one 3D axes.
type SceneRecord struct {
	XAxis  AxisRecord  `json:"xaxis"`
	YAxis  AxisRecord  `json:"yaxis"`
	ZAxis  AxisRecord  `json:"zaxis"`
	Domain SceneDomain `json:"domain"`
}

// SceneDomain is the viewport fraction occupied by a scene.
type SceneDomain struct {
	X Range `json:"x"`
	Y Range `json:"y"`
}

// Font is a text size and color.
type Font struct {
	// Size is the font size in points, null if unknown.
	Size  *Float `json:"size"`
	Color string `json:"color,omitempty"`
}

// AxisRecord describes one axis of a 2D axes or of a 3D scene.
type AxisRecord struct {
	// Type is the axis scale: linear, log or date.
	Type string `json:"type"`
	// Range is the view range, null when the viewer should autorange.
	Range AxisRange `json:"range"`
	// Domain is the viewport fraction the axis spans.
	Domain *Range `json:"domain,omitempty"`
	// Side is bottom/top for x and z axes, left/right for y axes.
	Side string `json:"side,omitempty"`
	// Anchor is the counterpart axis id of a 2D axis.
	Anchor   string `json:"anchor,omitempty"`
	TickFont *Font  `json:"tickfont,omitempty"`
	// Ticks is the tick placement, always "inside".
	Ticks string `json:"ticks"`
	// TickValues holds explicit tick locations, null for automatic ticks.
	TickValues []Float `json:"tickvalues"`
	// TickFormat is "", a list of fixed labels, or null.
	TickFormat TickFormat `json:"tickformat"`
	// Title is the axis label; omitted when empty.
	Title     string `json:"title,omitempty"`
	TitleFont *Font  `json:"titlefont,omitempty"`
	ShowGrid  *bool  `json:"showgrid,omitempty"`
	ZeroLine  bool   `json:"zeroline"`
	Visible   *bool  `json:"visible,omitempty"`
	NTicks    *int   `json:"nticks,omitempty"`
	Tick0     *Float `json:"tick0,omitempty"`
	DTick     *Float `json:"dtick,omitempty"`
	// ExponentFormat is "e" for math-text log formatters.
	ExponentFormat string `json:"exponentformat,omitempty"`
}

// TickFormat is null (automatic), "" (labels hidden) or a fixed label list.
type TickFormat struct {
	Hidden bool
	Labels []string
}

// MarshalJSON implements json.Marshaler.
func (t TickFormat) MarshalJSON() ([]byte, error) {
	switch {
	case t.Hidden:
		return []byte(`""`), nil
	case t.Labels != nil:
		return json.Marshal(t.Labels)
	default:
		return []byte("null"), nil
	}
}

// AxisRange is a numeric range, a date-string range, or null.
type AxisRange struct {
	Numbers *Range
	Dates   []string
}

// NumericRange returns a numeric axis range.
func NumericRange(lo, hi float64) AxisRange {
	return AxisRange{Numbers: &Range{Float(lo), Float(hi)}}
}

// MarshalJSON implements json.Marshaler.
func (r AxisRange) MarshalJSON() ([]byte, error) {
	switch {
	case r.Dates != nil:
		return json.Marshal(r.Dates)
	case r.Numbers != nil:
		return json.Marshal(r.Numbers)
	default:
		return []byte("null"), nil
	}
}
