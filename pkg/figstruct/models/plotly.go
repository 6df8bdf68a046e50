package models

import "encoding/json"

// PlotlyFigure is a figure in the plotly JSON schema.
type PlotlyFigure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// NewPlotlyFigure returns an empty figure.
func NewPlotlyFigure() *PlotlyFigure {
	return &PlotlyFigure{
		Data: []Trace{},
		Layout: Layout{
			Axes:   map[string]*AxisRecord{},
			Scenes: map[string]*SceneRecord{},
		},
	}
}

// AddTrace appends a trace.
func (f *PlotlyFigure) AddTrace(t Trace) {
	f.Data = append(f.Data, t)
}

// Trace is one plotly trace.
type Trace interface {
	TraceType() string
}

// Layout is the plotly figure layout. 2D axes and 3D scenes are stored
// under their plotly keys (xaxis, yaxis2, scene3, ...).
type Layout struct {
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	AutoSize    bool         `json:"autosize"`
	HoverMode   string       `json:"hovermode"`
	ShowLegend  bool         `json:"showlegend"`
	Margin      Margin       `json:"margin"`
	Title       *LayoutTitle `json:"title,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`

	Axes   map[string]*AxisRecord  `json:"-"`
	Scenes map[string]*SceneRecord `json:"-"`
}

// MarshalJSON flattens the axes and scenes into the layout object.
func (l Layout) MarshalJSON() ([]byte, error) {
	type plain Layout
	base, err := json.Marshal(plain(l))
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(base, &fields); err != nil {
		return nil, err
	}
	for key, axis := range l.Axes {
		raw, err := json.Marshal(axis)
		if err != nil {
			return nil, err
		}
		fields[key] = raw
	}
	for key, scene := range l.Scenes {
		raw, err := json.Marshal(scene)
		if err != nil {
			return nil, err
		}
		fields[key] = raw
	}
	return json.Marshal(fields)
}

// Margin is the layout margin in pixels.
type Margin struct {
	L   int `json:"l"`
	R   int `json:"r"`
	T   int `json:"t"`
	B   int `json:"b"`
	Pad int `json:"pad"`
}

// LayoutTitle is the figure title.
type LayoutTitle struct {
	Text string `json:"text"`
	Font *Font  `json:"font,omitempty"`
}

// Annotation is a free text placed in paper coordinates.
type Annotation struct {
	Text      string `json:"text"`
	X         Float  `json:"x"`
	Y         Float  `json:"y"`
	XRef      string `json:"xref"`
	YRef      string `json:"yref"`
	XAnchor   string `json:"xanchor"`
	YAnchor   string `json:"yanchor"`
	ShowArrow bool   `json:"showarrow"`
	Font      *Font  `json:"font,omitempty"`
}

// LineStyle is the line part of a scatter trace.
type LineStyle struct {
	Color string `json:"color,omitempty"`
	Width Float  `json:"width"`
	Dash  string `json:"dash,omitempty"`
}

// MarkerLine is the outline of markers.
type MarkerLine struct {
	Color Batch[string] `json:"color"`
	Width Batch[Float]  `json:"width"`
}

// MarkerStyle is the marker part of a scatter trace.
type MarkerStyle struct {
	Opacity *Float        `json:"opacity,omitempty"`
	Color   Batch[string] `json:"color"`
	Symbol  Batch[string] `json:"symbol"`
	Size    Batch[Float]  `json:"size"`
	Line    *MarkerLine   `json:"line,omitempty"`
}

// ScatterTrace is a 2D scatter/line trace. X holds date strings on date
// axes and numbers otherwise.
type ScatterTrace struct {
	Type   string       `json:"type"`
	Mode   string       `json:"mode"`
	Name   string       `json:"name,omitempty"`
	X      []any        `json:"x"`
	Y      []Float      `json:"y"`
	XAxis  string       `json:"xaxis"`
	YAxis  string       `json:"yaxis"`
	Line   *LineStyle   `json:"line,omitempty"`
	Marker *MarkerStyle `json:"marker,omitempty"`
}

// TraceType implements Trace.
func (ScatterTrace) TraceType() string { return "scatter" }

// Scatter3DTrace is a 3D scatter/line trace. X holds date strings on
// date axes and numbers otherwise.
type Scatter3DTrace struct {
	Type   string       `json:"type"`
	Mode   string       `json:"mode"`
	Name   string       `json:"name,omitempty"`
	X      []any        `json:"x"`
	Y      []Float      `json:"y"`
	Z      []Float      `json:"z"`
	Scene  string       `json:"scene"`
	Line   *LineStyle   `json:"line,omitempty"`
	Marker *MarkerStyle `json:"marker,omitempty"`
}

// TraceType implements Trace.
func (Scatter3DTrace) TraceType() string { return "scatter3d" }

// ImageTrace is a raster image trace; Z is rows x columns x channels.
type ImageTrace struct {
	Type  string    `json:"type"`
	Z     [][][]int `json:"z"`
	XAxis string    `json:"xaxis"`
	YAxis string    `json:"yaxis"`
}

// TraceType implements Trace.
func (ImageTrace) TraceType() string { return "image" }
