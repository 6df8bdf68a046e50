package models

// LineRecord describes one polyline.
type LineRecord struct {
	// Points holds [x,y] or [x,y,z] vertices, matching the source dimensionality.
	Points []Point `json:"points"`
	// Label is the user label, empty for auto-generated labels.
	Label string `json:"label"`
	// Color is the #rrggbb line color.
	Color string `json:"color"`
	// Marker is the marker symbol, empty for none.
	Marker string `json:"marker"`
	// LineStyle is the host line style name or code.
	LineStyle string `json:"lineStyle"`
	// LineWidth is the width in points.
	LineWidth Float `json:"lineWidth"`
}
