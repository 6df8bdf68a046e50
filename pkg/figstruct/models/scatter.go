package models

// ScatterRecord describes one point batch.
type ScatterRecord struct {
	// Color is one #rrggbbaa face color per point, collapsed when uniform.
	Color Batch[string] `json:"color"`
	// Points holds the offsets, [x,y] or [x,y,z].
	Points []Point `json:"points"`
	// Marker is the marker symbol.
	Marker string `json:"marker"`
	// Label is the batch label.
	Label string `json:"label"`
	// Width is the linear marker size per point, collapsed when uniform.
	Width Batch[Float] `json:"width"`
}
