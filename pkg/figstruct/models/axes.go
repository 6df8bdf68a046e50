package models

// AxesRecord describes one axes and the primitives drawn on it.
type AxesRecord struct {
	// Title is the axes title.
	Title string `json:"title"`
	// XLabel is the x axis label.
	XLabel string `json:"xlabel"`
	// YLabel is the y axis label.
	YLabel string `json:"ylabel"`
	// XLim is the x view limits.
	XLim Range `json:"xlim"`
	// YLim is the y view limits.
	YLim Range `json:"ylim"`
	// Is3D is true iff ZLim and ZLabel are present.
	Is3D bool `json:"is3D"`
	// ZLim is the z view limits of a 3D axes.
	ZLim *Range `json:"zlim,omitempty"`
	// ZLabel is the z axis label of a 3D axes.
	ZLabel *string `json:"zlabel,omitempty"`
	// Lines holds single lines followed by flattened line batches.
	Lines []LineRecord `json:"lines"`
	// Images holds raster images.
	Images []ImageRecord `json:"images"`
	// ScatterPoints holds one entry per point batch.
	ScatterPoints []ScatterRecord `json:"scatterPoints"`
}

// NewAxesRecord returns a record with empty, non-nil primitive lists.
func NewAxesRecord() AxesRecord {
	return AxesRecord{
		Lines:         []LineRecord{},
		Images:        []ImageRecord{},
		ScatterPoints: []ScatterRecord{},
	}
}

// SetZ marks the record as 3D.
func (a *AxesRecord) SetZ(lim [2]float64, label string) {
	r := RangeOf(lim)
	a.ZLim = &r
	a.ZLabel = &label
	a.Is3D = true
}
