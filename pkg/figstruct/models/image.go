package models

// ImageRecord describes one raster image.
type ImageRecord struct {
	// Height is the number of rows.
	Height int `json:"height"`
	// Width is the number of columns.
	Width int `json:"width"`
	// Visible is the image visibility.
	Visible bool `json:"visible"`
	// RGBAMatrix is the base64 row-major byte buffer.
	RGBAMatrix string `json:"rgbaMatrix"`
	// NumChannels is the size of the trailing dimension of the buffer.
	NumChannels int `json:"numChannels"`
}
