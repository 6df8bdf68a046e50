package parser

import (
	"encoding/base64"
	"fmt"
	"math"

	"github.com/ukaji3/figstruct-go/pkg/figstruct/scene"
)

// RasterMode selects how raster values are mapped to bytes.
type RasterMode string

const (
	// RasterAuto scales arrays whose values all lie in [0,1] by 255 and
	// casts any other array directly.
	RasterAuto RasterMode = "auto"
	// RasterRaw always casts values directly to bytes.
	RasterRaw RasterMode = "raw"
)

// EncodeRaster encodes a 2D or 3D array as base64 bytes in row-major
// order. Masked entries become 0. A 2D array is broadcast to three equal
// channels; a 3D array keeps its trailing dimension as the channel count.
func EncodeRaster(a scene.MaskedArray, mode RasterMode) (string, int, error) {
	if len(a.Shape) != 2 && len(a.Shape) != 3 {
		return "", 0, fmt.Errorf("%w: raster must be 2D or 3D, got %dD", ErrInvalidShape, len(a.Shape))
	}
	if a.Len() != len(a.Data) {
		return "", 0, fmt.Errorf("%w: shape %v does not match %d values", ErrInvalidShape, a.Shape, len(a.Data))
	}

	values := a.Filled(0)
	if a.Order == scene.ColumnMajor {
		values = toRowMajor(values, a.Shape)
	}

	scale := mode != RasterRaw && unitRange(values)
	pixels := make([]byte, len(values))
	for i, v := range values {
		pixels[i] = toByte(v, scale)
	}

	channels := 3
	if len(a.Shape) == 3 {
		channels = a.Shape[2]
	} else {
		pixels = broadcastGray(pixels)
	}
	return base64.StdEncoding.EncodeToString(pixels), channels, nil
}

// DecodeRaster decodes an encoded raster into a rows x cols x channels matrix.
func DecodeRaster(encoded string, rows, cols, channels int) ([][][]int, error) {
	buf, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode raster: %w", err)
	}
	if rows*cols*channels != len(buf) {
		return nil, fmt.Errorf("%w: %dx%dx%d raster from %d bytes", ErrInvalidShape, rows, cols, channels, len(buf))
	}
	out := make([][][]int, rows)
	for r := range out {
		out[r] = make([][]int, cols)
		for c := range out[r] {
			px := make([]int, channels)
			base := (r*cols + c) * channels
			for k := range px {
				px[k] = int(buf[base+k])
			}
			out[r][c] = px
		}
	}
	return out, nil
}

func unitRange(values []float64) bool {
	for _, v := range values {
		if !(v >= 0 && v <= 1) {
			return false
		}
	}
	return true
}

func toByte(v float64, scale bool) byte {
	if scale {
		return byte(math.Round(v * 255))
	}
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v)
}

func broadcastGray(gray []byte) []byte {
	out := make([]byte, 0, len(gray)*3)
	for _, g := range gray {
		out = append(out, g, g, g)
	}
	return out
}

// toRowMajor reorders column-major data into row-major order.
func toRowMajor(data []float64, shape []int) []float64 {
	out := make([]float64, len(data))
	idx := make([]int, len(shape))
	for row := range out {
		col, stride := 0, 1
		for d := range shape {
			col += idx[d] * stride
			stride *= shape[d]
		}
		out[row] = data[col]
		for d := len(shape) - 1; d >= 0; d-- {
			idx[d]++
			if idx[d] < shape[d] {
				break
			}
			idx[d] = 0
		}
	}
	return out
}
