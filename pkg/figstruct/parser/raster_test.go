package parser

import (
	"errors"
	"math"
	"testing"

	"github.com/ukaji3/figstruct-go/pkg/figstruct/scene"
)

func TestRasterRoundTrip(t *testing.T) {
	values := []float64{0, 0.1, 0.25, 0.5, 0.75, 1}
	a := scene.NewArray(values, 1, 2, 3)

	encoded, channels, err := EncodeRaster(a, RasterAuto)
	if err != nil {
		t.Fatalf("EncodeRaster failed: %v", err)
	}
	if channels != 3 {
		t.Errorf("Expected 3 channels, got %d", channels)
	}
	decoded, err := DecodeRaster(encoded, 1, 2, 3)
	if err != nil {
		t.Fatalf("DecodeRaster failed: %v", err)
	}
	for i, v := range values {
		want := int(math.Round(v * 255))
		if got := decoded[0][i/3][i%3]; got != want {
			t.Errorf("value %d: expected %d, got %d", i, want, got)
		}
	}
}

func TestRasterGrayscaleBroadcast(t *testing.T) {
	a := scene.NewArray([]float64{0, 0.2, 0.4, 1}, 2, 2)
	encoded, channels, err := EncodeRaster(a, RasterAuto)
	if err != nil {
		t.Fatalf("EncodeRaster failed: %v", err)
	}
	if channels != 3 {
		t.Fatalf("Expected 3 channels, got %d", channels)
	}
	decoded, err := DecodeRaster(encoded, 2, 2, 3)
	if err != nil {
		t.Fatalf("DecodeRaster failed: %v", err)
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			want := int(math.Round(a.Data[r*2+c] * 255))
			for k, got := range decoded[r][c] {
				if got != want {
					t.Errorf("pixel (%d,%d) channel %d: expected %d, got %d", r, c, k, want, got)
				}
			}
		}
	}
}

func TestRasterZeroImage(t *testing.T) {
	encoded, channels, err := EncodeRaster(scene.NewArray(make([]float64, 4), 2, 2), RasterAuto)
	if err != nil {
		t.Fatalf("EncodeRaster failed: %v", err)
	}
	if encoded != "AAAAAAAAAAAAAAAA" {
		t.Errorf("Expected 12 zero bytes, got %q", encoded)
	}
	if channels != 3 {
		t.Errorf("Expected 3 channels, got %d", channels)
	}
}

func TestRasterMaskAndRange(t *testing.T) {
	a := scene.MaskedArray{
		Data:  []float64{10, 300, -4, 128},
		Shape: []int{2, 2},
		Mask:  []bool{false, false, false, true},
	}
	encoded, _, err := EncodeRaster(a, RasterAuto)
	if err != nil {
		t.Fatalf("EncodeRaster failed: %v", err)
	}
	decoded, _ := DecodeRaster(encoded, 2, 2, 3)
	want := []int{10, 255, 0, 0}
	for i, w := range want {
		if got := decoded[i/2][i%2][0]; got != w {
			t.Errorf("value %d: expected %d, got %d", i, w, got)
		}
	}
}

func TestRasterRawMode(t *testing.T) {
	a := scene.NewArray([]float64{1, 0}, 1, 2)
	encoded, _, err := EncodeRaster(a, RasterRaw)
	if err != nil {
		t.Fatalf("EncodeRaster failed: %v", err)
	}
	decoded, _ := DecodeRaster(encoded, 1, 2, 3)
	if decoded[0][0][0] != 1 {
		t.Errorf("Raw mode must not scale, got %d", decoded[0][0][0])
	}
}

func TestRasterColumnMajor(t *testing.T) {
	// 2x3 array [[1,2,3],[4,5,6]] stored column by column.
	a := scene.MaskedArray{
		Data:  []float64{1, 4, 2, 5, 3, 6},
		Shape: []int{2, 3},
		Order: scene.ColumnMajor,
	}
	encoded, _, err := EncodeRaster(a, RasterAuto)
	if err != nil {
		t.Fatalf("EncodeRaster failed: %v", err)
	}
	decoded, _ := DecodeRaster(encoded, 2, 3, 3)
	want := [][]int{{1, 2, 3}, {4, 5, 6}}
	for r := range want {
		for c := range want[r] {
			if got := decoded[r][c][0]; got != want[r][c] {
				t.Errorf("(%d,%d): expected %d, got %d", r, c, want[r][c], got)
			}
		}
	}
}

func TestRasterInvalidShape(t *testing.T) {
	tests := []scene.MaskedArray{
		scene.NewArray([]float64{1, 2}, 2),
		scene.NewArray(make([]float64, 16), 2, 2, 2, 2),
		scene.NewArray([]float64{1, 2, 3}, 2, 2),
	}
	for _, a := range tests {
		if _, _, err := EncodeRaster(a, RasterAuto); !errors.Is(err, ErrInvalidShape) {
			t.Errorf("shape %v: expected ErrInvalidShape, got %v", a.Shape, err)
		}
	}
	if _, err := DecodeRaster("AAAA", 2, 2, 3); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("Expected ErrInvalidShape, got %v", err)
	}
}
