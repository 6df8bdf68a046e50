package scene

// Order is the memory layout of an n-dimensional array.
type Order int

const (
	// RowMajor stores the last index contiguously (C order).
	RowMajor Order = iota
	// ColumnMajor stores the first index contiguously (Fortran order).
	ColumnMajor
)

// MaskedArray is a dense n-dimensional float array with an optional
// per-element invalidity mask.
type MaskedArray struct {
	Data  []float64
	Shape []int
	// Mask marks invalid elements; nil means no element is masked.
	Mask  []bool
	Order Order
}

// NewArray returns an unmasked row-major array.
func NewArray(data []float64, shape ...int) MaskedArray {
	return MaskedArray{Data: data, Shape: shape}
}

// Len returns the number of elements implied by the shape.
func (a MaskedArray) Len() int {
	if len(a.Shape) == 0 {
		return 0
	}
	n := 1
	for _, d := range a.Shape {
		n *= d
	}
	return n
}

// Masked reports whether any element is masked.
func (a MaskedArray) Masked() bool {
	for _, m := range a.Mask {
		if m {
			return true
		}
	}
	return false
}

// Filled returns a copy of the data with masked elements replaced by fill.
func (a MaskedArray) Filled(fill float64) []float64 {
	out := make([]float64, len(a.Data))
	copy(out, a.Data)
	for i, m := range a.Mask {
		if m && i < len(out) {
			out[i] = fill
		}
	}
	return out
}

// RawData returns the underlying data, ignoring the mask.
func (a MaskedArray) RawData() []float64 {
	return a.Data
}
