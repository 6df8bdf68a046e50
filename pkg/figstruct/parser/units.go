package parser

// PointsPerInch is the typographic point resolution.
const PointsPerInch = 72

// InchesToPixels converts a figure dimension in inches to pixels.
func InchesToPixels(inches, dpi float64) int {
	return int(inches * dpi)
}

// PointsToPixels converts a length in points to pixels.
func PointsToPixels(points, dpi float64) float64 {
	return points * dpi / PointsPerInch
}

// FractionToPixels converts a figure fraction to pixels of the given extent.
func FractionToPixels(fraction float64, extent int) int {
	return int(fraction * float64(extent))
}
