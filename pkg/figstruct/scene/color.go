package scene

import "math"

// Color is a straight-alpha RGBA color with components in [0,1].
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = channel16(c.A)
	r = channel16(c.R*c.A)
	g = channel16(c.G*c.A)
	b = channel16(c.B*c.A)
	return
}

func channel16(v float64) uint32 {
	v = math.Max(0, math.Min(1, v))
	return uint32(math.Round(v * 0xffff))
}
