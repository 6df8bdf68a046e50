package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"cogentcore.org/core/colors"

	"github.com/ukaji3/figstruct-go/pkg/figstruct/models"
	"github.com/ukaji3/figstruct-go/pkg/figstruct/scene"
)

// baseColors are the single-letter color codes.
var baseColors = map[string]scene.Color{
	"b": scene.RGB(0, 0, 1),
	"g": scene.RGB(0, 0.5, 0),
	"r": scene.RGB(1, 0, 0),
	"c": scene.RGB(0, 0.75, 0.75),
	"m": scene.RGB(0.75, 0, 0.75),
	"y": scene.RGB(0.75, 0.75, 0),
	"k": scene.RGB(0, 0, 0),
	"w": scene.RGB(1, 1, 1),
}

// cycleColors is the default property cycle, addressed as C0..C9.
var cycleColors = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// ParseColor parses a color spec: hex (#rgb, #rrggbb, #rrggbbaa), a CSS
// color name, a single-letter base color, a cycle reference C0..C9, a
// grayscale level such as "0.5", or "none".
func ParseColor(spec string) (scene.Color, error) {
	s := strings.TrimSpace(spec)
	switch {
	case s == "":
		return scene.Color{}, fmt.Errorf("empty color")
	case strings.EqualFold(s, "none"):
		return scene.Color{}, nil
	}
	if c, ok := baseColors[s]; ok {
		return c, nil
	}
	if len(s) == 2 && s[0] == 'C' && s[1] >= '0' && s[1] <= '9' {
		s = cycleColors[s[1]-'0']
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if v < 0 || v > 1 {
			return scene.Color{}, fmt.Errorf("gray level %q out of [0, 1]", spec)
		}
		return scene.RGB(v, v, v), nil
	}

	if strings.HasPrefix(s, "#") {
		return parseHex(spec, s)
	}
	c, err := colors.FromName(strings.ToLower(s))
	if err != nil {
		return scene.Color{}, fmt.Errorf("parse color %q: %w", spec, err)
	}
	if c.A == 0 {
		return scene.Color{}, nil
	}
	return scene.RGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255), nil
}

// parseHex parses #rgb, #rrggbb and #rrggbbaa. The alpha byte is split off
// so the color channels are never premultiplied.
func parseHex(spec, s string) (scene.Color, error) {
	alpha := 1.0
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return scene.Color{}, fmt.Errorf("parse color %q: %w", spec, err)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	c, err := colors.FromHex(s)
	if err != nil {
		return scene.Color{}, fmt.Errorf("parse color %q: %w", spec, err)
	}
	return scene.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: alpha,
	}, nil
}

// channel8 converts a [0,1] component to a byte, rounding half to even.
func channel8(v float64) int {
	v = math.Max(0, math.Min(1, v))
	return int(math.RoundToEven(v * 255))
}

// ToHex formats c as #rrggbb, or #rrggbbaa with keepAlpha.
func ToHex(c scene.Color, keepAlpha bool) string {
	s := fmt.Sprintf("#%02x%02x%02x", channel8(c.R), channel8(c.G), channel8(c.B))
	if keepAlpha {
		s += fmt.Sprintf("%02x", channel8(c.A))
	}
	return s
}

// ColorsToHex converts each color independently.
func ColorsToHex(cs []scene.Color, keepAlpha bool) models.Batch[string] {
	out := make(models.Batch[string], len(cs))
	for i, c := range cs {
		out[i] = ToHex(c, keepAlpha)
	}
	return out
}

// ConvertSizes converts area-like marker sizes to linear sizes.
func ConvertSizes(sizes []float64) models.Batch[models.Float] {
	out := make(models.Batch[models.Float], len(sizes))
	for i, s := range sizes {
		out[i] = models.Float(math.Sqrt(s))
	}
	return out
}

// Widths converts a batch of widths.
func Widths(ws []float64) models.Batch[models.Float] {
	return models.Batch[models.Float](models.Floats(ws))
}

// RGBAString formats c as a CSS rgba() string with the given opacity.
func RGBAString(c scene.Color, alpha float64) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", channel8(c.R), channel8(c.G), channel8(c.B),
		strconv.FormatFloat(alpha, 'g', -1, 64))
}

// MergeColorAndOpacity folds an optional primitive alpha into the color.
func MergeColorAndOpacity(c scene.Color, alpha *float64) string {
	if alpha == nil {
		return RGBAString(c, c.A)
	}
	return RGBAString(c, *alpha)
}
