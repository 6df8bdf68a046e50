package parser

import "strings"

// SymbolMap maps marker symbols to plotly marker symbols.
var SymbolMap = map[string]string{
	"o": "circle",
	".": "circle",
	",": "square",
	"v": "triangle-down",
	"^": "triangle-up",
	"<": "triangle-left",
	">": "triangle-right",
	"1": "y-down",
	"2": "y-up",
	"3": "y-left",
	"4": "y-right",
	"s": "square",
	"p": "pentagon",
	"*": "star",
	"h": "hexagon",
	"H": "hexagon2",
	"8": "octagon",
	"+": "cross",
	"x": "x",
	"X": "x",
	"D": "diamond",
	"d": "diamond-tall",
	"|": "line-ns",
	"_": "line-ew",
}

// Symbols3D are the marker symbols a plotly scatter3d trace accepts.
var Symbols3D = map[string]bool{
	"square":      true,
	"square-open": true,
	"diamond":     true,
	"circle-open": true,
	"circle":      true,
	"cross":       true,
	"cross-open":  true,
	"x":           true,
}

// DashMap maps line styles to plotly dash names.
var DashMap = map[string]string{
	"-":       "solid",
	"solid":   "solid",
	"--":      "dash",
	"dashed":  "dash",
	":":       "dot",
	"dotted":  "dot",
	"-.":      "dashdot",
	"dashdot": "dashdot",
}

// pathMarkers maps the segment codes of well-known marker paths to marker
// symbols.
var pathMarkers = map[string]string{
	"M" + strings.Repeat("C", 8) + "Z": "o",
	"M" + strings.Repeat("L", 9) + "Z": "*",
	"M" + strings.Repeat("L", 7) + "Z": "8",
	"M" + strings.Repeat("L", 5) + "Z": "h",
	"M" + strings.Repeat("L", 4) + "Z": "p",
	"MLMLML":                           "1",
	"M" + strings.Repeat("L", 3) + "Z": "s",
	"MLML":                             "+",
	"M" + strings.Repeat("L", 2) + "Z": "^",
	"ML":                               "|",
}

// NormalizeMarker maps the "no marker" sentinels to the empty string.
func NormalizeMarker(marker string) string {
	if marker == "None" || marker == "none" {
		return ""
	}
	return marker
}

// HasMarker reports whether marker draws anything.
func HasMarker(marker string) bool {
	return NormalizeMarker(marker) != ""
}

// HasLine reports whether a line style draws anything.
func HasLine(style string) bool {
	switch style {
	case "", "None", "none", " ":
		return false
	}
	return true
}

// PathMarker returns the marker symbol drawn by a path with the given
// segment codes, or "o" when the path is not a well-known marker.
func PathMarker(codes []byte) string {
	if m, ok := pathMarkers[string(codes)]; ok {
		return m
	}
	return "o"
}

// ConvertSymbol maps a marker symbol to a plotly symbol, circle if unknown.
func ConvertSymbol(marker string) string {
	if s, ok := SymbolMap[marker]; ok {
		return s
	}
	return "circle"
}

// Symbol3D maps a marker symbol to a scatter3d symbol. Anything outside
// Symbols3D becomes circle.
func Symbol3D(marker string) string {
	s := ConvertSymbol(marker)
	if Symbols3D[s] {
		return s
	}
	return "circle"
}

// ConvertDash maps a line style to a plotly dash name, solid if unknown.
func ConvertDash(style string) string {
	if d, ok := DashMap[style]; ok {
		return d
	}
	return "solid"
}
