package parser

import (
	"encoding/json"
	"testing"

	"github.com/ukaji3/figstruct-go/pkg/figstruct/scene"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"red", "#ff0000ff"},
		{"r", "#ff0000ff"},
		{"#00ff00", "#00ff00ff"},
		{"#0f0", "#00ff00ff"},
		{"#0000ff80", "#0000ff80"},
		{"C0", "#1f77b4ff"},
		{"0.5", "#808080ff"},
		{"none", "#00000000"},
	}
	for _, tt := range tests {
		c, err := ParseColor(tt.spec)
		if err != nil {
			t.Errorf("ParseColor(%q) failed: %v", tt.spec, err)
			continue
		}
		if got := ToHex(c, true); got != tt.want {
			t.Errorf("ParseColor(%q) = %s, want %s", tt.spec, got, tt.want)
		}
	}

	for _, bad := range []string{"", "notacolor", "1.5", "#12345"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) should fail", bad)
		}
	}
}

func TestToHexRounding(t *testing.T) {
	// 0.5*255 = 127.5 rounds to the even 128.
	if got := ToHex(scene.RGB(0.5, 0, 1), false); got != "#8000ff" {
		t.Errorf("Expected #8000ff, got %s", got)
	}
	if got := ToHex(scene.Color{R: 1, A: 0.5}, true); got != "#ff000080" {
		t.Errorf("Expected #ff000080, got %s", got)
	}
}

func TestColorsToHexCollapse(t *testing.T) {
	red := scene.RGB(1, 0, 0)

	one, err := json.Marshal(ColorsToHex([]scene.Color{red}, false))
	if err != nil {
		t.Fatal(err)
	}
	if string(one) != `"#ff0000"` {
		t.Errorf("Expected scalar, got %s", one)
	}

	two := ColorsToHex([]scene.Color{red, red}, false)
	if two[0] != ColorsToHex([]scene.Color{red}, false)[0] {
		t.Errorf("Collapsing changed the element value")
	}
	raw, _ := json.Marshal(two)
	if string(raw) != `["#ff0000","#ff0000"]` {
		t.Errorf("Expected list, got %s", raw)
	}
}

func TestConvertSizes(t *testing.T) {
	raw, _ := json.Marshal(ConvertSizes([]float64{36}))
	if string(raw) != "6" {
		t.Errorf("Expected 6, got %s", raw)
	}
	raw, _ = json.Marshal(ConvertSizes([]float64{4, 9}))
	if string(raw) != "[2,3]" {
		t.Errorf("Expected [2,3], got %s", raw)
	}
}

func TestRGBAString(t *testing.T) {
	half := 0.5
	if got := MergeColorAndOpacity(scene.RGB(1, 0, 0), &half); got != "rgba(255,0,0,0.5)" {
		t.Errorf("Unexpected %s", got)
	}
	if got := MergeColorAndOpacity(scene.RGB(0, 0, 1), nil); got != "rgba(0,0,255,1)" {
		t.Errorf("Unexpected %s", got)
	}
}
