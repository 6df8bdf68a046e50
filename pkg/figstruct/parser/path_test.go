package parser

import (
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/ukaji3/figstruct-go/pkg/figstruct/scene"
)

func TestVectorizePathRoundTrip(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 1, Y: 0}).
		LineTo(vec.Vec2{X: 1, Y: 1}).
		MoveTo(vec.Vec2{X: 3, Y: 3}).
		LineTo(vec.Vec2{X: 4, Y: 5})

	verts, codes := VectorizePath(p, nil, false)
	if string(codes) != "MLLML" {
		t.Fatalf("Expected codes MLLML, got %s", codes)
	}
	rebuilt, err := BuildPath(verts, codes)
	if err != nil {
		t.Fatalf("BuildPath failed: %v", err)
	}
	if len(rebuilt.Coords) != len(p.Coords) {
		t.Fatalf("Expected %d vertices, got %d", len(p.Coords), len(rebuilt.Coords))
	}
	for i := range p.Coords {
		if rebuilt.Coords[i] != p.Coords[i] {
			t.Errorf("vertex %d: expected %v, got %v", i, p.Coords[i], rebuilt.Coords[i])
		}
		if rebuilt.Cmds[i] != p.Cmds[i] {
			t.Errorf("command %d: expected %v, got %v", i, p.Cmds[i], rebuilt.Cmds[i])
		}
	}
}

func TestVectorizeEmptyPath(t *testing.T) {
	for _, p := range []*path.Data{nil, {}} {
		verts, codes := VectorizePath(p, nil, false)
		if verts == nil || codes == nil {
			t.Errorf("Expected empty non-nil results, got %v %v", verts, codes)
		}
		if len(verts) != 0 || len(codes) != 0 {
			t.Errorf("Expected empty results, got %v %v", verts, codes)
		}
	}
}

func TestVectorizeCloseAndCurves(t *testing.T) {
	p := &path.Data{
		Cmds: []path.Command{path.CmdMoveTo, path.CmdQuadTo, path.CmdCubeTo, path.CmdClose},
		Coords: []vec.Vec2{
			{X: 0, Y: 0},
			{X: 1, Y: 1}, {X: 2, Y: 0},
			{X: 3, Y: 1}, {X: 4, Y: 1}, {X: 5, Y: 0},
		},
	}
	verts, codes := VectorizePath(p, nil, false)
	if string(codes) != "MSCZ" {
		t.Errorf("Expected MSCZ, got %s", codes)
	}
	if len(verts) != 6 {
		t.Errorf("Expected 6 vertices, got %d", len(verts))
	}
}

func TestVectorizeTransform(t *testing.T) {
	p := (&path.Data{}).MoveTo(vec.Vec2{X: 1, Y: 2})
	tr := scene.NewAffine("double", matrix.Scale(2, 2))
	verts, _ := VectorizePath(p, tr, false)
	if verts[0] != (vec.Vec2{X: 2, Y: 4}) {
		t.Errorf("Expected (2,4), got %v", verts[0])
	}
}

func TestVectorizeSimplify(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 2, Y: 2}).
		LineTo(vec.Vec2{X: 3, Y: 3}).
		LineTo(vec.Vec2{X: 3, Y: 0})

	verts, codes := VectorizePath(p, nil, true)
	if string(codes) != "MLL" {
		t.Fatalf("Expected MLL, got %s", codes)
	}
	want := []vec.Vec2{{X: 0, Y: 0}, {X: 3, Y: 3}, {X: 3, Y: 0}}
	for i := range want {
		if verts[i] != want[i] {
			t.Errorf("vertex %d: expected %v, got %v", i, want[i], verts[i])
		}
	}
}

func TestBuildPathMismatch(t *testing.T) {
	if _, err := BuildPath([]vec.Vec2{{}}, []byte("ML")); err == nil {
		t.Error("Expected error for missing vertices")
	}
	if _, err := BuildPath([]vec.Vec2{{}}, []byte("Q")); err == nil {
		t.Error("Expected error for unknown code")
	}
}

func TestPathMarker(t *testing.T) {
	tests := []struct {
		codes string
		want  string
	}{
		{"MCCCCCCCCZ", "o"},
		{"MLLLZ", "s"},
		{"MLLZ", "^"},
		{"MLML", "+"},
		{"ML", "|"},
		{"MLLLLLLLLLZ", "*"},
		{"MSZ", "o"},
	}
	for _, tt := range tests {
		if got := PathMarker([]byte(tt.codes)); got != tt.want {
			t.Errorf("PathMarker(%s) = %q, want %q", tt.codes, got, tt.want)
		}
	}
}

func TestMarkerMaps(t *testing.T) {
	tests := []struct {
		marker string
		plotly string
		sym3D  string
	}{
		{"o", "circle", "circle"},
		{"s", "square", "square"},
		{"D", "diamond", "diamond"},
		{"x", "x", "x"},
		{"+", "cross", "cross"},
		{"^", "triangle-up", "circle"},
		{"*", "star", "circle"},
		{"?", "circle", "circle"},
	}
	for _, tt := range tests {
		if got := ConvertSymbol(tt.marker); got != tt.plotly {
			t.Errorf("ConvertSymbol(%q) = %q, want %q", tt.marker, got, tt.plotly)
		}
		if got := Symbol3D(tt.marker); got != tt.sym3D {
			t.Errorf("Symbol3D(%q) = %q, want %q", tt.marker, got, tt.sym3D)
		}
	}

	if NormalizeMarker("None") != "" || NormalizeMarker("o") != "o" {
		t.Error("NormalizeMarker did not map the none sentinel")
	}
	if ConvertDash("--") != "dash" || ConvertDash("weird") != "solid" {
		t.Error("ConvertDash mapping is wrong")
	}
}
