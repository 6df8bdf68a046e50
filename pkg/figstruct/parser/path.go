package parser

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/ukaji3/figstruct-go/pkg/figstruct/scene"
)

// Segment codes.
const (
	CodeMoveTo    byte = 'M'
	CodeLineTo    byte = 'L'
	CodeQuadratic byte = 'S'
	CodeCubic     byte = 'C'
	CodeClose     byte = 'Z'
)

var segmentCodes = map[path.Command]byte{
	path.CmdMoveTo: CodeMoveTo,
	path.CmdLineTo: CodeLineTo,
	path.CmdQuadTo: CodeQuadratic,
	path.CmdCubeTo: CodeCubic,
	path.CmdClose:  CodeClose,
}

// vertexCount returns the number of vertices consumed by a code.
func vertexCount(code byte) int {
	switch code {
	case CodeMoveTo, CodeLineTo:
		return 1
	case CodeQuadratic:
		return 2
	case CodeCubic:
		return 3
	default:
		return 0
	}
}

// VectorizePath flattens p into its vertices and one code per segment.
// Close segments emit a code but no vertex. With simplify set, runs of
// collinear line-to segments are merged.
func VectorizePath(p *path.Data, t scene.Transform, simplify bool) ([]vec.Vec2, []byte) {
	verts := []vec.Vec2{}
	codes := []byte{}
	if p == nil || len(p.Cmds) == 0 {
		return verts, codes
	}

	coords := p.Coords
	if t != nil {
		coords = t.Apply(coords)
	}

	next := 0
	for _, cmd := range p.Cmds {
		code := segmentCodes[cmd]
		n := vertexCount(code)
		if next+n > len(coords) {
			break
		}
		seg := coords[next : next+n]
		next += n

		if simplify && code == CodeLineTo && canMerge(verts, codes, seg[0]) {
			verts[len(verts)-1] = seg[0]
			continue
		}
		verts = append(verts, seg...)
		codes = append(codes, code)
	}
	return verts, codes
}

// canMerge reports whether a line-to v continues the previous line-to in
// the same direction.
func canMerge(verts []vec.Vec2, codes []byte, v vec.Vec2) bool {
	if len(codes) < 2 || codes[len(codes)-1] != CodeLineTo || len(verts) < 2 {
		return false
	}
	a, b := verts[len(verts)-2], verts[len(verts)-1]
	d1 := b.Sub(a)
	d2 := v.Sub(b)
	cross := d1.X*d2.Y - d1.Y*d2.X
	dot := d1.X*d2.X + d1.Y*d2.Y
	scale := math.Max(math.Hypot(d1.X, d1.Y)*math.Hypot(d2.X, d2.Y), 1e-300)
	return math.Abs(cross)/scale < 1e-9 && dot > 0
}

// BuildPath rebuilds a path from vertices and codes.
func BuildPath(verts []vec.Vec2, codes []byte) (*path.Data, error) {
	p := &path.Data{}
	next := 0
	for _, code := range codes {
		var cmd path.Command
		switch code {
		case CodeMoveTo:
			cmd = path.CmdMoveTo
		case CodeLineTo:
			cmd = path.CmdLineTo
		case CodeQuadratic:
			cmd = path.CmdQuadTo
		case CodeCubic:
			cmd = path.CmdCubeTo
		case CodeClose:
			cmd = path.CmdClose
		default:
			return nil, ErrInvalidShape
		}
		n := vertexCount(code)
		if next+n > len(verts) {
			return nil, ErrInvalidShape
		}
		p.Cmds = append(p.Cmds, cmd)
		p.Coords = append(p.Coords, verts[next:next+n]...)
		next += n
	}
	if next != len(verts) {
		return nil, ErrInvalidShape
	}
	return p, nil
}
