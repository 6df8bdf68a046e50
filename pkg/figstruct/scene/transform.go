package scene

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// ErrNotInvertible is returned when a transform difference needs the
// inverse of a singular transform.
var ErrNotInvertible = errors.New("transform is not invertible")

// Transform maps points from one coordinate system to another.
// Transforms form a tree: composites chain two transforms, blends combine
// the x part of one with the y part of another.
type Transform interface {
	Apply(pts []vec.Vec2) []vec.Vec2
	Inverted() (Transform, bool)
	Equal(other Transform) bool
}

// Affine is a leaf transform given by a matrix in PDF convention:
// x' = M[0]*x + M[2]*y + M[4], y' = M[1]*x + M[3]*y + M[5].
type Affine struct {
	Name string
	M    matrix.Matrix
}

// NewAffine returns a named affine leaf transform.
func NewAffine(name string, m matrix.Matrix) *Affine {
	return &Affine{Name: name, M: m}
}

var identity = &Affine{Name: "identity", M: matrix.Identity}

// Identity returns the identity transform.
func Identity() Transform {
	return identity
}

func (a *Affine) Apply(pts []vec.Vec2) []vec.Vec2 {
	out := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		x, y := a.M.Apply(p.X, p.Y)
		out[i] = vec.Vec2{X: x, Y: y}
	}
	return out
}

func (a *Affine) Inverted() (Transform, bool) {
	// Inv panics on singular matrices.
	if a.M[0]*a.M[3]-a.M[1]*a.M[2] == 0 {
		return nil, false
	}
	return &Affine{Name: a.Name + "^-1", M: a.M.Inv()}, true
}

// Equal reports whether other is an affine leaf with the same matrix.
func (a *Affine) Equal(other Transform) bool {
	b, ok := other.(*Affine)
	if !ok {
		return false
	}
	return a == b || a.M == b.M
}

func (a *Affine) String() string {
	return fmt.Sprintf("%s%v", a.Name, [6]float64(a.M))
}

// Composite applies A and then B.
type Composite struct {
	A, B Transform
}

// Compose returns the transform applying a and then b. Identity operands
// are dropped.
func Compose(a, b Transform) Transform {
	if a == identity {
		return b
	}
	if b == identity {
		return a
	}
	return &Composite{A: a, B: b}
}

func (c *Composite) Apply(pts []vec.Vec2) []vec.Vec2 {
	return c.B.Apply(c.A.Apply(pts))
}

func (c *Composite) Inverted() (Transform, bool) {
	ai, ok := c.A.Inverted()
	if !ok {
		return nil, false
	}
	bi, ok := c.B.Inverted()
	if !ok {
		return nil, false
	}
	return Compose(bi, ai), true
}

func (c *Composite) Equal(other Transform) bool {
	d, ok := other.(*Composite)
	if !ok {
		return false
	}
	return c == d || (c.A.Equal(d.A) && c.B.Equal(d.B))
}

// Blended uses the x output of X and the y output of Y.
type Blended struct {
	X, Y Transform
}

// Blend returns a blended transform.
func Blend(x, y Transform) *Blended {
	return &Blended{X: x, Y: y}
}

func (b *Blended) Apply(pts []vec.Vec2) []vec.Vec2 {
	xs := b.X.Apply(pts)
	ys := b.Y.Apply(pts)
	out := make([]vec.Vec2, len(pts))
	for i := range pts {
		out[i] = vec.Vec2{X: xs[i].X, Y: ys[i].Y}
	}
	return out
}

// Inverted inverts both parts; this is exact for separable parts only.
func (b *Blended) Inverted() (Transform, bool) {
	xi, ok := b.X.Inverted()
	if !ok {
		return nil, false
	}
	yi, ok := b.Y.Inverted()
	if !ok {
		return nil, false
	}
	return &Blended{X: xi, Y: yi}, true
}

func (b *Blended) Equal(other Transform) bool {
	c, ok := other.(*Blended)
	if !ok {
		return false
	}
	return b == c || (b.X.Equal(c.X) && b.Y.Equal(c.Y))
}

// IsBlended reports whether t is a blended transform.
func IsBlended(t Transform) bool {
	_, ok := t.(*Blended)
	return ok
}

// split is one way of writing a transform as left followed by right.
type split struct {
	left, right Transform
}

func splits(t Transform) []split {
	c, ok := t.(*Composite)
	if !ok {
		return []split{{left: identity, right: t}}
	}
	var out []split
	for _, s := range splits(c.A) {
		out = append(out, split{left: s.left, right: Compose(s.right, c.B)})
	}
	for _, s := range splits(c.B) {
		out = append(out, split{left: Compose(c.A, s.left), right: s.right})
	}
	return out
}

// ContainsBranch reports whether t can be written as some transform
// followed by branch.
func ContainsBranch(t, branch Transform) bool {
	for _, s := range splits(t) {
		if s.right.Equal(branch) {
			return true
		}
	}
	return false
}

// Sub returns the transform r such that r followed by other equals t.
func Sub(t, other Transform) (Transform, error) {
	for _, s := range splits(t) {
		if s.right.Equal(other) {
			return s.left, nil
		}
	}
	for _, s := range splits(other) {
		if s.right.Equal(t) {
			inv, ok := s.left.Inverted()
			if !ok {
				return nil, ErrNotInvertible
			}
			return inv, nil
		}
	}
	inv, ok := other.Inverted()
	if !ok {
		return nil, ErrNotInvertible
	}
	return Compose(t, inv), nil
}
