// Package models defines the JSON records produced by figure extraction.
package models

import (
	"encoding/json"
	"math"
	"strconv"
)

// Float is a float64 that serializes NaN and infinities as null.
type Float float64

// MarshalJSON implements json.Marshaler.
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(v, 'g', -1, 64)), nil
}

// Floats converts a float64 slice.
func Floats(vs []float64) []Float {
	out := make([]Float, len(vs))
	for i, v := range vs {
		out[i] = Float(v)
	}
	return out
}

// Point is one vertex, with 2 or 3 coordinates.
type Point []Float

// Pt builds a point from its coordinates.
func Pt(coords ...float64) Point {
	return Point(Floats(coords))
}

// Range is a [min, max] pair.
type Range [2]Float

// RangeOf converts axis limits.
func RangeOf(lim [2]float64) Range {
	return Range{Float(lim[0]), Float(lim[1])}
}

// Batch holds one value per primitive of a batch. It serializes through
// collapseSingleton: a batch of exactly one member is written as that
// member, any other batch as a list.
type Batch[T any] []T

// IsUniform reports whether the batch collapses to a scalar.
func (b Batch[T]) IsUniform() bool {
	return len(b) == 1
}

// MarshalJSON implements json.Marshaler.
func (b Batch[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(collapseSingleton(b))
}

// UnmarshalJSON accepts both the scalar and the list form.
func (b *Batch[T]) UnmarshalJSON(data []byte) error {
	var list []T
	if err := json.Unmarshal(data, &list); err == nil {
		*b = list
		return nil
	}
	var one T
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*b = Batch[T]{one}
	return nil
}

func collapseSingleton[T any](b Batch[T]) any {
	if len(b) == 1 {
		return b[0]
	}
	if b == nil {
		return []T{}
	}
	return []T(b)
}
