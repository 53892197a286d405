// SPDX-License-Identifier: MIT

package orbit

import "github.com/katalvlaran/cubature/numeric"

// panicNilField is raised by NewEngine(nil).
const panicNilField = "orbit: NewEngine(nil field)"

// Engine generates orbits over scalar type T. The zero Engine is unusable;
// build one with NewEngine. Engine is a value type and safe to share.
type Engine[T any] struct {
	f numeric.Field[T]
}

// NewEngine binds the orbit generators to field f. Panics on a nil field
// (programmer error).
func NewEngine[T any](f numeric.Field[T]) Engine[T] {
	if f == nil {
		panic(panicNilField)
	}

	return Engine[T]{f: f}
}

// Field returns the field the engine computes in.
func (e Engine[T]) Field() numeric.Field[T] { return e.f }

// TypeSpec is one "type" of coordinate: a value-set of interchangeable
// alternatives and the number of slots the type occupies.
//
// Example: TypeSpec{Values: {a, -a}, Count: 2} is "two slots of ±a".
type TypeSpec[T any] struct {
	Values []T
	Count  int
}

// Item is a (value, count) pair as used by FSD and RD: count slots carry
// value (and its negation, for FSD).
type Item[T any] struct {
	Value T
	Count int
}

// pm returns the value-set {+a, -a}.
func (e Engine[T]) pm(a T) []T { return []T{a, e.f.Neg(a)} }
