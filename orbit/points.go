// SPDX-License-Identifier: MIT

package orbit

import (
	"fmt"
	"strings"
)

// Points is an immutable point group: Len() coordinate vectors of equal
// length Dim(), stored row-major in one flat slice.
//
// Scalars of pointer types (*big.Rat, *big.Float) may be shared between
// rows; callers MUST treat every returned value as read-only.
type Points[T any] struct {
	rows, dim int
	data      []T // row-major, len == rows*dim
}

// NewPoints copies rows into a Points value of dimension dim.
// An empty rows slice yields a zero-row group of dimension dim.
// Returns ErrInvalidOrbitSpec for dim < 0 or a row of the wrong length.
// Complexity: O(len(rows)*dim).
func NewPoints[T any](dim int, rows [][]T) (*Points[T], error) {
	if dim < 0 {
		return nil, specErrorf("NewPoints", "dim=%d", dim)
	}
	p := newPoints[T](len(rows), dim)
	for i, r := range rows {
		if len(r) != dim {
			return nil, specErrorf("NewPoints", "row %d has length %d, want %d", i, len(r), dim)
		}
		copy(p.data[i*dim:(i+1)*dim], r)
	}

	return p, nil
}

// newPoints allocates a rows×dim group; entries are the zero value of T.
func newPoints[T any](rows, dim int) *Points[T] {
	return &Points[T]{rows: rows, dim: dim, data: make([]T, rows*dim)}
}

// Len returns the number of points (rows).
// Complexity: O(1).
func (p *Points[T]) Len() int { return p.rows }

// Dim returns the length of every coordinate vector.
// Complexity: O(1).
func (p *Points[T]) Dim() int { return p.dim }

// At returns coordinate j of point i, or ErrOutOfRange.
// Complexity: O(1).
func (p *Points[T]) At(i, j int) (T, error) {
	var zero T
	if i < 0 || i >= p.rows || j < 0 || j >= p.dim {
		return zero, fmt.Errorf("Points.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return p.data[i*p.dim+j], nil
}

// Row returns a copy of point i, or ErrOutOfRange.
// Complexity: O(Dim()).
func (p *Points[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= p.rows {
		return nil, fmt.Errorf("Points.Row(%d): %w", i, ErrOutOfRange)
	}
	out := make([]T, p.dim)
	copy(out, p.view(i))

	return out, nil
}

// Rows returns a copy of every point, in order.
// Complexity: O(Len()*Dim()).
func (p *Points[T]) Rows() [][]T {
	out := make([][]T, p.rows)
	for i := range out {
		out[i] = make([]T, p.dim)
		copy(out[i], p.view(i))
	}

	return out
}

// Each calls fn for every point in order until fn returns false.
// The row slice is a view into internal storage and MUST NOT be modified or
// retained.
func (p *Points[T]) Each(fn func(i int, row []T) bool) {
	for i := 0; i < p.rows; i++ {
		if !fn(i, p.view(i)) {
			return
		}
	}
}

// Slice returns rows [from, to) as a new group, or ErrOutOfRange.
// Complexity: O((to-from)*Dim()).
func (p *Points[T]) Slice(from, to int) (*Points[T], error) {
	if from < 0 || to > p.rows || from > to {
		return nil, fmt.Errorf("Points.Slice(%d,%d): %w", from, to, ErrOutOfRange)
	}
	out := newPoints[T](to-from, p.dim)
	copy(out.data, p.data[from*p.dim:to*p.dim])

	return out, nil
}

// Clone returns a copy with independent backing storage.
// Complexity: O(Len()*Dim()).
func (p *Points[T]) Clone() *Points[T] {
	data := make([]T, len(p.data))
	copy(data, p.data)

	return &Points[T]{rows: p.rows, dim: p.dim, data: data}
}

// String implements fmt.Stringer, one bracketed row per line.
func (p *Points[T]) String() string {
	var b strings.Builder
	for i := 0; i < p.rows; i++ {
		b.WriteString("[")
		for j, v := range p.view(i) {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprint(&b, v)
		}
		b.WriteString("]\n")
	}

	return b.String()
}

func (p *Points[T]) view(i int) []T { return p.data[i*p.dim : (i+1)*p.dim] }
