// SPDX-License-Identifier: MIT

package monomial

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cubature/numeric"
)

// ErrInvalidArgument indicates a negative dimension or degree, or an
// exponent tuple whose length does not match the point.
var ErrInvalidArgument = errors.New("monomial: invalid argument")

// Exponent is a multi-index: Exponent{2, 0, 1} is x^2·z.
type Exponent []int

// Degree returns the total degree Σe_i.
func (e Exponent) Degree() int {
	d := 0
	for _, v := range e {
		d += v
	}

	return d
}

// GetAllExponents returns levels 0..maxDegree of exponent tuples of length
// dim; level k lists every tuple summing to k exactly once.
//
// Stage 1: level 0 is the all-zero tuple.
// Stage 2: level k+1 = augment(level k), see augment.
//
// GetAllExponents(2, 2) == [[[0 0]] [[1 0] [0 1]] [[2 0] [1 1] [0 2]]].
// dim == 0 yields [[]] at level 0 and empty levels above.
// Returns ErrInvalidArgument for negative arguments.
// Complexity: O(dim · C(maxDegree+dim, dim)) time and output size.
func GetAllExponents(dim, maxDegree int) ([][]Exponent, error) {
	if dim < 0 || maxDegree < 0 {
		return nil, fmt.Errorf("GetAllExponents(%d,%d): %w", dim, maxDegree, ErrInvalidArgument)
	}

	levels := make([][]Exponent, 0, maxDegree+1)
	levels = append(levels, []Exponent{make(Exponent, dim)})
	for k := 0; k < maxDegree; k++ {
		levels = append(levels, augment(levels[k]))
	}

	return levels, nil
}

// augment maps the tuples of sum k (all of one length) to the tuples of sum
// k+1:
//   - every tuple with its first entry incremented (covers first entry ≥ 1),
//   - then 0 prepended to augment(tails of the tuples whose first entry is 0),
//     which covers first entry == 0.
//
// Length-0 tuples have no successors.
func augment(level []Exponent) []Exponent {
	if len(level) == 0 || len(level[0]) == 0 {
		return []Exponent{}
	}

	out := make([]Exponent, 0, len(level)+1)
	var tails []Exponent
	for _, e := range level {
		inc := make(Exponent, len(e))
		copy(inc, e)
		inc[0]++
		out = append(out, inc)
		if e[0] == 0 {
			tails = append(tails, e[1:])
		}
	}
	for _, t := range augment(tails) {
		e := make(Exponent, 0, len(t)+1)
		out = append(out, append(append(e, 0), t...))
	}

	return out
}

// Count returns C(k+dim-1, dim-1), the size of level k; Count(0, 0) == 1.
func Count(dim, k int) int {
	if dim == 0 {
		if k == 0 {
			return 1
		}
		return 0
	}
	// C(n, r) with n = k+dim-1, r = dim-1, built incrementally to stay integral.
	c := 1
	for i := 1; i <= dim-1; i++ {
		c = c * (k + i) / i
	}

	return c
}

// Eval returns Π x_i^{e_i} in field f; the empty product is One.
// Returns ErrInvalidArgument when len(x) != len(e) or an exponent is negative.
// Complexity: O(Σ log e_i) multiplications.
func Eval[T any](f numeric.Field[T], x []T, e Exponent) (T, error) {
	if len(x) != len(e) {
		var zero T
		return zero, fmt.Errorf("Eval: len(x)=%d, len(e)=%d: %w", len(x), len(e), ErrInvalidArgument)
	}
	acc := f.One()
	for i, k := range e {
		if k < 0 {
			var zero T
			return zero, fmt.Errorf("Eval: exponent %d is %d: %w", i, k, ErrInvalidArgument)
		}
		if k == 0 {
			continue
		}
		acc = f.Mul(acc, numeric.Pow(f, x[i], k))
	}

	return acc, nil
}
