// SPDX-License-Identifier: MIT

package exactness

import (
	"fmt"
	"math"

	"github.com/katalvlaran/cubature/monomial"
	"github.com/katalvlaran/cubature/numeric"
	"github.com/katalvlaran/cubature/rule"
)

// Apply returns Σ_i w_i · x_i^e for rule r.
// Complexity: O(r.Len() · Σ log e_j).
func Apply[T any](f numeric.Field[T], r *rule.Rule[T], e monomial.Exponent) (T, error) {
	acc := f.Zero()
	var err error
	r.Points.Each(func(i int, row []T) bool {
		var v T
		if v, err = monomial.Eval(f, row, e); err != nil {
			return false
		}
		acc = f.Add(acc, f.Mul(r.Weights[i], v))
		return true
	})

	return acc, err
}

// Check verifies that r integrates every monomial of degree ≤ r.Degree
// exactly over r.Domain. Returns nil on success, or an error wrapping
// ErrNotExact that names the first failing exponent.
// Returns ErrNoDegree when the rule declares no degree.
func Check[T any](f numeric.Field[T], r *rule.Rule[T], opts ...Option) error {
	if r.Degree < 0 {
		return fmt.Errorf("Check(%s): %w", r.Name, ErrNoDegree)
	}
	cfg := newConfig(opts...)

	return checkUpTo(f, r, r.Degree, cfg)
}

// Degree returns the largest D ≤ maxDegree such that r is exact for every
// monomial of degree ≤ D, or -1 when even the constant fails (weights not
// summing to 1). Errors other than ErrNotExact are returned as-is.
func Degree[T any](f numeric.Field[T], r *rule.Rule[T], maxDegree int, opts ...Option) (int, error) {
	cfg := newConfig(opts...)
	levels, err := monomial.GetAllExponents(r.Points.Dim(), maxDegree)
	if err != nil {
		return 0, fmt.Errorf("Degree(%s): %w", r.Name, err)
	}
	for k, level := range levels {
		for _, e := range level {
			ok, err := exactFor(f, r, e, cfg)
			if err != nil {
				return 0, fmt.Errorf("Degree(%s): %w", r.Name, err)
			}
			if !ok {
				return k - 1, nil
			}
		}
	}

	return maxDegree, nil
}

func checkUpTo[T any](f numeric.Field[T], r *rule.Rule[T], degree int, cfg config) error {
	levels, err := monomial.GetAllExponents(r.Points.Dim(), degree)
	if err != nil {
		return fmt.Errorf("Check(%s): %w", r.Name, err)
	}
	for _, level := range levels {
		for _, e := range level {
			ok, err := exactFor(f, r, e, cfg)
			if err != nil {
				return fmt.Errorf("Check(%s): %w", r.Name, err)
			}
			if !ok {
				got, _ := Apply(f, r, e)
				want, _ := Average(f, r.Domain, r.Dim, e)
				return fmt.Errorf("Check(%s): x^%v: got %s, want %s: %w",
					r.Name, []int(e), f.String(got), f.String(want), ErrNotExact)
			}
		}
	}

	return nil
}

// exactFor compares the rule's value for x^e with the reference average.
func exactFor[T any](f numeric.Field[T], r *rule.Rule[T], e monomial.Exponent, cfg config) (bool, error) {
	got, err := Apply(f, r, e)
	if err != nil {
		return false, err
	}
	want, err := Average(f, r.Domain, r.Dim, e)
	if err != nil {
		return false, err
	}
	if f.Exact() {
		return f.Cmp(got, want) == 0, nil
	}
	diff := math.Abs(f.Float64(f.Sub(got, want)))
	scale := math.Max(1, math.Abs(f.Float64(want)))

	return diff <= cfg.tol*scale, nil
}
