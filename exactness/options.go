// SPDX-License-Identifier: MIT

package exactness

import "math"

// DefaultTolerance is the relative tolerance for inexact fields.
const DefaultTolerance = 1e-12

const panicToleranceInvalid = "exactness: WithTolerance: tol must be finite, non-negative"

// Option configures Check and Degree.
type Option func(*config)

type config struct {
	tol float64 // relative tolerance, ignored by exact fields
}

// WithTolerance sets the relative tolerance used for inexact fields: a value
// passes when |got-want| ≤ tol·max(1, |want|). Panics on negative, NaN or
// infinite tol.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(c *config) { c.tol = tol }
}

func newConfig(opts ...Option) config {
	c := config{tol: DefaultTolerance}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
