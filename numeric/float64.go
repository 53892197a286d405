// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math"
	"strconv"
)

type float64Field struct{}

// Float64 returns the IEEE-754 double precision field.
// Complexity: every operation O(1).
func Float64() Field[float64] { return float64Field{} }

func (float64Field) Name() string { return "float64" }
func (float64Field) Exact() bool { return false }
func (float64Field) Zero() float64 { return 0 }
func (float64Field) One() float64 { return 1 }
func (float64Field) FromInt(v int64) float64 { return float64(v) }

func (float64Field) Parse(lit string) (float64, error) {
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, fmt.Errorf("float64: parse %q: %w", lit, ErrSyntax)
	}

	return v, nil
}

func (float64Field) Add(a, b float64) float64 { return a + b }
func (float64Field) Sub(a, b float64) float64 { return a - b }
func (float64Field) Mul(a, b float64) float64 { return a * b }
func (float64Field) Neg(a float64) float64 { return -a }

func (float64Field) Div(a, b float64) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("float64: %g/0: %w", a, ErrDivisionByZero)
	}

	return a / b, nil
}

func (float64Field) Sqrt(a float64) (float64, error) {
	if a < 0 {
		return 0, fmt.Errorf("float64: sqrt(%g): %w", a, ErrDomain)
	}

	return math.Sqrt(a), nil
}

func (float64Field) Cmp(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (float64Field) Float64(a float64) float64 { return a }
func (float64Field) String(a float64) string { return strconv.FormatFloat(a, 'g', -1, 64) }
