// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math/big"
)

type rationalField struct{}

// Rational returns the exact field of arbitrary-size fractions.
// Sqrt is closed only over perfect squares p²/q²; every other root yields
// ErrInexact, which is how callers detect schemes that need a floating field.
func Rational() Field[*big.Rat] { return rationalField{} }

func (rationalField) Name() string { return "rational" }
func (rationalField) Exact() bool { return true }
func (rationalField) Zero() *big.Rat { return new(big.Rat) }
func (rationalField) One() *big.Rat { return big.NewRat(1, 1) }
func (rationalField) FromInt(v int64) *big.Rat { return new(big.Rat).SetInt64(v) }

func (rationalField) Parse(lit string) (*big.Rat, error) {
	v, ok := new(big.Rat).SetString(lit)
	if !ok {
		return nil, fmt.Errorf("rational: parse %q: %w", lit, ErrSyntax)
	}

	return v, nil
}

func (rationalField) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (rationalField) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (rationalField) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (rationalField) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }

func (rationalField) Div(a, b *big.Rat) (*big.Rat, error) {
	if b.Sign() == 0 {
		return nil, fmt.Errorf("rational: %s/0: %w", a.RatString(), ErrDivisionByZero)
	}

	return new(big.Rat).Quo(a, b), nil
}

func (rationalField) Sqrt(a *big.Rat) (*big.Rat, error) {
	if a.Sign() < 0 {
		return nil, fmt.Errorf("rational: sqrt(%s): %w", a.RatString(), ErrDomain)
	}
	// a is kept normalized by big.Rat, so sqrt(p/q) is rational iff p and q
	// are both perfect squares.
	num, okNum := exactSqrt(a.Num())
	den, okDen := exactSqrt(a.Denom())
	if !okNum || !okDen {
		return nil, fmt.Errorf("rational: sqrt(%s): %w", a.RatString(), ErrInexact)
	}

	return new(big.Rat).SetFrac(num, den), nil
}

// exactSqrt returns ⌊√x⌋ and whether it is exact. x must be ≥ 0.
func exactSqrt(x *big.Int) (*big.Int, bool) {
	r := new(big.Int).Sqrt(x)
	sq := new(big.Int).Mul(r, r)

	return r, sq.Cmp(x) == 0
}

func (rationalField) Cmp(a, b *big.Rat) int { return a.Cmp(b) }

func (rationalField) Float64(a *big.Rat) float64 {
	v, _ := a.Float64()
	return v
}

func (rationalField) String(a *big.Rat) string { return a.RatString() }
