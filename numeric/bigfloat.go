// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math/big"
)

// DefaultPrecision is the mantissa size, in bits, used by BigFloat(0).
const DefaultPrecision uint = 256

// panicPrecisionInvalid is raised by BigFloat for precisions big.Float rejects.
const panicPrecisionInvalid = "numeric: BigFloat: precision exceeds big.MaxPrec"

type bigFloatField struct {
	prec uint // mantissa bits for every result
}

// BigFloat returns an arbitrary-precision binary floating-point field.
// prec == 0 selects DefaultPrecision. Panics when prec > big.MaxPrec
// (programmer error).
func BigFloat(prec uint) Field[*big.Float] {
	if prec == 0 {
		prec = DefaultPrecision
	}
	if prec > big.MaxPrec {
		panic(panicPrecisionInvalid)
	}

	return bigFloatField{prec: prec}
}

func (f bigFloatField) fresh() *big.Float { return new(big.Float).SetPrec(f.prec) }

func (f bigFloatField) Name() string { return fmt.Sprintf("bigfloat%d", f.prec) }
func (bigFloatField) Exact() bool { return false }
func (f bigFloatField) Zero() *big.Float { return f.fresh() }
func (f bigFloatField) One() *big.Float { return f.fresh().SetInt64(1) }
func (f bigFloatField) FromInt(v int64) *big.Float { return f.fresh().SetInt64(v) }

func (f bigFloatField) Parse(lit string) (*big.Float, error) {
	v, ok := f.fresh().SetString(lit)
	if !ok {
		return nil, fmt.Errorf("%s: parse %q: %w", f.Name(), lit, ErrSyntax)
	}

	return v, nil
}

func (f bigFloatField) Add(a, b *big.Float) *big.Float { return f.fresh().Add(a, b) }
func (f bigFloatField) Sub(a, b *big.Float) *big.Float { return f.fresh().Sub(a, b) }
func (f bigFloatField) Mul(a, b *big.Float) *big.Float { return f.fresh().Mul(a, b) }
func (f bigFloatField) Neg(a *big.Float) *big.Float { return f.fresh().Neg(a) }

func (f bigFloatField) Div(a, b *big.Float) (*big.Float, error) {
	// big.Float panics with ErrNaN on 0/0 and yields ±Inf on x/0.
	if b.Sign() == 0 {
		return nil, fmt.Errorf("%s: %s/0: %w", f.Name(), a.Text('g', 10), ErrDivisionByZero)
	}

	return f.fresh().Quo(a, b), nil
}

func (f bigFloatField) Sqrt(a *big.Float) (*big.Float, error) {
	switch a.Sign() {
	case -1:
		return nil, fmt.Errorf("%s: sqrt(%s): %w", f.Name(), a.Text('g', 10), ErrDomain)
	case 0:
		// Sqrt(±0) is +0.
		return f.fresh(), nil
	}

	return f.fresh().Sqrt(a), nil
}

func (bigFloatField) Cmp(a, b *big.Float) int { return a.Cmp(b) }

func (bigFloatField) Float64(a *big.Float) float64 {
	v, _ := a.Float64()
	return v
}

func (bigFloatField) String(a *big.Float) string { return a.Text('g', 30) }
