// SPDX-License-Identifier: MIT

package numeric

// Field is the arithmetic surface the orbit engine needs from a scalar type.
// Implementations MUST NOT mutate their arguments: results are always fresh
// values, so pointer scalars may be shared freely between rows.
type Field[T any] interface {
	// Name identifies the field in logs and error messages ("float64", "rational", ...).
	Name() string

	// Exact reports whether arithmetic in this field is free of rounding.
	// Exactness checks compare with Cmp==0 when true, with a tolerance otherwise.
	Exact() bool

	// Zero returns the additive identity.
	Zero() T

	// One returns the multiplicative identity.
	One() T

	// FromInt converts an integer exactly.
	FromInt(v int64) T

	// Parse converts a numeric literal ("3", "0.6", "1e-3").
	// Returns ErrSyntax for malformed input.
	Parse(lit string) (T, error)

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	Neg(a T) T

	// Div returns a/b or ErrDivisionByZero.
	Div(a, b T) (T, error)

	// Sqrt returns the non-negative square root of a.
	// Returns ErrDomain for a<0 and ErrInexact when the root is not representable.
	Sqrt(a T) (T, error)

	// Cmp returns -1, 0 or +1 as a<b, a==b, a>b.
	Cmp(a, b T) int

	// Float64 returns the nearest float64 to a.
	Float64(a T) float64

	// String formats a for humans.
	String(a T) string
}

// Pow returns a^k for k ≥ 0 by binary exponentiation; Pow(a, 0) is One
// (including 0^0, the monomial convention).
// Complexity: O(log k) multiplications.
func Pow[T any](f Field[T], a T, k int) T {
	result := f.One()
	base := a
	for k > 0 {
		if k&1 == 1 {
			result = f.Mul(result, base)
		}
		k >>= 1
		if k > 0 {
			base = f.Mul(base, base)
		}
	}

	return result
}

// Sum adds xs left to right; the empty sum is Zero.
func Sum[T any](f Field[T], xs []T) T {
	acc := f.Zero()
	for _, x := range xs {
		acc = f.Add(acc, x)
	}

	return acc
}

// Abs returns |a| using Cmp against Zero.
func Abs[T any](f Field[T], a T) T {
	if f.Cmp(a, f.Zero()) < 0 {
		return f.Neg(a)
	}

	return a
}
