// SPDX-License-Identifier: MIT

package exactness

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/cubature/monomial"
	"github.com/katalvlaran/cubature/numeric"
	"github.com/katalvlaran/cubature/rule"
)

// Average returns the mean value of x^e over domain d of dimension dim, in
// field f. len(e) must be d.PointDim(dim).
// Returns ErrUnknownDomain for an unsupported domain and
// monomial.ErrInvalidArgument for a malformed exponent.
func Average[T any](f numeric.Field[T], d rule.Domain, dim int, e monomial.Exponent) (T, error) {
	var zero T
	if !d.Valid() {
		return zero, fmt.Errorf("Average(%q): %w", d, ErrUnknownDomain)
	}
	if dim < 1 || len(e) != d.PointDim(dim) {
		return zero, fmt.Errorf("Average(%s%d, %v): %w", d, dim, []int(e), monomial.ErrInvalidArgument)
	}
	for _, k := range e {
		if k < 0 {
			return zero, fmt.Errorf("Average(%s%d, %v): %w", d, dim, []int(e), monomial.ErrInvalidArgument)
		}
	}

	var num, den *big.Int
	switch d {
	case rule.Cube:
		num, den = cubeAverage(e)
	case rule.Simplex:
		num, den = simplexAverage(dim, e)
	case rule.Sphere:
		num, den = sphereAverage(dim, e)
	case rule.Ball:
		num, den = sphereAverage(dim, e)
		num.Mul(num, big.NewInt(int64(dim)))
		den.Mul(den, big.NewInt(int64(dim+e.Degree())))
	}

	return ratio(f, num, den)
}

// ratio converts num/den into f through integer literals, exact in every field.
func ratio[T any](f numeric.Field[T], num, den *big.Int) (T, error) {
	var zero T
	n, err := f.Parse(num.String())
	if err != nil {
		return zero, err
	}
	if num.Sign() == 0 {
		return n, nil
	}
	dv, err := f.Parse(den.String())
	if err != nil {
		return zero, err
	}

	return f.Div(n, dv)
}

// cubeAverage: Π 1/(e_i+1) over [-1,1]^n, zero for any odd exponent.
func cubeAverage(e monomial.Exponent) (*big.Int, *big.Int) {
	num, den := big.NewInt(1), big.NewInt(1)
	for _, k := range e {
		if k%2 == 1 {
			return big.NewInt(0), big.NewInt(1)
		}
		den.Mul(den, big.NewInt(int64(k+1)))
	}

	return num, den
}

// simplexAverage: n! Π e_i! / (n+|e|)! (Dirichlet integral, normalized).
func simplexAverage(n int, e monomial.Exponent) (*big.Int, *big.Int) {
	num := factorial(n)
	for _, k := range e {
		num.Mul(num, factorial(k))
	}

	return num, factorial(n + e.Degree())
}

// sphereAverage: Π (2k_i-1)!! / Π_{j<K} (n+2j) over S^{n-1}, zero for any
// odd exponent.
func sphereAverage(n int, e monomial.Exponent) (*big.Int, *big.Int) {
	num, den := big.NewInt(1), big.NewInt(1)
	halfDegree := 0
	for _, k := range e {
		if k%2 == 1 {
			return big.NewInt(0), big.NewInt(1)
		}
		num.Mul(num, doubleFactorial(k-1))
		halfDegree += k / 2
	}
	for j := 0; j < halfDegree; j++ {
		den.Mul(den, big.NewInt(int64(n+2*j)))
	}

	return num, den
}

func factorial(n int) *big.Int {
	if n < 2 {
		return big.NewInt(1)
	}

	return new(big.Int).MulRange(2, int64(n))
}

// doubleFactorial returns n!! with (-1)!! == 0!! == 1.
func doubleFactorial(n int) *big.Int {
	r := big.NewInt(1)
	for ; n > 1; n -= 2 {
		r.Mul(r, big.NewInt(int64(n)))
	}

	return r
}
