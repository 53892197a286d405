// Package exactness verifies the degree of exactness of a quadrature rule.
//
// A rule of degree D over domain Ω must reproduce, for every monomial x^e
// with |e| ≤ D, the mean value of x^e over Ω:
//
//	Σ_i w_i · x_i^e  ==  (1/|Ω|) ∫_Ω x^e dx
//
// Rules are expected in the mean-value convention (weights sum to 1). The
// reference averages below are rational, so exact fields (numeric.Rational)
// verify with equality and floating fields within a relative tolerance:
//
//	cube    [-1,1]^n   Π 1/(e_i+1)                     (all e_i even, else 0)
//	simplex T_n        n! Π e_i! / (n+|e|)!            (barycentric e, n+1 entries)
//	sphere  S^{n-1}    Π (2k_i-1)!! / Π_{j<K} (n+2j)   (e_i = 2k_i, K = Σk_i, else 0)
//	ball    B^n        sphere(e) · n/(n+|e|)
package exactness
