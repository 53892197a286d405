// Package monomial enumerates monomial exponents and evaluates monomials.
//
// GetAllExponents(dim, m) returns, level by level, every multi-index
// e = (e_1..e_dim) with Σe = k for k = 0..m. Those levels are the monomial
// basis used to test a rule's degree of exactness: a rule of degree D must
// integrate x^e exactly for every e of level ≤ D.
//
// Level k holds exactly C(k+dim-1, dim-1) distinct tuples. The order inside a
// level is an implementation detail.
package monomial
