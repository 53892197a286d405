// Package numeric abstracts the scalar type that quadrature points and
// weights are expressed in.
//
// What & Why:
//
//	Literature constants are exact (1/6, sqrt(3/5), ...), yet most callers
//	want float64. Rather than branching at every call site between exact
//	and floating arithmetic, every orbit generator and the flattener are
//	generic over T and receive a Field[T] that knows how to add, multiply,
//	divide and take square roots of T.
//
// Implementations:
//   - Float64():     plain IEEE-754 float64.
//   - BigFloat(p):   *big.Float at p bits of mantissa (p=0 ⇒ DefaultPrecision).
//   - Rational():    *big.Rat, exact. Sqrt succeeds only for perfect squares
//     and returns ErrInexact otherwise.
//
// Literal expressions ("1/6", "-sqrt(3/5)", "((18+sqrt(30))/72)^2") are
// evaluated in any field with Eval.
//
// Complexity:
//
//	Float64 ops are O(1). big.Float/big.Rat ops are polynomial in the
//	operand size; scheme constants keep those sizes small.
package numeric
