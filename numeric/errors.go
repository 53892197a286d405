// SPDX-License-Identifier: MIT

// Package numeric: sentinel error set.
// Callers MUST match with errors.Is; implementations wrap with context via %w.
package numeric

import "errors"

var (
	// ErrDomain indicates an argument outside the mathematical domain of an
	// operation, e.g. Sqrt of a negative value.
	ErrDomain = errors.New("numeric: argument outside domain")

	// ErrInexact indicates that the exact result is not representable in the
	// field (Sqrt(2) in Rational).
	ErrInexact = errors.New("numeric: result not representable exactly")

	// ErrDivisionByZero is returned by Div when the divisor is zero.
	ErrDivisionByZero = errors.New("numeric: division by zero")

	// ErrSyntax indicates a malformed numeric literal or expression.
	ErrSyntax = errors.New("numeric: syntax error")
)
