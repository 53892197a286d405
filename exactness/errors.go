// SPDX-License-Identifier: MIT

// Package exactness: sentinel errors.
package exactness

import "errors"

var (
	// ErrNotExact indicates a monomial the rule fails to integrate exactly.
	ErrNotExact = errors.New("exactness: rule is not exact")

	// ErrUnknownDomain indicates a rule without a supported domain.
	ErrUnknownDomain = errors.New("exactness: unknown domain")

	// ErrNoDegree indicates a rule that declares no degree to check.
	ErrNoDegree = errors.New("exactness: rule declares no degree")
)
