// SPDX-License-Identifier: MIT

// Package scheme: sentinel errors.
package scheme

import "errors"

var (
	// ErrInvalidScheme indicates a malformed scheme description: missing name,
	// unknown domain, bad dimension or degree, missing or unexpected group
	// fields, or a value that does not evaluate.
	ErrInvalidScheme = errors.New("scheme: invalid scheme")

	// ErrUnknownOrbit indicates an orbit kind outside the supported set.
	ErrUnknownOrbit = errors.New("scheme: unknown orbit kind")

	// ErrUnknownFormat indicates an unsupported file format.
	ErrUnknownFormat = errors.New("scheme: unknown format")
)
