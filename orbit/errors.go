// SPDX-License-Identifier: MIT

// Package orbit: sentinel errors.
// Every precondition failure returns ErrInvalidOrbitSpec wrapped with the
// method name and the offending values; match with errors.Is.
package orbit

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOrbitSpec indicates a malformed orbit description: negative
	// dimension or count, counts exceeding the dimension, bad index sets, an
	// empty value-set, or an orbit larger than MaxSize elements. These are authoring errors in literature data; there is
	// no recovery.
	ErrInvalidOrbitSpec = errors.New("orbit: invalid orbit specification")

	// ErrOutOfRange indicates a row or column index outside a Points value.
	ErrOutOfRange = errors.New("orbit: index out of range")
)

// Method tokens used as error context.
const (
	MethodCombine   = "Combine"
	MethodZ         = "Z"
	MethodPM        = "PM"
	MethodPMArray   = "PMArray"
	MethodPMArray0  = "PMArray0"
	MethodPMRoll    = "PMRoll"
	MethodFSD       = "FSD"
	MethodFSArray   = "FSArray"
	MethodRD        = "RD"
	MethodPartition = "Partition"
)

// specErrorf returns "<Method>: <detail>: orbit: invalid orbit specification"
// with ErrInvalidOrbitSpec preserved for errors.Is.
func specErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrInvalidOrbitSpec)
}

// sizeErrorf reports a group that would exceed MaxSize elements.
func sizeErrorf(method, format string, args ...interface{}) error {
	return specErrorf(method, "%s: group exceeds MaxSize=%d elements", fmt.Sprintf(format, args...), MaxSize)
}
