// SPDX-License-Identifier: MIT

// Package rule: sentinel errors.
package rule

import "errors"

var (
	// ErrNilGroup indicates a weighted group without points.
	ErrNilGroup = errors.New("rule: nil point group")

	// ErrNoGroups indicates a rule built from an empty group list.
	ErrNoGroups = errors.New("rule: no groups")

	// ErrDimensionMismatch indicates groups (or split sizes) that do not line up:
	// differing point dimensions, or sizes not summing to the number of points.
	ErrDimensionMismatch = errors.New("rule: dimension mismatch")

	// ErrInvalidMeta indicates metadata inconsistent with the points, e.g. a
	// simplex rule whose points are not barycentric (dim+1 coordinates).
	ErrInvalidMeta = errors.New("rule: invalid metadata")
)
