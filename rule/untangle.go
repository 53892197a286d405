// SPDX-License-Identifier: MIT

package rule

import (
	"fmt"

	"github.com/katalvlaran/cubature/orbit"
)

// WeightedGroup is a point group whose points all carry the same weight.
type WeightedGroup[T any] struct {
	Weight T
	Points *orbit.Points[T]
}

// Group pairs w with p; shorthand for composite literals in constructors.
func Group[T any](w T, p *orbit.Points[T]) WeightedGroup[T] {
	return WeightedGroup[T]{Weight: w, Points: p}
}

// Untangle flattens weighted groups into aligned (points, weights).
//
// points is the row-wise concatenation of the groups in input order and
// weights[i] is the weight of the group row i came from. No aggregation, no
// normalization, no deduplication: len(weights) == points.Len() == Σ|G_j|.
//
// An empty list yields zero points of dimension 0. Zero-row groups are
// allowed. Returns ErrNilGroup for a nil group and ErrDimensionMismatch when
// groups differ in dimension.
// Complexity: O(Σ|G_j| · dim).
func Untangle[T any](groups []WeightedGroup[T]) (*orbit.Points[T], []T, error) {
	// Stage 1 (Validate): shared dimension, total size.
	dim, total := 0, 0
	for j, g := range groups {
		if g.Points == nil {
			return nil, nil, fmt.Errorf("Untangle: group %d: %w", j, ErrNilGroup)
		}
		if j == 0 {
			dim = g.Points.Dim()
		} else if g.Points.Dim() != dim {
			return nil, nil, fmt.Errorf("Untangle: group %d has dim %d, want %d: %w",
				j, g.Points.Dim(), dim, ErrDimensionMismatch)
		}
		total += g.Points.Len()
	}

	// Stage 2 (Execute): concatenate rows, broadcast weights.
	rows := make([][]T, 0, total)
	weights := make([]T, 0, total)
	for _, g := range groups {
		g.Points.Each(func(_ int, row []T) bool {
			rows = append(rows, row)
			weights = append(weights, g.Weight)
			return true
		})
	}

	// NewPoints copies the row views out of the groups' storage.
	points, err := orbit.NewPoints(dim, rows)
	if err != nil {
		return nil, nil, fmt.Errorf("Untangle: %w", err)
	}

	return points, weights, nil
}

// Split cuts points back into consecutive groups of the given sizes, the
// inverse of Untangle's concatenation. Returns ErrDimensionMismatch when the
// sizes are negative or do not sum to points.Len().
// Complexity: O(points.Len() · dim).
func Split[T any](points *orbit.Points[T], sizes []int) ([]*orbit.Points[T], error) {
	if points == nil {
		return nil, fmt.Errorf("Split: %w", ErrNilGroup)
	}
	total := 0
	for i, s := range sizes {
		if s < 0 {
			return nil, fmt.Errorf("Split: size %d is %d: %w", i, s, ErrDimensionMismatch)
		}
		total += s
	}
	if total != points.Len() {
		return nil, fmt.Errorf("Split: sizes sum to %d, have %d points: %w", total, points.Len(), ErrDimensionMismatch)
	}

	out := make([]*orbit.Points[T], len(sizes))
	offset := 0
	for i, s := range sizes {
		part, err := points.Slice(offset, offset+s)
		if err != nil {
			return nil, fmt.Errorf("Split: %w", err)
		}
		out[i] = part
		offset += s
	}

	return out, nil
}

// Sizes returns the row count of each group, the argument Split expects.
func Sizes[T any](groups []WeightedGroup[T]) []int {
	sizes := make([]int, len(groups))
	for i, g := range groups {
		if g.Points != nil {
			sizes[i] = g.Points.Len()
		}
	}

	return sizes
}
