// SPDX-License-Identifier: MIT

package rule

import (
	"fmt"

	"github.com/katalvlaran/cubature/orbit"
)

// Rule is an immutable quadrature rule: Points[i] carries Weights[i].
type Rule[T any] struct {
	Meta
	Points  *orbit.Points[T]
	Weights []T
}

// New flattens groups with Untangle and attaches metadata.
//
// Dim defaults to the domain dimension implied by the points (points.Dim()
// minus one on the simplex). When both a domain and Dim are set, the point
// dimension must equal Domain.PointDim(Dim); otherwise ErrInvalidMeta.
// An empty group list is ErrNoGroups: a rule needs at least one group.
func New[T any](groups []WeightedGroup[T], opts ...Option) (*Rule[T], error) {
	meta := newMeta(opts...)
	if len(groups) == 0 {
		return nil, fmt.Errorf("rule.New(%s): %w", meta.Name, ErrNoGroups)
	}

	points, weights, err := Untangle(groups)
	if err != nil {
		return nil, fmt.Errorf("rule.New(%s): %w", meta.Name, err)
	}

	if meta.Dim == DefaultDim {
		meta.Dim = points.Dim()
		if meta.Domain == Simplex {
			meta.Dim--
		}
	}
	if meta.Dim < 0 || (meta.Domain != "" && meta.Domain.PointDim(meta.Dim) != points.Dim()) {
		return nil, fmt.Errorf("rule.New(%s): %s of dim %d with %d coordinates per point: %w",
			meta.Name, meta.Domain, meta.Dim, points.Dim(), ErrInvalidMeta)
	}

	return &Rule[T]{Meta: meta, Points: points, Weights: weights}, nil
}

// Len returns the number of points.
func (r *Rule[T]) Len() int { return r.Points.Len() }

// HasCaveat reports whether the scheme carries a known-defect note.
func (r *Rule[T]) HasCaveat() bool { return r.Caveat != "" }

// String summarizes the rule for logs.
func (r *Rule[T]) String() string {
	s := fmt.Sprintf("%s: %s%d, degree %d, %d points", r.Name, r.Domain, r.Dim, r.Degree, r.Len())
	if r.HasCaveat() {
		s += " (caveat: " + r.Caveat + ")"
	}

	return s
}
