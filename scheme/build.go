// SPDX-License-Identifier: MIT

package scheme

import (
	"fmt"

	"github.com/katalvlaran/cubature/numeric"
	"github.com/katalvlaran/cubature/orbit"
	"github.com/katalvlaran/cubature/rule"
)

// Build evaluates scheme s in field f and assembles its rule.
//
// Stage 1 (Validate): structure, via Validate.
// Stage 2 (Execute): per group, evaluate the weight and values in f and run
// the matching orbit generator at the scheme's point dimension.
// Stage 3 (Finalize): rule.New flattens the groups and attaches metadata.
//
// Arithmetic failures keep their sentinel: a scheme with irrational
// constants built in numeric.Rational fails with numeric.ErrInexact.
func Build[T any](f numeric.Field[T], s Scheme) (*rule.Rule[T], error) {
	if err := Validate(s); err != nil {
		return nil, err
	}

	b := builder[T]{e: orbit.NewEngine(f), n: s.PointDim()}
	groups := make([]rule.WeightedGroup[T], 0, len(s.Groups))
	for i, g := range s.Groups {
		w, err := numeric.Eval(f, g.Weight)
		if err != nil {
			return nil, fmt.Errorf("scheme %q: group %d weight: %w", s.Name, i, err)
		}
		p, err := b.points(g)
		if err != nil {
			return nil, fmt.Errorf("scheme %q: group %d (%s): %w", s.Name, i, g.Orbit, err)
		}
		groups = append(groups, rule.Group(w, p))
	}

	opts := []rule.Option{
		rule.WithName(s.Name),
		rule.WithDomain(s.Domain),
		rule.WithDim(s.Dim),
		rule.WithDegree(s.Degree),
		rule.WithSource(s.Source),
	}
	if s.Caveat != "" {
		opts = append(opts, rule.WithCaveat(s.Caveat))
	}

	return rule.New(groups, opts...)
}

// builder binds an engine to the scheme's point dimension.
type builder[T any] struct {
	e orbit.Engine[T]
	n int
}

func (b builder[T]) points(g Group) (*orbit.Points[T], error) {
	switch g.Orbit {
	case OrbitZ:
		return b.e.Z(b.n)

	case OrbitPM:
		a, err := numeric.Eval(b.e.Field(), g.Value)
		if err != nil {
			return nil, err
		}
		return b.e.PM(b.n, a)

	case OrbitFSD, OrbitRD:
		items, err := b.items(g.Items)
		if err != nil {
			return nil, err
		}
		if g.Orbit == OrbitFSD {
			return b.e.FSD(b.n, items...)
		}
		return b.e.RD(b.n, items)
	}

	// The remaining kinds take a value list.
	vs, err := b.values(g.Values)
	if err != nil {
		return nil, err
	}
	if (g.Orbit == OrbitPMArray || g.Orbit == OrbitFSArray) && len(vs) != b.n {
		return nil, fmt.Errorf("%d values for %d coordinates: %w", len(vs), b.n, ErrInvalidScheme)
	}
	switch g.Orbit {
	case OrbitPMArray:
		return b.e.PMArray(vs)
	case OrbitPMArray0:
		return b.e.PMArray0(b.n, vs, g.Index)
	case OrbitPMRoll:
		return b.e.PMRoll(b.n, vs)
	case OrbitFSArray:
		return b.e.FSArray(vs)
	}

	return nil, fmt.Errorf("orbit %q: %w", g.Orbit, ErrUnknownOrbit)
}

func (b builder[T]) values(exprs []string) ([]T, error) {
	out := make([]T, len(exprs))
	for i, x := range exprs {
		v, err := numeric.Eval(b.e.Field(), x)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

func (b builder[T]) items(in []Item) ([]orbit.Item[T], error) {
	out := make([]orbit.Item[T], len(in))
	for i, it := range in {
		v, err := numeric.Eval(b.e.Field(), it.Value)
		if err != nil {
			return nil, err
		}
		out[i] = orbit.Item[T]{Value: v, Count: it.Count}
	}

	return out, nil
}
