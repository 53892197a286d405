// SPDX-License-Identifier: MIT

// Package rule: functional options for rule metadata.
//
// Contract:
//   - Option constructors validate and PANIC on meaningless values
//     (negative dimension/degree, unknown domain); New itself never panics.
//   - Later options override earlier ones.
package rule

import "fmt"

// Defaults for unset metadata.
const (
	// DefaultDegree marks a rule whose degree of exactness is not declared.
	DefaultDegree = -1

	// DefaultDim means "same as the points' dimension" (resolved in New).
	DefaultDim = -1
)

const (
	panicDimInvalid    = "rule: WithDim: dim must be >= 0"
	panicDegreeInvalid = "rule: WithDegree: degree must be >= 0"
)

// Meta describes a rule; it is independent of the scalar type.
type Meta struct {
	Name   string // scheme identifier, e.g. "stroud_c3_3_1"
	Domain Domain // reference domain; empty when unspecified
	Dim    int    // domain dimension
	Degree int    // claimed degree of exactness, DefaultDegree if unknown
	Source string // literature reference
	Caveat string // known defect of the published scheme, empty if none
}

// Option mutates Meta before the rule is validated.
type Option func(*Meta)

// WithName sets the scheme identifier.
func WithName(name string) Option {
	return func(m *Meta) { m.Name = name }
}

// WithDomain sets the reference domain. Panics on an unknown domain.
func WithDomain(d Domain) Option {
	if !d.Valid() {
		panic(fmt.Sprintf("rule: WithDomain: unknown domain %q", d))
	}

	return func(m *Meta) { m.Domain = d }
}

// WithDim sets the domain dimension. Panics on dim < 0.
func WithDim(dim int) Option {
	if dim < 0 {
		panic(panicDimInvalid)
	}

	return func(m *Meta) { m.Dim = dim }
}

// WithDegree sets the claimed degree of exactness. Panics on degree < 0.
func WithDegree(degree int) Option {
	if degree < 0 {
		panic(panicDegreeInvalid)
	}

	return func(m *Meta) { m.Degree = degree }
}

// WithSource records the literature reference.
func WithSource(src string) Option {
	return func(m *Meta) { m.Source = src }
}

// WithCaveat records a known defect (negative weights, points outside the
// domain, a published typo, ...).
func WithCaveat(caveat string) Option {
	return func(m *Meta) { m.Caveat = caveat }
}

func newMeta(opts ...Option) Meta {
	m := Meta{Dim: DefaultDim, Degree: DefaultDegree}
	for _, opt := range opts {
		opt(&m)
	}

	return m
}
