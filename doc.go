// Package cubature builds numerical integration rules from symmetric orbits.
//
// A cubature rule is a set of points and weights that integrates every
// polynomial up to some degree exactly over a reference domain. Published
// rules are tabulated as a handful of weighted orbits: all sign flips of a
// vector, all its permutations, its cyclic shifts. This module generates
// those orbits and assembles them into flat point/weight arrays.
//
// Packages:
//
//	numeric/    scalar fields: float64, big.Float, exact big.Rat; literal expressions
//	orbit/      Points, Combine and the orbit generators (PM, FSD, RD, PMRoll, ...), Partition
//	monomial/   exponent enumeration by degree, monomial evaluation
//	rule/       weighted groups, Untangle/Split, Rule with metadata and caveat
//	exactness/  reference monomial averages per domain, degree-of-exactness checks
//	scheme/     published schemes as YAML/TOML data, built in any field
//	catalog/    embedded scheme collection, concurrent BuildAll
//
// Every generator is generic over the scalar field, so the same table
// yields float64 rules for production use and exact rational rules for
// verification:
//
//	e := orbit.NewEngine(numeric.Rational())
//	p, _ := e.FSD(3, orbit.Item[*big.Rat]{Value: big.NewRat(1, 1), Count: 1})
//	/ / p holds the six vertices of the octahedron
//
//	go get github.com/katalvlaran/cubature
package cubature
