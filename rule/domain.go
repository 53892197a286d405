// SPDX-License-Identifier: MIT

package rule

// Domain names a reference integration domain.
type Domain string

// Reference domains. Points are Cartesian except on the simplex, where they
// are barycentric.
const (
	// Cube is the hypercube [-1, 1]^n.
	Cube Domain = "cube"
	// Simplex is the n-simplex in barycentric coordinates (n+1 per point).
	Simplex Domain = "simplex"
	// Ball is the unit ball {|x| ≤ 1} in R^n.
	Ball Domain = "ball"
	// Sphere is the unit sphere surface {|x| = 1} in R^n.
	Sphere Domain = "sphere"
)

// Domains lists every known domain.
var Domains = []Domain{Cube, Simplex, Ball, Sphere}

// Valid reports whether d is one of Domains.
func (d Domain) Valid() bool {
	switch d {
	case Cube, Simplex, Ball, Sphere:
		return true
	}

	return false
}

// PointDim returns the coordinate count of a point on d of dimension dim.
func (d Domain) PointDim(dim int) int {
	if d == Simplex {
		return dim + 1
	}

	return dim
}
