// SPDX-License-Identifier: MIT

package orbit

import "github.com/katalvlaran/cubature/numeric"

// Float64 is the float64 engine behind the package-level shorthands below.
var Float64 = NewEngine(numeric.Float64())

// Combine is Float64.Combine.
func Combine(specs ...TypeSpec[float64]) (*Points[float64], error) { return Float64.Combine(specs...) }

// Z is Float64.Z.
func Z(n int) (*Points[float64], error) { return Float64.Z(n) }

// PM is Float64.PM.
func PM(n int, a float64) (*Points[float64], error) { return Float64.PM(n, a) }

// PMArray is Float64.PMArray.
func PMArray(v []float64) (*Points[float64], error) { return Float64.PMArray(v) }

// PMArray0 is Float64.PMArray0.
func PMArray0(n int, v []float64, idx []int) (*Points[float64], error) {
	return Float64.PMArray0(n, v, idx)
}

// PMRoll is Float64.PMRoll.
func PMRoll(n int, v []float64) (*Points[float64], error) { return Float64.PMRoll(n, v) }

// FSD is Float64.FSD.
func FSD(n int, items ...Item[float64]) (*Points[float64], error) { return Float64.FSD(n, items...) }

// FSArray is Float64.FSArray.
func FSArray(v []float64) (*Points[float64], error) { return Float64.FSArray(v) }

// RD is Float64.RD.
func RD(n int, items []Item[float64]) (*Points[float64], error) { return Float64.RD(n, items) }
