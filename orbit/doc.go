// Package orbit generates the symmetric point sets ("orbits") that
// quadrature and cubature rules are assembled from.
//
// What & Why:
//
//	Published rules describe their points compactly: "all sign flips of a
//	with two zeros", "every permutation and sign flip of (u, v)". The
//	generators in this package turn those descriptions into concrete
//	coordinate arrays (Points), rows = points.
//
// Building blocks:
//   - compositions: every arrangement of a multiset of type labels into
//     ordered slots (the slot→type templates).
//   - Engine.Combine: for each template, the slot-by-slot cartesian
//     product of the alternatives of the assigned type.
//   - thin named specializations of Combine: Z, PM, PMArray, PMArray0,
//     PMRoll, FSD, FSArray, RD.
//   - Partition: weak compositions (stars and bars).
//
// Engine[T] is generic over the scalar type through numeric.Field[T]; the
// package-level functions of the same names are float64 shorthands.
//
// Guarantees:
//   - Pure: no shared state, safe for concurrent use.
//   - No deduplication: degenerate value-sets such as (+0, -0) still yield
//     one row per combination.
//   - Deterministic order, but the order carries no meaning: quadrature sums
//     are order-independent, and callers must not rely on row positions.
//   - Malformed orbit descriptions, and orbits larger than MaxSize
//     elements, fail fast with ErrInvalidOrbitSpec before allocating.
package orbit
