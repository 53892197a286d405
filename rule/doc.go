// Package rule assembles weighted point groups into quadrature rules.
//
// Every rule constructor describes its points as a list of weighted groups,
// (w_1, G_1), (w_2, G_2), ..., each group an orbit from package orbit that
// shares one literature weight. Untangle flattens that list into the two
// aligned arrays a rule is made of:
//
//	points  = G_1 ++ G_2 ++ ...          (row-wise, input order)
//	weights = [w_1]*|G_1| ++ [w_2]*|G_2| ++ ...
//
// Nothing is normalized, merged or deduplicated; Untangle is a pure
// reshape/broadcast, and Split inverts it given the group sizes.
//
// Rule[T] bundles the arrays with descriptive metadata (name, domain,
// dimension, degree, literature source). Known defects of a published scheme
// are attached as Caveat metadata instead of being reported as warnings, so
// construction stays side-effect free.
package rule
