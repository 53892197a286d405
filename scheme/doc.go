// Package scheme describes published quadrature schemes as data and builds
// them into rules.
//
// A scheme lists its weighted orbits the way papers tabulate them:
//
//	name: stroud_c3_3_1
//	domain: cube
//	dim: 3
//	degree: 3
//	source: Stroud 1971, C3 3-1
//	groups:
//	  - weight: "1/6"
//	    orbit: fsd
//	    items: [{value: "1", count: 1}]
//
// Scalars are literal expressions ("1/6", "sqrt(3/5)") evaluated in the
// field chosen at build time, so one table serves float64, big.Float and
// exact rational construction. Orbit kinds map one-to-one onto the
// generators of package orbit:
//
//	z                        the origin
//	pm          value        all sign flips of value in every coordinate
//	pm_array    values       independent sign flips, positions fixed
//	pm_array0   values,index pm_array embedded at index, zero elsewhere
//	pm_roll     values       pm_array rolled through every cyclic shift
//	fsd         items        count slots of ±value per item, rest zero
//	fs_array    values       every ordering, every sign
//	rd          items        count slots of value per item, rest zero, positions only
//
// Files hold a list under "schemes" and decode from YAML (gopkg.in/yaml.v3)
// or TOML (github.com/pelletier/go-toml/v2); unknown keys are rejected.
package scheme
