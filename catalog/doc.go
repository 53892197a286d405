// Package catalog ships a set of published quadrature schemes and builds
// them on demand.
//
// The schemes are embedded tables (see package scheme for the format) for
// the hypercube, the unit ball, the unit sphere and the simplex, every one
// checked to its stated degree by the package tests. A Catalog can also be
// loaded from any fs.FS holding .yaml/.yml/.toml scheme files.
//
// Rule construction is pure, so BuildAll builds schemes concurrently with a
// bounded errgroup and cancels the rest on the first failure. Building in
// numeric.Rational fails for schemes with irrational constants; WithSkipInexact
// drops those instead.
//
// Logging goes through zerolog and is silent unless WithLogger is given.
package catalog
