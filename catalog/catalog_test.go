// SPDX-License-Identifier: MIT
package catalog_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubature/catalog"
	"github.com/katalvlaran/cubature/exactness"
	"github.com/katalvlaran/cubature/numeric"
	"github.com/katalvlaran/cubature/rule"
	"github.com/katalvlaran/cubature/scheme"
)

// points lists the expected point count of every embedded scheme.
var points = map[string]int{
	"gauss_legendre_2x2":      4,
	"gauss_legendre_3x3":      9,
	"gauss_legendre_4x4":      16,
	"stroud_c3_3_1":           6,
	"stroud_s2_3_1":           4,
	"stroud_s2_3_1_rotated":   4,
	"stroud_s3_3_1":           6,
	"triangle_centroid":       1,
	"strang_fix_3":            3,
	"strang_fix_4":            4,
	"tetrahedron_centroid":    1,
	"hammer_marlowe_stroud_4": 4,
	"stroud_u3_3_1":           6,
	"lebedev_014":             14,
}

// rational lists, in name order, the schemes whose constants are all rational.
var rational = []string{
	"strang_fix_3",
	"strang_fix_4",
	"stroud_c3_3_1",
	"stroud_s2_3_1_rotated",
	"stroud_u3_3_1",
	"tetrahedron_centroid",
	"triangle_centroid",
}

func mustCatalog(t *testing.T, opts ...catalog.Option) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(opts...)
	require.NoError(t, err)
	return c
}

func TestNew_Embedded(t *testing.T) {
	t.Parallel()
	c := mustCatalog(t)

	names := c.Names()
	require.Len(t, names, len(points))
	assert.Equal(t, len(points), c.Len())
	assert.True(t, sortedStrings(names))
	for _, name := range names {
		assert.Contains(t, points, name)
	}

	assert.Equal(t, []string{"lebedev_014", "stroud_u3_3_1"}, c.InDomain(rule.Sphere))
	assert.Len(t, c.InDomain(rule.Simplex), 5)
	assert.Len(t, c.InDomain(rule.Cube), 4)
	assert.Len(t, c.InDomain(rule.Ball), 3)
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}

func TestLookup(t *testing.T) {
	t.Parallel()
	c := mustCatalog(t)

	s, err := c.Lookup("strang_fix_4")
	require.NoError(t, err)
	assert.Equal(t, rule.Simplex, s.Domain)
	assert.NotEmpty(t, s.Caveat)

	_, err = c.Lookup("no_such_rule")
	assert.ErrorIs(t, err, catalog.ErrUnknownScheme)

	_, err = catalog.Build(c, numeric.Float64(), "no_such_rule")
	assert.ErrorIs(t, err, catalog.ErrUnknownScheme)
}

// TestEmbedded_Float64 checks every scheme's size and that its declared
// degree is exactly its degree of exactness.
func TestEmbedded_Float64(t *testing.T) {
	t.Parallel()
	c := mustCatalog(t)
	f := numeric.Float64()

	for _, name := range c.Names() {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r, err := catalog.Build(c, f, name)
			require.NoError(t, err)
			assert.Equal(t, points[name], r.Len())
			assert.Len(t, r.Weights, r.Len())
			require.NoError(t, exactness.Check(f, r))

			d, err := exactness.Degree(f, r, r.Degree+1)
			require.NoError(t, err)
			assert.Equal(t, r.Degree, d)
		})
	}
}

func TestEmbedded_BigFloat(t *testing.T) {
	t.Parallel()
	c := mustCatalog(t)
	f := numeric.BigFloat(numeric.DefaultPrecision)

	rules, err := catalog.BuildAll(context.Background(), c, f)
	require.NoError(t, err)
	require.Len(t, rules, c.Len())
	for _, r := range rules {
		assert.NoError(t, exactness.Check(f, r, exactness.WithTolerance(1e-60)), r.Name)
	}
}

func TestEmbedded_Rational(t *testing.T) {
	t.Parallel()
	c := mustCatalog(t)
	q := numeric.Rational()

	for _, name := range rational {
		r, err := catalog.Build(c, q, name)
		require.NoError(t, err, name)
		assert.NoError(t, exactness.Check(q, r), name)
	}

	_, err := catalog.Build(c, q, "gauss_legendre_2x2")
	assert.ErrorIs(t, err, numeric.ErrInexact)
}

func TestBuildAll_Rational(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	q := numeric.Rational()

	_, err := catalog.BuildAll(ctx, mustCatalog(t), q)
	assert.ErrorIs(t, err, numeric.ErrInexact)

	rules, err := catalog.BuildAll(ctx, mustCatalog(t, catalog.WithSkipInexact(), catalog.WithConcurrency(2)), q)
	require.NoError(t, err)
	got := make([]string, 0, len(rules))
	for _, r := range rules {
		got = append(got, r.Name)
	}
	assert.Equal(t, rational, got)
}

func TestBuildAll_Cancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := catalog.BuildAll(ctx, mustCatalog(t), numeric.Float64())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCaveat(t *testing.T) {
	t.Parallel()
	r, err := catalog.Build(mustCatalog(t), numeric.Float64(), "strang_fix_4")
	require.NoError(t, err)
	assert.True(t, r.HasCaveat())
	assert.Contains(t, r.String(), "caveat")
}

func TestLogging(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := zerolog.New(zerolog.SyncWriter(&buf))

	c := mustCatalog(t, catalog.WithLogger(logger), catalog.WithSkipInexact())
	_, err := catalog.BuildAll(context.Background(), c, numeric.Rational())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"component":"catalog"`)
	assert.Contains(t, out, `"message":"catalog loaded"`)
	assert.Contains(t, out, `"field":"rational"`)
	assert.Contains(t, out, `"scheme":"lebedev_014"`)
	assert.Contains(t, out, "skipped")
}

func TestFromFS(t *testing.T) {
	t.Parallel()
	const yamlFile = `
schemes:
  - name: midpoint
    domain: cube
    dim: 1
    degree: 1
    groups:
      - weight: "1"
        orbit: z
`
	const tomlFile = `
[[schemes]]
name = "midpoint"
domain = "cube"
dim = 2
degree = 1

  [[schemes.groups]]
  weight = "1"
  orbit = "z"
`
	c, err := catalog.FromFS(fstest.MapFS{
		"a.yaml":    {Data: []byte(yamlFile)},
		"README.md": {Data: []byte("ignored")},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"midpoint"}, c.Names())

	_, err = catalog.FromFS(fstest.MapFS{
		"a.yaml": {Data: []byte(yamlFile)},
		"b.toml": {Data: []byte(tomlFile)},
	})
	assert.ErrorIs(t, err, catalog.ErrDuplicateScheme)

	_, err = catalog.FromFS(fstest.MapFS{
		"bad.yaml": {Data: []byte(strings.Replace(yamlFile, "orbit: z", "orbit: spiral", 1))},
	})
	assert.ErrorIs(t, err, scheme.ErrUnknownOrbit)
}

func TestWithConcurrency_Panics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { catalog.WithConcurrency(0) })
}
