// SPDX-License-Identifier: MIT
package scheme_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubature/numeric"
	"github.com/katalvlaran/cubature/orbit"
	"github.com/katalvlaran/cubature/rule"
	"github.com/katalvlaran/cubature/scheme"
)

const octahedronYAML = `
schemes:
  - name: octahedron
    domain: sphere
    dim: 3
    degree: 3
    source: "vertices of the octahedron"
    groups:
      - weight: "1/6"
        orbit: fsd
        items: [{value: "1", count: 1}]
`

const octahedronTOML = `
[[schemes]]
name = "octahedron"
domain = "sphere"
dim = 3
degree = 3
source = "vertices of the octahedron"

  [[schemes.groups]]
  weight = "1/6"
  orbit = "fsd"
  items = [{ value = "1", count = 1 }]
`

func octahedron() scheme.Scheme {
	return scheme.Scheme{
		Name:   "octahedron",
		Domain: rule.Sphere,
		Dim:    3,
		Degree: 3,
		Source: "vertices of the octahedron",
		Groups: []scheme.Group{{
			Weight: "1/6",
			Orbit:  scheme.OrbitFSD,
			Items:  []scheme.Item{{Value: "1", Count: 1}},
		}},
	}
}

func TestDecode_FormatsAgree(t *testing.T) {
	t.Parallel()
	fromYAML, err := scheme.DecodeYAML(strings.NewReader(octahedronYAML))
	require.NoError(t, err)
	fromTOML, err := scheme.DecodeTOML(strings.NewReader(octahedronTOML))
	require.NoError(t, err)

	want := []scheme.Scheme{octahedron()}
	assert.Equal(t, want, fromYAML)
	assert.Equal(t, want, fromTOML)
}

func TestDecode_Format(t *testing.T) {
	t.Parallel()
	got, err := scheme.Decode(scheme.FormatTOML, strings.NewReader(octahedronTOML))
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = scheme.Decode("json", strings.NewReader("{}"))
	assert.ErrorIs(t, err, scheme.ErrUnknownFormat)

	got, err = scheme.DecodeYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecode_Rejects(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		decode func(string) ([]scheme.Scheme, error)
		input  string
		want   error
	}{
		{
			name:   "yaml unknown field",
			decode: decodeYAML,
			input:  strings.Replace(octahedronYAML, "degree: 3", "degree: 3\n    order: 3", 1),
			want:   scheme.ErrInvalidScheme,
		},
		{
			name:   "toml unknown field",
			decode: decodeTOML,
			input:  strings.Replace(octahedronTOML, "degree = 3", "degree = 3\norder = 3", 1),
			want:   scheme.ErrInvalidScheme,
		},
		{
			name:   "yaml duplicate name",
			decode: decodeYAML,
			input:  octahedronYAML + strings.SplitN(octahedronYAML, "schemes:\n", 2)[1],
			want:   scheme.ErrInvalidScheme,
		},
		{
			name:   "toml malformed",
			decode: decodeTOML,
			input:  "[[schemes]\nname = ",
			want:   scheme.ErrInvalidScheme,
		},
		{
			name:   "unknown orbit",
			decode: decodeYAML,
			input:  strings.Replace(octahedronYAML, "orbit: fsd", "orbit: spiral", 1),
			want:   scheme.ErrUnknownOrbit,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := tc.decode(tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestDecodeYAML_MultipleDocuments reads every document of a stream.
func TestDecodeYAML_MultipleDocuments(t *testing.T) {
	t.Parallel()
	second := strings.Replace(octahedronYAML, "name: octahedron", "name: octahedron_copy", 1)

	got, err := scheme.DecodeYAML(strings.NewReader(octahedronYAML + "---\n" + second))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "octahedron", got[0].Name)
	assert.Equal(t, "octahedron_copy", got[1].Name)

	_, err = scheme.DecodeYAML(strings.NewReader(octahedronYAML + "---\n" + octahedronYAML))
	assert.ErrorIs(t, err, scheme.ErrInvalidScheme, "names are unique across documents")

	_, err = scheme.DecodeYAML(strings.NewReader(octahedronYAML + "---\nschemes: [{bogus: 1}]\n"))
	assert.ErrorIs(t, err, scheme.ErrInvalidScheme)
}

func decodeYAML(s string) ([]scheme.Scheme, error) { return scheme.DecodeYAML(strings.NewReader(s)) }
func decodeTOML(s string) ([]scheme.Scheme, error) { return scheme.DecodeTOML(strings.NewReader(s)) }

func TestFormatOf(t *testing.T) {
	t.Parallel()
	for name, want := range map[string]scheme.Format{
		"cube.yaml":  scheme.FormatYAML,
		"cube.YML":   scheme.FormatYAML,
		"dir/a.toml": scheme.FormatTOML,
	} {
		got, err := scheme.FormatOf(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := scheme.FormatOf("cube.json")
	assert.ErrorIs(t, err, scheme.ErrUnknownFormat)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		mutate func(*scheme.Scheme)
		want   error
	}{
		{"ok", func(*scheme.Scheme) {}, nil},
		{"no name", func(s *scheme.Scheme) { s.Name = "" }, scheme.ErrInvalidScheme},
		{"bad domain", func(s *scheme.Scheme) { s.Domain = "torus" }, scheme.ErrInvalidScheme},
		{"zero dim", func(s *scheme.Scheme) { s.Dim = 0 }, scheme.ErrInvalidScheme},
		{"negative degree", func(s *scheme.Scheme) { s.Degree = -1 }, scheme.ErrInvalidScheme},
		{"no groups", func(s *scheme.Scheme) { s.Groups = nil }, scheme.ErrInvalidScheme},
		{"no weight", func(s *scheme.Scheme) { s.Groups[0].Weight = "" }, scheme.ErrInvalidScheme},
		{"unknown orbit", func(s *scheme.Scheme) { s.Groups[0].Orbit = "spiral" }, scheme.ErrUnknownOrbit},
		{"extra field", func(s *scheme.Scheme) { s.Groups[0].Value = "1" }, scheme.ErrInvalidScheme},
		{"missing field", func(s *scheme.Scheme) { s.Groups[0].Items = nil }, scheme.ErrInvalidScheme},
		{"zero count", func(s *scheme.Scheme) { s.Groups[0].Items[0].Count = 0 }, scheme.ErrInvalidScheme},
		{"empty item value", func(s *scheme.Scheme) { s.Groups[0].Items[0].Value = "" }, scheme.ErrInvalidScheme},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := octahedron()
			tc.mutate(&s)
			err := scheme.Validate(s)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()
	r, err := scheme.Build(numeric.Rational(), octahedron())
	require.NoError(t, err)

	assert.Equal(t, "octahedron", r.Name)
	assert.Equal(t, rule.Sphere, r.Domain)
	assert.Equal(t, 3, r.Dim)
	assert.Equal(t, 3, r.Degree)
	assert.False(t, r.HasCaveat())
	require.Equal(t, 6, r.Len())
	for _, w := range r.Weights {
		assert.Equal(t, "1/6", w.RatString())
	}
}

func TestBuild_SimplexUsesBarycentricDimension(t *testing.T) {
	t.Parallel()
	s := scheme.Scheme{
		Name: "centroid", Domain: rule.Simplex, Dim: 2, Degree: 1,
		Groups: []scheme.Group{{Weight: "1", Orbit: scheme.OrbitRD, Items: []scheme.Item{{Value: "1/3", Count: 3}}}},
	}
	r, err := scheme.Build(numeric.Float64(), s)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Points.Dim())
	assert.Equal(t, 1, r.Len())
}

func TestBuild_EveryOrbit(t *testing.T) {
	t.Parallel()
	f := numeric.Float64()
	tests := []struct {
		group scheme.Group
		size  int
	}{
		{scheme.Group{Weight: "1", Orbit: scheme.OrbitZ}, 1},
		{scheme.Group{Weight: "1", Orbit: scheme.OrbitPM, Value: "1/2"}, 4},
		{scheme.Group{Weight: "1", Orbit: scheme.OrbitPMArray, Values: []string{"1", "2"}}, 4},
		{scheme.Group{Weight: "1", Orbit: scheme.OrbitPMArray0, Values: []string{"1"}, Index: []int{1}}, 2},
		{scheme.Group{Weight: "1", Orbit: scheme.OrbitPMRoll, Values: []string{"1"}}, 4},
		{scheme.Group{Weight: "1", Orbit: scheme.OrbitFSD, Items: []scheme.Item{{Value: "1", Count: 1}}}, 4},
		{scheme.Group{Weight: "1", Orbit: scheme.OrbitFSArray, Values: []string{"1", "2"}}, 8},
		{scheme.Group{Weight: "1", Orbit: scheme.OrbitRD, Items: []scheme.Item{{Value: "1", Count: 1}}}, 2},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.group.Orbit, func(t *testing.T) {
			t.Parallel()
			s := scheme.Scheme{Name: tc.group.Orbit, Domain: rule.Cube, Dim: 2, Degree: 0, Groups: []scheme.Group{tc.group}}
			r, err := scheme.Build(f, s)
			require.NoError(t, err)
			assert.Equal(t, tc.size, r.Len())
			assert.Equal(t, 2, r.Points.Dim())
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()
	base := func(g scheme.Group) scheme.Scheme {
		return scheme.Scheme{Name: "bad", Domain: rule.Cube, Dim: 2, Degree: 1, Groups: []scheme.Group{g}}
	}

	_, err := scheme.Build(numeric.Rational(), base(scheme.Group{Weight: "1/4", Orbit: scheme.OrbitPM, Value: "sqrt(2)"}))
	assert.ErrorIs(t, err, numeric.ErrInexact)

	_, err = scheme.Build(numeric.Float64(), base(scheme.Group{Weight: "1/4", Orbit: scheme.OrbitPMArray, Values: []string{"1"}}))
	assert.ErrorIs(t, err, scheme.ErrInvalidScheme)

	_, err = scheme.Build(numeric.Float64(), base(scheme.Group{Weight: "1/(", Orbit: scheme.OrbitZ}))
	assert.ErrorIs(t, err, numeric.ErrSyntax)

	_, err = scheme.Build(numeric.Float64(), base(scheme.Group{Weight: "1", Orbit: scheme.OrbitFSD, Items: []scheme.Item{{Value: "1", Count: 3}}}))
	assert.Error(t, err)

	_, err = scheme.Build(numeric.Float64(), base(scheme.Group{Weight: "1", Orbit: scheme.OrbitPMArray0, Values: []string{"1"}, Index: []int{5}}))
	assert.Error(t, err)

	_, err = scheme.Build(numeric.Float64(), scheme.Scheme{})
	assert.ErrorIs(t, err, scheme.ErrInvalidScheme)
}

// TestBuild_OversizedOrbit decodes a high-dimensional scheme whose orbit
// cannot be allocated.
func TestBuild_OversizedOrbit(t *testing.T) {
	t.Parallel()
	for _, dim := range []string{"63", "64"} {
		src := "schemes:\n  - {name: big, domain: cube, dim: " + dim +
			", degree: 1, groups: [{weight: \"1\", orbit: pm, value: \"1\"}]}\n"
		schemes, err := scheme.DecodeYAML(strings.NewReader(src))
		require.NoError(t, err)
		require.Len(t, schemes, 1)

		r, err := scheme.Build(numeric.Float64(), schemes[0])
		assert.ErrorIs(t, err, orbit.ErrInvalidOrbitSpec, "dim %s", dim)
		assert.Nil(t, r)
	}
}
