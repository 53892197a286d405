// SPDX-License-Identifier: MIT

package scheme

import "fmt"

// Validate checks a scheme's structure without evaluating any value.
// Returns ErrInvalidScheme or ErrUnknownOrbit wrapped with the scheme name
// and group index.
func Validate(s Scheme) error {
	switch {
	case s.Name == "":
		return fmt.Errorf("scheme: missing name: %w", ErrInvalidScheme)
	case !s.Domain.Valid():
		return fmt.Errorf("scheme %q: domain %q: %w", s.Name, s.Domain, ErrInvalidScheme)
	case s.Dim < 1:
		return fmt.Errorf("scheme %q: dim %d: %w", s.Name, s.Dim, ErrInvalidScheme)
	case s.Degree < 0:
		return fmt.Errorf("scheme %q: degree %d: %w", s.Name, s.Degree, ErrInvalidScheme)
	case len(s.Groups) == 0:
		return fmt.Errorf("scheme %q: no groups: %w", s.Name, ErrInvalidScheme)
	}

	for i, g := range s.Groups {
		if err := validateGroup(g); err != nil {
			return fmt.Errorf("scheme %q: group %d: %w", s.Name, i, err)
		}
	}

	return nil
}

// fieldSet records which optional Group fields an orbit kind uses.
type fieldSet struct {
	value, values, index, items bool
}

var orbitFields = map[string]fieldSet{
	OrbitZ:        {},
	OrbitPM:       {value: true},
	OrbitPMArray:  {values: true},
	OrbitPMArray0: {values: true, index: true},
	OrbitPMRoll:   {values: true},
	OrbitFSD:      {items: true},
	OrbitFSArray:  {values: true},
	OrbitRD:       {items: true},
}

func validateGroup(g Group) error {
	want, ok := orbitFields[g.Orbit]
	if !ok {
		return fmt.Errorf("orbit %q: %w", g.Orbit, ErrUnknownOrbit)
	}
	if g.Weight == "" {
		return fmt.Errorf("%s: missing weight: %w", g.Orbit, ErrInvalidScheme)
	}

	have := fieldSet{
		value:  g.Value != "",
		values: len(g.Values) > 0,
		index:  len(g.Index) > 0,
		items:  len(g.Items) > 0,
	}
	if have != want {
		return fmt.Errorf("%s: fields %s, want %s: %w", g.Orbit, have, want, ErrInvalidScheme)
	}
	for j, it := range g.Items {
		if it.Value == "" || it.Count <= 0 {
			return fmt.Errorf("%s: item %d {%q, %d}: %w", g.Orbit, j, it.Value, it.Count, ErrInvalidScheme)
		}
	}

	return nil
}

func (f fieldSet) String() string {
	var names []string
	if f.value {
		names = append(names, "value")
	}
	if f.values {
		names = append(names, "values")
	}
	if f.index {
		names = append(names, "index")
	}
	if f.items {
		names = append(names, "items")
	}

	return fmt.Sprint(names)
}
