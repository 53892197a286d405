// SPDX-License-Identifier: MIT

package scheme

import "github.com/katalvlaran/cubature/rule"

// Orbit kinds accepted in Group.Orbit.
const (
	OrbitZ        = "z"
	OrbitPM       = "pm"
	OrbitPMArray  = "pm_array"
	OrbitPMArray0 = "pm_array0"
	OrbitPMRoll   = "pm_roll"
	OrbitFSD      = "fsd"
	OrbitFSArray  = "fs_array"
	OrbitRD       = "rd"
)

// Scheme is one published rule in tabulated form.
type Scheme struct {
	Name   string      `yaml:"name" toml:"name"`
	Domain rule.Domain `yaml:"domain" toml:"domain"`
	Dim    int         `yaml:"dim" toml:"dim"`
	Degree int         `yaml:"degree" toml:"degree"`
	Source string      `yaml:"source,omitempty" toml:"source,omitempty"`
	Caveat string      `yaml:"caveat,omitempty" toml:"caveat,omitempty"`
	Groups []Group     `yaml:"groups" toml:"groups"`
}

// Group is one weighted orbit. Which of Value, Values, Index and Items must
// be set depends on Orbit; see the package documentation.
type Group struct {
	Weight string   `yaml:"weight" toml:"weight"`
	Orbit  string   `yaml:"orbit" toml:"orbit"`
	Value  string   `yaml:"value,omitempty" toml:"value,omitempty"`
	Values []string `yaml:"values,omitempty" toml:"values,omitempty"`
	Index  []int    `yaml:"index,omitempty" toml:"index,omitempty"`
	Items  []Item   `yaml:"items,omitempty" toml:"items,omitempty"`
}

// Item is a (value, count) pair for fsd and rd orbits.
type Item struct {
	Value string `yaml:"value" toml:"value"`
	Count int    `yaml:"count" toml:"count"`
}

// File is the on-disk layout: a list of schemes.
type File struct {
	Schemes []Scheme `yaml:"schemes" toml:"schemes"`
}

// PointDim returns the coordinate count of the scheme's points.
func (s Scheme) PointDim() int { return s.Domain.PointDim(s.Dim) }
