// SPDX-License-Identifier: MIT

package scheme

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names a scheme file encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf infers the format from a file name extension
// (.yaml/.yml → FormatYAML, .toml → FormatTOML).
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}

	return "", fmt.Errorf("FormatOf(%q): %w", name, ErrUnknownFormat)
}

// Decode reads a scheme file in the given format and validates every scheme.
// Duplicate names within one file are rejected with ErrInvalidScheme.
func Decode(format Format, r io.Reader) ([]Scheme, error) {
	switch format {
	case FormatYAML:
		return DecodeYAML(r)
	case FormatTOML:
		return DecodeTOML(r)
	}

	return nil, fmt.Errorf("Decode(%q): %w", format, ErrUnknownFormat)
}

// DecodeYAML reads a YAML scheme file. Documents separated by "---" are
// concatenated. Unknown keys are errors.
func DecodeYAML(r io.Reader) ([]Scheme, error) {
	var schemes []Scheme
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	for doc := 0; ; doc++ {
		var file File
		err := dec.Decode(&file)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("DecodeYAML: document %d: %v: %w", doc, err, ErrInvalidScheme)
		}
		schemes = append(schemes, file.Schemes...)
	}

	return validated(schemes)
}

// DecodeTOML reads a TOML scheme file ([[schemes]] tables). Unknown keys are
// errors.
func DecodeTOML(r io.Reader) ([]Scheme, error) {
	var file File
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("DecodeTOML: %v: %w", err, ErrInvalidScheme)
	}

	return validated(file.Schemes)
}

func validated(schemes []Scheme) ([]Scheme, error) {
	seen := make(map[string]bool, len(schemes))
	for _, s := range schemes {
		if err := Validate(s); err != nil {
			return nil, err
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("scheme %q: duplicate name: %w", s.Name, ErrInvalidScheme)
		}
		seen[s.Name] = true
	}

	return schemes, nil
}
