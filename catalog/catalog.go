// SPDX-License-Identifier: MIT

package catalog

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cubature/numeric"
	"github.com/katalvlaran/cubature/rule"
	"github.com/katalvlaran/cubature/scheme"
)

//go:embed schemes/*.yaml schemes/*.toml
var embedded embed.FS

// Catalog is an immutable, name-indexed set of schemes. It is safe for
// concurrent use.
type Catalog struct {
	schemes map[string]scheme.Scheme
	names   []string // sorted
	cfg     config
}

// New loads the embedded schemes.
func New(opts ...Option) (*Catalog, error) {
	sub, err := fs.Sub(embedded, "schemes")
	if err != nil {
		return nil, fmt.Errorf("catalog.New: %w", err)
	}

	return FromFS(sub, opts...)
}

// FromFS loads every .yaml, .yml and .toml file at the root of fsys; other
// files are ignored. Returns ErrDuplicateScheme when a name repeats across
// files and the scheme package's errors for malformed files.
func FromFS(fsys fs.FS, opts ...Option) (*Catalog, error) {
	c := &Catalog{schemes: map[string]scheme.Scheme{}, cfg: newConfig(opts...)}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		format, err := scheme.FormatOf(entry.Name())
		if err != nil {
			continue
		}
		if err := c.load(fsys, entry.Name(), format); err != nil {
			return nil, err
		}
	}

	for name := range c.schemes {
		c.names = append(c.names, name)
	}
	sort.Strings(c.names)
	c.cfg.logger.Debug().Int("schemes", len(c.names)).Msg("catalog loaded")

	return c, nil
}

func (c *Catalog) load(fsys fs.FS, file string, format scheme.Format) error {
	f, err := fsys.Open(file)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	defer f.Close()

	schemes, err := scheme.Decode(format, f)
	if err != nil {
		return fmt.Errorf("catalog: %s: %w", file, err)
	}
	for _, s := range schemes {
		if _, dup := c.schemes[s.Name]; dup {
			return fmt.Errorf("catalog: %s: %q: %w", file, s.Name, ErrDuplicateScheme)
		}
		c.schemes[s.Name] = s
	}
	c.cfg.logger.Debug().Str("file", file).Int("schemes", len(schemes)).Msg("scheme file decoded")

	return nil
}

// Names returns every scheme name in lexicographic order.
func (c *Catalog) Names() []string { return append([]string(nil), c.names...) }

// Len returns the number of schemes.
func (c *Catalog) Len() int { return len(c.names) }

// Lookup returns the scheme called name, or ErrUnknownScheme.
func (c *Catalog) Lookup(name string) (scheme.Scheme, error) {
	s, ok := c.schemes[name]
	if !ok {
		return scheme.Scheme{}, fmt.Errorf("catalog: %q: %w", name, ErrUnknownScheme)
	}

	return s, nil
}

// InDomain returns the sorted names of the schemes on domain d.
func (c *Catalog) InDomain(d rule.Domain) []string {
	var out []string
	for _, name := range c.names {
		if c.schemes[name].Domain == d {
			out = append(out, name)
		}
	}

	return out
}

// Build constructs the named scheme in field f.
func Build[T any](c *Catalog, f numeric.Field[T], name string) (*rule.Rule[T], error) {
	s, err := c.Lookup(name)
	if err != nil {
		return nil, err
	}

	return scheme.Build(f, s)
}

// BuildAll constructs every scheme in field f, at most WithConcurrency at a
// time, and returns the rules in Names() order. The first failure cancels
// the remaining builds and is returned. With WithSkipInexact, schemes that
// fail with numeric.ErrInexact are left out of the result.
func BuildAll[T any](ctx context.Context, c *Catalog, f numeric.Field[T]) ([]*rule.Rule[T], error) {
	log := c.cfg.logger.With().Str("field", f.Name()).Logger()
	results := make([]*rule.Rule[T], len(c.names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.concurrency)
	for i, name := range c.names {
		i, name := i, name // per-iteration copies (pre-Go 1.22 loop semantics)
		s := c.schemes[name]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := scheme.Build(f, s)
			if err != nil {
				if c.cfg.skipInexact && errors.Is(err, numeric.ErrInexact) {
					log.Debug().Str("scheme", name).Msg("skipped: not representable in field")
					return nil
				}
				return err
			}
			results[i] = r
			log.Debug().Str("scheme", name).Int("points", r.Len()).Msg("built")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("build failed")
		return nil, fmt.Errorf("catalog.BuildAll: %w", err)
	}

	out := results[:0]
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}

	return out, nil
}
