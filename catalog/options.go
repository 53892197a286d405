// SPDX-License-Identifier: MIT

// Package catalog: functional options.
//
// Contract:
//   - WithX constructors validate and PANIC on meaningless values.
//   - Defaults are documented constants; later options override earlier ones.
package catalog

import "github.com/rs/zerolog"

// DefaultConcurrency bounds the number of schemes BuildAll builds at once.
const DefaultConcurrency = 4

const panicConcurrencyInvalid = "catalog: WithConcurrency: n must be >= 1"

// Option customizes a Catalog.
type Option func(*config)

type config struct {
	logger      zerolog.Logger
	concurrency int
	skipInexact bool
}

// WithLogger routes catalog logs to l, tagged component=catalog.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.logger = l.With().Str("component", "catalog").Logger()
	}
}

// WithConcurrency bounds parallel builds in BuildAll. Panics on n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic(panicConcurrencyInvalid)
	}

	return func(c *config) { c.concurrency = n }
}

// WithSkipInexact makes BuildAll drop schemes the field cannot represent
// exactly (numeric.ErrInexact) instead of failing.
func WithSkipInexact() Option {
	return func(c *config) { c.skipInexact = true }
}

func newConfig(opts ...Option) config {
	c := config{
		logger:      zerolog.Nop(),
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
