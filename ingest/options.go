// SPDX-License-Identifier: MIT
// Package: spatialgraph/ingest
//
// options.go — reader configuration: functional options over readerConfig.

package ingest

import "go.uber.org/zap"

// readerConfig aggregates reader knobs; resolved once per call.
type readerConfig struct {
	logger *zap.Logger
	comma  rune
}

// defaultComma is the DSV field delimiter when none is configured.
const defaultComma = ','

// Option customizes reader behavior.
type Option func(*readerConfig)

// WithLogger attaches a diagnostic logger; skipped records are reported at
// Debug level. Panics on nil (use the default no-op logger by omission).
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("ingest: WithLogger(nil)")
	}

	return func(c *readerConfig) { c.logger = l }
}

// WithComma sets the DSV field delimiter (';' and '\t' are common).
func WithComma(r rune) Option {
	return func(c *readerConfig) { c.comma = r }
}

// newReaderConfig resolves defaults, then applies options in order.
func newReaderConfig(opts ...Option) readerConfig {
	cfg := readerConfig{
		logger: zap.NewNop(),
		comma:  defaultComma,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
