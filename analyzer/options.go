// SPDX-License-Identifier: MIT

package analyzer

import "go.uber.org/zap"

// DefaultConcurrency bounds the number of analyses Sweep runs at once.
const DefaultConcurrency = 4

// Option configures Analyze and Sweep.
type Option func(*config)

type config struct {
	logger      *zap.Logger
	concurrency int
}

func defaultConfig() config {
	return config{logger: zap.NewNop(), concurrency: DefaultConcurrency}
}

// WithLogger routes debug records (bound, verdict, elapsed time) to l.
// Panics on nil; pass zap.NewNop() to silence.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("analyzer: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithConcurrency caps the goroutines Sweep runs in parallel. Panics on n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic("analyzer: WithConcurrency: n must be >= 1")
	}
	return func(c *config) { c.concurrency = n }
}

func gatherConfig(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}
