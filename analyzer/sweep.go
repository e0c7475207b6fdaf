// SPDX-License-Identifier: MIT

package analyzer

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Sweep analyzes every bound in bounds and returns the reports in input order.
//
// Analyses share no state, so they run on an errgroup limited by
// WithConcurrency (default DefaultConcurrency). The first failing bound (or a
// cancelled ctx) stops the sweep and its error is returned; reports are
// returned only when every bound succeeded.
func Sweep(ctx context.Context, bounds []int, opts ...Option) ([]*Report, error) {
	cfg := gatherConfig(opts)
	out := make([]*Report, len(bounds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)
	for idx, n := range bounds {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rep, err := Analyze(n, opts...)
			if err != nil {
				return err
			}
			out[idx] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		cfg.logger.Warn("sweep aborted", zap.Ints("bounds", bounds), zap.Error(err))
		return nil, fmt.Errorf("Sweep: %w", err)
	}
	cfg.logger.Debug("sweep complete", zap.Int("reports", len(out)))

	return out, nil
}
