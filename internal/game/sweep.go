package game

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Sweep plays one independent run per seed, at most parallelism at a time
// (parallelism <= 0 uses GOMAXPROCS). Each run owns its own state and random
// source. Outcomes are returned in seed order; the first failure cancels
// the runs still in flight.
func Sweep(ctx context.Context, cfg Config, seeds []int64, parallelism int, logger *zap.Logger) ([]*Outcome, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	outcomes := make([]*Outcome, len(seeds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i, seed := range seeds {
		runCfg := cfg
		runCfg.Simulation.Seed = seed
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := Play(gctx, runCfg, logger)
			if err != nil {
				logger.Error("sweep run failed", zap.Int64("seed", seed), zap.Error(err))
				return err
			}
			outcomes[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info("sweep finished", zap.Int("runs", len(seeds)), zap.Int("parallelism", parallelism))
	return outcomes, nil
}

// Seeds returns n consecutive seeds starting at first.
func Seeds(first int64, n int) []int64 {
	if n <= 0 {
		return nil
	}
	out := make([]int64, n)
	for i := range out {
		out[i] = first + int64(i)
	}
	return out
}
