package game

import (
	"context"
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zappabad/marketverse/internal/analysis"
	"github.com/zappabad/marketverse/internal/engine"
)

// Outcome is a finished run together with its rankings.
type Outcome struct {
	RunID      uuid.UUID
	Seed       int64
	Config     Config
	Result     *engine.Result
	Gainers    []analysis.Ranked
	Losers     []analysis.Ranked
	Strategies []analysis.StrategySummary
}

// Play runs one simulation seeded from cfg.Simulation.Seed and ranks the
// players.
func Play(ctx context.Context, cfg Config, logger *zap.Logger) (*Outcome, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	runID := uuid.New()
	log := logger.With(
		zap.String("run_id", runID.String()),
		zap.Int64("seed", cfg.Simulation.Seed),
	)

	rng := rand.New(rand.NewSource(cfg.Simulation.Seed))
	res, err := engine.Run(ctx, cfg.Engine(), rng, engine.WithLogger(log))
	if err != nil {
		return nil, err
	}

	gainers, losers := analysis.Rank(res.Players, res.Ledger, cfg.Report.TopN)

	return &Outcome{
		RunID:      runID,
		Seed:       cfg.Simulation.Seed,
		Config:     cfg,
		Result:     res,
		Gainers:    gainers,
		Losers:     losers,
		Strategies: analysis.ByStrategy(res.Players),
	}, nil
}
