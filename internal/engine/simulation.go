package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/zappabad/marketverse/internal/ledger"
	"github.com/zappabad/marketverse/internal/market"
	"github.com/zappabad/marketverse/internal/trader"
	"github.com/zappabad/marketverse/internal/trader/strategy"
)

// Result is the final state of a finished run, handed to reporting.
type Result struct {
	Players []trader.Player
	Assets  []market.Asset
	Ledger  *ledger.Ledger
	Trend   *PriceTrend
	Days    []DaySummary
}

// Run executes a full simulation: cfg.Days days of cfg.TransactionsPerDay
// trade slots each, with a price snapshot and portfolio revaluation at the
// end of every day. Trades are applied strictly in order; each one sees the
// state the previous one left.
//
// ctx is checked at day boundaries only.
func Run(ctx context.Context, cfg Config, rng strategy.Source, opts ...Option) (*Result, error) {
	s, err := NewState(cfg, rng, opts...)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	s.log.Info("simulation started",
		zap.Int("players", cfg.PlayerCount),
		zap.Int("assets", len(cfg.Assets)),
		zap.Int("days", cfg.Days),
		zap.Int("transactions_per_day", cfg.TransactionsPerDay),
	)

	for day := 1; day <= cfg.Days; day++ {
		if err := s.RunDay(day); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			s.log.Warn("simulation cancelled", zap.Int("day", day), zap.Error(err))
			return nil, err
		}
	}

	totals := s.Ledger.Totals()
	s.log.Info("simulation finished",
		zap.Int("transactions", s.Ledger.Len()),
		zap.String("volume", totals.Volume().StringFixed(2)),
		zap.String("fees_charged", totals.FeesCharged.StringFixed(2)),
		zap.Duration("took", time.Since(start)),
	)

	return s.Result(), nil
}

// RunDay runs one day's trade slots and then the day boundary.
func (s *State) RunDay(day int) error {
	s.today = DaySummary{Day: day}
	for i := 0; i < s.cfg.TransactionsPerDay; i++ {
		if _, _, err := s.ExecuteTrade(day); err != nil {
			return err
		}
	}
	s.EndDay()
	return nil
}

// EndDay records the day's price row, revalues portfolios and closes the
// day summary.
func (s *State) EndDay() {
	s.Trend.record(s.Assets)
	s.Revalue()
	s.Days = append(s.Days, s.today)

	s.log.Debug("day closed",
		zap.Int("day", s.today.Day),
		zap.Int("executed", s.today.Executed),
		zap.Int("void", s.today.Void),
		zap.Float64("volume", s.today.Volume),
		zap.Float64("fees", s.today.Fees),
	)
}

// Result snapshots the current tables.
func (s *State) Result() *Result {
	players := make([]trader.Player, len(s.Players))
	copy(players, s.Players)
	assets := make([]market.Asset, len(s.Assets))
	copy(assets, s.Assets)
	days := make([]DaySummary, len(s.Days))
	copy(days, s.Days)

	return &Result{
		Players: players,
		Assets:  assets,
		Ledger:  s.Ledger,
		Trend:   s.Trend,
		Days:    days,
	}
}
