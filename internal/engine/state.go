package engine

import (
	"go.uber.org/zap"

	"github.com/zappabad/marketverse/internal/ledger"
	"github.com/zappabad/marketverse/internal/market"
	"github.com/zappabad/marketverse/internal/trader"
	"github.com/zappabad/marketverse/internal/trader/strategy"
)

// DaySummary aggregates the trade slots of one simulated day.
type DaySummary struct {
	Day      int
	Slots    int
	Executed int
	Void     int
	Volume   float64
	Fees     float64
}

// State is everything one run mutates. It is owned by a single goroutine
// for the whole run and never shared.
type State struct {
	cfg Config
	rng strategy.Source
	log *zap.Logger

	Players []trader.Player
	Assets  []market.Asset
	Ledger  *ledger.Ledger
	Trend   *PriceTrend
	Days    []DaySummary

	today DaySummary
}

// Option configures a State.
type Option func(*State)

// WithLogger sets the logger used for run diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.log = l
		}
	}
}

// NewState validates cfg and builds the initial tables: players with their
// strategies, assets listed at their starting price, an empty ledger and the day-0
// price row.
func NewState(cfg Config, rng strategy.Source, opts ...Option) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &State{
		cfg:     cfg,
		rng:     rng,
		log:     zap.NewNop(),
		Players: make([]trader.Player, cfg.PlayerCount),
		Assets:  make([]market.Asset, len(cfg.Assets)),
		Ledger:  ledger.New(),
	}
	for _, opt := range opts {
		opt(s)
	}

	for i := range s.Players {
		kind := strategy.Assign(cfg.Strategies, rng)
		s.Players[i] = trader.NewPlayer(trader.NewPlayerID(i+1), cfg.StartingBalance, kind)
	}
	for i, ac := range cfg.Assets {
		a, err := market.NewAsset(ac)
		if err != nil {
			s.log.Error("initial price is degenerate", zap.String("asset", ac.Name), zap.Error(err))
			return nil, err
		}
		s.Assets[i] = a
	}
	s.Trend = newPriceTrend(s.Assets)

	return s, nil
}

// Revalue marks every player's portfolio to market: for each asset, the
// units the player has ever bought times the asset's current price.
func (s *State) Revalue() {
	for i := range s.Players {
		p := &s.Players[i]
		var value float64
		for _, a := range s.Assets {
			if units := s.Ledger.BoughtUnits(p.ID, a.Name); units > 0 {
				value += float64(units) * a.CurrentPrice
			}
		}
		p.PortfolioValue = value
	}
}
