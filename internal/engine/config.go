package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/zappabad/marketverse/internal/market"
	"github.com/zappabad/marketverse/internal/trader/strategy"
)

// ErrInvalidConfig wraps every configuration problem found by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// FeeRate is the flat transaction fee as a fraction of notional.
const FeeRate = 0.01

// Config holds the parameters of one simulation run. It is set once before
// the run and never read back by anything but the engine.
type Config struct {
	// PlayerCount is the number of players created at start.
	PlayerCount int
	// StartingBalance is every player's initial cash.
	StartingBalance float64
	// Days is the number of simulated days.
	Days int
	// TransactionsPerDay is the number of trade slots per day.
	TransactionsPerDay int
	// MaxTradeAmount caps the units of a single trade.
	MaxTradeAmount int
	// Assets are created in this order.
	Assets []market.AssetConfig
	// Strategies is the set players' strategies are drawn from.
	Strategies []strategy.Kind
}

// Validate reports every configuration error at once. Each returned error
// wraps ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.PlayerCount <= 0 {
		bad("player count must be positive, got %d", c.PlayerCount)
	}
	if !(c.StartingBalance > 0) || math.IsInf(c.StartingBalance, 0) {
		bad("starting balance must be positive and finite, got %v", c.StartingBalance)
	}
	if c.Days <= 0 {
		bad("days must be positive, got %d", c.Days)
	}
	if c.TransactionsPerDay <= 0 {
		bad("transactions per day must be positive, got %d", c.TransactionsPerDay)
	}
	if c.MaxTradeAmount <= 0 {
		bad("max trade amount must be positive, got %d", c.MaxTradeAmount)
	}

	if len(c.Assets) == 0 {
		bad("at least one asset is required")
	}
	seen := make(map[string]struct{}, len(c.Assets))
	for i, a := range c.Assets {
		if a.Name == "" {
			bad("asset %d has no name", i+1)
		} else if _, dup := seen[a.Name]; dup {
			bad("duplicate asset name %q", a.Name)
		}
		seen[a.Name] = struct{}{}

		if !(a.StartingPrice > 0) || math.IsInf(a.StartingPrice, 0) {
			bad("asset %q starting price must be positive and finite, got %v", a.Name, a.StartingPrice)
		}
		if a.InitialSupply < 0 {
			bad("asset %q initial supply must not be negative, got %d", a.Name, a.InitialSupply)
		}
		if !(a.ScalingFactor > 0) || math.IsInf(a.ScalingFactor, 0) {
			bad("asset %q scaling factor must be positive and finite, got %v", a.Name, a.ScalingFactor)
		}
	}

	if len(c.Strategies) == 0 {
		bad("strategy set is empty")
	}
	for _, k := range c.Strategies {
		if !k.Valid() {
			bad("unknown strategy kind %d", uint8(k))
		}
	}

	return errors.Join(errs...)
}
