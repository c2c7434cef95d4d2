package game

import (
	"github.com/zappabad/marketverse/internal/engine"
	"github.com/zappabad/marketverse/internal/market"
	"github.com/zappabad/marketverse/internal/trader/strategy"
)

// Config holds configuration for the game.
type Config struct {
	// Simulation is the run-level configuration.
	Simulation SimulationConfig `toml:"simulation"`
	// Assets is the list of assets to create in the market.
	Assets []market.AssetConfig `toml:"assets"`
	// Report is the configuration for result reporting.
	Report ReportConfig `toml:"report"`
}

// SimulationConfig holds the parameters of a single run.
type SimulationConfig struct {
	Players            int             `toml:"players"`
	StartingBalance    float64         `toml:"starting_balance"`
	Days               int             `toml:"days"`
	TransactionsPerDay int             `toml:"transactions_per_day"`
	MaxTradeAmount     int             `toml:"max_trade_amount"`
	Strategies         []strategy.Kind `toml:"strategies"`
	// Seed seeds the run's random source. Equal seeds give equal runs.
	Seed int64 `toml:"seed"`
}

// ReportConfig holds configuration for rankings and reports.
type ReportConfig struct {
	// TopN is the length of the gainers and losers tables.
	TopN int `toml:"top_n"`
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Simulation: SimulationConfig{
			Players:            10,
			StartingBalance:    10000,
			Days:               7,
			TransactionsPerDay: 100,
			MaxTradeAmount:     10,
			Strategies:         strategy.Kinds(),
			Seed:               1,
		},
		Assets: []market.AssetConfig{
			{Name: "MemeOil", StartingPrice: 50, InitialSupply: 1000, ScalingFactor: 0.1},
			{Name: "MemeGold", StartingPrice: 100, InitialSupply: 500, ScalingFactor: 0.2},
			{Name: "MemeGrain", StartingPrice: 30, InitialSupply: 2000, ScalingFactor: 0.15},
			{Name: "MemeCoffee", StartingPrice: 20, InitialSupply: 1500, ScalingFactor: 0.05},
			{Name: "MemeBeans", StartingPrice: 40, InitialSupply: 1200, ScalingFactor: 0.1},
		},
		Report: ReportConfig{
			TopN: 5,
		},
	}
}

// Engine converts the game configuration into the engine's run config.
func (c Config) Engine() engine.Config {
	assets := make([]market.AssetConfig, len(c.Assets))
	copy(assets, c.Assets)
	kinds := make([]strategy.Kind, len(c.Simulation.Strategies))
	copy(kinds, c.Simulation.Strategies)

	return engine.Config{
		PlayerCount:        c.Simulation.Players,
		StartingBalance:    c.Simulation.StartingBalance,
		Days:               c.Simulation.Days,
		TransactionsPerDay: c.Simulation.TransactionsPerDay,
		MaxTradeAmount:     c.Simulation.MaxTradeAmount,
		Assets:             assets,
		Strategies:         kinds,
	}
}
