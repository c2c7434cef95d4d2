package engine

import (
	"fmt"

	"github.com/zappabad/marketverse/internal/market"
	"github.com/zappabad/marketverse/internal/trader/strategy"
)

// scriptedSource replays a fixed sequence of draws and fails loudly when a
// draw is out of range or the script runs out.
type scriptedSource struct {
	draws []int
	next  int
}

func script(draws ...int) *scriptedSource {
	return &scriptedSource{draws: draws}
}

func (s *scriptedSource) Intn(n int) int {
	if s.next >= len(s.draws) {
		panic(fmt.Sprintf("script exhausted after %d draws", len(s.draws)))
	}
	v := s.draws[s.next]
	s.next++
	if v < 0 || v >= n {
		panic(fmt.Sprintf("draw %d: value %d out of range [0,%d)", s.next, v, n))
	}
	return v
}

func (s *scriptedSource) remaining() int {
	return len(s.draws) - s.next
}

func memeOil() market.AssetConfig {
	return market.AssetConfig{Name: "MemeOil", StartingPrice: 50, InitialSupply: 1000, ScalingFactor: 0.1}
}

func singleConfig(balance float64, kind strategy.Kind) Config {
	return Config{
		PlayerCount:        1,
		StartingBalance:    balance,
		Days:               1,
		TransactionsPerDay: 1,
		MaxTradeAmount:     10,
		Assets:             []market.AssetConfig{memeOil()},
		Strategies:         []strategy.Kind{kind},
	}
}

func defaultTestConfig() Config {
	return Config{
		PlayerCount:        10,
		StartingBalance:    10000,
		Days:               7,
		TransactionsPerDay: 100,
		MaxTradeAmount:     10,
		Assets: []market.AssetConfig{
			{Name: "MemeOil", StartingPrice: 50, InitialSupply: 1000, ScalingFactor: 0.1},
			{Name: "MemeGold", StartingPrice: 100, InitialSupply: 500, ScalingFactor: 0.2},
			{Name: "MemeGrain", StartingPrice: 30, InitialSupply: 2000, ScalingFactor: 0.15},
			{Name: "MemeCoffee", StartingPrice: 20, InitialSupply: 1500, ScalingFactor: 0.05},
			{Name: "MemeBeans", StartingPrice: 40, InitialSupply: 1200, ScalingFactor: 0.1},
		},
		Strategies: strategy.Kinds(),
	}
}
