package market

import (
	"fmt"
	"math"
)

// Side is the action a trade takes on an asset: buy or sell.
type Side uint8

const (
	SideBuy Side = iota
	SideSell
)

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "BUY"
	case SideSell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

// AssetConfig describes an asset before a run starts.
type AssetConfig struct {
	Name          string  `toml:"name"`
	StartingPrice float64 `toml:"starting_price"`
	InitialSupply int64   `toml:"initial_supply"`
	ScalingFactor float64 `toml:"scaling_factor"`
}

// Asset is a tradeable synthetic asset priced along a bonding curve.
// CurrentPrice is derived state; only Reprice writes it.
type Asset struct {
	Name          string
	StartingPrice float64
	CurrentPrice  float64
	Supply        int64
	InitialSupply int64
	ScalingFactor float64
	Transactions  int
}

// NewAsset builds an asset from its config. The asset lists at its starting
// price; the bonding curve takes over from the first trade. The curve is
// still evaluated at the initial supply so a config that would price
// degenerately fails before the run starts.
func NewAsset(cfg AssetConfig) (Asset, error) {
	a := Asset{
		Name:          cfg.Name,
		StartingPrice: cfg.StartingPrice,
		CurrentPrice:  cfg.StartingPrice,
		Supply:        cfg.InitialSupply,
		InitialSupply: cfg.InitialSupply,
		ScalingFactor: cfg.ScalingFactor,
	}
	trial := a
	if err := trial.Reprice(); err != nil {
		return Asset{}, err
	}
	return a, nil
}

// ApplySupply moves supply by delta units and clamps it at zero. A delta
// that would overflow the supply leaves it unchanged and returns an error
// wrapping ErrDegeneratePrice.
func (a *Asset) ApplySupply(delta int64) error {
	if delta > 0 && a.Supply > math.MaxInt64-delta {
		return fmt.Errorf("%w: %s supply %d cannot grow by %d", ErrDegeneratePrice, a.Name, a.Supply, delta)
	}
	a.Supply += delta
	if a.Supply < 0 {
		a.Supply = 0
	}
	return nil
}
