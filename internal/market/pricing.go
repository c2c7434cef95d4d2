package market

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegeneratePrice is returned when the bonding curve yields a price that
// cannot be traded against (NaN, infinite or negative).
var ErrDegeneratePrice = errors.New("degenerate price")

// Price is the bonding curve: startingPrice + supply² × scalingFactor.
func Price(startingPrice float64, supply int64, scalingFactor float64) float64 {
	s := float64(supply)
	return startingPrice + s*s*scalingFactor
}

// Reprice recomputes CurrentPrice from the current supply.
// On a degenerate result the stored price is left untouched.
func (a *Asset) Reprice() error {
	p := Price(a.StartingPrice, a.Supply, a.ScalingFactor)
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
		return fmt.Errorf("%w: asset %s at supply %d: %v", ErrDegeneratePrice, a.Name, a.Supply, p)
	}
	a.CurrentPrice = p
	return nil
}
