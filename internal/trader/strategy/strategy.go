package strategy

import (
	"fmt"
	"strings"

	"github.com/zappabad/marketverse/internal/market"
)

// Kind selects one of the built-in trading strategies.
type Kind uint8

const (
	// Random picks buy or sell with equal probability.
	Random Kind = iota
	// Greedy buys while the price sits within 10% above its starting price.
	Greedy
	// RiskAverse buys only with at least twice the price in cash.
	RiskAverse
)

const (
	greedyBand     = 1.1
	riskAverseBuff = 2.0
)

// Kinds lists every strategy kind in declaration order.
func Kinds() []Kind { return []Kind{Random, Greedy, RiskAverse} }

func (k Kind) String() string {
	switch k {
	case Random:
		return "random"
	case Greedy:
		return "greedy"
	case RiskAverse:
		return "risk_averse"
	default:
		return "unknown"
	}
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool { return k <= RiskAverse }

// ParseKind parses a kind name. Matching ignores case and accepts "-" for "_".
func ParseKind(s string) (Kind, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, k := range Kinds() {
		if k.String() == norm {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("unknown strategy kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Decide returns the action a player using kind takes on asset.
// Only Random draws from rng.
func Decide(kind Kind, rng Source, acct Account, asset market.Asset) market.Side {
	switch kind {
	case Greedy:
		if asset.CurrentPrice < asset.StartingPrice*greedyBand {
			return market.SideBuy
		}
		return market.SideSell
	case RiskAverse:
		if acct.RemainingBalance() > asset.CurrentPrice*riskAverseBuff {
			return market.SideBuy
		}
		return market.SideSell
	case Random:
		if rng.Intn(2) == 0 {
			return market.SideBuy
		}
		return market.SideSell
	default:
		panic(fmt.Sprintf("strategy: unknown kind %d", uint8(kind)))
	}
}

// Assign picks the strategy for a new player. A single-kind set is returned
// as is without consuming randomness.
func Assign(set []Kind, rng Source) Kind {
	if len(set) == 1 {
		return set[0]
	}
	return set[rng.Intn(len(set))]
}
