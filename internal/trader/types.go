package trader

import (
	"strconv"

	"github.com/zappabad/marketverse/internal/trader/strategy"
)

// PlayerID uniquely identifies a player for the duration of a run.
type PlayerID string

// NewPlayerID returns the id of the n-th player (1-based).
func NewPlayerID(n int) PlayerID {
	return PlayerID("Player_" + strconv.Itoa(n))
}

// Player is a trading agent. StartingBalance and Strategy are fixed at
// creation; the rest is mutated by the engine.
type Player struct {
	ID              PlayerID
	StartingBalance float64
	Balance         float64
	PortfolioValue  float64
	TotalTrades     int
	Strategy        strategy.Kind
}

// NewPlayer creates a player holding only cash.
func NewPlayer(id PlayerID, balance float64, kind strategy.Kind) Player {
	return Player{
		ID:              id,
		StartingBalance: balance,
		Balance:         balance,
		Strategy:        kind,
	}
}

// RemainingBalance implements strategy.Account.
func (p Player) RemainingBalance() float64 { return p.Balance }

// Wealth is the cash balance plus the last marked portfolio value.
func (p Player) Wealth() float64 { return p.Balance + p.PortfolioValue }
