package ledger

import (
	"strconv"

	"github.com/zappabad/marketverse/internal/market"
	"github.com/zappabad/marketverse/internal/trader"
)

// TxID is the sequence number of an executed trade. IDs start at 1 and
// their order is the causal order of trades.
type TxID int64

func (id TxID) String() string { return strconv.FormatInt(int64(id), 10) }

// Transaction is an executed trade. It is a value object and never changes
// once appended.
type Transaction struct {
	ID       TxID
	Day      int
	PlayerID trader.PlayerID
	Asset    string
	Action   market.Side
	Amount   int64
	Price    float64 // asset price the trade executed at
	Fee      float64
	NetDelta float64 // change applied to the player's balance
}

// Notional is amount × execution price, excluding fees.
func (t Transaction) Notional() float64 { return float64(t.Amount) * t.Price }

// FeeCharged is the part of Fee that was taken from the player's balance.
// Sells record a fee but are credited the full notional.
func (t Transaction) FeeCharged() float64 {
	if t.Action == market.SideBuy {
		return t.Fee
	}
	return 0
}

// PlayerStats aggregates one player's ledger entries.
type PlayerStats struct {
	Trades   int
	Buys     int
	Sells    int
	FeesPaid float64
	Notional float64
}
