package ledger

import (
	"errors"
	"fmt"

	"github.com/zappabad/marketverse/internal/market"
	"github.com/zappabad/marketverse/internal/trader"
)

var (
	ErrOutOfSequence      = errors.New("transaction out of sequence")
	ErrInvalidTransaction = errors.New("invalid transaction")
)

type holdingKey struct {
	player trader.PlayerID
	asset  string
}

// Ledger is the append-only record of executed trades. Besides the ordered
// entries it keeps indices derived from them on append, so valuation never
// has to rescan history.
type Ledger struct {
	txs     []Transaction
	bought  map[holdingKey]int64
	players map[trader.PlayerID]*PlayerStats
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{
		bought:  make(map[holdingKey]int64),
		players: make(map[trader.PlayerID]*PlayerStats),
	}
}

// NextID returns the id the next appended transaction must carry.
func (l *Ledger) NextID() TxID {
	return TxID(len(l.txs) + 1)
}

// Append adds an executed trade. IDs must be contiguous.
func (l *Ledger) Append(tx Transaction) error {
	if tx.ID != l.NextID() {
		return fmt.Errorf("%w: got id %d, want %d", ErrOutOfSequence, tx.ID, l.NextID())
	}
	if tx.Amount <= 0 {
		return fmt.Errorf("%w: id %d has amount %d", ErrInvalidTransaction, tx.ID, tx.Amount)
	}

	l.txs = append(l.txs, tx)

	st, ok := l.players[tx.PlayerID]
	if !ok {
		st = &PlayerStats{}
		l.players[tx.PlayerID] = st
	}
	st.Trades++
	st.FeesPaid += tx.FeeCharged()
	st.Notional += tx.Notional()

	if tx.Action == market.SideBuy {
		st.Buys++
		l.bought[holdingKey{tx.PlayerID, tx.Asset}] += tx.Amount
	} else {
		st.Sells++
	}
	return nil
}

// Len returns the number of recorded transactions.
func (l *Ledger) Len() int {
	return len(l.txs)
}

// All returns a copy of every transaction in sequence order.
func (l *Ledger) All() []Transaction {
	out := make([]Transaction, len(l.txs))
	copy(out, l.txs)
	return out
}

// Last returns the last n transactions in chronological order.
// Returns a copy (not internal references).
func (l *Ledger) Last(n int) []Transaction {
	if n <= 0 || len(l.txs) == 0 {
		return nil
	}
	if n > len(l.txs) {
		n = len(l.txs)
	}
	out := make([]Transaction, n)
	copy(out, l.txs[len(l.txs)-n:])
	return out
}

// Filter returns the transactions for which keep returns true, in order.
func (l *Ledger) Filter(keep func(Transaction) bool) []Transaction {
	var out []Transaction
	for _, tx := range l.txs {
		if keep(tx) {
			out = append(out, tx)
		}
	}
	return out
}

// BoughtUnits is the cumulative number of units player has bought of asset
// over the whole history. Sells are not netted out.
func (l *Ledger) BoughtUnits(player trader.PlayerID, asset string) int64 {
	return l.bought[holdingKey{player, asset}]
}

// PlayerStats returns the aggregate of player's trades.
func (l *Ledger) PlayerStats(player trader.PlayerID) PlayerStats {
	if st, ok := l.players[player]; ok {
		return *st
	}
	return PlayerStats{}
}

// Intensity returns the summed traded units for each (player, asset) pair,
// rows following players and columns following assets.
func (l *Ledger) Intensity(players []trader.PlayerID, assets []string) [][]int64 {
	row := make(map[trader.PlayerID]int, len(players))
	for i, p := range players {
		row[p] = i
	}
	col := make(map[string]int, len(assets))
	for j, a := range assets {
		col[a] = j
	}

	grid := make([][]int64, len(players))
	for i := range grid {
		grid[i] = make([]int64, len(assets))
	}
	for _, tx := range l.txs {
		i, okRow := row[tx.PlayerID]
		j, okCol := col[tx.Asset]
		if okRow && okCol {
			grid[i][j] += tx.Amount
		}
	}
	return grid
}
