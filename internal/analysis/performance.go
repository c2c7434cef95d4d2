// Package analysis derives end-of-run performance figures from the final
// player table and the ledger.
package analysis

import (
	"sort"

	"github.com/zappabad/marketverse/internal/ledger"
	"github.com/zappabad/marketverse/internal/trader"
)

// AggressiveThreshold is the trade count above which a player is labelled
// an aggressive trader.
const AggressiveThreshold = 50

const (
	LabelAggressive   = "Aggressive trading"
	LabelConservative = "Conservative strategy"
)

// Ranked is one row of a gainers or losers table.
type Ranked struct {
	Player      trader.Player
	NetGainLoss float64
	Label       string
	FeesPaid    float64
	Notional    float64
}

// NetGainLoss is final wealth minus starting balance.
func NetGainLoss(p trader.Player) float64 {
	return p.Wealth() - p.StartingBalance
}

// Label annotates a player by how often they traded.
func Label(totalTrades int) string {
	if totalTrades > AggressiveThreshold {
		return LabelAggressive
	}
	return LabelConservative
}

// Rank returns the topN players by net gain/loss, highest first (gainers),
// and the topN lowest first (losers). Ties keep the order of players.
// topN <= 0 returns every player.
func Rank(players []trader.Player, l *ledger.Ledger, topN int) (gainers, losers []Ranked) {
	rows := make([]Ranked, len(players))
	for i, p := range players {
		rows[i] = Ranked{
			Player:      p,
			NetGainLoss: NetGainLoss(p),
			Label:       Label(p.TotalTrades),
		}
		if l != nil {
			st := l.PlayerStats(p.ID)
			rows[i].FeesPaid = st.FeesPaid
			rows[i].Notional = st.Notional
		}
	}

	if topN <= 0 || topN > len(rows) {
		topN = len(rows)
	}

	gainers = make([]Ranked, len(rows))
	copy(gainers, rows)
	sort.SliceStable(gainers, func(i, j int) bool {
		return gainers[i].NetGainLoss > gainers[j].NetGainLoss
	})

	losers = make([]Ranked, len(rows))
	copy(losers, rows)
	sort.SliceStable(losers, func(i, j int) bool {
		return losers[i].NetGainLoss < losers[j].NetGainLoss
	})

	return gainers[:topN], losers[:topN]
}
