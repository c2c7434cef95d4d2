package analysis

import (
	"github.com/zappabad/marketverse/internal/trader"
	"github.com/zappabad/marketverse/internal/trader/strategy"
)

// StrategySummary aggregates net gain/loss over the players of one strategy.
type StrategySummary struct {
	Strategy strategy.Kind
	Players  int
	Mean     float64
	Best     float64
	Worst    float64
	Trades   int
}

// ByStrategy groups players by strategy kind, in kind order. Kinds no
// player uses are left out.
func ByStrategy(players []trader.Player) []StrategySummary {
	var out []StrategySummary
	for _, kind := range strategy.Kinds() {
		sum := StrategySummary{Strategy: kind}
		var total float64
		for _, p := range players {
			if p.Strategy != kind {
				continue
			}
			net := NetGainLoss(p)
			if sum.Players == 0 || net > sum.Best {
				sum.Best = net
			}
			if sum.Players == 0 || net < sum.Worst {
				sum.Worst = net
			}
			sum.Players++
			sum.Trades += p.TotalTrades
			total += net
		}
		if sum.Players == 0 {
			continue
		}
		sum.Mean = total / float64(sum.Players)
		out = append(out, sum)
	}
	return out
}
