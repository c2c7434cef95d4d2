package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zappabad/marketverse/internal/ledger"
	"github.com/zappabad/marketverse/internal/market"
	"github.com/zappabad/marketverse/internal/trader"
	"github.com/zappabad/marketverse/internal/trader/strategy"
)

func player(n int, balance, portfolio float64, trades int, kind strategy.Kind) trader.Player {
	p := trader.NewPlayer(trader.NewPlayerID(n), 1000, kind)
	p.Balance = balance
	p.PortfolioValue = portfolio
	p.TotalTrades = trades
	return p
}

func ids(rows []Ranked) []trader.PlayerID {
	out := make([]trader.PlayerID, len(rows))
	for i, r := range rows {
		out[i] = r.Player.ID
	}
	return out
}

func TestNetGainLoss(t *testing.T) {
	assert.Equal(t, 250.0, NetGainLoss(player(1, 900, 350, 0, strategy.Random)))
	assert.Equal(t, -1000.0, NetGainLoss(player(1, 0, 0, 0, strategy.Random)))
}

func TestRankTopThreeOfFive(t *testing.T) {
	players := []trader.Player{
		player(1, 1000, 100, 1, strategy.Random), // +100
		player(2, 500, 0, 1, strategy.Random),    // -500
		player(3, 1000, 900, 1, strategy.Random), // +900
		player(4, 1200, 0, 1, strategy.Random),   // +200
		player(5, 700, 0, 1, strategy.Random),    // -300
	}

	gainers, losers := Rank(players, nil, 3)

	require.Len(t, gainers, 3)
	assert.Equal(t, []trader.PlayerID{"Player_3", "Player_4", "Player_1"}, ids(gainers))
	assert.Equal(t, []float64{900, 200, 100}, []float64{gainers[0].NetGainLoss, gainers[1].NetGainLoss, gainers[2].NetGainLoss})

	require.Len(t, losers, 3)
	assert.Equal(t, []trader.PlayerID{"Player_2", "Player_5", "Player_1"}, ids(losers))
	assert.Equal(t, -500.0, losers[0].NetGainLoss)
}

func TestRankTiesKeepPlayerOrder(t *testing.T) {
	players := []trader.Player{
		player(1, 1100, 0, 0, strategy.Random),
		player(2, 1100, 0, 0, strategy.Random),
		player(3, 900, 0, 0, strategy.Random),
		player(4, 900, 0, 0, strategy.Random),
	}

	gainers, losers := Rank(players, nil, 0)
	assert.Equal(t, []trader.PlayerID{"Player_1", "Player_2", "Player_3", "Player_4"}, ids(gainers))
	assert.Equal(t, []trader.PlayerID{"Player_3", "Player_4", "Player_1", "Player_2"}, ids(losers))

	gainers, _ = Rank(players, nil, 10)
	assert.Len(t, gainers, 4, "topN beyond the table returns everyone")
}

func TestRankDoesNotReorderInput(t *testing.T) {
	players := []trader.Player{
		player(1, 0, 0, 0, strategy.Random),
		player(2, 5000, 0, 0, strategy.Random),
	}
	Rank(players, nil, 1)
	assert.Equal(t, trader.PlayerID("Player_1"), players[0].ID)
}

func TestRankLabelsAndLedgerStats(t *testing.T) {
	l := ledger.New()
	require.NoError(t, l.Append(ledger.Transaction{
		ID: 1, Day: 1, PlayerID: "Player_2", Asset: "A", Action: market.SideBuy,
		Amount: 2, Price: 50, Fee: 1, NetDelta: -101,
	}))

	players := []trader.Player{
		player(1, 1000, 0, 50, strategy.Random),
		player(2, 899, 0, 51, strategy.Random),
	}
	gainers, _ := Rank(players, l, 2)

	assert.Equal(t, LabelConservative, gainers[0].Label, "exactly 50 trades is not aggressive")
	assert.Equal(t, LabelAggressive, gainers[1].Label)
	assert.Equal(t, 1.0, gainers[1].FeesPaid)
	assert.Equal(t, 100.0, gainers[1].Notional)
	assert.Zero(t, gainers[0].FeesPaid)
}

func TestByStrategy(t *testing.T) {
	players := []trader.Player{
		player(1, 1100, 0, 3, strategy.Greedy),       // +100
		player(2, 700, 0, 2, strategy.Greedy),        // -300
		player(3, 1000, 500, 1, strategy.RiskAverse), // +500
	}

	got := ByStrategy(players)
	require.Len(t, got, 2)

	assert.Equal(t, StrategySummary{Strategy: strategy.Greedy, Players: 2, Mean: -100, Best: 100, Worst: -300, Trades: 5}, got[0])
	assert.Equal(t, StrategySummary{Strategy: strategy.RiskAverse, Players: 1, Mean: 500, Best: 500, Worst: 500, Trades: 1}, got[1])
	assert.Empty(t, ByStrategy(nil))
}
