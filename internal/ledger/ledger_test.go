package ledger

import (
	"errors"
	"testing"

	"github.com/zappabad/marketverse/internal/market"
	"github.com/zappabad/marketverse/internal/trader"
)

func buy(id TxID, day int, player trader.PlayerID, asset string, amount int64, price float64) Transaction {
	fee := float64(amount) * price * 0.01
	return Transaction{
		ID:       id,
		Day:      day,
		PlayerID: player,
		Asset:    asset,
		Action:   market.SideBuy,
		Amount:   amount,
		Price:    price,
		Fee:      fee,
		NetDelta: -float64(amount)*price - fee,
	}
}

func sell(id TxID, day int, player trader.PlayerID, asset string, amount int64, price float64) Transaction {
	return Transaction{
		ID:       id,
		Day:      day,
		PlayerID: player,
		Asset:    asset,
		Action:   market.SideSell,
		Amount:   amount,
		Price:    price,
		Fee:      float64(amount) * price * 0.01,
		NetDelta: float64(amount) * price,
	}
}

func TestAppendSequence(t *testing.T) {
	l := New()

	if l.NextID() != 1 {
		t.Fatalf("expected first id 1, got %d", l.NextID())
	}
	if err := l.Append(buy(1, 1, "Player_1", "MemeOil", 2, 50)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.Append(buy(3, 1, "Player_1", "MemeOil", 2, 50)); !errors.Is(err, ErrOutOfSequence) {
		t.Errorf("expected ErrOutOfSequence, got %v", err)
	}
	if err := l.Append(buy(2, 1, "Player_1", "MemeOil", 0, 50)); !errors.Is(err, ErrInvalidTransaction) {
		t.Errorf("expected ErrInvalidTransaction, got %v", err)
	}
	if l.Len() != 1 {
		t.Errorf("rejected appends must not be recorded, len=%d", l.Len())
	}
}

func TestBoughtUnitsIgnoresSells(t *testing.T) {
	l := New()
	mustAppend(t, l,
		buy(1, 1, "Player_1", "MemeOil", 5, 50),
		sell(2, 1, "Player_1", "MemeOil", 4, 60),
		buy(3, 2, "Player_1", "MemeOil", 3, 55),
		buy(4, 2, "Player_2", "MemeOil", 7, 55),
		buy(5, 2, "Player_1", "MemeGold", 1, 100),
	)

	if got := l.BoughtUnits("Player_1", "MemeOil"); got != 8 {
		t.Errorf("expected 8 bought units, got %d", got)
	}
	if got := l.BoughtUnits("Player_2", "MemeOil"); got != 7 {
		t.Errorf("expected 7 bought units, got %d", got)
	}
	if got := l.BoughtUnits("Player_3", "MemeOil"); got != 0 {
		t.Errorf("expected 0 for unknown player, got %d", got)
	}

	st := l.PlayerStats("Player_1")
	if st.Trades != 4 || st.Buys != 3 || st.Sells != 1 {
		t.Errorf("unexpected stats: %+v", st)
	}
	wantFees := 2.5 + 1.65 + 1.0
	if diff := st.FeesPaid - wantFees; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected fees paid %v, got %v", wantFees, st.FeesPaid)
	}
}

func TestLastReturnsCopyInOrder(t *testing.T) {
	l := New()
	if l.Last(3) != nil {
		t.Error("expected nil from empty ledger")
	}
	for i := 1; i <= 5; i++ {
		mustAppend(t, l, buy(TxID(i), 1, "Player_1", "MemeOil", int64(i), 10))
	}

	last := l.Last(2)
	if len(last) != 2 || last[0].ID != 4 || last[1].ID != 5 {
		t.Fatalf("unexpected tail: %+v", last)
	}
	last[0].Amount = 999
	if l.All()[3].Amount == 999 {
		t.Error("Last must not expose internal storage")
	}
	if len(l.Last(50)) != 5 {
		t.Error("expected tail to be capped at ledger length")
	}
}

func TestFilterAndIntensity(t *testing.T) {
	l := New()
	mustAppend(t, l,
		buy(1, 1, "Player_1", "A", 2, 10),
		sell(2, 1, "Player_2", "B", 3, 10),
		buy(3, 1, "Player_1", "B", 4, 10),
		sell(4, 1, "Player_1", "A", 1, 10),
	)

	sells := l.Filter(func(tx Transaction) bool { return tx.Action == market.SideSell })
	if len(sells) != 2 {
		t.Fatalf("expected 2 sells, got %d", len(sells))
	}

	grid := l.Intensity([]trader.PlayerID{"Player_1", "Player_2"}, []string{"A", "B"})
	want := [][]int64{{3, 4}, {0, 3}}
	for i := range want {
		for j := range want[i] {
			if grid[i][j] != want[i][j] {
				t.Errorf("grid[%d][%d] = %d, want %d", i, j, grid[i][j], want[i][j])
			}
		}
	}
}

func TestTotalsBalanced(t *testing.T) {
	l := New()
	mustAppend(t, l,
		buy(1, 1, "Player_1", "A", 5, 50),
		sell(2, 1, "Player_2", "A", 3, 99052.5),
		buy(3, 2, "Player_1", "B", 7, 13.37),
		sell(4, 2, "Player_2", "B", 2, 0.1),
	)

	day1 := l.TotalsThrough(1)
	if day1.Trades != 2 {
		t.Fatalf("expected 2 trades through day 1, got %d", day1.Trades)
	}
	if !day1.Balanced() {
		t.Errorf("day 1 totals not balanced: %+v", day1)
	}
	if got := day1.FeesCharged.StringFixed(2); got != "2.50" {
		t.Errorf("expected 2.50 charged on day 1, got %s", got)
	}

	all := l.Totals()
	if all.Trades != 4 || !all.Balanced() {
		t.Errorf("unexpected totals: %+v", all)
	}
	if !all.FeesRecorded.GreaterThan(all.FeesCharged) {
		t.Error("sell fees are recorded but never charged")
	}
}

func mustAppend(t *testing.T, l *Ledger, txs ...Transaction) {
	t.Helper()
	for _, tx := range txs {
		if err := l.Append(tx); err != nil {
			t.Fatalf("append %d: %v", tx.ID, err)
		}
	}
}
