package panels

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zappabad/marketverse/internal/ledger"
)

func sampleTxs() []ledger.Transaction {
	return []ledger.Transaction{
		{ID: 1, Day: 1, PlayerID: "Player_1", Asset: "MemeOil", Amount: 1, Price: 50},
		{ID: 2, Day: 1, PlayerID: "Player_2", Asset: "MemeGold", Amount: 1, Price: 100},
		{ID: 3, Day: 1, PlayerID: "Player_1", Asset: "MemeGold", Amount: 1, Price: 100},
		{ID: 4, Day: 2, PlayerID: "Player_3", Asset: "MemeOil", Amount: 1, Price: 51},
	}
}

func TestFilterTransactions(t *testing.T) {
	txs := sampleTxs()

	if got := FilterTransactions(txs, ""); len(got) != 4 {
		t.Fatalf("empty query: expected 4, got %v", got)
	}

	got := FilterTransactions(txs, "gold")
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("gold: expected [1 2], got %v", got)
	}

	got = FilterTransactions(txs, "Player_1")
	if len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Errorf("Player_1: expected [0 2], got %v", got)
	}

	if got := FilterTransactions(txs, "zzz"); len(got) != 0 {
		t.Errorf("zzz: expected no matches, got %v", got)
	}
}

func TestLedgerPanelFilterKeys(t *testing.T) {
	p := NewLedgerPanel(sampleTxs())
	p.SetFocus(true)
	p.SetSize(80, 20)

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	if !p.Capturing() {
		t.Fatal("expected / to open the filter")
	}
	for _, r := range "oil" {
		p, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if n := len(p.visible); n != 2 {
		t.Errorf("expected 2 oil trades, got %d", n)
	}

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if p.Capturing() {
		t.Error("expected enter to close the filter input")
	}
	if n := len(p.visible); n != 2 {
		t.Errorf("filter should stay applied, got %d", n)
	}

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if n := len(p.visible); n != 4 {
		t.Errorf("esc should clear the filter, got %d", n)
	}
}
