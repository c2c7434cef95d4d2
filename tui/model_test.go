package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zappabad/marketverse/internal/game"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.Simulation.Players = 3
	cfg.Simulation.Days = 2
	cfg.Simulation.TransactionsPerDay = 10
	out, err := game.Play(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	return NewModel(out)
}

func TestFocusCycling(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focusedPanel != FocusAssets {
		t.Errorf("tab: expected assets, got %d", m.focusedPanel)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focusedPanel != FocusRankings {
		t.Errorf("shift+tab: expected rankings, got %d", m.focusedPanel)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyF4})
	if m.focusedPanel != FocusLedger {
		t.Errorf("f4: expected ledger, got %d", m.focusedPanel)
	}
}

func TestFilterSwallowsGlobalKeys(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyF4})

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !m.ledgerPanel.Capturing() || m.ledgerPanel.Query() != "q" {
		t.Fatalf("q should type into the filter, got %q", m.ledgerPanel.Query())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focusedPanel != FocusLedger {
		t.Errorf("tab inside the filter should not move focus, got %d", m.focusedPanel)
	}
}

func TestViewRendersAllPanels(t *testing.T) {
	m := newTestModel(t)
	if got := m.View(); got != "Initializing..." {
		t.Errorf("expected placeholder before the first resize, got %q", got)
	}

	m.Update(tea.WindowSizeMsg{Width: 160, Height: 48})
	view := m.View()
	for _, want := range []string{"Players", "Assets", "Chart", "Ledger", "Rankings"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
