package panels

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/zappabad/marketverse/internal/ledger"
	"github.com/zappabad/marketverse/internal/market"
	"github.com/zappabad/marketverse/internal/report"
	"github.com/zappabad/marketverse/tui/styles"
)

// txSource exposes "player asset" strings to the fuzzy matcher.
type txSource []ledger.Transaction

func (s txSource) String(i int) string { return string(s[i].PlayerID) + " " + s[i].Asset }
func (s txSource) Len() int            { return len(s) }

// FilterTransactions returns the indexes of txs whose player and asset
// names fuzzily match query, in ledger order. An empty query keeps all.
func FilterTransactions(txs []ledger.Transaction, query string) []int {
	if strings.TrimSpace(query) == "" {
		out := make([]int, len(txs))
		for i := range out {
			out[i] = i
		}
		return out
	}

	matches := fuzzy.FindFrom(query, txSource(txs))
	out := make([]int, len(matches))
	for i, m := range matches {
		out[i] = m.Index
	}
	sort.Ints(out)
	return out
}

// LedgerPanel is a scrollable transaction list with a fuzzy filter.
type LedgerPanel struct {
	txs      []ledger.Transaction
	visible  []int
	input    textinput.Model
	editing  bool
	selected int
	offset   int
	focused  bool
	width    int
	height   int
}

// NewLedgerPanel creates a new ledger panel.
func NewLedgerPanel(txs []ledger.Transaction) *LedgerPanel {
	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "player or asset..."
	input.Width = 24
	input.CharLimit = 32

	return &LedgerPanel{
		txs:     txs,
		visible: FilterTransactions(txs, ""),
		input:   input,
	}
}

// Init initializes the panel.
func (p *LedgerPanel) Init() tea.Cmd {
	return nil
}

// Capturing reports whether the filter input is taking keystrokes.
func (p *LedgerPanel) Capturing() bool {
	return p.editing
}

// Query returns the filter text.
func (p *LedgerPanel) Query() string {
	return p.input.Value()
}

// Update handles messages for the panel.
func (p *LedgerPanel) Update(msg tea.Msg) (*LedgerPanel, tea.Cmd) {
	if !p.focused {
		return p, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if p.editing {
			var cmd tea.Cmd
			p.input, cmd = p.input.Update(msg)
			return p, cmd
		}
		return p, nil
	}

	if p.editing {
		switch {
		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("esc"))):
			p.input.SetValue("")
			p.stopEditing()
			p.applyFilter()
			return p, nil
		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
			p.stopEditing()
			return p, nil
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		p.applyFilter()
		return p, cmd
	}

	rows := p.visibleRows()
	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("/"))):
		p.editing = true
		return p, p.input.Focus()
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("esc"))):
		p.input.SetValue("")
		p.applyFilter()
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		p.selected--
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		p.selected++
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("pgup"))):
		p.selected -= rows
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("pgdown"))):
		p.selected += rows
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("home", "g"))):
		p.selected = 0
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("end", "G"))):
		p.selected = len(p.visible) - 1
	}
	p.clampSelection()
	return p, nil
}

func (p *LedgerPanel) stopEditing() {
	p.editing = false
	p.input.Blur()
}

func (p *LedgerPanel) applyFilter() {
	p.visible = FilterTransactions(p.txs, p.input.Value())
	p.selected = 0
	p.offset = 0
}

func (p *LedgerPanel) clampSelection() {
	p.selected = max(min(p.selected, len(p.visible)-1), 0)
	p.offset = keepVisible(p.selected, p.offset, p.visibleRows())
}

func (p *LedgerPanel) visibleRows() int {
	return max(p.height-7, 1)
}

// View renders the panel.
func (p *LedgerPanel) View() string {
	var content strings.Builder

	inputStyle := styles.InputStyle
	if p.editing {
		inputStyle = styles.FocusedInputStyle
	}
	content.WriteString(inputStyle.Render(p.input.View()))
	content.WriteString("\n")
	content.WriteString(styles.HeaderStyle.Render(fmt.Sprintf("%6s %3s %-10s %-12s %-4s %4s %14s %10s",
		"ID", "Day", "Player", "Asset", "Side", "Amt", "Price", "Fee")))

	if len(p.visible) == 0 {
		content.WriteString("\n")
		content.WriteString(styles.MutedStyle.Render("No matching transactions"))
	}

	end := min(p.offset+p.visibleRows(), len(p.visible))
	for i := p.offset; i < end; i++ {
		tx := p.txs[p.visible[i]]

		side := styles.BuyStyle.Render(fmt.Sprintf("%-4s", tx.Action))
		if tx.Action == market.SideSell {
			side = styles.SellStyle.Render(fmt.Sprintf("%-4s", tx.Action))
		}

		style := styles.RowStyle
		if i == p.selected && p.focused {
			style = styles.SelectedRowStyle
		}
		content.WriteString("\n")
		content.WriteString(style.Render(fmt.Sprintf("%6s %3d %-10s %-12s ",
			tx.ID, tx.Day, truncate(string(tx.PlayerID), 10), truncate(tx.Asset, 12))))
		content.WriteString(side)
		content.WriteString(style.Render(fmt.Sprintf(" %4d %14s %10s",
			tx.Amount, shortPrice(tx.Price), report.Money(tx.Fee))))
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	heading := fmt.Sprintf("📒 Ledger (%d/%d)", len(p.visible), len(p.txs))
	if q := p.Query(); q != "" && !p.editing {
		heading += " matching " + q
	}
	title := styles.RenderTitle(heading, p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *LedgerPanel) SetFocus(focused bool) {
	p.focused = focused
	if !focused && p.editing {
		p.stopEditing()
	}
}

// SetSize sets the panel dimensions.
func (p *LedgerPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}
