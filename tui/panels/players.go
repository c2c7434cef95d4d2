package panels

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/marketverse/internal/analysis"
	"github.com/zappabad/marketverse/internal/report"
	"github.com/zappabad/marketverse/internal/trader"
	"github.com/zappabad/marketverse/tui/styles"
)

// PlayersPanel lists the final player table.
type PlayersPanel struct {
	players       []trader.Player
	order         []int
	sortByNet     bool
	selectedIndex int
	scrollOffset  int
	focused       bool
	width         int
	height        int
}

// NewPlayersPanel creates a new players panel.
func NewPlayersPanel(players []trader.Player) *PlayersPanel {
	p := &PlayersPanel{players: players}
	p.resort()
	return p
}

// Init initializes the panel.
func (p *PlayersPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *PlayersPanel) Update(msg tea.Msg) (*PlayersPanel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.focused {
			return p, nil
		}
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if p.selectedIndex > 0 {
				p.selectedIndex--
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if p.selectedIndex < len(p.order)-1 {
				p.selectedIndex++
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("s"))):
			p.sortByNet = !p.sortByNet
			p.resort()
		}
		p.scrollOffset = keepVisible(p.selectedIndex, p.scrollOffset, p.visibleRows())
	}
	return p, nil
}

func (p *PlayersPanel) resort() {
	p.order = make([]int, len(p.players))
	for i := range p.order {
		p.order[i] = i
	}
	if p.sortByNet {
		sort.SliceStable(p.order, func(i, j int) bool {
			return analysis.NetGainLoss(p.players[p.order[i]]) > analysis.NetGainLoss(p.players[p.order[j]])
		})
	}
}

func (p *PlayersPanel) visibleRows() int {
	return max(p.height-5, 1)
}

// View renders the panel.
func (p *PlayersPanel) View() string {
	var content strings.Builder

	header := fmt.Sprintf("%-10s %-11s %12s %14s %13s %6s",
		"Player", "Strategy", "Balance", "Portfolio", "Net", "Trades")
	content.WriteString(styles.HeaderStyle.Render(header))

	end := min(p.scrollOffset+p.visibleRows(), len(p.order))
	for i := p.scrollOffset; i < end; i++ {
		pl := p.players[p.order[i]]
		net := analysis.NetGainLoss(pl)

		row := fmt.Sprintf("%-10s %-11s %12s %14s ",
			truncate(string(pl.ID), 10), pl.Strategy, report.Money(pl.Balance), report.Money(pl.PortfolioValue))

		style := styles.RowStyle
		if i == p.selectedIndex && p.focused {
			style = styles.SelectedRowStyle
		}
		content.WriteString("\n")
		content.WriteString(style.Render(row))
		content.WriteString(styles.Signed(net, fmt.Sprintf("%13s", report.Signed(net))))
		content.WriteString(style.Render(fmt.Sprintf(" %6d", pl.TotalTrades)))
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := "👥 Players"
	if p.sortByNet {
		title += " (by net)"
	}
	panel := lipgloss.JoinVertical(lipgloss.Left, styles.RenderTitle(title, p.focused), content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *PlayersPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *PlayersPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// keepVisible returns the scroll offset that keeps selected inside a
// window of rows lines.
func keepVisible(selected, offset, rows int) int {
	if selected < offset {
		return selected
	}
	if selected >= offset+rows {
		return selected - rows + 1
	}
	return offset
}
