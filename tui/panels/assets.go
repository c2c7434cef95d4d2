package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/zappabad/marketverse/internal/market"
	"github.com/zappabad/marketverse/internal/report"
	"github.com/zappabad/marketverse/tui/styles"
)

// AssetsPanel displays the final asset table.
type AssetsPanel struct {
	assets        []market.Asset
	selectedIndex int
	focused       bool
	width         int
	height        int
}

// NewAssetsPanel creates a new assets panel.
func NewAssetsPanel(assets []market.Asset) *AssetsPanel {
	return &AssetsPanel{assets: assets}
}

// Init initializes the panel.
func (p *AssetsPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *AssetsPanel) Update(msg tea.Msg) (*AssetsPanel, tea.Cmd) {
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
			if p.selectedIndex < len(p.assets)-1 {
				p.selectedIndex++
			}
		}
	}
	return p, nil
}

// View renders the panel.
func (p *AssetsPanel) View() string {
	var content strings.Builder

	header := fmt.Sprintf("%-12s %10s %14s %9s %8s %5s",
		"Asset", "Start", "Price", "Change", "Supply", "Txs")
	content.WriteString(styles.HeaderStyle.Render(header))

	for i, a := range p.assets {
		change := 0.0
		if a.StartingPrice != 0 {
			change = (a.CurrentPrice - a.StartingPrice) / a.StartingPrice * 100
		}

		style := styles.RowStyle
		if i == p.selectedIndex && p.focused {
			style = styles.SelectedRowStyle
		}
		content.WriteString("\n")
		content.WriteString(style.Render(fmt.Sprintf("%-12s %10s %14s ",
			truncate(a.Name, 12), report.Money(a.StartingPrice), shortPrice(a.CurrentPrice))))
		content.WriteString(styles.Signed(change, fmt.Sprintf("%8.1f%%", change)))
		content.WriteString(style.Render(fmt.Sprintf(" %8s %5d", humanize.Comma(a.Supply), a.Transactions)))
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("📈 Assets", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *AssetsPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *AssetsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SelectedAsset returns the highlighted asset's name.
func (p *AssetsPanel) SelectedAsset() string {
	if p.selectedIndex >= 0 && p.selectedIndex < len(p.assets) {
		return p.assets[p.selectedIndex].Name
	}
	return ""
}
