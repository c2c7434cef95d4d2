package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/marketverse/internal/game"
	"github.com/zappabad/marketverse/tui/panels"
	"github.com/zappabad/marketverse/tui/styles"
)

// PanelFocus represents which panel is currently focused.
type PanelFocus int

const (
	FocusPlayers  PanelFocus = 0
	FocusAssets   PanelFocus = 1
	FocusChart    PanelFocus = 2
	FocusLedger   PanelFocus = 3
	FocusRankings PanelFocus = 4

	panelCount = 5
)

// Model browses the results of a finished run.
type Model struct {
	outcome *game.Outcome

	// Panels
	playersPanel  *panels.PlayersPanel
	assetsPanel   *panels.AssetsPanel
	chartPanel    *panels.CandlestickPanel
	ledgerPanel   *panels.LedgerPanel
	rankingsPanel *panels.RankingsPanel

	focusedPanel PanelFocus

	width  int
	height int

	ready bool
}

// NewModel creates a new TUI model over out.
func NewModel(out *game.Outcome) *Model {
	res := out.Result
	txs := res.Ledger.All()

	m := &Model{
		outcome:       out,
		playersPanel:  panels.NewPlayersPanel(res.Players),
		assetsPanel:   panels.NewAssetsPanel(res.Assets),
		chartPanel:    panels.NewCandlestickPanel(res.Ledger, res.Trend),
		ledgerPanel:   panels.NewLedgerPanel(txs),
		rankingsPanel: panels.NewRankingsPanel(out.Gainers, out.Losers, out.Strategies),
	}
	m.setFocus(FocusPlayers)
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.playersPanel.Init(),
		m.assetsPanel.Init(),
		m.chartPanel.Init(),
		m.ledgerPanel.Init(),
		m.rankingsPanel.Init(),
	)
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// The ledger filter owns the keyboard while it is open.
		if !m.ledgerPanel.Capturing() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "tab":
				m.setFocus((m.focusedPanel + 1) % panelCount)
				return m, nil
			case "shift+tab":
				m.setFocus((m.focusedPanel + panelCount - 1) % panelCount)
				return m, nil
			case "f1":
				m.setFocus(FocusPlayers)
				return m, nil
			case "f2":
				m.setFocus(FocusAssets)
				return m, nil
			case "f3":
				m.setFocus(FocusChart)
				return m, nil
			case "f4":
				m.setFocus(FocusLedger)
				return m, nil
			case "f5":
				m.setFocus(FocusRankings)
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
	}

	m.updateFocusedPanel(msg, &cmds)

	return m, tea.Batch(cmds...)
}

func (m *Model) updateFocusedPanel(msg tea.Msg, cmds *[]tea.Cmd) {
	var cmd tea.Cmd

	switch m.focusedPanel {
	case FocusPlayers:
		m.playersPanel, cmd = m.playersPanel.Update(msg)
	case FocusAssets:
		m.assetsPanel, cmd = m.assetsPanel.Update(msg)
		// The chart follows the asset selection.
		if name := m.assetsPanel.SelectedAsset(); name != "" {
			m.chartPanel.SetAsset(name)
		}
	case FocusChart:
		m.chartPanel, cmd = m.chartPanel.Update(msg)
	case FocusLedger:
		m.ledgerPanel, cmd = m.ledgerPanel.Update(msg)
	case FocusRankings:
		m.rankingsPanel, cmd = m.rankingsPanel.Update(msg)
	}

	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

// View renders the UI.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	// Layout:
	// ┌─────────────────────────────────────────────┐
	// │  Players          │  Assets   │   Chart     │
	// ├───────────────────┴───────────┼─────────────┤
	// │      Ledger                   │  Rankings   │
	// └───────────────────────────────┴─────────────┘

	leftWidth := m.width * 2 / 5
	middleWidth := m.width * 3 / 10
	rightWidth := m.width - leftWidth - middleWidth

	topHeight := (m.height - 1) / 2
	bottomHeight := m.height - topHeight - 1

	m.playersPanel.SetSize(leftWidth, topHeight)
	m.assetsPanel.SetSize(middleWidth, topHeight)
	m.chartPanel.SetSize(rightWidth, topHeight)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.playersPanel.View(),
		m.assetsPanel.View(),
		m.chartPanel.View(),
	)

	m.ledgerPanel.SetSize(leftWidth+middleWidth, bottomHeight)
	m.rankingsPanel.SetSize(rightWidth, bottomHeight)

	bottomRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.ledgerPanel.View(),
		m.rankingsPanel.View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, topRow, bottomRow, m.renderStatusBar())
}

func (m *Model) renderStatusBar() string {
	help := []string{
		styles.StatusBarKeyStyle.Render("F1-F5") + styles.StatusBarDescStyle.Render(" panels"),
		styles.StatusBarKeyStyle.Render("Tab") + styles.StatusBarDescStyle.Render(" cycle"),
		styles.StatusBarKeyStyle.Render("↑↓") + styles.StatusBarDescStyle.Render(" select"),
		styles.StatusBarKeyStyle.Render("s") + styles.StatusBarDescStyle.Render(" sort"),
		styles.StatusBarKeyStyle.Render("[ ]") + styles.StatusBarDescStyle.Render(" asset"),
		styles.StatusBarKeyStyle.Render("/") + styles.StatusBarDescStyle.Render(" filter"),
		styles.StatusBarKeyStyle.Render("q") + styles.StatusBarDescStyle.Render(" quit"),
	}

	helpStr := help[0]
	for _, h := range help[1:] {
		helpStr = lipgloss.JoinHorizontal(lipgloss.Center, helpStr, " │ ", h)
	}

	status := fmt.Sprintf(" │ run %s seed %d", m.outcome.RunID.String()[:8], m.outcome.Seed)

	return styles.StatusBarStyle.Width(m.width).Render(helpStr + status)
}

func (m *Model) setFocus(panel PanelFocus) {
	m.focusedPanel = panel
	m.playersPanel.SetFocus(panel == FocusPlayers)
	m.assetsPanel.SetFocus(panel == FocusAssets)
	m.chartPanel.SetFocus(panel == FocusChart)
	m.ledgerPanel.SetFocus(panel == FocusLedger)
	m.rankingsPanel.SetFocus(panel == FocusRankings)
}
