package panels

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/marketverse/internal/analysis"
	"github.com/zappabad/marketverse/internal/report"
	"github.com/zappabad/marketverse/tui/styles"
)

// RankingsPanel shows the gainers and losers tables and the per-strategy
// summary.
type RankingsPanel struct {
	gainers    []analysis.Ranked
	losers     []analysis.Ranked
	strategies []analysis.StrategySummary
	focused    bool
	width      int
	height     int
}

// NewRankingsPanel creates a new rankings panel.
func NewRankingsPanel(gainers, losers []analysis.Ranked, strategies []analysis.StrategySummary) *RankingsPanel {
	return &RankingsPanel{gainers: gainers, losers: losers, strategies: strategies}
}

// Init initializes the panel.
func (p *RankingsPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *RankingsPanel) Update(msg tea.Msg) (*RankingsPanel, tea.Cmd) {
	return p, nil
}

// View renders the panel.
func (p *RankingsPanel) View() string {
	var content strings.Builder

	writeRanked(&content, "Top Gainers", p.gainers)
	content.WriteString("\n")
	writeRanked(&content, "Top Losers", p.losers)

	content.WriteString("\n")
	content.WriteString(styles.SubtitleStyle.Render("By Strategy"))
	content.WriteString("\n")
	content.WriteString(styles.HeaderStyle.Render(fmt.Sprintf("%-11s %3s %13s %13s %13s", "Strategy", "N", "Mean", "Best", "Worst")))
	for _, s := range p.strategies {
		content.WriteString("\n")
		content.WriteString(styles.RowStyle.Render(fmt.Sprintf("%-11s %3d ", s.Strategy, s.Players)))
		content.WriteString(styles.Signed(s.Mean, fmt.Sprintf("%13s", report.Signed(s.Mean))))
		content.WriteString(" ")
		content.WriteString(styles.Signed(s.Best, fmt.Sprintf("%13s", report.Signed(s.Best))))
		content.WriteString(" ")
		content.WriteString(styles.Signed(s.Worst, fmt.Sprintf("%13s", report.Signed(s.Worst))))
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("🏆 Rankings", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

func writeRanked(sb *strings.Builder, title string, rows []analysis.Ranked) {
	sb.WriteString(styles.SubtitleStyle.Render(title))
	for i, r := range rows {
		label := styles.MutedStyle.Render(r.Label)
		if r.Label == analysis.LabelAggressive {
			label = styles.AggressiveStyle.Render(r.Label)
		}
		sb.WriteString("\n")
		sb.WriteString(styles.RowStyle.Render(fmt.Sprintf("%2d. %-10s ", i+1, truncate(string(r.Player.ID), 10))))
		sb.WriteString(styles.Signed(r.NetGainLoss, fmt.Sprintf("%13s", report.Signed(r.NetGainLoss))))
		sb.WriteString(" ")
		sb.WriteString(label)
	}
}

// SetFocus sets the focus state of the panel.
func (p *RankingsPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *RankingsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}
