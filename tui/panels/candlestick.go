package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zappabad/marketverse/internal/engine"
	"github.com/zappabad/marketverse/internal/ledger"
	"github.com/zappabad/marketverse/tui/styles"
)

// Candle is one simulated day of an asset.
type Candle struct {
	Day    int
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
	Trades int
}

// BuildDailyCandles builds one candle per day for asset. closes is the
// asset's trend series: closes[0] is the listing price and closes[d] the
// price at the end of day d. A day opens at the previous close; trade
// execution prices widen the high and low.
func BuildDailyCandles(txs []ledger.Transaction, asset string, closes []float64) []Candle {
	if len(closes) < 2 {
		return nil
	}

	candles := make([]Candle, len(closes)-1)
	for d := 1; d < len(closes); d++ {
		c := &candles[d-1]
		c.Day = d
		c.Open = closes[d-1]
		c.Close = closes[d]
		c.High = max(c.Open, c.Close)
		c.Low = min(c.Open, c.Close)
	}

	for _, tx := range txs {
		if tx.Asset != asset || tx.Day < 1 || tx.Day >= len(closes) {
			continue
		}
		c := &candles[tx.Day-1]
		c.High = max(c.High, tx.Price)
		c.Low = min(c.Low, tx.Price)
		c.Volume += tx.Amount
		c.Trades++
	}

	return candles
}

// CandlestickPanel displays daily candles of one asset.
type CandlestickPanel struct {
	assets  []string
	current int
	candles map[string][]Candle

	focused bool
	width   int
	height  int
}

// NewCandlestickPanel builds candles for every asset of the trend.
func NewCandlestickPanel(l *ledger.Ledger, trend *engine.PriceTrend) *CandlestickPanel {
	p := &CandlestickPanel{
		assets:  trend.Assets,
		candles: make(map[string][]Candle, len(trend.Assets)),
	}
	for _, name := range trend.Assets {
		series, _ := trend.Series(name)
		txs := l.Filter(func(tx ledger.Transaction) bool { return tx.Asset == name })
		p.candles[name] = BuildDailyCandles(txs, name, series)
	}
	return p
}

// Init initializes the panel.
func (p *CandlestickPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the panel.
func (p *CandlestickPanel) Update(msg tea.Msg) (*CandlestickPanel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !p.focused || len(p.assets) == 0 {
		return p, nil
	}
	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("]", "right", "l"))):
		p.current = (p.current + 1) % len(p.assets)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("[", "left", "h"))):
		p.current = (p.current - 1 + len(p.assets)) % len(p.assets)
	}
	return p, nil
}

// View renders the panel.
func (p *CandlestickPanel) View() string {
	name := p.Asset()
	if name == "" {
		name = "No asset"
	}

	var content strings.Builder

	chartHeight := p.height - 4
	if chartHeight < 5 {
		chartHeight = 5
	}

	candles := p.candles[p.Asset()]
	if len(candles) == 0 {
		content.WriteString(styles.MutedStyle.Render("No trading days yet..."))
	} else {
		content.WriteString(renderCandles(p.width-4, chartHeight, candles))
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle(fmt.Sprintf("📉 Chart - %s  [ ]", name), p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

func renderCandles(width, height int, candles []Candle) string {
	// 11 chars of price axis, 2 per candle.
	candlesToShow := (width - 12) / 2
	if candlesToShow < 1 {
		candlesToShow = 1
	}
	if len(candles) > candlesToShow {
		candles = candles[len(candles)-candlesToShow:]
	}

	minPrice, maxPrice := candles[0].Low, candles[0].High
	for _, c := range candles {
		minPrice = min(minPrice, c.Low)
		maxPrice = max(maxPrice, c.High)
	}

	padding := (maxPrice - minPrice) * 0.1
	if padding == 0 {
		padding = max(maxPrice*0.01, 1)
	}
	minPrice -= padding
	maxPrice += padding

	// Two rows for the day axis.
	chartHeight := height - 2
	if chartHeight < 3 {
		chartHeight = 3
	}

	var result strings.Builder

	for row := 0; row < chartHeight; row++ {
		price := yToPrice(row, minPrice, maxPrice, chartHeight)
		result.WriteString(styles.ChartAxisStyle.Render(fmt.Sprintf("%10s │", shortPrice(price))))

		for _, c := range candles {
			style := styles.CandleUpStyle
			if c.Close < c.Open {
				style = styles.CandleDownStyle
			}
			result.WriteString(style.Render(string(candleChar(c, row, minPrice, maxPrice, chartHeight))))
			result.WriteString(" ")
		}
		result.WriteString("\n")
	}

	result.WriteString(styles.ChartAxisStyle.Render("───────────┴"))
	for range candles {
		result.WriteString(styles.ChartAxisStyle.Render("──"))
	}
	result.WriteString("\n")

	result.WriteString(strings.Repeat(" ", 12))
	for i, c := range candles {
		if i == 0 || i == len(candles)-1 || c.Day%5 == 0 {
			result.WriteString(styles.ChartLabelStyle.Render(fmt.Sprintf("%-2d", c.Day%100)))
		} else {
			result.WriteString("  ")
		}
	}

	return result.String()
}

// candleChar returns the character drawn for c at a chart row.
func candleChar(c Candle, row int, minPrice, maxPrice float64, height int) rune {
	rowPrice := yToPrice(row, minPrice, maxPrice, height)

	bodyTop := max(c.Open, c.Close)
	bodyBottom := min(c.Open, c.Close)

	// Half a row either way so thin bodies stay visible.
	tolerance := (maxPrice - minPrice) / float64(height*2)

	switch {
	case rowPrice <= bodyTop+tolerance && rowPrice >= bodyBottom-tolerance:
		return '┃'
	case rowPrice <= c.High+tolerance && rowPrice > bodyTop:
		return '│'
	case rowPrice >= c.Low-tolerance && rowPrice < bodyBottom:
		return '│'
	}
	return ' '
}

func yToPrice(y int, minPrice, maxPrice float64, height int) float64 {
	if height <= 1 {
		return minPrice
	}
	ratio := float64(y) / float64(height-1)
	return maxPrice - ratio*(maxPrice-minPrice)
}

// SetFocus sets the focus state of the panel.
func (p *CandlestickPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *CandlestickPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetAsset selects the charted asset by name. Unknown names are ignored.
func (p *CandlestickPanel) SetAsset(name string) {
	for i, a := range p.assets {
		if a == name {
			p.current = i
			return
		}
	}
}

// Asset returns the charted asset.
func (p *CandlestickPanel) Asset() string {
	if p.current < 0 || p.current >= len(p.assets) {
		return ""
	}
	return p.assets[p.current]
}
