package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/zappabad/marketverse/internal/analysis"
	"github.com/zappabad/marketverse/internal/game"
	"github.com/zappabad/marketverse/internal/trader"
)

// recentTransactions is the length of the ledger tail in a run report.
const recentTransactions = 10

// RenderMarkdown renders one run as a Markdown document.
func RenderMarkdown(o *game.Outcome) string {
	var sb strings.Builder
	res := o.Result
	sim := o.Config.Simulation

	// Header
	sb.WriteString("# Marketverse Run\n\n")
	sb.WriteString(fmt.Sprintf("Run: `%s` | Seed: %d\n\n", o.RunID, o.Seed))
	sb.WriteString(fmt.Sprintf("Players: %d | Assets: %d | Days: %d | Slots/day: %d | Max trade: %d\n\n",
		len(res.Players), len(res.Assets), len(res.Days), sim.TransactionsPerDay, sim.MaxTradeAmount))

	// Players
	sb.WriteString("## Players\n\n")
	sb.WriteString("| Player | Strategy | Balance | Portfolio | Net Gain/Loss | Trades |\n")
	sb.WriteString("|--------|----------|---------|-----------|---------------|--------|\n")
	for _, p := range res.Players {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %d |\n",
			p.ID, p.Strategy, Money(p.Balance), Money(p.PortfolioValue),
			Signed(analysis.NetGainLoss(p)), p.TotalTrades))
	}
	sb.WriteString("\n")

	// Assets
	sb.WriteString("## Assets\n\n")
	sb.WriteString("| Asset | Starting Price | Current Price | Supply | Initial Supply | Transactions |\n")
	sb.WriteString("|-------|----------------|---------------|--------|----------------|--------------|\n")
	for _, a := range res.Assets {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %d |\n",
			a.Name, Money(a.StartingPrice), Money(a.CurrentPrice),
			humanize.Comma(a.Supply), humanize.Comma(a.InitialSupply), a.Transactions))
	}
	sb.WriteString("\n")

	// Price trend
	sb.WriteString("## Price Trend\n\n")
	sb.WriteString("| Day |")
	for _, name := range res.Trend.Assets {
		sb.WriteString(" " + name + " |")
	}
	sb.WriteString("\n|-----|")
	for range res.Trend.Assets {
		sb.WriteString("------|")
	}
	sb.WriteString("\n")
	for d, row := range res.Trend.Rows {
		sb.WriteString(fmt.Sprintf("| %d |", d))
		for _, price := range row {
			sb.WriteString(" " + Money(price) + " |")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	// Days
	sb.WriteString("## Days\n\n")
	sb.WriteString("| Day | Executed | Void | Volume | Fees |\n")
	sb.WriteString("|-----|----------|------|--------|------|\n")
	for _, d := range res.Days {
		sb.WriteString(fmt.Sprintf("| %d | %d | %d | %s | %s |\n",
			d.Day, d.Executed, d.Void, Money(d.Volume), Money(d.Fees)))
	}
	sb.WriteString("\n")

	// Rankings
	writeRanking(&sb, "Top Gainers", o.Gainers)
	writeRanking(&sb, "Top Losers", o.Losers)

	// Strategies
	sb.WriteString("## Net Gain/Loss by Strategy\n\n")
	if len(o.Strategies) > 0 {
		sb.WriteString("| Strategy | Players | Mean | Best | Worst | Trades |\n")
		sb.WriteString("|----------|---------|------|------|-------|--------|\n")
		for _, s := range o.Strategies {
			sb.WriteString(fmt.Sprintf("| %s | %d | %s | %s | %s | %d |\n",
				s.Strategy, s.Players, Signed(s.Mean), Signed(s.Best), Signed(s.Worst), s.Trades))
		}
	} else {
		sb.WriteString("No players.\n")
	}
	sb.WriteString("\n")

	// Intensity
	ids := make([]trader.PlayerID, len(res.Players))
	for i, p := range res.Players {
		ids[i] = p.ID
	}
	grid := res.Ledger.Intensity(ids, res.Trend.Assets)
	sb.WriteString("## Transaction Intensity\n\n")
	sb.WriteString("Units traded per player and asset, both directions.\n\n")
	sb.WriteString("| Player |")
	for _, name := range res.Trend.Assets {
		sb.WriteString(" " + name + " |")
	}
	sb.WriteString("\n|--------|")
	for range res.Trend.Assets {
		sb.WriteString("------|")
	}
	sb.WriteString("\n")
	for i, id := range ids {
		sb.WriteString(fmt.Sprintf("| %s |", id))
		for _, units := range grid[i] {
			sb.WriteString(fmt.Sprintf(" %s |", humanize.Comma(units)))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	// Recent transactions
	sb.WriteString("## Recent Transactions\n\n")
	if recent := res.Ledger.Last(recentTransactions); len(recent) > 0 {
		sb.WriteString("| ID | Day | Player | Asset | Action | Amount | Price | Fee | Net |\n")
		sb.WriteString("|----|-----|--------|-------|--------|--------|-------|-----|-----|\n")
		for _, tx := range recent {
			sb.WriteString(fmt.Sprintf("| %s | %d | %s | %s | %s | %d | %s | %s | %s |\n",
				tx.ID, tx.Day, tx.PlayerID, tx.Asset, tx.Action, tx.Amount,
				Money(tx.Price), Money(tx.Fee), Signed(tx.NetDelta)))
		}
	} else {
		sb.WriteString("No transactions.\n")
	}
	sb.WriteString("\n")

	// Ledger totals
	totals := res.Ledger.Totals()
	sb.WriteString("## Ledger\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Transactions | %s |\n", humanize.Comma(int64(totals.Trades))))
	sb.WriteString(fmt.Sprintf("| Buy Notional | %s |\n", moneyDecimal(totals.BuyNotional)))
	sb.WriteString(fmt.Sprintf("| Sell Notional | %s |\n", moneyDecimal(totals.SellNotional)))
	sb.WriteString(fmt.Sprintf("| Fees Charged | %s |\n", moneyDecimal(totals.FeesCharged)))
	sb.WriteString(fmt.Sprintf("| Fees Recorded | %s |\n", moneyDecimal(totals.FeesRecorded)))
	sb.WriteString(fmt.Sprintf("| Net Balance Change | %s |\n", moneyDecimal(totals.NetDelta)))
	status := "FAIL"
	if totals.Balanced() {
		status = "PASS"
	}
	sb.WriteString(fmt.Sprintf("| Accounting Check | %s |\n", status))
	sb.WriteString("\n")

	return sb.String()
}

func writeRanking(sb *strings.Builder, title string, rows []analysis.Ranked) {
	sb.WriteString("## " + title + "\n\n")
	if len(rows) == 0 {
		sb.WriteString("No players.\n\n")
		return
	}
	sb.WriteString("| # | Player | Strategy | Net Gain/Loss | Trades | Fees Paid | Analysis |\n")
	sb.WriteString("|---|--------|----------|---------------|--------|-----------|----------|\n")
	for i, r := range rows {
		sb.WriteString(fmt.Sprintf("| %d | %s | %s | %s | %d | %s | %s |\n",
			i+1, r.Player.ID, r.Player.Strategy, Signed(r.NetGainLoss),
			r.Player.TotalTrades, Money(r.FeesPaid), r.Label))
	}
	sb.WriteString("\n")
}

// RenderSweepMarkdown renders one summary row per run of a sweep.
func RenderSweepMarkdown(outs []*game.Outcome) string {
	var sb strings.Builder

	sb.WriteString("# Marketverse Sweep\n\n")
	sb.WriteString(fmt.Sprintf("Runs: %d\n\n", len(outs)))
	if len(outs) == 0 {
		sb.WriteString("No runs.\n")
		return sb.String()
	}

	sb.WriteString("| Seed | Run | Transactions | Volume | Fees | Top Gainer | Best | Top Loser | Worst | Balanced |\n")
	sb.WriteString("|------|-----|--------------|--------|------|------------|------|-----------|-------|----------|\n")
	for _, o := range outs {
		totals := o.Result.Ledger.Totals()
		gainer, best := "-", "-"
		if len(o.Gainers) > 0 {
			gainer = string(o.Gainers[0].Player.ID)
			best = Signed(o.Gainers[0].NetGainLoss)
		}
		loser, worst := "-", "-"
		if len(o.Losers) > 0 {
			loser = string(o.Losers[0].Player.ID)
			worst = Signed(o.Losers[0].NetGainLoss)
		}
		balanced := "no"
		if totals.Balanced() {
			balanced = "yes"
		}
		sb.WriteString(fmt.Sprintf("| %d | `%s` | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			o.Seed, o.RunID.String()[:8], humanize.Comma(int64(totals.Trades)),
			moneyDecimal(totals.Volume()), moneyDecimal(totals.FeesCharged),
			gainer, best, loser, worst, balanced))
	}
	sb.WriteString("\n")

	return sb.String()
}
