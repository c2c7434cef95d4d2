package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/zappabad/marketverse/internal/analysis"
	"github.com/zappabad/marketverse/internal/ledger"
	"github.com/zappabad/marketverse/internal/trader"
)

// RenderTransactionsCSV writes every ledger entry to out in id order.
func RenderTransactionsCSV(out io.Writer, l *ledger.Ledger) error {
	w := csv.NewWriter(out)

	if err := w.Write([]string{"id", "day", "player", "asset", "action", "amount", "price", "fee", "net_delta"}); err != nil {
		return err
	}
	for _, tx := range l.All() {
		err := w.Write([]string{
			tx.ID.String(),
			strconv.Itoa(tx.Day),
			string(tx.PlayerID),
			tx.Asset,
			tx.Action.String(),
			strconv.FormatInt(tx.Amount, 10),
			plain(tx.Price),
			plain(tx.Fee),
			plain(tx.NetDelta),
		})
		if err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// RenderPlayersCSV writes the final player table to out.
func RenderPlayersCSV(out io.Writer, players []trader.Player) error {
	w := csv.NewWriter(out)

	if err := w.Write([]string{"player", "strategy", "starting_balance", "balance", "portfolio_value", "wealth", "net_gain_loss", "total_trades", "label"}); err != nil {
		return err
	}
	for _, p := range players {
		err := w.Write([]string{
			string(p.ID),
			p.Strategy.String(),
			plain(p.StartingBalance),
			plain(p.Balance),
			plain(p.PortfolioValue),
			plain(p.Wealth()),
			plain(analysis.NetGainLoss(p)),
			strconv.Itoa(p.TotalTrades),
			analysis.Label(p.TotalTrades),
		})
		if err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
