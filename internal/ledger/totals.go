package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/zappabad/marketverse/internal/market"
)

var balanceTolerance = decimal.New(1, -2)

// Totals sums ledger amounts in decimal so long runs do not drift.
type Totals struct {
	Trades       int
	BuyNotional  decimal.Decimal
	SellNotional decimal.Decimal
	FeesCharged  decimal.Decimal
	FeesRecorded decimal.Decimal
	NetDelta     decimal.Decimal
}

// Balanced checks the accounting identity
//
//	NetDelta + FeesCharged == SellNotional - BuyNotional
//
// to within one cent.
func (t Totals) Balanced() bool {
	lhs := t.NetDelta.Add(t.FeesCharged)
	rhs := t.SellNotional.Sub(t.BuyNotional)
	return lhs.Sub(rhs).Abs().LessThan(balanceTolerance)
}

// Volume is the total notional traded in either direction.
func (t Totals) Volume() decimal.Decimal {
	return t.BuyNotional.Add(t.SellNotional)
}

// Totals sums the whole ledger.
func (l *Ledger) Totals() Totals {
	return l.TotalsThrough(-1)
}

// TotalsThrough sums transactions of days up to and including day.
// A negative day sums everything.
func (l *Ledger) TotalsThrough(day int) Totals {
	t := Totals{
		BuyNotional:  decimal.Zero,
		SellNotional: decimal.Zero,
		FeesCharged:  decimal.Zero,
		FeesRecorded: decimal.Zero,
		NetDelta:     decimal.Zero,
	}
	for _, tx := range l.txs {
		if day >= 0 && tx.Day > day {
			break
		}
		t.Trades++
		notional := decimal.NewFromFloat(tx.Notional())
		if tx.Action == market.SideBuy {
			t.BuyNotional = t.BuyNotional.Add(notional)
		} else {
			t.SellNotional = t.SellNotional.Add(notional)
		}
		t.FeesCharged = t.FeesCharged.Add(decimal.NewFromFloat(tx.FeeCharged()))
		t.FeesRecorded = t.FeesRecorded.Add(decimal.NewFromFloat(tx.Fee))
		t.NetDelta = t.NetDelta.Add(decimal.NewFromFloat(tx.NetDelta))
	}
	return t
}
