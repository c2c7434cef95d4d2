// Package report renders finished runs as Markdown and CSV.
package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Money formats v with two decimals and thousands separators.
func Money(v float64) string {
	return moneyDecimal(decimal.NewFromFloat(v))
}

func moneyDecimal(d decimal.Decimal) string {
	d = d.Round(2)
	neg := d.IsNegative()
	if neg {
		d = d.Neg()
	}
	whole := d.Truncate(0)
	frac := d.Sub(whole).Shift(2).IntPart()

	s := fmt.Sprintf("%s.%02d", humanize.Comma(whole.IntPart()), frac)
	if neg {
		return "-" + s
	}
	return s
}

// Signed is Money with an explicit plus sign on gains.
func Signed(v float64) string {
	s := Money(v)
	if !strings.HasPrefix(s, "-") && s != "0.00" {
		return "+" + s
	}
	return s
}

// plain renders v with two decimals and no separators, for CSV.
func plain(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
