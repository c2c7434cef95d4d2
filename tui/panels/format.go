package panels

import (
	"github.com/dustin/go-humanize"

	"github.com/zappabad/marketverse/internal/report"
)

// shortPrice fits a price into the chart's axis column.
func shortPrice(v float64) string {
	if v >= 1e6 || v <= -1e6 {
		return humanize.SIWithDigits(v, 2, "")
	}
	return report.Money(v)
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return string(r[:1])
	}
	return string(r[:n-1]) + "…"
}
