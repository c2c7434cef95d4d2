package engine

import "github.com/zappabad/marketverse/internal/market"

// PriceTrend is the per-day price history of every asset. Row 0 holds the
// initial prices, row d the prices at the end of day d.
type PriceTrend struct {
	Assets []string
	Rows   [][]float64
}

func newPriceTrend(assets []market.Asset) *PriceTrend {
	names := make([]string, len(assets))
	for i, a := range assets {
		names[i] = a.Name
	}
	t := &PriceTrend{Assets: names}
	t.record(assets)
	return t
}

func (t *PriceTrend) record(assets []market.Asset) {
	row := make([]float64, len(assets))
	for i, a := range assets {
		row[i] = a.CurrentPrice
	}
	t.Rows = append(t.Rows, row)
}

// Len returns the number of recorded days, including day 0.
func (t *PriceTrend) Len() int {
	return len(t.Rows)
}

// Day returns the price snapshot of day d keyed by asset name.
func (t *PriceTrend) Day(d int) (map[string]float64, bool) {
	if d < 0 || d >= len(t.Rows) {
		return nil, false
	}
	out := make(map[string]float64, len(t.Assets))
	for i, name := range t.Assets {
		out[name] = t.Rows[d][i]
	}
	return out, true
}

// Series returns one asset's price for every recorded day.
func (t *PriceTrend) Series(asset string) ([]float64, bool) {
	col := -1
	for i, name := range t.Assets {
		if name == asset {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, false
	}
	out := make([]float64, len(t.Rows))
	for d, row := range t.Rows {
		out[d] = row[col]
	}
	return out, true
}
