package engine

import (
	"math"

	"go.uber.org/zap"

	"github.com/zappabad/marketverse/internal/ledger"
	"github.com/zappabad/marketverse/internal/market"
	"github.com/zappabad/marketverse/internal/trader"
	"github.com/zappabad/marketverse/internal/trader/strategy"
)

// ExecuteTrade performs one trade attempt for day: pick a player and an
// asset, ask the player's strategy what to do, size the trade, apply it
// and record it.
//
// The returned bool is false for a void trade (bound <= 0). A void trade
// changes no state and consumes no transaction id.
func (s *State) ExecuteTrade(day int) (ledger.Transaction, bool, error) {
	s.today.Slots++

	player := &s.Players[s.rng.Intn(len(s.Players))]
	asset := &s.Assets[s.rng.Intn(len(s.Assets))]

	action := strategy.Decide(player.Strategy, s.rng, *player, *asset)

	bound := s.tradeBound(action, *player, *asset)
	if bound <= 0 {
		s.today.Void++
		return ledger.Transaction{}, false, nil
	}

	amount := int64(1 + s.rng.Intn(bound))
	price := asset.CurrentPrice
	notional := float64(amount) * price
	fee := notional * FeeRate

	var delta float64
	var supplyDelta int64
	switch action {
	case market.SideBuy:
		delta = -notional - fee
		supplyDelta = -amount
	default:
		// Sells are credited the full notional; the fee is recorded only.
		delta = notional
		supplyDelta = amount
	}
	if err := asset.ApplySupply(supplyDelta); err != nil {
		return ledger.Transaction{}, false, s.abort(day, asset, err)
	}
	player.Balance += delta
	player.TotalTrades++
	asset.Transactions++

	if err := asset.Reprice(); err != nil {
		return ledger.Transaction{}, false, s.abort(day, asset, err)
	}

	tx := ledger.Transaction{
		ID:       s.Ledger.NextID(),
		Day:      day,
		PlayerID: player.ID,
		Asset:    asset.Name,
		Action:   action,
		Amount:   amount,
		Price:    price,
		Fee:      fee,
		NetDelta: delta,
	}
	if err := s.Ledger.Append(tx); err != nil {
		return ledger.Transaction{}, false, err
	}

	s.today.Executed++
	s.today.Volume += notional
	s.today.Fees += tx.FeeCharged()
	return tx, true, nil
}

func (s *State) abort(day int, asset *market.Asset, err error) error {
	s.log.Error("aborting run on degenerate price",
		zap.Int("day", day),
		zap.String("asset", asset.Name),
		zap.Int64("supply", asset.Supply),
		zap.Error(err),
	)
	return err
}

// tradeBound is the largest number of units the trade may move.
// Buys are capped by the most units the player can pay for including the
// fee, so a buy never overdraws the balance. Sells are only capped by MaxTradeAmount; the
// supply clamp absorbs oversized sells.
func (s *State) tradeBound(action market.Side, p trader.Player, a market.Asset) int {
	limit := s.cfg.MaxTradeAmount
	if action != market.SideBuy {
		return limit
	}
	if !(a.CurrentPrice > 0) || !(p.Balance > 0) {
		return 0
	}

	units := math.Floor(p.Balance / (a.CurrentPrice * (1 + FeeRate)))
	if units >= float64(limit) {
		units = float64(limit)
	}
	n := int(units)
	// The division can land either side of an integer; settle on the
	// exact cost.
	for n < limit && buyCost(n+1, a.CurrentPrice) <= p.Balance {
		n++
	}
	for n > 0 && buyCost(n, a.CurrentPrice) > p.Balance {
		n--
	}
	return n
}

// buyCost is what buying n units at price takes from a balance. It mirrors
// the arithmetic in ExecuteTrade exactly.
func buyCost(n int, price float64) float64 {
	notional := float64(n) * price
	return notional + notional*FeeRate
}
