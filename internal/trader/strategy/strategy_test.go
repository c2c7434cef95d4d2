package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zappabad/marketverse/internal/market"
)

type fixedSource struct {
	vals  []int
	calls int
}

func (s *fixedSource) Intn(n int) int {
	v := s.vals[s.calls%len(s.vals)] % n
	s.calls++
	return v
}

type balance float64

func (b balance) RemainingBalance() float64 { return float64(b) }

func TestDecideRandom(t *testing.T) {
	asset := market.Asset{StartingPrice: 10, CurrentPrice: 10}
	src := &fixedSource{vals: []int{0, 1}}

	assert.Equal(t, market.SideBuy, Decide(Random, src, balance(0), asset))
	assert.Equal(t, market.SideSell, Decide(Random, src, balance(0), asset))
	assert.Equal(t, 2, src.calls)
}

func TestDecideUnknownKindPanics(t *testing.T) {
	asset := market.Asset{StartingPrice: 10, CurrentPrice: 10}
	src := &fixedSource{vals: []int{0}}

	assert.Panics(t, func() { Decide(Kind(9), src, balance(0), asset) })
	assert.Zero(t, src.calls, "an unknown kind must not draw")
}

func TestDecideGreedy(t *testing.T) {
	src := &fixedSource{vals: []int{0}}
	cases := []struct {
		current float64
		want    market.Side
	}{
		{current: 100, want: market.SideBuy},
		{current: 109.99, want: market.SideBuy},
		{current: 110, want: market.SideSell},
		{current: 500, want: market.SideSell},
	}
	for _, tc := range cases {
		asset := market.Asset{StartingPrice: 100, CurrentPrice: tc.current}
		assert.Equal(t, tc.want, Decide(Greedy, src, balance(1e9), asset), "price %v", tc.current)
	}
	assert.Zero(t, src.calls, "greedy must not draw randomness")
}

func TestDecideRiskAverse(t *testing.T) {
	src := &fixedSource{vals: []int{0}}
	asset := market.Asset{StartingPrice: 10, CurrentPrice: 50}

	assert.Equal(t, market.SideBuy, Decide(RiskAverse, src, balance(100.01), asset))
	assert.Equal(t, market.SideSell, Decide(RiskAverse, src, balance(100), asset))
	assert.Equal(t, market.SideSell, Decide(RiskAverse, src, balance(0), asset))
	assert.Zero(t, src.calls)
}

func TestAssign(t *testing.T) {
	src := &fixedSource{vals: []int{2, 0, 1}}

	assert.Equal(t, Greedy, Assign([]Kind{Greedy}, src))
	assert.Zero(t, src.calls, "single kind must not draw")

	set := Kinds()
	assert.Equal(t, RiskAverse, Assign(set, src))
	assert.Equal(t, Random, Assign(set, src))
	assert.Equal(t, Greedy, Assign(set, src))
}

func TestParseKind(t *testing.T) {
	for _, in := range []string{"risk_averse", "Risk-Averse", " RISK_AVERSE "} {
		k, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, RiskAverse, k)
	}

	_, err := ParseKind("momentum")
	assert.Error(t, err)
}

func TestKindTextRoundTrip(t *testing.T) {
	var k Kind
	require.NoError(t, k.UnmarshalText([]byte("greedy")))
	assert.Equal(t, Greedy, k)

	out, err := RiskAverse.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "risk_averse", string(out))

	_, err = Kind(42).MarshalText()
	assert.Error(t, err)
	assert.False(t, Kind(42).Valid())
}
