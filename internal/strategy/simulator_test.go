package strategy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSimulator() *Simulator {
	return NewSimulator(rand.New(rand.NewSource(42)))
}

func TestRun_CurveAndTradeShape(t *testing.T) {
	res := newTestSimulator().Run("AAPL", "momentum", 190)

	assert.Len(t, res.Performance, 30)
	require.Len(t, res.KeyTrades, 5)
	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, "AAPL", res.Ticker)

	for _, trade := range res.KeyTrades {
		assert.Contains(t, []string{"buy", "sell"}, trade.Type)
		assert.GreaterOrEqual(t, trade.Price, 190*0.95)
		assert.Less(t, trade.Price, 190*1.05)
		assert.GreaterOrEqual(t, trade.Return, -0.02)
		assert.Less(t, trade.Return, 0.08)
	}
}

func TestRun_CurveIsBoundedRandomWalk(t *testing.T) {
	res := newTestSimulator().Run("SPY", "momentum", 450)

	prev := 10000.0
	for _, v := range res.Performance {
		ratio := v / prev
		assert.GreaterOrEqual(t, ratio, 0.995)
		assert.Less(t, ratio, 1.015)
		prev = v
	}
}

func TestRun_MetricsAreReferenceValues(t *testing.T) {
	tests := []struct {
		archetype string
		name      string
		sharpe    float64
		drawdown  float64
		winRate   float64
		total     float64
	}{
		{"momentum", "Momentum Strategy", 1.2, -0.15, 0.65, 0.32},
		{"mean_reversion", "Mean Reversion Strategy", 0.9, -0.22, 0.58, 0.18},
		{"ml_strategy", "ML-Based Strategy", 1.5, -0.12, 0.7, 0.45},
	}
	for _, tt := range tests {
		res := newTestSimulator().Run("AAPL", tt.archetype, 100)
		assert.Equal(t, tt.name, res.StrategyName)
		assert.Equal(t, tt.sharpe, res.SharpeRatio)
		assert.Equal(t, tt.drawdown, res.MaxDrawdown)
		assert.Equal(t, tt.winRate, res.WinRate)
		assert.Equal(t, tt.total, res.TotalReturn)
	}
}

func TestRun_UnknownArchetypeDefaultsToMomentum(t *testing.T) {
	res := newTestSimulator().Run("AAPL", "quantum_leap", 100)
	assert.Equal(t, "Momentum Strategy", res.StrategyName)
	assert.Equal(t, 1.2, res.SharpeRatio)
}

func TestRun_TradeDatesSpacedWeekly(t *testing.T) {
	res := newTestSimulator().Run("AAPL", "momentum", 100)

	require.Len(t, res.KeyTrades, 5)
	assert.Equal(t, res.EndDate, res.KeyTrades[0].Date)
	for i := 1; i < len(res.KeyTrades); i++ {
		assert.NotEqual(t, res.KeyTrades[i-1].Date, res.KeyTrades[i].Date)
	}
}
