package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRSI_InsufficientData(t *testing.T) {
	assert.Equal(t, 50.0, RSI(nil, 14))
	assert.Equal(t, 50.0, RSI([]float64{100}, 14))

	// Exactly period prices is still one short of the period+1 needed.
	prices := make([]float64, 14)
	for i := range prices {
		prices[i] = 100 + float64(i)
	}
	assert.Equal(t, 50.0, RSI(prices, 14))
}

func TestRSI_AllGainsSaturates(t *testing.T) {
	prices := make([]float64, 20)
	for i := range prices {
		prices[i] = 100 + float64(i)
	}
	assert.Equal(t, 100.0, RSI(prices, 14))
}

func TestRSI_AllLosses(t *testing.T) {
	prices := make([]float64, 20)
	for i := range prices {
		prices[i] = 200 - float64(i)
	}
	assert.Equal(t, 0.0, RSI(prices, 14))
}

func TestRSI_Bounded(t *testing.T) {
	cases := [][]float64{
		{100, 102, 101, 103, 99, 104, 98, 105, 97, 106, 96, 107, 95, 108, 94},
		{50, 50.5, 49.8, 51, 50.2, 49.9, 50.7, 50.1, 49.5, 51.2, 50.8, 49.7, 50.3, 50.9, 50.4},
		{10, 9, 11, 8, 12, 7, 13, 6, 14, 5, 15, 4, 16, 3, 17},
	}
	for _, prices := range cases {
		rsi := RSI(prices, 14)
		assert.GreaterOrEqual(t, rsi, 0.0)
		assert.LessOrEqual(t, rsi, 100.0)
	}
}

func TestRSI_FixedWindowIgnoresTail(t *testing.T) {
	// Only the first period+1 prices feed the window; everything after
	// must not move the result.
	base := []float64{100, 102, 101, 103, 99, 104, 98, 105, 97, 106, 96, 107, 95, 108, 94}
	extended := append(append([]float64{}, base...), 500, 1, 999, 2)
	assert.Equal(t, RSI(base, 14), RSI(extended, 14))
}

func TestSMA_TailMean(t *testing.T) {
	prices := []float64{1, 2, 3, 4, 5, 6}
	assert.InDelta(t, 5.0, SMA(prices, 3), 1e-9) // (4+5+6)/3
	assert.InDelta(t, 3.5, SMA(prices, 6), 1e-9)
}

func TestSMA_ShortSeriesFallsBackToWholeMean(t *testing.T) {
	prices := []float64{10, 20, 30}
	assert.InDelta(t, 20.0, SMA(prices, 50), 1e-9)
}

func TestSMA_Empty(t *testing.T) {
	assert.Equal(t, 0.0, SMA(nil, 14))
}
