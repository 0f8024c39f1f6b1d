package calculator

// DefaultRSIPeriod is the standard RSI lookback.
const DefaultRSIPeriod = 14

// RSI computes the relative strength index over the first `period` price
// changes starting at index 1. This is a fixed-window simplification rather
// than a rolling RSI at the series end: average gain and loss are
// accumulated once over that window and never re-smoothed.
//
// Returns the neutral value 50 when the series is shorter than period+1.
// When the window contains no losses the index saturates to 100.
func RSI(prices []float64, period int) float64 {
	if period <= 0 || len(prices) < period+1 {
		return 50.0
	}

	var gains, losses float64
	for i := 1; i <= period; i++ {
		change := prices[i] - prices[i-1]
		if change > 0 {
			gains += change
		} else {
			losses -= change
		}
	}

	avgGain := gains / float64(period)
	avgLoss := losses / float64(period)

	if avgLoss == 0 {
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}
