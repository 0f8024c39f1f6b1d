package calculator

// SMA computes the simple moving average of the last `period` prices. When
// the series is shorter than the period it degrades to the mean of the
// whole series instead of failing.
func SMA(prices []float64, period int) float64 {
	if len(prices) == 0 {
		return 0
	}
	start := len(prices) - period
	if period <= 0 || start < 0 {
		start = 0
	}
	sum := 0.0
	for _, p := range prices[start:] {
		sum += p
	}
	return sum / float64(len(prices)-start)
}
