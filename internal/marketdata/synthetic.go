package marketdata

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"InvestSmart/internal/model"
)

const historyLength = 200

// SyntheticFetcher generates plausible price history without touching any
// external market-data API. Each snapshot is built around a random base in
// [100, 200) with each price jittered within ±10% of it.
type SyntheticFetcher struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewSyntheticFetcher creates a generator seeded by the given source.
func NewSyntheticFetcher(rng *rand.Rand) *SyntheticFetcher {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SyntheticFetcher{rng: rng, now: time.Now}
}

func (f *SyntheticFetcher) Name() string { return "synthetic" }

// FetchSnapshot returns a fresh snapshot for the ticker. The timeframe is
// accepted for interface compatibility; the synthetic series always spans
// 200 points.
func (f *SyntheticFetcher) FetchSnapshot(_ context.Context, ticker, _ string) (*model.MarketSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	base := 100 + f.rng.Float64()*100
	prices := make([]float64, historyLength)
	for i := range prices {
		prices[i] = base * (0.9 + f.rng.Float64()*0.2)
	}

	return &model.MarketSnapshot{
		Ticker:       ticker,
		CurrentPrice: prices[len(prices)-1],
		PrevClose:    prices[len(prices)-2],
		Prices:       prices,
		Volume:       1_000_000 + int64(f.rng.Float64()*5_000_000),
		FetchedAt:    f.now(),
	}, nil
}
