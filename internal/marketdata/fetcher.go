package marketdata

import (
	"context"

	"InvestSmart/internal/model"
)

// Fetcher is the price-history provider contract. Implementations return an
// ordered, chronological price series for a ticker.
type Fetcher interface {
	FetchSnapshot(ctx context.Context, ticker, timeframe string) (*model.MarketSnapshot, error)
	Name() string
}
