package model

import "time"

// MarketSnapshot holds one request's worth of price data for a ticker.
// It is derived once from the price-history provider and treated as
// immutable for the duration of the request.
type MarketSnapshot struct {
	Ticker       string    `json:"ticker"`
	CurrentPrice float64   `json:"currentPrice"`
	PrevClose    float64   `json:"prevClose"`
	Prices       []float64 `json:"historicalPrices"`
	Volume       int64     `json:"volume"`
	FetchedAt    time.Time `json:"-"`
}

// TickerContext is one entry of optional news/sentiment context for a ticker.
type TickerContext struct {
	Ticker    string `json:"ticker"`
	Context   string `json:"context"`
	Sentiment string `json:"sentiment"`
}

// NewsItem is a single headline in a ticker's news feed.
type NewsItem struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Date    string `json:"date"`
	Source  string `json:"source"`
	Context string `json:"context"`
}

// MarketSummary is the plain-language analysis of a snapshot.
type MarketSummary struct {
	Summary      string  `json:"summary"`
	CurrentPrice float64 `json:"current_price"`
	DayChange    float64 `json:"day_change"`
	RSI          float64 `json:"rsi"`
	Volume       int64   `json:"volume"`
}

// PriceQuote is the lightweight current-price response.
type PriceQuote struct {
	Price       string `json:"price"`
	Change      string `json:"change"`
	Volume      string `json:"volume"`
	LastUpdated string `json:"lastUpdated"`
}
