// Package advisor ranks the candidate universe, screens instruments, and
// assembles the request-shaped aggregates served by the route layer. All
// expensive computations go through the shared TTL cache.
package advisor

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"InvestSmart/internal/cache"
	"InvestSmart/internal/marketdata"
	"InvestSmart/internal/metrics"
	"InvestSmart/internal/model"
	"InvestSmart/internal/news"
	"InvestSmart/internal/strategy"
)

// Service is the orchestration facade over the ranking engine, screener,
// simulator, and providers.
type Service struct {
	market   marketdata.Fetcher
	contexts news.ContextProvider
	cache    *cache.Cache
	sim      *strategy.Simulator
	fallback fallbackProvider
	now      func() time.Time
	log      zerolog.Logger

	mu         sync.Mutex
	rng        *rand.Rand
	watchlists map[string][]string
}

// NewService wires the facade. A nil rng falls back to a time-seeded source.
func NewService(market marketdata.Fetcher, contexts news.ContextProvider, c *cache.Cache, sim *strategy.Simulator, rng *rand.Rand, log zerolog.Logger) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		market:     market,
		contexts:   contexts,
		cache:      c,
		sim:        sim,
		fallback:   fallbackProvider{now: time.Now},
		now:        time.Now,
		log:        log.With().Str("component", "advisor").Logger(),
		rng:        rng,
		watchlists: make(map[string][]string),
	}
}

// GenerateSuggestions returns the personalized suggestions bundle for a
// risk level and investment term. Results are cached per parameter pair;
// any assembly failure degrades to the canned fallback bundle instead of
// surfacing an error (fail-open).
func (s *Service) GenerateSuggestions(ctx context.Context, riskLevel, term string) *model.SuggestionBundle {
	key := fmt.Sprintf("suggestions_%s_%s", riskLevel, term)
	if v, ok := s.cache.Get(key); ok {
		metrics.CacheHits.WithLabelValues("suggestions").Inc()
		return v.(*model.SuggestionBundle)
	}
	metrics.CacheMisses.WithLabelValues("suggestions").Inc()

	bundle, err := s.assembleSuggestions(ctx, riskLevel, term)
	if err != nil {
		s.log.Error().Err(err).Str("risk", riskLevel).Str("term", term).Msg("suggestion assembly failed, serving fallback")
		metrics.FallbacksServed.Inc()
		return s.fallback.Suggestions(riskLevel)
	}

	metrics.SuggestionsGenerated.WithLabelValues(riskLevel).Inc()
	s.cache.Set(key, bundle)
	return bundle
}

func (s *Service) assembleSuggestions(ctx context.Context, riskLevel, term string) (*model.SuggestionBundle, error) {
	conditions, err := s.marketConditions(ctx)
	if err != nil {
		return nil, fmt.Errorf("market conditions: %w", err)
	}

	strat := lookupStrategy(riskLevel, term)

	return &model.SuggestionBundle{
		Strategy:      strat.Name,
		Allocation:    formatAllocation(strat),
		Sectors:       s.SectorAnalysis(),
		Picks:         s.picks(riskLevel),
		Risk:          assessRisk(riskLevel),
		MarketContext: conditions,
		LastUpdated:   s.now().Format(time.RFC3339),
	}, nil
}

// marketConditions reports the market backdrop. The static table stands in
// for a live conditions feed; the error path is what the fail-open fallback
// guards when a real feed is wired.
func (s *Service) marketConditions(_ context.Context) (model.MarketConditions, error) {
	return currentConditions, nil
}

func formatAllocation(strat model.AllocationStrategy) model.Allocation {
	return model.Allocation{
		Stocks: fmt.Sprintf("%d%%", strat.StockPct),
		Bonds:  fmt.Sprintf("%d%%", strat.BondPct),
		Cash:   fmt.Sprintf("%d%%", strat.CashPct),
	}
}

// picks runs the ranking engine under the rng lock.
func (s *Service) picks(riskLevel string) []model.Pick {
	s.mu.Lock()
	defer s.mu.Unlock()
	return generatePicks(s.rng, riskLevel)
}

// Recommend derives a trading recommendation for a ticker from fresh
// provider data. A context-provider failure only drops the sentiment
// sentence; a price-provider failure is surfaced to the caller.
func (s *Service) Recommend(ctx context.Context, ticker string) (*model.Recommendation, error) {
	snap, err := s.market.FetchSnapshot(ctx, ticker, "")
	if err != nil {
		return nil, fmt.Errorf("fetch market data: %w", err)
	}

	contexts, err := s.contexts.Fetch(ctx, ticker)
	if err != nil {
		s.log.Warn().Err(err).Str("ticker", ticker).Msg("context fetch failed, advising without sentiment")
		contexts = nil
	}

	return strategy.Advise(snap, contexts), nil
}

// Analyze produces the plain-language market summary for a ticker.
func (s *Service) Analyze(ctx context.Context, ticker string) (*model.MarketSummary, error) {
	snap, err := s.market.FetchSnapshot(ctx, ticker, "")
	if err != nil {
		return nil, fmt.Errorf("fetch market data: %w", err)
	}
	return strategy.Summarize(snap), nil
}

// Prices returns the raw provider snapshot for a ticker.
func (s *Service) Prices(ctx context.Context, ticker, timeframe string) (*model.MarketSnapshot, error) {
	snap, err := s.market.FetchSnapshot(ctx, ticker, timeframe)
	if err != nil {
		return nil, fmt.Errorf("fetch market data: %w", err)
	}
	return snap, nil
}

// Simulate runs one strategy backtest. If the price provider fails, the
// trade prices are anchored on a synthesized quote instead of failing the
// run (fail-open).
func (s *Service) Simulate(ctx context.Context, ticker, archetype string) *model.SimulationResult {
	var price float64
	if snap, err := s.market.FetchSnapshot(ctx, ticker, ""); err != nil {
		s.log.Warn().Err(err).Str("ticker", ticker).Msg("price fetch failed, anchoring simulation on synthetic quote")
		price = s.syntheticPrice()
	} else {
		price = snap.CurrentPrice
	}

	metrics.SimulationsRun.WithLabelValues(resolveArchetype(archetype)).Inc()
	return s.sim.Run(ticker, archetype, price)
}

// resolveArchetype normalizes unknown archetypes for the metrics label.
func resolveArchetype(archetype string) string {
	if _, ok := strategy.Profiles[archetype]; ok {
		return archetype
	}
	return "momentum"
}

func (s *Service) syntheticPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()*200 + 50
}

// Screen filters the screener universe, caching per filter combination.
func (s *Service) Screen(f model.ScreenerFilters) []model.ScreenerEntry {
	key := fmt.Sprintf("screener_%s_%s_%s", f.Sector, f.MarketCap, f.PERatio)
	if v, ok := s.cache.Get(key); ok {
		metrics.CacheHits.WithLabelValues("screener").Inc()
		return v.([]model.ScreenerEntry)
	}
	metrics.CacheMisses.WithLabelValues("screener").Inc()

	results := screen(f)
	s.cache.Set(key, results)
	return results
}

// SectorAnalysis returns the per-sector rating table, cached.
func (s *Service) SectorAnalysis() []model.SectorOutlook {
	if v, ok := s.cache.Get("sector_analysis"); ok {
		metrics.CacheHits.WithLabelValues("sectors").Inc()
		return v.([]model.SectorOutlook)
	}
	metrics.CacheMisses.WithLabelValues("sectors").Inc()

	s.cache.Set("sector_analysis", sectorOutlooks)
	return sectorOutlooks
}
