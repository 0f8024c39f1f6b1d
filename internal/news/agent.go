// Package news generates the mock per-ticker headline feed and exposes the
// context provider that enriches it.
package news

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"InvestSmart/internal/cache"
	"InvestSmart/internal/model"
)

// Agent assembles ticker news feeds, enriched with provider context and
// cached through the shared TTL store.
type Agent struct {
	provider ContextProvider
	cache    *cache.Cache
	now      func() time.Time
	log      zerolog.Logger
}

// NewAgent creates a news agent.
func NewAgent(provider ContextProvider, c *cache.Cache, log zerolog.Logger) *Agent {
	return &Agent{
		provider: provider,
		cache:    c,
		now:      time.Now,
		log:      log.With().Str("component", "news").Logger(),
	}
}

// FetchNews returns the three-headline mock feed for a ticker. Context
// enrichment failures only degrade the feed, they never fail the call.
func (a *Agent) FetchNews(ctx context.Context, ticker string) ([]model.NewsItem, error) {
	cacheKey := "news_" + ticker
	if cached, ok := a.cache.Get(cacheKey); ok {
		return cached.([]model.NewsItem), nil
	}

	now := a.now()
	items := []model.NewsItem{
		{
			Title:   fmt.Sprintf("%s Reports Strong Q2 Earnings", ticker),
			Summary: fmt.Sprintf("%s has reported earnings that beat analyst expectations, with revenue up 12%% year-over-year.", ticker),
			Date:    now.Format(time.RFC3339),
			Source:  "Financial Times",
		},
		{
			Title:   fmt.Sprintf("Analysts Upgrade %s to Buy Rating", ticker),
			Summary: fmt.Sprintf("Several analysts have upgraded their rating for %s citing improved fundamentals and growth prospects.", ticker),
			Date:    now.Add(-24 * time.Hour).Format(time.RFC3339),
			Source:  "Bloomberg",
		},
		{
			Title:   fmt.Sprintf("%s Announces New Product Line", ticker),
			Summary: fmt.Sprintf("%s has unveiled a new product line that is expected to drive growth in the coming quarters.", ticker),
			Date:    now.Add(-48 * time.Hour).Format(time.RFC3339),
			Source:  "Wall Street Journal",
		},
	}

	contexts, err := a.provider.Fetch(ctx, ticker)
	if err != nil {
		a.log.Warn().Err(err).Str("ticker", ticker).Msg("context enrichment failed")
	} else if len(contexts) > 0 {
		for i := range items {
			items[i].Context = contexts[0].Context
		}
	}

	a.cache.Set(cacheKey, items)
	return items, nil
}
