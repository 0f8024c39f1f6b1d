package news

import (
	"context"

	"InvestSmart/internal/model"
)

// ContextProvider supplies optional sentiment/news context for a ticker.
// An empty slice means no context is known; that is not an error.
type ContextProvider interface {
	Fetch(ctx context.Context, ticker string) ([]model.TickerContext, error)
}

// StaticProvider serves a fixed context corpus keyed by ticker.
type StaticProvider struct {
	corpus []model.TickerContext
}

// NewStaticProvider creates a provider seeded with the built-in corpus.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{corpus: defaultCorpus}
}

var defaultCorpus = []model.TickerContext{
	{
		Ticker:    "AAPL",
		Context:   "Apple Inc. recently announced new products and services that are expected to drive growth. Analysts are generally positive about the company's outlook.",
		Sentiment: "positive",
	},
	{
		Ticker:    "MSFT",
		Context:   "Microsoft continues to see strong growth in its cloud computing division. The company recently signed several large enterprise contracts.",
		Sentiment: "positive",
	},
	{
		Ticker:    "TSLA",
		Context:   "Tesla faces increased competition in the EV market. Recent delivery numbers were slightly below expectations.",
		Sentiment: "neutral",
	},
}

// Fetch returns every corpus entry matching the ticker.
func (p *StaticProvider) Fetch(_ context.Context, ticker string) ([]model.TickerContext, error) {
	var out []model.TickerContext
	for _, c := range p.corpus {
		if c.Ticker == ticker {
			out = append(out, c)
		}
	}
	return out, nil
}
