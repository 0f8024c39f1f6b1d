package news

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"InvestSmart/internal/cache"
	"InvestSmart/internal/model"
)

type failingProvider struct{}

func (failingProvider) Fetch(context.Context, string) ([]model.TickerContext, error) {
	return nil, errors.New("provider down")
}

func TestStaticProvider_KnownTicker(t *testing.T) {
	p := NewStaticProvider()

	ctxs, err := p.Fetch(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Len(t, ctxs, 1)
	assert.Equal(t, "positive", ctxs[0].Sentiment)
}

func TestStaticProvider_UnknownTickerIsEmptyNotError(t *testing.T) {
	p := NewStaticProvider()

	ctxs, err := p.Fetch(context.Background(), "ZZZZ")
	require.NoError(t, err)
	assert.Empty(t, ctxs)
}

func TestFetchNews_EnrichesAndCaches(t *testing.T) {
	c := cache.New()
	a := NewAgent(NewStaticProvider(), c, zerolog.Nop())

	items, err := a.FetchNews(context.Background(), "MSFT")
	require.NoError(t, err)
	require.Len(t, items, 3)
	for _, item := range items {
		assert.Contains(t, item.Title, "MSFT")
		assert.NotEmpty(t, item.Context)
	}

	// Second call must come from cache.
	again, err := a.FetchNews(context.Background(), "MSFT")
	require.NoError(t, err)
	assert.Equal(t, items, again)
	assert.Equal(t, 1, c.Len())
}

func TestFetchNews_ProviderFailureDegrades(t *testing.T) {
	a := NewAgent(failingProvider{}, cache.New(), zerolog.Nop())

	items, err := a.FetchNews(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Len(t, items, 3)
	for _, item := range items {
		assert.Empty(t, item.Context)
	}
}
