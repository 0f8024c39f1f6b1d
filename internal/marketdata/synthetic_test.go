package marketdata

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntheticFetcher_Name(t *testing.T) {
	f := NewSyntheticFetcher(nil)
	assert.Equal(t, "synthetic", f.Name())
}

func TestSyntheticFetcher_SnapshotShape(t *testing.T) {
	f := NewSyntheticFetcher(rand.New(rand.NewSource(1)))

	snap, err := f.FetchSnapshot(context.Background(), "AAPL", "1D")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", snap.Ticker)
	assert.Len(t, snap.Prices, 200)
	assert.Equal(t, snap.Prices[len(snap.Prices)-1], snap.CurrentPrice)
	assert.Equal(t, snap.Prices[len(snap.Prices)-2], snap.PrevClose)
	assert.GreaterOrEqual(t, snap.Volume, int64(1_000_000))
	assert.Less(t, snap.Volume, int64(6_000_000))

	for _, p := range snap.Prices {
		assert.Greater(t, p, 0.0)
	}
}
