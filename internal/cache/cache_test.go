package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func TestSetThenGet(t *testing.T) {
	c := New()
	c.Set("k", "v")

	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestGetMissing(t *testing.T) {
	c := New()
	_, ok := c.Get("absent")
	assert.False(t, ok)
}

func TestExpiry(t *testing.T) {
	clk := &fakeClock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := New(WithClock(clk.Now))

	c.Set("k", 42)

	clk.Advance(4 * time.Minute)
	_, ok := c.Get("k")
	assert.True(t, ok, "entry should survive inside the TTL")

	clk.Advance(2 * time.Minute)
	_, ok = c.Get("k")
	assert.False(t, ok, "entry should be treated as absent after the TTL")
}

func TestSetOverwritesAndRestampsAge(t *testing.T) {
	clk := &fakeClock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := New(WithClock(clk.Now), WithTTL(time.Minute))

	c.Set("k", "old")
	clk.Advance(50 * time.Second)
	c.Set("k", "new")
	clk.Advance(30 * time.Second)

	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "new", v)
	assert.Equal(t, 1, c.Len())
}
