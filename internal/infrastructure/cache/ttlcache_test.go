package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLCacheSetGet(t *testing.T) {
	c := NewTTLCache[string, int]()
	c.Set("a", 1, time.Minute)

	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestTTLCacheExpiry(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }
	c := NewTTLCacheWithClock[string, string](clock)

	c.Set("token", "abc", 10*time.Second)

	v, ok := c.Get("token")
	assert.True(t, ok)
	assert.Equal(t, "abc", v)

	now = now.Add(11 * time.Second)
	_, ok = c.Get("token")
	assert.False(t, ok)
}

func TestTTLCacheZeroTTLNeverExpires(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }
	c := NewTTLCacheWithClock[string, string](clock)

	c.Set("k", "v", 0)
	now = now.Add(24 * time.Hour)

	v, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestTTLCacheDelete(t *testing.T) {
	c := NewTTLCache[string, int]()
	c.Set("a", 1, time.Minute)
	c.Delete("a")

	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestNoopCache(t *testing.T) {
	c := NoopCache[string, int]{}
	c.Set("a", 1, time.Minute)

	_, ok := c.Get("a")
	assert.False(t, ok)
}
