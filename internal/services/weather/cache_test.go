package weather

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLCache_SetGetDelete(t *testing.T) {
	cache := newTTLCache[string, int](time.Minute)

	_, ok := cache.Get("a")
	assert.False(t, ok)

	v := 42
	cache.Set("a", &v)

	got, ok := cache.Get("a")
	require.True(t, ok)
	assert.Equal(t, 42, *got)

	cache.Delete("a")
	_, ok = cache.Get("a")
	assert.False(t, ok)
}

func TestTTLCache_Expiry(t *testing.T) {
	// A negative TTL expires entries immediately.
	cache := newTTLCache[string, string](-time.Second)

	v := "stale"
	cache.Set("a", &v)

	_, ok := cache.Get("a")
	assert.False(t, ok)
	assert.Empty(t, cache.Values())
}

func TestTTLCache_Values(t *testing.T) {
	cache := newTTLCache[string, int](time.Minute)

	one, two := 1, 2
	cache.Set("one", &one)
	cache.Set("two", &two)

	values := cache.Values()
	assert.Len(t, values, 2)
}
