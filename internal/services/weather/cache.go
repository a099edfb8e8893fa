package weather

import (
	"sync"
	"time"
)

type cacheItem[V any] struct {
	value     *V
	expiresAt time.Time
}

// ttlCache is a small expiring map used for the pre-warmed favorites
// snapshots. Reads do not extend the TTL: a warmed snapshot should age out
// on the refresh cadence, not on view frequency.
type ttlCache[K comparable, V any] struct {
	mu    sync.Mutex
	items map[K]*cacheItem[V]
	ttl   time.Duration
}

func newTTLCache[K comparable, V any](ttl time.Duration) *ttlCache[K, V] {
	return &ttlCache[K, V]{
		items: make(map[K]*cacheItem[V]),
		ttl:   ttl,
	}
}

func (c *ttlCache[K, V]) Get(key K) (*V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, found := c.items[key]
	if !found {
		return nil, false
	}
	if time.Now().UTC().After(item.expiresAt) {
		delete(c.items, key)
		return nil, false
	}
	return item.value, true
}

func (c *ttlCache[K, V]) Set(key K, value *V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = &cacheItem[V]{
		value:     value,
		expiresAt: time.Now().UTC().Add(c.ttl),
	}
}

func (c *ttlCache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Values returns the unexpired entries in unspecified order.
func (c *ttlCache[K, V]) Values() []*V {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UTC()
	values := make([]*V, 0, len(c.items))
	for key, item := range c.items {
		if now.After(item.expiresAt) {
			delete(c.items, key)
			continue
		}
		values = append(values, item.value)
	}
	return values
}
