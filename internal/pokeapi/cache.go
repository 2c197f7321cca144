package pokeapi

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultTTL is how long cached responses stay fresh. Reference data
// changes rarely, so staleness within the window is acceptable.
const DefaultTTL = 24 * time.Hour

// ResponseCache stores raw response bodies keyed by the fully-qualified
// request URL. Entries are immutable once written; overwrites are
// semantically equivalent, so no external locking is needed.
type ResponseCache interface {
	Get(key string) ([]byte, bool)
	Put(key string, body []byte, ttl time.Duration)
}

type memoryCache struct {
	c *gocache.Cache
}

// NewMemoryCache returns an in-process ResponseCache with expiring entries.
func NewMemoryCache() ResponseCache {
	return &memoryCache{c: gocache.New(DefaultTTL, 10*time.Minute)}
}

func (m *memoryCache) Get(key string) ([]byte, bool) {
	v, ok := m.c.Get(key)
	if !ok {
		return nil, false
	}
	body, ok := v.([]byte)
	return body, ok
}

func (m *memoryCache) Put(key string, body []byte, ttl time.Duration) {
	m.c.Set(key, body, ttl)
}
