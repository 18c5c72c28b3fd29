package docguide

import (
	"sync"
	"time"

	"github.com/eringen/docguide/guide"
)

// PageCache is an in-memory cache of prepared guides with TTL. A reload
// prepares every registered guide again.
type PageCache struct {
	mu          sync.RWMutex
	pages       []Prepared
	bySlug      map[string]int
	fetched     time.Time
	ttl         time.Duration
	registry    *Registry
	highlighter guide.Highlighter
}

// NewPageCache creates a PageCache that prepares guides from r with h.
func NewPageCache(r *Registry, h guide.Highlighter, ttl time.Duration) *PageCache {
	return &PageCache{registry: r, highlighter: h, ttl: ttl}
}

func (c *PageCache) valid() bool {
	return c.pages != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh preparation.
func (c *PageCache) Invalidate() {
	c.mu.Lock()
	c.pages = nil
	c.bySlug = nil
	c.mu.Unlock()
}

func (c *PageCache) load() error {
	if c.valid() {
		return nil
	}
	guides := c.registry.List()
	pages := make([]Prepared, 0, len(guides))
	bySlug := make(map[string]int, len(guides))
	for _, g := range guides {
		code, err := guide.Prepare(g, c.highlighter)
		if err != nil {
			return err
		}
		bySlug[g.Slug] = len(pages)
		pages = append(pages, Prepared{Guide: g, Code: code})
	}
	c.pages = pages
	c.bySlug = bySlug
	c.fetched = time.Now()
	return nil
}

// ensureLoaded returns cached pages after ensuring the cache is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *PageCache) ensureLoaded() ([]Prepared, map[string]int, error) {
	c.mu.RLock()
	if c.valid() {
		pages, bySlug := c.pages, c.bySlug
		c.mu.RUnlock()
		return pages, bySlug, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return nil, nil, err
	}
	return c.pages, c.bySlug, nil
}

// All returns every prepared guide in registration order.
func (c *PageCache) All() ([]Prepared, error) {
	pages, _, err := c.ensureLoaded()
	return pages, err
}

// Get returns the prepared guide for slug, or guide.ErrNotFound.
func (c *PageCache) Get(slug string) (Prepared, error) {
	if _, err := c.registry.Get(slug); err != nil {
		return Prepared{}, err
	}
	pages, bySlug, err := c.ensureLoaded()
	if err != nil {
		return Prepared{}, err
	}
	return pages[bySlug[slug]], nil
}
