package highlight

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/eringen/docguide/guide"
)

// Cache stores highlighted markup by key.
type Cache interface {
	Get(key string) (markup string, ok bool, err error)
	Put(key, lang, markup string) error
}

// CacheKeyer is implemented by highlighters whose output is fully
// determined by their configuration. CacheKey must change whenever the
// markup for a given sample could change.
type CacheKeyer interface {
	CacheKey() string
}

// Key returns the cache key for a sample highlighted under namespace:
// SHA-256 over namespace, lang and code, NUL separated.
func Key(namespace, code, lang string) string {
	h := sha256.New()
	h.Write([]byte(namespace))
	h.Write([]byte{0})
	h.Write([]byte(lang))
	h.Write([]byte{0})
	h.Write([]byte(code))
	return hex.EncodeToString(h.Sum(nil))
}

type cached struct {
	inner     guide.Highlighter
	cache     Cache
	namespace string
}

// Cached wraps inner so results are served from, and saved to, cache under
// inner's CacheKey. Highlighters without a CacheKey are returned unwrapped,
// since their output cannot be told apart in a shared cache. Failed
// highlights are never cached.
func Cached(inner guide.Highlighter, cache Cache) guide.Highlighter {
	k, ok := inner.(CacheKeyer)
	if !ok {
		return inner
	}
	return &cached{inner: inner, cache: cache, namespace: k.CacheKey()}
}

// Cacheable reports whether Cached would persist h's output.
func Cacheable(h guide.Highlighter) bool {
	_, ok := h.(CacheKeyer)
	return ok
}

func (c *cached) Highlight(code, lang string) (string, error) {
	key := Key(c.namespace, code, lang)
	if markup, ok, err := c.cache.Get(key); err != nil {
		return "", err
	} else if ok {
		return markup, nil
	}
	markup, err := c.inner.Highlight(code, lang)
	if err != nil {
		return "", err
	}
	if err := c.cache.Put(key, lang, markup); err != nil {
		return "", err
	}
	return markup, nil
}

func (c *cached) CacheKey() string { return c.namespace }

type keyed struct {
	guide.Highlighter
	key string
}

// Keyed gives h a cache key so Cached will persist its output. The caller
// owns the key and must change it whenever h's output changes.
func Keyed(h guide.Highlighter, key string) guide.Highlighter {
	return keyed{Highlighter: h, key: key}
}

func (k keyed) CacheKey() string { return k.key }
