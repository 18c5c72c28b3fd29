package docguide

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/docguide/guide"
)

type countingHighlighter struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (h *countingHighlighter) Highlight(code, lang string) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls++
	if h.err != nil {
		return "", h.err
	}
	return strings.ToUpper(code), nil
}

func (h *countingHighlighter) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.calls
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry(guide.Phoenix())
	require.NoError(t, err)
	return r
}

func TestPageCacheGet(t *testing.T) {
	h := &countingHighlighter{}
	c := NewPageCache(newTestRegistry(t), h, time.Minute)

	p, err := c.Get("phoenix")
	require.NoError(t, err)
	assert.Equal(t, "phoenix", p.Guide.Slug)
	require.Len(t, p.Code, 11)
	assert.Equal(t, "mix phx.server", p.Code[9].Text)
	assert.Equal(t, 8, h.count())

	_, err = c.Get("phoenix")
	require.NoError(t, err)
	assert.Equal(t, 8, h.count(), "second read should hit the cache")
}

func TestPageCacheUnknownSlug(t *testing.T) {
	h := &countingHighlighter{}
	c := NewPageCache(newTestRegistry(t), h, time.Minute)

	_, err := c.Get("rails")
	assert.ErrorIs(t, err, guide.ErrNotFound)
	assert.Zero(t, h.count(), "unknown slugs should not trigger preparation")
}

func TestPageCacheInvalidate(t *testing.T) {
	h := &countingHighlighter{}
	c := NewPageCache(newTestRegistry(t), h, time.Minute)

	_, err := c.All()
	require.NoError(t, err)
	c.Invalidate()
	_, err = c.All()
	require.NoError(t, err)
	assert.Equal(t, 16, h.count())
}

func TestPageCacheExpires(t *testing.T) {
	h := &countingHighlighter{}
	c := NewPageCache(newTestRegistry(t), h, 20*time.Millisecond)

	_, err := c.All()
	require.NoError(t, err)
	time.Sleep(40 * time.Millisecond)
	_, err = c.All()
	require.NoError(t, err)
	assert.Equal(t, 16, h.count())
}

func TestPageCachePropagatesHighlightErrors(t *testing.T) {
	boom := errors.New("malformed")
	c := NewPageCache(newTestRegistry(t), &countingHighlighter{err: boom}, time.Minute)

	_, err := c.Get("phoenix")
	assert.ErrorIs(t, err, boom)
}

func TestPageCacheConcurrentReads(t *testing.T) {
	h := &countingHighlighter{}
	c := NewPageCache(newTestRegistry(t), h, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Get("phoenix")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, 8, h.count(), "guides should be prepared exactly once")
}

func TestPreparedCodeStrings(t *testing.T) {
	p := Prepared{Code: []guide.Snippet{{Text: "raw"}, {Text: "<b>x</b>", Highlighted: true}}}
	assert.Equal(t, []string{"raw", "<b>x</b>"}, p.CodeStrings())
}
