package outline

import (
	"container/list"
	"sync"
)

// defaultCacheSize is the default maximum number of cached glyph outlines.
// Fonts rarely expose more than a few thousand distinct runes per session,
// and extracted outlines are small, so this errs on the generous side.
const defaultCacheSize = 1024

// glyphCache is a thread-safe LRU cache of extracted glyph outlines,
// keyed by rune. Extraction walks the font tables and rebuilds contour
// slices on every call; strings repeat runes constantly, so the cache
// keeps per-frame string assembly cheap.
type glyphCache struct {
	mu      sync.Mutex
	max     int
	order   *list.List // front is most recently used
	entries map[rune]*list.Element
}

// cacheEntry is the value stored in the LRU list.
type cacheEntry struct {
	r     rune
	glyph *Glyph
}

// newGlyphCache creates a cache holding at most max glyphs.
func newGlyphCache(max int) *glyphCache {
	return &glyphCache{
		max:     max,
		order:   list.New(),
		entries: make(map[rune]*list.Element),
	}
}

// get returns the cached glyph for r, marking it most recently used.
func (c *glyphCache) get(r rune) (*Glyph, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[r]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).glyph, true
}

// put inserts a glyph, evicting the least recently used entry when full.
func (c *glyphCache) put(r rune, g *Glyph) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[r]; ok {
		c.order.MoveToFront(el)
		el.Value.(*cacheEntry).glyph = g
		return
	}

	c.entries[r] = c.order.PushFront(&cacheEntry{r: r, glyph: g})

	if c.order.Len() > c.max {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).r)
		}
	}
}

// len returns the current number of cached glyphs.
func (c *glyphCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
