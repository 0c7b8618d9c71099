// Package texcache keeps decoded textures in memory between scene
// rebuilds.
//
// Entries are keyed by file name, modification time and size, so an edited
// texture is decoded again while unchanged ones are reused. The cache uses
// a soft limit: once it holds more entries than the limit, the least
// recently used quarter is evicted.
//
//	c := texcache.New(64)
//	tex, err := c.Load(os.DirFS(dir), "brick.png")
//
// Cache is safe for concurrent use and must not be copied.
package texcache

import (
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/gogpu/g2d"
	"github.com/gogpu/g2d/internal/imageio"
)

type key struct {
	name    string
	modTime time.Time
	size    int64
}

type entry struct {
	tex   *g2d.ImageTexture
	atime int64
}

// Cache is an LRU cache of decoded textures.
type Cache struct {
	mu        sync.Mutex
	entries   map[key]*entry
	softLimit int
	tick      int64

	hits, misses uint64
}

// Stats reports cache usage.
type Stats struct {
	Len      int
	Capacity int
	Hits     uint64
	Misses   uint64
}

// New returns a cache holding about softLimit textures. Zero means
// unlimited.
func New(softLimit int) *Cache {
	return &Cache{
		entries:   make(map[key]*entry),
		softLimit: max(softLimit, 0),
	}
}

// Load returns the texture stored at name in fsys, decoding it only when
// the file is new or changed since it was cached.
func (c *Cache) Load(fsys fs.FS, name string) (*g2d.ImageTexture, error) {
	info, err := fs.Stat(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("texcache: stat: %w", err)
	}
	k := key{name: name, modTime: info.ModTime(), size: info.Size()}

	c.mu.Lock()
	if e, ok := c.entries[k]; ok {
		c.tick++
		e.atime = c.tick
		c.hits++
		c.mu.Unlock()
		return e.tex, nil
	}
	c.misses++
	c.mu.Unlock()

	// Decode outside the lock; a concurrent miss on the same key decodes
	// twice and the last one wins.
	tex, err := imageio.LoadFS(fsys, name)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.dropStale(k)
	c.tick++
	c.entries[k] = &entry{tex: tex, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
	g2d.Logger().Debug("texcache: decoded", slog.String("name", name), slog.Int("entries", len(c.entries)))
	return tex, nil
}

// Len returns the number of cached textures.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns the current usage counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Len:      len(c.entries),
		Capacity: c.softLimit,
		Hits:     c.hits,
		Misses:   c.misses,
	}
}

// Clear drops every entry and resets the counters.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[key]*entry)
	c.tick = 0
	c.hits, c.misses = 0, 0
}

// dropStale removes older versions of the file behind k.
// Caller must hold c.mu.
func (c *Cache) dropStale(k key) {
	for old := range c.entries {
		if old.name == k.name && old != k {
			delete(c.entries, old)
		}
	}
}

// evictOldest shrinks the cache to three quarters of the soft limit.
// Caller must hold c.mu.
func (c *Cache) evictOldest() {
	target := max(c.softLimit*3/4, 1)
	n := len(c.entries) - target
	if n <= 0 {
		return
	}

	type aged struct {
		k     key
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{k, e.atime})
	}
	slices.SortFunc(all, func(a, b aged) int {
		switch {
		case a.atime < b.atime:
			return -1
		case a.atime > b.atime:
			return 1
		}
		return 0
	})
	for _, a := range all[:n] {
		delete(c.entries, a.k)
	}
}
