// Package assets loads and caches the drawables a front-end hands to the
// game. Loading happens once, concurrently, before the game loop starts;
// afterwards Get is a read-only map lookup.
package assets

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// ErrAlreadyLoaded is returned when Load is called on a cache that already
// finished loading.
var ErrAlreadyLoaded = errors.New("assets: already loaded")

// Decoder produces the drawable for one identifier. Decoders run
// concurrently and must be safe for parallel use.
type Decoder func(ctx context.Context, id string) (core.Drawable, error)

// Cache holds decoded drawables by identifier.
type Cache struct {
	decode Decoder

	mu      sync.RWMutex
	items   map[string]core.Drawable
	loaded  bool
	pending []func()

	ready chan struct{}
}

// NewCache creates an empty cache that decodes with decode.
func NewCache(decode Decoder) *Cache {
	return &Cache{
		decode: decode,
		items:  make(map[string]core.Drawable),
		ready:  make(chan struct{}),
	}
}

// Load decodes every identifier concurrently. On success the cache becomes
// ready and all OnReady callbacks run exactly once, in registration order.
// On failure nothing is stored, the cache stays not ready and no callback
// runs; the first decode error is returned.
func (c *Cache) Load(ctx context.Context, ids ...string) error {
	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()
	if loaded {
		return ErrAlreadyLoaded
	}

	decoded := make([]core.Drawable, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			img, err := c.decode(gctx, id)
			if err != nil {
				return fmt.Errorf("assets: load %q: %w", id, err)
			}
			if img == nil {
				return fmt.Errorf("assets: load %q: decoder returned no image", id)
			}
			decoded[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	c.mu.Lock()
	if c.loaded {
		c.mu.Unlock()
		return ErrAlreadyLoaded
	}
	for i, id := range ids {
		c.items[id] = decoded[i]
	}
	c.loaded = true
	callbacks := c.pending
	c.pending = nil
	close(c.ready)
	c.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
	return nil
}

// OnReady registers fn to run once loading succeeds. If the cache is
// already ready, fn runs immediately on the caller's goroutine.
func (c *Cache) OnReady(fn func()) {
	c.mu.Lock()
	if !c.loaded {
		c.pending = append(c.pending, fn)
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()
	fn()
}

// Ready returns a channel closed once loading succeeds.
func (c *Cache) Ready() <-chan struct{} {
	return c.ready
}

// Get returns the drawable for id, or nil if it was never loaded.
func (c *Cache) Get(id string) core.Drawable {
	c.mu.RLock()
	defer c.mu.RUnlock()

	img, ok := c.items[id]
	if !ok {
		return nil
	}
	return img
}

// Len returns how many drawables are cached.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
