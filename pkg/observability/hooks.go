// Package observability provides hooks for instrumenting poster generation.
//
// The package uses a simple hooks pattern: interfaces for event
// categories, no-op defaults, and registration at startup. Libraries emit
// events without depending on any observability backend; main can plug in
// OpenTelemetry, Prometheus, or plain logging as needed.
//
//	func main() {
//	    observability.SetPosterHooks(&myHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Poster().OnDigitsStart(ctx, n)
//	// ... compute ...
//	observability.Poster().OnDigitsComplete(ctx, n, cached, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// PosterHooks receives events from the generation pipeline.
type PosterHooks interface {
	// Digit generation events. cached reports whether the run was served
	// from the digit cache.
	OnDigitsStart(ctx context.Context, n int)
	OnDigitsComplete(ctx context.Context, n int, cached bool, duration time.Duration, err error)

	// Layout events.
	OnLayoutStart(ctx context.Context, widthPx, heightPx int)
	OnLayoutComplete(ctx context.Context, cellCount int, duration time.Duration, err error)

	// Render events.
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks receives events from digit cache operations.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, key string)
	OnCacheMiss(ctx context.Context, key string)
	OnCacheSet(ctx context.Context, key string, size int)
}

// NoopPosterHooks is a no-op implementation of PosterHooks.
type NoopPosterHooks struct{}

func (NoopPosterHooks) OnDigitsStart(context.Context, int)                                {}
func (NoopPosterHooks) OnDigitsComplete(context.Context, int, bool, time.Duration, error) {}
func (NoopPosterHooks) OnLayoutStart(context.Context, int, int)                           {}
func (NoopPosterHooks) OnLayoutComplete(context.Context, int, time.Duration, error)       {}
func (NoopPosterHooks) OnRenderStart(context.Context, []string)                           {}
func (NoopPosterHooks) OnRenderComplete(context.Context, []string, time.Duration, error)  {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	mu          sync.RWMutex
	posterHooks PosterHooks = NoopPosterHooks{}
	cacheHooks  CacheHooks  = NoopCacheHooks{}
)

// SetPosterHooks registers pipeline hooks. Call at startup, before
// generation begins.
func SetPosterHooks(h PosterHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = NoopPosterHooks{}
	}
	posterHooks = h
}

// SetCacheHooks registers cache hooks.
func SetCacheHooks(h CacheHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = NoopCacheHooks{}
	}
	cacheHooks = h
}

// Poster returns the registered pipeline hooks.
func Poster() PosterHooks {
	mu.RLock()
	defer mu.RUnlock()
	return posterHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	mu.RLock()
	defer mu.RUnlock()
	return cacheHooks
}
