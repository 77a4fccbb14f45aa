package observability

import (
	"context"
	"testing"
	"time"
)

type recordingPosterHooks struct {
	NoopPosterHooks
	digitsStarted  int
	digitsComplete int
	cached         bool
}

func (h *recordingPosterHooks) OnDigitsStart(ctx context.Context, n int) {
	h.digitsStarted++
}

func (h *recordingPosterHooks) OnDigitsComplete(ctx context.Context, n int, cached bool, d time.Duration, err error) {
	h.digitsComplete++
	h.cached = cached
}

func TestSetPosterHooks(t *testing.T) {
	t.Cleanup(func() { SetPosterHooks(nil) })

	rec := &recordingPosterHooks{}
	SetPosterHooks(rec)

	ctx := context.Background()
	Poster().OnDigitsStart(ctx, 100)
	Poster().OnDigitsComplete(ctx, 100, true, time.Millisecond, nil)

	if rec.digitsStarted != 1 || rec.digitsComplete != 1 {
		t.Errorf("hooks not invoked: started=%d complete=%d", rec.digitsStarted, rec.digitsComplete)
	}
	if !rec.cached {
		t.Error("cached flag not propagated")
	}
}

func TestNilResetsToNoop(t *testing.T) {
	SetPosterHooks(nil)
	if _, ok := Poster().(NoopPosterHooks); !ok {
		t.Errorf("Poster() after SetPosterHooks(nil) = %T, want NoopPosterHooks", Poster())
	}

	SetCacheHooks(nil)
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Errorf("Cache() after SetCacheHooks(nil) = %T, want NoopCacheHooks", Cache())
	}
}

func TestNoopHooksAreSafe(t *testing.T) {
	ctx := context.Background()
	var p NoopPosterHooks
	p.OnDigitsStart(ctx, 1)
	p.OnDigitsComplete(ctx, 1, false, 0, nil)
	p.OnLayoutStart(ctx, 100, 100)
	p.OnLayoutComplete(ctx, 42, 0, nil)
	p.OnRenderStart(ctx, []string{"svg"})
	p.OnRenderComplete(ctx, []string{"svg"}, 0, nil)

	var c NoopCacheHooks
	c.OnCacheHit(ctx, "k")
	c.OnCacheMiss(ctx, "k")
	c.OnCacheSet(ctx, "k", 10)
}
