package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/piposter/piposter/pkg/cache"
	"github.com/piposter/piposter/pkg/errors"
	"github.com/piposter/piposter/pkg/fonts"
	"github.com/piposter/piposter/pkg/observability"
	"github.com/piposter/piposter/pkg/pi"
	"github.com/piposter/piposter/pkg/poster/grid"
	"github.com/piposter/piposter/pkg/render"
)

// Runner encapsulates pipeline execution with digit caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store run results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
	}
}

// Execute runs the complete layout → digits → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}

	page := opts.Config.Page
	hooks := observability.Poster()

	// Stage 1: Layout. The grid decides how many digits we need.
	layoutStart := time.Now()
	hooks.OnLayoutStart(ctx, page.WidthPx(), page.HeightPx())
	cells, err := grid.Build(page.MarginXPx(), page.MarginYPx(),
		page.InnerWidthPx(), page.InnerHeightPx(), opts.Config.Grid.Params())
	hooks.OnLayoutComplete(ctx, len(cells), time.Since(layoutStart), err)
	if err != nil {
		return nil, err
	}
	result.Stats.CellCount = len(cells)
	result.Stats.LayoutTime = time.Since(layoutStart)

	r.Logger.Info("built grid",
		"cells", len(cells),
		"page_px", page.WidthPx(),
		"duration", result.Stats.LayoutTime)

	// Stage 2: Digits.
	digitsStart := time.Now()
	hooks.OnDigitsStart(ctx, len(cells))
	digits, hit, err := r.DigitsWithCacheInfo(ctx, len(cells), opts.Refresh)
	hooks.OnDigitsComplete(ctx, len(cells), hit, time.Since(digitsStart), err)
	if err != nil {
		return nil, err
	}
	result.Stats.DigitCount = len(digits)
	result.Stats.DigitsTime = time.Since(digitsStart)
	result.CacheInfo.DigitsHit = hit

	r.Logger.Info("resolved digits",
		"count", len(digits),
		"cached", hit,
		"duration", result.Stats.DigitsTime)

	result.Cells, err = grid.BindDigits(cells, digits)
	if err != nil {
		return nil, err
	}

	// Stage 3: Render.
	renderStart := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)
	artifacts, err := r.renderAll(result.Cells, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// DigitsWithCacheInfo returns n digits of pi and whether they came from
// the cache. Cached runs longer than n are truncated, so one long run
// serves every smaller poster.
func (r *Runner) DigitsWithCacheInfo(ctx context.Context, n int, refresh bool) ([]byte, bool, error) {
	if n <= 0 {
		return nil, false, errors.New(errors.ErrCodeInvalidInput, "digit count must be positive, got %d", n)
	}
	key := cache.DigitKey(DigitAlgorithm, n)
	hooks := observability.Cache()

	if !refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit && len(data) >= n {
			hooks.OnCacheHit(ctx, key)
			return data[:n], true, nil
		}
		hooks.OnCacheMiss(ctx, key)
	}

	digits, err := pi.Digits(n)
	if err != nil {
		return nil, false, err
	}

	if err := r.Cache.Set(ctx, key, digits); err == nil {
		hooks.OnCacheSet(ctx, key, len(digits))
	}

	return digits, false, nil
}

// Digits is a convenience wrapper that discards the cache hit info.
func (r *Runner) Digits(ctx context.Context, n int) ([]byte, error) {
	digits, _, err := r.DigitsWithCacheInfo(ctx, n, false)
	return digits, err
}

// renderAll renders every requested format from the bound cells.
func (r *Runner) renderAll(cells []grid.Cell, opts Options) (map[string][]byte, error) {
	doc, err := buildDoc(opts, cells)
	if err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			artifacts[format] = render.RenderSVG(doc)
		case FormatPNG:
			data, err := render.RenderPNG(doc)
			if err != nil {
				return nil, err
			}
			artifacts[format] = data
		case FormatPDF:
			data, err := render.RenderPDF(doc)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "pdf conversion")
			}
			artifacts[format] = data
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
		}
	}
	return artifacts, nil
}

// buildDoc assembles the render document from options and bound cells.
func buildDoc(opts Options, cells []grid.Cell) (render.Doc, error) {
	pal, err := opts.Config.Palette.Resolve()
	if err != nil {
		return render.Doc{}, err
	}
	preset, err := fonts.Get(opts.Config.Labels.Font)
	if err != nil {
		return render.Doc{}, err
	}

	// The raster backend needs a TTF on disk; missing fonts degrade to a
	// label-free poster instead of failing the run.
	fontPath, _ := preset.Resolve()

	page := opts.Config.Page
	return render.Doc{
		WidthPx:    page.WidthPx(),
		HeightPx:   page.HeightPx(),
		GridRows:   opts.Config.Grid.Rows,
		Palette:    pal,
		Cells:      cells,
		DrawLabels: opts.Config.Labels.Draw,
		Font:       preset,
		FontPath:   fontPath,
		Overlay:    opts.Overlay,
		FadePx:     page.FadePx(),
	}, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
