// Package pipeline provides the core poster generation pipeline.
//
// This package implements the complete layout → digits → render pipeline
// that can be used by CLI and server components. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid
// code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Layout: Build the cell grid from the page geometry. The grid
//     determines how many digits the poster needs.
//  2. Digits: Compute (or load from cache) exactly that many decimal
//     digits of pi and bind them to the cells.
//  3. Render: Generate output in various formats (SVG, PNG, PDF).
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    Config:  config.Default(),
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/piposter/piposter/pkg/config"
	"github.com/piposter/piposter/pkg/errors"
	"github.com/piposter/piposter/pkg/poster/grid"
)

// DigitAlgorithm names the digit source used in cache keys, so a future
// algorithm change never serves stale runs.
const DigitAlgorithm = "machin"

// Format constants for output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
	FormatPDF: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options contains all configuration for a poster run.
type Options struct {
	// Config determines page geometry, grid, palette, and labels. A zero
	// value is replaced with config.Default().
	Config config.Config

	// Formats lists the output formats to render. Defaults to ["svg"].
	Formats []string

	// Overlay draws the large translucent pi glyph over the grid.
	Overlay bool

	// Refresh bypasses the digit cache and recomputes.
	Refresh bool

	// Logger receives per-stage progress. Defaults to a discard logger.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Config.Page.DPI == 0 && o.Config.Grid.Cols == 0 {
		o.Config = config.Default()
	}
	if err := o.Config.Validate(); err != nil {
		return err
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this run in logs and server responses.
	RunID string

	// Cells is the laid-out grid with digits bound, in reading order.
	Cells []grid.Cell

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	CellCount  int
	DigitCount int
	LayoutTime time.Duration
	DigitsTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	DigitsHit bool // Whether the digit run came from cache
}
