// Package config defines the poster configuration and its TOML file form.
//
// A Config fully determines a generation run: page geometry, grid
// parameters, palette, and label settings. Defaults reproduce the
// reference 329x483 mm poster at 300 DPI. Config files are TOML:
//
//	[page]
//	width_mm = 329.0
//	height_mm = 483.0
//	dpi = 300
//
//	[grid]
//	cols = 30
//	rows = 50
//
//	[palette]
//	red = "#d02020"
//
//	[labels]
//	draw = true
//	font = "inter"
package config

import (
	"math"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/piposter/piposter/pkg/errors"
	"github.com/piposter/piposter/pkg/poster/grid"
)

const mmPerInch = 25.4

// Page describes the physical output page.
type Page struct {
	WidthMM      float64 `toml:"width_mm"`
	HeightMM     float64 `toml:"height_mm"`
	DPI          int     `toml:"dpi"`
	MarginRatio  float64 `toml:"margin_ratio"`
	BottomFadeCM float64 `toml:"bottom_fade_cm"`
}

// WidthPx returns the page width in device pixels.
func (p Page) WidthPx() int {
	return int(math.Round(p.WidthMM / mmPerInch * float64(p.DPI)))
}

// HeightPx returns the page height in device pixels.
func (p Page) HeightPx() int {
	return int(math.Round(p.HeightMM / mmPerInch * float64(p.DPI)))
}

// FadePx returns the height of the bottom fade strip in device pixels.
func (p Page) FadePx() float64 {
	return p.BottomFadeCM * 10.0 / mmPerInch * float64(p.DPI)
}

// MarginXPx returns the horizontal margin in device pixels.
func (p Page) MarginXPx() float64 {
	return float64(p.WidthPx()) * p.MarginRatio
}

// MarginYPx returns the vertical margin in device pixels.
func (p Page) MarginYPx() float64 {
	return float64(p.HeightPx()) * p.MarginRatio
}

// InnerWidthPx returns the drawable width between the margins.
func (p Page) InnerWidthPx() float64 {
	return float64(p.WidthPx()) - 2*p.MarginXPx()
}

// InnerHeightPx returns the drawable height between the margins.
func (p Page) InnerHeightPx() float64 {
	return float64(p.HeightPx()) - 2*p.MarginYPx()
}

// Grid mirrors grid.Params in TOML form.
type Grid struct {
	Cols                   int     `toml:"cols"`
	Rows                   int     `toml:"rows"`
	PerspectiveRows        int     `toml:"perspective_rows"`
	PerspectiveStartOffset int     `toml:"perspective_start_offset"`
	Scale                  float64 `toml:"perspective_scale"`
	MinRowHeight           float64 `toml:"min_row_height"`
}

// Params converts the TOML grid section to grid.Params.
func (g Grid) Params() grid.Params {
	return grid.Params{
		Cols:                   g.Cols,
		Rows:                   g.Rows,
		PerspectiveRows:        g.PerspectiveRows,
		PerspectiveStartOffset: g.PerspectiveStartOffset,
		Scale:                  g.Scale,
		MinRowHeight:           g.MinRowHeight,
	}
}

// Labels controls the optional per-cell digit labels.
type Labels struct {
	Draw bool   `toml:"draw"`
	Font string `toml:"font"` // font preset name, see pkg/fonts
}

// Config is the complete poster configuration.
type Config struct {
	Page    Page       `toml:"page"`
	Grid    Grid       `toml:"grid"`
	Palette PaletteHex `toml:"palette"`
	Labels  Labels     `toml:"labels"`
}

// Default returns the reference poster configuration.
func Default() Config {
	return Config{
		Page: Page{
			WidthMM:      329,
			HeightMM:     483,
			DPI:          300,
			MarginRatio:  0,
			BottomFadeCM: 2.0,
		},
		Grid: Grid{
			Cols:                   30,
			Rows:                   50,
			PerspectiveRows:        8,
			PerspectiveStartOffset: 2,
			Scale:                  0.90,
			MinRowHeight:           0.8,
		},
		Palette: DefaultPaletteHex(),
		Labels: Labels{
			Draw: true,
			Font: "inter",
		},
	}
}

// Load reads a TOML config file on top of the defaults, so partial files
// only override the sections they name.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the generator cannot work
// with. Grid degeneracy beyond these basic checks is reported by the grid
// builder itself.
func (c Config) Validate() error {
	if c.Page.WidthMM <= 0 || c.Page.HeightMM <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "page dimensions must be positive (%.1f x %.1f mm)",
			c.Page.WidthMM, c.Page.HeightMM)
	}
	if c.Page.DPI <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "dpi must be positive, got %d", c.Page.DPI)
	}
	if c.Page.MarginRatio < 0 || c.Page.MarginRatio >= 0.5 {
		return errors.New(errors.ErrCodeInvalidConfig, "margin ratio %.2f outside [0, 0.5)", c.Page.MarginRatio)
	}
	if c.Grid.Scale <= 0 || c.Grid.Scale >= 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "perspective scale %.2f outside (0, 1)", c.Grid.Scale)
	}
	if c.Page.BottomFadeCM < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "bottom fade must not be negative")
	}
	if _, err := c.Palette.Resolve(); err != nil {
		return err
	}
	return nil
}
