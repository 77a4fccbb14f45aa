package config

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/piposter/piposter/pkg/errors"
	"github.com/piposter/piposter/pkg/poster/encode"
)

// PaletteHex is the TOML form of the poster palette: hex color strings.
type PaletteHex struct {
	Red    string `toml:"red"`
	Blue   string `toml:"blue"`
	Yellow string `toml:"yellow"`
	Black  string `toml:"black"`
	Cream  string `toml:"cream"`
	Gold   string `toml:"gold"`
	White  string `toml:"white"`
}

// DefaultPaletteHex returns the Bauhaus palette of the reference poster.
func DefaultPaletteHex() PaletteHex {
	return PaletteHex{
		Red:    "#d02020",
		Blue:   "#1d5bb6",
		Yellow: "#f1b720",
		Black:  "#111111",
		Cream:  "#f0f0e0",
		Gold:   "#d4af37",
		White:  "#ffffff",
	}
}

// Palette holds the resolved colors, constructed once per run and read-only
// afterwards.
type Palette struct {
	Red    colorful.Color
	Blue   colorful.Color
	Yellow colorful.Color
	Black  colorful.Color
	Cream  colorful.Color
	Gold   colorful.Color
	White  colorful.Color
}

// Resolve parses the hex strings into colors.
func (p PaletteHex) Resolve() (Palette, error) {
	var out Palette
	fields := []struct {
		name string
		hex  string
		dst  *colorful.Color
	}{
		{"red", p.Red, &out.Red},
		{"blue", p.Blue, &out.Blue},
		{"yellow", p.Yellow, &out.Yellow},
		{"black", p.Black, &out.Black},
		{"cream", p.Cream, &out.Cream},
		{"gold", p.Gold, &out.Gold},
		{"white", p.White, &out.White},
	}
	for _, f := range fields {
		c, err := colorful.Hex(f.hex)
		if err != nil {
			return Palette{}, errors.Wrap(errors.ErrCodeInvalidPalette, err, "palette color %s = %q", f.name, f.hex)
		}
		*f.dst = c
	}
	return out, nil
}

// For resolves a color category to its palette color.
func (p Palette) For(c encode.Color) colorful.Color {
	switch c {
	case encode.ColorRed:
		return p.Red
	case encode.ColorBlue:
		return p.Blue
	case encode.ColorYellow:
		return p.Yellow
	case encode.ColorBlack:
		return p.Black
	case encode.ColorGold:
		return p.Gold
	}
	return p.Black
}
