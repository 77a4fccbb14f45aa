// Package fonts provides the digit-label font presets.
//
// A preset names a CSS font-family stack for the SVG backend and a list of
// candidate TTF file names for the raster backend. Candidates are resolved
// against the installed system fonts with go-findfont, so the binary ships
// no font data and the SVG output never depends on a font being present.
package fonts

import (
	"os"
	"sort"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/piposter/piposter/pkg/errors"
)

// Preset is one selectable label font.
type Preset struct {
	Name string
	// Family is the font-family attribute emitted into SVG output.
	Family string
	// Candidates are TTF file names tried in order against the system
	// font directories.
	Candidates []string
}

// presets is process-wide read-only configuration.
var presets = map[string]Preset{
	"inter": {
		Name:   "inter",
		Family: "Inter, Arial, DejaVu Sans, sans-serif",
		Candidates: []string{
			"Inter-Bold.ttf",
			"Inter.ttf",
			"Arial Bold.ttf",
			"Arial.ttf",
			"DejaVuSans-Bold.ttf",
			"DejaVuSans.ttf",
		},
	},
	"jetbrains-mono": {
		Name:   "jetbrains-mono",
		Family: "JetBrains Mono, Fira Code, DejaVu Sans Mono, monospace",
		Candidates: []string{
			"JetBrainsMono-Bold.ttf",
			"JetBrainsMono-Regular.ttf",
			"FiraCode-Bold.ttf",
			"FiraCode-Regular.ttf",
			"DejaVuSansMono-Bold.ttf",
			"DejaVuSansMono.ttf",
		},
	},
	"sans": {
		Name:   "sans",
		Family: "DejaVu Sans, Arial, sans-serif",
		Candidates: []string{
			"DejaVuSans-Bold.ttf",
			"DejaVuSans.ttf",
			"Arial.ttf",
		},
	},
}

// Default is the preset used when none is selected.
const Default = "inter"

// Names returns the preset names in sorted order.
func Names() []string {
	out := make([]string, 0, len(presets))
	for name := range presets {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// IsPreset reports whether name is a known preset.
func IsPreset(name string) bool {
	_, ok := presets[name]
	return ok
}

// Get returns a preset by name.
func Get(name string) (Preset, error) {
	p, ok := presets[name]
	if !ok {
		return Preset{}, errors.New(errors.ErrCodeInvalidFont, "unknown font preset %q (known: %v)", name, Names())
	}
	return p, nil
}

// Resolve finds an installed TTF file for the preset, trying each
// candidate in order.
func (p Preset) Resolve() (string, error) {
	for _, candidate := range p.Candidates {
		if path, err := findfont.Find(candidate); err == nil {
			return path, nil
		}
	}
	return "", errors.New(errors.ErrCodeFontNotFound,
		"no installed font for preset %q (tried %v)", p.Name, p.Candidates)
}

// faceCache memoizes parsed fonts by path; parsing a TTF per label row
// would dominate raster rendering time.
var faceCache sync.Map // path -> *truetype.Font

// LoadFont parses the TTF file at path, caching the parsed font.
func LoadFont(path string) (*truetype.Font, error) {
	if f, ok := faceCache.Load(path); ok {
		return f.(*truetype.Font), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFontNotFound, err, "read font %s", path)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFont, err, "parse font %s", path)
	}
	faceCache.Store(path, f)
	return f, nil
}

// NewFace builds a font.Face at the given point size.
func NewFace(f *truetype.Font, points float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: points, DPI: 72})
}
