package render

import (
	"math"

	"github.com/piposter/piposter/pkg/config"
	"github.com/piposter/piposter/pkg/fonts"
	"github.com/piposter/piposter/pkg/poster/grid"
)

// Doc is the full input to a render backend.
type Doc struct {
	WidthPx  int
	HeightPx int
	GridRows int // nominal row count; anchors the pi overlay vertically

	Palette config.Palette
	Cells   []grid.Cell

	DrawLabels bool
	Font       fonts.Preset
	FontPath   string // resolved TTF for the raster backend; may be empty

	Overlay bool    // draw the translucent pi glyph overlay
	FadePx  float64 // height of the bottom fade strip; 0 disables
}

// Shape painting factors relative to the encoded size.
const (
	discRadiusFactor  = 0.95
	squareSideFactor  = 0.95
	wedgeRadiusFactor = 1.05
	pieRadiusFactor   = 0.98

	// Label font sizes as a fraction of the cell base.
	labelSizeFactor        = 0.25
	feynmanLabelSizeFactor = 0.34

	// Bottom fade peaks at this alpha.
	fadeMaxAlpha = 0.42
)

// wedgePoints returns the three vertices of the triangle for a wedge
// shape: apex a quarter-turn behind the orientation angle, the other two
// at +30 and +150 degrees from it.
func wedgePoints(cx, cy, r float64, orientation int) [3][2]float64 {
	o := float64(orientation) * math.Pi / 2
	angles := [3]float64{o - math.Pi/2, o + math.Pi/6, o + 5*math.Pi/6}
	var pts [3][2]float64
	for i, a := range angles {
		pts[i] = [2]float64{cx + r*math.Cos(a), cy + r*math.Sin(a)}
	}
	return pts
}

// pieAngles returns the start and end angle (radians) of the quarter-arc
// pie for an orientation.
func pieAngles(orientation int) (float64, float64) {
	start := float64(orientation) * math.Pi / 2
	return start, start + math.Pi/2
}

// arcPoint returns the point at angle a (radians, y-down) on a circle.
func arcPoint(cx, cy, r, a float64) (float64, float64) {
	return cx + r*math.Cos(a), cy + r*math.Sin(a)
}

// labelSize returns the label font size in pixels for a cell.
func labelSize(base float64, feynman bool) float64 {
	if feynman {
		return base * feynmanLabelSizeFactor
	}
	return base * labelSizeFactor
}

// contourWidth returns the stroke width of the Feynman label outline.
func contourWidth(fontSize float64) float64 {
	return math.Max(0.8, fontSize*0.12)
}
