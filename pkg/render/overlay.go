package render

import (
	"bytes"
	"fmt"
	"math"
)

// Overlay constants: a large translucent pi glyph with a two-tone
// Bauhaus tiling clipped inside it and a thin contour to keep the glyph
// legible over the grid.
const (
	overlayGlyph        = "π"
	overlayScale        = 0.76 // glyph size relative to min(W, H)
	overlayRaiseRows    = 3.5  // rows the glyph sits above the page center
	overlayFillAlpha    = 0.08
	overlayContourAlpha = 0.16
	tileMinSize         = 30.0
	tileScale           = 0.020
)

// Tile tones: dark quarter-circles and green-tinted triangles.
var (
	tileToneA = rgba{0.07, 0.07, 0.07, 0.14}
	tileToneB = rgba{0.12, 0.34, 0.17, 0.11}
)

type rgba struct{ r, g, b, a float64 }

func (c rgba) svg() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", int(c.r*255), int(c.g*255), int(c.b*255), c.a)
}

// overlayGeometry returns the glyph font size and baseline-centered
// anchor point.
func overlayGeometry(d Doc) (size, x, y float64) {
	size = math.Min(float64(d.WidthPx), float64(d.HeightPx)) * overlayScale
	rowH := float64(d.HeightPx) / float64(d.GridRows)
	x = float64(d.WidthPx) / 2
	y = float64(d.HeightPx)/2 - rowH*overlayRaiseRows
	return size, x, y
}

// writeOverlay emits the pi glyph overlay: translucent fill, clipped
// tiling, contour.
func writeOverlay(buf *bytes.Buffer, d Doc) {
	size, x, y := overlayGeometry(d)

	glyphAttrs := fmt.Sprintf(
		`x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-family="%s" font-weight="bold" font-size="%.1f"`,
		x, y, d.Font.Family, size)

	// Translucent fill keeps the grid visible underneath.
	fmt.Fprintf(buf, `  <text %s fill="%s" fill-opacity="%.2f">%s</text>`+"\n",
		glyphAttrs, d.Palette.Black.Hex(), overlayFillAlpha, overlayGlyph)

	// Two-tone tiling clipped to the glyph outline.
	fmt.Fprintf(buf, `  <clipPath id="pi-glyph"><text %s>%s</text></clipPath>`+"\n", glyphAttrs, overlayGlyph)
	buf.WriteString(`  <g clip-path="url(#pi-glyph)">` + "\n")
	writeTiling(buf, d)
	buf.WriteString("  </g>\n")

	// Thin contour.
	strokeW := math.Max(1.8, math.Min(float64(d.WidthPx), float64(d.HeightPx))*0.0016)
	fmt.Fprintf(buf, `  <text %s fill="none" stroke="%s" stroke-opacity="%.2f" stroke-width="%.2f">%s</text>`+"\n",
		glyphAttrs, d.Palette.Black.Hex(), overlayContourAlpha, strokeW, overlayGlyph)
}

// writeTiling emits the checkerboard of quarter-circles and triangles
// that fills the clipped glyph.
func writeTiling(buf *bytes.Buffer, d Doc) {
	tile := math.Max(tileMinSize, math.Min(float64(d.WidthPx), float64(d.HeightPx))*tileScale)
	cols := int(math.Ceil(float64(d.WidthPx)/tile)) + 1
	rows := int(math.Ceil(float64(d.HeightPx)/tile)) + 1

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x0 := float64(c) * tile
			y0 := float64(r) * tile
			if (r+c)%2 == 0 {
				writeQuarterCircle(buf, x0, y0, tile, (r*3+c)%4)
			} else {
				writeTriangle(buf, x0, y0, tile, (r+c*2)%4)
			}
		}
	}
}

// writeQuarterCircle draws a quarter disc anchored at one tile corner.
// The orientation selects the corner, walking clockwise from top-left.
func writeQuarterCircle(buf *bytes.Buffer, x0, y0, t float64, orient int) {
	var cx, cy, sx, sy, ex, ey float64
	switch orient {
	case 0: // center top-left, sweep right edge to bottom edge
		cx, cy, sx, sy, ex, ey = x0, y0, x0+t, y0, x0, y0+t
	case 1: // center top-right
		cx, cy, sx, sy, ex, ey = x0+t, y0, x0+t, y0+t, x0, y0
	case 2: // center bottom-right
		cx, cy, sx, sy, ex, ey = x0+t, y0+t, x0, y0+t, x0+t, y0
	default: // center bottom-left
		cx, cy, sx, sy, ex, ey = x0, y0+t, x0, y0, x0+t, y0+t
	}
	fmt.Fprintf(buf, `    <path d="M %.1f %.1f L %.1f %.1f A %.1f %.1f 0 0 1 %.1f %.1f Z" fill="%s"/>`+"\n",
		cx, cy, sx, sy, t, t, ex, ey, tileToneA.svg())
}

// writeTriangle draws a right triangle filling half the tile, rotated by
// the orientation.
func writeTriangle(buf *bytes.Buffer, x0, y0, t float64, orient int) {
	var pts [3][2]float64
	switch orient {
	case 0:
		pts = [3][2]float64{{x0, y0}, {x0 + t, y0}, {x0, y0 + t}}
	case 1:
		pts = [3][2]float64{{x0 + t, y0}, {x0 + t, y0 + t}, {x0, y0}}
	case 2:
		pts = [3][2]float64{{x0 + t, y0 + t}, {x0, y0 + t}, {x0 + t, y0}}
	default:
		pts = [3][2]float64{{x0, y0 + t}, {x0, y0}, {x0 + t, y0 + t}}
	}
	fmt.Fprintf(buf, `    <polygon points="%.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="%s"/>`+"\n",
		pts[0][0], pts[0][1], pts[1][0], pts[1][1], pts[2][0], pts[2][1], tileToneB.svg())
}
