package render

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"

	"github.com/piposter/piposter/pkg/errors"
	"github.com/piposter/piposter/pkg/fonts"
	"github.com/piposter/piposter/pkg/poster/encode"
)

// RenderPNG rasterizes the document at its full page pixel size and
// returns PNG bytes.
//
// Text layers (digit labels, pi overlay) need d.FontPath to point at a
// TTF file; when it is empty those layers are skipped so the poster still
// renders on systems without the preset fonts.
func RenderPNG(d Doc) ([]byte, error) {
	dc := gg.NewContext(d.WidthPx, d.HeightPx)

	dc.SetColor(toRGBA(d.Palette.Cream))
	dc.Clear()

	var faces *faceSet
	if d.FontPath != "" && (d.DrawLabels || d.Overlay) {
		f, err := fonts.LoadFont(d.FontPath)
		if err != nil {
			return nil, err
		}
		faces = &faceSet{font: f, bySize: map[int]font.Face{}}
	}

	for _, c := range d.Cells {
		enc := encode.Encode(c.Digit, c.Index)
		fill := d.Palette.For(enc.Color)
		drawShape(dc, c.CX, c.CY, c.Base*enc.SizeFraction, enc, fill)
	}

	if d.DrawLabels && faces != nil {
		for _, c := range d.Cells {
			enc := encode.Encode(c.Digit, c.Index)
			drawLabel(dc, d, faces, c.CX, c.CY, c.Digit, c.Index, c.Base, enc)
		}
	}

	if d.Overlay && faces != nil {
		drawOverlayRaster(dc, d, faces)
	}

	if d.FadePx > 0 {
		drawFade(dc, d)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "encode png")
	}
	return buf.Bytes(), nil
}

// faceSet caches font faces by integer point size. Row heights repeat
// across the grid, so only a handful of sizes are ever built.
type faceSet struct {
	font   *truetype.Font
	bySize map[int]font.Face
}

func (fs *faceSet) at(points float64) font.Face {
	key := int(math.Round(points))
	if f, ok := fs.bySize[key]; ok {
		return f
	}
	f := fonts.NewFace(fs.font, float64(key))
	fs.bySize[key] = f
	return f
}

func drawShape(dc *gg.Context, cx, cy, size float64, enc encode.Encoding, fill colorful.Color) {
	dc.SetColor(toRGBA(fill))
	r := size / 2

	switch enc.Shape {
	case encode.ShapeDisc:
		dc.DrawCircle(cx, cy, r*discRadiusFactor)
		dc.Fill()

	case encode.ShapeSquare:
		side := size * squareSideFactor
		dc.DrawRectangle(cx-side/2, cy-side/2, side, side)
		dc.Fill()

	case encode.ShapeWedge:
		pts := wedgePoints(cx, cy, r*wedgeRadiusFactor, enc.Orientation)
		dc.MoveTo(pts[0][0], pts[0][1])
		dc.LineTo(pts[1][0], pts[1][1])
		dc.LineTo(pts[2][0], pts[2][1])
		dc.ClosePath()
		dc.Fill()

	case encode.ShapePie:
		start, end := pieAngles(enc.Orientation)
		dc.MoveTo(cx, cy)
		dc.DrawArc(cx, cy, r*pieRadiusFactor, start, end)
		dc.ClosePath()
		dc.Fill()
	}
}

func drawLabel(dc *gg.Context, d Doc, faces *faceSet, cx, cy float64, digit, index int, base float64, enc encode.Encoding) {
	size := labelSize(base, enc.Feynman)
	if size < 3 {
		// Perspective rows shrink below legibility; skip unreadable labels.
		return
	}
	dc.SetFontFace(faces.at(size))
	text := strconv.Itoa(digit)
	fill := d.Palette.For(enc.Color)

	switch encode.LabelFor(index, fill) {
	case encode.LabelContour:
		drawContouredText(dc, text, cx, cy, contourWidth(size), toRGBA(d.Palette.Black), toRGBA(d.Palette.White))
	case encode.LabelDark:
		dc.SetColor(toRGBA(d.Palette.Black))
		dc.DrawStringAnchored(text, cx, cy, 0.5, 0.5)
	case encode.LabelLight:
		dc.SetColor(toRGBA(d.Palette.White))
		dc.DrawStringAnchored(text, cx, cy, 0.5, 0.5)
	}
}

// drawContouredText fakes a text outline by stamping the string in the
// contour color at eight offsets before filling the center. gg has no
// stroke-text primitive.
func drawContouredText(dc *gg.Context, text string, cx, cy, w float64, contour, fill color.Color) {
	dc.SetColor(contour)
	for _, off := range [8][2]float64{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	} {
		dc.DrawStringAnchored(text, cx+off[0]*w, cy+off[1]*w, 0.5, 0.5)
	}
	dc.SetColor(fill)
	dc.DrawStringAnchored(text, cx, cy, 0.5, 0.5)
}

// drawOverlayRaster draws the translucent pi glyph. The raster backend
// keeps the overlay simple: a single translucent fill, no clipped
// tiling. Glyph clip paths are an SVG feature.
func drawOverlayRaster(dc *gg.Context, d Doc, faces *faceSet) {
	size, x, y := overlayGeometry(d)
	dc.SetFontFace(faces.at(size))

	black := d.Palette.Black
	dc.SetRGBA(black.R, black.G, black.B, overlayFillAlpha+0.12)
	dc.DrawStringAnchored(overlayGlyph, x, y, 0.5, 0.5)
}

// drawFade paints the bottom fade strip with a vertical white gradient.
func drawFade(dc *gg.Context, d Doc) {
	y0 := float64(d.HeightPx) - d.FadePx
	grad := gg.NewLinearGradient(0, y0, 0, float64(d.HeightPx))
	grad.AddColorStop(0, color.NRGBA{R: 255, G: 255, B: 255, A: 0})
	maxAlpha := fadeMaxAlpha * 255
	grad.AddColorStop(1, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(maxAlpha)})
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, y0, float64(d.WidthPx), d.FadePx)
	dc.Fill()
}

// toRGBA converts a palette color to a color.Color.
func toRGBA(c colorful.Color) color.Color {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}
