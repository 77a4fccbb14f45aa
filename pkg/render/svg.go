package render

import (
	"bytes"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/piposter/piposter/pkg/poster/encode"
)

// RenderSVG renders the document as a standalone SVG file.
//
// The output is deterministic: cells are painted in index order, so
// identical documents produce byte-identical SVG.
func RenderSVG(d Doc) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		d.WidthPx, d.HeightPx, d.WidthPx, d.HeightPx)

	writeDefs(&buf, d)

	// Background.
	fmt.Fprintf(&buf, `  <rect width="%d" height="%d" fill="%s"/>`+"\n",
		d.WidthPx, d.HeightPx, d.Palette.Cream.Hex())

	for _, c := range d.Cells {
		enc := encode.Encode(c.Digit, c.Index)
		fill := d.Palette.For(enc.Color)
		writeShape(&buf, c.CX, c.CY, c.Base*enc.SizeFraction, enc, fill)
	}

	if d.DrawLabels {
		for _, c := range d.Cells {
			enc := encode.Encode(c.Digit, c.Index)
			writeLabel(&buf, d, c.CX, c.CY, c.Digit, c.Index, c.Base, enc)
		}
	}

	if d.Overlay {
		writeOverlay(&buf, d)
	}

	if d.FadePx > 0 {
		fmt.Fprintf(&buf, `  <rect x="0" y="%.1f" width="%d" height="%.1f" fill="url(#bottom-fade)"/>`+"\n",
			float64(d.HeightPx)-d.FadePx, d.WidthPx, d.FadePx)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// writeDefs emits gradient definitions used later in the document.
func writeDefs(buf *bytes.Buffer, d Doc) {
	if d.FadePx <= 0 {
		return
	}
	buf.WriteString("  <defs>\n")
	buf.WriteString(`    <linearGradient id="bottom-fade" x1="0" y1="0" x2="0" y2="1">` + "\n")
	buf.WriteString(`      <stop offset="0" stop-color="#ffffff" stop-opacity="0"/>` + "\n")
	fmt.Fprintf(buf, `      <stop offset="1" stop-color="#ffffff" stop-opacity="%.2f"/>`+"\n", fadeMaxAlpha)
	buf.WriteString("    </linearGradient>\n")
	buf.WriteString("  </defs>\n")
}

// writeShape emits one cell's shape.
func writeShape(buf *bytes.Buffer, cx, cy, size float64, enc encode.Encoding, fill colorful.Color) {
	hex := fill.Hex()
	r := size / 2

	switch enc.Shape {
	case encode.ShapeDisc:
		fmt.Fprintf(buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`+"\n",
			cx, cy, r*discRadiusFactor, hex)

	case encode.ShapeSquare:
		side := size * squareSideFactor
		fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
			cx-side/2, cy-side/2, side, side, hex)

	case encode.ShapeWedge:
		pts := wedgePoints(cx, cy, r*wedgeRadiusFactor, enc.Orientation)
		fmt.Fprintf(buf, `  <polygon points="%.2f,%.2f %.2f,%.2f %.2f,%.2f" fill="%s"/>`+"\n",
			pts[0][0], pts[0][1], pts[1][0], pts[1][1], pts[2][0], pts[2][1], hex)

	case encode.ShapePie:
		pr := r * pieRadiusFactor
		start, end := pieAngles(enc.Orientation)
		x1, y1 := arcPoint(cx, cy, pr, start)
		x2, y2 := arcPoint(cx, cy, pr, end)
		fmt.Fprintf(buf, `  <path d="M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 0 1 %.2f %.2f Z" fill="%s"/>`+"\n",
			cx, cy, x1, y1, pr, pr, x2, y2, hex)
	}
}

// writeLabel emits one digit label.
func writeLabel(buf *bytes.Buffer, d Doc, cx, cy float64, digit, index int, base float64, enc encode.Encoding) {
	size := labelSize(base, enc.Feynman)
	fill := d.Palette.For(enc.Color)

	switch encode.LabelFor(index, fill) {
	case encode.LabelContour:
		fmt.Fprintf(buf,
			`  <text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-family="%s" font-weight="bold" font-size="%.2f" fill="%s" stroke="%s" stroke-width="%.2f" paint-order="stroke">%d</text>`+"\n",
			cx, cy, d.Font.Family, size, d.Palette.White.Hex(), d.Palette.Black.Hex(), contourWidth(size), digit)
	case encode.LabelDark:
		writePlainLabel(buf, d, cx, cy, size, d.Palette.Black.Hex(), digit)
	case encode.LabelLight:
		writePlainLabel(buf, d, cx, cy, size, d.Palette.White.Hex(), digit)
	}
}

func writePlainLabel(buf *bytes.Buffer, d Doc, cx, cy, size float64, hex string, digit int) {
	fmt.Fprintf(buf,
		`  <text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-family="%s" font-weight="bold" font-size="%.2f" fill="%s">%d</text>`+"\n",
		cx, cy, d.Font.Family, size, hex, digit)
}
