package render

import (
	"bytes"
	"image/png"
	"testing"
)

func TestRenderPNGDecodes(t *testing.T) {
	d := testDoc(t)
	data, err := RenderPNG(d)
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != d.WidthPx || b.Dy() != d.HeightPx {
		t.Errorf("image %dx%d, want %dx%d", b.Dx(), b.Dy(), d.WidthPx, d.HeightPx)
	}
}

func TestRenderPNGSkipsTextWithoutFont(t *testing.T) {
	// No FontPath: label and overlay layers are skipped rather than failing.
	d := testDoc(t)
	d.DrawLabels = true
	d.Overlay = true
	d.FontPath = ""

	if _, err := RenderPNG(d); err != nil {
		t.Fatalf("RenderPNG without font: %v", err)
	}
}

func TestRenderPNGBackgroundIsCream(t *testing.T) {
	d := testDoc(t)
	d.Cells = nil
	data, err := RenderPNG(d)
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	r, g, b, _ := img.At(0, 0).RGBA()
	wr, wg, wb := d.Palette.Cream.RGB255()
	if uint8(r>>8) != wr || uint8(g>>8) != wg || uint8(b>>8) != wb {
		t.Errorf("corner pixel = (%d,%d,%d), want cream (%d,%d,%d)",
			r>>8, g>>8, b>>8, wr, wg, wb)
	}
}
