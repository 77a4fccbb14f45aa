package encode

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/piposter/piposter/pkg/pi"
)

// labelLuminanceThreshold separates fills that take a dark label from
// fills that need a light one.
const labelLuminanceThreshold = 0.58

// LabelKind selects how a digit label is drawn over its shape.
type LabelKind int

const (
	// LabelDark draws the digit in the poster's black.
	LabelDark LabelKind = iota
	// LabelLight draws the digit in white.
	LabelLight
	// LabelContour draws the digit in white with a black outline; used
	// only on Feynman-point cells.
	LabelContour
)

// LabelFor chooses the label treatment for a cell given its resolved fill
// color. Feynman cells always get the contour treatment; otherwise the
// label color is picked by the fill's relative luminance (Rec. 709
// weights on the sRGB components) against a fixed threshold.
func LabelFor(index int, fill colorful.Color) LabelKind {
	if pi.IsFeynmanIndex(index) {
		return LabelContour
	}
	if Luminance(fill) > labelLuminanceThreshold {
		return LabelDark
	}
	return LabelLight
}

// Luminance returns the Rec. 709 relative luminance of a color, computed
// on the raw sRGB components the way the poster's contrast rule defines it.
func Luminance(c colorful.Color) float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}
