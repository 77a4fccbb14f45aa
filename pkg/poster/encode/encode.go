// Package encode maps (digit, index) pairs to visual categories.
//
// The encoding is a total pure function: every digit 0-9 and every index
// is handled, identical inputs always produce identical outputs. Color
// resolution to actual RGB values happens in the render layer; this
// package only names the categories.
package encode

import "github.com/piposter/piposter/pkg/pi"

// Color is one of the five poster color categories. Gold is reserved for
// the Feynman point and overrides all digit-based color logic.
type Color int

const (
	ColorRed Color = iota
	ColorBlue
	ColorYellow
	ColorBlack
	ColorGold
)

// String returns the palette name of the color category.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorBlue:
		return "blue"
	case ColorYellow:
		return "yellow"
	case ColorBlack:
		return "black"
	case ColorGold:
		return "gold"
	}
	return "unknown"
}

// Shape is the geometric category drawn for a digit.
type Shape int

const (
	ShapeDisc   Shape = iota // digits 0-2
	ShapeSquare              // digits 3-5
	ShapeWedge               // digits 6-8, triangle rotated by Orientation
	ShapePie                 // digit 9, quarter arc starting at Orientation
)

// String returns the shape category name.
func (s Shape) String() string {
	switch s {
	case ShapeDisc:
		return "disc"
	case ShapeSquare:
		return "square"
	case ShapeWedge:
		return "wedge"
	case ShapePie:
		return "pie"
	}
	return "unknown"
}

// Encoding is the full visual category for one cell.
type Encoding struct {
	Color        Color
	Shape        Shape
	Orientation  int     // quarter turns, 0-3; meaningful for wedge and pie
	SizeFraction float64 // shape size as a fraction of the cell's base
	Feynman      bool    // cell falls inside the Feynman point
}

// Size fraction endpoints: digit 0 draws at 22% of the cell base, digit 9
// at 98%.
const (
	sizeFloor = 0.22
	sizeSpan  = 0.76
)

// SizeFraction returns the linear size ramp for a digit.
func SizeFraction(digit int) float64 {
	return sizeFloor + float64(digit)/9.0*sizeSpan
}

// Encode maps a digit and its global index to a visual category.
func Encode(digit, index int) Encoding {
	e := Encoding{
		Shape:        shapeFor(digit),
		Orientation:  index % 4,
		SizeFraction: SizeFraction(digit),
		Feynman:      pi.IsFeynmanIndex(index),
	}

	switch {
	case e.Feynman:
		e.Color = ColorGold
	case digit%2 == 0:
		if digit%4 == 0 {
			e.Color = ColorRed
		} else {
			e.Color = ColorBlue
		}
	default:
		if digit%4 == 1 {
			e.Color = ColorYellow
		} else {
			e.Color = ColorBlack
		}
	}
	return e
}

// shapeFor partitions the digit range into four contiguous shape bands.
func shapeFor(digit int) Shape {
	switch {
	case digit <= 2:
		return ShapeDisc
	case digit <= 5:
		return ShapeSquare
	case digit <= 8:
		return ShapeWedge
	default:
		return ShapePie
	}
}
