// Package grid computes the poster cell layout.
//
// The canvas is partitioned into two vertically stacked zones: a uniform
// grid of equal rows and columns, followed by an "infinite perspective"
// zone where each row is Scale times the height of the previous one and
// carries proportionally more columns. Layout is a pure function of the
// canvas geometry; digits are bound in a separate second phase so grid
// geometry and digit generation stay independently testable.
package grid

import (
	"math"

	"github.com/piposter/piposter/pkg/errors"
)

// Params configures the grid geometry. Values are process-wide constants
// for a given poster; see DefaultParams for the reference poster.
type Params struct {
	Cols                   int     // columns in the uniform zone
	Rows                   int     // nominal total rows on the canvas
	PerspectiveRows        int     // nominal rows reserved for the perspective band
	PerspectiveStartOffset int     // extra rows pulled into the perspective band
	Scale                  float64 // per-row shrink factor in (0,1)
	MinRowHeight           float64 // rows thinner than this are not emitted (px)
}

// DefaultParams returns the reference poster grid: 30x50 cells with the
// bottom 10 rows' span rendered as a perspective zone shrinking by 10%
// per row.
func DefaultParams() Params {
	return Params{
		Cols:                   30,
		Rows:                   50,
		PerspectiveRows:        8,
		PerspectiveStartOffset: 2,
		Scale:                  0.90,
		MinRowHeight:           0.8,
	}
}

// NormalRows returns the number of rows in the uniform zone.
func (p Params) NormalRows() int {
	return p.Rows - p.PerspectiveRows - p.PerspectiveStartOffset
}

// Build computes the ordered cell sequence for a canvas of innerW x innerH
// pixels whose top-left corner sits at (marginX, marginY). Cells are
// emitted row-major, left to right, uniform zone first, with Index
// assigned from a single monotonically increasing counter. Digit is left
// at its zero placeholder; bind digits with BindDigits.
//
// Build is a pure function of its arguments and returns a DEGENERATE_GRID
// error when the parameters yield zero or negative rows, columns, or row
// heights.
func Build(marginX, marginY, innerW, innerH float64, p Params) ([]Cell, error) {
	if p.Cols <= 0 {
		return nil, errors.New(errors.ErrCodeDegenerateGrid, "column count must be positive, got %d", p.Cols)
	}
	if p.Rows <= 0 {
		return nil, errors.New(errors.ErrCodeDegenerateGrid, "row count must be positive, got %d", p.Rows)
	}
	normalRows := p.NormalRows()
	if normalRows <= 0 {
		return nil, errors.New(errors.ErrCodeDegenerateGrid,
			"perspective band (%d+%d rows) leaves no uniform rows of %d",
			p.PerspectiveRows, p.PerspectiveStartOffset, p.Rows)
	}
	rowH := innerH / float64(p.Rows)
	if rowH <= 0 {
		return nil, errors.New(errors.ErrCodeDegenerateGrid, "row height %.3f must be positive", rowH)
	}

	var cells []Cell
	nextIndex := 0

	// Uniform zone.
	colW := innerW / float64(p.Cols)
	for row := 0; row < normalRows; row++ {
		cy := marginY + (float64(row)+0.5)*rowH
		base := math.Min(colW, rowH)
		for col := 0; col < p.Cols; col++ {
			cells = append(cells, Cell{
				Row:       row,
				Col:       col,
				ColsInRow: p.Cols,
				CX:        marginX + (float64(col)+0.5)*colW,
				CY:        cy,
				Base:      base,
				Index:     nextIndex,
			})
			nextIndex++
		}
	}

	// Perspective zone: rows shrink geometrically and must tile the
	// remaining vertical span exactly. The final row is clipped to the
	// residual height; rows below MinRowHeight are not emitted, so a
	// sub-threshold residual stays unfilled.
	top := marginY + float64(normalRows)*rowH
	bottom := marginY + innerH
	cursor := top
	rowID := normalRows

	for k := 0; cursor < bottom; k++ {
		h := rowH * math.Pow(p.Scale, float64(k))
		if h < p.MinRowHeight {
			break
		}
		if cursor+h > bottom {
			h = bottom - cursor
			if h <= 0 {
				break
			}
		}

		// Column count follows the unclipped k-th step even when the row
		// height was clipped to the residual span.
		colsInRow := max(p.Cols, int(math.Round(float64(p.Cols)*math.Pow(1/p.Scale, float64(k)))))
		cw := innerW / float64(colsInRow)
		cy := cursor + h/2
		base := math.Min(cw, h)

		for col := 0; col < colsInRow; col++ {
			cells = append(cells, Cell{
				Row:       rowID,
				Col:       col,
				ColsInRow: colsInRow,
				CX:        marginX + (float64(col)+0.5)*cw,
				CY:        cy,
				Base:      base,
				Index:     nextIndex,
			})
			nextIndex++
		}

		cursor += h
		rowID++
	}

	return cells, nil
}

// BindDigits returns a copy of cells with each cell's Digit set to
// digits[cell.Index]. The digit stream must cover every cell.
func BindDigits(cells []Cell, digits []byte) ([]Cell, error) {
	if len(digits) < len(cells) {
		return nil, errors.New(errors.ErrCodeInsufficientPrecision,
			"digit stream has %d digits, grid needs %d", len(digits), len(cells))
	}
	bound := make([]Cell, len(cells))
	for i, c := range cells {
		c.Digit = int(digits[c.Index])
		bound[i] = c
	}
	return bound, nil
}
