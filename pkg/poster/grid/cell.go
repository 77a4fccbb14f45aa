package grid

// Cell is one grid unit of the poster: a position, a size basis, and the
// pi digit bound to it. Cells are plain immutable values; after digit
// binding they are only ever read.
type Cell struct {
	Row       int     // zone-relative row id
	Col       int     // column within the row
	ColsInRow int     // column count of the row
	CX, CY    float64 // center in device pixels
	Base      float64 // min(column width, row height); bounds the shape
	Digit     int     // decimal digit of pi, 0-9 (0 until bound)
	Index     int     // global row-major rank across the whole grid
}
