package grid

import (
	"math"
	"testing"

	"github.com/piposter/piposter/pkg/errors"
)

// referenceCanvas matches the 329x483 mm page at 300 DPI.
const (
	refW = 3886.0
	refH = 5706.0
)

func buildReference(t *testing.T) []Cell {
	t.Helper()
	cells, err := Build(0, 0, refW, refH, DefaultParams())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	return cells
}

func TestBuildIndexBijection(t *testing.T) {
	cells := buildReference(t)
	for i, c := range cells {
		if c.Index != i {
			t.Fatalf("cells[%d].Index = %d, want %d", i, c.Index, i)
		}
	}
}

func TestBuildUniformZone(t *testing.T) {
	p := DefaultParams()
	cells := buildReference(t)

	normal := p.NormalRows() * p.Cols
	if normal != 1200 {
		t.Fatalf("uniform zone = %d cells, want 1200", normal)
	}
	if len(cells) <= normal {
		t.Fatalf("no perspective cells emitted (N = %d)", len(cells))
	}

	rowH := refH / float64(p.Rows)
	colW := refW / float64(p.Cols)
	for _, c := range cells[:normal] {
		if c.ColsInRow != p.Cols {
			t.Fatalf("uniform cell %d has ColsInRow %d, want %d", c.Index, c.ColsInRow, p.Cols)
		}
		if want := math.Min(colW, rowH); c.Base != want {
			t.Fatalf("uniform cell %d has Base %.3f, want %.3f", c.Index, c.Base, want)
		}
	}

	// First cell sits at the midpoint of the first row and column.
	if got, want := cells[0].CX, colW/2; math.Abs(got-want) > 1e-9 {
		t.Errorf("cells[0].CX = %.6f, want %.6f", got, want)
	}
	if got, want := cells[0].CY, rowH/2; math.Abs(got-want) > 1e-9 {
		t.Errorf("cells[0].CY = %.6f, want %.6f", got, want)
	}
}

func TestBuildColsMonotonic(t *testing.T) {
	cells := buildReference(t)

	prevRow := -1
	prevCols := 0
	for _, c := range cells {
		if c.Row != prevRow {
			if c.Row <= prevRow {
				t.Fatalf("row ids not increasing: %d after %d", c.Row, prevRow)
			}
			if c.ColsInRow < prevCols {
				t.Fatalf("row %d has %d cols, fewer than previous row's %d", c.Row, c.ColsInRow, prevCols)
			}
			prevRow = c.Row
			prevCols = c.ColsInRow
		} else if c.ColsInRow != prevCols {
			t.Fatalf("ColsInRow varies within row %d", c.Row)
		}
	}
}

func TestBuildPerspectiveFillsSpan(t *testing.T) {
	p := DefaultParams()
	cells := buildReference(t)

	rowH := refH / float64(p.Rows)
	top := float64(p.NormalRows()) * rowH

	// Heights follow h_k = rowH * Scale^k until the min-height cutoff,
	// with the overshooting row clipped to the residual. Recompute the
	// sequence and compare against the emitted rows.
	var sum float64
	perspectiveRows := 0
	for k := 0; ; k++ {
		h := rowH * math.Pow(p.Scale, float64(k))
		if h < p.MinRowHeight {
			break
		}
		if sum+h > refH-top {
			h = refH - top - sum
			if h <= 0 {
				break
			}
		}
		sum += h
		perspectiveRows++
	}

	gotRows := cells[len(cells)-1].Row - p.NormalRows() + 1
	if gotRows != perspectiveRows {
		t.Errorf("perspective rows = %d, want %d", gotRows, perspectiveRows)
	}

	// With the default scale the geometric series converges to exactly the
	// residual span; emitted rows must never overshoot it.
	if residual := refH - top; sum > residual+1e-6 {
		t.Errorf("perspective heights sum %.6f exceeds residual span %.6f", sum, residual)
	}

	// Last cell's bottom edge stays within the canvas.
	last := cells[len(cells)-1]
	if bottom := last.CY + last.Base/2; bottom > refH+1e-6 {
		t.Errorf("last cell bottom %.3f beyond canvas height %.3f", bottom, refH)
	}
}

func TestBuildClippedRowKeepsUnclippedCols(t *testing.T) {
	// Scale 0.9 over a 5-row residual span: cumulative heights pass the
	// bottom during k=6, so that row is clipped but keeps the column count
	// of its unclipped step.
	p := Params{
		Cols:                   10,
		Rows:                   10,
		PerspectiveRows:        5,
		PerspectiveStartOffset: 0,
		Scale:                  0.90,
		MinRowHeight:           0.0001,
	}
	cells, err := Build(0, 0, 1000, 1000, p)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	last := cells[len(cells)-1]
	k := last.Row - p.NormalRows()
	if k != 6 {
		t.Fatalf("clipped row at k = %d, want 6", k)
	}
	want := max(p.Cols, int(math.Round(float64(p.Cols)*math.Pow(1/p.Scale, float64(k)))))
	if last.ColsInRow != want {
		t.Errorf("clipped row ColsInRow = %d, want %d (from unclipped k)", last.ColsInRow, want)
	}

	// Clipped height: the row is thinner than the unclipped h_k.
	rowH := 1000.0 / float64(p.Rows)
	unclipped := rowH * math.Pow(p.Scale, float64(k))
	cw := 1000.0 / float64(last.ColsInRow)
	if last.Base >= math.Min(cw, unclipped) {
		t.Errorf("clipped row Base %.4f not smaller than unclipped %.4f", last.Base, math.Min(cw, unclipped))
	}
}

func TestBuildBasePositive(t *testing.T) {
	for _, c := range buildReference(t) {
		if c.Base <= 0 {
			t.Fatalf("cell %d has non-positive Base %.6f", c.Index, c.Base)
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	a := buildReference(t)
	b := buildReference(t)
	if len(a) != len(b) {
		t.Fatalf("cell counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cells[%d] differs between runs", i)
		}
	}
}

func TestBuildMarginsShiftCenters(t *testing.T) {
	plain := buildReference(t)
	shifted, err := Build(40, 60, refW, refH, DefaultParams())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if len(plain) != len(shifted) {
		t.Fatalf("margins changed cell count: %d vs %d", len(plain), len(shifted))
	}
	for i := range plain {
		if got, want := shifted[i].CX, plain[i].CX+40; math.Abs(got-want) > 1e-9 {
			t.Fatalf("cells[%d].CX = %.6f, want %.6f", i, got, want)
		}
		if got, want := shifted[i].CY, plain[i].CY+60; math.Abs(got-want) > 1e-9 {
			t.Fatalf("cells[%d].CY = %.6f, want %.6f", i, got, want)
		}
	}
}

func TestBuildDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
		innerH float64
	}{
		{
			name:   "zero columns",
			mutate: func(p *Params) { p.Cols = 0 },
			innerH: refH,
		},
		{
			name:   "negative columns",
			mutate: func(p *Params) { p.Cols = -3 },
			innerH: refH,
		},
		{
			name:   "zero rows",
			mutate: func(p *Params) { p.Rows = 0 },
			innerH: refH,
		},
		{
			name:   "no uniform rows",
			mutate: func(p *Params) { p.PerspectiveRows = 48 },
			innerH: refH,
		},
		{
			name:   "zero height",
			mutate: func(p *Params) {},
			innerH: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			_, err := Build(0, 0, refW, tt.innerH, p)
			if err == nil {
				t.Fatal("Build succeeded, want DEGENERATE_GRID")
			}
			if !errors.Is(err, errors.ErrCodeDegenerateGrid) {
				t.Errorf("error code = %v, want DEGENERATE_GRID", errors.GetCode(err))
			}
		})
	}
}

func TestBindDigits(t *testing.T) {
	cells := buildReference(t)
	digits := make([]byte, len(cells))
	for i := range digits {
		digits[i] = byte(i % 10)
	}

	bound, err := BindDigits(cells, digits)
	if err != nil {
		t.Fatalf("BindDigits error: %v", err)
	}
	for i, c := range bound {
		if c.Digit != i%10 {
			t.Fatalf("bound[%d].Digit = %d, want %d", i, c.Digit, i%10)
		}
	}

	// Source cells are untouched.
	for _, c := range cells {
		if c.Digit != 0 {
			t.Fatal("BindDigits mutated its input")
		}
	}
}

func TestBindDigitsShortStream(t *testing.T) {
	cells := buildReference(t)
	_, err := BindDigits(cells, make([]byte, len(cells)-1))
	if err == nil {
		t.Fatal("BindDigits succeeded with short stream")
	}
	if !errors.Is(err, errors.ErrCodeInsufficientPrecision) {
		t.Errorf("error code = %v, want INSUFFICIENT_PRECISION", errors.GetCode(err))
	}
}
