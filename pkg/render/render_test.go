package render

import (
	"math"
	"testing"
)

func TestWedgePointsOnCircle(t *testing.T) {
	for orient := 0; orient < 4; orient++ {
		pts := wedgePoints(100, 100, 40, orient)
		for i, p := range pts {
			dx := p[0] - 100
			dy := p[1] - 100
			dist := math.Hypot(dx, dy)
			if math.Abs(dist-40) > 1e-9 {
				t.Errorf("orient %d vertex %d: distance %.6f, want 40", orient, i, dist)
			}
		}
	}
}

func TestWedgePointsApexAboveCenter(t *testing.T) {
	// Orientation 0 puts the apex straight up (negative y in image coords).
	pts := wedgePoints(0, 0, 10, 0)
	if math.Abs(pts[0][0]) > 1e-9 || math.Abs(pts[0][1]+10) > 1e-9 {
		t.Errorf("apex = (%.4f, %.4f), want (0, -10)", pts[0][0], pts[0][1])
	}
}

func TestPieAngles(t *testing.T) {
	for orient := 0; orient < 4; orient++ {
		start, end := pieAngles(orient)
		if math.Abs(end-start-math.Pi/2) > 1e-9 {
			t.Errorf("orient %d: arc spans %.4f rad, want pi/2", orient, end-start)
		}
		if math.Abs(start-float64(orient)*math.Pi/2) > 1e-9 {
			t.Errorf("orient %d: start %.4f", orient, start)
		}
	}
}

func TestLabelSize(t *testing.T) {
	if got := labelSize(100, false); got != 25 {
		t.Errorf("plain label size = %v, want 25", got)
	}
	if got := labelSize(100, true); got != 34 {
		t.Errorf("feynman label size = %v, want 34", got)
	}
}

func TestContourWidthFloor(t *testing.T) {
	if got := contourWidth(2); got != 0.8 {
		t.Errorf("contourWidth(2) = %v, want floor 0.8", got)
	}
	if got := contourWidth(100); got != 12 {
		t.Errorf("contourWidth(100) = %v, want 12", got)
	}
}
