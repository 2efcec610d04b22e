package spline

import (
	"math"
	"testing"
)

// straightSpline is a degenerate cubic: all controls collinear and
// evenly spaced from (0,0) to (300,0), so arc length is exactly
// proportional to the raw parameter.
func straightSpline() *Spline {
	s := New(ModeNatural, 0.3)
	s.Import([]KnotRecord{
		{X: 0, Y: 0, HP1: HandleRecord{X: 0, Y: 0}, HP2: hp(100, 0)},
		{X: 300, Y: 0, HP1: HandleRecord{X: 200, Y: 0}},
	})
	return s
}

func TestArcLengthTableMonotone(t *testing.T) {
	seg := Segment{
		P0: Vec{0, 0},
		P1: Vec{0, 100},
		P2: Vec{100, 100},
		P3: Vec{100, 0},
	}
	a := NewArcLengthSampler(seg, defaultArcResolution)

	for i := 1; i < len(a.table); i++ {
		if a.table[i] < a.table[i-1] {
			t.Fatalf("Table decreases at %d: %g < %g", i, a.table[i], a.table[i-1])
		}
	}
	if a.Total() <= 0 {
		t.Errorf("Total length = %g, want > 0", a.Total())
	}
}

func TestMapBounds(t *testing.T) {
	seg := Segment{
		P0: Vec{0, 0},
		P1: Vec{0, 100},
		P2: Vec{100, 100},
		P3: Vec{100, 0},
	}
	a := NewArcLengthSampler(seg, defaultArcResolution)

	if got := a.Map(0); got != 0 {
		t.Errorf("Map(0) = %g, want 0", got)
	}
	if got := a.Map(1); got != 1 {
		t.Errorf("Map(1) = %g, want 1", got)
	}
	mid := a.Map(0.5)
	if mid <= 0 || mid >= 1 {
		t.Errorf("Map(0.5) = %g, want interior value", mid)
	}
}

func TestMapCorrectsNonUniformSpeed(t *testing.T) {
	// Controls bunched at the start: the raw parameter crawls early
	// and races late, so the length-halfway point sits past t=0.5.
	seg := Segment{
		P0: Vec{0, 0},
		P1: Vec{1, 0},
		P2: Vec{2, 0},
		P3: Vec{100, 0},
	}
	a := NewArcLengthSampler(seg, defaultArcResolution)

	tMid := a.Map(0.5)
	if tMid <= 0.5 {
		t.Errorf("Map(0.5) = %g, want > 0.5 for back-loaded speed", tMid)
	}
	if got := a.MX(0.5); math.Abs(got-50) > 1 {
		t.Errorf("MX(0.5) = %g, want ~50", got)
	}
}

func TestRegularlyPlacedPointsEmpty(t *testing.T) {
	s := New(ModeNatural, 0.3)
	if pts := s.RegularlyPlacedPoints(5); len(pts) != 0 {
		t.Errorf("Empty spline yielded %d points, want 0", len(pts))
	}

	s.Append(10, 10)
	if pts := s.RegularlyPlacedPoints(5); len(pts) != 0 {
		t.Errorf("Single-knot spline yielded %d points, want 0", len(pts))
	}
}

func TestRegularlyPlacedPointsUniform(t *testing.T) {
	s := straightSpline()
	pts := s.RegularlyPlacedPoints(4)

	if len(pts) != 4 {
		t.Fatalf("Got %d points, want 4", len(pts))
	}
	// Total length 300, so spacing is 100 and the last point is the end
	for i, want := range []float64{0, 100, 200, 300} {
		if math.Abs(pts[i].X-want) > 1 || math.Abs(pts[i].Y) > 1 {
			t.Errorf("Point %d = %v, want (%g, 0)", i, pts[i], want)
		}
	}
}

func TestRegularlyPlacedPointsTwoKnotScenario(t *testing.T) {
	s := New(ModeNatural, 0.3)
	s.Import([]KnotRecord{
		{X: 0, Y: 0, HP1: HandleRecord{X: 0, Y: 0}, HP2: hp(33, 0)},
		{X: 100, Y: 0, HP1: HandleRecord{X: 67, Y: 0}},
	})
	pts := s.RegularlyPlacedPoints(3)

	if len(pts) != 3 {
		t.Fatalf("Got %d points, want 3", len(pts))
	}
	for i, want := range []float64{0, 50, 100} {
		if math.Abs(pts[i].X-want) > 1 || math.Abs(pts[i].Y) > 1 {
			t.Errorf("Point %d = %v, want (%g, 0)", i, pts[i], want)
		}
	}
}

func TestRegularlyPlacedPointsExactCount(t *testing.T) {
	// Multi-segment spline with unequal segment lengths: the floor
	// allocation must still hand out exactly count points.
	s := New(ModeNatural, 0.3)
	s.Import([]KnotRecord{
		{X: 0, Y: 0, HP1: HandleRecord{X: 0, Y: 0}, HP2: hp(10, 0)},
		{X: 30, Y: 0, HP1: HandleRecord{X: 20, Y: 0}, HP2: hp(40, 0)},
		{X: 300, Y: 0, HP1: HandleRecord{X: 200, Y: 0}},
	})

	for _, count := range []int{1, 2, 3, 7, 50} {
		pts := s.RegularlyPlacedPoints(count)
		if len(pts) != count {
			t.Errorf("Count %d yielded %d points", count, len(pts))
		}
	}

	// The final point lands exactly on the spline's end
	pts := s.RegularlyPlacedPoints(7)
	last := pts[len(pts)-1]
	if math.Abs(last.X-300) > 1e-9 || math.Abs(last.Y) > 1e-9 {
		t.Errorf("Last point = %v, want (300, 0)", last)
	}
}

func TestCoarseLengthStraight(t *testing.T) {
	seg := Segment{
		P0: Vec{0, 0},
		P1: Vec{100, 0},
		P2: Vec{200, 0},
		P3: Vec{300, 0},
	}
	if got := coarseLength(seg); math.Abs(got-300) > 1e-6 {
		t.Errorf("coarseLength = %g, want 300", got)
	}
}
