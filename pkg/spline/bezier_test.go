package spline

import (
	"math"
	"testing"
)

func TestSegmentEvalEndpoints(t *testing.T) {
	seg := Segment{
		P0: Vec{10, 20},
		P1: Vec{30, 80},
		P2: Vec{70, 80},
		P3: Vec{90, 20},
	}

	start := seg.Eval(0)
	if start != seg.P0 {
		t.Errorf("Eval(0) = %v, want %v", start, seg.P0)
	}
	end := seg.Eval(1)
	if end != seg.P3 {
		t.Errorf("Eval(1) = %v, want %v", end, seg.P3)
	}
}

func TestSegmentEvalLinear(t *testing.T) {
	// Evenly spaced collinear controls reduce to linear motion
	seg := Segment{
		P0: Vec{0, 0},
		P1: Vec{100, 0},
		P2: Vec{200, 0},
		P3: Vec{300, 0},
	}
	for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
		p := seg.Eval(tt)
		if math.Abs(p.X-300*tt) > 1e-9 || math.Abs(p.Y) > 1e-9 {
			t.Errorf("Eval(%g) = %v, want (%g, 0)", tt, p, 300*tt)
		}
	}
}

func TestSplitPreservesShape(t *testing.T) {
	seg := Segment{
		P0: Vec{0, 0},
		P1: Vec{25, 100},
		P2: Vec{75, 100},
		P3: Vec{100, 0},
	}
	const splitT = 0.3
	c := seg.split(splitT)

	left := Segment{P0: seg.P0, P1: c.P4, P2: c.P7, P3: c.P9}
	right := Segment{P0: c.P9, P1: c.P8, P2: c.P6, P3: seg.P3}

	for _, u := range []float64{0, 0.2, 0.5, 0.8, 1} {
		want := seg.Eval(splitT * u)
		got := left.Eval(u)
		if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
			t.Errorf("left.Eval(%g) = %v, want %v", u, got, want)
		}

		want = seg.Eval(splitT + (1-splitT)*u)
		got = right.Eval(u)
		if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
			t.Errorf("right.Eval(%g) = %v, want %v", u, got, want)
		}
	}
}

func TestTangentDirection(t *testing.T) {
	seg := Segment{
		P0: Vec{0, 0},
		P1: Vec{10, 10},
		P2: Vec{20, 20},
		P3: Vec{30, 30},
	}
	tan := seg.Tangent(0.5)
	if math.Abs(tan.X-tan.Y) > 1e-9 {
		t.Errorf("Tangent of the diagonal should be diagonal, got %v", tan)
	}
	if tan.X <= 0 {
		t.Errorf("Tangent should point along the curve direction, got %v", tan)
	}
}
