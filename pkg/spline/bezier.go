// Cubic Bezier evaluation and de Casteljau subdivision.

package spline

import "math"

// Vec is a float64 2D coordinate used for curve math.
type Vec struct {
	X, Y float64
}

// Lerp linearly interpolates between two coordinates.
func (v Vec) Lerp(o Vec, t float64) Vec {
	return Vec{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
	}
}

// Distance returns the euclidean distance between two coordinates.
func (v Vec) Distance(o Vec) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Segment holds the four control points of one cubic Bezier segment.
type Segment struct {
	P0, P1, P2, P3 Vec
}

// Eval computes the point on the segment at parameter t.
func (s Segment) Eval(t float64) Vec {
	mt := 1 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	return Vec{
		X: mt3*s.P0.X + 3*mt2*t*s.P1.X + 3*mt*t2*s.P2.X + t3*s.P3.X,
		Y: mt3*s.P0.Y + 3*mt2*t*s.P1.Y + 3*mt*t2*s.P2.Y + t3*s.P3.Y,
	}
}

// Tangent computes the derivative of the segment at parameter t.
func (s Segment) Tangent(t float64) Vec {
	mt := 1 - t
	mt2 := mt * mt
	t2 := t * t

	return Vec{
		X: 3*mt2*(s.P1.X-s.P0.X) + 6*mt*t*(s.P2.X-s.P1.X) + 3*t2*(s.P3.X-s.P2.X),
		Y: 3*mt2*(s.P1.Y-s.P0.Y) + 6*mt*t*(s.P2.Y-s.P1.Y) + 3*t2*(s.P3.Y-s.P2.Y),
	}
}

// casteljau holds the intermediate points of one de Casteljau step:
// splitting a segment at parameter t into two segments that together
// trace exactly the original curve.
//
//	left:  P0, P4, P7, P9
//	right: P9, P8, P6, P3
type casteljau struct {
	P4, P5, P6, P7, P8, P9 Vec
}

// split performs the de Casteljau construction at parameter t.
func (s Segment) split(t float64) casteljau {
	var c casteljau
	c.P4 = s.P0.Lerp(s.P1, t)
	c.P5 = s.P1.Lerp(s.P2, t)
	c.P6 = s.P2.Lerp(s.P3, t)
	c.P7 = c.P4.Lerp(c.P5, t)
	c.P8 = c.P5.Lerp(c.P6, t)
	c.P9 = c.P7.Lerp(c.P8, t)
	return c
}
