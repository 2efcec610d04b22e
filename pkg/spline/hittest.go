// Hit testing: locating an editable point near the pointer, and
// projecting the pointer onto the curve for insert-on-curve.

package spline

// projectionSteps is the number of samples per segment used by the
// curve projection.
const projectionSteps = 100

// NearestPoint scans knots in insertion order and returns the first
// point (the knot itself, then its handles) whose distance to (x, y)
// is below maxDist. Note the tie-break: first encountered wins, not
// the closest candidate overall. The curve projection below uses the
// true minimum instead; both behaviours are kept as-is.
func (s *Spline) NearestPoint(x, y, maxDist float64) (*Point, bool) {
	for _, k := range s.knots {
		if k.Distance(x, y) < maxDist {
			return &k.Point, true
		}
		if k.Handle1.Distance(x, y) < maxDist {
			return k.Handle1, true
		}
		if k.Handle2 != nil && k.Handle2.Distance(x, y) < maxDist {
			return k.Handle2, true
		}
	}
	return nil, false
}

// CurveHit describes the result of projecting a coordinate onto the
// curve: the segment it fell on, the curve parameter of the closest
// sample and the segment's control points at the time of the hit.
type CurveHit struct {
	Segment  int
	T        float64
	Controls Segment
}

// ProjectOnCurve samples every segment at a fixed step count and
// returns the closest sampled point overall, if it lies within
// maxDist of (x, y).
func (s *Spline) ProjectOnCurve(x, y, maxDist float64) (CurveHit, bool) {
	var (
		best     CurveHit
		bestDist = maxDist
		found    bool
	)
	q := Vec{x, y}

	for i := 0; i < s.SegmentCount(); i++ {
		seg := s.Segment(i)
		for step := 0; step <= projectionSteps; step++ {
			t := float64(step) / projectionSteps
			d := seg.Eval(t).Distance(q)
			if d < bestDist {
				bestDist = d
				best = CurveHit{Segment: i, T: t, Controls: seg}
				found = true
			}
		}
	}
	return best, found
}
