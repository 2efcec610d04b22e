// Arc-length reparameterization. A cubic Bezier moves at non-uniform
// speed in its raw parameter; sampling it at equal t steps bunches
// points where the controls are tight. The sampler builds a cumulative
// arc-length table per segment and maps a normalized length fraction
// back to the raw parameter, so equal steps in u give equal spacing
// along the curve.

package spline

import "sort"

// defaultArcResolution is the subdivision count of the fine
// arc-length table.
const defaultArcResolution = 200

// coarseLengthSteps is the resolution of the rough per-segment length
// estimate used only to weight sampling budgets across segments.
const coarseLengthSteps = 100

// ArcLengthSampler answers uniform-distance queries against one cubic
// segment. It never mutates the segment it was built from.
type ArcLengthSampler struct {
	seg   Segment
	table []float64 // cumulative length at i/res, len res+1, non-decreasing
	res   int
}

// NewArcLengthSampler builds the cumulative arc-length table for seg
// at the given resolution. A resolution below 1 falls back to the
// default.
func NewArcLengthSampler(seg Segment, res int) *ArcLengthSampler {
	if res < 1 {
		res = defaultArcResolution
	}
	a := &ArcLengthSampler{
		seg:   seg,
		table: make([]float64, res+1),
		res:   res,
	}
	prev := seg.Eval(0)
	sum := 0.0
	for i := 1; i <= res; i++ {
		cur := seg.Eval(float64(i) / float64(res))
		sum += cur.Distance(prev)
		a.table[i] = sum
		prev = cur
	}
	return a
}

// Total returns the table's full arc length.
func (a *ArcLengthSampler) Total() float64 {
	return a.table[a.res]
}

// Map converts a normalized length fraction u in [0,1] to the raw
// curve parameter covering that fraction of arc length, by binary
// search over the table and linear interpolation between the
// bracketing samples.
func (a *ArcLengthSampler) Map(u float64) float64 {
	if u <= 0 {
		return 0
	}
	if u >= 1 {
		return 1
	}
	target := u * a.Total()

	hi := sort.SearchFloat64s(a.table, target)
	if hi <= 0 {
		return 0
	}
	if hi > a.res {
		return 1
	}
	lo := hi - 1
	span := a.table[hi] - a.table[lo]
	frac := 0.0
	if span > 0 {
		frac = (target - a.table[lo]) / span
	}
	return (float64(lo) + frac) / float64(a.res)
}

// MX evaluates the segment's x at the arc-length-corrected parameter.
func (a *ArcLengthSampler) MX(u float64) float64 {
	return a.seg.Eval(a.Map(u)).X
}

// MY evaluates the segment's y at the arc-length-corrected parameter.
func (a *ArcLengthSampler) MY(u float64) float64 {
	return a.seg.Eval(a.Map(u)).Y
}

// coarseLength approximates a segment's length by sampling, the same
// way the editor estimates drawn curve lengths. It deliberately uses a
// coarser resolution than the sampler's table; it only weights how
// many of the requested points each segment receives.
func coarseLength(seg Segment) float64 {
	length := 0.0
	prev := seg.Eval(0)
	for i := 1; i <= coarseLengthSteps; i++ {
		cur := seg.Eval(float64(i) / coarseLengthSteps)
		length += cur.Distance(prev)
		prev = cur
	}
	return length
}

// RegularlyPlacedPoints samples count points spaced at equal arc
// length along the whole spline. The last point lands exactly on the
// spline's end. Fewer than two knots yield an empty result.
//
// Each segment receives a share of count proportional to its length:
// interior segments get the floor of their cumulative share minus
// points already allocated, and the final segment takes every point
// still unallocated, so the total is exactly count.
func (s *Spline) RegularlyPlacedPoints(count int) []Vec {
	if len(s.knots) < 2 || count <= 0 {
		return nil
	}

	n := s.SegmentCount()
	samplers := make([]*ArcLengthSampler, n)
	lengths := make([]float64, n)
	total := 0.0
	for i := 0; i < n; i++ {
		seg := s.Segment(i)
		samplers[i] = NewArcLengthSampler(seg, defaultArcResolution)
		lengths[i] = coarseLength(seg)
		total += lengths[i]
	}

	pts := make([]Vec, 0, count)
	allocated := 0
	cum := 0.0
	for i := 0; i < n; i++ {
		cum += lengths[i]

		var shapes int
		if i == n-1 {
			shapes = count - allocated
		} else if total > 0 {
			shapes = int(float64(count)*cum/total) - allocated
		}
		if shapes <= 0 {
			continue
		}
		allocated += shapes

		div := float64(shapes)
		if i == n-1 {
			// Final segment includes its endpoint.
			if shapes > 1 {
				div = float64(shapes - 1)
			} else {
				div = 1
			}
		}
		for j := 0; j < shapes; j++ {
			u := float64(j) / div
			pts = append(pts, Vec{samplers[i].MX(u), samplers[i].MY(u)})
		}
	}
	return pts
}
