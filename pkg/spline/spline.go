// Spline is the ordered knot sequence and the topology operations on
// it: appending knots, removing them (fusing the neighbouring segments
// back together when possible) and subdividing a segment in place.

package spline

import "math"

// Mode selects the handle-editing behaviour.
type Mode int

const (
	// ModeNatural gives every knot both handles from creation and a
	// pencil-like symmetric drag feel.
	ModeNatural Mode = iota
	// ModeClassical starts knots with a single handle; the second is
	// synthesized when a following knot is appended, and first/last
	// knots always own exactly one handle.
	ModeClassical
)

// Spline is an ordered sequence of knots. Knot i and knot i+1 form one
// cubic segment. Empty and single-knot splines are valid; they simply
// render no curve.
type Spline struct {
	knots  []*Knot
	mode   Mode
	smooth float64

	nextID int
	active *Point
}

// New returns an empty spline. smoothFactor scales the retroactive
// tangent derived for the previous knot on append.
func New(mode Mode, smoothFactor float64) *Spline {
	return &Spline{mode: mode, smooth: smoothFactor}
}

// Mode returns the spline's editing mode.
func (s *Spline) Mode() Mode {
	return s.mode
}

// Len returns the number of knots.
func (s *Spline) Len() int {
	return len(s.knots)
}

// Knots returns the knot sequence. The slice is owned by the spline
// and must not be modified.
func (s *Spline) Knots() []*Knot {
	return s.knots
}

// KnotByID looks up a knot by its point ID.
func (s *Spline) KnotByID(id int) *Knot {
	for _, k := range s.knots {
		if k.ID == id {
			return k
		}
	}
	return nil
}

// Active returns the currently active point, or nil.
func (s *Spline) Active() *Point {
	return s.active
}

// SetActive marks p as the active point, clearing the previous one.
// A nil p clears active tracking.
func (s *Spline) SetActive(p *Point) {
	if s.active != nil {
		s.active.Active = false
	}
	s.active = p
	if p != nil {
		p.Active = true
	}
}

// allocID hands out session-unique point identifiers. IDs are never
// reused, even across Reset, so stale references cannot alias a new
// point.
func (s *Spline) allocID() int {
	id := s.nextID
	s.nextID++
	return id
}

func (s *Spline) newKnot(x, y float64) *Knot {
	k := &Knot{}
	k.ID = s.allocID()
	k.Kind = KindKnot
	k.Owner = -1
	k.SetPos(x, y)
	return k
}

func (s *Spline) newHandle(owner *Knot, slot HandleSlot, x, y float64) *Point {
	p := &Point{
		ID:    s.allocID(),
		Kind:  KindHandle,
		Owner: owner.ID,
		Slot:  slot,
	}
	p.SetPos(x, y)
	return p
}

// SegmentCount returns the number of cubic segments.
func (s *Spline) SegmentCount() int {
	if len(s.knots) < 2 {
		return 0
	}
	return len(s.knots) - 1
}

// Segment returns the four control points of segment i, formed by
// knot i, its trailing handle, knot i+1's leading handle and knot i+1.
func (s *Spline) Segment(i int) Segment {
	a := s.knots[i]
	b := s.knots[i+1]
	return Segment{
		P0: a.Vec(),
		P1: a.trailing().Vec(),
		P2: b.leading().Vec(),
		P3: b.Vec(),
	}
}

// Append adds a terminal knot at (x, y). The knot's handles start
// collocated with it, degenerate, ready for the user to drag out. When
// at least two knots precede the new one, the previous knot's tangent
// is retroactively smoothed so the curve bends through it. Returns the
// new knot; the point to be dragged (trailing handle in natural mode,
// leading in classical) is made active.
func (s *Spline) Append(x, y float64) *Knot {
	if len(s.knots) >= 2 {
		s.smoothPrevious()
	}

	k := s.newKnot(x, y)
	k.Handle1 = s.newHandle(k, Slot1, x, y)
	if s.mode == ModeNatural {
		k.Handle2 = s.newHandle(k, Slot2, x, y)
	}
	s.knots = append(s.knots, k)

	if s.mode == ModeNatural {
		s.SetActive(k.Handle2)
	} else {
		s.SetActive(k.Handle1)
	}
	return k
}

// smoothPrevious derives the outgoing tangent of the current last knot
// from its existing handle, scaled by the smoothing factor and mirrored
// through the knot.
func (s *Spline) smoothPrevious() {
	prev := s.knots[len(s.knots)-1]
	pv := prev.Vec()

	if s.mode == ModeNatural {
		h := prev.trailing().Vec()
		prev.Handle1.SetPos(pv.X-s.smooth*(h.X-pv.X), pv.Y-s.smooth*(h.Y-pv.Y))
		return
	}

	h := prev.Handle1.Vec()
	x := pv.X - s.smooth*(h.X-pv.X)
	y := pv.Y - s.smooth*(h.Y-pv.Y)
	if prev.Handle2 == nil {
		prev.Handle2 = s.newHandle(prev, Slot2, x, y)
	} else {
		prev.Handle2.SetPos(x, y)
	}
}

// Remove deletes a knot from the sequence. A knot that was created by
// subdivision and sits between two neighbours is removed by inverting
// the de Casteljau construction, re-fusing the two adjacent segments
// into the single cubic that existed before the subdivision. When the
// ratio between the knot's handle distances is degenerate the fusion
// is skipped and the neighbouring handles stay put (the curve may
// develop a kink there). Returns false if the knot is not part of the
// spline.
func (s *Spline) Remove(k *Knot) bool {
	idx := -1
	for i, cand := range s.knots {
		if cand == k {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	if k.FromSubdivision && idx > 0 && idx < len(s.knots)-1 {
		s.fuseAround(idx)
	}

	s.knots = append(s.knots[:idx], s.knots[idx+1:]...)

	if s.active != nil && k.owns(s.active) {
		s.SetActive(nil)
	}
	if s.mode == ModeClassical {
		s.enforceHandleRule()
	}
	return true
}

// fuseAround inverts the subdivision that created knot idx: with
// k = |H2-K| / |H1-K| the original interior controls are
//
//	P1' = (1+k)*P1 - k*P0
//	P2' = ((1+k)*P2 - P3) / k
//
// written in place into the previous knot's trailing handle and the
// next knot's leading handle.
func (s *Spline) fuseAround(idx int) {
	knot := s.knots[idx]
	if knot.Handle2 == nil {
		return
	}
	kv := knot.Vec()
	d1 := knot.Handle1.Vec().Distance(kv)
	d2 := knot.Handle2.Vec().Distance(kv)
	if d1 == 0 {
		return
	}
	ratio := d2 / d1
	if ratio == 0 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return
	}

	prev := s.knots[idx-1]
	next := s.knots[idx+1]
	p0 := prev.Vec()
	p1 := prev.trailing()
	p2 := next.leading()
	p3 := next.Vec()
	p1v := p1.Vec()
	p2v := p2.Vec()

	p1.SetPos((1+ratio)*p1v.X-ratio*p0.X, (1+ratio)*p1v.Y-ratio*p0.Y)
	p2.SetPos(((1+ratio)*p2v.X-p3.X)/ratio, ((1+ratio)*p2v.Y-p3.Y)/ratio)
}

// SubdivideAt splits segment i at parameter t with de Casteljau's
// construction, inserting a new knot on the curve without changing its
// shape. The segment's end knots keep their identity; only their
// interior handle positions are rewritten in place. The new knot is
// flagged FromSubdivision, made active and returned.
func (s *Spline) SubdivideAt(i int, t float64) *Knot {
	start := s.knots[i]
	end := s.knots[i+1]
	seg := s.Segment(i)
	c := seg.split(t)

	k := s.newKnot(c.P9.X, c.P9.Y)
	k.FromSubdivision = true
	k.Handle1 = s.newHandle(k, Slot1, c.P7.X, c.P7.Y)
	k.Handle2 = s.newHandle(k, Slot2, c.P8.X, c.P8.Y)

	start.trailing().SetPos(c.P4.X, c.P4.Y)
	end.leading().SetPos(c.P6.X, c.P6.Y)

	s.knots = append(s.knots, nil)
	copy(s.knots[i+2:], s.knots[i+1:])
	s.knots[i+1] = k

	s.SetActive(&k.Point)
	return k
}

// enforceHandleRule re-establishes the classical-mode handle
// cardinality after a structural edit: the first knot owns exactly one
// handle (its former trailing handle if it had one), the last knot
// drops its trailing handle.
func (s *Spline) enforceHandleRule() {
	if len(s.knots) == 0 {
		return
	}

	first := s.knots[0]
	if first.Handle2 != nil {
		first.Handle2.Slot = Slot1
		if s.active == first.Handle1 {
			s.active = nil
		}
		first.Handle1 = first.Handle2
		first.Handle2 = nil
	}

	last := s.knots[len(s.knots)-1]
	if last.Handle2 != nil {
		if s.active == last.Handle2 {
			s.active = nil
		}
		last.Handle2 = nil
	}
}

// Reset clears the spline. The ID allocator keeps running so points
// from before the reset can never be confused with new ones.
func (s *Spline) Reset() {
	s.knots = nil
	s.active = nil
}
