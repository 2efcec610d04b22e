// Tangent mirroring. Dragging one handle of a knot keeps the opposite
// handle collinear on the far side of the knot, preserving C1
// continuity across it. Dragging the knot itself translates both
// handles rigidly.

package spline

// DragPoint moves p to (x, y) and applies the tangent constraint.
//
// For a handle, the opposite handle (if any, and if constrain is set)
// is updated under one of two policies: while the knot is still in its
// creation drag (pencil), the opposite handle is the exact reflection
// of the dragged position through the knot; once released, the
// opposite handle keeps its prior distance from the knot and only its
// direction flips opposite the drag. Degenerate distances (prior or
// dragged distance of zero) skip the mirror update, there being no
// safe direction to derive.
func (s *Spline) DragPoint(p *Point, x, y float64, constrain, pencil bool) {
	if p == nil {
		return
	}

	if p.Kind == KindKnot {
		s.dragKnot(p, x, y)
		return
	}

	p.SetPos(x, y)
	if !constrain {
		return
	}

	knot := s.KnotByID(p.Owner)
	if knot == nil {
		return
	}
	var opposite *Point
	if p.Slot == Slot1 {
		opposite = knot.Handle2
	} else {
		opposite = knot.Handle1
	}
	if opposite == nil {
		return
	}

	kv := knot.Vec()
	if pencil {
		opposite.SetPos(2*kv.X-x, 2*kv.Y-y)
		return
	}

	oldDist := opposite.Vec().Distance(kv)
	newDist := Vec{x, y}.Distance(kv)
	if oldDist == 0 || newDist == 0 {
		return
	}
	ratio := oldDist / newDist
	opposite.SetPos(kv.X+(kv.X-x)*ratio, kv.Y+(kv.Y-y)*ratio)
}

// dragKnot translates the knot and both of its handles by the same
// delta, preserving the handle offsets.
func (s *Spline) dragKnot(p *Point, x, y float64) {
	knot := s.KnotByID(p.ID)
	if knot == nil {
		return
	}
	before := knot.Vec()
	knot.SetPos(x, y)
	dx := float64(knot.X) - before.X
	dy := float64(knot.Y) - before.Y

	h1 := knot.Handle1.Vec()
	knot.Handle1.SetPos(h1.X+dx, h1.Y+dy)
	if knot.Handle2 != nil {
		h2 := knot.Handle2.Vec()
		knot.Handle2.SetPos(h2.X+dx, h2.Y+dy)
	}
}
