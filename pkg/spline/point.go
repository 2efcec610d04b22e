// Point and Knot model for the spline editor.
// Coordinates are kept as integers and rounded on every assignment;
// curve math happens in float64 via the Vec type.

package spline

import "math"

// PointKind distinguishes anchors from tangent handles.
type PointKind int

const (
	KindKnot   PointKind = iota // anchor point on the curve
	KindHandle                  // tangent control point owned by a knot
)

// HandleSlot identifies which of a knot's two handle slots a handle
// occupies.
type HandleSlot int

const (
	SlotNone HandleSlot = iota
	Slot1               // leading handle (control entering the knot)
	Slot2               // trailing handle (control leaving the knot)
)

// Point is a positioned control element with a stable identity.
// IDs are allocated by the owning Spline, are monotonic within a
// session and are never reused, so they survive cloning and are the
// sole basis for equality across edits.
type Point struct {
	ID     int
	X, Y   int
	Active bool

	Kind  PointKind
	Owner int        // ID of the owning knot when Kind is KindHandle, else -1
	Slot  HandleSlot // SlotNone for knots
}

// SetPos assigns the point's position, rounding to the nearest integer.
func (p *Point) SetPos(x, y float64) {
	p.X = int(math.Round(x))
	p.Y = int(math.Round(y))
}

// Vec returns the position as a float64 coordinate.
func (p *Point) Vec() Vec {
	return Vec{float64(p.X), float64(p.Y)}
}

// Distance returns the euclidean distance from the point to (x, y).
func (p *Point) Distance(x, y float64) float64 {
	return math.Hypot(float64(p.X)-x, float64(p.Y)-y)
}

// Knot is an anchor point on the spline together with its tangent
// handles. Handle1 always exists; Handle2 may be nil in classical mode
// (first/last knots own a single handle there). FromSubdivision marks
// knots created by clicking on the curve; only those are removed with
// the segment-fusing inverse of de Casteljau.
type Knot struct {
	Point
	Handle1         *Point
	Handle2         *Point
	FromSubdivision bool
}

// leading returns the control point entering the knot.
func (k *Knot) leading() *Point {
	return k.Handle1
}

// trailing returns the control point leaving the knot: Handle2 when
// present, else Handle1. Segment i uses knot[i].trailing() and
// knot[i+1].leading() as its interior controls.
func (k *Knot) trailing() *Point {
	if k.Handle2 != nil {
		return k.Handle2
	}
	return k.Handle1
}

// owns reports whether p is the knot itself or one of its handles.
func (k *Knot) owns(p *Point) bool {
	if p == nil {
		return false
	}
	if p.ID == k.ID {
		return true
	}
	return p.Kind == KindHandle && p.Owner == k.ID
}
