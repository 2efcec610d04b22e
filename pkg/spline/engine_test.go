package spline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestEngine() *Engine {
	opts := DefaultOptions()
	opts.MaxHitDistance = 10
	return NewEngine(opts)
}

func TestPointerDownOnEmptyAppends(t *testing.T) {
	e := newTestEngine()

	e.PointerDown(100, 100)
	if e.Spline().Len() != 1 {
		t.Fatalf("Len = %d, want 1", e.Spline().Len())
	}

	// Pencil drag shapes the tangent symmetrically
	e.PointerMove(130, 100)
	k := e.Spline().Knots()[0]
	if k.Handle2.X != 130 || k.Handle1.X != 70 {
		t.Errorf("Pencil drag handles at %d and %d, want 130 and 70", k.Handle2.X, k.Handle1.X)
	}
	e.PointerUp(130, 100)
}

func TestPointerDownNearKnotDrags(t *testing.T) {
	e := newTestEngine()
	e.PointerDown(100, 100)
	e.PointerUp(100, 100)

	// Click within the threshold of the knot and drag it
	e.PointerDown(103, 100)
	if e.Spline().Len() != 1 {
		t.Fatalf("Click near a knot should not append, Len = %d", e.Spline().Len())
	}
	e.PointerMove(150, 150)
	e.PointerUp(150, 150)

	k := e.Spline().Knots()[0]
	if k.X != 150 || k.Y != 150 {
		t.Errorf("Knot at (%d, %d), want (150, 150)", k.X, k.Y)
	}
}

func TestPointerDownOnCurveSubdivides(t *testing.T) {
	e := newTestEngine()
	e.SetPoints([]KnotRecord{
		{X: 0, Y: 0, HP1: HandleRecord{X: 0, Y: 0}, HP2: hp(100, 0)},
		{X: 300, Y: 0, HP1: HandleRecord{X: 200, Y: 0}},
	})

	// Mid-curve, away from both knots, within the curve threshold
	e.PointerDown(150, 3)
	e.PointerUp(150, 3)

	if e.Spline().Len() != 3 {
		t.Fatalf("Len = %d, want 3 after insert-on-curve", e.Spline().Len())
	}
	mid := e.Spline().Knots()[1]
	if !mid.FromSubdivision {
		t.Error("Inserted knot should be flagged FromSubdivision")
	}
}

func TestDragReturnToOriginDedups(t *testing.T) {
	e := newTestEngine()
	e.PointerDown(100, 100)
	e.PointerUp(100, 100)

	// Drag the knot away and back to where it started: the exported
	// state is unchanged, so no snapshot may be pushed.
	e.PointerDown(100, 100)
	e.PointerMove(200, 200)
	e.PointerMove(100, 100)
	e.PointerUp(100, 100)

	if !e.Undo() {
		t.Fatal("Undo failed")
	}
	// One undo steps over the no-op drag straight back to empty
	if e.Spline().Len() != 0 {
		t.Errorf("Len = %d, want 0 after single undo", e.Spline().Len())
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	e := newTestEngine()
	e.PointerDown(100, 100)
	e.PointerUp(100, 100)
	e.PointerDown(200, 100)
	e.PointerUp(200, 100)

	before := e.Points()

	if !e.Undo() {
		t.Fatal("Undo failed")
	}
	if e.Spline().Len() != 1 {
		t.Errorf("Len = %d, want 1 after undo", e.Spline().Len())
	}
	if !e.Redo() {
		t.Fatal("Redo failed")
	}
	if diff := cmp.Diff(before, e.Points()); diff != "" {
		t.Errorf("Redo state mismatch (-want +got):\n%s", diff)
	}
}

func TestUndoPastBottomIsNoop(t *testing.T) {
	e := newTestEngine()
	if e.Undo() {
		t.Error("Undo with only the baseline snapshot should be a no-op")
	}
	e.PointerDown(100, 100)
	e.PointerUp(100, 100)
	if !e.Undo() {
		t.Fatal("Undo failed")
	}
	if e.Undo() {
		t.Error("Second undo should hit the clamp")
	}
}

func TestSetPointsRoundTrip(t *testing.T) {
	recs := []KnotRecord{
		{X: 0, Y: 0, HP1: HandleRecord{X: 0, Y: -10}, HP2: hp(30, 40)},
		{X: 100, Y: 0, HP1: HandleRecord{X: 70, Y: 40}},
	}
	e := newTestEngine()
	e.SetPoints(recs)

	if diff := cmp.Diff(recs, e.Points()); diff != "" {
		t.Errorf("Round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteAtRemovesKnotOnly(t *testing.T) {
	e := newTestEngine()
	e.SetPoints([]KnotRecord{
		{X: 100, Y: 100, HP1: HandleRecord{X: 60, Y: 100}, HP2: hp(140, 100)},
		{X: 300, Y: 100, HP1: HandleRecord{X: 260, Y: 100}},
	})

	// A hit on a handle deletes nothing
	if e.DeleteAt(60, 100) {
		t.Error("DeleteAt on a handle should be refused")
	}
	if !e.DeleteAt(101, 100) {
		t.Fatal("DeleteAt on a knot failed")
	}
	if e.Spline().Len() != 1 {
		t.Errorf("Len = %d, want 1", e.Spline().Len())
	}
}

func TestResetClearsHistory(t *testing.T) {
	e := newTestEngine()
	e.PointerDown(100, 100)
	e.PointerUp(100, 100)

	e.Reset()
	if e.Spline().Len() != 0 {
		t.Errorf("Len = %d, want 0", e.Spline().Len())
	}
	if e.Undo() {
		t.Error("Undo after reset should be a no-op")
	}
}

func TestHashRecordsStable(t *testing.T) {
	recs := []KnotRecord{
		{X: 1, Y: 2, HP1: HandleRecord{X: 3, Y: 4}, HP2: hp(5, 6)},
	}
	same := []KnotRecord{
		{X: 1, Y: 2, HP1: HandleRecord{X: 3, Y: 4}, HP2: hp(5, 6)},
	}
	if HashRecords(recs) != HashRecords(same) {
		t.Error("Identical states must hash identically")
	}
	same[0].X = 7
	if HashRecords(recs) == HashRecords(same) {
		t.Error("Different states should hash differently")
	}
}
