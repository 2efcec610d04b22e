// Engine ties the spline, the tangent constraint and the undo history
// together behind the pointer/keyboard command surface the hosting
// program drives. Everything here is synchronous: each command runs to
// completion, and a snapshot is considered only after an event settles
// (pointer release, deletion, import).

package spline

import (
	"encoding/json"
	"hash/fnv"

	"github.com/ha1tch/spline-toolkit/pkg/history"
)

// Options configures an editing engine.
type Options struct {
	Mode              Mode
	HistorySize       int     // undo depth
	MaxHitDistance    float64 // pixel threshold for hit tests
	SmoothFactor      float64 // retroactive tangent scale on append
	ConstrainTangents bool    // mirror the opposite handle while dragging
}

// DefaultOptions returns the engine defaults.
func DefaultOptions() Options {
	return Options{
		Mode:              ModeNatural,
		HistorySize:       history.DefaultLimit,
		MaxHitDistance:    30,
		SmoothFactor:      0.3,
		ConstrainTangents: true,
	}
}

// Engine is a single editing session over one spline.
type Engine struct {
	spline *Spline
	hist   *history.History[[]KnotRecord]
	opts   Options

	dragging bool
	pencil   bool // the dragged point belongs to a knot created by this press
}

// NewEngine returns an engine with an empty spline and the empty state
// already recorded, so the first edit can be undone.
func NewEngine(opts Options) *Engine {
	e := &Engine{
		spline: New(opts.Mode, opts.SmoothFactor),
		opts:   opts,
	}
	e.hist = history.New[[]KnotRecord](splineSubject{e.spline}, opts.HistorySize)
	e.hist.Push()
	return e
}

// Spline exposes the engine's spline for rendering and sampling.
func (e *Engine) Spline() *Spline {
	return e.spline
}

// splineSubject adapts a Spline to the history's Subject interface.
type splineSubject struct {
	s *Spline
}

func (ss splineSubject) CurrentState() []KnotRecord {
	return ss.s.Export()
}

func (ss splineSubject) StateHash() uint64 {
	return HashRecords(ss.s.Export())
}

func (ss splineSubject) ApplyState(recs []KnotRecord) {
	ss.s.Import(recs)
}

// HashRecords computes a stable hash of an exported state. The JSON
// encoding is deterministic (struct fields marshal in declaration
// order), so identical geometry always hashes identically.
func HashRecords(recs []KnotRecord) uint64 {
	data, err := json.Marshal(recs)
	if err != nil {
		return 0
	}
	h := fnv.New64a()
	h.Write(data)
	return h.Sum64()
}

// PointerDown begins an interaction at a canvas coordinate (already
// clamped to the drawing surface by the caller). In order: an existing
// knot or handle under the pointer starts a drag of that point; a spot
// on the curve subdivides the segment there and starts dragging the
// new knot; empty space appends a knot and starts the pencil drag of
// its free handle.
func (e *Engine) PointerDown(x, y float64) {
	if p, ok := e.spline.NearestPoint(x, y, e.opts.MaxHitDistance); ok {
		e.spline.SetActive(p)
		e.dragging = true
		e.pencil = false
		return
	}

	if hit, ok := e.spline.ProjectOnCurve(x, y, e.opts.MaxHitDistance); ok {
		e.spline.SubdivideAt(hit.Segment, hit.T)
		e.dragging = true
		e.pencil = false
		return
	}

	e.spline.Append(x, y)
	e.dragging = true
	e.pencil = true
}

// PointerMove drags the active point. Rate limiting of move events is
// the caller's job; the engine applies every move it is given.
func (e *Engine) PointerMove(x, y float64) {
	if !e.dragging {
		return
	}
	e.spline.DragPoint(e.spline.Active(), x, y, e.opts.ConstrainTangents, e.pencil)
}

// PointerUp ends the drag and records a snapshot if the state changed.
func (e *Engine) PointerUp(x, y float64) {
	if !e.dragging {
		return
	}
	e.dragging = false
	e.pencil = false
	e.hist.PushIfChanged()
}

// DeleteAt removes the knot under (x, y), if any, and records a
// snapshot. Handles cannot be deleted on their own; a hit on a handle
// deletes nothing.
func (e *Engine) DeleteAt(x, y float64) bool {
	p, ok := e.spline.NearestPoint(x, y, e.opts.MaxHitDistance)
	if !ok || p.Kind != KindKnot {
		return false
	}
	k := e.spline.KnotByID(p.ID)
	if k == nil || !e.spline.Remove(k) {
		return false
	}
	e.hist.PushIfChanged()
	return true
}

// DeleteActive removes the active knot, if the active point is one.
func (e *Engine) DeleteActive() bool {
	p := e.spline.Active()
	if p == nil || p.Kind != KindKnot {
		return false
	}
	k := e.spline.KnotByID(p.ID)
	if k == nil || !e.spline.Remove(k) {
		return false
	}
	e.hist.PushIfChanged()
	return true
}

// Undo restores the previous snapshot. Clamped at the bottom.
func (e *Engine) Undo() bool {
	ok := e.hist.Undo()
	if ok {
		e.dragging = false
		e.pencil = false
	}
	return ok
}

// Redo restores the next snapshot. Clamped at the top.
func (e *Engine) Redo() bool {
	ok := e.hist.Redo()
	if ok {
		e.dragging = false
		e.pencil = false
	}
	return ok
}

// Points exports the current state.
func (e *Engine) Points() []KnotRecord {
	return e.spline.Export()
}

// SetPoints replaces the spline with the given records and records a
// snapshot if the state changed.
func (e *Engine) SetPoints(recs []KnotRecord) {
	e.spline.Import(recs)
	e.dragging = false
	e.pencil = false
	e.hist.PushIfChanged()
}

// Reset clears the spline and the history, then records the empty
// state as the new baseline.
func (e *Engine) Reset() {
	e.spline.Reset()
	e.dragging = false
	e.pencil = false
	e.hist.Reset()
	e.hist.Push()
}

// RegularlyPlacedPoints samples count points at uniform arc-length
// spacing along the spline.
func (e *Engine) RegularlyPlacedPoints(count int) []Vec {
	return e.spline.RegularlyPlacedPoints(count)
}
