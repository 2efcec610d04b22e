// Package history provides a bounded undo/redo stack over full-state
// snapshots, with duplicate suppression keyed on a caller-supplied
// state hash.
package history

// Subject gives the history access to the document it tracks: taking
// a snapshot, hashing the current state for deduplication, and
// restoring a snapshot.
type Subject[S any] interface {
	CurrentState() S
	StateHash() uint64
	ApplyState(S)
}

// DefaultLimit is the undo depth used when no limit is configured.
const DefaultLimit = 50

type entry[S any] struct {
	state S
	hash  uint64
}

// History is a bounded ring of snapshots with a cursor. Pushing while
// the cursor sits before the last entry discards the redo branch;
// pushing at capacity evicts the oldest snapshot. Undo and redo move
// the cursor by one, clamped at the ends, and apply the snapshot at
// the new cursor.
type History[S any] struct {
	subject Subject[S]
	limit   int

	entries []entry[S]
	cursor  int
	last    uint64
	hasLast bool
}

// New returns an empty history over subject. A limit below 1 falls
// back to DefaultLimit.
func New[S any](subject Subject[S], limit int) *History[S] {
	if limit < 1 {
		limit = DefaultLimit
	}
	return &History[S]{subject: subject, limit: limit, cursor: -1}
}

// Len returns the number of stored snapshots.
func (h *History[S]) Len() int {
	return len(h.entries)
}

// CanUndo reports whether an undo would change state.
func (h *History[S]) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether a redo would change state.
func (h *History[S]) CanRedo() bool {
	return h.cursor >= 0 && h.cursor < len(h.entries)-1
}

// Push unconditionally records the subject's current state.
func (h *History[S]) Push() {
	h.push(h.subject.CurrentState(), h.subject.StateHash())
}

// PushIfChanged records the current state only if its hash differs
// from the hash at the last push, coalescing edits that ended where
// they started. Reports whether a snapshot was pushed.
func (h *History[S]) PushIfChanged() bool {
	hash := h.subject.StateHash()
	if h.hasLast && hash == h.last {
		return false
	}
	h.push(h.subject.CurrentState(), hash)
	return true
}

func (h *History[S]) push(state S, hash uint64) {
	if h.cursor < len(h.entries)-1 {
		h.entries = h.entries[:h.cursor+1]
	}
	h.entries = append(h.entries, entry[S]{state: state, hash: hash})
	if len(h.entries) > h.limit {
		h.entries = h.entries[1:]
	}
	h.cursor = len(h.entries) - 1
	h.last = hash
	h.hasLast = true
}

// Undo steps the cursor back one snapshot and applies it. A no-op at
// the bottom of the stack or on an empty history.
func (h *History[S]) Undo() bool {
	if !h.CanUndo() {
		return false
	}
	h.cursor--
	h.apply()
	return true
}

// Redo steps the cursor forward one snapshot and applies it. A no-op
// at the top of the stack.
func (h *History[S]) Redo() bool {
	if !h.CanRedo() {
		return false
	}
	h.cursor++
	h.apply()
	return true
}

func (h *History[S]) apply() {
	e := h.entries[h.cursor]
	h.subject.ApplyState(e.state)
	h.last = e.hash
	h.hasLast = true
}

// Reset discards all snapshots and the dedup hash.
func (h *History[S]) Reset() {
	h.entries = nil
	h.cursor = -1
	h.last = 0
	h.hasLast = false
}
