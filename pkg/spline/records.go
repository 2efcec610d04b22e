// Export/import of the spline as an ordered list of knot records.
// The record schema is the external interchange format; a snapshot of
// it is also what the undo history stores.

package spline

// HandleRecord is the exported position of one tangent handle.
type HandleRecord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// KnotRecord is the exported form of one knot. HP2 is present exactly
// when the knot currently owns a trailing handle.
type KnotRecord struct {
	X   int           `json:"x"`
	Y   int           `json:"y"`
	HP1 HandleRecord  `json:"hp1"`
	HP2 *HandleRecord `json:"hp2,omitempty"`
}

// Export returns the ordered knot records describing the spline. The
// result shares no storage with the spline; callers may keep it as an
// immutable snapshot.
func (s *Spline) Export() []KnotRecord {
	recs := make([]KnotRecord, len(s.knots))
	for i, k := range s.knots {
		recs[i] = KnotRecord{
			X:   k.X,
			Y:   k.Y,
			HP1: HandleRecord{X: k.Handle1.X, Y: k.Handle1.Y},
		}
		if k.Handle2 != nil {
			recs[i].HP2 = &HandleRecord{X: k.Handle2.X, Y: k.Handle2.Y}
		}
	}
	return recs
}

// Import replaces the spline's contents with the given records: a
// reset followed by recreating each knot with its handles set directly
// from hp1/hp2. Records are assumed well-formed; file-level validation
// lives in the splinefile package.
func (s *Spline) Import(recs []KnotRecord) {
	s.Reset()
	for _, r := range recs {
		k := s.newKnot(float64(r.X), float64(r.Y))
		k.Handle1 = s.newHandle(k, Slot1, float64(r.HP1.X), float64(r.HP1.Y))
		if r.HP2 != nil {
			k.Handle2 = s.newHandle(k, Slot2, float64(r.HP2.X), float64(r.HP2.Y))
		}
		s.knots = append(s.knots, k)
	}
}
