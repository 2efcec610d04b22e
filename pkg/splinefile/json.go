// Package splinefile handles the spline editor's external formats:
// the knot-record JSON interchange, the configuration surface, and
// the SVG/PNG/PDF renderers.
package splinefile

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/ha1tch/spline-toolkit/pkg/spline"
)

// jsonHandle mirrors one handle record with optional fields so missing
// coordinates can be told apart from zero.
type jsonHandle struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

type jsonKnot struct {
	X   *float64    `json:"x"`
	Y   *float64    `json:"y"`
	HP1 *jsonHandle `json:"hp1"`
	HP2 *jsonHandle `json:"hp2"`
}

// ParseJSON parses an ordered list of knot records. Records missing
// the knot position or hp1 are rejected outright rather than letting
// zero or NaN coordinates leak into the model.
func ParseJSON(data []byte) ([]spline.KnotRecord, error) {
	var raw []jsonKnot
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	recs := make([]spline.KnotRecord, 0, len(raw))
	for i, j := range raw {
		if j.X == nil || j.Y == nil {
			return nil, fmt.Errorf("knot %d: missing x/y", i)
		}
		if j.HP1 == nil || j.HP1.X == nil || j.HP1.Y == nil {
			return nil, fmt.Errorf("knot %d: missing hp1", i)
		}
		rec := spline.KnotRecord{
			X:   roundCoord(*j.X),
			Y:   roundCoord(*j.Y),
			HP1: spline.HandleRecord{X: roundCoord(*j.HP1.X), Y: roundCoord(*j.HP1.Y)},
		}
		if j.HP2 != nil {
			if j.HP2.X == nil || j.HP2.Y == nil {
				return nil, fmt.Errorf("knot %d: incomplete hp2", i)
			}
			rec.HP2 = &spline.HandleRecord{X: roundCoord(*j.HP2.X), Y: roundCoord(*j.HP2.Y)}
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func roundCoord(v float64) int {
	return int(math.Round(v))
}

// ToJSON serializes knot records, optionally indented.
func ToJSON(recs []spline.KnotRecord, pretty bool) ([]byte, error) {
	if recs == nil {
		recs = []spline.KnotRecord{}
	}
	if pretty {
		return json.MarshalIndent(recs, "", "  ")
	}
	return json.Marshal(recs)
}
