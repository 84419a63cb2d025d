package structure

import (
	"fmt"

	"github.com/edp1096/toy-mininec/pkg/util"
)

const (
	// WireFields is the row layout x1,y1,z1,x2,y2,z2,radius,segments.
	WireFields = 8

	MaxSegments = 10000
)

type Wire struct {
	Start    Point
	End      Point
	Radius   float64
	Segments int
}

// NewWire builds a wire from a geometry row. no is the 1-based wire number
// used in error messages.
func NewWire(no int, row []float64) (Wire, error) {
	if len(row) != WireFields {
		return Wire{}, fmt.Errorf("wire %d: expecting %d values, got %d", no, WireFields, len(row))
	}
	for _, v := range row {
		if !util.IsFiniteValue(v) {
			return Wire{}, fmt.Errorf("wire %d: all values must be finite numbers", no)
		}
	}
	if !util.IsInteger(row[7]) {
		return Wire{}, fmt.Errorf("wire %d: number of segments must be an integer", no)
	}
	if row[7] < 1 {
		return Wire{}, fmt.Errorf("wire %d: number of segments must be at least 1", no)
	}
	if row[7] > MaxSegments {
		return Wire{}, fmt.Errorf("wire %d: number of segments must be at most %d", no, MaxSegments)
	}
	if row[6] <= 0 {
		return Wire{}, fmt.Errorf("wire %d: radius must be positive", no)
	}

	w := Wire{
		Start:    Point{row[0], row[1], row[2]},
		End:      Point{row[3], row[4], row[5]},
		Radius:   row[6],
		Segments: int(row[7]),
	}
	if w.Length() == 0 {
		return Wire{}, fmt.Errorf("wire %d: start and end point coincide", no)
	}
	return w, nil
}

func (w Wire) Length() float64 { return w.Start.Distance(w.End) }

func (w Wire) SegmentLength() float64 { return w.Length() / float64(w.Segments) }

// PointAt returns point i, 0 <= i <= Segments.
func (w Wire) PointAt(i int) Point {
	t := float64(i) / float64(w.Segments)
	return w.Start.Add(w.End.Sub(w.Start).Scale(t))
}

// SegmentAt returns segment i, 0 <= i < Segments, oriented along the wire.
func (w Wire) SegmentAt(i int) Segment {
	return Segment{From: w.PointAt(i), To: w.PointAt(i + 1), Radius: w.Radius}
}

// endSegment is the segment touching end point idx (0 or Segments).
func (w Wire) endSegment(idx int) Segment {
	if idx == 0 {
		return w.SegmentAt(0)
	}
	return w.SegmentAt(w.Segments - 1)
}

// halfInto is the half segment flowing into end point idx.
func (w Wire) halfInto(idx int) Segment {
	return Segment{From: w.endSegment(idx).Mid(), To: w.PointAt(idx), Radius: w.Radius}
}

// halfOutOf is the half segment flowing away from end point idx.
func (w Wire) halfOutOf(idx int) Segment {
	return w.halfInto(idx).Reverse()
}
