// Package structure holds the wire geometry of an antenna and assigns the
// current pulses the solver works with.
//
// A wire of n segments has n+1 points. Every interior point carries a pulse.
// An end point carries a pulse when it touches the ground plane or an end
// point of an earlier wire; otherwise it is unconnected (-1).
package structure

import (
	"fmt"
	"math"
)

const (
	Unconnected = -1

	// Points closer than this fraction of the shortest adjacent segment are joined.
	junctionTolerance = 1e-3
)

type Pulse struct {
	Index    int
	Wire     int // 0-based
	Position Point

	// Current elements carrying the pulse current. A grounded pulse only owns
	// its half above ground, the image half is implied.
	Halves []Segment

	// Extent is the vector from Minus to Plus along the pulse, image half included.
	Extent      Point
	Minus, Plus Point

	// Charge segments on either side. nil on the ground side of a grounded pulse.
	Backward, Forward *Segment

	Grounded bool
}

type Structure struct {
	wires      []Wire
	pulseMap   [][]int
	signMap    [][]float64 // +1 where the pulse current flows along the wire
	pulses     []Pulse
	withGround bool
}

func New(withGround bool) *Structure {
	return &Structure{withGround: withGround}
}

func (s *Structure) HasGround() bool { return s.withGround }

// SetWires validates the wires against the ground plane and assigns pulses.
// On error the structure is left empty.
func (s *Structure) SetWires(wires []Wire) error {
	s.wires, s.pulseMap, s.signMap, s.pulses = nil, nil, nil, nil

	if s.withGround {
		for i, w := range wires {
			tol := junctionTolerance * w.SegmentLength()
			if w.Start.Z < -tol || w.End.Z < -tol {
				return fmt.Errorf("wire %d: wire extends below ground", i+1)
			}
			if math.Abs(w.Start.Z) <= tol && math.Abs(w.End.Z) <= tol {
				return fmt.Errorf("wire %d: wire lies in the ground plane", i+1)
			}
		}
	}

	s.wires = append([]Wire(nil), wires...)
	s.assignPulses()
	return nil
}

func (s *Structure) assignPulses() {
	s.pulseMap = make([][]int, len(s.wires))
	s.signMap = make([][]float64, len(s.wires))
	for w, wire := range s.wires {
		m := make([]int, wire.Segments+1)
		signs := make([]float64, wire.Segments+1)
		for i := range m {
			m[i] = Unconnected
			signs[i] = 1
		}
		s.pulseMap[w] = m
		s.signMap[w] = signs

		s.assignEnd(w, 0)
		for i := 1; i < wire.Segments; i++ {
			s.addInterior(w, i)
		}
		s.assignEnd(w, wire.Segments)
	}
}

func (s *Structure) assignEnd(w, idx int) {
	wire := s.wires[w]
	if s.touchesGround(wire, idx) {
		s.addGrounded(w, idx)
		return
	}
	if v, vIdx, ok := s.findJunction(w, idx); ok {
		s.addJunction(v, vIdx, w, idx)
	}
}

func (s *Structure) touchesGround(wire Wire, idx int) bool {
	return s.withGround && math.Abs(wire.PointAt(idx).Z) <= junctionTolerance*wire.SegmentLength()
}

// findJunction looks for an end point of an earlier wire coinciding with end point idx of wire w.
func (s *Structure) findJunction(w, idx int) (int, int, bool) {
	p := s.wires[w].PointAt(idx)
	for v := 0; v < w; v++ {
		other := s.wires[v]
		tol := junctionTolerance * math.Min(other.SegmentLength(), s.wires[w].SegmentLength())
		for _, vIdx := range []int{0, other.Segments} {
			if p.Distance(other.PointAt(vIdx)) <= tol {
				return v, vIdx, true
			}
		}
	}
	return 0, 0, false
}

func (s *Structure) newPulse(w, idx int, in, out Segment) *Pulse {
	s.pulses = append(s.pulses, Pulse{
		Index:    len(s.pulses),
		Wire:     w,
		Position: s.wires[w].PointAt(idx),
		Minus:    in.From,
		Plus:     out.To,
		Extent:   in.Vector().Add(out.Vector()),
	})
	s.pulseMap[w][idx] = len(s.pulses) - 1
	return &s.pulses[len(s.pulses)-1]
}

func (s *Structure) addInterior(w, i int) {
	wire := s.wires[w]
	backward := wire.SegmentAt(i - 1)
	forward := wire.SegmentAt(i)
	in := Segment{From: backward.Mid(), To: wire.PointAt(i), Radius: wire.Radius}
	out := Segment{From: wire.PointAt(i), To: forward.Mid(), Radius: wire.Radius}

	p := s.newPulse(w, i, in, out)
	p.Halves = []Segment{in, out}
	p.Backward, p.Forward = &backward, &forward
}

func (s *Structure) addGrounded(w, idx int) {
	wire := s.wires[w]
	seg := wire.endSegment(idx)

	var p *Pulse
	if idx == 0 {
		out := wire.halfOutOf(0)
		image := out.Mirror().Reverse()
		p = s.newPulse(w, idx, image, out)
		p.Halves = []Segment{out}
		p.Forward = &seg
	} else {
		in := wire.halfInto(idx)
		image := in.Mirror().Reverse()
		p = s.newPulse(w, idx, in, image)
		p.Halves = []Segment{in}
		p.Backward = &seg
	}
	p.Grounded = true
}

// addJunction joins end point vIdx of earlier wire v with end point idx of wire w.
// At the start of w the current flows from v into w, at its end from w into v.
func (s *Structure) addJunction(v, vIdx, w, idx int) {
	other, wire := s.wires[v], s.wires[w]

	var in, out Segment
	var backward, forward Segment
	if idx == 0 {
		in, out = other.halfInto(vIdx), wire.halfOutOf(idx)
		backward, forward = other.endSegment(vIdx), wire.endSegment(idx)
	} else {
		in, out = wire.halfInto(idx), other.halfOutOf(vIdx)
		backward, forward = wire.endSegment(idx), other.endSegment(vIdx)
	}

	p := s.newPulse(w, idx, in, out)
	p.Halves = []Segment{in, out}
	p.Backward, p.Forward = &backward, &forward

	if s.pulseMap[v][vIdx] == Unconnected {
		s.pulseMap[v][vIdx] = p.Index
		if (idx == 0) == (vIdx == 0) {
			s.signMap[v][vIdx] = -1
		}
	}
}

func (s *Structure) NoWires() int { return len(s.wires) }

func (s *Structure) NoPulses() int { return len(s.pulses) }

func (s *Structure) Wires() []Wire { return s.wires }

func (s *Structure) Pulses() []Pulse { return s.pulses }

// SegmentLength of a 0-based wire, 0 when out of range.
func (s *Structure) SegmentLength(wire int) float64 {
	if wire < 0 || wire >= len(s.wires) {
		return 0
	}
	return s.wires[wire].SegmentLength()
}

// PulseMap returns the pulse of every point of a 0-based wire, -1 for
// unconnected end points. nil when the wire does not exist.
func (s *Structure) PulseMap(wire int) []int {
	if wire < 0 || wire >= len(s.pulseMap) {
		return nil
	}
	return append([]int(nil), s.pulseMap[wire]...)
}

// PulseSigns returns +1 or -1 for every point of a 0-based wire: the sign
// turning the pulse current into a current flowing from the wire start to
// its end.
func (s *Structure) PulseSigns(wire int) []float64 {
	if wire < 0 || wire >= len(s.signMap) {
		return nil
	}
	return append([]float64(nil), s.signMap[wire]...)
}
