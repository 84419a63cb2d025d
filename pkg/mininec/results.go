package mininec

import (
	"fmt"

	"github.com/edp1096/toy-mininec/pkg/engine"
)

type StepSequence = engine.StepSequence

// SolveTiming is the elapsed time of matrix fill and solve in microseconds.
type SolveTiming struct {
	FillMatrixUs  int64
	SolveMatrixUs int64
}

type Source struct {
	Voltage   complex128
	Current   complex128
	Impedance complex128
	Power     float64 // W
}

type PulseCurrent struct {
	Pulse   int // -1 at unconnected end points
	Current complex128
}

// FarFieldDbi is the gain in one direction. Angles in degrees, gains in dBi.
type FarFieldDbi struct {
	Zenith     float64
	Azimuth    float64
	Horizontal float64
	Vertical   float64
	Total      float64
}

func toComplex(p engine.Pair) complex128 { return complex(p.Re, p.Im) }

// LoadImpedances at the current frequency, in load order.
func (s *Session) LoadImpedances() ([]complex128, error) {
	e := s.lock()
	defer s.mu.Unlock()

	pairs, err := e.LoadImpedances()
	if err != nil {
		return nil, engineError(err)
	}
	result := make([]complex128, len(pairs))
	for i, p := range pairs {
		result[i] = toComplex(p)
	}
	return result, nil
}

func (s *Session) SourceCurrents() ([]Source, error) {
	e := s.lock()
	defer s.mu.Unlock()

	raw, err := e.SourceCurrents()
	if err != nil {
		return nil, engineError(err)
	}
	result := make([]Source, len(raw))
	for i, r := range raw {
		result[i] = Source{
			Voltage:   toComplex(r.Voltage),
			Current:   toComplex(r.Current),
			Impedance: toComplex(r.Impedance),
			Power:     r.Power,
		}
	}
	return result, nil
}

// PulseCurrents of a 1-based wire, one entry per segment point.
func (s *Session) PulseCurrents(wire int) ([]PulseCurrent, error) {
	e := s.lock()
	defer s.mu.Unlock()

	if wire < 1 || wire > e.NoWires() {
		return nil, newError(RangeError, 0, fmt.Sprintf("wire must be in range 1..%d", e.NoWires()))
	}
	raw, err := e.PulseCurrents(WireToIndex(wire))
	if err != nil {
		return nil, engineError(err)
	}
	result := make([]PulseCurrent, len(raw))
	for i, r := range raw {
		result[i] = PulseCurrent{Pulse: r.Pulse, Current: toComplex(r.Current)}
	}
	return result, nil
}

func (s *Session) FarFieldDbi(zenith, azimuth StepSequence) ([]FarFieldDbi, error) {
	e := s.lock()
	defer s.mu.Unlock()

	raw, err := e.FarFieldDbi(zenith, azimuth)
	if err != nil {
		return nil, engineError(err)
	}
	result := make([]FarFieldDbi, len(raw))
	for i, r := range raw {
		result[i] = FarFieldDbi(r)
	}
	return result, nil
}
