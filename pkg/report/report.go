// Package report presents solved antennas: terminal tables, gain and
// current plots and a PDF summary.
package report

import (
	"fmt"
	"math/cmplx"

	"github.com/edp1096/toy-mininec/pkg/mininec"
)

type WireCurrents struct {
	Wire     int // 1-based
	Currents []mininec.PulseCurrent
}

// SweepPoint is one solved frequency of a sweep.
type SweepPoint struct {
	Frequency float64 // MHz
	Impedance complex128
	FillUs    int64
	SolveUs   int64
}

type Report struct {
	Name       string
	Notes      string
	Frequency  float64 // MHz
	Wavelength float64 // m
	NoWires    int
	NoPulses   int
	Timing     mininec.SolveTiming
	Sources    []mininec.Source
	Loads      []complex128
	Currents   []WireCurrents
	Pattern    []mininec.FarFieldDbi
	Sweep      []SweepPoint
}

// Collect reads everything worth reporting from a solved session.
func Collect(s *mininec.Session, name string, zenith, azimuth mininec.StepSequence) (*Report, error) {
	r := &Report{
		Name:       name,
		Frequency:  s.Frequency(),
		Wavelength: s.Wavelength(),
		NoWires:    s.NoWires(),
		NoPulses:   s.NoPulses(),
		Timing:     s.SolveTiming(),
	}

	var err error
	if r.Sources, err = s.SourceCurrents(); err != nil {
		return nil, fmt.Errorf("source currents: %w", err)
	}
	if r.Loads, err = s.LoadImpedances(); err != nil {
		return nil, fmt.Errorf("load impedances: %w", err)
	}
	for wire := 1; wire <= r.NoWires; wire++ {
		currents, err := s.PulseCurrents(wire)
		if err != nil {
			return nil, fmt.Errorf("pulse currents: %w", err)
		}
		r.Currents = append(r.Currents, WireCurrents{Wire: wire, Currents: currents})
	}
	if r.Pattern, err = s.FarFieldDbi(zenith, azimuth); err != nil {
		return nil, fmt.Errorf("far field: %w", err)
	}
	return r, nil
}

// MaxGain returns the direction of the highest total gain. ok is false for
// an empty pattern.
func (r *Report) MaxGain() (mininec.FarFieldDbi, bool) {
	if len(r.Pattern) == 0 {
		return mininec.FarFieldDbi{}, false
	}
	best := r.Pattern[0]
	for _, p := range r.Pattern[1:] {
		if p.Total > best.Total {
			best = p
		}
	}
	return best, true
}

// SWR of the first source against reference impedance z0.
func (r *Report) SWR(z0 float64) float64 {
	if len(r.Sources) == 0 {
		return 0
	}
	z := r.Sources[0].Impedance
	gamma := cmplx.Abs((z - complex(z0, 0)) / (z + complex(z0, 0)))
	if gamma >= 1 {
		return 0
	}
	return (1 + gamma) / (1 - gamma)
}
