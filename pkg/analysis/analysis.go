// Package analysis computes pulse currents and far-field patterns of a wire
// structure with a MININEC style thin-wire method of moments.
package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/edp1096/toy-mininec/internal/consts"
	"github.com/edp1096/toy-mininec/pkg/device"
	"github.com/edp1096/toy-mininec/pkg/structure"
	"github.com/edp1096/toy-mininec/pkg/util"
)

type Analysis interface {
	Setup(problem *Problem) error
	Execute() error
	GetResults() map[string][]float64
}

// Medium is a real ground used for far-field reflection.
type Medium struct {
	Eps          float64 // relative permittivity
	Conductivity float64 // S/m
}

// Problem is everything an analysis needs. Frequency is in Hz.
type Problem struct {
	Structure *structure.Structure
	Frequency float64
	Sources   []*device.VoltageSource
	Loads     []device.Load
	Medium    *Medium // nil: ideal ground, only used with ground
}

func (p *Problem) Wavenumber() float64 {
	return 2 * math.Pi * p.Frequency / consts.LIGHTSPEED
}

func (p *Problem) Status() *device.Status {
	pulses := p.Structure.Pulses()
	grounded := make([]bool, len(pulses))
	for i, pulse := range pulses {
		grounded[i] = pulse.Grounded
	}
	return &device.Status{Frequency: p.Frequency, Grounded: grounded}
}

type BaseAnalysis struct {
	Problem *Problem
	results map[string][]float64 // key: variable name, value: result by frequency
}

func NewBaseAnalysis() *BaseAnalysis {
	return &BaseAnalysis{results: make(map[string][]float64)}
}

func (a *BaseAnalysis) Setup(problem *Problem) error {
	if problem == nil || problem.Structure == nil || problem.Structure.NoWires() == 0 {
		return fmt.Errorf("no geometry defined")
	}
	if !(problem.Frequency > 0) || math.IsInf(problem.Frequency, 0) {
		return fmt.Errorf("frequency must be strictly positive")
	}
	a.Problem = problem
	return nil
}

// StoreResult appends one frequency point. Complex values are stored as
// NAME_RE, NAME_IM, NAME_MAG and NAME_PHASE (degrees).
func (a *BaseAnalysis) StoreResult(freq float64, solution map[string]complex128) {
	if a.results == nil {
		a.results = make(map[string][]float64)
	}

	// Same frequency twice, e.g. 1.999999e+06 == 2.000000e+06
	if freqs := a.results["FREQ"]; len(freqs) > 0 {
		last := freqs[len(freqs)-1]
		if freq == last || util.FormatValueFactor(freq, "Hz") == util.FormatValueFactor(last, "Hz") {
			return
		}
	}
	a.results["FREQ"] = append(a.results["FREQ"], freq)

	for name, value := range solution {
		a.results[name+"_RE"] = append(a.results[name+"_RE"], real(value))
		a.results[name+"_IM"] = append(a.results[name+"_IM"], imag(value))
		a.results[name+"_MAG"] = append(a.results[name+"_MAG"], cmplx.Abs(value))
		a.results[name+"_PHASE"] = append(a.results[name+"_PHASE"], cmplx.Phase(value)*180.0/math.Pi)
	}
}

func (a *BaseAnalysis) GetResults() map[string][]float64 {
	return a.results
}
