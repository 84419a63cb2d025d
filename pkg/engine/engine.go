// Package engine is the reference thin-wire solver behind a mininec session.
// It works in the 0-based pulse space: wires, pulses, sources and loads are
// all addressed from 0, wire radii are in meters and frequencies in MHz.
package engine

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/sirupsen/logrus"

	"github.com/edp1096/toy-mininec/internal/consts"
	"github.com/edp1096/toy-mininec/pkg/analysis"
	"github.com/edp1096/toy-mininec/pkg/device"
	"github.com/edp1096/toy-mininec/pkg/structure"
	"github.com/edp1096/toy-mininec/pkg/util"
)

const (
	Version = "1.0.0"

	DefaultFrequency = 299.8 // MHz
)

type MediaBoundary int

const (
	Linear MediaBoundary = iota
)

// Medium describes one ground medium. Only a single medium at height 0 is
// supported.
type Medium struct {
	Eps          float64
	Conductivity float64 // S/m
	Height       float64
	Coord        float64
}

type StepSequence = analysis.StepSequence

type SolveInfo struct {
	ElapsedFillMatrixUs  int64
	ElapsedSolveMatrixUs int64
}

// Pair is a complex number as real and imaginary part.
type Pair struct {
	Re, Im float64
}

func pairOf(z complex128) Pair { return Pair{real(z), imag(z)} }

type SourceCurrent struct {
	Voltage   Pair
	Current   Pair
	Impedance Pair
	Power     float64 // W
}

type PulseCurrent struct {
	Pulse   int // -1 at unconnected end points
	Current Pair
}

type FarFieldDbi struct {
	Zenith     float64
	Azimuth    float64
	Horizontal float64
	Vertical   float64
	Total      float64
}

type Engine struct {
	log       *logrus.Logger
	frequency float64 // MHz
	structure *structure.Structure
	sources   []*device.VoltageSource
	loads     []device.Load
	medium    *analysis.Medium
	solution  *analysis.CurrentAnalysis
}

func New(log *logrus.Logger) *Engine {
	e := &Engine{log: log, frequency: DefaultFrequency}
	e.Initialize(false)
	return e
}

func (e *Engine) Version() string { return Version }

// Initialize discards geometry, sources, loads and the solution. Frequency
// and ground media are kept.
func (e *Engine) Initialize(withGround bool) {
	e.structure = structure.New(withGround)
	e.sources = nil
	e.loads = nil
	e.solution = nil
}

func (e *Engine) SetFrequency(mhz float64) error {
	if !(mhz > 0) || math.IsInf(mhz, 0) {
		return fmt.Errorf("frequency must be strictly positive")
	}
	e.frequency = mhz
	e.solution = nil
	return nil
}

func (e *Engine) Frequency() float64 { return e.frequency }

// Wavelength in meters.
func (e *Engine) Wavelength() float64 {
	return consts.LIGHTSPEED / (e.frequency * consts.MEGA)
}

func (e *Engine) HasGround() bool { return e.structure.HasGround() }

func (e *Engine) NoWires() int { return e.structure.NoWires() }

func (e *Engine) NoPulses() int { return e.structure.NoPulses() }

// SegmentLength of a 0-based wire in meters, 0 for unknown wires.
func (e *Engine) SegmentLength(wire int) float64 { return e.structure.SegmentLength(wire) }

// Pulses of a 0-based wire, one per point, -1 where unconnected.
func (e *Engine) Pulses(wire int) []int { return e.structure.PulseMap(wire) }

// SetGeometry takes rows x1,y1,z1,x2,y2,z2,radius,segments. Sources, loads
// and the solution are discarded; on error the geometry is empty.
func (e *Engine) SetGeometry(rows [][]float64) error {
	e.sources, e.loads, e.solution = nil, nil, nil

	wires := make([]structure.Wire, 0, len(rows))
	for i, row := range rows {
		wire, err := structure.NewWire(i+1, row)
		if err != nil {
			e.structure.SetWires(nil)
			return err
		}
		wires = append(wires, wire)
	}
	if err := e.structure.SetWires(wires); err != nil {
		return err
	}

	e.log.WithFields(logrus.Fields{
		"wires":  e.structure.NoWires(),
		"pulses": e.structure.NoPulses(),
		"ground": e.structure.HasGround(),
	}).Debug("geometry set")
	return nil
}

// SetSources takes rows pulse,amplitude,phase. Either all rows are accepted
// or the previous sources stay in place.
func (e *Engine) SetSources(rows [][]float64) error {
	sources := make([]*device.VoltageSource, 0, len(rows))
	for i, row := range rows {
		src, err := device.NewVoltageSource(i+1, row, e.structure.NoPulses())
		if err != nil {
			return err
		}
		sources = append(sources, src)
	}
	e.sources = sources
	e.solution = nil
	return nil
}

// SetLoads takes rows pulse,R,X or pulse,on,od,a_0..a_on,b_0..b_od.
// Either all rows are accepted or the previous loads stay in place.
func (e *Engine) SetLoads(rows [][]float64) error {
	loads := make([]device.Load, 0, len(rows))
	for i, row := range rows {
		load, err := device.NewLoad(i+1, row, e.structure.NoPulses())
		if err != nil {
			return err
		}
		loads = append(loads, load)
	}
	e.loads = loads
	e.solution = nil
	return nil
}

// SetGroundMedia with no media selects the ideal ground. A single medium
// is a real ground, used for the reflection of the far field.
func (e *Engine) SetGroundMedia(kind MediaBoundary, a, b float64, media []Medium) error {
	if kind != Linear {
		return fmt.Errorf("unsupported media boundary %d", kind)
	}
	switch len(media) {
	case 0:
		e.medium = nil
		return nil
	case 1:
	default:
		return fmt.Errorf("only a single ground medium is supported, got %d", len(media))
	}

	m := media[0]
	if !util.IsFiniteValue(m.Eps) || m.Eps < 1 {
		return fmt.Errorf("ground medium: relative permittivity must be at least 1")
	}
	if !util.IsFiniteValue(m.Conductivity) || m.Conductivity < 0 {
		return fmt.Errorf("ground medium: conductivity must not be negative")
	}
	if m.Height != 0 || m.Coord != 0 {
		return fmt.Errorf("ground medium: height and coordinate must be 0")
	}
	e.medium = &analysis.Medium{Eps: m.Eps, Conductivity: m.Conductivity}
	return nil
}

func (e *Engine) problem() *analysis.Problem {
	return &analysis.Problem{
		Structure: e.structure,
		Frequency: e.frequency * consts.MEGA,
		Sources:   e.sources,
		Loads:     e.loads,
		Medium:    e.medium,
	}
}

func (e *Engine) run(a analysis.Analysis) error {
	if err := a.Setup(e.problem()); err != nil {
		return err
	}
	return a.Execute()
}

func (e *Engine) Solve() (SolveInfo, error) {
	current := analysis.NewCurrent()
	if err := e.run(current); err != nil {
		return SolveInfo{}, err
	}
	e.solution = current

	info := SolveInfo{
		ElapsedFillMatrixUs:  current.FillTime().Microseconds(),
		ElapsedSolveMatrixUs: current.SolveTime().Microseconds(),
	}
	e.log.WithFields(logrus.Fields{
		"pulses":   e.structure.NoPulses(),
		"fill_us":  info.ElapsedFillMatrixUs,
		"solve_us": info.ElapsedSolveMatrixUs,
	}).Debug("solved")
	return info, nil
}

func (e *Engine) currents() ([]complex128, error) {
	if e.solution == nil {
		return nil, fmt.Errorf("no solution available, solve first")
	}
	return e.solution.Currents(), nil
}

func (e *Engine) SourceCurrents() ([]SourceCurrent, error) {
	currents, err := e.currents()
	if err != nil {
		return nil, err
	}

	result := make([]SourceCurrent, 0, len(e.sources))
	for _, src := range e.sources {
		v := src.Voltage()
		i := currents[src.Pulse]
		var z complex128
		if i != 0 {
			z = v / i
		} else {
			z = cmplx.Inf()
		}
		result = append(result, SourceCurrent{
			Voltage:   pairOf(v),
			Current:   pairOf(i),
			Impedance: pairOf(z),
			Power:     0.5 * real(v*cmplx.Conj(i)),
		})
	}
	return result, nil
}

// PulseCurrents of a 0-based wire, one entry per point. Currents are
// signed to flow from the wire start to its end; unconnected points carry 0.
func (e *Engine) PulseCurrents(wire int) ([]PulseCurrent, error) {
	currents, err := e.currents()
	if err != nil {
		return nil, err
	}
	if wire < 0 || wire >= e.structure.NoWires() {
		return nil, fmt.Errorf("wire must be in range 0..%d", e.structure.NoWires()-1)
	}

	pulses := e.structure.PulseMap(wire)
	signs := e.structure.PulseSigns(wire)
	result := make([]PulseCurrent, len(pulses))
	for i, pulse := range pulses {
		result[i].Pulse = pulse
		if pulse >= 0 {
			result[i].Current = pairOf(currents[pulse] * complex(signs[i], 0))
		}
	}
	return result, nil
}

// LoadImpedances at the current frequency, no solution needed.
func (e *Engine) LoadImpedances() ([]Pair, error) {
	freq := e.frequency * consts.MEGA
	result := make([]Pair, 0, len(e.loads))
	for _, load := range e.loads {
		z := load.Impedance(freq)
		if cmplx.IsNaN(z) || cmplx.IsInf(z) {
			return nil, fmt.Errorf("load %s: impedance is not finite at %g MHz", load.GetName(), e.frequency)
		}
		result = append(result, pairOf(z))
	}
	return result, nil
}

func (e *Engine) FarFieldDbi(zenith, azimuth StepSequence) ([]FarFieldDbi, error) {
	currents, err := e.currents()
	if err != nil {
		return nil, err
	}

	ff := analysis.NewFarField(currents, zenith, azimuth)
	if err = e.run(ff); err != nil {
		return nil, err
	}

	points := ff.Points()
	result := make([]FarFieldDbi, len(points))
	for i, p := range points {
		result[i] = FarFieldDbi(p)
	}
	return result, nil
}
