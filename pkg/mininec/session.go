// Package mininec translates the user's view of an antenna (1-based wires,
// segments within a wire, wire diameters) into the 0-based pulse space of a
// solver engine, validates every cross reference against the actual
// topology and decodes the engine's results.
//
// The engine loads asynchronously, once. Register with
// AddObserverInitialized (or block in WaitReady) before using a Session;
// calling an engine operation earlier panics.
package mininec

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/edp1096/toy-mininec/pkg/engine"
	"github.com/edp1096/toy-mininec/pkg/util"
)

// Engine is the solver behind a Session. It works 0-based and takes radii.
type Engine interface {
	Version() string
	Initialize(withGround bool)
	SetFrequency(mhz float64) error
	Frequency() float64
	Wavelength() float64
	HasGround() bool
	NoWires() int
	NoPulses() int
	SegmentLength(wire int) float64
	Pulses(wire int) []int
	SetGeometry(rows [][]float64) error
	SetSources(rows [][]float64) error
	SetLoads(rows [][]float64) error
	SetGroundMedia(kind engine.MediaBoundary, a, b float64, media []engine.Medium) error
	Solve() (engine.SolveInfo, error)
	SourceCurrents() ([]engine.SourceCurrent, error)
	PulseCurrents(wire int) ([]engine.PulseCurrent, error)
	LoadImpedances() ([]engine.Pair, error)
	FarFieldDbi(zenith, azimuth engine.StepSequence) ([]engine.FarFieldDbi, error)
}

// Loader produces the engine. It runs once, in its own goroutine.
type Loader func() Engine

type State int

const (
	Uninitialized State = iota
	Ready
	GeometrySet
	Solved
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Ready:
		return "Ready"
	case GeometrySet:
		return "GeometrySet"
	case Solved:
		return "Solved"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type Session struct {
	mu        sync.Mutex
	log       *logrus.Logger
	loader    Loader
	start     sync.Once
	engine    Engine
	state     State
	observers []func()
	timing    SolveTiming
}

// New returns a session whose engine is produced by loader once Start is
// called.
func New(loader Loader, log *logrus.Logger) *Session {
	return &Session{loader: loader, log: log}
}

// NewDefault loads the reference engine in the background.
func NewDefault(log *logrus.Logger) *Session {
	s := New(func() Engine { return engine.New(log) }, log)
	s.Start()
	return s
}

// NewWithEngine returns a session that is ready right away.
func NewWithEngine(e Engine, log *logrus.Logger) *Session {
	s := New(func() Engine { return e }, log)
	s.start.Do(func() { s.load() })
	return s
}

// Start loads the engine in the background. Later calls do nothing.
func (s *Session) Start() {
	s.start.Do(func() { go s.load() })
}

func (s *Session) load() {
	e := s.loader()

	s.mu.Lock()
	s.engine = e
	s.state = Ready
	observers := s.observers
	s.observers = nil
	s.mu.Unlock()

	s.log.Debugf("engine %s ready", e.Version())
	for _, observer := range observers {
		observer()
	}
}

// AddObserverInitialized calls observer once the engine is ready: right
// away when it already is, otherwise from the loading goroutine.
func (s *Session) AddObserverInitialized(observer func()) {
	s.mu.Lock()
	if s.engine == nil {
		s.observers = append(s.observers, observer)
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	observer()
}

// WaitReady blocks until the engine is ready or ctx is done.
func (s *Session) WaitReady(ctx context.Context) error {
	ready := make(chan struct{})
	s.AddObserverInitialized(func() { close(ready) })
	select {
	case <-ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// lock acquires the session and returns the engine, panicking when it is
// not loaded yet.
func (s *Session) lock() Engine {
	s.mu.Lock()
	if s.engine == nil {
		s.mu.Unlock()
		panic("mininec: engine not ready")
	}
	return s.engine
}

// invalidate drops a solved state after an input changed.
func (s *Session) invalidate() {
	if s.state == Solved {
		s.state = GeometrySet
	}
}

func (s *Session) Version() string {
	e := s.lock()
	defer s.mu.Unlock()
	return e.Version()
}

// SetFrequency in MHz. Non-positive values are rejected by the engine.
func (s *Session) SetFrequency(mhz float64) error {
	e := s.lock()
	defer s.mu.Unlock()

	if err := e.SetFrequency(mhz); err != nil {
		s.log.Warnf("frequency %g MHz rejected: %v", mhz, err)
		return engineError(err)
	}
	s.invalidate()
	return nil
}

// Frequency in MHz.
func (s *Session) Frequency() float64 {
	e := s.lock()
	defer s.mu.Unlock()
	return e.Frequency()
}

// Wavelength in meters.
func (s *Session) Wavelength() float64 {
	e := s.lock()
	defer s.mu.Unlock()
	return e.Wavelength()
}

func (s *Session) HasGround() bool {
	e := s.lock()
	defer s.mu.Unlock()
	return e.HasGround()
}

func (s *Session) NoWires() int {
	e := s.lock()
	defer s.mu.Unlock()
	return e.NoWires()
}

func (s *Session) NoPulses() int {
	e := s.lock()
	defer s.mu.Unlock()
	return e.NoPulses()
}

// SegmentLength of a 1-based wire in meters, 0 for unknown wires.
func (s *Session) SegmentLength(wire int) float64 {
	e := s.lock()
	defer s.mu.Unlock()
	return e.SegmentLength(WireToIndex(wire))
}

// Pulses of a 1-based wire, indexed by segment, -1 where unconnected.
func (s *Session) Pulses(wire int) []int {
	e := s.lock()
	defer s.mu.Unlock()
	return e.Pulses(WireToIndex(wire))
}

// SetGeometry starts a new engine session with rows
// x1,y1,z1,x2,y2,z2,diameter,segments. Sources, loads and the solution are
// discarded. Engine messages are passed on unchanged.
func (s *Session) SetGeometry(withGround bool, rows [][]float64) error {
	e := s.lock()
	defer s.mu.Unlock()

	e.Initialize(withGround)
	s.state = Ready
	if err := e.SetGeometry(geometryToEngine(rows)); err != nil {
		s.log.Warnf("geometry rejected: %v", err)
		return engineError(err)
	}
	s.state = GeometrySet
	s.log.Debugf("geometry: %d wires, %d pulses", e.NoWires(), e.NoPulses())
	return nil
}

// SetSources takes rows wire (1-based), segment (0-based), amplitude, phase.
// Either every row is valid and the batch goes to the engine, or the first
// invalid row is reported and the engine is not called.
func (s *Session) SetSources(rows [][]float64) error {
	e := s.lock()
	defer s.mu.Unlock()

	resolver := pulseResolver{noWires: e.NoWires(), pulses: e.Pulses}
	definitions := make([][]float64, 0, len(rows))
	for i, row := range rows {
		no := i + 1
		if len(row) != 4 {
			return s.reject(newError(ParseError, no, fmt.Sprintf("Source %d must have 4 fields!", no)))
		}
		pulse, err := resolver.resolve("Source", no, row[0], row[1])
		if err != nil {
			return s.reject(err)
		}
		definitions = append(definitions, []float64{float64(pulse), row[2], row[3]})
	}

	if err := e.SetSources(definitions); err != nil {
		return s.reject(engineError(err))
	}
	s.invalidate()
	return nil
}

// SetLoads takes rows wire, segment, R, X or, for S-domain loads,
// wire, segment, order numerator, order denominator, a_0.., b_0.. with
// exactly 4 + (1+order numerator) + (1+order denominator) fields.
func (s *Session) SetLoads(rows [][]float64) error {
	e := s.lock()
	defer s.mu.Unlock()

	resolver := pulseResolver{noWires: e.NoWires(), pulses: e.Pulses}
	definitions := make([][]float64, 0, len(rows))
	for i, row := range rows {
		no := i + 1
		if len(row) < 4 {
			return s.reject(newError(ParseError, no, fmt.Sprintf("Load %d must have at least 4 fields!", no)))
		}
		pulse, err := resolver.resolve("Load", no, row[0], row[1])
		if err != nil {
			return s.reject(err)
		}
		if len(row) > 4 {
			if err := checkSDomain(no, row); err != nil {
				return s.reject(err)
			}
		}
		definition := append([]float64{float64(pulse)}, row[2:]...)
		definitions = append(definitions, definition)
	}

	if err := e.SetLoads(definitions); err != nil {
		return s.reject(engineError(err))
	}
	s.invalidate()
	return nil
}

func checkSDomain(no int, row []float64) *Error {
	orders := []struct {
		name  string
		value float64
	}{{"numerator", row[2]}, {"denominator", row[3]}}
	for _, order := range orders {
		if !util.IsInteger(order.value) {
			return newError(RangeError, no, fmt.Sprintf("Load %d: order of %s must be an integer", no, order.name))
		}
		if order.value < 0 {
			return newError(RangeError, no, fmt.Sprintf("Load %d: order of %s must not be negative", no, order.name))
		}
	}

	expected := 4 + (1 + row[2]) + (1 + row[3])
	if float64(len(row)) != expected {
		return newError(ShapeError, no, fmt.Sprintf("Load %d: expecting %.0f fields", no, expected))
	}
	return nil
}

func (s *Session) reject(err error) error {
	s.log.Warn(err.Error())
	return err
}

// SetGroundMedia selects a real ground for the far field reflection.
func (s *Session) SetGroundMedia(eps, conductivity float64) error {
	e := s.lock()
	defer s.mu.Unlock()

	media := []engine.Medium{{Eps: eps, Conductivity: conductivity}}
	if err := e.SetGroundMedia(engine.Linear, 0, 0, media); err != nil {
		return s.reject(engineError(err))
	}
	s.invalidate()
	return nil
}

// ClearGroundMedia returns to the ideal ground.
func (s *Session) ClearGroundMedia() error {
	e := s.lock()
	defer s.mu.Unlock()
	if err := e.SetGroundMedia(engine.Linear, 0, 0, nil); err != nil {
		return s.reject(engineError(err))
	}
	s.invalidate()
	return nil
}

// Solve runs the engine. On failure the previous SolveTiming is kept.
func (s *Session) Solve() error {
	e := s.lock()
	defer s.mu.Unlock()

	info, err := e.Solve()
	if err != nil {
		s.log.Warnf("solve failed: %v", err)
		return engineError(err)
	}
	s.timing = SolveTiming{FillMatrixUs: info.ElapsedFillMatrixUs, SolveMatrixUs: info.ElapsedSolveMatrixUs}
	s.state = Solved
	s.log.Debugf("solved, fill %d us, solve %d us", s.timing.FillMatrixUs, s.timing.SolveMatrixUs)
	return nil
}

// SolveTiming of the last successful Solve.
func (s *Session) SolveTiming() SolveTiming {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timing
}
