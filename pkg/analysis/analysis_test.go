package analysis

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096/toy-mininec/internal/consts"
	"github.com/edp1096/toy-mininec/pkg/device"
	"github.com/edp1096/toy-mininec/pkg/structure"
)

// One wavelength is 1 m at this frequency.
const unitWavelength = consts.LIGHTSPEED

func dipoleProblem(t *testing.T, withGround bool) *Problem {
	t.Helper()

	row := []float64{0, 0, -0.25, 0, 0, 0.25, 0.001, 10}
	if withGround {
		row = []float64{0, 0, 0, 0, 0, 0.25, 0.001, 5}
	}
	wire, err := structure.NewWire(1, row)
	require.NoError(t, err)

	s := structure.New(withGround)
	require.NoError(t, s.SetWires([]structure.Wire{wire}))

	feed := 4 // center of the dipole
	if withGround {
		feed = 0 // base of the monopole
	}
	src, err := device.NewVoltageSource(1, []float64{float64(feed), 1, 0}, s.NoPulses())
	require.NoError(t, err)

	return &Problem{Structure: s, Frequency: unitWavelength, Sources: []*device.VoltageSource{src}}
}

func solve(t *testing.T, p *Problem) *CurrentAnalysis {
	t.Helper()
	c := NewCurrent()
	require.NoError(t, c.Setup(p))
	require.NoError(t, c.Execute())
	require.Len(t, c.Currents(), p.Structure.NoPulses())
	return c
}

func TestSetupErrors(t *testing.T) {
	c := NewCurrent()
	assert.EqualError(t, c.Setup(&Problem{Structure: structure.New(false), Frequency: 1e6}), "no geometry defined")

	p := dipoleProblem(t, false)
	p.Frequency = 0
	assert.EqualError(t, c.Setup(p), "frequency must be strictly positive")

	p = dipoleProblem(t, false)
	p.Sources = nil
	assert.EqualError(t, c.Setup(p), "no sources defined")
}

func TestHalfWaveDipole(t *testing.T) {
	p := dipoleProblem(t, false)
	c := solve(t, p)

	z := p.Sources[0].Voltage() / c.Currents()[4]
	assert.Greater(t, real(z), 60.0)
	assert.Less(t, real(z), 100.0)
	assert.Greater(t, imag(z), 10.0)
	assert.Less(t, imag(z), 70.0)

	// Symmetric structure, symmetric current.
	for i := 0; i < 4; i++ {
		assert.InDelta(t, 0, cmplx.Abs(c.Currents()[i]-c.Currents()[8-i]), 1e-6*cmplx.Abs(c.Currents()[4]))
	}
	assert.Positive(t, int64(c.FillTime()))
}

func TestMonopoleIsHalfDipole(t *testing.T) {
	dipole := dipoleProblem(t, false)
	cd := solve(t, dipole)
	zDipole := dipole.Sources[0].Voltage() / cd.Currents()[4]

	monopole := dipoleProblem(t, true)
	require.Equal(t, []int{0, 1, 2, 3, 4, -1}, monopole.Structure.PulseMap(0))
	cm := solve(t, monopole)
	zMonopole := monopole.Sources[0].Voltage() / cm.Currents()[0]

	assert.InDelta(t, real(zDipole)/2, real(zMonopole), 0.1*real(zDipole))
}

func TestLoadChangesCurrent(t *testing.T) {
	p := dipoleProblem(t, false)
	free := solve(t, p).Currents()[4]

	load, err := device.NewLoad(1, []float64{4, 1000, 0}, p.Structure.NoPulses())
	require.NoError(t, err)
	p.Loads = []device.Load{load}
	loaded := solve(t, p).Currents()[4]

	// The load sits in series with the feed.
	zFree := 1 / free
	zLoaded := 1 / loaded
	assert.InDelta(t, real(zFree)+1000, real(zLoaded), 1e-6*cmplx.Abs(zLoaded))
	assert.InDelta(t, imag(zFree), imag(zLoaded), 1e-6*cmplx.Abs(zLoaded))
}

func TestDipolePattern(t *testing.T) {
	p := dipoleProblem(t, false)
	c := solve(t, p)

	ff := NewFarField(c.Currents(), StepSequence{Init: 0, Step: 90, Count: 2}, StepSequence{Init: 0, Step: 45, Count: 3})
	require.NoError(t, ff.Setup(p))
	require.NoError(t, ff.Execute())

	points := ff.Points()
	require.Len(t, points, 6)
	assert.Equal(t, 0.0, points[0].Zenith)
	assert.Equal(t, 45.0, points[1].Azimuth)

	// No radiation along the wire axis, none in phi polarization.
	for _, pt := range points[:3] {
		assert.Equal(t, consts.MINDBI, pt.Total)
	}
	for _, pt := range points {
		assert.Equal(t, consts.MINDBI, pt.Horizontal)
	}

	// Broadside: about 2.15 dBi, independent of azimuth.
	for _, pt := range points[3:] {
		assert.InDelta(t, 2.15, pt.Total, 0.5)
		assert.InDelta(t, pt.Vertical, pt.Total, 1e-9)
	}
	assert.InDelta(t, points[3].Total, points[5].Total, 1e-9)
}

func TestMonopolePattern(t *testing.T) {
	p := dipoleProblem(t, true)
	c := solve(t, p)

	ff := NewFarField(c.Currents(), StepSequence{Init: 90, Step: 45, Count: 2}, StepSequence{Init: 0, Step: 0, Count: 1})
	require.NoError(t, ff.Setup(p))
	require.NoError(t, ff.Execute())

	points := ff.Points()
	require.Len(t, points, 2)
	assert.InDelta(t, 5.15, points[0].Total, 0.6)
	assert.Equal(t, consts.MINDBI, points[1].Total)

	// Very good conductor, close to the ideal ground.
	p.Medium = &Medium{Eps: 13, Conductivity: 1e7}
	ff = NewFarField(c.Currents(), StepSequence{Init: 60, Step: 0, Count: 1}, StepSequence{Count: 1})
	require.NoError(t, ff.Setup(p))
	require.NoError(t, ff.Execute())
	good := ff.Points()[0].Total

	p.Medium = nil
	require.NoError(t, ff.Execute())
	assert.InDelta(t, ff.Points()[0].Total, good, 0.01)
}

func TestFarFieldNeedsSolution(t *testing.T) {
	p := dipoleProblem(t, false)
	ff := NewFarField(nil, StepSequence{Count: 1}, StepSequence{Count: 1})
	assert.EqualError(t, ff.Setup(p), "no solution available, solve first")

	ff = NewFarField(make([]complex128, p.Structure.NoPulses()), StepSequence{Count: 0}, StepSequence{Count: 1})
	assert.Error(t, ff.Setup(p))
}

func TestReflection(t *testing.T) {
	rv, rh := reflection(nil, 0.3, 1e6)
	assert.Equal(t, complex128(-1), rv)
	assert.Equal(t, complex128(-1), rh)

	rv, rh = reflection(&Medium{Eps: 13, Conductivity: 1e7}, 0, 1e6)
	assert.InDelta(t, -1, real(rv), 1e-3)
	assert.InDelta(t, -1, real(rh), 1e-3)

	// Grazing incidence reflects horizontal polarization completely.
	_, rh = reflection(&Medium{Eps: 13, Conductivity: 0.005}, math.Pi/2, 10e6)
	assert.InDelta(t, 1, cmplx.Abs(rh), 1e-9)
}

func TestInputPower(t *testing.T) {
	src, err := device.NewVoltageSource(1, []float64{0, 2, 0}, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, InputPower([]*device.VoltageSource{src}, []complex128{complex(0.5, 3)}), 1e-12)
}

func TestFrequencyPoints(t *testing.T) {
	lin, err := FrequencyPoints(1, 3, 3, "LIN")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, lin)

	dec, err := FrequencyPoints(1, 100, 3, "dec")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 10, 100}, dec, 1e-9)

	oct, err := FrequencyPoints(1, 4, 3, "OCT")
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, 4}, oct, 1e-9)

	single, err := FrequencyPoints(7, 9, 1, "LIN")
	require.NoError(t, err)
	assert.Equal(t, []float64{7}, single)

	_, err = FrequencyPoints(0, 9, 2, "LIN")
	assert.Error(t, err)
	_, err = FrequencyPoints(1, 9, 2, "LOG")
	assert.EqualError(t, err, `unknown sweep type "LOG"`)
}

func TestStoreResultSkipsSameFrequency(t *testing.T) {
	a := NewBaseAnalysis()
	a.StoreResult(1e6, map[string]complex128{"Z": complex(0, 1)})
	a.StoreResult(1e6, map[string]complex128{"Z": complex(0, 2)})
	a.StoreResult(2e6, map[string]complex128{"Z": complex(3, 4)})

	results := a.GetResults()
	assert.Equal(t, []float64{1e6, 2e6}, results["FREQ"])
	assert.InDeltaSlice(t, []float64{1, 5}, results["Z_MAG"], 1e-12)
	assert.InDeltaSlice(t, []float64{90, 53.13010235415598}, results["Z_PHASE"], 1e-9)
}
