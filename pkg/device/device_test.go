package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stampRecorder struct {
	elements map[[2]int]complex128
	rhs      map[int]complex128
}

func newStampRecorder() *stampRecorder {
	return &stampRecorder{elements: map[[2]int]complex128{}, rhs: map[int]complex128{}}
}

func (r *stampRecorder) AddComplexElement(i, j int, re, im float64) {
	r.elements[[2]int{i, j}] += complex(re, im)
}

func (r *stampRecorder) AddComplexRHS(i int, re, im float64) {
	r.rhs[i] += complex(re, im)
}

func TestLoadImpedances(t *testing.T) {
	const f = 1e6

	fixed, err := NewLoad(1, []float64{0, 10, 20}, 3)
	require.NoError(t, err)
	assert.Equal(t, complex(10, 20), fixed.Impedance(f))

	inductor, err := NewLoad(2, []float64{1, 1, 0, 0, 1e-6, 1}, 3)
	require.NoError(t, err)
	z := inductor.Impedance(f)
	assert.InDelta(t, 0, real(z), 1e-4)
	assert.InDelta(t, 6.2832, imag(z), 1e-4)

	capacitor, err := NewLoad(3, []float64{2, 0, 1, 1, 0, 1e-9}, 3)
	require.NoError(t, err)
	z = capacitor.Impedance(f)
	assert.InDelta(t, 0, real(z), 1e-4)
	assert.InDelta(t, -159.1549, imag(z), 1e-4)
}

func TestNewLoadErrors(t *testing.T) {
	cases := []struct {
		row  []float64
		want string
	}{
		{[]float64{0, 10}, "at least 3"},
		{[]float64{5, 10, 20}, "range 0..2"},
		{[]float64{0.5, 10, 20}, "integer"},
		{[]float64{0, 1, 1, 1, 2, 3}, "expecting 7 values"},
		{[]float64{0, -1, 1, 1, 2, 3}, "non-negative"},
		{[]float64{0, 1.5, 1, 1, 2, 3, 4}, "non-negative integers"},
	}
	for _, c := range cases {
		_, err := NewLoad(4, c.row, 3)
		require.Error(t, err, "%v", c.row)
		assert.Contains(t, err.Error(), "load 4")
		assert.Contains(t, err.Error(), c.want)
	}
}

func TestLoadStampWeightsGroundedPulses(t *testing.T) {
	load, err := NewLoad(1, []float64{1, 50, -5}, 2)
	require.NoError(t, err)

	rec := newStampRecorder()
	require.NoError(t, load.Stamp(rec, &Status{Frequency: 1e6, Grounded: []bool{false, true}}))
	assert.Equal(t, complex(100, -10), rec.elements[[2]int{1, 1}])

	rec = newStampRecorder()
	require.NoError(t, load.Stamp(rec, &Status{Frequency: 1e6, Grounded: []bool{false, false}}))
	assert.Equal(t, complex(50, -5), rec.elements[[2]int{1, 1}])
}

func TestLoadStampRejectsPole(t *testing.T) {
	// 1 / (b1 s) with b1 = 0 -> division by zero
	load, err := NewLoad(1, []float64{0, 0, 1, 1, 0, 0}, 1)
	require.NoError(t, err)
	err = load.Stamp(newStampRecorder(), &Status{Frequency: 1e6})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not finite")
}

func TestVoltageSource(t *testing.T) {
	src, err := NewVoltageSource(1, []float64{0, 2, 450}, 1)
	require.NoError(t, err)
	assert.InDelta(t, 90.0, src.Phase, 1e-12)
	v := src.Voltage()
	assert.InDelta(t, 0, real(v), 1e-12)
	assert.InDelta(t, 2, imag(v), 1e-12)

	rec := newStampRecorder()
	require.NoError(t, src.Stamp(rec, &Status{Grounded: []bool{true}}))
	assert.InDelta(t, 4, imag(rec.rhs[0]), 1e-12)

	_, err = NewVoltageSource(2, []float64{0, 1}, 1)
	assert.ErrorContains(t, err, "source 2")
	_, err = NewVoltageSource(3, []float64{1, 1, 0}, 1)
	assert.ErrorContains(t, err, "range 0..0")
}
