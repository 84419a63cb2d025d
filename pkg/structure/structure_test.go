package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWires(t *testing.T, rows ...[]float64) []Wire {
	t.Helper()
	wires := make([]Wire, len(rows))
	for i, row := range rows {
		w, err := NewWire(i+1, row)
		require.NoError(t, err)
		wires[i] = w
	}
	return wires
}

func TestSingleWireFreeSpace(t *testing.T) {
	s := New(false)
	require.NoError(t, s.SetWires(mustWires(t, []float64{0, 0, 0, 1, 0, 0, 0.01, 5})))

	assert.Equal(t, 1, s.NoWires())
	assert.Equal(t, 4, s.NoPulses())
	assert.InDelta(t, 0.2, s.SegmentLength(0), 1e-12)
	assert.Equal(t, []int{-1, 0, 1, 2, 3, -1}, s.PulseMap(0))
	assert.Nil(t, s.PulseMap(1))
	assert.Equal(t, 0.0, s.SegmentLength(3))

	p := s.Pulses()[0]
	assert.InDelta(t, 0.2, p.Extent.X, 1e-12)
	assert.InDelta(t, 0.1, p.Minus.X, 1e-12)
	assert.InDelta(t, 0.3, p.Plus.X, 1e-12)
	require.NotNil(t, p.Backward)
	require.NotNil(t, p.Forward)
	assert.False(t, p.Grounded)
}

func TestSingleSegmentWireHasNoPulse(t *testing.T) {
	s := New(false)
	require.NoError(t, s.SetWires(mustWires(t, []float64{0, 0, 0, 1, 0, 0, 0.01, 1})))
	assert.Equal(t, 0, s.NoPulses())
	assert.Equal(t, []int{-1, -1}, s.PulseMap(0))
}

func TestTriangleLoopJunctions(t *testing.T) {
	s := New(false)
	require.NoError(t, s.SetWires(mustWires(t,
		[]float64{0, 0, 0, 0.01, 0, 0, 0.001, 1},
		[]float64{0.01, 0, 0, 0, 0.01, 0, 0.001, 1},
		[]float64{0, 0.01, 0, 0, 0, 0, 0.001, 1},
	)))

	assert.Equal(t, 3, s.NoPulses())
	assert.Equal(t, []int{2, 0}, s.PulseMap(0))
	assert.Equal(t, []int{0, 1}, s.PulseMap(1))
	assert.Equal(t, []int{1, 2}, s.PulseMap(2))

	// around the loop every shared junction keeps the wire direction
	assert.Equal(t, []float64{1, 1}, s.PulseSigns(0))
	assert.Equal(t, []float64{1, 1}, s.PulseSigns(1))
	assert.Equal(t, []float64{1, 1}, s.PulseSigns(2))

	// pulse 0 joins the end of wire 1 with the start of wire 2
	p := s.Pulses()[0]
	require.Len(t, p.Halves, 2)
	assert.InDelta(t, 0.005, p.Minus.X, 1e-12)
	assert.InDelta(t, 0.005, p.Plus.Y, 1e-12)
}

func TestGroundedMonopole(t *testing.T) {
	s := New(true)
	require.NoError(t, s.SetWires(mustWires(t, []float64{0, 0, 0, 0, 0, 1, 0.001, 4})))

	assert.Equal(t, []int{0, 1, 2, 3, -1}, s.PulseMap(0))
	p := s.Pulses()[0]
	assert.True(t, p.Grounded)
	assert.Nil(t, p.Backward)
	require.NotNil(t, p.Forward)
	require.Len(t, p.Halves, 1)
	assert.InDelta(t, 0.25, p.Extent.Z, 1e-12)
	assert.InDelta(t, -0.125, p.Minus.Z, 1e-12)
	assert.InDelta(t, 0.125, p.Plus.Z, 1e-12)
}

func TestGroundedTopEnd(t *testing.T) {
	s := New(true)
	require.NoError(t, s.SetWires(mustWires(t, []float64{0, 0, 1, 0, 0, 0, 0.001, 2})))
	assert.Equal(t, []int{-1, 0, 1}, s.PulseMap(0))
	p := s.Pulses()[1]
	assert.True(t, p.Grounded)
	assert.Nil(t, p.Forward)
	assert.InDelta(t, 0.25, p.Minus.Z, 1e-12)
	assert.InDelta(t, -0.25, p.Plus.Z, 1e-12)
}

func TestGroundIgnoredInFreeSpace(t *testing.T) {
	s := New(false)
	require.NoError(t, s.SetWires(mustWires(t, []float64{0, 0, 0, 0, 0, 1, 0.001, 4})))
	assert.Equal(t, []int{-1, 0, 1, 2, -1}, s.PulseMap(0))
}

func TestGroundValidation(t *testing.T) {
	s := New(true)
	err := s.SetWires(mustWires(t, []float64{0, 0, -1, 0, 0, 1, 0.001, 4}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wire 1")

	err = s.SetWires(mustWires(t,
		[]float64{0, 0, 1, 0, 0, 2, 0.001, 4},
		[]float64{0, 0, 0, 1, 0, 0, 0.001, 4},
	))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wire 2")
	assert.Equal(t, 0, s.NoWires())
}

func TestNewWireErrors(t *testing.T) {
	cases := []struct {
		row  []float64
		want string
	}{
		{[]float64{0, 0, 0, 1, 0, 0, 0.01}, "expecting 8 values"},
		{[]float64{0, 0, 0, 1, 0, 0, 0.01, -10}, "at least 1"},
		{[]float64{0, 0, 0, 1, 0, 0, 0.01, 2.5}, "integer"},
		{[]float64{0, 0, 0, 1, 0, 0, 0.01, 10001}, "at most 10000"},
		{[]float64{0, 0, 0, 1, 0, 0, 0.01, 1e19}, "at most 10000"},
		{[]float64{0, 0, 0, 1, 0, 0, 0, 2}, "radius"},
		{[]float64{1, 1, 1, 1, 1, 1, 0.01, 2}, "coincide"},
	}
	for _, c := range cases {
		_, err := NewWire(1, c.row)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "wire 1")
		assert.Contains(t, err.Error(), c.want)
	}
}

func TestOpposedWiresFlipSign(t *testing.T) {
	// two wires both starting at the feed point: a dipole built outwards
	s := New(false)
	require.NoError(t, s.SetWires(mustWires(t,
		[]float64{0, 0, 0, -0.5, 0, 0, 0.001, 2},
		[]float64{0, 0, 0, 0.5, 0, 0, 0.001, 2},
	)))

	assert.Equal(t, []int{1, 0, -1}, s.PulseMap(0))
	assert.Equal(t, []int{1, 2, -1}, s.PulseMap(1))
	assert.Equal(t, []float64{-1, 1, 1}, s.PulseSigns(0))
	assert.Equal(t, []float64{1, 1, 1}, s.PulseSigns(1))
	assert.Nil(t, s.PulseSigns(2))
}
