package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsEmpty(t *testing.T) {
	s := NewStatistics()

	require.Equal(t, 0, s.Count())
	assert.True(t, math.IsNaN(s.Min()))
	assert.True(t, math.IsNaN(s.Mean()))
	assert.True(t, math.IsNaN(s.Max()))
	assert.True(t, math.IsNaN(s.StdDev()))
	assert.True(t, math.IsNaN(s.SampleStdDev()))
	assert.True(t, math.IsNaN(s.Variance()))
	assert.True(t, math.IsNaN(s.SampleVariance()))
}

func TestStatisticsSingleSample(t *testing.T) {
	s := NewStatistics()
	s.Update(1000)

	require.Equal(t, 1, s.Count())
	assert.Equal(t, 1000.0, s.Min())
	assert.Equal(t, 1000.0, s.Mean())
	assert.Equal(t, 1000.0, s.Max())
	assert.True(t, math.IsNaN(s.StdDev()))
	assert.True(t, math.IsNaN(s.SampleStdDev()))
	assert.True(t, math.IsNaN(s.Variance()))
	assert.True(t, math.IsNaN(s.SampleVariance()))
}

func TestStatisticsLargeOffset(t *testing.T) {
	var s Statistics
	s.Update(1e9 + 1)
	s.Update(1e9 + 3)

	require.Equal(t, 2, s.Count())
	assert.Equal(t, 1e9+1, s.Min())
	assert.Equal(t, 1e9+2, s.Mean())
	assert.Equal(t, 1e9+3, s.Max())
	assert.InDelta(t, 1.0, s.StdDev(), 1e-10)
	assert.InDelta(t, math.Sqrt(2), s.SampleStdDev(), 1e-10)
	assert.InDelta(t, 1.0, s.Variance(), 1e-10)
	assert.InDelta(t, 2.0, s.SampleVariance(), 1e-10)
}

func TestStatisticsSeries(t *testing.T) {
	var s Statistics
	for _, v := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		s.Update(v)
	}
	assert.Equal(t, 8, s.Count())
	assert.Equal(t, 2.0, s.Min())
	assert.Equal(t, 9.0, s.Max())
	assert.InDelta(t, 5.0, s.Mean(), 1e-12)
	assert.InDelta(t, 4.0, s.Variance(), 1e-12)
	assert.InDelta(t, 2.0, s.StdDev(), 1e-12)
	assert.InDelta(t, 32.0/7.0, s.SampleVariance(), 1e-12)
}
