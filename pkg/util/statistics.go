package util

import "math"

// Statistics is an online estimator of count, min, max, mean and variance
// (Welford). It stays accurate when all values share a large offset.
// The zero value is ready to use; it is not safe for concurrent updates.
type Statistics struct {
	count int
	mean  float64
	m2    float64
	min   float64
	max   float64
}

func NewStatistics() *Statistics {
	return &Statistics{}
}

func (s *Statistics) Update(value float64) {
	if s.count == 0 {
		s.min = value
		s.max = value
	} else {
		s.min = math.Min(s.min, value)
		s.max = math.Max(s.max, value)
	}

	s.count++
	delta := value - s.mean
	s.mean += delta / float64(s.count)
	delta2 := value - s.mean
	s.m2 += delta * delta2
}

func (s *Statistics) Count() int { return s.count }

func (s *Statistics) Min() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	return s.min
}

func (s *Statistics) Max() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	return s.max
}

func (s *Statistics) Mean() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	return s.mean
}

// Variance is the population variance, NaN below two samples.
func (s *Statistics) Variance() float64 {
	if s.count < 2 {
		return math.NaN()
	}
	return s.m2 / float64(s.count)
}

// SampleVariance is the unbiased variance, NaN below two samples.
func (s *Statistics) SampleVariance() float64 {
	if s.count < 2 {
		return math.NaN()
	}
	return s.m2 / float64(s.count-1)
}

func (s *Statistics) StdDev() float64 { return math.Sqrt(s.Variance()) }

func (s *Statistics) SampleStdDev() float64 { return math.Sqrt(s.SampleVariance()) }
