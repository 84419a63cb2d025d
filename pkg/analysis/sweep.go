package analysis

import (
	"fmt"
	"math"
	"strings"
)

// FrequencyPoints spreads numPoints frequencies from start to stop.
// pointsType is "LIN", "DEC" (log spaced) or "OCT" (log2 spaced).
func FrequencyPoints(start, stop float64, numPoints int, pointsType string) ([]float64, error) {
	if !(start > 0) || !(stop > 0) {
		return nil, fmt.Errorf("frequency must be strictly positive")
	}
	if numPoints < 1 {
		return nil, fmt.Errorf("number of points must be at least 1, got %d", numPoints)
	}
	if numPoints == 1 {
		return []float64{start}, nil
	}

	frequencies := make([]float64, numPoints)
	switch strings.ToUpper(pointsType) {
	case "DEC": // Decade
		logStart := math.Log10(start)
		logStop := math.Log10(stop)
		step := (logStop - logStart) / float64(numPoints-1)
		for i := range numPoints {
			frequencies[i] = math.Pow(10, logStart+float64(i)*step)
		}

	case "OCT": // Octave
		logStart := math.Log2(start)
		logStop := math.Log2(stop)
		step := (logStop - logStart) / float64(numPoints-1)
		for i := range numPoints {
			frequencies[i] = math.Pow(2, logStart+float64(i)*step)
		}

	case "LIN", "": // Linear
		step := (stop - start) / float64(numPoints-1)
		for i := range numPoints {
			frequencies[i] = start + float64(i)*step
		}

	default:
		return nil, fmt.Errorf("unknown sweep type %q", pointsType)
	}

	return frequencies, nil
}
