package mininec

import (
	"fmt"
	"strings"

	"github.com/edp1096/toy-mininec/pkg/util"
)

// DiameterToRadius: users enter wire diameters, the engine takes radii.
func DiameterToRadius(diameter float64) float64 { return diameter / 2.0 }

// WireToIndex converts a 1-based wire number to the engine's 0-based index.
func WireToIndex(wire int) int { return wire - 1 }

func IndexToWire(index int) int { return index + 1 }

// geometryToEngine copies the rows, replacing the diameter by the radius.
// The caller's rows are never modified.
func geometryToEngine(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = append([]float64(nil), row...)
		if len(out[i]) > 6 {
			out[i][6] = DiameterToRadius(out[i][6])
		}
	}
	return out
}

// pulseResolver maps (wire, segment) of source and load rows to pulses.
type pulseResolver struct {
	noWires int
	pulses  func(wire int) []int
}

// resolve validates wire and segment of row no (1-based) and returns the
// pulse. kind is "Source" or "Load".
func (r pulseResolver) resolve(kind string, no int, wireValue, segmentValue float64) (int, *Error) {
	if !util.IsInteger(wireValue) {
		return 0, newError(RangeError, no, fmt.Sprintf("%s %d: wire no must be an integer!", kind, no))
	}
	if wireValue < 1 || wireValue > float64(r.noWires) {
		return 0, newError(RangeError, no, fmt.Sprintf("%s %d: wire must be in range 1..%d", kind, no, r.noWires))
	}

	if !util.IsInteger(segmentValue) {
		return 0, newError(RangeError, no, fmt.Sprintf("%s %d: segment must be an integer!", kind, no))
	}
	pulses := r.pulses(WireToIndex(int(wireValue)))
	if segmentValue < 0 || segmentValue >= float64(len(pulses)) {
		return 0, newError(RangeError, no, fmt.Sprintf("%s %d: segment must be in range 0..%d", kind, no, len(pulses)-1))
	}

	pulse := pulses[int(segmentValue)]
	if pulse < 0 {
		return 0, newError(RangeError, no, fmt.Sprintf("%s %d: can't place the %s in an unconnected end point", kind, no, strings.ToLower(kind)))
	}
	return pulse, nil
}
