// Package device holds the lumped elements placed on pulses: voltage sources
// and loads. Every device stamps itself onto the impedance matrix.
package device

import (
	"fmt"

	"github.com/edp1096/toy-mininec/pkg/matrix"
	"github.com/edp1096/toy-mininec/pkg/util"
)

type Device interface {
	GetName() string
	GetPulse() int
	Stamp(matrix matrix.DeviceMatrix, status *Status) error
}

type BaseDevice struct {
	Name  string
	Pulse int
}

func (d *BaseDevice) GetName() string { return d.Name }

func (d *BaseDevice) GetPulse() int { return d.Pulse }

// Status is the solver state devices stamp against.
type Status struct {
	Frequency float64 // Hz
	Grounded  []bool  // per pulse
}

// Weight is 2 on grounded pulses: their equation spans the pulse and its
// image, so source and load voltages appear twice.
func (s *Status) Weight(pulse int) float64 {
	if pulse >= 0 && pulse < len(s.Grounded) && s.Grounded[pulse] {
		return 2
	}
	return 1
}

func parsePulse(kind string, no int, value float64, noPulses int) (int, error) {
	if !util.IsInteger(value) {
		return 0, fmt.Errorf("%s %d: pulse must be an integer", kind, no)
	}
	if value < 0 || value >= float64(noPulses) {
		return 0, fmt.Errorf("%s %d: pulse must be in range 0..%d", kind, no, noPulses-1)
	}
	return int(value), nil
}
