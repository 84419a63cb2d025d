package device

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/edp1096/toy-mininec/pkg/matrix"
	"github.com/edp1096/toy-mininec/pkg/util"
)

// SourceFields is the row layout pulse, amplitude, phase (degrees).
const SourceFields = 3

type VoltageSource struct {
	BaseDevice
	Amplitude float64
	Phase     float64 // degrees
}

// NewVoltageSource parses a source row. no is the 1-based source number.
func NewVoltageSource(no int, row []float64, noPulses int) (*VoltageSource, error) {
	if len(row) != SourceFields {
		return nil, fmt.Errorf("source %d: expecting %d values, got %d", no, SourceFields, len(row))
	}
	pulse, err := parsePulse("source", no, row[0], noPulses)
	if err != nil {
		return nil, err
	}
	if !util.IsFiniteValue(row[1]) || !util.IsFiniteValue(row[2]) {
		return nil, fmt.Errorf("source %d: amplitude and phase must be finite", no)
	}

	return &VoltageSource{
		BaseDevice: BaseDevice{Name: fmt.Sprintf("V%d", no), Pulse: pulse},
		Amplitude:  row[1],
		Phase:      util.WrapAngle(row[2]),
	}, nil
}

func (v *VoltageSource) Voltage() complex128 {
	return cmplx.Rect(v.Amplitude, v.Phase*math.Pi/180.0)
}

func (v *VoltageSource) Stamp(matrix matrix.DeviceMatrix, status *Status) error {
	voltage := v.Voltage() * complex(status.Weight(v.Pulse), 0)
	matrix.AddComplexRHS(v.Pulse, real(voltage), imag(voltage))
	return nil
}
