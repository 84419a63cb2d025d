package device

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/edp1096/toy-mininec/pkg/matrix"
	"github.com/edp1096/toy-mininec/pkg/util"
)

type Load interface {
	Device
	Impedance(frequency float64) complex128
}

// FixedLoad is R + jX, independent of frequency. Row: pulse, R, X.
type FixedLoad struct {
	BaseDevice
	Resistance float64
	Reactance  float64
}

// SDomainLoad is Z(s) = sum(a_i s^i) / sum(b_i s^i) with s = j*omega.
// Row: pulse, order numerator, order denominator, a_0..a_n, b_0..b_m.
type SDomainLoad struct {
	BaseDevice
	Numerator   []float64
	Denominator []float64
}

// NewLoad parses a load row. no is the 1-based load number.
func NewLoad(no int, row []float64, noPulses int) (Load, error) {
	if len(row) < 3 {
		return nil, fmt.Errorf("load %d: expecting at least 3 values, got %d", no, len(row))
	}
	pulse, err := parsePulse("load", no, row[0], noPulses)
	if err != nil {
		return nil, err
	}
	for _, v := range row[1:] {
		if !util.IsFiniteValue(v) {
			return nil, fmt.Errorf("load %d: all values must be finite", no)
		}
	}
	base := BaseDevice{Name: fmt.Sprintf("Z%d", no), Pulse: pulse}

	if len(row) == 3 {
		return &FixedLoad{BaseDevice: base, Resistance: row[1], Reactance: row[2]}, nil
	}

	orderNum, orderDen := row[1], row[2]
	if !util.IsInteger(orderNum) || !util.IsInteger(orderDen) || orderNum < 0 || orderDen < 0 {
		return nil, fmt.Errorf("load %d: polynomial orders must be non-negative integers", no)
	}
	n, m := int(orderNum), int(orderDen)
	expected := 3 + (n + 1) + (m + 1)
	if len(row) != expected {
		return nil, fmt.Errorf("load %d: expecting %d values, got %d", no, expected, len(row))
	}

	return &SDomainLoad{
		BaseDevice:  base,
		Numerator:   append([]float64(nil), row[3:3+n+1]...),
		Denominator: append([]float64(nil), row[3+n+1:]...),
	}, nil
}

func (l *FixedLoad) Impedance(frequency float64) complex128 {
	return complex(l.Resistance, l.Reactance)
}

func (l *FixedLoad) Stamp(matrix matrix.DeviceMatrix, status *Status) error {
	return stampLoad(l, matrix, status)
}

func (l *SDomainLoad) Impedance(frequency float64) complex128 {
	s := complex(0, 2*math.Pi*frequency)
	return polynomial(l.Numerator, s) / polynomial(l.Denominator, s)
}

func (l *SDomainLoad) Stamp(matrix matrix.DeviceMatrix, status *Status) error {
	return stampLoad(l, matrix, status)
}

// polynomial evaluates sum(c_i x^i) with Horner's rule.
func polynomial(coefficients []float64, x complex128) complex128 {
	var sum complex128
	for i := len(coefficients) - 1; i >= 0; i-- {
		sum = sum*x + complex(coefficients[i], 0)
	}
	return sum
}

func stampLoad(l Load, matrix matrix.DeviceMatrix, status *Status) error {
	z := l.Impedance(status.Frequency)
	if cmplx.IsNaN(z) || cmplx.IsInf(z) {
		return fmt.Errorf("load %s: impedance is not finite at %g Hz", l.GetName(), status.Frequency)
	}
	z *= complex(status.Weight(l.GetPulse()), 0)
	matrix.AddComplexElement(l.GetPulse(), l.GetPulse(), real(z), imag(z))
	return nil
}
