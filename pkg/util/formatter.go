package util

import (
	"fmt"
	"math"
	"math/cmplx"
)

func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case absValue >= 1e6:
		return fmt.Sprintf("%.3f M%s", value/1e6, unit)
	case absValue >= 1e3:
		return fmt.Sprintf("%.3f k%s", value/1e3, unit)
	case absValue >= 1:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.3f m%s", value*1e3, unit)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.3f u%s", value*1e6, unit)
	case absValue >= 1e-9:
		return fmt.Sprintf("%.3f n%s", value*1e9, unit)
	case absValue >= 1e-12:
		return fmt.Sprintf("%.3f p%s", value*1e12, unit)
	default:
		return fmt.Sprintf("%.3e %s", value, unit)
	}
}

// FormatFrequency takes MHz.
func FormatFrequency(mhz float64) string {
	switch {
	case mhz >= 1e3:
		return fmt.Sprintf("%7.3f GHz", mhz/1e3)
	case mhz >= 1:
		return fmt.Sprintf("%7.3f MHz", mhz)
	default:
		return fmt.Sprintf("%7.3f kHz", mhz*1e3)
	}
}

func FormatMagnitude(value float64) string {
	if value >= 1000 || (value < 0.001 && value != 0) {
		return fmt.Sprintf("%8.2e", value) // "1.00e+03" or "5.43e-05"
	}
	return fmt.Sprintf("%8.3g", value) // "  732.5 "
}

func FormatPhase(value float64) string {
	return fmt.Sprintf("%6.1f", WrapAngle(value)) // "  90.0"
}

// FormatImpedance renders a rectangular phasor, e.g. "73.08 + j42.51 ohm".
func FormatImpedance(z complex128) string {
	sign := "+"
	im := imag(z)
	if im < 0 {
		sign = "-"
		im = -im
	}
	return fmt.Sprintf("%.2f %s j%.2f ohm", real(z), sign, im)
}

// FormatPhasor renders magnitude and phase, e.g. "I=1.23e-02<-12.3deg".
func FormatPhasor(name string, z complex128) string {
	phase := cmplx.Phase(z) * 180.0 / math.Pi
	return fmt.Sprintf("%s=%s<%sdeg", name, FormatMagnitude(cmplx.Abs(z)), FormatPhase(phase))
}
