package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/edp1096/toy-mininec/internal/consts"
	"github.com/edp1096/toy-mininec/pkg/device"
	"github.com/edp1096/toy-mininec/pkg/structure"
)

// StepSequence is Init, Init+Step, ... Count values, in degrees.
type StepSequence struct {
	Init  float64
	Step  float64
	Count int
}

func (s StepSequence) Values() []float64 {
	values := make([]float64, 0, max(s.Count, 0))
	for i := 0; i < s.Count; i++ {
		values = append(values, s.Init+float64(i)*s.Step)
	}
	return values
}

// FarFieldPoint holds gains in dBi. Horizontal is the phi polarization,
// Vertical the theta polarization.
type FarFieldPoint struct {
	Zenith     float64
	Azimuth    float64
	Horizontal float64
	Vertical   float64
	Total      float64
}

// FarFieldAnalysis integrates the solved pulse currents into a gain pattern.
// Zenith is the outer loop, azimuth the inner one.
type FarFieldAnalysis struct {
	BaseAnalysis
	Zenith   StepSequence
	Azimuth  StepSequence
	currents []complex128
	points   []FarFieldPoint
}

func NewFarField(currents []complex128, zenith, azimuth StepSequence) *FarFieldAnalysis {
	return &FarFieldAnalysis{
		BaseAnalysis: *NewBaseAnalysis(),
		Zenith:       zenith,
		Azimuth:      azimuth,
		currents:     currents,
	}
}

func (f *FarFieldAnalysis) Setup(problem *Problem) error {
	if err := f.BaseAnalysis.Setup(problem); err != nil {
		return err
	}
	if len(f.currents) != problem.Structure.NoPulses() || len(f.currents) == 0 {
		return fmt.Errorf("no solution available, solve first")
	}
	if f.Zenith.Count < 1 || f.Azimuth.Count < 1 {
		return fmt.Errorf("zenith and azimuth need at least one step")
	}
	return nil
}

func (f *FarFieldAnalysis) Execute() error {
	if f.Problem == nil {
		return fmt.Errorf("problem not set")
	}
	p := f.Problem

	power := InputPower(p.Sources, f.currents)
	if !(power > 0) {
		return fmt.Errorf("input power must be positive, got %g W", power)
	}

	k := p.Wavenumber()
	scale := k * k * consts.ETA0 / (8 * math.Pi * power)
	withGround := p.Structure.HasGround()
	pulses := p.Structure.Pulses()

	f.points = f.points[:0]
	for _, zenith := range f.Zenith.Values() {
		theta := zenith * math.Pi / 180.0
		for _, azimuth := range f.Azimuth.Values() {
			point := FarFieldPoint{Zenith: zenith, Azimuth: azimuth}
			if withGround && math.Cos(theta) < 0 {
				point.Horizontal, point.Vertical, point.Total = consts.MINDBI, consts.MINDBI, consts.MINDBI
				f.points = append(f.points, point)
				continue
			}

			phi := azimuth * math.Pi / 180.0
			dir := structure.Point{X: math.Sin(theta) * math.Cos(phi), Y: math.Sin(theta) * math.Sin(phi), Z: math.Cos(theta)}
			thetaHat := structure.Point{X: math.Cos(theta) * math.Cos(phi), Y: math.Cos(theta) * math.Sin(phi), Z: -math.Sin(theta)}
			phiHat := structure.Point{X: -math.Sin(phi), Y: math.Cos(phi)}

			nTheta, nPhi := radiationVector(pulses, f.currents, k, dir, thetaHat, phiHat, false)
			if withGround {
				iTheta, iPhi := radiationVector(pulses, f.currents, k, dir, thetaHat, phiHat, true)
				rv, rh := reflection(p.Medium, theta, p.Frequency)
				nTheta += rv * iTheta
				nPhi += rh * iPhi
			}

			gTheta := scale * sqr(cmplx.Abs(nTheta))
			gPhi := scale * sqr(cmplx.Abs(nPhi))
			point.Horizontal = toDbi(gPhi)
			point.Vertical = toDbi(gTheta)
			point.Total = toDbi(gTheta + gPhi)
			f.points = append(f.points, point)
		}
	}
	return nil
}

func (f *FarFieldAnalysis) Points() []FarFieldPoint { return f.points }

// radiationVector returns the theta and phi components of
// sum I_n sum_h d_h exp(jk dir.mid_h), over the mirrored current elements
// when image is set.
func radiationVector(pulses []structure.Pulse, currents []complex128, k float64, dir, thetaHat, phiHat structure.Point, image bool) (complex128, complex128) {
	var nTheta, nPhi complex128
	for n, pulse := range pulses {
		for _, h := range pulse.Halves {
			if image {
				h = h.Mirror()
			}
			d := h.Vector()
			term := currents[n] * cmplx.Exp(complex(0, k*dir.Dot(h.Mid())))
			nTheta += term * complex(d.Dot(thetaHat), 0)
			nPhi += term * complex(d.Dot(phiHat), 0)
		}
	}
	return nTheta, nPhi
}

// InputPower is sum 1/2 Re(V I*) over the sources.
func InputPower(sources []*device.VoltageSource, currents []complex128) float64 {
	var power float64
	for _, src := range sources {
		if src.Pulse < 0 || src.Pulse >= len(currents) {
			continue
		}
		power += 0.5 * real(src.Voltage()*cmplx.Conj(currents[src.Pulse]))
	}
	return power
}

func toDbi(gain float64) float64 {
	if !(gain > 0) {
		return consts.MINDBI
	}
	return math.Max(10*math.Log10(gain), consts.MINDBI)
}

func sqr(x float64) float64 { return x * x }
