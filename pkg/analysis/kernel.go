package analysis

import (
	"math"
	"math/cmplx"

	"github.com/edp1096/toy-mininec/internal/consts"
	"github.com/edp1096/toy-mininec/pkg/structure"
	"github.com/edp1096/toy-mininec/pkg/util"
)

const quadratureOrder = 8

// kernel evaluates the reduced thin-wire kernel exp(-jkR)/(4 pi R),
// R = sqrt(r^2 + a^2), averaged over a segment.
type kernel struct {
	k float64
}

// psi returns (1/L) * integral over seg of exp(-jkR)/(4 pi R) ds, seen from r.
// The 1/R part is integrated in closed form, the smooth remainder
// (exp(-jkR)-1)/R by Gauss-Legendre quadrature.
func (kn kernel) psi(r structure.Point, seg structure.Segment) complex128 {
	length := seg.Length()
	u := seg.Vector().Scale(1 / length)
	rel := r.Sub(seg.From)
	t0 := rel.Dot(u)
	rho2 := rel.Dot(rel) - t0*t0
	if rho2 < 0 {
		rho2 = 0
	}
	d := math.Sqrt(rho2 + seg.Radius*seg.Radius)

	singular := math.Asinh((length-t0)/d) - math.Asinh(-t0/d)
	smooth := util.IntegrateComplex(func(t float64) complex128 {
		dist := math.Hypot(t-t0, d)
		return (cmplx.Exp(complex(0, -kn.k*dist)) - 1) / complex(dist, 0)
	}, 0, length, quadratureOrder)

	return (complex(singular, 0) + smooth) / complex(4*math.Pi*length, 0)
}

// coupling is the voltage induced along observation pulse obs by a unit
// current on the current elements halves, whose charge sits on forward
// (positive) and backward (negative).
func (kn kernel) coupling(obs *structure.Pulse, halves []structure.Segment, forward, backward *structure.Segment) complex128 {
	var vector complex128
	for _, h := range halves {
		vector += complex(obs.Extent.Dot(h.Vector()), 0) * kn.psi(obs.Position, h)
	}

	potential := func(r structure.Point) complex128 {
		var phi complex128
		if forward != nil {
			phi += kn.psi(r, *forward)
		}
		if backward != nil {
			phi -= kn.psi(r, *backward)
		}
		return phi
	}
	scalar := potential(obs.Plus) - potential(obs.Minus)

	eta := consts.ETA0
	return complex(0, kn.k*eta)*vector - complex(0, eta/kn.k)*scalar
}

// impedance is Z[m][n]. With ground the image of the source pulse, a mirrored
// copy carrying the opposite current and charge, is subtracted.
func (kn kernel) impedance(obs, src *structure.Pulse, withGround bool) complex128 {
	z := kn.coupling(obs, src.Halves, src.Forward, src.Backward)
	if !withGround {
		return z
	}

	images := make([]structure.Segment, len(src.Halves))
	for i, h := range src.Halves {
		images[i] = h.Mirror()
	}
	return z - kn.coupling(obs, images, mirrored(src.Forward), mirrored(src.Backward))
}

func mirrored(seg *structure.Segment) *structure.Segment {
	if seg == nil {
		return nil
	}
	m := seg.Mirror()
	return &m
}
