package analysis

import (
	"math"
	"math/cmplx"

	"github.com/edp1096/toy-mininec/internal/consts"
)

// reflection returns the image factors for the theta (vertical) and phi
// (horizontal) far-field components at zenith angle theta (radians).
// A nil medium is an ideal ground: both factors are -1.
func reflection(medium *Medium, theta, frequency float64) (complex128, complex128) {
	if medium == nil {
		return -1, -1
	}

	omega := 2 * math.Pi * frequency
	epsc := complex(medium.Eps, -medium.Conductivity/(omega*consts.EPS0))
	cost := complex(math.Cos(theta), 0)
	sint := math.Sin(theta)
	root := cmplx.Sqrt(epsc - complex(sint*sint, 0))

	rh := (cost - root) / (cost + root)
	rv := (epsc*cost - root) / (epsc*cost + root)
	return -rv, rh
}
