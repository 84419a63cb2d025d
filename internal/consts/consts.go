package consts

import "math"

const (
	LIGHTSPEED = 299792458.0      // Speed of light in vacuum (m/s)
	MU0        = 4e-7 * math.Pi   // Permeability of free space (H/m)
	EPS0       = 8.854187817e-12  // Permittivity of free space (F/m)
	ETA0       = MU0 * LIGHTSPEED // Impedance of free space (ohm)
	MEGA       = 1e6              // MHz to Hz
	MINDBI     = -999.0           // Gain floor reported for null directions (dBi)
)
