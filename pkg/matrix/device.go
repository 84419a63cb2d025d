package matrix

// DeviceMatrix is what lumped devices stamp into. Indices are 0-based pulses.
type DeviceMatrix interface {
	AddComplexElement(i, j int, real, imag float64)
	AddComplexRHS(i int, real, imag float64)
}
