package analysis

import (
	"fmt"
	"time"

	"github.com/edp1096/toy-mininec/pkg/matrix"
)

// CurrentAnalysis fills and solves Z*I = V for the pulse currents.
type CurrentAnalysis struct {
	BaseAnalysis
	currents  []complex128
	fillTime  time.Duration
	solveTime time.Duration
}

func NewCurrent() *CurrentAnalysis {
	return &CurrentAnalysis{BaseAnalysis: *NewBaseAnalysis()}
}

func (c *CurrentAnalysis) Setup(problem *Problem) error {
	if err := c.BaseAnalysis.Setup(problem); err != nil {
		return err
	}
	if problem.Structure.NoPulses() == 0 {
		return fmt.Errorf("structure has no pulses")
	}
	if len(problem.Sources) == 0 {
		return fmt.Errorf("no sources defined")
	}
	c.currents = nil
	return nil
}

func (c *CurrentAnalysis) Execute() error {
	if c.Problem == nil {
		return fmt.Errorf("problem not set")
	}
	p := c.Problem
	pulses := p.Structure.Pulses()

	mat, err := matrix.NewMatrix(len(pulses))
	if err != nil {
		return err
	}
	defer mat.Destroy()

	start := time.Now()
	if err = c.fill(mat); err != nil {
		return err
	}
	c.fillTime = time.Since(start)

	start = time.Now()
	if err = mat.Solve(); err != nil {
		return fmt.Errorf("matrix solve error at f=%g: %v", p.Frequency, err)
	}
	c.solveTime = time.Since(start)

	c.currents = mat.Solution()

	return nil
}

func (c *CurrentAnalysis) fill(mat *matrix.ImpedanceMatrix) error {
	p := c.Problem
	pulses := p.Structure.Pulses()
	kn := kernel{k: p.Wavenumber()}
	withGround := p.Structure.HasGround()

	for m := range pulses {
		for n := range pulses {
			z := kn.impedance(&pulses[m], &pulses[n], withGround)
			mat.AddComplexElement(m, n, real(z), imag(z))
		}
	}

	status := p.Status()
	for _, src := range p.Sources {
		if err := src.Stamp(mat, status); err != nil {
			return fmt.Errorf("stamping error at f=%g: %v", p.Frequency, err)
		}
	}
	for _, load := range p.Loads {
		if err := load.Stamp(mat, status); err != nil {
			return fmt.Errorf("stamping error at f=%g: %v", p.Frequency, err)
		}
	}
	return nil
}

// Currents are the solved pulse currents, 0-based. nil before Execute.
func (c *CurrentAnalysis) Currents() []complex128 { return c.currents }

func (c *CurrentAnalysis) FillTime() time.Duration { return c.fillTime }

func (c *CurrentAnalysis) SolveTime() time.Duration { return c.solveTime }
