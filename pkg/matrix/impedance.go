package matrix

import (
	"fmt"

	"github.com/edp1096/sparse"
)

// ImpedanceMatrix is the complex pulse impedance matrix Z and excitation
// vector V of Z*I = V. The public API is 0-based in pulse numbers; the sparse
// package is 1-based, the shift lives in index().
type ImpedanceMatrix struct {
	Size         int
	matrix       *sparse.Matrix
	rhs          []float64
	rhsImag      []float64
	solution     []float64
	solutionImag []float64
	config       *sparse.Configuration
}

func NewMatrix(size int) (*ImpedanceMatrix, error) {
	if size <= 0 {
		return nil, fmt.Errorf("matrix size must be positive, got %d", size)
	}

	config := &sparse.Configuration{
		Real:                    true,
		Complex:                 true,
		SeparatedComplexVectors: true,
		Expandable:              false,
		Translate:               false,
		ModifiedNodal:           false,
		TiesMultiplier:          5,
		PrinterWidth:            140,
		Annotate:                0,
	}

	mat, err := sparse.Create(int64(size), config)
	if err != nil {
		return nil, fmt.Errorf("creating sparse matrix: %v", err)
	}

	return &ImpedanceMatrix{
		Size:         size,
		matrix:       mat,
		rhs:          make([]float64, size+1), // 1-based indexing
		rhsImag:      make([]float64, size+1),
		solution:     make([]float64, size+1),
		solutionImag: make([]float64, size+1),
		config:       config,
	}, nil
}

func (m *ImpedanceMatrix) index(i int) (int64, bool) {
	if i < 0 || i >= m.Size {
		return 0, false
	}
	return int64(i + 1), true
}

func (m *ImpedanceMatrix) AddComplexElement(i, j int, real, imag float64) {
	row, okRow := m.index(i)
	col, okCol := m.index(j)
	if !okRow || !okCol {
		return
	}

	element := m.matrix.GetElement(row, col)
	element.Real += real
	element.Imag += imag
}

func (m *ImpedanceMatrix) AddComplexRHS(i int, real, imag float64) {
	row, ok := m.index(i)
	if !ok {
		return
	}
	m.rhs[row] += real
	m.rhsImag[row] += imag
}

func (m *ImpedanceMatrix) Solve() error {
	var err error

	err = m.matrix.Factor()
	if err != nil {
		return fmt.Errorf("matrix factorization failed: %v", err)
	}

	m.solution, m.solutionImag, err = m.matrix.SolveComplex(m.rhs, m.rhsImag)
	if err != nil {
		return fmt.Errorf("matrix solve failed: %v", err)
	}

	return nil
}

// Solution returns the solved pulse currents, 0-based.
func (m *ImpedanceMatrix) Solution() []complex128 {
	currents := make([]complex128, m.Size)
	for i := range currents {
		row := i + 1
		if row < len(m.solution) && row < len(m.solutionImag) {
			currents[i] = complex(m.solution[row], m.solutionImag[row])
		}
	}
	return currents
}

func (m *ImpedanceMatrix) Destroy() {
	if m.matrix != nil {
		m.matrix.Destroy()
		m.matrix = nil
	}
}
