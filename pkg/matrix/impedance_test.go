package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveComplexSystem(t *testing.T) {
	m, err := NewMatrix(2)
	require.NoError(t, err)
	defer m.Destroy()

	// [[2, j], [j, 2]] * I = [1, 0]  ->  I = [2/5, -j/5]
	m.AddComplexElement(0, 0, 2, 0)
	m.AddComplexElement(0, 1, 0, 1)
	m.AddComplexElement(1, 0, 0, 1)
	m.AddComplexElement(1, 1, 2, 0)
	m.AddComplexRHS(0, 1, 0)

	require.NoError(t, m.Solve())
	currents := m.Solution()
	require.Len(t, currents, 2)
	assert.InDelta(t, 0.4, real(currents[0]), 1e-12)
	assert.InDelta(t, 0.0, imag(currents[0]), 1e-12)
	assert.InDelta(t, 0.0, real(currents[1]), 1e-12)
	assert.InDelta(t, -0.2, imag(currents[1]), 1e-12)
}

func TestOutOfRangeStampsAreIgnored(t *testing.T) {
	m, err := NewMatrix(1)
	require.NoError(t, err)
	defer m.Destroy()

	m.AddComplexElement(-1, 0, 5, 5)
	m.AddComplexElement(0, 1, 5, 5)
	m.AddComplexElement(0, 0, 1, 1)
	m.AddComplexRHS(3, 1, 0)
	m.AddComplexRHS(0, 2, 0)

	// (1+j) * I = 2  ->  I = 1-j
	require.NoError(t, m.Solve())
	currents := m.Solution()
	require.Len(t, currents, 1)
	assert.InDelta(t, 1.0, real(currents[0]), 1e-12)
	assert.InDelta(t, -1.0, imag(currents[0]), 1e-12)
}

func TestNewMatrixRejectsEmpty(t *testing.T) {
	_, err := NewMatrix(0)
	assert.Error(t, err)
}
