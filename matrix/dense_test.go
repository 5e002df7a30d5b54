// Package matrix_test contains unit tests for the Dense container,
// its constructors and accessors.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labkit/matrix"
)

func mustFromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// TestNewDenseZeroInit: a fresh Dense is all zeros of the right shape.
func TestNewDenseZeroInit(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			assert.Zero(t, v)
		}
	}
}

// TestNewDenseBadShape: non-positive dimensions are rejected.
func TestNewDenseBadShape(t *testing.T) {
	for _, tc := range []struct{ r, c int }{{0, 3}, {3, 0}, {-1, 2}} {
		_, err := matrix.NewDense(tc.r, tc.c)
		require.ErrorIs(t, err, matrix.ErrBadShape, "%dx%d", tc.r, tc.c)
	}
}

// TestFromRows: row-major construction, with ragged input rejected.
func TestFromRows(t *testing.T) {
	m := mustFromRows(t, [][]float64{
		{1, 2},
		{3, 4},
	})
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.FromRows(nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestAtSetBounds: out-of-range access fails instead of panicking.
func TestAtSetBounds(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	require.NoError(t, m.Set(0, 1, 9))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(5, 0, 1), matrix.ErrOutOfRange)
}

// TestIdentityDiagRow: Identity, Diag and Row agree with each other.
func TestIdentityDiagRow(t *testing.T) {
	id, err := matrix.Identity(3)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 1, 1}, id.Diag())

	row, err := id.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0}, row)

	_, err = id.Row(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.Identity(0)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

// TestCloneIsDeep: mutating a clone leaves the original intact.
func TestCloneIsDeep(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	cp := m.Clone()

	require.NoError(t, cp.Set(0, 0, 99))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "clone mutation must not leak back")
}

// TestRowIsCopy: Row hands out a copy, not a view.
func TestRowIsCopy(t *testing.T) {
	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	row, err := m.Row(0)
	require.NoError(t, err)
	row[0] = 42

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}
