// Package matrix_test contains unit tests for the symmetric eigen and
// LU/Inverse kernels.
package matrix_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labkit/matrix"
)

// TestEigenSymKnownSpectrum: [[2,1],[1,2]] has eigenvalues {1, 3}.
func TestEigenSymKnownSpectrum(t *testing.T) {
	m := mustFromRows(t, [][]float64{
		{2, 1},
		{1, 2},
	})

	eigs, vecs, err := matrix.EigenSym(m, 0, 0)
	require.NoError(t, err)
	require.Len(t, eigs, 2)
	require.NotNil(t, vecs)

	sorted := append([]float64(nil), eigs...)
	sort.Float64s(sorted)
	assert.InDelta(t, 1.0, sorted[0], 1e-9)
	assert.InDelta(t, 3.0, sorted[1], 1e-9)

	// The input must stay intact.
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

// TestEigenSymReconstruction: Q·diag(eigs)·Qᵀ reproduces the input.
func TestEigenSymReconstruction(t *testing.T) {
	m := mustFromRows(t, [][]float64{
		{4, 1, 0.5},
		{1, 3, 0.2},
		{0.5, 0.2, 2},
	})

	eigs, q, err := matrix.EigenSym(m, 0, 0)
	require.NoError(t, err)

	n := m.Rows()
	lambda, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i, ev := range eigs {
		require.NoError(t, lambda.Set(i, i, ev))
	}

	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	ql, err := matrix.Mul(q, lambda)
	require.NoError(t, err)
	back, err := matrix.Mul(ql, qt)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want, err := m.At(i, j)
			require.NoError(t, err)
			got, err := back.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, want, got, 1e-8, "[%d,%d]", i, j)
		}
	}
}

// TestEigenSymOrthonormalVectors: QᵀQ = I.
func TestEigenSymOrthonormalVectors(t *testing.T) {
	m := mustFromRows(t, [][]float64{
		{5, 2},
		{2, 1},
	})

	_, q, err := matrix.EigenSym(m, 0, 0)
	require.NoError(t, err)

	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	prod, err := matrix.Mul(qt, q)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			got, err := prod.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, want, got, 1e-9)
		}
	}
}

// TestEigenSymRejectsAsymmetry: the decomposition is defined for
// symmetric input only.
func TestEigenSymRejectsAsymmetry(t *testing.T) {
	m := mustFromRows(t, [][]float64{
		{1, 2},
		{3, 1},
	})

	_, _, err := matrix.EigenSym(m, 0, 0)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
}

// TestEigenSymIterationBudget: a too-small rotation budget surfaces as
// a convergence failure, not a wrong answer.
func TestEigenSymIterationBudget(t *testing.T) {
	m := mustFromRows(t, [][]float64{
		{4, 1, 0.5},
		{1, 3, 0.2},
		{0.5, 0.2, 2},
	})

	_, _, err := matrix.EigenSym(m, 0, 1)
	require.ErrorIs(t, err, matrix.ErrEigenFailed)
}

// TestLURoundTrip: L·U reproduces the input, L is unit lower, U upper.
func TestLURoundTrip(t *testing.T) {
	m := mustFromRows(t, [][]float64{
		{4, 3},
		{6, 3},
	})

	l, u, err := matrix.LU(m)
	require.NoError(t, err)

	prod, err := matrix.Mul(l, u)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want, err := m.At(i, j)
			require.NoError(t, err)
			got, err := prod.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, want, got, 1e-12, "[%d,%d]", i, j)
		}
	}

	diag, err := l.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, diag, "L carries a unit diagonal")
	below, err := u.At(1, 0)
	require.NoError(t, err)
	assert.Zero(t, below, "U is upper triangular")
}

// TestLUSingular: a rank-deficient matrix hits a zero pivot.
func TestLUSingular(t *testing.T) {
	m := mustFromRows(t, [][]float64{
		{1, 2},
		{2, 4},
	})

	_, _, err := matrix.LU(m)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// TestInverseRoundTrip: A·A⁻¹ = I within tolerance.
func TestInverseRoundTrip(t *testing.T) {
	m := mustFromRows(t, [][]float64{
		{4, 7},
		{2, 6},
	})

	inv, err := matrix.Inverse(m)
	require.NoError(t, err)

	prod, err := matrix.Mul(m, inv)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			got, err := prod.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, want, got, 1e-12, "[%d,%d]", i, j)
		}
	}
}

// TestInverseSingularAndShape: singular and non-square inputs fail with
// their sentinels.
func TestInverseSingularAndShape(t *testing.T) {
	singular := mustFromRows(t, [][]float64{
		{1, 2},
		{2, 4},
	})
	_, err := matrix.Inverse(singular)
	require.ErrorIs(t, err, matrix.ErrSingular)

	rect := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err = matrix.Inverse(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
