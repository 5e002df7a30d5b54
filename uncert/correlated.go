package uncert

import (
	"fmt"
	"math"

	"github.com/katalvlaran/labkit/matrix"
)

// Correlated builds mutually correlated values from nominal values and
// a covariance matrix (typically the output of a curve fit).
//
// Procedure:
//  1. Take per-element standard deviations from the diagonal; a
//     negative variance fails with ErrInvalidCovariance.
//  2. Normalize into a correlation matrix, substituting 1 for a zero
//     standard deviation so an exactly-certain entry keeps a defined
//     (degenerate) correlation instead of dividing by zero.
//  3. Delegate to CorrelatedNorm.
//
// Tags, when given, must match len(noms) and label the latent sources.
// Shape violations fail with ErrDimensionMismatch.
//
// Guarantee: CovarianceMatrix over the returned values reproduces cov
// up to floating-point tolerance and the negative-eigenvalue clamp.
func Correlated(noms []float64, cov *matrix.Dense, tags ...string) ([]*AffineFunc, error) {
	n := len(noms)
	if cov == nil || cov.Rows() != cov.Cols() || cov.Rows() != n {
		return nil, fmt.Errorf("%w: %d nominal values vs %s covariance", ErrDimensionMismatch, n, shapeOf(cov))
	}

	stdDevs := make([]float64, n)
	for i, variance := range cov.Diag() {
		if variance < 0 {
			return nil, fmt.Errorf("%w: cov[%d,%d] = %g", ErrInvalidCovariance, i, i, variance)
		}
		stdDevs[i] = math.Sqrt(variance)
	}

	norm := make([]float64, n)
	for i, s := range stdDevs {
		norm[i] = s
		if s == 0 {
			norm[i] = 1
		}
	}

	rows := make([][]float64, n)
	for i := 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			cij, err := cov.At(i, j)
			if err != nil {
				return nil, err
			}
			rows[i][j] = cij / (norm[i] * norm[j])
		}
	}
	corr, err := matrix.FromRows(rows)
	if err != nil {
		return nil, err
	}

	return CorrelatedNorm(noms, stdDevs, corr, tags...)
}

// CorrelatedNorm builds correlated values from nominal values,
// per-element standard deviations, and a correlation matrix.
//
// The correlation matrix is eigen-decomposed (symmetric, so the
// eigenvalues are real); negative eigenvalues — numerical artifacts —
// are clamped to zero. One fresh independent Variable per eigenvalue
// becomes a "pure" uncorrelated latent source with σ = √eigenvalue, and
// every returned value is the linear combination of those sources
// weighted by its eigenvector row scaled by its own standard deviation.
func CorrelatedNorm(noms, stdDevs []float64, corr *matrix.Dense, tags ...string) ([]*AffineFunc, error) {
	n := len(noms)
	if len(stdDevs) != n {
		return nil, fmt.Errorf("%w: %d nominal values vs %d std devs", ErrDimensionMismatch, n, len(stdDevs))
	}
	if corr == nil || corr.Rows() != corr.Cols() || corr.Rows() != n {
		return nil, fmt.Errorf("%w: %d nominal values vs %s correlation", ErrDimensionMismatch, n, shapeOf(corr))
	}
	if len(tags) != 0 && len(tags) != n {
		return nil, fmt.Errorf("%w: %d tags for %d values", ErrDimensionMismatch, len(tags), n)
	}
	for i, s := range stdDevs {
		if err := validateStdDev(s); err != nil {
			return nil, fmt.Errorf("std dev %d: %w", i, err)
		}
	}

	eigs, vecs, err := matrix.EigenSym(corr, 0, 0)
	if err != nil {
		return nil, err
	}

	latent := make([]*Variable, n)
	for j := 0; j < n; j++ {
		ev := eigs[j]
		if ev < 0 {
			ev = 0 // numerical artifact of the decomposition
		}
		tag := ""
		if len(tags) == n {
			tag = tags[j]
		}
		if latent[j], err = NewTagged(0, math.Sqrt(ev), tag); err != nil {
			return nil, err
		}
	}

	out := make([]*AffineFunc, n)
	for i := 0; i < n; i++ {
		row, err := vecs.Row(i)
		if err != nil {
			return nil, err
		}
		coords := make(map[*Variable]float64, n)
		for j := 0; j < n; j++ {
			coords[latent[j]] = stdDevs[i] * row[j]
		}
		out[i] = &AffineFunc{nominal: noms[i], linear: newExpanded(coords)}
	}

	return out, nil
}

// CovarianceMatrix recomputes pairwise covariances from the values'
// expanded derivatives: cov(A,B) = Σ ∂A/∂v · ∂B/∂v · σ_v². Applied to
// the output of Correlated it round-trips the input matrix.
func CovarianceMatrix(vals ...Operand) (*matrix.Dense, error) {
	n := len(vals)
	if n == 0 {
		return nil, fmt.Errorf("%w: no values", ErrDimensionMismatch)
	}

	derivs := make([]map[*Variable]float64, n)
	for i, x := range vals {
		derivs[i] = x.affine().derivatives()
	}

	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			var cov float64
			for v, di := range derivs[i] {
				if dj, ok := derivs[j][v]; ok && v.stdDev != 0 {
					cov += di * dj * v.stdDev * v.stdDev
				}
			}
			rows[i][j], rows[j][i] = cov, cov
		}
	}

	return matrix.FromRows(rows)
}

// CorrelationMatrix is CovarianceMatrix normalized by the outer product
// of the values' standard deviations (with the zero-σ substitution of
// Correlated).
func CorrelationMatrix(vals ...Operand) (*matrix.Dense, error) {
	cov, err := CovarianceMatrix(vals...)
	if err != nil {
		return nil, err
	}

	n := cov.Rows()
	norm := make([]float64, n)
	for i, variance := range cov.Diag() {
		norm[i] = math.Sqrt(variance)
		if norm[i] == 0 {
			norm[i] = 1
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cij, _ := cov.At(i, j)
			_ = cov.Set(i, j, cij/(norm[i]*norm[j]))
		}
	}

	return cov, nil
}

func shapeOf(m *matrix.Dense) string {
	if m == nil {
		return "nil"
	}

	return fmt.Sprintf("%dx%d", m.Rows(), m.Cols())
}
