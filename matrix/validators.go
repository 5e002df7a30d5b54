// Package matrix: central validators shared by every kernel.
// Kernels call these before touching data; each returns a plain
// sentinel (optionally annotated) so callers can errors.Is-match.

package matrix

import (
	"fmt"
	"math"
)

// ValidateNotNil rejects a nil *Dense.
func ValidateNotNil(m *Dense) error {
	if m == nil || m.data == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSquare rejects non-square matrices.
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return fmt.Errorf("%w: %dx%d", ErrNonSquare, m.r, m.c)
	}

	return nil
}

// ValidateSymmetric rejects matrices where |m[i,j]-m[j,i]| > tol
// for any pair. Implies ValidateSquare.
func ValidateSymmetric(m *Dense, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > tol {
				return fmt.Errorf("%w: m[%d,%d]=%g vs m[%d,%d]=%g",
					ErrAsymmetry, i, j, m.data[i*n+j], j, i, m.data[j*n+i])
			}
		}
	}

	return nil
}

// ValidateSameShape rejects operand pairs with differing dimensions.
func ValidateSameShape(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrDimensionMismatch, a.r, a.c, b.r, b.c)
	}

	return nil
}

// ValidateMulCompatible rejects pairs where a.Cols != b.Rows.
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return fmt.Errorf("%w: %dx%d × %dx%d", ErrDimensionMismatch, a.r, a.c, b.r, b.c)
	}

	return nil
}

// ValidateVecLen rejects vectors whose length differs from want.
func ValidateVecLen(x []float64, want int) error {
	if len(x) != want {
		return fmt.Errorf("%w: vector len %d, want %d", ErrDimensionMismatch, len(x), want)
	}

	return nil
}
