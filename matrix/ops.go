// Package matrix: elementary kernels (Mul, Transpose, Scale, MatVec).
// All kernels are pure: operands are never mutated, results are freshly
// allocated, and loop orders are fixed for reproducibility.

package matrix

import "fmt"

// Operation tags used for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opEigen     = "EigenSym"
	opLU        = "LU"
	opInverse   = "Inverse"
)

// wrapOp annotates err with an operation tag, preserving the sentinel
// for errors.Is. Only call with a non-nil err.
func wrapOp(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes C = A × B with the classical i→k→j row-major loop.
// Returns ErrDimensionMismatch when a.Cols != b.Rows.
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, wrapOp(opMul, err)
	}

	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, wrapOp(opMul, err)
	}
	for i := 0; i < a.r; i++ {
		baseA, baseR := i*a.c, i*b.c
		for k := 0; k < a.c; k++ {
			av := a.data[baseA+k]
			if av == 0 {
				continue // zero row entry contributes nothing
			}
			baseB := k * b.c
			for j := 0; j < b.c; j++ {
				res.data[baseR+j] += av * b.data[baseB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a new Dense.
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, wrapOp(opTranspose, err)
	}

	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, wrapOp(opTranspose, err)
	}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res, nil
}

// Scale returns alpha*m as a new Dense. NaN/Inf alpha propagate.
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, wrapOp(opScale, err)
	}

	res := m.Clone()
	for i := range res.data {
		res.data[i] *= alpha
	}

	return res, nil
}

// MatVec computes y = m·x for a column vector x of length m.Cols.
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, wrapOp(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, wrapOp(opMatVec, err)
	}

	y := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		base := i * m.c
		var acc float64
		for j := 0; j < m.c; j++ {
			if xv := x[j]; xv != 0 {
				acc += m.data[base+j] * xv
			}
		}
		y[i] = acc
	}

	return y, nil
}
