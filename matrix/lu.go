package matrix

// LU computes the Doolittle factorization A = L·U with unit diagonal on
// L and no pivoting. The scheme is deterministic: a zero pivot is not
// repaired, it surfaces as ErrSingular.
//
// Determinism: fixed i→{j>=i} order for U, then {j>i}→i for L.
// Complexity: O(n³) time, O(n²) space.
func LU(m *Dense) (l, u *Dense, err error) {
	if err = ValidateSquare(m); err != nil {
		return nil, nil, wrapOp(opLU, err)
	}

	n := m.r
	if l, err = Identity(n); err != nil {
		return nil, nil, wrapOp(opLU, err)
	}
	if u, err = NewDense(n, n); err != nil {
		return nil, nil, wrapOp(opLU, err)
	}

	for i := 0; i < n; i++ {
		baseI := i * n
		// Row i of U.
		for j := i; j < n; j++ {
			sum := 0.0
			for k := 0; k < i; k++ {
				sum += l.data[baseI+k] * u.data[k*n+j]
			}
			u.data[baseI+j] = m.data[baseI+j] - sum
		}

		pivot := u.data[baseI+i]
		if pivot == 0 {
			return nil, nil, wrapOp(opLU, ErrSingular)
		}

		// Column i of L.
		for j := i + 1; j < n; j++ {
			baseJ := j * n
			sum := 0.0
			for k := 0; k < i; k++ {
				sum += l.data[baseJ+k] * u.data[k*n+i]
			}
			l.data[baseJ+i] = (m.data[baseJ+i] - sum) / pivot
		}
	}

	return l, u, nil
}

// Inverse computes A⁻¹ via LU factorization and n triangular solves.
// Returns ErrSingular when a zero pivot is detected. The input is not
// mutated.
//
// Complexity: O(n³) time, O(n²) space.
func Inverse(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, wrapOp(opInverse, err)
	}

	l, u, err := LU(m)
	if err != nil {
		return nil, wrapOp(opInverse, err)
	}

	n := m.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, wrapOp(opInverse, err)
	}

	y := make([]float64, n)
	x := make([]float64, n)
	for col := 0; col < n; col++ {
		// Forward solve L·y = e_col.
		for i := 0; i < n; i++ {
			sum := 0.0
			base := i * n
			for k := 0; k < i; k++ {
				sum += l.data[base+k] * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward solve U·x = y.
		for i := n - 1; i >= 0; i-- {
			sum := 0.0
			base := i * n
			for k := i + 1; k < n; k++ {
				sum += u.data[base+k] * x[k]
			}
			pivot := u.data[base+i]
			if pivot == 0 {
				return nil, wrapOp(opInverse, ErrSingular)
			}
			x[i] = (y[i] - sum) / pivot
		}
		for i := 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
