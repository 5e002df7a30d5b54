package matrix

import "math"

// Default tolerances for EigenSym; suitable for the small covariance
// and correlation matrices this toolkit works with.
const (
	DefaultEigenTol     = 1e-10
	DefaultEigenMaxIter = 300
)

// EigenSym computes eigenvalues and eigenvectors of a symmetric matrix
// via classical Jacobi rotations.
//
// Algorithm:
//  1. Validate m symmetric within tol (ErrAsymmetry / ErrNonSquare).
//  2. Repeatedly pick the off-diagonal pair (p,q) with the largest
//     |A[p,q]| in fixed i→j scan order and rotate it to zero,
//     accumulating the rotations into Q.
//  3. Stop when the largest off-diagonal magnitude drops below tol;
//     if that does not happen within maxIter rotations, fail with
//     ErrEigenFailed.
//
// Returns the eigenvalues (diagonal of the rotated matrix) and Q whose
// columns are the corresponding orthonormal eigenvectors, so that
// m ≈ Q · diag(eigs) · Qᵀ. Pass tol <= 0 or maxIter <= 0 to use
// DefaultEigenTol / DefaultEigenMaxIter.
//
// Determinism: fixed pivot scan and fixed update order produce stable
// results for identical inputs.
// Complexity: O(maxIter·n³) time, O(n²) space.
func EigenSym(m *Dense, tol float64, maxIter int) ([]float64, *Dense, error) {
	if tol <= 0 {
		tol = DefaultEigenTol
	}
	if maxIter <= 0 {
		maxIter = DefaultEigenMaxIter
	}
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, wrapOp(opEigen, err)
	}

	n := m.r
	a := m.Clone() // working copy; the input stays intact
	q, err := Identity(n)
	if err != nil {
		return nil, nil, wrapOp(opEigen, err)
	}

	for iter := 0; iter < maxIter; iter++ {
		// Pivot search: largest |a[p,q]| above the diagonal.
		var p, qq int
		maxOff := 0.0
		for i := 0; i < n; i++ {
			base := i * n
			for j := i + 1; j < n; j++ {
				if off := math.Abs(a.data[base+j]); off > maxOff {
					maxOff, p, qq = off, i, j
				}
			}
		}
		if maxOff < tol {
			break // converged
		}

		app := a.data[p*n+p]
		aqq := a.data[qq*n+qq]
		apq := a.data[p*n+qq]

		// Rotation parameters; |apq| >= tol here, so theta is finite.
		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		// Apply the rotation to A, keeping symmetry explicit.
		for i := 0; i < n; i++ {
			if i == p || i == qq {
				continue
			}
			aip := a.data[i*n+p]
			aiq := a.data[i*n+qq]
			nip := c*aip - s*aiq
			niq := s*aip + c*aiq
			a.data[i*n+p], a.data[p*n+i] = nip, nip
			a.data[i*n+qq], a.data[qq*n+i] = niq, niq
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
		a.data[qq*n+qq] = s*s*app + 2*c*s*apq + c*c*aqq
		a.data[p*n+qq], a.data[qq*n+p] = 0, 0

		// Accumulate the rotation into Q.
		for i := 0; i < n; i++ {
			qip := q.data[i*n+p]
			qiq := q.data[i*n+qq]
			q.data[i*n+p] = c*qip - s*qiq
			q.data[i*n+qq] = s*qip + c*qiq
		}
	}

	// Final convergence check on the off-diagonal mass.
	for i := 0; i < n; i++ {
		base := i * n
		for j := i + 1; j < n; j++ {
			if math.Abs(a.data[base+j]) >= tol {
				return nil, nil, wrapOp(opEigen, ErrEigenFailed)
			}
		}
	}

	eigs := make([]float64, n)
	for i := 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}
