// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an
// operation tag); tests and callers match them with errors.Is.
// Panics are reserved for programmer errors in private helpers.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (r <= 0, c <= 0, or ragged row input).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers (At/Set) return this, they do not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Mul where a.Cols != b.Rows, or a vector of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric
	// violated symmetry beyond the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tol")

	// ErrEigenFailed indicates the Jacobi eigensolver did not reduce the
	// off-diagonal mass below tol within maxIter sweeps.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrSingular is returned on a zero pivot during LU/Inverse.
	// The factorization does not pivot; a zero pivot surfaces as this
	// error instead of being repaired.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates a nil *Dense receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
