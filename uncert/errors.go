// Package uncert: sentinel error set.
// All failures are local and synchronous; callers match with errors.Is.

package uncert

import "errors"

var (
	// ErrInvalidStdDev rejects a negative finite (or NaN) standard
	// deviation at Variable construction or reassignment. +Inf is legal
	// and denotes unknown/unbounded uncertainty.
	ErrInvalidStdDev = errors.New("uncert: invalid standard deviation")

	// ErrZeroStdDev is returned by StdScore when the standard deviation
	// is exactly zero and the standardized residual is undefined.
	ErrZeroStdDev = errors.New("uncert: zero standard deviation: undefined result")

	// ErrUnsupportedOperand is returned by Coerce for a dynamic value
	// that is neither a number nor an uncertainty-carrying type.
	ErrUnsupportedOperand = errors.New("uncert: unsupported operand type")

	// ErrPowDomain rejects Pow with an uncertain exponent over a
	// non-positive base, where d(a^b)/db = a^b·ln(a) is undefined.
	ErrPowDomain = errors.New("uncert: power with uncertain exponent requires a positive base")

	// ErrDimensionMismatch indicates inconsistent lengths/shapes in
	// correlated-value construction.
	ErrDimensionMismatch = errors.New("uncert: dimension mismatch")

	// ErrInvalidCovariance indicates a covariance matrix with a negative
	// diagonal entry (a negative variance).
	ErrInvalidCovariance = errors.New("uncert: covariance matrix has negative variance")

	// ErrBadFormatSpec is returned by ParseSpec for an unrecognized
	// format string.
	ErrBadFormatSpec = errors.New("uncert: unrecognized format spec")
)
