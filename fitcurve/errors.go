package fitcurve

import "errors"

var (
	// ErrNilModel indicates a nil model function.
	ErrNilModel = errors.New("fitcurve: nil model")

	// ErrLengthMismatch indicates x and y samples of different lengths.
	ErrLengthMismatch = errors.New("fitcurve: x and y must have the same length")

	// ErrEmptyGuess indicates an empty initial parameter guess; the
	// guess fixes the parameter count, so it cannot be omitted.
	ErrEmptyGuess = errors.New("fitcurve: empty initial guess")

	// ErrTooFewPoints indicates fewer samples than parameters.
	ErrTooFewPoints = errors.New("fitcurve: fewer samples than parameters")

	// ErrNotConverged indicates the solver failed to converge. Distinct
	// from every other condition so callers can choose their own
	// recovery policy.
	ErrNotConverged = errors.New("fitcurve: fit did not converge")

	// ErrNoCovariance is returned by CorrelatedParams when the
	// covariance could not be estimated for this fit.
	ErrNoCovariance = errors.New("fitcurve: covariance was not estimated")
)
