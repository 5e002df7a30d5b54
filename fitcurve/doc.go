// Package fitcurve fits a nonlinear model to (x, y) samples by
// Levenberg–Marquardt least squares and reports the fitted parameters
// with their uncertainties.
//
// The solver is github.com/maorshutman/lm with a numerical Jacobian;
// this package adds the lab-report bookkeeping around it:
//   - parameter covariance σ̂²·(JᵀJ)⁻¹ with σ̂² = RSS/(n−p)
//   - per-parameter standard errors (√diag of the covariance)
//   - coefficient of determination R²
//   - a bridge into the uncert algebra: Result.CorrelatedParams seeds
//     correlated uncertainty values from the fit covariance, so derived
//     quantities computed from the parameters propagate correctly.
//
// Non-convergence surfaces as ErrNotConverged — a distinct condition,
// never NaN-filled placeholder parameters; whether to substitute
// placeholders is the caller's policy. When the covariance cannot be
// estimated (singular JᵀJ, or no residual degrees of freedom), the fit
// still succeeds: Cov is nil and every standard error is +Inf.
package fitcurve
