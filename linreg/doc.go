// Package linreg fits a least-squares line y = intercept + slope·x in
// closed form and reports the parameters with their standard errors and
// the Pearson correlation coefficient — the everyday workhorse of a
// lab report's linearized plots.
//
// The point estimates come from gonum/stat; this package adds the
// standard-error bookkeeping and the bridge into the uncert algebra
// (SlopeValue / InterceptValue).
package linreg
