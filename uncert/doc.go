// Package uncert is the labkit uncertainty-propagation core: it models
// a measured quantity with uncertainty as a first-class algebraic
// value.
//
// 🚀 What does it do?
//
//	Arithmetic on measured quantities produces new quantities whose
//	nominal value and propagated one-sigma uncertainty are tracked
//	automatically via first-order (linearized) error propagation —
//	including correct handling of correlation when the same variable
//	appears several times in an expression:
//	  • Sub(x, x) has exactly zero uncertainty (not √2·σ)
//	  • Add(x, x) has uncertainty 2σ (not √2·σ)
//
// How it works:
//
//	Every derived value carries a lazily-expanded linear combination
//	over the independent Variables it (transitively) depends on. Each
//	arithmetic step is O(1): it records local derivatives against the
//	operands without flattening. When the uncertainty, the derivatives
//	map, or a formatted rendering is requested, the combination is
//	collapsed once — iteratively, with an explicit work-list, so
//	chains of thousands of operations cannot overflow the stack — into
//	a flat map from Variable to net coefficient, and the result is
//	memoized.
//
// ✨ Surface:
//   - NewVariable / NewTagged — independent measured quantities
//   - Add, Sub, Neg, Mul, Div, Pow, Sum — the operator set
//   - Nominal, StdDev, Derivatives, ErrorComponents, StdScore,
//     Relative, EqualWithin — accessors and diagnostics
//   - Correlated / CorrelatedNorm — seed mutually correlated values
//     from a covariance (or correlation) matrix, e.g. fit output
//   - Format / ParseSpec — plain, extended-uncertainty, relative-%
//     and compact parenthetical ("3.14(12)") renderings
//
// Identity matters: two Variables with equal value and σ are distinct
// sources. The package keys linear combinations by pointer identity,
// which is what makes the correlation bookkeeping exact.
package uncert
