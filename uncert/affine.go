package uncert

import (
	"math"
	"strconv"
)

// AffineFunc is a derived scalar with propagated uncertainty: a nominal
// value plus a linear combination whose coefficients are the partial
// derivatives of the value with respect to every ultimate Variable it
// depends on. Results of the package operators are AffineFuncs; a
// Variable is-an AffineFunc over itself.
//
// An AffineFunc holds non-owning references (by identity) to the
// Variables it depends on. Before expansion the same Variable may be
// referenced along several paths; after expansion it appears at most
// once with its net coefficient, which is what collapses x−x to a zero
// contribution.
type AffineFunc struct {
	nominal float64
	linear  *linComb
}

// Operand is anything the arithmetic accepts: a *Variable, an
// *AffineFunc, or an exact Const. The interface is closed on purpose —
// correctness depends on every operand carrying a well-formed linear
// part. Dynamic values go through Coerce.
type Operand interface {
	affine() *AffineFunc
}

func (f *AffineFunc) affine() *AffineFunc { return f }

// Const is an exact numeric operand: zero uncertainty, empty linear
// part. Plain numbers enter expressions as `uncert.Const(3)`.
type Const float64

func (c Const) affine() *AffineFunc {
	return &AffineFunc{nominal: float64(c), linear: newExpanded(nil)}
}

// Coerce adapts a dynamically-typed value into an Operand. Accepts the
// package's own types and Go's common numeric kinds; anything else
// fails with ErrUnsupportedOperand.
func Coerce(v any) (Operand, error) {
	switch x := v.(type) {
	case Operand:
		return x, nil
	case float64:
		return Const(x), nil
	case float32:
		return Const(x), nil
	case int:
		return Const(x), nil
	case int32:
		return Const(x), nil
	case int64:
		return Const(x), nil
	default:
		return nil, errUnsupported(v)
	}
}

// Nominal returns the best-estimate central value, ignoring
// uncertainty.
func (f *AffineFunc) Nominal() float64 { return f.nominal }

// N is a shorthand alias for Nominal.
func (f *AffineFunc) N() float64 { return f.nominal }

// derivatives exposes the memoized expanded map for in-package use.
// Callers must not mutate it.
func (f *AffineFunc) derivatives() map[*Variable]float64 { return f.linear.expand() }

// Derivatives returns the partial derivative of the value with respect
// to each ultimate Variable it depends on. The map is a copy and safe
// to mutate. Expansion happens (and is cached) on first access.
func (f *AffineFunc) Derivatives() map[*Variable]float64 {
	src := f.derivatives()
	out := make(map[*Variable]float64, len(src))
	for v, d := range src {
		out[v] = d
	}

	return out
}

// ErrorComponents returns each source Variable's contribution magnitude
// |∂f/∂v · σ_v| to the total uncertainty.
//
// Explicit special cases instead of raw IEEE semantics: a zero σ_v
// yields a zero component regardless of the derivative, and a zero net
// derivative yields a zero component regardless of σ_v — so neither
// 0·Inf direction can produce NaN.
func (f *AffineFunc) ErrorComponents() map[*Variable]float64 {
	derivs := f.derivatives()
	out := make(map[*Variable]float64, len(derivs))
	for v, d := range derivs {
		if v.stdDev == 0 || d == 0 {
			out[v] = 0

			continue
		}
		out[v] = math.Abs(d * v.stdDev)
	}

	return out
}

// StdDev returns the propagated one-sigma uncertainty: the
// root-sum-of-squares of the error components.
func (f *AffineFunc) StdDev() float64 {
	var sum float64
	for _, comp := range f.ErrorComponents() {
		sum += comp * comp
	}

	return math.Sqrt(sum)
}

// S is a shorthand alias for StdDev.
func (f *AffineFunc) S() float64 { return f.StdDev() }

// Relative returns the relative uncertainty |σ/nominal|. A zero nominal
// value yields +Inf — a defined degenerate result, not an error.
func (f *AffineFunc) Relative() float64 {
	if f.nominal == 0 {
		return math.Inf(1)
	}

	return math.Abs(f.StdDev() / f.nominal)
}

// StdScore returns the standardized residual (value − nominal) / σ.
// Returns ErrZeroStdDev when σ is exactly zero.
func (f *AffineFunc) StdScore(value float64) (float64, error) {
	s := f.StdDev()
	if s == 0 {
		return 0, ErrZeroStdDev
	}

	return (value - f.nominal) / s, nil
}

// Copy returns an independent AffineFunc with a structurally copied
// linear part. The underlying Variables stay shared by reference, so
// the copy remains correlated with the original — copying a derived
// value does not re-measure anything. (Copying a Variable does; see
// Variable.Copy.)
func (f *AffineFunc) Copy() *AffineFunc {
	return &AffineFunc{
		nominal: f.nominal,
		linear:  f.linear.copyTree(map[*linComb]*linComb{}),
	}
}

// String renders `<nominal>+/-<stdDev>`, with a literal 0 when the
// uncertainty is exactly zero.
func (f *AffineFunc) String() string {
	n := strconv.FormatFloat(f.nominal, 'g', -1, 64)
	s := f.StdDev()
	if s == 0 {
		return n + "+/-0"
	}

	return n + "+/-" + strconv.FormatFloat(s, 'g', -1, 64)
}

// EqualWithin reports whether a and b agree within their mutual
// expanded uncertainty at coverage factor k:
// |a−b| ≤ k·σ(a−b). The comparison goes through the algebra, so shared
// sources cancel before σ is taken.
func EqualWithin(a, b Operand, k float64) bool {
	diff := Sub(a, b)

	return math.Abs(diff.nominal) <= k*diff.StdDev()
}
