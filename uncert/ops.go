// Package uncert: the arithmetic operator set.
//
// Every operator is O(1): it computes the nominal result and records a
// lazy linear part referencing the operands' linear parts with local
// derivative factors. Nothing is flattened until StdDev/Derivatives/
// formatting ask for it.

package uncert

import (
	"fmt"
	"math"
)

func errUnsupported(v any) error {
	return fmt.Errorf("%w: %T", ErrUnsupportedOperand, v)
}

// Add returns a + b. Addition is already linear, so the new linear part
// is just the two operands' parts with unit factors.
func Add(a, b Operand) *AffineFunc {
	af, bf := a.affine(), b.affine()

	return &AffineFunc{
		nominal: af.nominal + bf.nominal,
		linear:  newPending(term{factor: 1, comb: af.linear}, term{factor: 1, comb: bf.linear}),
	}
}

// Sum returns x₁ + x₂ + ... + xₙ in a single lazy step. Sum() is the
// exact zero.
func Sum(xs ...Operand) *AffineFunc {
	var nominal float64
	terms := make([]term, len(xs))
	for i, x := range xs {
		f := x.affine()
		nominal += f.nominal
		terms[i] = term{factor: 1, comb: f.linear}
	}

	return &AffineFunc{nominal: nominal, linear: newPending(terms...)}
}

// Neg returns −a: the linear part is a's part behind a single −1
// scaling wrapper, pushed lazily rather than expanded.
func Neg(a Operand) *AffineFunc {
	af := a.affine()

	return &AffineFunc{
		nominal: -af.nominal,
		linear:  newPending(term{factor: -1, comb: af.linear}),
	}
}

// Sub returns a − b, i.e. a + (−b). Shared sources cancel on expansion:
// Sub(x, x) carries exactly zero uncertainty.
func Sub(a, b Operand) *AffineFunc {
	af, bf := a.affine(), b.affine()

	return &AffineFunc{
		nominal: af.nominal - bf.nominal,
		linear:  newPending(term{factor: 1, comb: af.linear}, term{factor: -1, comb: bf.linear}),
	}
}

// Mul returns a · b with product-rule local derivatives: a's linear
// part scaled by b's nominal and b's part scaled by a's nominal. When
// both operands are the same object the two contributions sum through
// the common expansion, giving d(x²)/dx = 2x rather than double
// counting.
func Mul(a, b Operand) *AffineFunc {
	af, bf := a.affine(), b.affine()

	return &AffineFunc{
		nominal: af.nominal * bf.nominal,
		linear: newPending(
			term{factor: bf.nominal, comb: af.linear},
			term{factor: af.nominal, comb: bf.linear},
		),
	}
}

// Div returns a / b. Local derivatives: 1/b.v over a's part and
// −a.v/b.v² over b's part. Division by an exact zero follows IEEE
// semantics in the nominal value and the factors.
func Div(a, b Operand) *AffineFunc {
	af, bf := a.affine(), b.affine()

	return &AffineFunc{
		nominal: af.nominal / bf.nominal,
		linear: newPending(
			term{factor: 1 / bf.nominal, comb: af.linear},
			term{factor: -af.nominal / (bf.nominal * bf.nominal), comb: bf.linear},
		),
	}
}

// Pow returns a ** b via the general power rule:
//
//	d/d(a-terms) = b.v · a.v^(b.v−1)
//	d/d(b-terms) = a.v^b.v · ln(a.v)
//
// The exponent-side derivative exists only for a positive base, so an
// uncertain exponent over a non-positive base fails with ErrPowDomain
// instead of silently producing NaN. With an exact exponent the usual
// float semantics of math.Pow apply.
func Pow(a, b Operand) (*AffineFunc, error) {
	af, bf := a.affine(), b.affine()
	nominal := math.Pow(af.nominal, bf.nominal)

	terms := make([]term, 0, 2)
	if !af.linear.isEmpty() {
		terms = append(terms, term{
			factor: bf.nominal * math.Pow(af.nominal, bf.nominal-1),
			comb:   af.linear,
		})
	}
	if !bf.linear.isEmpty() {
		if af.nominal <= 0 {
			return nil, fmt.Errorf("%w: base %g", ErrPowDomain, af.nominal)
		}
		terms = append(terms, term{factor: nominal * math.Log(af.nominal), comb: bf.linear})
	}

	return &AffineFunc{nominal: nominal, linear: newPending(terms...)}, nil
}
