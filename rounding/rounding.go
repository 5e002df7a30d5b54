package rounding

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidUncertainty rejects a negative or NaN uncertainty.
	ErrInvalidUncertainty = errors.New("rounding: invalid uncertainty")

	// ErrLengthMismatch indicates value/uncertainty slices of different
	// lengths.
	ErrLengthMismatch = errors.New("rounding: length mismatch")
)

// ToUncertainty rounds v and u to the decimal place of the second
// significant digit of u, half away from zero — keeping two significant
// digits of the uncertainty and aligning the value with it:
//
//	ToUncertainty(3.14159, 0.1234) = (3.14, 0.12)
//
// A zero u aligns v against its own leading digit instead (two
// significant figures of v). An infinite u is returned unchanged along
// with the raw v, since there is no decimal place to align to.
// Returns ErrInvalidUncertainty for negative or NaN u.
func ToUncertainty(v, u float64) (rv, ru float64, err error) {
	if u < 0 || math.IsNaN(u) {
		return 0, 0, fmt.Errorf("%w: %g", ErrInvalidUncertainty, u)
	}
	if math.IsInf(u, 1) {
		return v, u, nil
	}

	base := u
	if u == 0 {
		base = v
	}
	if base == 0 {
		return 0, 0, nil
	}

	decimals := placesFor(base)

	return halfUp(v, decimals), halfUp(u, decimals), nil
}

// ToUncertaintySlice applies ToUncertainty elementwise.
// Returns ErrLengthMismatch when the slices differ in length.
func ToUncertaintySlice(vs, us []float64) (rvs, rus []float64, err error) {
	if len(vs) != len(us) {
		return nil, nil, fmt.Errorf("%w: %d values vs %d uncertainties", ErrLengthMismatch, len(vs), len(us))
	}

	rvs = make([]float64, len(vs))
	rus = make([]float64, len(us))
	for i := range vs {
		if rvs[i], rus[i], err = ToUncertainty(vs[i], us[i]); err != nil {
			return nil, nil, fmt.Errorf("element %d: %w", i, err)
		}
	}

	return rvs, rus, nil
}

// Sig2 rounds x to two significant figures. Zero, NaN and ±Inf pass
// through unchanged.
func Sig2(x float64) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	return halfUp(x, placesFor(x))
}

// Sig2Slice applies Sig2 elementwise into a fresh slice.
func Sig2Slice(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = Sig2(x)
	}

	return out
}

// placesFor returns the number of decimal places that keeps two
// significant digits of x: positive below 1, negative at 100 and above.
func placesFor(x float64) int {
	return -(int(math.Floor(math.Log10(math.Abs(x)))) - 1)
}

// halfUp rounds x to the given decimal places, ties away from zero.
// Negative places round left of the decimal point.
func halfUp(x float64, places int) float64 {
	p := math.Pow(10, float64(places))

	return math.Copysign(math.Floor(math.Abs(x)*p+0.5)/p, x)
}
