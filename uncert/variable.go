package uncert

import (
	"fmt"
	"math"
	"sync/atomic"
)

// lastID hands out process-unique ids for diagnostics ordering.
var lastID atomic.Uint64

// Variable is an independent, directly-measured quantity: a nominal
// value plus a one-sigma standard deviation. It is an AffineFunc whose
// linear part is the trivial singleton {self: 1}.
//
// Identity, not value, distinguishes Variables: two Variables built
// from the same numbers are unrelated measurements, and linear
// combinations key on the pointer. Never compare Variables by
// dereferencing.
type Variable struct {
	AffineFunc

	stdDev float64
	tag    string
	id     uint64
}

// NewVariable constructs an independent measured quantity.
// Returns ErrInvalidStdDev for a negative finite or NaN stdDev; +Inf is
// accepted and propagates as infinite uncertainty wherever the variable
// contributes with a nonzero coefficient.
func NewVariable(value, stdDev float64) (*Variable, error) {
	return NewTagged(value, stdDev, "")
}

// NewTagged is NewVariable with a diagnostic label attached.
func NewTagged(value, stdDev float64, tag string) (*Variable, error) {
	if err := validateStdDev(stdDev); err != nil {
		return nil, err
	}

	v := &Variable{stdDev: stdDev, tag: tag, id: lastID.Add(1)}
	v.AffineFunc = AffineFunc{
		nominal: value,
		linear:  newExpanded(map[*Variable]float64{v: 1}),
	}

	return v, nil
}

func validateStdDev(s float64) error {
	if s < 0 || math.IsNaN(s) {
		return fmt.Errorf("%w: %g", ErrInvalidStdDev, s)
	}

	return nil
}

// StdDev returns the variable's own standard deviation. Shadows the
// derived computation on AffineFunc with the stored value (the two are
// always equal for a Variable, this is just the direct path).
func (v *Variable) StdDev() float64 { return v.stdDev }

// S is a shorthand alias for StdDev.
func (v *Variable) S() float64 { return v.stdDev }

// SetStdDev rebinds the standard deviation, re-validating
// non-negativity. Returns ErrInvalidStdDev and leaves the variable
// untouched on violation.
func (v *Variable) SetStdDev(s float64) error {
	if err := validateStdDev(s); err != nil {
		return err
	}
	v.stdDev = s

	return nil
}

// Tag returns the diagnostic label ("" when unset).
func (v *Variable) Tag() string { return v.tag }

// Copy returns a new, independent Variable with the same value, stdDev
// and tag but a fresh identity. By definition a copy of an independent
// source is an unrelated measurement, so the copy is uncorrelated with
// the original: Sub(x, x.Copy()) carries √2·σ, unlike Sub(x, x).
func (v *Variable) Copy() *Variable {
	cp, _ := NewTagged(v.nominal, v.stdDev, v.tag) // stdDev already validated

	return cp
}

// String renders the variable like a derived value, prefixed with its
// tag when one is set: `length [3+/-0.1]`, otherwise `3+/-0.1`.
func (v *Variable) String() string {
	if v.tag == "" {
		return v.AffineFunc.String()
	}

	return fmt.Sprintf("%s [%s]", v.tag, v.AffineFunc.String())
}
