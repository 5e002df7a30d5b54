// Package uncert_test contains unit tests for report formatting and
// the compact spec parser.
package uncert_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labkit/uncert"
)

// TestFormatPlain: the default mode is the raw String rendering.
func TestFormatPlain(t *testing.T) {
	v := mustVar(t, 3.14159, 0.1234)

	assert.Equal(t, "3.14159+/-0.1234", uncert.Format(v, uncert.FormatOptions{Mode: uncert.Plain}))

	exact := uncert.Const(5)
	assert.Equal(t, "5+/-0", uncert.Format(exact, uncert.FormatOptions{Mode: uncert.Plain}))
}

// TestFormatParenthetical: compact notation keeps two significant
// digits of the uncertainty.
func TestFormatParenthetical(t *testing.T) {
	opts := uncert.FormatOptions{Mode: uncert.Parenthetical}

	v := mustVar(t, 3.14159, 0.1234)
	assert.Equal(t, "3.14(12)", uncert.Format(v, opts))

	small := mustVar(t, 0.0031416, 0.000123)
	assert.Equal(t, "0.00314(12)", uncert.Format(small, opts))

	big := mustVar(t, 1234.5, 12.3)
	assert.Equal(t, "1235(12)", uncert.Format(big, opts))
}

// TestFormatParentheticalZeroSigma: an exact value renders as the bare
// nominal, never "x(0)".
func TestFormatParentheticalZeroSigma(t *testing.T) {
	v := mustVar(t, 2.5, 0)
	assert.Equal(t, "2.5", uncert.Format(v, uncert.FormatOptions{Mode: uncert.Parenthetical}))
}

// TestFormatExtended: `v ± k·u` after rounding to the uncertainty.
func TestFormatExtended(t *testing.T) {
	v := mustVar(t, 3.14159, 0.1234)

	assert.Equal(t, "3.14 ± 0.24", uncert.Format(v, uncert.FormatOptions{Mode: uncert.Extended}))
	assert.Equal(t, "3.14 ± 0.36", uncert.Format(v, uncert.FormatOptions{Mode: uncert.Extended, K: 3}))
}

// TestFormatRelativePercent: relative rendering with the coverage
// factor applied to the percentage.
func TestFormatRelativePercent(t *testing.T) {
	v := mustVar(t, 4, 0.1)

	assert.Equal(t, "4 ± 5%", uncert.Format(v, uncert.FormatOptions{Mode: uncert.RelativePercent}))
	assert.Equal(t, "4 ± 2.5%", uncert.Format(v, uncert.FormatOptions{Mode: uncert.RelativePercent, K: 1}))
}

// TestFormatNonFiniteSigma: an infinite uncertainty has no decimal
// place to round against, so every mode falls back to Plain.
func TestFormatNonFiniteSigma(t *testing.T) {
	v := mustVar(t, 3, math.Inf(1))

	for _, mode := range []uncert.Mode{uncert.Extended, uncert.RelativePercent, uncert.Parenthetical} {
		assert.Equal(t, "3+/-+Inf", uncert.Format(v, uncert.FormatOptions{Mode: mode}))
	}
}

// TestParseSpec: the compact string adapter.
func TestParseSpec(t *testing.T) {
	for spec, want := range map[string]uncert.FormatOptions{
		"":   {Mode: uncert.Plain},
		"u":  {Mode: uncert.Parenthetical},
		"U":  {Mode: uncert.Extended, K: 2},
		"U3": {Mode: uncert.Extended, K: 3},
		"R":  {Mode: uncert.RelativePercent, K: 2},
		"R2": {Mode: uncert.RelativePercent, K: 2},
	} {
		got, err := uncert.ParseSpec(spec)
		require.NoError(t, err, "spec %q", spec)
		assert.Equal(t, want, got, "spec %q", spec)
	}

	for _, bad := range []string{"x", "U0", "R-1", "uu", "3U"} {
		_, err := uncert.ParseSpec(bad)
		require.ErrorIs(t, err, uncert.ErrBadFormatSpec, "spec %q", bad)
	}
}
