// Package uncert: report-oriented rendering of values with
// uncertainty. The renderer consumes only (nominal, stdDev) and the
// rounding collaborator; it adds nothing to the algebra.

package uncert

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/katalvlaran/labkit/rounding"
)

// Mode selects how a value with uncertainty is rendered.
type Mode int

const (
	// Plain renders `<nominal>+/-<stdDev>` without any rounding, the
	// same as AffineFunc.String.
	Plain Mode = iota

	// Extended renders `v ± k·u` with both numbers rounded to the
	// uncertainty (coverage factor k, default 2).
	Extended

	// RelativePercent renders `v ± k·r%` where r is the relative
	// uncertainty after rounding.
	RelativePercent

	// Parenthetical renders the compact `3.14(12)` notation, meaning
	// 3.14 ± 0.12. A value with exactly zero uncertainty renders as the
	// nominal value alone — chosen policy, documented here, since
	// "000(0)"-style displays are ambiguous.
	Parenthetical
)

// DefaultCoverage is the coverage factor applied when FormatOptions.K
// is unset.
const DefaultCoverage = 2

// FormatOptions selects a rendering mode and coverage factor.
type FormatOptions struct {
	Mode Mode
	K    int // coverage factor; <= 0 means DefaultCoverage
}

// specRe recognizes the compact string specs: "U", "U3", "R", "R2", "u".
var specRe = regexp.MustCompile(`^([UR])([1-9]\d*)?$`)

// ParseSpec adapts the compact string format specs to FormatOptions:
//
//	""    → Plain
//	"U"   → Extended, k = 2        "U3" → Extended, k = 3
//	"R"   → RelativePercent, k = 2 "R2" → RelativePercent, k = 2
//	"u"   → Parenthetical
//
// Anything else fails with ErrBadFormatSpec. The string form exists
// only as a thin adapter; call sites inside this module use
// FormatOptions directly.
func ParseSpec(spec string) (FormatOptions, error) {
	if spec == "" {
		return FormatOptions{Mode: Plain}, nil
	}
	if spec == "u" {
		return FormatOptions{Mode: Parenthetical}, nil
	}

	m := specRe.FindStringSubmatch(spec)
	if m == nil {
		return FormatOptions{}, fmt.Errorf("%w: %q", ErrBadFormatSpec, spec)
	}
	opts := FormatOptions{K: DefaultCoverage}
	if m[2] != "" {
		opts.K, _ = strconv.Atoi(m[2]) // regexp guarantees digits
	}
	if m[1] == "U" {
		opts.Mode = Extended
	} else {
		opts.Mode = RelativePercent
	}

	return opts, nil
}

// stripRe removes the leading zeros and decimal point of a rounded
// uncertainty for the parenthetical form: "0.012" → "12".
var stripRe = regexp.MustCompile(`0*\.0*`)

// Format renders x according to opts. A non-finite uncertainty falls
// back to the Plain rendering regardless of mode, as there is no
// decimal place to round against.
func Format(x Operand, opts FormatOptions) string {
	f := x.affine()
	n, s := f.nominal, f.StdDev()

	if opts.Mode == Plain || math.IsInf(s, 1) || math.IsNaN(s) {
		return f.String()
	}

	k := opts.K
	if k <= 0 {
		k = DefaultCoverage
	}

	rv, ru, _ := rounding.ToUncertainty(n, s) // s >= 0 by construction

	switch opts.Mode {
	case Extended:
		return fmt.Sprintf("%v ± %v", rv, float64(k)*ru)

	case RelativePercent:
		rel := math.Inf(1)
		if rv != 0 {
			rel = math.Abs(ru / rv)
		}

		return fmt.Sprintf("%v ± %.2g%%", rv, float64(k)*rel*100)

	case Parenthetical:
		if s == 0 {
			return strconv.FormatFloat(n, 'g', -1, 64)
		}
		digits := 0
		if ru > 0 {
			digits = -int(math.Floor(math.Log10(ru))) + 1
			if digits < 0 {
				digits = 0
			}
		}
		uStr := stripRe.ReplaceAllString(strconv.FormatFloat(ru, 'f', digits, 64), "")

		return fmt.Sprintf("%s(%s)", strconv.FormatFloat(rv, 'f', digits, 64), uStr)
	}

	return f.String()
}
