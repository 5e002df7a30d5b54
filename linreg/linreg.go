package linreg

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/labkit/uncert"
)

var (
	// ErrLengthMismatch indicates x and y samples of different lengths.
	ErrLengthMismatch = errors.New("linreg: x and y must have the same length")

	// ErrTooFewPoints indicates fewer than two samples.
	ErrTooFewPoints = errors.New("linreg: need at least two points")

	// ErrDegenerate indicates input a line cannot be fitted to or
	// inverted over: zero x-variance in Fit, zero slope in PredictX.
	ErrDegenerate = errors.New("linreg: degenerate input")
)

// Line is a fitted least-squares line.
type Line struct {
	// Slope and Intercept are the point estimates of y = Intercept + Slope·x.
	Slope, Intercept float64
	// SlopeStdErr and InterceptStdErr are the parameter standard errors
	// (zero when there are no residual degrees of freedom, i.e. n = 2).
	SlopeStdErr, InterceptStdErr float64
	// R is the Pearson correlation coefficient of the samples.
	R float64
	// N is the sample count.
	N int
}

// Fit fits the line. Errors: ErrLengthMismatch, ErrTooFewPoints, and
// ErrDegenerate when all x values coincide.
func Fit(xs, ys []float64) (*Line, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(xs), len(ys))
	}
	n := len(xs)
	if n < 2 {
		return nil, ErrTooFewPoints
	}

	meanX := stat.Mean(xs, nil)
	var sxx float64
	for _, x := range xs {
		d := x - meanX
		sxx += d * d
	}
	if sxx == 0 {
		return nil, fmt.Errorf("%w: zero x-variance", ErrDegenerate)
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)

	var rss float64
	for i, x := range xs {
		d := ys[i] - (intercept + slope*x)
		rss += d * d
	}

	var slopeSE, interceptSE float64
	if n > 2 {
		sigma2 := rss / float64(n-2)
		slopeSE = math.Sqrt(sigma2 / sxx)
		interceptSE = math.Sqrt(sigma2 * (1/float64(n) + meanX*meanX/sxx))
	}

	return &Line{
		Slope:           slope,
		Intercept:       intercept,
		SlopeStdErr:     slopeSE,
		InterceptStdErr: interceptSE,
		R:               stat.Correlation(xs, ys, nil),
		N:               n,
	}, nil
}

// PredictY evaluates the line at x.
func (l *Line) PredictY(x float64) float64 { return l.Intercept + l.Slope*x }

// PredictX inverts the line at y. Returns ErrDegenerate for a zero
// slope.
func (l *Line) PredictX(y float64) (float64, error) {
	if l.Slope == 0 {
		return 0, fmt.Errorf("%w: zero slope", ErrDegenerate)
	}

	return (y - l.Intercept) / l.Slope, nil
}

// SlopeValue returns the slope as an independent uncertainty value.
// Note the two parameters of a line fit are in general correlated; for
// correlation-exact derived quantities prefer fitcurve with a linear
// model and CorrelatedParams.
func (l *Line) SlopeValue() *uncert.Variable {
	v, _ := uncert.NewTagged(l.Slope, l.SlopeStdErr, "slope") // std err >= 0 by construction

	return v
}

// InterceptValue returns the intercept as an independent uncertainty
// value. See the correlation note on SlopeValue.
func (l *Line) InterceptValue() *uncert.Variable {
	v, _ := uncert.NewTagged(l.Intercept, l.InterceptStdErr, "intercept")

	return v
}

// String renders the fit like
// `Line(slope=2.0000±0.0112, intercept=0.9987±0.0245, r=0.9996, n=12)`.
func (l *Line) String() string {
	return fmt.Sprintf("Line(slope=%.4f±%.4f, intercept=%.4f±%.4f, r=%.4f, n=%d)",
		l.Slope, l.SlopeStdErr, l.Intercept, l.InterceptStdErr, l.R, l.N)
}
