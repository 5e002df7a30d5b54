// Package meanunc reduces repeated measurements of one quantity to
// their mean and the standard error of the mean (SEM = s/√n, with s the
// sample standard deviation), exposed as an uncert source for further
// propagation.
package meanunc

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/labkit/uncert"
)

// ErrTooFewPoints indicates fewer than two measurements — the sample
// standard deviation needs at least one degree of freedom.
var ErrTooFewPoints = errors.New("meanunc: need at least two measurements")

// Sample is a reduced series of repeated measurements.
type Sample struct {
	// Mean is the arithmetic mean.
	Mean float64
	// StdErr is the standard error of the mean.
	StdErr float64
	// N is the number of measurements.
	N int
}

// Mean reduces the measurements. Returns ErrTooFewPoints for fewer
// than two.
func Mean(data []float64) (*Sample, error) {
	if len(data) < 2 {
		return nil, ErrTooFewPoints
	}

	n := len(data)

	return &Sample{
		Mean:   stat.Mean(data, nil),
		StdErr: stat.StdDev(data, nil) / math.Sqrt(float64(n)),
		N:      n,
	}, nil
}

// Value returns the sample as an independent uncertainty source
// (mean ± SEM) for the uncert algebra.
func (s *Sample) Value() *uncert.Variable {
	v, _ := uncert.NewTagged(s.Mean, s.StdErr, "mean") // SEM >= 0 by construction

	return v
}

// String renders the sample like `Sample(mean=9.8123, stderr=0.0342, n=10)`.
func (s *Sample) String() string {
	return fmt.Sprintf("Sample(mean=%.4g, stderr=%.4g, n=%d)", s.Mean, s.StdErr, s.N)
}
