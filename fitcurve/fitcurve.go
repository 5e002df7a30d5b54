package fitcurve

import (
	"fmt"
	"math"
	"strings"

	"github.com/maorshutman/lm"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/labkit/matrix"
	"github.com/katalvlaran/labkit/uncert"
)

// Model evaluates the fitted function at x for the given parameters.
type Model func(x float64, params []float64) float64

// Options configures the solver. Zero fields take the documented
// defaults.
type Options struct {
	// MaxIterations caps the Levenberg–Marquardt iterations (default 200).
	MaxIterations int
	// Tau scales the initial damping (default 1e-6).
	Tau float64
	// Eps1 is the gradient-norm stopping threshold (default 1e-8).
	Eps1 float64
	// Eps2 is the step-norm stopping threshold (default 1e-8).
	Eps2 float64
	// ObjectiveTol stops when the objective falls below it (default 1e-16).
	ObjectiveTol float64
}

// DefaultOptions returns the solver defaults.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 200,
		Tau:           1e-6,
		Eps1:          1e-8,
		Eps2:          1e-8,
		ObjectiveTol:  1e-16,
	}
}

// Ones returns an all-ones initial guess for n parameters — the
// conventional default when nothing better is known.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}

	return out
}

// Result holds a completed fit.
type Result struct {
	// Params are the best-fit parameters.
	Params []float64
	// StdErrs are the per-parameter standard errors; all +Inf when the
	// covariance could not be estimated.
	StdErrs []float64
	// Cov is the parameter covariance matrix, nil when it could not be
	// estimated (singular JᵀJ or n <= p).
	Cov *matrix.Dense
	// R2 is the coefficient of determination; NaN for a constant y.
	R2 float64

	model Model
	xs    []float64
}

// Fit fits model to the samples starting from init (whose length fixes
// the parameter count; see Ones). A nil opts uses DefaultOptions.
//
// Errors: ErrNilModel, ErrLengthMismatch, ErrEmptyGuess,
// ErrTooFewPoints, and ErrNotConverged when the solver fails.
func Fit(model Model, xs, ys, init []float64, opts *Options) (*Result, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(xs), len(ys))
	}
	p := len(init)
	if p == 0 {
		return nil, ErrEmptyGuess
	}
	if len(xs) < p {
		return nil, fmt.Errorf("%w: %d samples for %d parameters", ErrTooFewPoints, len(xs), p)
	}

	o := DefaultOptions()
	if opts != nil {
		if opts.MaxIterations > 0 {
			o.MaxIterations = opts.MaxIterations
		}
		if opts.Tau > 0 {
			o.Tau = opts.Tau
		}
		if opts.Eps1 > 0 {
			o.Eps1 = opts.Eps1
		}
		if opts.Eps2 > 0 {
			o.Eps2 = opts.Eps2
		}
		if opts.ObjectiveTol > 0 {
			o.ObjectiveTol = opts.ObjectiveTol
		}
	}

	residuals := func(dst, params []float64) {
		for i, x := range xs {
			dst[i] = model(x, params) - ys[i]
		}
	}
	numJac := lm.NumJac{Func: residuals}
	problem := lm.LMProblem{
		Dim:        p,
		Size:       len(xs),
		Func:       residuals,
		Jac:        numJac.Jac,
		InitParams: append([]float64(nil), init...),
		Tau:        o.Tau,
		Eps1:       o.Eps1,
		Eps2:       o.Eps2,
	}
	solution, err := lm.LM(problem, &lm.Settings{Iterations: o.MaxIterations, ObjectiveTol: o.ObjectiveTol})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotConverged, err)
	}
	params := append([]float64(nil), solution.X...)

	resid := make([]float64, len(xs))
	residuals(resid, params)
	rss := floats.Dot(resid, resid)

	meanY := stat.Mean(ys, nil)
	var tss float64
	for _, y := range ys {
		d := y - meanY
		tss += d * d
	}
	r2 := math.NaN()
	if tss > 0 {
		r2 = 1 - rss/tss
	}

	res := &Result{Params: params, R2: r2, model: model, xs: xs}
	res.Cov, res.StdErrs = covariance(model, xs, params, rss)

	return res, nil
}

// covariance estimates σ̂²·(JᵀJ)⁻¹ from a central-difference Jacobian
// of the model at the solution. Returns (nil, all +Inf) when there are
// no residual degrees of freedom or JᵀJ is singular — mirroring the
// "could not estimate covariance" outcome of classical curve-fit
// routines rather than failing the whole fit.
func covariance(model Model, xs, params []float64, rss float64) (*matrix.Dense, []float64) {
	n, p := len(xs), len(params)
	if n <= p {
		return nil, infSlice(p)
	}

	jac, err := matrix.NewDense(n, p)
	if err != nil {
		return nil, infSlice(p)
	}
	work := append([]float64(nil), params...)
	for k := 0; k < p; k++ {
		h := stepSize(params[k])
		work[k] = params[k] + h
		for i, x := range xs {
			_ = jac.Set(i, k, model(x, work))
		}
		work[k] = params[k] - h
		for i, x := range xs {
			hi, _ := jac.At(i, k)
			_ = jac.Set(i, k, (hi-model(x, work))/(2*h))
		}
		work[k] = params[k]
	}

	jt, err := matrix.Transpose(jac)
	if err != nil {
		return nil, infSlice(p)
	}
	jtj, err := matrix.Mul(jt, jac)
	if err != nil {
		return nil, infSlice(p)
	}
	inv, err := matrix.Inverse(jtj)
	if err != nil {
		return nil, infSlice(p)
	}

	sigma2 := rss / float64(n-p)
	cov, err := matrix.Scale(inv, sigma2)
	if err != nil {
		return nil, infSlice(p)
	}

	stderrs := make([]float64, p)
	for k := range stderrs {
		variance, _ := cov.At(k, k)
		if variance < 0 {
			variance = 0 // numerical artifact of the inversion
		}
		stderrs[k] = math.Sqrt(variance)
	}

	return cov, stderrs
}

func stepSize(p float64) float64 {
	h := 1e-6 * math.Abs(p)
	if h < 1e-8 {
		h = 1e-8
	}

	return h
}

func infSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Inf(1)
	}

	return out
}

// Predict evaluates the fitted model at x.
func (r *Result) Predict(x float64) float64 { return r.model(x, r.Params) }

// PredictAll evaluates the fitted model over a slice of x values.
func (r *Result) PredictAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = r.model(x, r.Params)
	}

	return out
}

// CorrelatedParams seeds the uncertainty algebra with the fitted
// parameters: the returned values carry the fit's full covariance
// structure, so quantities derived from several parameters propagate
// their correlation correctly. Tags, when given, label the latent
// sources. Returns ErrNoCovariance when Cov is nil.
func (r *Result) CorrelatedParams(tags ...string) ([]*uncert.AffineFunc, error) {
	if r.Cov == nil {
		return nil, ErrNoCovariance
	}

	return uncert.Correlated(r.Params, r.Cov, tags...)
}

// String renders the fit like `Fit(params=[2.0000, 0.9987], stderrs=[0.0112, 0.0245], r2=0.9993)`.
func (r *Result) String() string {
	var b strings.Builder
	b.WriteString("Fit(params=[")
	writeFloats(&b, r.Params)
	b.WriteString("], stderrs=[")
	writeFloats(&b, r.StdErrs)
	fmt.Fprintf(&b, "], r2=%.4f)", r.R2)

	return b.String()
}

func writeFloats(b *strings.Builder, xs []float64) {
	for i, x := range xs {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(b, "%.4f", x)
	}
}
