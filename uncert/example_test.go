// Package uncert_test provides runnable examples for the uncertainty
// algebra. Each example runs via “go test -run Example”, showing both
// code and expected output.
package uncert_test

import (
	"fmt"

	"github.com/katalvlaran/labkit/matrix"
	"github.com/katalvlaran/labkit/uncert"
)

// ExampleSub_cancellation demonstrates the defining property of the
// algebra: a value minus itself is exactly certain, because both sides
// track the same source.
func ExampleSub_cancellation() {
	// 1) One measurement, used twice.
	x, _ := uncert.NewVariable(5, 0.1)

	// 2) x−x cancels through the shared source; x−x' does not.
	fmt.Println(uncert.Sub(x, x))
	fmt.Println(uncert.Sub(x, x.Copy()).StdDev() > 0.1)
	// Output:
	// 0+/-0
	// true
}

// ExampleMul demonstrates product-rule propagation and the compact
// parenthetical report notation.
func ExampleMul() {
	// 1) Two independent length measurements, in millimetres.
	length, _ := uncert.NewTagged(12.70, 0.05, "length")
	width, _ := uncert.NewTagged(3.10, 0.05, "width")

	// 2) The area inherits both uncertainties in quadrature.
	area := uncert.Mul(length, width)

	// 3) Render for the report: value(two digits of sigma).
	fmt.Println(uncert.Format(area, uncert.FormatOptions{Mode: uncert.Parenthetical}))
	// Output: 39.37(65)
}

// ExampleFormat demonstrates the extended mode with a coverage factor.
func ExampleFormat() {
	g, _ := uncert.NewVariable(9.81, 0.03)

	// Default coverage factor is 2.
	fmt.Println(uncert.Format(g, uncert.FormatOptions{Mode: uncert.Extended}))
	// Output: 9.81 ± 0.06
}

// ExampleCorrelated demonstrates seeding the algebra from a covariance
// matrix, as delivered by a curve fit.
func ExampleCorrelated() {
	// 1) Two fitted parameters with variances 4 and 9, covariance 2.
	cov, _ := matrix.FromRows([][]float64{
		{4, 2},
		{2, 9},
	})
	params, _ := uncert.Correlated([]float64{10, 20}, cov)

	// 2) The individual sigmas come off the diagonal…
	fmt.Printf("p0 = %.0f ± %.0f\n", params[0].Nominal(), params[0].StdDev())
	fmt.Printf("p1 = %.0f ± %.0f\n", params[1].Nominal(), params[1].StdDev())

	// 3) …and derived quantities use the cross term:
	//    var(p0+p1) = 4 + 9 + 2·2 = 17.
	sum := uncert.Add(params[0], params[1])
	fmt.Printf("var(sum) = %.0f\n", sum.StdDev()*sum.StdDev())
	// Output:
	// p0 = 10 ± 2
	// p1 = 20 ± 3
	// var(sum) = 17
}

// ExampleAffineFunc_ErrorComponents demonstrates the per-source error
// budget of a derived value.
func ExampleAffineFunc_ErrorComponents() {
	v, _ := uncert.NewTagged(2.0, 0.1, "voltage")
	i, _ := uncert.NewTagged(0.5, 0.01, "current")

	power := uncert.Mul(v, i)
	comps := power.ErrorComponents()
	fmt.Printf("from voltage: %.3f\n", comps[v])
	fmt.Printf("from current: %.3f\n", comps[i])
	// Output:
	// from voltage: 0.050
	// from current: 0.020
}
