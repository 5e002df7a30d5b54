// Package labkit is a toolkit for working up physics-lab measurements:
// propagate uncertainty through arithmetic exactly, fit curves and
// lines, reduce repeated measurements, and round results the way a
// report expects.
//
// 🚀 What is labkit?
//
//	A small, composable set of packages around one core idea — a
//	measured quantity with uncertainty as a first-class algebraic
//	value:
//		• uncert/   — correlation-exact uncertainty propagation:
//		  Variables, affine derived values, lazy linear combinations,
//		  correlated construction from covariance matrices, report
//		  formatting ("3.14(12)", "v ± 2u", relative %)
//		• fitcurve/ — nonlinear least squares (Levenberg–Marquardt)
//		  with parameter covariance and a bridge into uncert
//		• linreg/   — closed-form line fit with parameter std errors
//		• meanunc/  — mean ± standard error of repeated measurements
//		• rounding/ — round-to-uncertainty and significant figures
//		• matrix/   — the dense kernels underneath (symmetric eigen,
//		  LU inverse), deterministic by construction
//
// ✨ Why choose labkit?
//
//   - Correlation done right — x−x is exactly 0±0, x+x is 2σ, and
//     values seeded from a fit covariance keep their cross-correlations
//   - Fail-fast errors — package sentinels, errors.Is everywhere,
//     no silent NaN
//   - Lazy core — O(1) arithmetic, one iterative expansion on demand,
//     safe on ten-thousand-step derivation chains
//
// Quick taste:
//
//	length, _ := uncert.NewVariable(12.70, 0.05)
//	width, _ := uncert.NewVariable(3.10, 0.05)
//	area := uncert.Mul(length, width)
//	fmt.Println(uncert.Format(area, uncert.FormatOptions{Mode: uncert.Parenthetical}))
//
// Dive into each package's doc.go and example_test.go for details.
//
//	go get github.com/katalvlaran/labkit
package labkit
