// Package matrix provides the small dense linear-algebra kernel the
// labkit toolkit runs on: row-major Dense storage, deterministic
// Mul/Transpose/MatVec/Scale, a symmetric Jacobi eigensolver, and
// Doolittle LU with inversion.
//
// Design notes:
//   - One concrete type (*Dense), no interface indirection: every caller
//     in this module owns its matrices and wants the flat fast path.
//   - Fail-fast validation with package sentinels; all kernels return
//     errors matched via errors.Is, never panic on caller input.
//   - Fixed loop orders everywhere, so results are reproducible
//     bit-for-bit across runs.
//
// The eigensolver intentionally trades speed for determinism: classical
// Jacobi sweeps with a fixed pivot scan. The matrices in this toolkit
// are covariance/correlation matrices of a handful of fit parameters,
// so O(maxIter·n³) is irrelevant and a stable, explicit convergence
// failure (ErrEigenFailed) is worth more than BLAS throughput.
package matrix
