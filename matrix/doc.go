// SPDX-License-Identifier: MIT

// Package matrix provides the dense row-major storage that collocation
// matrices are assembled into, plus the few kernels used to inspect them.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe accessors (At/Set/Row/SetRow
//     return sentinel errors instead of panicking) and a finite-only numeric
//     policy that rejects NaN/±Inf on write.
//   - MatVec, for y = A·c (spline values at the collocation sites for
//     coefficients c).
//   - RowSums, for partition-of-unity checks on basis rows.
//   - AllClose, for tolerance-based comparison of two matrices.
//
// Loops run in fixed i→j order, so results are deterministic.
//
// See the examples in this package and in collocation for usage patterns.
package matrix
