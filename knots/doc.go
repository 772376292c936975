// SPDX-License-Identifier: MIT

// Package knots provides the knot-vector utilities that feed a B-spline basis.
//
// What lives here:
//
//   - Augment        — repeat the end knots so a basis of order p is well defined on the whole domain.
//   - RunningAverage — mean of k successive entries (a sliding window).
//   - AutoKnots      — build a knot vector suitable for interpolation at sorted sites.
//   - Multiplicities — for a sorted sequence, how many equal entries precede each element.
//
// All functions are pure: inputs are never mutated and every result is a
// freshly allocated slice. Order p is the polynomial degree as-is
// (p=0 piecewise constant, p=3 cubic), not the MATLAB-style k=p+1.
//
// Usage:
//
//	kv, err := knots.Augment([]float64{0, 0.25, 0.5, 0.75, 1}, 3)
//	// kv = [0 0 0 0 0.25 0.5 0.75 1 1 1 1]
//
//	mult := knots.Multiplicities([]float64{1, 1, 2, 3, 3, 3})
//	// mult = [0 1 0 0 1 2]
//
// Errors are package sentinels (see errors.go); match them with errors.Is.
package knots
