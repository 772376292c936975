// SPDX-License-Identifier: MIT

// Package bspline evaluates B-spline basis functions and assembles
// collocation matrices. The root package holds documentation only; the
// work happens in four subpackages.
//
// What is inside?
//
//	knots/       — knot-vector utilities: Augment, RunningAverage, AutoKnots,
//	               Multiplicities, IsSorted
//	basis/       — Cox–de Boor evaluator with derivatives of any order and a
//	               per-basis evaluation cache
//	collocation/ — collocation matrices (Hermite-style repeated sites or a
//	               fixed derivative order)
//	matrix/      — row-major Dense storage, MatVec, RowSums, AllClose
//
// Typical flow:
//
//	kv, _ := knots.Augment([]float64{0, 0.25, 0.5, 0.75, 1}, 3) // clamp the ends
//	b, _ := basis.New(kv, 3)                                    // 7 cubic functions
//	vals := b.Evaluate(0.1)                                     // sums to 1
//	A, _ := collocation.FromBasis(b, []float64{0.1, 0.33})      // 2×7
//	y, _ := matrix.MatVec(A, coeffs)                            // spline at the sites
//
// Non-goals: fitting and solving. The module assembles A; solving A·c = y is
// left to a linear-algebra package of the caller's choice. Plotting is left
// to callers too: Basis.Domain gives the range to sample.
//
//	go get github.com/katalvlaran/bspline
package bspline
