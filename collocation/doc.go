// SPDX-License-Identifier: MIT

// Package collocation assembles collocation matrices from a B-spline basis.
//
// What is a collocation matrix?
//
//	For sites τ[0..s) and a basis N_0..N_{n-1}, the collocation matrix A is
//	s×n with A[i][j] = D^{m_i} N_j(τ[i]). Multiplying it by spline
//	coefficients c gives the spline values at the sites (matrix.MatVec), so
//	interpolation reduces to solving A·c = y.
//
// Repeated sites (Hermite data):
//
//	Sites must be sorted. When a site repeats, each further copy asks for the
//	next derivative: m_i counts the equal sites immediately before τ[i]
//	(knots.Multiplicities). Sites [0, 0, 1] therefore produce rows for N(0),
//	N'(0) and N(1). WithDerivativeOrder(k) turns this off and evaluates the
//	k-th derivative on every row.
//
// Usage:
//
//	kv, _ := knots.Augment([]float64{0, 0.25, 0.5, 0.75, 1}, 3)
//	A, err := collocation.Build(kv, 3, []float64{0.1, 0.33})
//	if err != nil { ... }
//	y, _ := matrix.MatVec(A, coeffs)
//
// Errors:
//
//   - ErrNilBasis, ErrNoSites, ErrEmptyBasis, ErrUnsortedSites (WithSortedSites).
//   - basis.ErrInvalidOrder from Build with a negative order.
//   - matrix.ErrNaNInf when a site is NaN or ±Inf, checked before any row
//     is evaluated.
//
// Complexity:
//
//   - Time O(s·m·p) with a cold cache, Space O(s·n).
package collocation
