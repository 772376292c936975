// SPDX-License-Identifier: MIT

// Package basis evaluates B-spline basis functions and their derivatives
// with the Cox–de Boor recursion.
//
// What is a B-spline basis?
//
//	Given a non-decreasing knot vector t[0..m) and an order p (the polynomial
//	degree: 0 constant, 1 linear, 3 cubic), there are n = m-p-1 basis
//	functions N_{i,p}. Each is a piecewise polynomial supported on
//	[t[i], t[i+p+1]) and, strictly inside the domain, they sum to one
//	(partition of unity).
//
// Algorithm (bottom-up, no recursion):
//
//	N_{i,0}(x) = 1 if t[i] ≤ x < t[i+1], else 0
//	N_{i,q}(x) = (x-t[i])/(t[i+q]-t[i]) · N_{i,q-1}(x)
//	           + (t[i+q+1]-x)/(t[i+q+1]-t[i+1]) · N_{i+1,q-1}(x)
//
//	Every ratio whose denominator is exactly zero contributes 0 (the
//	"0/0 := 0" rule for repeated knots). This is a numeric convention, not an
//	error.
//
//	The k-th derivative runs the value recursion up to order p-k and then
//	replaces the numerators by the constants q and -q for the last k levels:
//
//	D^k N_{i,q} = q/(t[i+q]-t[i]) · D^{k-1} N_{i,q-1}
//	            - q/(t[i+q+1]-t[i+1]) · D^{k-1} N_{i+1,q-1}
//
//	For k > p the result is the zero vector.
//
// Caching:
//
//	A Basis memoizes every (x, k) it has evaluated, keyed by the exact bit
//	pattern of x. Repeated queries return bit-identical values. The cache is
//	never invalidated (knots and order are immutable after New) and is not
//	bounded: sampling a continuum of points grows memory monotonically.
//	Call ResetCache to evict, or build with WithoutCache.
//
// Usage:
//
//	kv, _ := knots.Augment([]float64{0, 0.25, 0.5, 0.75, 1}, 3)
//	b, err := basis.New(kv, 3)
//	if err != nil { ... }
//	vals := b.Evaluate(0.1)           // 7 values summing to 1
//	d2, err := b.Derivative(0.1, 2)   // second derivatives
//
// Caveats:
//
//   - Intervals are half-open, so at the last knot every basis function is 0.
//   - New does not check that the knots are sorted unless WithKnotValidation
//     is given; unsorted knots give silently wrong values.
//
// Complexity:
//
//   - Time O(m·p) per uncached evaluation, Space O(m).
package basis
