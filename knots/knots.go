// SPDX-License-Identifier: MIT

// Package knots - knot-vector construction and inspection.
//
// Purpose:
//   - Turn a bare breakpoint list into a knot vector with repeated end knots (Augment).
//   - Derive interpolation-ready knots from collocation sites (AutoKnots).
//   - Count per-element multiplicity of sorted data (Multiplicities), which the
//     collocation builder maps to derivative orders.
//
// Complexity quicksheet:
//   - Augment: O(m+p); RunningAverage: O(n*k); AutoKnots: O(n*k); Multiplicities: O(n).

package knots

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ---------- error context tags ----------

const (
	opAugment        = "Augment"
	opRunningAverage = "RunningAverage"
	opAutoKnots      = "AutoKnots"
)

// knotsErrorf wraps a sentinel with the operation that detected it.
func knotsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Augment returns knots with order extra copies of the first knot prepended
// and order extra copies of the last knot appended.
//
// Implementation:
//   - Stage 1: validate non-empty input and order ≥ 0.
//   - Stage 2: allocate len(knots)+2*order and fill prefix, body, suffix.
//
// Behavior highlights:
//   - One copy of each end knot already comes from knots itself, so the result
//     starts and ends with order+1 equal entries.
//   - Existing knots are never removed; the output is always longer (order > 0).
//
// Errors:
//   - ErrInvalidShape (empty knots), ErrInvalidOrder (order < 0).
//
// Complexity:
//   - Time O(m+p), Space O(m+p).
func Augment(knots []float64, order int) ([]float64, error) {
	if len(knots) == 0 {
		return nil, knotsErrorf(opAugment, ErrInvalidShape)
	}
	if order < 0 {
		return nil, knotsErrorf(opAugment, ErrInvalidOrder)
	}

	first, last := knots[0], knots[len(knots)-1]
	out := make([]float64, 0, len(knots)+2*order)
	for i := 0; i < order; i++ {
		out = append(out, first)
	}
	out = append(out, knots...)
	for i := 0; i < order; i++ {
		out = append(out, last)
	}

	return out, nil
}

// RunningAverage returns the mean of every k successive elements of t.
// Entry j of the result is mean(t[j : j+k]); the result has
// max(0, len(t)-k+1) entries, so k > len(t) yields an empty (non-nil) slice.
//
// Errors:
//   - ErrInvalidWindow when k < 1.
//
// Complexity:
//   - Time O(len(t)*k), Space O(len(t)).
func RunningAverage(t []float64, k int) ([]float64, error) {
	if k < 1 {
		return nil, knotsErrorf(opRunningAverage, ErrInvalidWindow)
	}

	u := len(t) - k + 1 // number of full windows
	if u < 0 {
		u = 0
	}
	out := make([]float64, u)
	w := float64(k)
	for j := 0; j < u; j++ {
		out[j] = floats.Sum(t[j:j+k]) / w
	}

	return out, nil
}

// AutoKnots builds a knot vector for interpolation of order `order` at the
// sorted sites tau.
//
// Implementation:
//   - Stage 1: validate shape and order; k = min(order+1, len(tau)).
//   - Stage 2: reject unsorted tau, then any window of k consecutive equal sites.
//   - Stage 3: emit k copies of tau[0], RunningAverage(tau[1:n-1], k-1), k copies of tau[n-1].
//
// Behavior highlights:
//   - Output length is len(tau)+k, so the basis built on it has exactly len(tau)
//     functions when len(tau) ≥ order+1.
//   - With fewer sites than order+1 the knots are still valid, but a basis of
//     the requested order on them is empty.
//   - For k == 1 every site is trivially a 1-fold repeat, so only a single
//     site is accepted.
//
// Errors:
//   - ErrInvalidShape, ErrInvalidOrder, ErrUnsortedSites, ErrRepeatedSites.
//
// Complexity:
//   - Time O(n*k), Space O(n).
func AutoKnots(tau []float64, order int) ([]float64, error) {
	n := len(tau)
	if n == 0 {
		return nil, knotsErrorf(opAutoKnots, ErrInvalidShape)
	}
	if order < 0 {
		return nil, knotsErrorf(opAutoKnots, ErrInvalidOrder)
	}

	k := order + 1
	if n < k {
		k = n
	}

	if !IsSorted(tau) {
		return nil, knotsErrorf(opAutoKnots, ErrUnsortedSites)
	}
	for i := 0; i < n-k; i++ {
		if tau[i+k-1] == tau[i] {
			return nil, fmt.Errorf("%s: tau[%d] == tau[%d] with k=%d: %w",
				opAutoKnots, i+k-1, i, k, ErrRepeatedSites)
		}
	}

	var middle []float64
	if k > 1 {
		var err error
		if middle, err = RunningAverage(tau[1:n-1], k-1); err != nil {
			return nil, knotsErrorf(opAutoKnots, err)
		}
	}

	out := make([]float64, 0, 2*k+len(middle))
	for i := 0; i < k; i++ {
		out = append(out, tau[0])
	}
	out = append(out, middle...)
	for i := 0; i < k; i++ {
		out = append(out, tau[n-1])
	}

	return out, nil
}

// Multiplicities counts, for every index k, how many entries immediately
// before t[k] are equal to it: out[k] = #{ i < k : t[i] == t[k] } for sorted t.
//
// Example: [1 1 2 3 3 3] → [0 1 0 0 1 2].
//
// t must already be sorted; this is not checked. On unsorted input the count
// restarts at every change of value.
func Multiplicities(t []float64) []int {
	out := make([]int, len(t))
	for k := 1; k < len(t); k++ {
		if t[k] == t[k-1] {
			out[k] = out[k-1] + 1
		}
	}

	return out
}

// IsSorted reports whether t is non-decreasing. Empty and single-element
// sequences are sorted. Comparisons with NaN fail, so a NaN in a sequence of
// two or more entries makes it unsorted.
func IsSorted(t []float64) bool {
	for i := 1; i < len(t); i++ {
		if !(t[i-1] <= t[i]) {
			return false
		}
	}

	return true
}
