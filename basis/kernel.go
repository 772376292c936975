// SPDX-License-Identifier: MIT

// Package basis - Cox–de Boor kernels.
//
// Purpose:
//   - Build the order-0 indicator row and blend it level by level up to order p.
//   - Keep every level in one buffer: level q overwrites entry i from entries
//     i and i+1 of level q-1, walking i upwards, then drops the last entry.
//
// Determinism:
//   - Fixed i-ascending loops; no maps, no allocation beyond the single row.

package basis

// ratio returns num/den, or 0 when den is exactly zero (0/0 := 0 rule).
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}

	return num / den
}

// indicator returns the order-0 row: 1 where t[i] ≤ xi < t[i+1], else 0.
// Length max(0, len(t)-1).
func indicator(t []float64, xi float64) []float64 {
	if len(t) < 2 {
		return []float64{}
	}
	row := make([]float64, len(t)-1)
	for i := range row {
		if t[i] <= xi && xi < t[i+1] {
			row[i] = 1
		}
	}

	return row
}

// blendValue lifts row from order q-1 to order q at xi, in place.
// Returns row shortened by one entry.
func blendValue(t []float64, q int, xi float64, row []float64) []float64 {
	last := len(row) - 1
	var left, right float64
	for i := 0; i < last; i++ {
		left = ratio(xi-t[i], t[i+q]-t[i])
		right = ratio(t[i+q+1]-xi, t[i+q+1]-t[i+1])
		row[i] = left*row[i] + right*row[i+1]
	}

	return row[:last]
}

// blendSlope lifts row from the (k-1)-th derivative of order q-1 to the k-th
// derivative of order q, in place. The numerators are the constants q and -q.
func blendSlope(t []float64, q int, row []float64) []float64 {
	last := len(row) - 1
	fq := float64(q)
	var left, right float64
	for i := 0; i < last; i++ {
		left = ratio(fq, t[i+q]-t[i])
		right = ratio(-fq, t[i+q+1]-t[i+1])
		row[i] = left*row[i] + right*row[i+1]
	}

	return row[:last]
}

// evaluate computes the k-th derivative (k ≥ 0) of every order-p basis
// function at xi.
//
// Implementation:
//   - Stage 1: n = len(t)-p-1; empty basis → empty row; k > p → zero row.
//   - Stage 2: order-0 indicator row.
//   - Stage 3: value blends for q = 1..p-k.
//   - Stage 4: slope blends for q = p-k+1..p.
//
// Complexity:
//   - Time O(len(t)·p), Space O(len(t)).
func evaluate(t []float64, p, k int, xi float64) []float64 {
	n := len(t) - p - 1
	if n <= 0 {
		return []float64{}
	}
	if k > p {
		return make([]float64, n)
	}

	row := indicator(t, xi)
	for q := 1; q <= p-k; q++ {
		row = blendValue(t, q, xi, row)
	}
	for q := p - k + 1; q <= p; q++ {
		row = blendSlope(t, q, row)
	}

	return row
}
