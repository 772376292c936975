// SPDX-License-Identifier: MIT
// Package knots_test contains unit tests for the knot-vector utilities.
package knots_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/bspline/knots"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAugment_LengthAndEnds verifies len == m+2p and that the first/last p+1
// entries equal the end knots.
func TestAugment_LengthAndEnds(t *testing.T) {
	in := []float64{0, 0.25, 0.5, 0.75, 1}
	for p := 0; p <= 5; p++ {
		out, err := knots.Augment(in, p)
		require.NoError(t, err)
		require.Len(t, out, len(in)+2*p, "order %d", p)

		for i := 0; i <= p; i++ {
			assert.Equal(t, in[0], out[i], "prefix entry %d (p=%d)", i, p)
			assert.Equal(t, in[len(in)-1], out[len(out)-1-i], "suffix entry %d (p=%d)", i, p)
		}
		assert.Equal(t, in, out[p:p+len(in)], "body must be the input (p=%d)", p)
	}
}

// TestAugment_DoesNotMutateInput guards the purity contract.
func TestAugment_DoesNotMutateInput(t *testing.T) {
	in := []float64{1, 2, 3}
	out, err := knots.Augment(in, 2)
	require.NoError(t, err)
	out[0] = 42
	assert.Equal(t, []float64{1, 2, 3}, in)
}

// TestAugment_Errors checks sentinel errors for empty input and negative order.
func TestAugment_Errors(t *testing.T) {
	_, err := knots.Augment(nil, 1)
	assert.ErrorIs(t, err, knots.ErrInvalidShape)

	_, err = knots.Augment([]float64{}, 1)
	assert.ErrorIs(t, err, knots.ErrInvalidShape)

	_, err = knots.Augment([]float64{0, 1}, -1)
	assert.ErrorIs(t, err, knots.ErrInvalidOrder)
}

// TestRunningAverage covers regular windows, k == len(t), k > len(t) and k == 1.
func TestRunningAverage(t *testing.T) {
	cases := []struct {
		name string
		in   []float64
		k    int
		want []float64
	}{
		{"pairs", []float64{0, 2, 4, 6}, 2, []float64{1, 3, 5}},
		{"triples", []float64{1, 2, 3, 4, 5}, 3, []float64{2, 3, 4}},
		{"whole", []float64{1, 2, 3}, 3, []float64{2}},
		{"too wide", []float64{1, 2}, 3, []float64{}},
		{"identity", []float64{7, 8}, 1, []float64{7, 8}},
		{"empty input", nil, 2, []float64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := knots.RunningAverage(tc.in, tc.k)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.InDeltaSlice(t, tc.want, got, 1e-12)
			assert.Len(t, got, len(tc.want))
		})
	}
}

// TestRunningAverage_InvalidWindow rejects k < 1.
func TestRunningAverage_InvalidWindow(t *testing.T) {
	_, err := knots.RunningAverage([]float64{1, 2, 3}, 0)
	assert.ErrorIs(t, err, knots.ErrInvalidWindow)

	_, err = knots.RunningAverage([]float64{1, 2, 3}, -4)
	assert.ErrorIs(t, err, knots.ErrInvalidWindow)
}

// TestAutoKnots_Cubic checks the construction on evenly spaced sites.
func TestAutoKnots_Cubic(t *testing.T) {
	tau := []float64{0, 1, 2, 3, 4, 5}
	got, err := knots.AutoKnots(tau, 3)
	require.NoError(t, err)

	// k = 4: four copies of 0, mean of [1,2,3] and [2,3,4], four copies of 5.
	want := []float64{0, 0, 0, 0, 2, 3, 5, 5, 5, 5}
	assert.InDeltaSlice(t, want, got, 1e-12)
	assert.Len(t, got, len(tau)+4)
}

// TestAutoKnots_FewSites clamps k to len(tau).
func TestAutoKnots_FewSites(t *testing.T) {
	got, err := knots.AutoKnots([]float64{0, 1}, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 1, 1}, got)

	got, err = knots.AutoKnots([]float64{0.5}, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5}, got)
}

// TestAutoKnots_Linear uses k = 2, where the interior knots are the interior sites.
func TestAutoKnots_Linear(t *testing.T) {
	got, err := knots.AutoKnots([]float64{0, 0.3, 0.7, 1}, 1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0, 0.3, 0.7, 1, 1}, got, 1e-12)
}

// TestAutoKnots_RepeatedSites rejects a k-fold repeat.
func TestAutoKnots_RepeatedSites(t *testing.T) {
	_, err := knots.AutoKnots([]float64{0, 0, 0, 1}, 2)
	assert.ErrorIs(t, err, knots.ErrRepeatedSites)

	// A double site is fine for k = 3.
	_, err = knots.AutoKnots([]float64{0, 0, 0.5, 1}, 2)
	assert.NoError(t, err)

	// Order 0 treats any second site as a 1-fold repeat.
	_, err = knots.AutoKnots([]float64{0, 1, 2}, 0)
	assert.ErrorIs(t, err, knots.ErrRepeatedSites)
}

// TestAutoKnots_Errors checks shape, order and sortedness validation.
func TestAutoKnots_Errors(t *testing.T) {
	_, err := knots.AutoKnots(nil, 2)
	assert.ErrorIs(t, err, knots.ErrInvalidShape)

	_, err = knots.AutoKnots([]float64{0, 1, 2}, -1)
	assert.ErrorIs(t, err, knots.ErrInvalidOrder)

	_, err = knots.AutoKnots([]float64{0, 2, 1, 3}, 2)
	assert.ErrorIs(t, err, knots.ErrUnsortedSites)
}

// TestMultiplicities covers the canonical example and edge cases.
func TestMultiplicities(t *testing.T) {
	assert.Equal(t, []int{0, 1, 0, 0, 1, 2}, knots.Multiplicities([]float64{1, 1, 2, 3, 3, 3}))
	assert.Equal(t, []int{}, knots.Multiplicities(nil))
	assert.Equal(t, []int{0}, knots.Multiplicities([]float64{4}))
	assert.Equal(t, []int{0, 1, 2, 3}, knots.Multiplicities([]float64{2, 2, 2, 2}))
	assert.Equal(t, []int{0, 0, 0}, knots.Multiplicities([]float64{0.1, 0.2, 0.3}))
}

// TestIsSorted covers non-decreasing, decreasing and NaN inputs.
func TestIsSorted(t *testing.T) {
	assert.True(t, knots.IsSorted(nil))
	assert.True(t, knots.IsSorted([]float64{1}))
	assert.True(t, knots.IsSorted([]float64{1, 1, 2}))
	assert.False(t, knots.IsSorted([]float64{2, 1}))

	assert.False(t, knots.IsSorted([]float64{0, math.NaN()}))
}
