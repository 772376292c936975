// SPDX-License-Identifier: MIT
package collocation_test

import (
	"testing"

	"github.com/katalvlaran/bspline/basis"
	"github.com/katalvlaran/bspline/collocation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOptions_LastWriterWins applies conflicting derivative orders.
func TestOptions_LastWriterWins(t *testing.T) {
	b, err := basis.New(bernstein2, 2)
	require.NoError(t, err)

	a, err := collocation.FromBasis(b, []float64{0.5},
		collocation.WithDerivativeOrder(1), collocation.WithDerivativeOrder(0))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.25, 0.5, 0.25}, mustRow(t, a, 0), 1e-15)
}

// TestWithBasisOptions_IgnoredByFromBasis keeps the caller's basis untouched.
func TestWithBasisOptions_IgnoredByFromBasis(t *testing.T) {
	b, err := basis.New(bernstein2, 2)
	require.NoError(t, err)

	_, err = collocation.FromBasis(b, []float64{0.5},
		collocation.WithBasisOptions(basis.WithoutCache()))
	require.NoError(t, err)
	assert.Equal(t, 1, b.CacheLen())
}
