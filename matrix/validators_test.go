// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/bspline/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateNotNil rejects untyped and typed nil matrices.
func TestValidateNotNil(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)

	var d *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(d), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateNotNil(mustDense(t, 1, 1)))
}

// TestValidateSameShape compares rows then columns.
func TestValidateSameShape(t *testing.T) {
	require.NoError(t, matrix.ValidateSameShape(mustDense(t, 2, 3), mustDense(t, 2, 3)))
	require.ErrorIs(t, matrix.ValidateSameShape(mustDense(t, 2, 3), mustDense(t, 3, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(mustDense(t, 2, 3), mustDense(t, 2, 2)), matrix.ErrDimensionMismatch)
}

// TestValidateVecLen checks nil and length mismatches.
func TestValidateVecLen(t *testing.T) {
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}
