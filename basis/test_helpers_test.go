// SPDX-License-Identifier: MIT
// Package basis_test contains shared fixtures for the basis tests.
//
// Purpose:
//   • Provide small, deterministic knot vectors with known closed-form bases.
//   • Keep every fixture finite and sorted.

package basis_test

import (
	"testing"

	"github.com/katalvlaran/bspline/basis"
	"github.com/stretchr/testify/require"
)

// uniformCubic is [0,0.25,0.5,0.75,1] augmented for p=3.
var uniformCubic = []float64{0, 0, 0, 0, 0.25, 0.5, 0.75, 1, 1, 1, 1}

// bernstein2 spans the quadratic Bernstein basis on [0,1].
var bernstein2 = []float64{0, 0, 0, 1, 1, 1}

// bernstein3 spans the cubic Bernstein basis on [0,1].
var bernstein3 = []float64{0, 0, 0, 0, 1, 1, 1, 1}

// doubleKnot is a quadratic vector with an interior knot of multiplicity two.
var doubleKnot = []float64{0, 0, 0, 0.2, 0.5, 0.5, 0.9, 1, 1, 1}

// mustBasis builds a Basis or aborts the test.
func mustBasis(t testing.TB, knots []float64, order int, opts ...basis.Option) *basis.Basis {
	t.Helper()
	b, err := basis.New(knots, order, opts...)
	require.NoError(t, err)

	return b
}

// mustDerivative evaluates Derivative or aborts the test.
func mustDerivative(t testing.TB, b *basis.Basis, xi float64, k int) []float64 {
	t.Helper()
	d, err := b.Derivative(xi, k)
	require.NoError(t, err)

	return d
}

// centralDiff approximates the derivative of f at xi with step h, per component.
func centralDiff(f basis.Func, xi, h float64) []float64 {
	hi, lo := f(xi+h), f(xi-h)
	out := make([]float64, len(hi))
	for i := range hi {
		out[i] = (hi[i] - lo[i]) / (2 * h)
	}

	return out
}
