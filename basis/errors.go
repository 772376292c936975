// SPDX-License-Identifier: MIT
// Package basis: sentinel error set.
// Messages are prefixed with "basis: ..."; callers match with errors.Is.

package basis

import "errors"

var (
	// ErrInvalidOrder is returned when the spline order or a derivative order is negative.
	ErrInvalidOrder = errors.New("basis: order must be >= 0")

	// ErrUnsortedKnots is returned under WithKnotValidation when the knots decrease somewhere.
	ErrUnsortedKnots = errors.New("basis: knots must be non-decreasing")

	// ErrNonFiniteKnot is returned under WithKnotValidation when a knot is NaN or ±Inf.
	ErrNonFiniteKnot = errors.New("basis: knot is NaN or Inf")
)
