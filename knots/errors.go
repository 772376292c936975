// SPDX-License-Identifier: MIT
// Package knots: sentinel error set.
// Every message is prefixed with "knots: ..."; call sites add context with
// fmt.Errorf("Op: %w", ErrX) and callers match with errors.Is.

package knots

import "errors"

var (
	// ErrInvalidShape is returned when a knot or site vector has no elements,
	// so its end knots (first/last) are undefined.
	ErrInvalidShape = errors.New("knots: vector must be non-empty")

	// ErrInvalidOrder is returned when the spline order is negative.
	ErrInvalidOrder = errors.New("knots: order must be >= 0")

	// ErrInvalidWindow is returned when a running-average window is < 1.
	ErrInvalidWindow = errors.New("knots: window must be >= 1")

	// ErrUnsortedSites is returned when sites are not non-decreasing.
	ErrUnsortedSites = errors.New("knots: sites must be non-decreasing")

	// ErrRepeatedSites is returned by AutoKnots when k consecutive sites
	// coincide, which would require a knot multiplicity above the order.
	ErrRepeatedSites = errors.New("knots: k-fold (or higher) repeated sites not allowed")
)
