// SPDX-License-Identifier: MIT
// Package collocation: sentinel error set.
// Messages are prefixed with "collocation: ..."; callers match with errors.Is.

package collocation

import (
	"errors"

	"github.com/katalvlaran/bspline/knots"
)

var (
	// ErrNilBasis is returned by FromBasis when the basis is nil.
	ErrNilBasis = errors.New("collocation: basis is nil")

	// ErrNoSites is returned when no collocation sites are given.
	ErrNoSites = errors.New("collocation: at least one site is required")

	// ErrEmptyBasis is returned when the basis has no functions, so the
	// matrix would have zero columns.
	ErrEmptyBasis = errors.New("collocation: basis has no functions")

	// ErrUnsortedSites is returned under WithSortedSites when sites decrease
	// somewhere. It is the knots sentinel, so either name matches.
	ErrUnsortedSites = knots.ErrUnsortedSites
)
