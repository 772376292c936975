// SPDX-License-Identifier: MIT

// Package collocation - matrix assembly.
//
// Purpose:
//   - Map every site to a derivative order (multiplicity or fixed).
//   - Write one basis row per site into a matrix.Dense, validated by its
//     numeric policy.

package collocation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bspline/basis"
	"github.com/katalvlaran/bspline/knots"
	"github.com/katalvlaran/bspline/matrix"
)

const (
	opBuild     = "Build"
	opFromBasis = "FromBasis"
)

// collocationErrorf wraps err with the operation that detected it.
func collocationErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Build constructs a basis of the given order over knots and returns its
// collocation matrix at sites. See FromBasis for the row layout.
//
// Errors:
//   - basis.ErrInvalidOrder (order < 0) and anything basis.New reports
//     under WithBasisOptions.
//   - Everything FromBasis reports.
func Build(knotVec []float64, order int, sites []float64, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	b, err := basis.New(knotVec, order, o.basisOpts...)
	if err != nil {
		return nil, collocationErrorf(opBuild, err)
	}

	return assemble(opBuild, b, sites, o)
}

// FromBasis returns the len(sites)×b.NumBasis() collocation matrix of b.
//
// Implementation:
//   - Stage 1: validate b, sites (non-empty, finite) and, under
//     WithSortedSites, their order.
//   - Stage 2: derivative order per row: knots.Multiplicities(sites), or the
//     fixed order from WithDerivativeOrder.
//   - Stage 3: row i = b.Derivative(sites[i], order_i), written with SetRow.
//
// Behavior highlights:
//   - Sites are expected sorted; unsorted input only resets the multiplicity
//     count at each change of value.
//   - Evaluations go through b's cache, so repeated sites and repeated calls
//     are cheap.
//
// Errors:
//   - ErrNilBasis, ErrNoSites, ErrEmptyBasis, ErrUnsortedSites.
//   - matrix.ErrNaNInf when a site is not finite.
func FromBasis(b *basis.Basis, sites []float64, opts ...Option) (*matrix.Dense, error) {
	return assemble(opFromBasis, b, sites, gatherOptions(opts...))
}

// assemble is the shared body of Build and FromBasis.
func assemble(op string, b *basis.Basis, sites []float64, o Options) (*matrix.Dense, error) {
	if b == nil {
		return nil, collocationErrorf(op, ErrNilBasis)
	}
	if len(sites) == 0 {
		return nil, collocationErrorf(op, ErrNoSites)
	}
	n := b.NumBasis()
	if n == 0 {
		return nil, collocationErrorf(op, ErrEmptyBasis)
	}
	for i, xi := range sites {
		if math.IsNaN(xi) || math.IsInf(xi, 0) {
			return nil, fmt.Errorf("%s: site %d: %w", op, i, matrix.ErrNaNInf)
		}
	}
	if o.checkSorted && !knots.IsSorted(sites) {
		return nil, collocationErrorf(op, ErrUnsortedSites)
	}

	orders := rowOrders(sites, o.derivOrder)

	a, err := matrix.NewDense(len(sites), n)
	if err != nil {
		return nil, collocationErrorf(op, err)
	}
	var row []float64
	for i, xi := range sites {
		if row, err = b.Derivative(xi, orders[i]); err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", op, i, err)
		}
		if err = a.SetRow(i, row); err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", op, i, err)
		}
	}

	return a, nil
}

// rowOrders returns the derivative order of every row.
func rowOrders(sites []float64, fixed int) []int {
	if fixed == DefaultDerivativeOrder {
		return knots.Multiplicities(sites)
	}
	out := make([]int, len(sites))
	for i := range out {
		out[i] = fixed
	}

	return out
}
