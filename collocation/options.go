// SPDX-License-Identifier: MIT

// Package collocation: functional configuration for Build and FromBasis.
package collocation

import (
	"fmt"

	"github.com/katalvlaran/bspline/basis"
)

// DefaultDerivativeOrder marks "derive the order of each row from site
// multiplicity".
const DefaultDerivativeOrder = -1

// DefaultCheckSorted leaves site ordering as a caller precondition.
const DefaultCheckSorted = false

// Option mutates internal options. Last writer wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	derivOrder  int            // DefaultDerivativeOrder or a fixed k ≥ 0
	checkSorted bool           // DefaultCheckSorted
	basisOpts   []basis.Option // forwarded to basis.New by Build
}

// WithDerivativeOrder evaluates the k-th derivative on every row instead of
// promoting repeated sites to higher derivatives.
//
// Panics:
//   - if k < 0.
func WithDerivativeOrder(k int) Option {
	if k < 0 {
		panic(fmt.Sprintf("collocation: WithDerivativeOrder(%d): order must be >= 0", k))
	}

	return func(o *Options) { o.derivOrder = k }
}

// WithSortedSites makes Build and FromBasis verify that sites are
// non-decreasing and fail with ErrUnsortedSites otherwise.
func WithSortedSites() Option {
	return func(o *Options) { o.checkSorted = true }
}

// WithBasisOptions forwards opts to basis.New inside Build.
// FromBasis ignores them: its basis is already built.
func WithBasisOptions(opts ...basis.Option) Option {
	return func(o *Options) { o.basisOpts = append(o.basisOpts, opts...) }
}

// gatherOptions applies setters over the documented defaults, in order.
func gatherOptions(user ...Option) Options {
	o := Options{
		derivOrder:  DefaultDerivativeOrder,
		checkSorted: DefaultCheckSorted,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
