// SPDX-License-Identifier: MIT

// Package basis - Basis evaluator.
//
// Purpose:
//   - Bind an immutable knot vector and order, evaluate values and derivatives.
//   - Route every evaluation through the per-instance cache (when enabled).
//   - Hand out caller-owned copies so cached vectors stay bit-identical.

package basis

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxNew        = "New"
	ctxDerivative = "Derivative"
	ctxDiff       = "Diff"
)

// basisErrorf wraps a sentinel with the method that detected it.
func basisErrorf(method string, err error) error {
	return fmt.Errorf("basis.%s: %w", method, err)
}

// Func evaluates one fixed derivative order of every basis function at xi.
type Func func(xi float64) []float64

// Basis is a B-spline basis of fixed order over a fixed knot vector.
//   - knots is a private copy of the caller's vector; it never changes.
//   - n = len(knots)-order-1 clamped at 0.
//   - cache is nil when built WithoutCache.
type Basis struct {
	knots []float64
	order int
	n     int
	cache *evalCache
}

// New creates a Basis of the given order over knots.
//
// Implementation:
//   - Stage 1: validate order ≥ 0 (and, under WithKnotValidation, finite sorted knots).
//   - Stage 2: copy knots, derive the basis count.
//   - Stage 3: attach an empty cache unless WithoutCache.
//
// Behavior highlights:
//   - Fewer than order+2 knots is legal and yields an empty basis.
//   - Sortedness is NOT checked by default.
//
// Errors:
//   - ErrInvalidOrder, ErrNonFiniteKnot, ErrUnsortedKnots.
//
// Complexity:
//   - Time O(m), Space O(m).
func New(knots []float64, order int, opts ...Option) (*Basis, error) {
	if order < 0 {
		return nil, basisErrorf(ctxNew, ErrInvalidOrder)
	}
	o := gatherOptions(opts...)
	if o.validateKnots {
		if err := validateKnots(knots); err != nil {
			return nil, basisErrorf(ctxNew, err)
		}
	}

	kv := make([]float64, len(knots))
	copy(kv, knots)

	n := len(kv) - order - 1
	if n < 0 {
		n = 0
	}

	b := &Basis{knots: kv, order: order, n: n}
	if o.cache {
		b.cache = newEvalCache()
	}

	return b, nil
}

// validateKnots rejects NaN/±Inf and any decreasing step.
func validateKnots(t []float64) error {
	for i, v := range t {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("knot %d: %w", i, ErrNonFiniteKnot)
		}
		if i > 0 && v < t[i-1] {
			return fmt.Errorf("knot %d: %w", i, ErrUnsortedKnots)
		}
	}

	return nil
}

// Order returns the spline order p.
func (b *Basis) Order() int { return b.order }

// NumBasis returns the number of basis functions, len(knots)-order-1 (≥ 0).
func (b *Basis) NumBasis() int { return b.n }

// Knots returns a copy of the bound knot vector.
func (b *Basis) Knots() []float64 {
	out := make([]float64, len(b.knots))
	copy(out, b.knots)

	return out
}

// Domain returns the first and last knot, the range a sampler should cover.
// An empty knot vector yields (0, 0).
func (b *Basis) Domain() (lo, hi float64) {
	if len(b.knots) == 0 {
		return 0, 0
	}

	return b.knots[0], b.knots[len(b.knots)-1]
}

// Evaluate returns the value of every basis function at xi.
// The result has NumBasis() entries and is owned by the caller.
//
// Complexity: O(1) amortized on a cache hit, O(m·p) otherwise.
func (b *Basis) Evaluate(xi float64) []float64 {
	return b.lookup(xi, 0)
}

// Derivative returns the k-th derivative of every basis function at xi.
// k == 0 is Evaluate; k > Order() yields NumBasis() zeros.
//
// Errors:
//   - ErrInvalidOrder when k < 0.
func (b *Basis) Derivative(xi float64, k int) ([]float64, error) {
	if k < 0 {
		return nil, basisErrorf(ctxDerivative, ErrInvalidOrder)
	}

	return b.lookup(xi, k), nil
}

// Diff returns a Func evaluating the k-th derivative; k == 0 evaluates values.
// The Func shares this Basis and its cache.
//
// Errors:
//   - ErrInvalidOrder when k < 0.
func (b *Basis) Diff(k int) (Func, error) {
	if k < 0 {
		return nil, basisErrorf(ctxDiff, ErrInvalidOrder)
	}
	if k == 0 {
		return b.Evaluate, nil
	}

	return func(xi float64) []float64 { return b.lookup(xi, k) }, nil
}

// CacheLen reports how many (x, derivative order) pairs are cached.
// Always 0 for a Basis built WithoutCache.
func (b *Basis) CacheLen() int {
	if b.cache == nil {
		return 0
	}

	return b.cache.size()
}

// ResetCache drops every cached evaluation. Results are unaffected; only
// memory and the cost of the next calls change.
func (b *Basis) ResetCache() {
	if b.cache != nil {
		b.cache.reset()
	}
}

// lookup serves (xi, k) from the cache or computes and stores it.
// The returned slice is always a fresh copy.
func (b *Basis) lookup(xi float64, k int) []float64 {
	if b.cache == nil {
		return evaluate(b.knots, b.order, k, xi)
	}
	vec, ok := b.cache.get(xi, k)
	if !ok {
		vec = evaluate(b.knots, b.order, k, xi)
		b.cache.put(xi, k, vec)
	}
	out := make([]float64, len(vec))
	copy(out, vec)

	return out
}
