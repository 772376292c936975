// SPDX-License-Identifier: MIT

// Package basis: functional configuration for Basis construction.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper used by New.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Every flag changes observable behavior and is covered by tests.
package basis

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCache enables the per-instance evaluation cache.
	DefaultCache = true

	// DefaultValidateKnots leaves knot ordering as a caller precondition.
	DefaultValidateKnots = false
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; New accepts ...Option and resolves them via gatherOptions.
type Options struct {
	cache         bool // DefaultCache
	validateKnots bool // DefaultValidateKnots
}

// WithCache enables memoization of evaluated (x, derivative order) pairs (default).
func WithCache() Option {
	return func(o *Options) { o.cache = true }
}

// WithoutCache disables memoization; every call recomputes the tables.
//
// Notes:
//   - Useful for one-shot sweeps over many distinct points (plot sampling),
//     where cached entries would never be hit again.
func WithoutCache() Option {
	return func(o *Options) { o.cache = false }
}

// WithKnotValidation makes New reject knot vectors that are not finite and
// non-decreasing, instead of producing silently wrong values.
//
// Complexity:
//   - Adds O(m) to New.
func WithKnotValidation() Option {
	return func(o *Options) { o.validateKnots = true }
}

// gatherOptions applies setters over the documented defaults, in order.
func gatherOptions(user ...Option) Options {
	o := Options{
		cache:         DefaultCache,
		validateKnots: DefaultValidateKnots,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
