// SPDX-License-Identifier: MIT

// Package basis - evaluation cache.
//
// Purpose:
//   - Memoize basis vectors per (x, derivative order) for the lifetime of a Basis.
//   - Key on the exact bit pattern of x, so a hit is returned only for the very
//     same float64 and the stored vector comes back bit-identical.
//
// Notes:
//   - Backed by go-cache with no expiration and no janitor goroutine; entries
//     live until ResetCache. go-cache locks internally, so a Basis may be
//     shared between goroutines. Two goroutines missing on the same key both
//     compute it; the stored values are identical.

package basis

import (
	"math"
	"strconv"

	"github.com/patrickmn/go-cache"
)

// evalCache maps (x, k) to a previously computed basis vector.
type evalCache struct {
	store *cache.Cache
}

// newEvalCache returns an empty, non-expiring cache.
func newEvalCache() *evalCache {
	// cleanupInterval 0: no janitor, nothing ever expires.
	return &evalCache{store: cache.New(cache.NoExpiration, 0)}
}

// cacheKey encodes the composite key as "<hex bits of x>:<k>".
func cacheKey(xi float64, k int) string {
	buf := make([]byte, 0, 24)
	buf = strconv.AppendUint(buf, math.Float64bits(xi), 16)
	buf = append(buf, ':')
	buf = strconv.AppendInt(buf, int64(k), 10)

	return string(buf)
}

// get returns the stored vector for (xi, k). The slice is shared; callers copy.
func (c *evalCache) get(xi float64, k int) ([]float64, bool) {
	v, ok := c.store.Get(cacheKey(xi, k))
	if !ok {
		return nil, false
	}
	vec, ok := v.([]float64)

	return vec, ok
}

// put stores vec under (xi, k). vec must not be modified afterwards.
func (c *evalCache) put(xi float64, k int, vec []float64) {
	c.store.Set(cacheKey(xi, k), vec, cache.NoExpiration)
}

// size reports the number of cached entries.
func (c *evalCache) size() int { return c.store.ItemCount() }

// reset drops every entry.
func (c *evalCache) reset() { c.store.Flush() }
