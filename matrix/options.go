// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults.
package matrix

import "math"

// DefaultValidateNaNInf makes every new Dense reject NaN/±Inf on Set/SetRow.
// A collocation row containing a non-finite value means the site itself was
// non-finite, so the write fails instead of storing garbage.
const DefaultValidateNaNInf = true

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
