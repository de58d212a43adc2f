// Package kruskal - deterministic random generation for tie-break keys.
//
// Goals:
//   - Determinism: same seed ⇒ identical ranked edge order across runs.
//   - Encapsulation: one RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics, no logging; only sentinel errors from types.go.
package kruskal

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}
