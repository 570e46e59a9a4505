// Package kmeans - RNG utilities shared by the multi-init fitter.
//
// This file centralizes deterministic random generation for k-means
// initialization.
//
// Goals:
//   - Determinism: same seed ⇒ identical centroids, labels and inertia
//     across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden
//     anywhere.
//   - Independence: each init restart runs on its own derived stream,
//     so restarts can be reordered (or parallelized by callers sweeping
//     k) without changing results.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand
//     across goroutines; derive one stream per restart instead.
package kmeans

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass
// Seed==0. The value is arbitrary but stable to keep reproducible
// defaults.
const defaultRNGSeed int64 = 1

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed.
//
// Rationale:
//   - Each init restart needs an independent substream derived from the
//     base seed.
//   - A SplitMix64-style avalanche mix eliminates correlations between
//     consecutive stream ids.
//
// Notes:
//   - Constants are the canonical SplitMix64 multipliers/finalizer.
//     Small changes in inputs produce large, well-distributed output
//     changes.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// restartRNG creates the deterministic RNG stream for init restart
// number `restart` under the given base seed. Streams for distinct
// restarts are independent; the mapping (seed, restart) → stream is
// pure, so restarts may run in any order.
//
// Complexity: O(1).
func restartRNG(seed int64, restart int) *rand.Rand {
	parent := seed
	if parent == 0 {
		parent = defaultRNGSeed
	}
	return rand.New(rand.NewSource(deriveSeed(parent, uint64(restart))))
}
