// RNG policy for restart jitter.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Independence: each attempt gets its own decorrelated stream.
//   - No time-based sources anywhere.
package solver

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// attemptRNG returns the deterministic jitter stream for one attempt.
// Policy: seed==0 ⇒ defaultRNGSeed; the attempt number is mixed in with
// a SplitMix64-style finalizer so consecutive attempts are decorrelated.
func attemptRNG(seed int64, attempt int) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(deriveSeed(seed, uint64(attempt))))
}

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed using the canonical SplitMix64 multipliers/finalizer; small
// input changes produce well-distributed output changes.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
