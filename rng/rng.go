// Package rng provides the random number generation used by the parallel
// algorithms: a long-period combined 64-bit generator and a seed-derivation
// policy that gives every worker task its own independent stream.
//
// Goals:
//   - Determinism: same base seed and stream ⇒ identical sequence on every platform.
//   - Ownership: a *HighQuality is owned by exactly one task; it has no lock and
//     must not be shared across goroutines.
//   - Compatibility: HighQuality implements math/rand.Source64, so rand.New(src)
//     yields the usual Float64/Intn helpers.
package rng

import (
	"math/rand"
	"time"
)

// Generator constants of the combined generator "Ran" from Numerical Recipes,
// 3rd ed., §7.1.3 (LCG u, xorshift v, multiply-with-carry w). lower32 is the
// true 32-bit mask of the MWC step. Changing any of them changes every derived
// stream.
const (
	initialV uint64 = 4101842887655102017
	lcgMul   uint64 = 2862933555777941757
	lcgAdd   uint64 = 7046029254386353087
	mwcMul   uint64 = 4294957665
	lower32  uint64 = 0xffffffff
)

// HighQuality is a combined generator of three 64-bit words: a linear
// congruential word (u), an xorshift word (v) and a multiply-with-carry word (w).
// Period is far beyond anything a single computation can exhaust.
type HighQuality struct {
	u, v, w uint64
}

// compile-time check
var _ rand.Source64 = (*HighQuality)(nil)

// New returns a generator seeded with seed.
// Complexity: O(1).
func New(seed int64) *HighQuality {
	g := &HighQuality{}
	g.Seed(seed)
	return g
}

// NewFromClock returns a generator seeded from the high-resolution clock mixed
// with stream, so generators created in the same nanosecond still diverge.
func NewFromClock(stream uint64) *HighQuality {
	return New(DeriveSeed(ClockSeed(), stream))
}

// ClockSeed returns a seed taken from the monotonic-backed wall clock in nanoseconds.
func ClockSeed() int64 {
	return time.Now().UnixNano()
}

// Seed resets the generator state from seed.
func (g *HighQuality) Seed(seed int64) {
	g.v = initialV
	g.w = 1
	g.u = uint64(seed) ^ g.v
	g.Uint64()
	g.v = g.u
	g.Uint64()
	g.w = g.v
	g.Uint64()
}

// Uint64 advances the state and returns the next 64 pseudorandom bits.
// Complexity: O(1), no allocations.
func (g *HighQuality) Uint64() uint64 {
	g.u = g.u*lcgMul + lcgAdd

	g.v ^= g.v >> 17
	g.v ^= g.v << 31
	g.v ^= g.v >> 8

	g.w = mwcMul*(g.w&lower32) + (g.w >> 32)

	x := g.u ^ (g.u << 21)
	x ^= x >> 35
	x ^= x << 4

	return (x + g.v) ^ g.w
}

// Int63 returns a non-negative pseudorandom 63-bit integer.
func (g *HighQuality) Int63() int64 {
	return int64(g.Uint64() >> 1)
}

// Float64 returns a uniform double in [0,1) built from the top 53 bits.
func (g *HighQuality) Float64() float64 {
	return float64(g.Uint64()>>11) / (1 << 53)
}

// Rand wraps a fresh generator seeded with seed in a *rand.Rand.
func Rand(seed int64) *rand.Rand {
	return rand.New(New(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// using a SplitMix64-style finalizer, so neighbouring stream ids produce
// uncorrelated seeds. Every parent, zero included, yields its own family of
// streams.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// ForStream returns the generator of one worker task. A nil base seeds from the
// clock (distinct per stream); otherwise the stream is derived from *base.
func ForStream(base *int64, stream uint64) *HighQuality {
	if base == nil {
		return NewFromClock(stream)
	}
	return New(DeriveSeed(*base, stream))
}
