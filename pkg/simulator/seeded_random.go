package simulator

import (
	"hash/crc32"
)

// LCG parameters (numerical recipes). The full 32-bit state is the output
// stream, so two generators with equal seeds produce byte-identical sequences
// on every platform.
const (
	lcgMultiplier uint32 = 1664525
	lcgIncrement  uint32 = 1013904223
)

// SeededRandom is a deterministic linear-congruential generator. It is the
// only source of randomness in the simulation core; everything downstream of
// a seed is fully reproducible.
//
// A SeededRandom is not safe for concurrent use. Each unit of work (one
// match, one progression check) builds its own instance from its own seed.
type SeededRandom struct {
	seed  uint32
	state uint32
}

// NewSeededRandom creates a generator from a 32-bit integer seed.
func NewSeededRandom(seed uint32) *SeededRandom {
	return &SeededRandom{seed: seed, state: seed}
}

// NewSeededRandomFromString creates a generator from an arbitrary seed
// string. The string is reduced to a 32-bit seed with CRC-32/IEEE, which is
// stable across platforms, locales and process restarts.
func NewSeededRandomFromString(seed string) *SeededRandom {
	return NewSeededRandom(crc32.ChecksumIEEE([]byte(seed)))
}

// Next advances the generator and returns a float in [0,1).
func (r *SeededRandom) Next() float64 {
	r.state = r.state*lcgMultiplier + lcgIncrement
	return float64(r.state) / 4294967296.0
}

// NextInt returns an integer in [min,max], both bounds inclusive.
func (r *SeededRandom) NextInt(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + int(r.Next()*float64(max-min+1))
}

// NextFloat returns a float in [min,max).
func (r *SeededRandom) NextFloat(min, max float64) float64 {
	return min + r.Next()*(max-min)
}

// NextBool returns true with probability 0.5.
func (r *SeededRandom) NextBool() bool {
	return r.Next() < 0.5
}

// Reset rewinds the generator to its original seed. Replaying the same call
// sequence after a reset reproduces the exact prior output sequence.
func (r *SeededRandom) Reset() {
	r.state = r.seed
}

// Seed returns the 32-bit seed the generator was constructed with.
func (r *SeededRandom) Seed() uint32 {
	return r.seed
}

// State returns the current 32-bit internal state. Used for event-log
// snapshots; callers must not attempt to reconstruct a generator from it.
func (r *SeededRandom) State() uint32 {
	return r.state
}

// Choice returns a uniformly selected element of items, consuming one draw
// from the generator's stream.
//
// Precondition: items must be non-empty. Calling Choice on an empty slice is
// a contract violation and panics.
func Choice[T any](rng *SeededRandom, items []T) T {
	if len(items) == 0 {
		panic("simulator: Choice called on empty slice")
	}
	return items[rng.NextInt(0, len(items)-1)]
}

// Shuffle permutes items in place using a Fisher-Yates shuffle driven by the
// generator's stream.
func Shuffle[T any](rng *SeededRandom, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.NextInt(0, i)
		items[i], items[j] = items[j], items[i]
	}
}
