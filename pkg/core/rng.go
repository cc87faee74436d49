package core

import (
	"hash/fnv"
	"math"
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Stream returns the seed of the substream of seed labelled name. Different
// names give unrelated sequences for the same seed.
func Stream(seed int64, name string) int64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	r := &RNG{r: rand.New(rand.NewPCG(uint64(seed), h.Sum64()))}
	return r.Derive()
}

// Angle draws a uniformly distributed angle in [0, 2π) from r.
func Angle(r *rand.Rand) float64 {
	return r.Float64() * 2 * math.Pi
}

// Signed draws a uniformly distributed value in [-1, 1) from r.
func Signed(r *rand.Rand) float64 {
	return r.Float64()*2 - 1
}

// Angle returns a uniformly distributed angle in [0, 2π).
func (r *RNG) Angle() float64 { return Angle(r.r) }

// Signed returns a uniformly distributed value in [-1, 1).
func (r *RNG) Signed() float64 { return Signed(r.r) }

// Derive returns a new seed drawn from the stream, used to give nested
// generators their own independent sequence.
func (r *RNG) Derive() int64 {
	return int64(r.r.Uint64() >> 1)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
