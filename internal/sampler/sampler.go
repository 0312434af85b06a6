// Package sampler draws weighted random choices from count tables.
package sampler

import (
	"math/rand"
	"time"
)

// Config configures the behaviour of a Sampler.
type Config struct {
	// Seed initialises the random source. A negative seed picks one from
	// the wall clock.
	Seed int64
}

// Sampler performs cumulative-count selection over a list of weights. It is
// not safe for concurrent use; build one per generation.
type Sampler struct {
	rng  *rand.Rand
	seed int64
}

// New returns a sampler with the provided configuration.
func New(cfg Config) *Sampler {
	seed := cfg.Seed
	if seed < 0 {
		seed = time.Now().UnixNano()
	}
	return &Sampler{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the random source was initialised with.
func (s *Sampler) Seed() int64 {
	return s.seed
}

// Pick draws an index from weights, where total is the sum of all weights.
// A uniform value r is drawn from [0, total) and the first index whose
// running total exceeds r is returned. Zero-weight entries are never picked.
// Pick returns -1 when total is zero.
func (s *Sampler) Pick(weights []uint64, total uint64) int {
	if total == 0 || len(weights) == 0 {
		return -1
	}
	r := s.draw(total)
	var c uint64
	for i, w := range weights {
		c += w
		if r < c {
			return i
		}
	}
	// total was larger than the real sum; fall back to the last non-zero weight.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return -1
}

func (s *Sampler) draw(total uint64) uint64 {
	if total <= 1<<63-1 {
		return uint64(s.rng.Int63n(int64(total)))
	}
	return s.rng.Uint64() % total
}
