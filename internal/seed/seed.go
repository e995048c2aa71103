// Package seed picks the PRNG seeds used to fill tabular hash tables.
package seed

import (
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/zeebo/xxh3"
)

var (
	// Default gives every call a different seed.
	Default Source = clockSource{}

	// distinguishes sources created within the same clock tick
	clockCounter atomic.Uint64
)

// Source supplies the seed for one table.
type Source interface {
	// Seed returns the 64-bit seed for the next table.
	Seed() uint64
}

// Fixed always returns the same seed.
type Fixed uint64

func (f Fixed) Seed() uint64 {
	return uint64(f)
}

// XXH3Salted derives a fixed seed from a salt using xxhash3.
type XXH3Salted struct {
	seed uint64
}

func NewXXH3Salted(salt []byte) *XXH3Salted {
	return &XXH3Salted{seed: xxh3.Hash(salt)}
}

func (s *XXH3Salted) Seed() uint64 {
	return s.seed
}

type clockSource struct{}

func (clockSource) Seed() uint64 {
	n := clockCounter.Add(1)
	return uint64(time.Now().UnixNano()) ^ (n * 0x9e3779b97f4a7c15)
}

// NewRand returns a PRNG seeded from all 64 bits of s's seed.
func NewRand(s Source) *rand.Rand {
	v := s.Seed()
	return rand.New(rand.NewPCG(v, v^0xda942042e4dd58b5))
}
