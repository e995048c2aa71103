// Package tabular implements tabular (Zobrist) hashing of fixed-width keys.
//
// A Hasher holds one random 32-bit value per (byte position, byte value)
// pair and hashes a key by XOR-ing together the values selected by its
// bytes. It is a fast dispersion hash for picking hash table buckets, not a
// cryptographic one.
//
// Evaluation does no bounds checking of its own. Reading past the table or
// past the supplied key panics with the runtime's index error, so callers
// must keep keys within KeyBytes.
package tabular

import (
	"github.com/satmihir/tabhash/internal/constants"
	"github.com/satmihir/tabhash/internal/seed"
	"github.com/satmihir/tabhash/internal/utils"
)

// ByteSequence is random access to single bytes of a key that is not
// necessarily laid out in one slice.
type ByteSequence interface {
	ByteAt(i int) byte
}

// Bytes is a byte slice viewed as a ByteSequence.
type Bytes []byte

func (b Bytes) ByteAt(i int) byte {
	return b[i]
}

// Hasher is a tabular hash function for keys of up to KeyBytes bytes.
// The table is immutable after New returns, so a Hasher is safe for
// concurrent use once it has been published.
type Hasher struct {
	keyBytes int
	// keyBytes columns of ColumnSize entries, column c at [c*ColumnSize, (c+1)*ColumnSize).
	tab []int32
}

// Option configures how a Hasher's table is seeded.
type Option func(*options)

type options struct {
	source seed.Source
}

// WithSeed fills the table from a PRNG seeded with s. Hashers built with
// the same seed and width hash identically.
func WithSeed(s uint64) Option {
	return func(o *options) {
		o.source = seed.Fixed(s)
	}
}

// WithSalt derives the seed from salt. An empty salt leaves the seed
// unset.
func WithSalt(salt []byte) Option {
	return func(o *options) {
		if len(salt) > 0 {
			o.source = seed.NewXXH3Salted(salt)
		}
	}
}

// New creates a Hasher for keys of keyBytes bytes. Without options every
// call gets an independently seeded table. Panics if keyBytes < 1.
func New(keyBytes int, opts ...Option) *Hasher {
	utils.MustBeTrue(keyBytes >= 1, "tabular: keyBytes must be at least 1")

	o := options{source: seed.Default}
	for _, opt := range opts {
		opt(&o)
	}

	rng := seed.NewRand(o.source)
	tab := make([]int32, constants.ColumnSize*keyBytes)
	for i := range tab {
		tab[i] = int32(rng.Uint32())
	}

	return &Hasher{keyBytes: keyBytes, tab: tab}
}

// KeyBytes returns the key width the table was built for.
func (h *Hasher) KeyBytes() int {
	return h.keyBytes
}

// HashCode hashes the KeyBytes bytes of buf starting at off.
func (h *Hasher) HashCode(buf []byte, off int) int32 {
	return hashSequence(h.tab, h.keyBytes, Bytes(buf), off)
}

// SequenceHashCode hashes the KeyBytes bytes of s starting at off.
func (h *Hasher) SequenceHashCode(s ByteSequence, off int) int32 {
	return hashSequence(h.tab, h.keyBytes, s, off)
}

func hashSequence[S ByteSequence](tab []int32, keyBytes int, s S, off int) int32 {
	r := tab[s.ByteAt(off)]
	for i, col := 1, constants.ColumnSize; i < keyBytes; i, col = i+1, col+constants.ColumnSize {
		r ^= tab[col+int(s.ByteAt(off+i))]
	}
	return r
}

// IntHashCode hashes the 4 little-endian bytes of key. Panics if KeyBytes
// is less than 4.
func (h *Hasher) IntHashCode(key int32) int32 {
	tab := h.tab[:constants.IntKeyBytes*constants.ColumnSize]
	k := uint32(key)
	return tab[byte(k)] ^
		tab[1*constants.ColumnSize+int(byte(k>>8))] ^
		tab[2*constants.ColumnSize+int(byte(k>>16))] ^
		tab[3*constants.ColumnSize+int(byte(k>>24))]
}

// LongHashCode hashes the 8 little-endian bytes of key. Panics if KeyBytes
// is less than 8.
func (h *Hasher) LongHashCode(key int64) int32 {
	tab := h.tab[:constants.LongKeyBytes*constants.ColumnSize]
	k := uint64(key)
	var r int32
	for col := 0; col < len(tab); col += constants.ColumnSize {
		r ^= tab[col+int(byte(k))]
		k >>= 8
	}
	return r
}

// CombinedIntHashCode hashes the key made of the iBytes low-order bytes of
// i followed by the KeyBytes-iBytes low-order bytes of j, both
// little-endian. Bytes beyond the width of an int32 read as zero.
// Panics unless 0 <= iBytes <= KeyBytes.
func (h *Hasher) CombinedIntHashCode(iBytes int, i, j int32) int32 {
	utils.MustBeTrue(iBytes >= 0 && iBytes <= h.keyBytes, "tabular: iBytes out of range")

	ui, uj := uint32(i), uint32(j)
	var r int32
	col := 0
	for c := 0; c < iBytes; c++ {
		r ^= h.tab[col+int(byte(ui))]
		ui >>= 8
		col += constants.ColumnSize
	}
	for c := iBytes; c < h.keyBytes; c++ {
		r ^= h.tab[col+int(byte(uj))]
		uj >>= 8
		col += constants.ColumnSize
	}
	return r
}
