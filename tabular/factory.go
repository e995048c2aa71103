package tabular

import (
	"github.com/satmihir/tabhash/hasher"
	"github.com/satmihir/tabhash/internal/constants"
)

// Long is the set of 64-bit integer key types.
type Long interface {
	~int64 | ~uint64
}

// LongGenericHasherFactory returns a Factory whose hashers hash 64-bit
// integer keys with their own 8-byte Hasher. Each MakeHasher call builds a
// new table; pass WithSeed or WithSalt to make all of them hash alike.
func LongGenericHasherFactory[K Long](opts ...Option) hasher.Factory[K] {
	return hasher.FactoryFunc[K](func() hasher.Hasher[K] {
		th := New(constants.LongKeyBytes, opts...)
		return hasher.HasherFunc[K](func(key K) int32 {
			return th.LongHashCode(int64(key))
		})
	})
}

// LongKeyHasherFactory is LongGenericHasherFactory for raw int64 keys.
func LongKeyHasherFactory(opts ...Option) hasher.LongFactory {
	return hasher.LongFactoryFunc(func() hasher.LongHasher {
		return hasher.LongHasherFunc(New(constants.LongKeyBytes, opts...).LongHashCode)
	})
}
