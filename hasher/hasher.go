// Package hasher defines the hash-code contracts that concrete hash
// functions are exposed through.
package hasher

// Hasher computes a 32-bit hash code for keys of type K.
type Hasher[K any] interface {
	HashCode(key K) int32
}

// LongHasher is Hasher specialized to raw 64-bit integer keys.
type LongHasher interface {
	HashCode(key int64) int32
}

// Factory creates Hashers for K.
type Factory[K any] interface {
	MakeHasher() Hasher[K]
}

// LongFactory creates LongHashers.
type LongFactory interface {
	MakeHasher() LongHasher
}

// LongidFunction maps between values of K and the int64 ids they
// correspond to one-to-one.
type LongidFunction[K any] interface {
	FromLong(l int64) K
	ToLong(k K) int64
}

// HasherFunc adapts a plain function to Hasher.
type HasherFunc[K any] func(key K) int32

func (f HasherFunc[K]) HashCode(key K) int32 { return f(key) }

// LongHasherFunc adapts a plain function to LongHasher.
type LongHasherFunc func(key int64) int32

func (f LongHasherFunc) HashCode(key int64) int32 { return f(key) }

// FactoryFunc adapts a plain function to Factory.
type FactoryFunc[K any] func() Hasher[K]

func (f FactoryFunc[K]) MakeHasher() Hasher[K] { return f() }

// LongFactoryFunc adapts a plain function to LongFactory.
type LongFactoryFunc func() LongHasher

func (f LongFactoryFunc) MakeHasher() LongHasher { return f() }

// ViaLongid hashes K by mapping it to its id with ids and hashing the id
// with h.
func ViaLongid[K any](ids LongidFunction[K], h LongHasher) Hasher[K] {
	return HasherFunc[K](func(key K) int32 {
		return h.HashCode(ids.ToLong(key))
	})
}
