package hasher

import (
	"testing"
)

type point struct {
	x, y int32
}

// packs a point into one id, x in the high half
type pointIDs struct{}

func (pointIDs) FromLong(l int64) point {
	return point{x: int32(l >> 32), y: int32(l)}
}

func (pointIDs) ToLong(p point) int64 {
	return int64(p.x)<<32 | int64(uint32(p.y))
}

func TestHasherFunc(t *testing.T) {
	h := HasherFunc[string](func(key string) int32 { return int32(len(key)) })

	tests := []struct {
		name string
		key  string
		want int32
	}{
		{name: "empty", key: "", want: 0},
		{name: "short", key: "abc", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.HashCode(tt.key); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestLongFactoryFunc(t *testing.T) {
	calls := 0
	f := LongFactoryFunc(func() LongHasher {
		calls++
		return LongHasherFunc(func(key int64) int32 { return int32(key) })
	})

	h1 := f.MakeHasher()
	h2 := f.MakeHasher()
	if calls != 2 {
		t.Errorf("expected 2 hasher constructions, got %d", calls)
	}
	if h1.HashCode(5) != 5 || h2.HashCode(-1) != -1 {
		t.Error("hashers did not delegate to the wrapped function")
	}
}

func TestFactoryFunc(t *testing.T) {
	f := FactoryFunc[int64](func() Hasher[int64] {
		return HasherFunc[int64](func(key int64) int32 { return int32(key >> 32) })
	})

	if got := f.MakeHasher().HashCode(3 << 32); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}

func TestViaLongid(t *testing.T) {
	var seen []int64
	lh := LongHasherFunc(func(key int64) int32 {
		seen = append(seen, key)
		return int32(key ^ key>>32)
	})

	h := ViaLongid[point](pointIDs{}, lh)

	p := point{x: 1, y: -2}
	got := h.HashCode(p)

	id := pointIDs{}.ToLong(p)
	if len(seen) != 1 || seen[0] != id {
		t.Fatalf("expected long hasher called once with %d, got %v", id, seen)
	}
	if want := int32(id ^ id>>32); got != want {
		t.Errorf("expected %d, got %d", want, got)
	}
	if back := (pointIDs{}).FromLong(id); back != p {
		t.Errorf("id round trip: expected %v, got %v", p, back)
	}
}

func TestInterfaces(t *testing.T) {
	var _ Hasher[int] = HasherFunc[int](nil)
	var _ LongHasher = LongHasherFunc(nil)
	var _ Factory[int] = FactoryFunc[int](nil)
	var _ LongFactory = LongFactoryFunc(nil)
	var _ LongidFunction[point] = pointIDs{}
}
