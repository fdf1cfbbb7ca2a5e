package instance

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// Generator memoizes instance vectors so that sweeping many dimensions and
// repeated runs of the same instance does not redraw them. It is safe for
// concurrent use; every accessor returns a private copy.
type Generator struct {
	store *cache.Cache
}

// NewGenerator creates a Generator whose entries expire after ttl. A zero ttl
// keeps entries for the lifetime of the Generator.
func NewGenerator(ttl time.Duration) *Generator {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	return &Generator{
		store: cache.New(ttl, 10*time.Minute),
	}
}

func (g *Generator) ints(kind string, seed int64, n int, build func() []int) []int {
	key := fmt.Sprintf("%s/%d/%d", kind, seed, n)
	if v, ok := g.store.Get(key); ok {
		return append([]int(nil), v.([]int)...)
	}
	v := build()
	g.store.Set(key, v, cache.DefaultExpiration)
	return append([]int(nil), v...)
}

// XoptInt is the cached form of XoptInt.
func (g *Generator) XoptInt(seed int64, n int) []int {
	return g.ints("xopt", seed, n, func() []int { return XoptInt(seed, n) })
}

// Permutation is the cached form of Permutation.
func (g *Generator) Permutation(seed int64, n int) []int {
	return g.ints("sigma", seed, n, func() []int { return Permutation(seed, n) })
}

// DummyPositions is the cached form of DummyPositions.
func (g *Generator) DummyPositions(oldDim, newDim int) []int {
	return g.ints("dummy", int64(oldDim), newDim, func() []int { return DummyPositions(oldDim, newDim) })
}

// Len reports the number of cached vectors.
func (g *Generator) Len() int {
	return g.store.ItemCount()
}
