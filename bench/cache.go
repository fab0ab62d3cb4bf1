package bench

import (
	"github.com/rs/xid"
)

// entry pairs a generated array with the unique id it was tagged with,
// so a later benchmark report can cite exactly which generated array a
// result came from even across repeated runs of the same dimension.
type entry struct {
	id    xid.ID
	arr   []float64
	dist  Distribution
	scale float64
}

// Cache memoizes generated arrays by dimension, so a harness that runs
// several accumulator backends over "the same" array of a given size
// only pays the generation cost once. Each distinct array is tagged
// with a fresh xid so results can be cross-referenced unambiguously.
type Cache struct {
	byDimension map[int][]entry
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{byDimension: make(map[int][]entry)}
}

// GetOrGenerate returns a cached array of dimension n for the given
// distribution and scale if one was already generated by this Cache
// with matching parameters, or generates and caches a fresh one
// otherwise. It returns the array's run id alongside the array itself.
func (c *Cache) GetOrGenerate(gen *ArrayGen, n int, dist Distribution, scale float64) (xid.ID, []float64) {
	for _, e := range c.byDimension[n] {
		if e.dist == dist && e.scale == scale {
			return e.id, e.arr
		}
	}
	arr := gen.Array(n, dist, scale)
	id := xid.New()
	c.byDimension[n] = append(c.byDimension[n], entry{id: id, arr: arr, dist: dist, scale: scale})
	return id, arr
}

// Reset discards every cached array.
func (c *Cache) Reset() {
	c.byDimension = make(map[int][]entry)
}
