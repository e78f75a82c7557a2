// Package cache provides the in-memory result cache of the solver.
package cache

import (
	"encoding/binary"
	"math/big"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/frob/internal/core/domain"
	"go.trai.ch/frob/internal/core/ports"
)

var _ ports.ResultCache = (*Cache)(nil)

// Cache maps canonical coin sets to Frobenius numbers.
// Keys are bucketed by an xxhash of their values and compared value by value,
// so a hash collision never returns another set's result. Entries are never evicted.
type Cache struct {
	buckets map[uint64][]entry
	size    int
}

type entry struct {
	coins domain.CoinSet
	value *big.Int
}

// New creates an empty Cache.
func New() *Cache {
	return &Cache{buckets: make(map[uint64][]entry)}
}

// Get returns a copy of the value stored for coins.
func (c *Cache) Get(coins domain.CoinSet) (*big.Int, bool) {
	for _, e := range c.buckets[hashKey(coins)] {
		if e.coins.Equal(coins) {
			return new(big.Int).Set(e.value), true
		}
	}
	return nil, false
}

// Put stores a copy of value under a copy of coins.
func (c *Cache) Put(coins domain.CoinSet, value *big.Int) {
	key := hashKey(coins)
	bucket := c.buckets[key]
	for i, e := range bucket {
		if e.coins.Equal(coins) {
			bucket[i].value = new(big.Int).Set(value)
			return
		}
	}
	c.buckets[key] = append(bucket, entry{coins: coins.Clone(), value: new(big.Int).Set(value)})
	c.size++
}

// Len returns the number of distinct coin sets stored.
func (c *Cache) Len() int {
	return c.size
}

// hashKey hashes the magnitude bytes of every coin, each prefixed with its length.
func hashKey(coins domain.CoinSet) uint64 {
	hasher := xxhash.New()
	var prefix [8]byte
	for _, v := range coins {
		b := v.Bytes()
		binary.BigEndian.PutUint64(prefix[:], uint64(len(b)))
		_, _ = hasher.Write(prefix[:])
		_, _ = hasher.Write(b)
	}
	return hasher.Sum64()
}
