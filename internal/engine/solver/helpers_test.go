package solver_test

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"go.trai.ch/frob/internal/core/domain"
	"go.trai.ch/frob/internal/engine/solver"
)

// mapCache is an in-memory ResultCache keyed by the rendered coin set.
type mapCache map[string]*big.Int

func (m mapCache) Get(coins domain.CoinSet) (*big.Int, bool) {
	v, ok := m[coins.String()]
	return v, ok
}

func (m mapCache) Put(coins domain.CoinSet, value *big.Int) {
	m[coins.String()] = new(big.Int).Set(value)
}

func (m mapCache) Len() int {
	return len(m)
}

// randomCoprimeSets draws n sorted coprime sets of 3 to 5 coins in [2, 1000).
func randomCoprimeSets(t *testing.T, seed uint64, n int) []domain.CoinSet {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	sets := make([]domain.CoinSet, 0, n)
	for len(sets) < n {
		size := 3 + rng.IntN(3)
		values := make([]int64, size)
		for i := range values {
			values[i] = 2 + rng.Int64N(998)
		}
		coins, err := solver.Normalize(domain.NewCoinSet(values...))
		if err != nil {
			t.Fatalf("normalize %v: %v", values, err)
		}
		if solver.GCD(coins).Cmp(big.NewInt(1)) != 0 {
			continue
		}
		sets = append(sets, coins)
	}
	return sets
}

// representable reports, for every value in [0, limit], whether it is a
// non-negative combination of coins.
func representable(coins domain.CoinSet, limit int64) []bool {
	reach := make([]bool, limit+1)
	reach[0] = true
	for i := int64(1); i <= limit; i++ {
		for _, c := range coins {
			if v := c.Int64(); v <= i && reach[i-v] {
				reach[i] = true
				break
			}
		}
	}
	return reach
}
