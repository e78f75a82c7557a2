package cache

import "go.trai.ch/frob/internal/core/domain"

// HashKey exposes the bucket hash for tests.
func HashKey(coins domain.CoinSet) uint64 {
	return hashKey(coins)
}
