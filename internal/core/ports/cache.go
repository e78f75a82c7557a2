package ports

import (
	"math/big"

	"go.trai.ch/frob/internal/core/domain"
)

// ResultCache memoizes Frobenius numbers by canonical coin set.
// Implementations are not required to be safe for concurrent use.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ResultCache interface {
	// Get returns the cached value for an equal coin set.
	Get(coins domain.CoinSet) (*big.Int, bool)
	// Put stores the value for the coin set. Existing entries are overwritten.
	Put(coins domain.CoinSet, value *big.Int)
	// Len returns the number of cached entries.
	Len() int
}
