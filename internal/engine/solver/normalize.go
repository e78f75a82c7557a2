package solver

import (
	"math/big"
	"slices"

	"go.trai.ch/frob/internal/core/domain"
	"go.trai.ch/zerr"
)

// Normalize drops non-positive values and returns an ascending copy of the rest.
// The result is the canonical form used for caching.
func Normalize(raw domain.CoinSet) (domain.CoinSet, error) {
	coins := make(domain.CoinSet, 0, len(raw))
	for _, v := range raw {
		if v == nil || v.Sign() <= 0 {
			continue
		}
		coins = append(coins, new(big.Int).Set(v))
	}

	if len(coins) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrEmptyInput, "cannot solve"), "input_len", len(raw))
	}

	slices.SortFunc(coins, func(a, b *big.Int) int {
		return a.Cmp(b)
	})
	return coins, nil
}
