package solver

import (
	"math/big"

	"go.trai.ch/frob/internal/core/domain"
	"go.trai.ch/zerr"
)

var one = big.NewInt(1)

// GCD returns the greatest common divisor of all coins.
// It stops as soon as a partial gcd reaches 1. An empty set yields 0.
func GCD(coins domain.CoinSet) *big.Int {
	g := new(big.Int)
	for _, c := range coins {
		g.GCD(nil, nil, g, new(big.Int).Abs(c))
		if g.Cmp(one) == 0 {
			break
		}
	}
	return g
}

// requireCoprime fails with ErrNonCoprime unless the set's gcd is 1.
func requireCoprime(coins domain.CoinSet) error {
	g := GCD(coins)
	if g.Cmp(one) == 0 {
		return nil
	}
	err := zerr.With(zerr.Wrap(domain.ErrNonCoprime, "gcd of coin set is "+g.String()), "gcd", g.String())
	return zerr.With(err, "coins", coins.String())
}
