package solver

import (
	"math/big"

	"go.trai.ch/frob/internal/core/domain"
)

// TwoValue returns a*b - a - b for two coprime positive coins.
func TwoValue(a, b *big.Int) (*big.Int, error) {
	if err := requireCoprime(domain.CoinSet{a, b}); err != nil {
		return nil, err
	}

	f := new(big.Int).Mul(a, b)
	f.Sub(f, a)
	return f.Sub(f, b), nil
}
