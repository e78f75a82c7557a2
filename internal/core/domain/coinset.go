package domain

import (
	"math/big"
	"strings"

	"go.trai.ch/zerr"
)

// CoinSet is an ascending sequence of positive integers.
// A CoinSet produced by normalization is canonical and is used as the cache key.
type CoinSet []*big.Int

// NewCoinSet builds a CoinSet from machine integers without normalizing it.
func NewCoinSet(values ...int64) CoinSet {
	cs := make(CoinSet, len(values))
	for i, v := range values {
		cs[i] = big.NewInt(v)
	}
	return cs
}

// ParseCoinSet parses decimal literals of arbitrary size into a CoinSet.
// Values are not filtered or sorted.
func ParseCoinSet(literals []string) (CoinSet, error) {
	cs := make(CoinSet, 0, len(literals))
	for _, lit := range literals {
		v, ok := new(big.Int).SetString(strings.TrimSpace(lit), 10)
		if !ok {
			return nil, zerr.With(zerr.Wrap(ErrInvalidCoin, "coin is not a decimal integer"), "coin", lit)
		}
		cs = append(cs, v)
	}
	return cs, nil
}

// Len returns the number of coins.
func (cs CoinSet) Len() int {
	return len(cs)
}

// First returns the smallest coin of a canonical set.
func (cs CoinSet) First() *big.Int {
	return cs[0]
}

// Last returns the largest coin of a canonical set.
func (cs CoinSet) Last() *big.Int {
	return cs[len(cs)-1]
}

// Equal reports whether two sets hold the same values in the same order.
func (cs CoinSet) Equal(other CoinSet) bool {
	if len(cs) != len(other) {
		return false
	}
	for i := range cs {
		if cs[i].Cmp(other[i]) != 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy so callers cannot mutate cached keys.
func (cs CoinSet) Clone() CoinSet {
	out := make(CoinSet, len(cs))
	for i, v := range cs {
		out[i] = new(big.Int).Set(v)
	}
	return out
}

// Strings returns the decimal form of each coin.
func (cs CoinSet) Strings() []string {
	out := make([]string, len(cs))
	for i, v := range cs {
		out[i] = v.String()
	}
	return out
}

// String renders the set as "[3 5 7]".
func (cs CoinSet) String() string {
	return "[" + strings.Join(cs.Strings(), " ") + "]"
}

// NamedSet is a coin set with a human-readable label, as used by samples and batch files.
type NamedSet struct {
	Name  string
	Coins CoinSet
}
