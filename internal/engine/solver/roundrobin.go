package solver

import (
	"math"
	"math/big"
	"math/bits"

	"go.trai.ch/frob/internal/core/domain"
	"go.trai.ch/zerr"
)

// RoundRobin computes the Frobenius number of a canonical coin set from the
// shortest representable value of every residue class modulo the smallest coin a.
//
// Coins are added one at a time. Adding coin c links residue r to (r+c) mod a,
// which splits the classes into gcd(a, c) cycles of a/gcd(a, c) residues. The
// smallest value on a cycle cannot be improved by c, so one lap starting there
// settles the whole cycle. Every coin costs O(a) and the answer is exact.
func RoundRobin(coins domain.CoinSet, ceiling uint64) (*big.Int, error) {
	f, _, err := roundRobin(coins, ceiling)
	return f, err
}

// roundRobin also returns the number of residue updates performed.
func roundRobin(coins domain.CoinSet, ceiling uint64) (*big.Int, uint64, error) {
	if err := requireCoprime(coins); err != nil {
		return nil, 0, err
	}

	a := coins.First()
	if !a.IsUint64() || a.Uint64() > ceiling {
		err := zerr.With(zerr.Wrap(domain.ErrValueTooLarge, "smallest coin exceeds round-robin ceiling"), "coin", a.String())
		return nil, 0, zerr.With(err, "ceiling", ceiling)
	}

	n := a.Uint64()
	if fitsWords(coins, n) {
		return relaxWords(coins, n)
	}
	return relaxBig(coins, n)
}

// fitsWords reports whether every intermediate value stays below MaxUint64.
// Minimal residue values are below a*last, and a lap adds at most one coin.
func fitsWords(coins domain.CoinSet, n uint64) bool {
	last := coins.Last()
	if !last.IsUint64() {
		return false
	}
	hi, lo := bits.Mul64(n, last.Uint64())
	return hi == 0 && lo < math.MaxUint64
}

// cycles returns the number of cycles the shift splits n residues into.
func cycles(n, shift uint64) uint64 {
	for shift != 0 {
		n, shift = shift, n%shift
	}
	return n
}

// advance returns (r + shift) mod n for r, shift < n without overflowing.
func advance(r, shift, n uint64) uint64 {
	if r >= n-shift {
		return r - (n - shift)
	}
	return r + shift
}

func unresolved(coins domain.CoinSet, residue uint64) error {
	err := zerr.With(zerr.Wrap(domain.ErrUnresolved, "residue class is unreachable"), "residue", residue)
	return zerr.With(err, "coins", coins.String())
}

func relaxWords(coins domain.CoinSet, n uint64) (*big.Int, uint64, error) {
	const unknown = math.MaxUint64

	best := make([]uint64, n)
	for i := range best {
		best[i] = unknown
	}
	best[0] = 0

	var steps uint64
	for _, c := range coins[1:] {
		step := c.Uint64()
		shift := step % n
		d := cycles(n, shift)

		for p := range d {
			start, v := p, uint64(unknown)
			for q := p; q < n; q += d {
				if best[q] < v {
					start, v = q, best[q]
				}
			}
			if v == unknown {
				continue
			}

			r := start
			for range n/d - 1 {
				r = advance(r, shift, n)
				v = min(v+step, best[r])
				best[r] = v
				steps++
			}
		}
	}

	var highest uint64
	for r, v := range best {
		if v == unknown {
			return nil, steps, unresolved(coins, uint64(r))
		}
		highest = max(highest, v)
	}

	f := new(big.Int).SetUint64(highest)
	return f.Sub(f, coins.First()), steps, nil
}

func relaxBig(coins domain.CoinSet, n uint64) (*big.Int, uint64, error) {
	best := make([]big.Int, n)
	known := make([]bool, n)
	known[0] = true

	mod := new(big.Int).SetUint64(n)
	var shiftBig, v big.Int
	var steps uint64
	for _, c := range coins[1:] {
		shift := shiftBig.Mod(c, mod).Uint64()
		d := cycles(n, shift)

		for p := range d {
			start, found := p, false
			for q := p; q < n; q += d {
				if known[q] && (!found || best[q].Cmp(&best[start]) < 0) {
					start, found = q, true
				}
			}
			if !found {
				continue
			}

			v.Set(&best[start])
			r := start
			for range n/d - 1 {
				r = advance(r, shift, n)
				v.Add(&v, c)
				if known[r] && best[r].Cmp(&v) < 0 {
					v.Set(&best[r])
				}
				best[r].Set(&v)
				known[r] = true
				steps++
			}
		}
	}

	highest := new(big.Int)
	for r := range best {
		if !known[r] {
			return nil, steps, unresolved(coins, uint64(r))
		}
		if best[r].Cmp(highest) > 0 {
			highest.Set(&best[r])
		}
	}

	return highest.Sub(highest, coins.First()), steps, nil
}
