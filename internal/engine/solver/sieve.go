package solver

import (
	"math/big"
	"math/bits"

	"github.com/bits-and-blooms/bitset"
	"go.trai.ch/frob/internal/core/domain"
	"go.trai.ch/zerr"
)

// SieveBound returns the smaller of the Schur bound last*first-first-last and the
// Vitek-style bound last*ceil(first/2)-1 for a canonical coin set.
func SieveBound(coins domain.CoinSet) *big.Int {
	first, last := coins.First(), coins.Last()

	schur := new(big.Int).Mul(last, first)
	schur.Sub(schur, first)
	schur.Sub(schur, last)

	half := new(big.Int).Add(first, one)
	half.Rsh(half, 1)
	vitek := new(big.Int).Mul(last, half)
	vitek.Sub(vitek, one)

	if schur.Cmp(vitek) < 0 {
		return schur
	}
	return vitek
}

type sieveConfig struct {
	ceiling           uint64
	parallelThreshold uint64
	threads           int
	parallel          bool
	minSpan           uint64
	pool              *segmentPool
}

type sieveRun struct {
	bound    uint64
	parallel bool
	windows  int
}

// runSieve builds the reachability table of a canonical coin set and returns the
// largest unreachable index, or -1 when every index up to the bound is reachable.
//
// The table extends first bits past the bound. Those bits must all be reachable,
// which proves every larger value is reachable too and certifies the bound.
func runSieve(coins domain.CoinSet, cfg sieveConfig) (*big.Int, sieveRun, error) {
	var run sieveRun

	b := SieveBound(coins)
	if b.Sign() < 0 || !b.IsUint64() || b.Uint64() > cfg.ceiling {
		err := zerr.With(zerr.Wrap(domain.ErrBoundExceeded, "sieve bound out of range"), "bound", b.String())
		return nil, run, zerr.With(err, "ceiling", cfg.ceiling)
	}
	run.bound = b.Uint64()

	values := make([]uint64, len(coins))
	for i, c := range coins {
		if !c.IsUint64() {
			return nil, run, zerr.With(zerr.Wrap(domain.ErrValueTooLarge, "coin does not fit sieve index"), "coin", c.String())
		}
		values[i] = c.Uint64()
	}

	size, carry := bits.Add64(run.bound, values[0]+1, 0)
	if carry != 0 || values[0] == ^uint64(0) {
		return nil, run, zerr.With(zerr.Wrap(domain.ErrBoundExceeded, "sieve size overflows"), "bound", b.String())
	}

	words := cfg.pool.get(int((size + 63) >> 6))
	defer cfg.pool.put(words)
	reach := bitset.FromWithLength(uint(size), words)
	reach.Set(0)

	run.parallel = cfg.parallel && cfg.threads > 1 && len(values) >= 3 && run.bound > cfg.parallelThreshold
	if run.parallel {
		run.windows = fillWavefront(reach, values, size, cfg)
	} else {
		fillSequential(reach, values, size)
	}

	if gap, found := reach.NextClear(uint(run.bound + 1)); found {
		err := zerr.With(unresolved(coins, 0), "bound", run.bound)
		return nil, run, zerr.With(err, "gap", gap)
	}

	gap, found := reach.PreviousClear(uint(run.bound))
	if !found {
		return big.NewInt(domain.Unbounded), run, nil
	}
	return new(big.Int).SetUint64(uint64(gap)), run, nil
}

// fillSequential sweeps each coin in turn, marking i whenever i-c is reachable.
func fillSequential(reach *bitset.BitSet, coins []uint64, size uint64) {
	for _, c := range coins {
		for i := c; i < size; i++ {
			if reach.Test(uint(i - c)) {
				reach.Set(uint(i))
			}
		}
	}
}
