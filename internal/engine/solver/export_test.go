package solver

import (
	"math/big"

	"go.trai.ch/frob/internal/core/domain"
)

// SieveSequential runs the sieve on a single goroutine.
func SieveSequential(coins domain.CoinSet, ceiling uint64) (*big.Int, error) {
	f, _, err := runSieve(coins, sieveConfig{ceiling: ceiling, threads: 1, pool: newSegmentPool()})
	return f, err
}

// SieveParallel runs the wavefront sieve regardless of the bound, reporting
// whether the parallel path was taken and how many windows it swept.
func SieveParallel(coins domain.CoinSet, threads int, minSpan uint64) (*big.Int, bool, int, error) {
	f, run, err := runSieve(coins, sieveConfig{
		ceiling:  domain.DefaultSieveCeiling,
		threads:  threads,
		parallel: true,
		minSpan:  minSpan,
		pool:     newSegmentPool(),
	})
	return f, run.parallel, run.windows, err
}

// RoundRobinSteps returns the number of residue updates round-robin performed.
func RoundRobinSteps(coins domain.CoinSet) (uint64, error) {
	_, steps, err := roundRobin(coins, domain.DefaultRoundRobinCeiling)
	return steps, err
}

// RoundRobinBig forces the arbitrary-precision relaxation path.
func RoundRobinBig(coins domain.CoinSet) (*big.Int, error) {
	f, _, err := relaxBig(coins, coins.First().Uint64())
	return f, err
}
