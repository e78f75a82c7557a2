package domain

import (
	"math/big"
	"time"
)

// Unbounded is the sentinel Frobenius number meaning every non-negative integer is representable.
const Unbounded = -1

// BenchmarkReport holds the outcome of running both general algorithms on one coin set.
type BenchmarkReport struct {
	Coins CoinSet

	RoundRobin       time.Duration
	RoundRobinResult *big.Int

	// Sieve is zero when the sieve failed; SieveErr then holds the reason.
	Sieve       time.Duration
	SieveResult *big.Int
	SieveErr    error

	// Compared is true only when both algorithms produced a value.
	Compared bool
	Agree    bool
}

// Ratio returns RoundRobin/Sieve, or 0 when the sieve did not run.
func (r BenchmarkReport) Ratio() float64 {
	if r.Sieve <= 0 {
		return 0
	}
	return r.RoundRobin.Seconds() / r.Sieve.Seconds()
}

// KnownCase is a coin set with its expected Frobenius number, used by the self-check.
type KnownCase struct {
	Coins    CoinSet
	Expected int64
}

// KnownCases returns the reference cases the self-check verifies.
func KnownCases() []KnownCase {
	return []KnownCase{
		{Coins: NewCoinSet(3, 5), Expected: 7},
		{Coins: NewCoinSet(3, 5, 7), Expected: 4},
		{Coins: NewCoinSet(6, 9, 20), Expected: 43},
		{Coins: NewCoinSet(11, 13, 15, 17, 19), Expected: 42},
	}
}

// CheckResult is the outcome of one known case.
type CheckResult struct {
	Case KnownCase
	Got  *big.Int
	Err  error
}

// Passed reports whether the case produced the expected value.
func (c CheckResult) Passed() bool {
	return c.Err == nil && c.Got != nil && c.Got.Cmp(big.NewInt(c.Case.Expected)) == 0
}
