package domain

import "runtime"

const (
	// MinThreads is the lower clamp for the worker count.
	MinThreads = 1
	// MaxThreads is the upper clamp for the worker count.
	MaxThreads = 8

	// DefaultRoundRobinCeiling is the largest smallest-coin the residue solver accepts.
	DefaultRoundRobinCeiling = 10_000_000
	// DefaultSieveCeiling is the largest bound the sieve will allocate.
	DefaultSieveCeiling = 100_000_000
	// DefaultSieveMaxCoin is the exclusive limit on the largest coin for the sieve to be tried.
	DefaultSieveMaxCoin = 1_000_000
	// DefaultParallelThreshold is the bound above which the sieve is built by several workers.
	DefaultParallelThreshold = 1_000_000
	// DefaultRoundRobinMaxCoins is the largest set size that goes straight to round-robin.
	DefaultRoundRobinMaxCoins = 4
)

// ClampThreads clamps n into [MinThreads, MaxThreads].
func ClampThreads(n int) int {
	return max(MinThreads, min(n, MaxThreads))
}

// DefaultThreads returns the CPU count clamped to the allowed range.
func DefaultThreads() int {
	return ClampThreads(runtime.NumCPU())
}

// SolverConfig controls diagnostics and parallelism of a solver instance.
type SolverConfig struct {
	Verbose  bool
	Threads  int
	Parallel bool
}

// Limits holds the numeric thresholds used by strategy selection and the algorithms.
type Limits struct {
	RoundRobinCeiling  uint64
	SieveCeiling       uint64
	SieveMaxCoin       uint64
	ParallelThreshold  uint64
	RoundRobinMaxCoins int
}

// DefaultLimits returns the standard thresholds.
func DefaultLimits() Limits {
	return Limits{
		RoundRobinCeiling:  DefaultRoundRobinCeiling,
		SieveCeiling:       DefaultSieveCeiling,
		SieveMaxCoin:       DefaultSieveMaxCoin,
		ParallelThreshold:  DefaultParallelThreshold,
		RoundRobinMaxCoins: DefaultRoundRobinMaxCoins,
	}
}

// Config is the resolved configuration of a frob invocation.
type Config struct {
	Solver  SolverConfig
	Limits  Limits
	JSON    bool
	Samples []NamedSet
	// Path is the file the configuration was read from, empty when defaults were used.
	Path string
}

// DefaultConfig returns the configuration used when no frob.yaml is found.
func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			Threads:  DefaultThreads(),
			Parallel: true,
		},
		Limits:  DefaultLimits(),
		Samples: DefaultSamples(),
	}
}

// DefaultSamples returns the demonstration sets solved by the root command.
func DefaultSamples() []NamedSet {
	return []NamedSet{
		{Name: "classic", Coins: NewCoinSet(3, 5, 7)},
		{Name: "mcnugget", Coins: NewCoinSet(6, 9, 20)},
		{Name: "five coins", Coins: NewCoinSet(31, 41, 59, 26, 53)},
		{Name: "primes", Coins: NewCoinSet(101, 103, 107, 109)},
	}
}

// BenchmarkSamples returns the sets compared by the benchmark flag.
func BenchmarkSamples() []NamedSet {
	return DefaultSamples()[1:]
}
