// Package solver computes Frobenius numbers of coin sets.
package solver

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"go.trai.ch/frob/internal/core/domain"
	"go.trai.ch/frob/internal/core/ports"
)

// Stats counts what a Solver has done since it was created.
type Stats struct {
	Calls          int
	CacheHits      int
	Computations   int
	RoundRobinRuns int
	SieveRuns      int
	Fallbacks      int
}

// Solver dispatches coin sets to the cheapest applicable algorithm and memoizes results.
// A Solver owns its cache and is not safe for concurrent use. See Synchronized.
type Solver struct {
	cfg     domain.SolverConfig
	limits  domain.Limits
	cache   ports.ResultCache
	logger  ports.Logger
	tracer  ports.Tracer
	metrics ports.Metrics

	pool            *segmentPool
	minParallelSpan uint64
	stats           Stats
}

// New creates a Solver that memoizes into cache.
func New(cache ports.ResultCache, opts ...Option) *Solver {
	s := &Solver{
		cfg: domain.SolverConfig{
			Threads:  domain.DefaultThreads(),
			Parallel: true,
		},
		limits:          domain.DefaultLimits(),
		cache:           cache,
		logger:          nopLogger{},
		tracer:          nopTracer{},
		metrics:         nopMetrics{},
		pool:            newSegmentPool(),
		minParallelSpan: DefaultMinParallelSpan,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the effective solver configuration.
func (s *Solver) Config() domain.SolverConfig {
	return s.cfg
}

// Stats returns a snapshot of the counters.
func (s *Solver) Stats() Stats {
	return s.stats
}

// Solve returns the Frobenius number of raw, or -1 when every non-negative
// integer is representable. Results are cached under the normalized set.
func (s *Solver) Solve(ctx context.Context, raw domain.CoinSet) (*big.Int, error) {
	s.stats.Calls++

	coins, err := Normalize(raw)
	if err != nil {
		return nil, err
	}

	if v, ok := s.cache.Get(coins); ok {
		s.stats.CacheHits++
		s.metrics.CacheHit()
		return new(big.Int).Set(v), nil
	}
	s.metrics.CacheMiss()

	strategy := SelectStrategy(coins, s.limits)
	ctx, span := s.tracer.Start(ctx, "solve",
		ports.WithAttribute("frob.coins", coins.String()),
		ports.WithAttribute("frob.strategy", strategy.String()),
	)
	defer span.End()

	start := time.Now()
	f, err := s.compute(ctx, coins, strategy)
	s.metrics.ObserveSolve(strategy, time.Since(start), err)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.stats.Computations++
	s.cache.Put(coins, f)
	span.SetAttribute("frob.result", f.String())
	return new(big.Int).Set(f), nil
}

func (s *Solver) compute(ctx context.Context, coins domain.CoinSet, strategy domain.Strategy) (*big.Int, error) {
	switch strategy {
	case domain.StrategySingle:
		k := coins.First()
		if k.Cmp(one) > 0 {
			return new(big.Int).Sub(k, one), nil
		}
		return big.NewInt(domain.Unbounded), nil
	case domain.StrategyTwoValue:
		return s.twoValue(ctx, coins)
	}

	if err := requireCoprime(coins); err != nil {
		return nil, err
	}

	if strategy == domain.StrategyRoundRobin {
		return s.roundRobin(ctx, coins)
	}

	f, err := s.sieve(ctx, coins)
	if err == nil {
		return f, nil
	}

	s.stats.Fallbacks++
	s.metrics.Fallback()
	s.logger.Debug(fmt.Sprintf("sieve failed for %s, falling back to round-robin: %v", coins, err))
	return s.roundRobin(ctx, coins)
}

func (s *Solver) twoValue(ctx context.Context, coins domain.CoinSet) (*big.Int, error) {
	_, span := s.tracer.Start(ctx, "solve.two_value")
	defer span.End()

	f, err := TwoValue(coins[0], coins[1])
	if err != nil {
		span.RecordError(err)
	}
	return f, err
}

func (s *Solver) roundRobin(ctx context.Context, coins domain.CoinSet) (*big.Int, error) {
	_, span := s.tracer.Start(ctx, "solve.round_robin")
	defer span.End()

	s.stats.RoundRobinRuns++
	f, steps, err := roundRobin(coins, s.limits.RoundRobinCeiling)
	span.SetAttribute("frob.residue_steps", steps)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	s.logger.Debug(fmt.Sprintf("round-robin on %s took %d residue steps", coins, steps))
	return f, nil
}

func (s *Solver) sieve(ctx context.Context, coins domain.CoinSet) (*big.Int, error) {
	_, span := s.tracer.Start(ctx, "solve.sieve")
	defer span.End()

	s.stats.SieveRuns++
	f, run, err := runSieve(coins, s.sieveConfig())
	span.SetAttribute("frob.bound", run.bound)
	span.SetAttribute("frob.parallel", run.parallel)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if run.parallel {
		s.logger.Debug(fmt.Sprintf("sieve on %s used %d workers over %d windows", coins, s.cfg.Threads, run.windows))
	}
	return f, nil
}

func (s *Solver) sieveConfig() sieveConfig {
	return sieveConfig{
		ceiling:           s.limits.SieveCeiling,
		parallelThreshold: s.limits.ParallelThreshold,
		threads:           s.cfg.Threads,
		parallel:          s.cfg.Parallel,
		minSpan:           s.minParallelSpan,
		pool:              s.pool,
	}
}
