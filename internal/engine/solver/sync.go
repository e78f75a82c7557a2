package solver

import (
	"context"
	"math/big"
	"sync"

	"go.trai.ch/frob/internal/core/domain"
	"golang.org/x/sync/singleflight"
)

// Synchronized makes a Solver safe for concurrent use.
// Concurrent solves of the same canonical set share one computation.
type Synchronized struct {
	mu     sync.Mutex
	group  singleflight.Group
	solver *Solver
}

// NewSynchronized wraps s. s must not be used directly afterwards.
func NewSynchronized(s *Solver) *Synchronized {
	return &Synchronized{solver: s}
}

// Solve is the concurrent-safe form of Solver.Solve.
func (s *Synchronized) Solve(ctx context.Context, raw domain.CoinSet) (*big.Int, error) {
	key, err := Normalize(raw)
	if err != nil {
		s.mu.Lock()
		s.solver.stats.Calls++
		s.mu.Unlock()
		return nil, err
	}

	v, err, _ := s.group.Do(key.String(), func() (any, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.solver.Solve(ctx, key)
	})
	if err != nil {
		return nil, err
	}
	return new(big.Int).Set(v.(*big.Int)), nil
}

// Benchmark is the concurrent-safe form of Solver.Benchmark.
func (s *Synchronized) Benchmark(ctx context.Context, raw domain.CoinSet) (domain.BenchmarkReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.solver.Benchmark(ctx, raw)
}

// Stats returns a snapshot of the wrapped solver's counters.
func (s *Synchronized) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.solver.Stats()
}

// Config returns the wrapped solver's configuration.
func (s *Synchronized) Config() domain.SolverConfig {
	return s.solver.Config()
}
