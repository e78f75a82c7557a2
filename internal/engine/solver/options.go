package solver

import (
	"go.trai.ch/frob/internal/core/domain"
	"go.trai.ch/frob/internal/core/ports"
)

// DefaultMinParallelSpan is the smallest window, in bits, that is split across workers.
// Narrower windows are filled inline because goroutine hand-off would dominate.
const DefaultMinParallelSpan = 4096

// Option configures a Solver.
type Option func(*Solver)

// WithConfig sets verbosity and parallelism. The thread count is clamped to [1, 8].
func WithConfig(cfg domain.SolverConfig) Option {
	return func(s *Solver) {
		cfg.Threads = domain.ClampThreads(cfg.Threads)
		s.cfg = cfg
	}
}

// WithLimits overrides the numeric thresholds. Zero fields keep their defaults.
func WithLimits(l domain.Limits) Option {
	return func(s *Solver) {
		d := domain.DefaultLimits()
		if l.RoundRobinCeiling == 0 {
			l.RoundRobinCeiling = d.RoundRobinCeiling
		}
		if l.SieveCeiling == 0 {
			l.SieveCeiling = d.SieveCeiling
		}
		if l.SieveMaxCoin == 0 {
			l.SieveMaxCoin = d.SieveMaxCoin
		}
		if l.ParallelThreshold == 0 {
			l.ParallelThreshold = d.ParallelThreshold
		}
		if l.RoundRobinMaxCoins == 0 {
			l.RoundRobinMaxCoins = d.RoundRobinMaxCoins
		}
		s.limits = l
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l ports.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTracer sets the tracer used for solve spans.
func WithTracer(t ports.Tracer) Option {
	return func(s *Solver) {
		if t != nil {
			s.tracer = t
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m ports.Metrics) Option {
	return func(s *Solver) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithMinParallelSpan sets the narrowest sieve window that is split across workers.
func WithMinParallelSpan(bits uint64) Option {
	return func(s *Solver) {
		if bits > 0 {
			s.minParallelSpan = bits
		}
	}
}
