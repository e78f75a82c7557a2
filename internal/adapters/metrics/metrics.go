// Package metrics records solver activity in a Prometheus registry.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.trai.ch/frob/internal/core/domain"
	"go.trai.ch/frob/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Metrics = (*Recorder)(nil)

const namespace = "frob"

// Recorder implements ports.Metrics on a private registry, so several instances
// can coexist in one process.
type Recorder struct {
	registry *prometheus.Registry

	solves      *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
	fallbacks   prometheus.Counter
	mismatches  prometheus.Counter
}

// New creates a Recorder with all collectors registered.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		solves: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Computed solves by strategy and outcome.",
		}, []string{"strategy", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall time of computed solves by strategy.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 12),
		}, []string{"strategy"}),
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Solves answered from the result cache.",
		}),
		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Solves that required computation.",
		}),
		fallbacks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sieve_fallbacks_total",
			Help:      "Sieve failures retried with round-robin.",
		}),
		mismatches: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "benchmark_mismatches_total",
			Help:      "Benchmarks where round-robin and the sieve disagreed.",
		}),
	}
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveSolve records one computed solve.
func (r *Recorder) ObserveSolve(strategy domain.Strategy, elapsed time.Duration, err error) {
	r.solves.WithLabelValues(strategy.String(), Outcome(err)).Inc()
	r.duration.WithLabelValues(strategy.String()).Observe(elapsed.Seconds())
}

// CacheHit records a lookup served from the cache.
func (r *Recorder) CacheHit() { r.cacheHits.Inc() }

// CacheMiss records a lookup that required computation.
func (r *Recorder) CacheMiss() { r.cacheMisses.Inc() }

// Fallback records a sieve failure retried with round-robin.
func (r *Recorder) Fallback() { r.fallbacks.Inc() }

// BenchmarkMismatch records a disagreement between the two algorithms.
func (r *Recorder) BenchmarkMismatch() { r.mismatches.Inc() }

// Export writes every metric to path in the Prometheus text format.
// The file is replaced atomically.
func (r *Recorder) Export(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrMetricsWriteFailed, err.Error()), "path", path)
	}
	return nil
}

// Outcome maps a solve error to its metric label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, domain.ErrNonCoprime):
		return "non_coprime"
	case errors.Is(err, domain.ErrValueTooLarge):
		return "value_too_large"
	case errors.Is(err, domain.ErrBoundExceeded):
		return "bound_exceeded"
	case errors.Is(err, domain.ErrUnresolved):
		return "unresolved"
	default:
		return "error"
	}
}
