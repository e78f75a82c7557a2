package ports

import (
	"time"

	"go.trai.ch/frob/internal/core/domain"
)

// Metrics records solver activity.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// ObserveSolve records one computed (non-cached) solve.
	ObserveSolve(strategy domain.Strategy, elapsed time.Duration, err error)
	// CacheHit records a lookup that was served from the cache.
	CacheHit()
	// CacheMiss records a lookup that required computation.
	CacheMiss()
	// Fallback records a sieve failure that was retried with round-robin.
	Fallback()
	// BenchmarkMismatch records a benchmark where the two algorithms disagreed.
	BenchmarkMismatch()
	// Export writes the current values to path in the Prometheus text format.
	Export(path string) error
}
