package ports

import (
	"math/big"
	"time"

	"go.trai.ch/frob/internal/core/domain"
)

// Renderer is the abstraction for presenting solver output.
// It decouples the application flow from the terminal, so tests can capture output.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnHeader is called once before any work with the effective worker count.
	OnHeader(threads int, verbose bool)

	// OnResult is called when a coin set was solved.
	// label: the sample or batch name, empty for ad-hoc sets
	OnResult(label string, coins domain.CoinSet, value *big.Int, elapsed time.Duration)

	// OnFailure is called when solving a coin set failed.
	OnFailure(label string, coins domain.CoinSet, err error)

	// OnCheck is called for every known case of the self-check.
	OnCheck(result domain.CheckResult)

	// OnBenchmark is called with the comparator report of one coin set.
	OnBenchmark(label string, report domain.BenchmarkReport)

	// OnSpan is called when a traced stage ends.
	// name: span name, elapsed: wall time, err: nil if the stage succeeded
	OnSpan(name string, elapsed time.Duration, err error)
}
