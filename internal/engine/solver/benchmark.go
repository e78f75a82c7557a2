package solver

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/frob/internal/core/domain"
	"go.trai.ch/frob/internal/core/ports"
)

// Benchmark runs round-robin and the sieve on the same set and times each.
// Nothing is cached. A round-robin failure is returned. A sieve failure is
// reported in the result and leaves the comparison undone.
func (s *Solver) Benchmark(ctx context.Context, raw domain.CoinSet) (domain.BenchmarkReport, error) {
	coins, err := Normalize(raw)
	if err != nil {
		return domain.BenchmarkReport{}, err
	}
	if err := requireCoprime(coins); err != nil {
		return domain.BenchmarkReport{}, err
	}

	ctx, span := s.tracer.Start(ctx, "benchmark", ports.WithAttribute("frob.coins", coins.String()))
	defer span.End()

	report := domain.BenchmarkReport{Coins: coins}

	start := time.Now()
	rr, err := s.roundRobin(ctx, coins)
	report.RoundRobin = time.Since(start)
	if err != nil {
		span.RecordError(err)
		return domain.BenchmarkReport{}, err
	}
	report.RoundRobinResult = rr

	start = time.Now()
	sv, err := s.sieve(ctx, coins)
	if err != nil {
		report.SieveErr = err
		return report, nil
	}
	report.Sieve = time.Since(start)
	report.SieveResult = sv

	report.Compared = true
	report.Agree = rr.Cmp(sv) == 0
	if !report.Agree {
		s.metrics.BenchmarkMismatch()
		s.logger.Warn(fmt.Sprintf("algorithms disagree on %s: round-robin %s, sieve %s", coins, rr, sv))
	}
	return report, nil
}
