package metrics_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/frob/internal/adapters/metrics"
	"go.trai.ch/frob/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestRecorder_Counters(t *testing.T) {
	r := metrics.New()

	r.CacheMiss()
	r.CacheMiss()
	r.CacheHit()
	r.Fallback()
	r.BenchmarkMismatch()

	assert.InDelta(t, 2, testutil.ToFloat64(r.CacheMissesCounter()), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.CacheHitsCounter()), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.FallbacksCounter()), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.MismatchesCounter()), 0)
}

func TestRecorder_ObserveSolve(t *testing.T) {
	r := metrics.New()

	r.ObserveSolve(domain.StrategyRoundRobin, time.Millisecond, nil)
	r.ObserveSolve(domain.StrategyRoundRobin, time.Millisecond, nil)
	r.ObserveSolve(domain.StrategyTwoValue, time.Microsecond, zerr.Wrap(domain.ErrNonCoprime, "gcd of coin set is 2"))

	assert.InDelta(t, 2, testutil.ToFloat64(r.SolvesCounter("round_robin", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.SolvesCounter("two_value", "non_coprime")), 0)

	count, err := testutil.GatherAndCount(r.Registry(), "frob_solve_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{domain.ErrEmptyInput, "empty_input"},
		{zerr.With(zerr.Wrap(domain.ErrNonCoprime, "gcd"), "gcd", "2"), "non_coprime"},
		{zerr.Wrap(domain.ErrValueTooLarge, "coin"), "value_too_large"},
		{zerr.Wrap(domain.ErrBoundExceeded, "bound"), "bound_exceeded"},
		{zerr.Wrap(domain.ErrUnresolved, "residue class is unreachable"), "unresolved"},
		{errors.New("boom"), "error"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, metrics.Outcome(tt.err))
		})
	}
}

func TestRecorder_Export(t *testing.T) {
	r := metrics.New()
	r.CacheHit()
	r.ObserveSolve(domain.StrategySieveWithFallback, time.Millisecond, nil)

	path := filepath.Join(t.TempDir(), "frob.prom")
	require.NoError(t, r.Export(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "frob_cache_hits_total 1")
	assert.Contains(t, string(data), `frob_solves_total{outcome="ok",strategy="sieve"} 1`)
}

func TestRecorder_ExportFails(t *testing.T) {
	r := metrics.New()
	err := r.Export(filepath.Join(t.TempDir(), "missing", "frob.prom"))
	require.ErrorIs(t, err, domain.ErrMetricsWriteFailed)
}
