package domain_test

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/frob/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestParseCoinSet(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    []string
		wantErr bool
	}{
		{
			name:  "small values",
			input: []string{"6", "9", "20"},
			want:  []string{"6", "9", "20"},
		},
		{
			name:  "beyond uint64",
			input: []string{"340282366920938463463374607431768211457", " 3 "},
			want:  []string{"340282366920938463463374607431768211457", "3"},
		},
		{
			name:  "negative kept for normalization",
			input: []string{"-3", "0"},
			want:  []string{"-3", "0"},
		},
		{
			name:    "not a number",
			input:   []string{"7", "seven"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseCoinSet(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidCoin))

				var zErr *zerr.Error
				require.True(t, errors.As(err, &zErr))
				assert.Equal(t, "seven", zErr.Metadata()["coin"])
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Strings())
		})
	}
}

func TestCoinSet_EqualAndClone(t *testing.T) {
	a := domain.NewCoinSet(3, 5, 7)
	b := domain.NewCoinSet(3, 5, 7)
	c := domain.NewCoinSet(3, 5)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(domain.NewCoinSet(3, 5, 8)))

	clone := a.Clone()
	clone[0].SetInt64(4)
	assert.Equal(t, int64(3), a[0].Int64())
	assert.Equal(t, "[3 5 7]", a.String())
	assert.Equal(t, int64(3), a.First().Int64())
	assert.Equal(t, int64(7), a.Last().Int64())
}

func TestClampThreads(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{in: -4, want: 1},
		{in: 0, want: 1},
		{in: 1, want: 1},
		{in: 5, want: 5},
		{in: 8, want: 8},
		{in: 64, want: 8},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.ClampThreads(tt.in), "ClampThreads(%d)", tt.in)
	}

	d := domain.DefaultThreads()
	assert.GreaterOrEqual(t, d, domain.MinThreads)
	assert.LessOrEqual(t, d, domain.MaxThreads)
}

func TestStrategy_String(t *testing.T) {
	assert.Equal(t, "single", domain.StrategySingle.String())
	assert.Equal(t, "two_value", domain.StrategyTwoValue.String())
	assert.Equal(t, "round_robin", domain.StrategyRoundRobin.String())
	assert.Equal(t, "sieve", domain.StrategySieveWithFallback.String())
	assert.Equal(t, "unknown", domain.Strategy(42).String())
}

func TestBenchmarkReport_Ratio(t *testing.T) {
	r := domain.BenchmarkReport{RoundRobin: 3 * time.Millisecond}
	assert.Zero(t, r.Ratio())

	r.Sieve = time.Millisecond
	assert.InDelta(t, 3.0, r.Ratio(), 1e-9)
}

func TestCheckResult_Passed(t *testing.T) {
	kc := domain.KnownCases()[0]

	assert.True(t, domain.CheckResult{Case: kc, Got: big.NewInt(7)}.Passed())
	assert.False(t, domain.CheckResult{Case: kc, Got: big.NewInt(8)}.Passed())
	assert.False(t, domain.CheckResult{Case: kc, Err: domain.ErrUnresolved}.Passed())
	assert.False(t, domain.CheckResult{Case: kc}.Passed())
}

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.True(t, cfg.Solver.Parallel)
	assert.False(t, cfg.Solver.Verbose)
	assert.Equal(t, domain.DefaultLimits(), cfg.Limits)
	require.Len(t, cfg.Samples, 4)
	assert.Equal(t, "[31 41 59 26 53]", cfg.Samples[2].Coins.String())
	assert.Len(t, domain.BenchmarkSamples(), 3)
}
