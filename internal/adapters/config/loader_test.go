package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/frob/internal/adapters/config"
	"go.trai.ch/frob/internal/core/domain"
	"go.trai.ch/frob/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const root = "/work"

func newLoader(t *testing.T, files fstest.MapFS) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	loader := config.NewLoader(mockLogger)
	loader.FS = config.NewMapFSAdapter(root, files)
	return loader, mockLogger
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{})

	cfg, err := loader.Load(filepath.Join(root, "sub"), "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
	assert.Empty(t, cfg.Path)
}

func TestLoader_Load_WalksUp(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{
		"frob.yaml": {Data: []byte(`
threads: 2
verbose: true
parallel: false
json: true
limits:
  sieveCeiling: 5000
  parallelThreshold: 100
samples:
  - name: tiny
    coins: [3, 5]
  - coins: ["1180591620717411303425", 3]
`)},
		"a/b/.keep": {Data: []byte{}},
	})

	cfg, err := loader.Load(filepath.Join(root, "a", "b"), "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, domain.ConfigFileName), cfg.Path)
	assert.Equal(t, domain.SolverConfig{Verbose: true, Threads: 2, Parallel: false}, cfg.Solver)
	assert.True(t, cfg.JSON)

	assert.Equal(t, uint64(5000), cfg.Limits.SieveCeiling)
	assert.Equal(t, uint64(100), cfg.Limits.ParallelThreshold)
	assert.Equal(t, uint64(domain.DefaultRoundRobinCeiling), cfg.Limits.RoundRobinCeiling)
	assert.Equal(t, uint64(domain.DefaultSieveMaxCoin), cfg.Limits.SieveMaxCoin)

	require.Len(t, cfg.Samples, 2)
	assert.Equal(t, "tiny", cfg.Samples[0].Name)
	assert.Equal(t, "[3 5]", cfg.Samples[0].Coins.String())
	assert.Equal(t, "set 2", cfg.Samples[1].Name)
	assert.Equal(t, "[1180591620717411303425 3]", cfg.Samples[1].Coins.String())
}

func TestLoader_Load_ParallelDefaultsOn(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{
		"frob.yaml": {Data: []byte("verbose: true\n")},
	})

	cfg, err := loader.Load(root, "")
	require.NoError(t, err)
	assert.True(t, cfg.Solver.Parallel)
	assert.Equal(t, domain.DefaultThreads(), cfg.Solver.Threads)
	assert.Equal(t, domain.DefaultSamples(), cfg.Samples)
}

func TestLoader_Load_ClampsThreads(t *testing.T) {
	loader, mockLogger := newLoader(t, fstest.MapFS{
		"frob.yaml": {Data: []byte("threads: 64\n")},
	})
	mockLogger.EXPECT().Warn("threads 64 clamped to 8")

	cfg, err := loader.Load(root, "")
	require.NoError(t, err)
	assert.Equal(t, domain.MaxThreads, cfg.Solver.Threads)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		files   fstest.MapFS
		path    string
		wantErr error
	}{
		{
			name:    "explicit path missing",
			files:   fstest.MapFS{},
			path:    filepath.Join(root, "missing.yaml"),
			wantErr: domain.ErrConfigReadFailed,
		},
		{
			name:    "malformed yaml",
			files:   fstest.MapFS{"frob.yaml": {Data: []byte("threads: [\n")}},
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "non-positive threads",
			files:   fstest.MapFS{"frob.yaml": {Data: []byte("threads: 0\n")}},
			wantErr: domain.ErrInvalidThreads,
		},
		{
			name:    "bad sample coin",
			files:   fstest.MapFS{"frob.yaml": {Data: []byte("samples:\n  - name: bad\n    coins: [3, x]\n")}},
			wantErr: domain.ErrInvalidCoin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t, tt.files)

			_, err := loader.Load(root, tt.path)
			require.ErrorIs(t, err, tt.wantErr)

			var zErr *zerr.Error
			require.True(t, errors.As(err, &zErr))
			assert.Contains(t, zErr.Metadata(), "path")
		})
	}
}

func TestLoader_LoadBatch(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{
		"batch.yaml": {Data: []byte(`
sets:
  - name: mcnugget
    coins: [6, 9, 20]
  - name: pair
    coins: [3, 5]
`)},
	})

	sets, err := loader.LoadBatch(filepath.Join(root, "batch.yaml"))
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, "mcnugget", sets[0].Name)
	assert.True(t, sets[0].Coins.Equal(domain.NewCoinSet(6, 9, 20)))
	assert.True(t, sets[1].Coins.Equal(domain.NewCoinSet(3, 5)))
}

func TestLoader_LoadBatch_Errors(t *testing.T) {
	loader, _ := newLoader(t, fstest.MapFS{
		"empty.yaml": {Data: []byte("sets: []\n")},
		"bad.yaml":   {Data: []byte("sets:\n  - name: broken\n    coins: [6, 9.5]\n")},
	})

	_, err := loader.LoadBatch(filepath.Join(root, "empty.yaml"))
	require.ErrorIs(t, err, domain.ErrBatchEmpty)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, filepath.Join(root, "empty.yaml"), zErr.Metadata()["path"])

	_, err = loader.LoadBatch(filepath.Join(root, "bad.yaml"))
	require.ErrorIs(t, err, domain.ErrInvalidCoin)

	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "broken", zErr.Metadata()["set"])

	_, err = loader.LoadBatch(filepath.Join(root, "absent.yaml"))
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestLoader_OSFS(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(nested, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte("threads: 3\n"), domain.FilePerm))

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	cfg, err := config.NewLoader(mockLogger).Load(nested, "")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Solver.Threads)
	assert.Equal(t, filepath.Join(dir, domain.ConfigFileName), cfg.Path)
}
