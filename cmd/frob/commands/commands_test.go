package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/frob/cmd/frob/commands"
	"go.trai.ch/frob/internal/app"
	"go.trai.ch/frob/internal/build"
)

type mockApp struct {
	demoFunc  func(ctx context.Context, opts app.DemoOptions) error
	checkFunc func(ctx context.Context, opts app.Options) error
	solveFunc func(ctx context.Context, opts app.SolveOptions, literals []string) error
	benchFunc func(ctx context.Context, opts app.Options, literals []string) error
	watchFunc func(ctx context.Context, opts app.Options, path string) error
}

func (m *mockApp) Demo(ctx context.Context, opts app.DemoOptions) error {
	if m.demoFunc != nil {
		return m.demoFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Check(ctx context.Context, opts app.Options) error {
	if m.checkFunc != nil {
		return m.checkFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Solve(ctx context.Context, opts app.SolveOptions, literals []string) error {
	if m.solveFunc != nil {
		return m.solveFunc(ctx, opts, literals)
	}
	return nil
}

func (m *mockApp) Bench(ctx context.Context, opts app.Options, literals []string) error {
	if m.benchFunc != nil {
		return m.benchFunc(ctx, opts, literals)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, opts app.Options, path string) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, opts, path)
	}
	return nil
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Root(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.DemoOptions
		mock := &mockApp{
			demoFunc: func(_ context.Context, opts app.DemoOptions) error {
				captured = opts
				return nil
			},
		}

		_, err := execute(t, mock, "-v", "-b", "--threads", "3", "--no-parallel", "--json",
			"--config", "frob.yaml", "--metrics-file", "out.prom", "-o", "plain")
		require.NoError(t, err)

		assert.Equal(t, app.DemoOptions{
			Options: app.Options{
				Verbose:     true,
				Threads:     3,
				NoParallel:  true,
				JSON:        true,
				ConfigPath:  "frob.yaml",
				MetricsFile: "out.prom",
				OutputMode:  "plain",
			},
			Benchmark: true,
		}, captured)
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "6", "9")
		require.Error(t, err)
	})

	t.Run("returns demo failure", func(t *testing.T) {
		mock := &mockApp{
			demoFunc: func(context.Context, app.DemoOptions) error {
				return errors.New("simulated error")
			},
		}
		_, err := execute(t, mock)
		require.ErrorContains(t, err, "simulated error")
	})
}

func TestCommands_Solve(t *testing.T) {
	t.Run("passes literals and persistent flags", func(t *testing.T) {
		var captured app.SolveOptions
		var literals []string
		mock := &mockApp{
			solveFunc: func(_ context.Context, opts app.SolveOptions, args []string) error {
				captured = opts
				literals = args
				return nil
			},
		}

		_, err := execute(t, mock, "solve", "--threads", "2", "6", "9", "20")
		require.NoError(t, err)
		assert.Equal(t, 2, captured.Threads)
		assert.Empty(t, captured.File)
		assert.Equal(t, []string{"6", "9", "20"}, literals)
	})

	t.Run("accepts the verbose shorthand", func(t *testing.T) {
		var captured app.SolveOptions
		var literals []string
		mock := &mockApp{
			solveFunc: func(_ context.Context, opts app.SolveOptions, args []string) error {
				captured = opts
				literals = args
				return nil
			},
		}

		_, err := execute(t, mock, "solve", "-v", "3", "5")
		require.NoError(t, err)
		assert.True(t, captured.Verbose)
		assert.Equal(t, []string{"3", "5"}, literals)
	})

	t.Run("passes batch file", func(t *testing.T) {
		var captured app.SolveOptions
		mock := &mockApp{
			solveFunc: func(_ context.Context, opts app.SolveOptions, _ []string) error {
				captured = opts
				return nil
			},
		}

		_, err := execute(t, mock, "solve", "--file", "sets.yaml")
		require.NoError(t, err)
		assert.Equal(t, "sets.yaml", captured.File)
	})

	t.Run("shows usage when no input provided", func(t *testing.T) {
		mock := &mockApp{
			solveFunc: func(context.Context, app.SolveOptions, []string) error {
				panic("should not be called")
			},
		}

		out, err := execute(t, mock, "solve")
		require.NoError(t, err)
		assert.Contains(t, out, "Usage:")
	})
}

func TestCommands_Bench(t *testing.T) {
	var literals []string
	called := false
	mock := &mockApp{
		benchFunc: func(_ context.Context, _ app.Options, args []string) error {
			called = true
			literals = args
			return nil
		},
	}

	_, err := execute(t, mock, "bench")
	require.NoError(t, err)
	assert.True(t, called)
	assert.Empty(t, literals)
}

func TestCommands_Check(t *testing.T) {
	var captured app.Options
	mock := &mockApp{
		checkFunc: func(_ context.Context, opts app.Options) error {
			captured = opts
			return nil
		},
	}

	_, err := execute(t, mock, "check", "--verbose")
	require.NoError(t, err)
	assert.True(t, captured.Verbose)
}

func TestCommands_Watch(t *testing.T) {
	t.Run("passes the batch path", func(t *testing.T) {
		var path string
		mock := &mockApp{
			watchFunc: func(_ context.Context, _ app.Options, p string) error {
				path = p
				return nil
			},
		}

		_, err := execute(t, mock, "watch", "sets.yaml")
		require.NoError(t, err)
		assert.Equal(t, "sets.yaml", path)
	})

	t.Run("requires exactly one path", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "watch")
		require.Error(t, err)
	})
}

func TestCommands_Version(t *testing.T) {
	t.Run("subcommand", func(t *testing.T) {
		out, err := execute(t, &mockApp{}, "version")
		require.NoError(t, err)
		assert.Contains(t, out, "frob version "+build.Version)
		assert.Contains(t, out, build.Commit)
	})

	t.Run("long flag", func(t *testing.T) {
		mock := &mockApp{
			demoFunc: func(context.Context, app.DemoOptions) error {
				panic("should not be called")
			},
		}

		out, err := execute(t, mock, "--version")
		require.NoError(t, err)
		assert.Contains(t, out, "frob version "+build.Version)
	})
}

func TestCommands_VerboseShorthand(t *testing.T) {
	var verbose bool
	mock := &mockApp{
		demoFunc: func(_ context.Context, opts app.DemoOptions) error {
			verbose = opts.Verbose
			return nil
		},
	}

	out, err := execute(t, mock, "-v")
	require.NoError(t, err)
	assert.True(t, verbose)
	assert.NotContains(t, out, "frob version")
}
