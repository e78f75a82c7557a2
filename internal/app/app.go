// Package app implements the application layer for frob.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/muesli/termenv"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/frob/internal/adapters/detector"
	"go.trai.ch/frob/internal/adapters/telemetry"
	"go.trai.ch/frob/internal/adapters/watcher"
	"go.trai.ch/frob/internal/core/domain"
	"go.trai.ch/frob/internal/core/ports"
	"go.trai.ch/frob/internal/engine/solver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	renderer     ports.Renderer
	cache        ports.ResultCache
	metrics      ports.Metrics
	watcher      ports.Watcher
	debounce     time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	renderer ports.Renderer,
	cache ports.ResultCache,
	metrics ports.Metrics,
	w ports.Watcher,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		renderer:     renderer,
		cache:        cache,
		metrics:      metrics,
		watcher:      w,
		debounce:     domain.DefaultDebounceWindow,
	}
}

// WithDebounce sets the quiet period used by Watch.
// This is primarily used for testing.
func (a *App) WithDebounce(window time.Duration) *App {
	a.debounce = window
	return a
}

// Options are the flags shared by every command. Zero values keep the
// configuration file's settings.
type Options struct {
	Verbose     bool
	Threads     int
	NoParallel  bool
	JSON        bool
	ConfigPath  string
	MetricsFile string
	// OutputMode is "auto", "color", "linear" or "plain".
	OutputMode string
}

// DemoOptions configuration for the Demo method.
type DemoOptions struct {
	Options
	Benchmark bool
}

// SolveOptions configuration for the Solve method.
type SolveOptions struct {
	Options
	File string
}

// Demo prints the header, runs the self-check, solves the configured samples
// and optionally benchmarks them. A failed self-check is reported at the end.
func (a *App) Demo(ctx context.Context, opts DemoOptions) (err error) {
	sess, err := a.open(opts.Options)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, sess.close(ctx)) }()

	a.renderer.OnHeader(sess.cfg.Solver.Threads, sess.cfg.Solver.Verbose)

	failed := a.runCheck(ctx, sess)
	_ = a.solveSets(ctx, sess, sess.cfg.Samples)

	if opts.Benchmark {
		_ = a.benchmarkSets(ctx, sess, benchmarkSamples(sess.cfg.Samples))
	}

	if failed > 0 {
		return zerr.With(zerr.Wrap(domain.ErrKnownCaseFailed, "self-check reported wrong values"), "failed", failed)
	}
	return nil
}

// Check runs only the self-check.
func (a *App) Check(ctx context.Context, opts Options) (err error) {
	sess, err := a.open(opts)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, sess.close(ctx)) }()

	if failed := a.runCheck(ctx, sess); failed > 0 {
		return zerr.With(zerr.Wrap(domain.ErrKnownCaseFailed, "self-check reported wrong values"), "failed", failed)
	}
	a.logger.Info("all known cases passed")
	return nil
}

// Solve solves the coin set given as decimal literals, or every set in a batch
// file. It returns the first failure after all sets were attempted.
func (a *App) Solve(ctx context.Context, opts SolveOptions, literals []string) (err error) {
	sets, err := a.inputSets(opts.File, literals)
	if err != nil {
		return err
	}

	sess, err := a.open(opts.Options)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, sess.close(ctx)) }()

	return a.solveSets(ctx, sess, sets)
}

// Bench compares both general algorithms on the given set, or on the
// configured samples when no literals are given.
func (a *App) Bench(ctx context.Context, opts Options, literals []string) (err error) {
	sess, err := a.open(opts)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, sess.close(ctx)) }()

	sets := benchmarkSamples(sess.cfg.Samples)
	if len(literals) > 0 {
		coins, parseErr := domain.ParseCoinSet(literals)
		if parseErr != nil {
			return parseErr
		}
		sets = []domain.NamedSet{{Coins: coins}}
	}

	return a.benchmarkSets(ctx, sess, sets)
}

// Watch solves the batch file, then re-solves it after every settled change
// until ctx is canceled.
func (a *App) Watch(ctx context.Context, opts Options, path string) (err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrWatchFailed, err.Error()), "path", path)
	}

	sess, err := a.open(opts)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, sess.close(ctx)) }()

	a.resolveBatch(ctx, sess, abs)

	if err := a.watcher.Start(ctx, abs); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Stop() }()
	a.logger.Info("watching " + abs)

	changes := make(chan struct{}, 1)
	deb := watcher.NewDebouncer(a.debounce, func(_ []string) {
		select {
		case changes <- struct{}{}:
		default:
		}
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for event := range a.watcher.Events() {
			a.logger.Debug(fmt.Sprintf("%s changed", event.Path))
			deb.Add(event.Path)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			a.resolveBatch(ctx, sess, abs)
		case <-done:
			deb.Flush()
			select {
			case <-changes:
				a.resolveBatch(ctx, sess, abs)
			default:
			}
			return nil
		}
	}
}

// resolveBatch solves a batch file for Watch. Errors are logged, not returned,
// so a broken edit does not end the session.
func (a *App) resolveBatch(ctx context.Context, sess *session, path string) {
	sets, err := a.configLoader.LoadBatch(path)
	if err != nil {
		a.logger.Error(err)
		return
	}
	if err := a.solveSets(ctx, sess, sets); err != nil {
		a.logger.Warn(fmt.Sprintf("%s has unsolved sets", filepath.Base(path)))
	}
}

func (a *App) inputSets(file string, literals []string) ([]domain.NamedSet, error) {
	if file != "" {
		return a.configLoader.LoadBatch(file)
	}
	coins, err := domain.ParseCoinSet(literals)
	if err != nil {
		return nil, err
	}
	return []domain.NamedSet{{Coins: coins}}, nil
}

func (a *App) runCheck(ctx context.Context, sess *session) int {
	failed := 0
	for _, kc := range domain.KnownCases() {
		got, err := sess.solver.Solve(ctx, kc.Coins)
		result := domain.CheckResult{Case: kc, Got: got, Err: err}
		if !result.Passed() {
			failed++
		}
		a.renderer.OnCheck(result)
	}
	return failed
}

func (a *App) solveSets(ctx context.Context, sess *session, sets []domain.NamedSet) error {
	var first error
	for _, set := range sets {
		start := time.Now()
		value, err := sess.solver.Solve(ctx, set.Coins)
		if err != nil {
			a.renderer.OnFailure(set.Name, set.Coins, err)
			if first == nil {
				first = zerr.With(err, "set", describe(set))
			}
			continue
		}
		a.renderer.OnResult(set.Name, set.Coins, value, time.Since(start))
	}
	return first
}

func (a *App) benchmarkSets(ctx context.Context, sess *session, sets []domain.NamedSet) error {
	var first error
	for _, set := range sets {
		report, err := sess.solver.Benchmark(ctx, set.Coins)
		if err != nil {
			a.renderer.OnFailure(set.Name, set.Coins, err)
			if first == nil {
				first = zerr.With(err, "set", describe(set))
			}
			continue
		}
		a.renderer.OnBenchmark(set.Name, report)
	}
	return first
}

// benchmarkSamples skips the first sample, the warm-up set of the demo.
func benchmarkSamples(samples []domain.NamedSet) []domain.NamedSet {
	if len(samples) > 1 {
		return samples[1:]
	}
	return samples
}

func describe(set domain.NamedSet) string {
	if set.Name == "" {
		return set.Coins.String()
	}
	return set.Name
}

// session is the per-command solver setup: resolved configuration, a solver
// sharing the process cache, and the tracer provider feeding the renderer.
type session struct {
	cfg         *domain.Config
	solver      *solver.Synchronized
	tp          *sdktrace.TracerProvider
	metrics     ports.Metrics
	metricsFile string
}

func (a *App) open(opts Options) (*session, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to get working directory")
	}

	cfg, err := a.configLoader.Load(cwd, opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	applyOverrides(cfg, opts)

	a.configureOutput(cfg, opts.OutputMode)

	// Spans end up in the renderer through the bridge.
	tp := setupOTel(telemetry.NewBridge(a.renderer))
	tracer := telemetry.NewOTelTracer("frob")

	s := solver.New(a.cache,
		solver.WithConfig(cfg.Solver),
		solver.WithLimits(cfg.Limits),
		solver.WithLogger(a.logger),
		solver.WithTracer(tracer),
		solver.WithMetrics(a.metrics),
	)

	return &session{
		cfg:         cfg,
		solver:      solver.NewSynchronized(s),
		tp:          tp,
		metrics:     a.metrics,
		metricsFile: opts.MetricsFile,
	}, nil
}

func (s *session) close(ctx context.Context) error {
	var errs error
	if err := s.tp.Shutdown(context.WithoutCancel(ctx)); err != nil {
		errs = errors.Join(errs, zerr.Wrap(err, "failed to shut down tracing"))
	}
	if s.metricsFile != "" {
		errs = errors.Join(errs, s.metrics.Export(s.metricsFile))
	}
	return errs
}

// applyOverrides lets command-line flags win over file values.
func applyOverrides(cfg *domain.Config, opts Options) {
	if opts.Verbose {
		cfg.Solver.Verbose = true
	}
	if opts.Threads != 0 {
		cfg.Solver.Threads = domain.ClampThreads(opts.Threads)
	}
	if opts.NoParallel {
		cfg.Solver.Parallel = false
	}
	if opts.JSON {
		cfg.JSON = true
	}
}

func (a *App) configureOutput(cfg *domain.Config, outputMode string) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(cfg.JSON)
	}
	if l, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		l.SetVerbose(cfg.Solver.Verbose)
	}
	if r, ok := a.renderer.(interface{ SetVerbose(bool) }); ok {
		r.SetVerbose(cfg.Solver.Verbose)
	}
	if r, ok := a.renderer.(interface{ SetProfile(termenv.Profile) }); ok {
		mode := detector.ResolveMode(detector.DetectEnvironment(), outputMode)
		r.SetProfile(detector.Profile(mode))
	}
}

// setupOTel registers a tracer provider reporting to the bridge as the global provider.
func setupOTel(bridge *telemetry.Bridge) *sdktrace.TracerProvider {
	tp := telemetry.NewProvider(bridge)
	otel.SetTracerProvider(tp)
	return tp
}
