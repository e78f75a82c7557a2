// Package config loads frob.yaml and batch files.
package config

import (
	"fmt"
	"path/filepath"

	"go.trai.ch/frob/internal/core/domain"
	"go.trai.ch/frob/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using YAML files.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader reading from the real filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS()}
}

// Load resolves the configuration. An explicit path must exist. Without one,
// frob.yaml is searched from cwd upwards and defaults are used when none is found.
func (l *Loader) Load(cwd, path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	if path == "" {
		found, ok := l.findConfiguration(cwd)
		if !ok {
			l.Logger.Debug("no " + domain.ConfigFileName + " found, using defaults")
			return cfg, nil
		}
		path = found
	}

	var file Frobfile
	if err := l.readAndUnmarshalYAML(path, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if err := l.apply(cfg, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	cfg.Path = path

	l.Logger.Debug("loaded configuration from " + path)
	return cfg, nil
}

// LoadBatch parses every named coin set in a batch file.
func (l *Loader) LoadBatch(path string) ([]domain.NamedSet, error) {
	var batch Batchfile
	if err := l.readAndUnmarshalYAML(path, &batch); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	if len(batch.Sets) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrBatchEmpty, "nothing to solve"), "path", path)
	}

	sets, err := toNamedSets(batch.Sets)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return sets, nil
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := l.FS.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func (l *Loader) apply(cfg *domain.Config, file *Frobfile) error {
	if file.Threads != nil {
		if *file.Threads < domain.MinThreads {
			return zerr.With(zerr.Wrap(domain.ErrInvalidThreads, "threads must be at least 1"), "threads", *file.Threads)
		}
		clamped := domain.ClampThreads(*file.Threads)
		if clamped != *file.Threads {
			l.Logger.Warn(fmt.Sprintf("threads %d clamped to %d", *file.Threads, clamped))
		}
		cfg.Solver.Threads = clamped
	}
	if file.Parallel != nil {
		cfg.Solver.Parallel = *file.Parallel
	}
	cfg.Solver.Verbose = file.Verbose
	cfg.JSON = file.JSON

	if file.Limits != nil {
		applyLimits(&cfg.Limits, file.Limits)
	}

	if len(file.Samples) > 0 {
		samples, err := toNamedSets(file.Samples)
		if err != nil {
			return err
		}
		cfg.Samples = samples
	}
	return nil
}

func applyLimits(limits *domain.Limits, dto *LimitsDTO) {
	override := func(dst *uint64, v uint64) {
		if v != 0 {
			*dst = v
		}
	}
	override(&limits.RoundRobinCeiling, dto.RoundRobinCeiling)
	override(&limits.SieveCeiling, dto.SieveCeiling)
	override(&limits.SieveMaxCoin, dto.SieveMaxCoin)
	override(&limits.ParallelThreshold, dto.ParallelThreshold)
}

// toNamedSets parses coin literals. Unnamed sets are labelled by position.
func toNamedSets(dtos []SetDTO) ([]domain.NamedSet, error) {
	sets := make([]domain.NamedSet, 0, len(dtos))
	for i, dto := range dtos {
		name := dto.Name
		if name == "" {
			name = fmt.Sprintf("set %d", i+1)
		}

		coins, err := domain.ParseCoinSet(dto.Coins)
		if err != nil {
			return nil, zerr.With(err, "set", name)
		}
		sets = append(sets, domain.NamedSet{Name: name, Coins: coins})
	}
	return sets, nil
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func (l *Loader) readAndUnmarshalYAML(path string, target any) error {
	data, err := l.FS.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "file", filepath.Base(path))
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, parseErr.Error()), "file", filepath.Base(path))
	}

	return nil
}
