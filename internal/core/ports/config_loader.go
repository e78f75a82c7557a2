package ports

import "go.trai.ch/frob/internal/core/domain"

// ConfigLoader defines the interface for loading frob configuration and batch files.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the configuration for the given working directory.
	// When path is non-empty it is read directly, otherwise frob.yaml is searched
	// upwards from cwd. A missing file yields the defaults.
	Load(cwd, path string) (*domain.Config, error)

	// LoadBatch reads the named coin sets from a batch file.
	LoadBatch(path string) ([]domain.NamedSet, error)
}
