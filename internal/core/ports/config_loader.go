package ports

import "go.trai.ch/emojilens/internal/core/domain"

// ConfigLoader defines the interface for loading settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings for the given working directory.
	// An explicit path takes precedence over discovery; an empty path walks up
	// from cwd looking for the config file and falls back to defaults.
	Load(cwd, path string) (domain.Settings, error)

	// Discover returns the config file that Load would read, or "" when none exists.
	Discover(cwd string) string
}
