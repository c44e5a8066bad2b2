package ports

import "go.trai.ch/emojilens/internal/core/domain"

// CacheStore defines the durable backing of the emoji cache.
// The whole record is loaded once and rewritten on every mutation.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// Load returns the persisted entries in dir.
	// A missing record returns an empty map and no error.
	Load(dir string) (map[string]domain.CacheEntry, error)

	// Save replaces the persisted record in dir with entries.
	Save(dir string, entries map[string]domain.CacheEntry) error
}
