// Package store persists the emoji cache record.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/emojilens/internal/core/domain"
	"go.trai.ch/zerr"
)

// recordVersion is the format version written to the cache record.
const recordVersion = 1

// record is the on-disk layout of cache.json.
// Checksum is the xxhash64 of the compact JSON encoding of Entries.
type record struct {
	Version  int             `json:"version"`
	Checksum string          `json:"checksum"`
	Entries  json.RawMessage `json:"entries"`
}

// Store implements ports.CacheStore with a single JSON record per directory.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the record in dir.
// A missing record yields an empty map. A truncated record, an unknown
// version or a checksum mismatch yields domain.ErrCacheStoreCorrupt.
func (s *Store) Load(dir string) (map[string]domain.CacheEntry, error) {
	path := domain.CacheRecordPath(dir)
	//nolint:gosec // Path is the cache directory chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]domain.CacheEntry{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheStoreReadFailed.Error()), "path", path)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheStoreCorrupt.Error()), "path", path)
	}
	if rec.Version != recordVersion {
		return nil, zerr.With(zerr.With(domain.ErrCacheStoreCorrupt, "path", path), "version", rec.Version)
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, rec.Entries); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheStoreCorrupt.Error()), "path", path)
	}
	if sum := checksum(compact.Bytes()); sum != rec.Checksum {
		return nil, zerr.With(zerr.With(domain.ErrCacheStoreCorrupt, "path", path), "checksum", sum)
	}

	entries := make(map[string]domain.CacheEntry)
	if err := json.Unmarshal(compact.Bytes(), &entries); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheStoreCorrupt.Error()), "path", path)
	}
	for id, e := range entries {
		if e.EmojiID == "" {
			e.EmojiID = id
			entries[id] = e
		}
	}
	return entries, nil
}

// Save replaces the record in dir with entries.
func (s *Store) Save(dir string, entries map[string]domain.CacheEntry) error {
	if entries == nil {
		entries = map[string]domain.CacheEntry{}
	}
	body, err := json.Marshal(entries)
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheStoreMarshalFailed.Error())
	}

	data, err := json.MarshalIndent(record{
		Version:  recordVersion,
		Checksum: checksum(body),
		Entries:  body,
	}, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheStoreCreateFailed.Error()), "dir", dir)
	}
	if err := atomicWriteFile(domain.CacheRecordPath(dir), data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheStoreWriteFailed.Error()), "dir", dir)
	}
	return nil
}

func checksum(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// atomicWriteFile writes data to a file atomically by writing to a temp file and renaming it.
func atomicWriteFile(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "cache-*.json.tmp")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
