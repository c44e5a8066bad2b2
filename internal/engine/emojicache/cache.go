// Package emojicache implements the persistent, time-bound emoji asset cache
// and its single-flight resolver.
package emojicache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/emojilens/internal/core/domain"
	"go.trai.ch/emojilens/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

const tracerName = "go.trai.ch/emojilens/internal/engine/emojicache"

// Span outcomes recorded on emojicache.resolve.
const (
	OutcomeHit          = "hit"
	OutcomeFetched      = "fetched"
	OutcomeFetchFailed  = "fetch-failed"
	OutcomeNotFound     = "not-found"
	OutcomeEncodeFailed = "encode-failed"
)

// FetchFunc produces the local artifact of a missing entry.
// An empty path with a nil error means the asset does not exist.
type FetchFunc func(ctx context.Context) (string, error)

// Resolution is the settled result of a resolve.
type Resolution struct {
	Asset string
	OK    bool
}

// Cache maps emoji ids to encoded assets.
// Reads are synchronous; misses are filled through Resolve, which runs at
// most one fetch per id at a time.
type Cache struct {
	store   ports.CacheStore
	dir     string
	encoder ports.AssetEncoder
	logger  ports.Logger
	tracer  trace.Tracer
	now     func() time.Time

	flights singleflight.Group

	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]domain.CacheEntry
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL sets the initial time-to-live.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// WithTracerProvider records resolve spans on tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Cache) {
		c.tracer = tp.Tracer(tracerName)
	}
}

// New creates a Cache backed by the record in dir.
// A record that cannot be loaded is logged and the cache starts empty.
func New(
	store ports.CacheStore,
	dir string,
	encoder ports.AssetEncoder,
	logger ports.Logger,
	opts ...Option,
) *Cache {
	c := &Cache{
		store:   store,
		dir:     dir,
		encoder: encoder,
		logger:  logger,
		tracer:  otel.Tracer(tracerName),
		now:     time.Now,
		ttl:     domain.DefaultCacheExpiration,
	}
	for _, opt := range opts {
		opt(c)
	}

	entries, err := store.Load(dir)
	if err != nil {
		logger.Warn(fmt.Sprintf("emoji cache starts empty: %v", err))
		entries = nil
	}
	if entries == nil {
		entries = make(map[string]domain.CacheEntry)
	}
	c.entries = entries
	return c
}

// Dir returns the directory of the cache record.
func (c *Cache) Dir() string {
	return c.dir
}

// SetExpiration changes the time-to-live applied to every entry.
// Stored timestamps are left unchanged.
func (c *Cache) SetExpiration(ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ttl = ttl
}

// Expiration returns the current time-to-live.
func (c *Cache) Expiration() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ttl
}

// Read returns the encoded asset of id.
// An expired entry, or one whose backing artifact is gone, is evicted and
// reported as a miss.
func (c *Cache) Read(id string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[id]
	if !ok {
		return "", false
	}
	if !c.validLocked(entry) {
		delete(c.entries, id)
		c.saveLocked()
		return "", false
	}
	if entry.EncodedAsset == "" {
		asset, err := c.encoder.Encode(entry.Path)
		if err != nil {
			c.logger.Warn(fmt.Sprintf("emoji %s: dropping unreadable artifact: %v", id, err))
			delete(c.entries, id)
			c.saveLocked()
			return "", false
		}
		entry.EncodedAsset = asset
		c.entries[id] = entry
		c.saveLocked()
	}
	return entry.EncodedAsset, true
}

// Resolve returns the asset of id, fetching it on a miss.
// Concurrent calls for the same id share one fetch. If ctx ends first the
// caller gets a miss while the fetch keeps running and fills the cache.
func (c *Cache) Resolve(ctx context.Context, id string, fetch FetchFunc) (string, bool) {
	select {
	case res := <-c.ResolveAsync(ctx, id, fetch):
		return res.Asset, res.OK
	case <-ctx.Done():
		return "", false
	}
}

// ResolveAsync is the non-blocking form of Resolve.
// The returned channel receives exactly one Resolution.
func (c *Cache) ResolveAsync(ctx context.Context, id string, fetch FetchFunc) <-chan Resolution {
	out := make(chan Resolution, 1)
	if asset, ok := c.Read(id); ok {
		out <- Resolution{Asset: asset, OK: true}
		return out
	}

	flightCtx := context.WithoutCancel(ctx)
	ch := c.flights.DoChan(id, func() (any, error) {
		return c.flight(flightCtx, id, fetch), nil
	})
	go func() {
		res := <-ch
		r, _ := res.Val.(Resolution)
		out <- r
	}()
	return out
}

func (c *Cache) flight(ctx context.Context, id string, fetch FetchFunc) Resolution {
	ctx, span := c.tracer.Start(ctx, "emojicache.resolve",
		trace.WithAttributes(attribute.String("emoji.id", id)))
	defer span.End()

	outcome := func(o string) {
		span.SetAttributes(attribute.String("emoji.outcome", o))
	}

	// A flight that started after another one settled finds its result here.
	if asset, ok := c.Read(id); ok {
		outcome(OutcomeHit)
		return Resolution{Asset: asset, OK: true}
	}

	path, err := fetch(ctx)
	if err != nil {
		outcome(OutcomeFetchFailed)
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		c.logger.Warn(fmt.Sprintf("emoji %s: fetch failed: %v", id, err))
		return Resolution{}
	}
	if path == "" {
		outcome(OutcomeNotFound)
		return Resolution{}
	}

	asset, err := c.encoder.Encode(path)
	if err != nil {
		outcome(OutcomeEncodeFailed)
		span.RecordError(err)
		span.SetStatus(codes.Error, "encode failed")
		c.logger.Warn(fmt.Sprintf("emoji %s: encode failed: %v", id, err))
		return Resolution{}
	}

	c.mu.Lock()
	c.entries[id] = domain.CacheEntry{
		EmojiID:      id,
		EncodedAsset: asset,
		Path:         path,
		CreatedAt:    c.now(),
	}
	c.saveLocked()
	c.mu.Unlock()

	outcome(OutcomeFetched)
	return Resolution{Asset: asset, OK: true}
}

// Put inserts an entry directly, replacing any previous one for the same id.
func (c *Cache) Put(entry domain.CacheEntry) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = c.now()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[entry.EmojiID] = entry
	c.saveLocked()
}

// Remove evicts id and deletes its artifact.
// It reports whether an entry existed.
func (c *Cache) Remove(id string) bool {
	c.mu.Lock()
	entry, ok := c.entries[id]
	if ok {
		delete(c.entries, id)
		c.saveLocked()
	}
	c.mu.Unlock()

	if ok {
		c.removeArtifact(entry.Path)
	}
	return ok
}

// Clear evicts every entry and deletes their artifacts.
// It returns the number of evicted entries.
func (c *Cache) Clear() int {
	c.mu.Lock()
	old := c.entries
	c.entries = make(map[string]domain.CacheEntry)
	c.saveLocked()
	c.mu.Unlock()

	for _, entry := range old {
		c.removeArtifact(entry.Path)
	}
	return len(old)
}

// Entries returns a snapshot of every entry, sorted by id.
func (c *Cache) Entries() []domain.CacheEntry {
	c.mu.Lock()
	out := make([]domain.CacheEntry, 0, len(c.entries))
	for _, entry := range c.entries {
		out = append(out, entry)
	}
	c.mu.Unlock()

	slices.SortFunc(out, func(a, b domain.CacheEntry) int {
		return strings.Compare(a.EmojiID, b.EmojiID)
	})
	return out
}

// Len returns the number of entries, valid or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Valid reports whether entry would be served by Read right now.
func (c *Cache) Valid(entry domain.CacheEntry) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validLocked(entry)
}

func (c *Cache) validLocked(entry domain.CacheEntry) bool {
	if entry.Expired(c.now(), c.ttl) {
		return false
	}
	if entry.Path == "" {
		return entry.EncodedAsset != ""
	}
	_, err := os.Stat(entry.Path)
	return err == nil
}

func (c *Cache) saveLocked() {
	if err := c.store.Save(c.dir, c.entries); err != nil {
		c.logger.Error(err)
	}
}

func (c *Cache) removeArtifact(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		c.logger.Warn(fmt.Sprintf("could not remove %s: %v", path, err))
	}
}
