// Package app implements the application layer for emojilens.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/emojilens/internal/core/domain"
	"go.trai.ch/emojilens/internal/core/ports"
	"go.trai.ch/emojilens/internal/engine/emojicache"
	"go.trai.ch/zerr"
)

// App wires the engine packages to the adapters for each CLI use case.
type App struct {
	configLoader ports.ConfigLoader
	store        ports.CacheStore
	encoder      ports.AssetEncoder
	fetchers     ports.FetcherFactory
	sinks        ports.SinkFactory
	watcher      ports.Watcher
	tracing      ports.Tracing
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	store ports.CacheStore,
	encoder ports.AssetEncoder,
	fetchers ports.FetcherFactory,
	sinks ports.SinkFactory,
	w ports.Watcher,
	tracing ports.Tracing,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		store:        store,
		encoder:      encoder,
		fetchers:     fetchers,
		sinks:        sinks,
		watcher:      w,
		tracing:      tracing,
		logger:       log,
	}
}

// ConfigOptions selects the configuration of a run.
type ConfigOptions struct {
	// Cwd is where discovery starts. Empty means the process working directory.
	Cwd string
	// Path is an explicit config file, relative to Cwd.
	Path string
}

func (o ConfigOptions) cwd() (string, error) {
	if o.Cwd != "" {
		return o.Cwd, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", zerr.Wrap(err, "failed to get working directory")
	}
	return cwd, nil
}

// SetTrace toggles logging of cache resolution spans.
func (a *App) SetTrace(enabled bool) {
	a.tracing.SetEnabled(enabled)
}

// Shutdown flushes and stops the tracer provider.
func (a *App) Shutdown(ctx context.Context) error {
	return a.tracing.Shutdown(ctx)
}

// Settings loads the settings selected by opts.
func (a *App) Settings(opts ConfigOptions) (domain.Settings, error) {
	cwd, err := opts.cwd()
	if err != nil {
		return domain.Settings{}, err
	}
	settings, err := a.configLoader.Load(cwd, opts.Path)
	if err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to load configuration")
	}
	return settings, nil
}

// configPath returns the absolute config file a watch should follow, or "".
func (a *App) configPath(opts ConfigOptions) (string, error) {
	cwd, err := opts.cwd()
	if err != nil {
		return "", err
	}
	if opts.Path == "" {
		return a.configLoader.Discover(cwd), nil
	}
	if filepath.IsAbs(opts.Path) {
		return opts.Path, nil
	}
	return filepath.Join(cwd, opts.Path), nil
}

func (a *App) openCache(settings domain.Settings) *emojicache.Cache {
	return emojicache.New(a.store, settings.CacheDir, a.encoder, a.logger,
		emojicache.WithTTL(settings.CacheExpiration),
		emojicache.WithTracerProvider(a.tracing.TracerProvider()),
	)
}

// fetcher builds the fetch capability. A missing token is not an error:
// previews are disabled and a warning is logged.
func (a *App) fetcher(settings domain.Settings) (ports.AssetFetcher, error) {
	f, err := a.fetchers.NewFetcher(settings.BotToken, settings.APIBaseURL, settings.CacheDir)
	if errors.Is(err, domain.ErrFetcherNotConfigured) {
		a.logger.Warn(fmt.Sprintf("botToken is not configured, previews are disabled (set %s or botToken in %s)",
			domain.BotTokenEnv, domain.ConfigFileName))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

// RenderOptions are shared by annotate and watch.
type RenderOptions struct {
	Config ConfigOptions
	// Paths are the documents to render. Each path is also its uri.
	Paths []string
	// Format names the sink: "text" or "json".
	Format string
	// CursorLine is the zero-based line treated as the cursor line, -1 for none.
	CursorLine int
	Out        io.Writer
}

// Annotate renders every document once, waiting for all resolutions.
func (a *App) Annotate(ctx context.Context, opts RenderOptions) error {
	session, _, err := a.newSession(ctx, opts)
	if err != nil {
		return err
	}
	defer session.Close()

	for _, path := range opts.Paths {
		text, err := readDocument(path)
		if err != nil {
			return err
		}
		session.Update(path, text, opts.CursorLine)
	}
	session.Flush()
	return nil
}

// WatchOptions configure a watch run.
type WatchOptions struct {
	RenderOptions
	// Progressive publishes resolving matches first and again once they settle.
	Progressive bool
}

// Watch renders every document and re-renders on change until ctx ends.
// Changes to the config file reconfigure the session.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	session, settings, err := a.newSession(ctx, opts.RenderOptions, WithProgressive(opts.Progressive))
	if err != nil {
		return err
	}
	defer session.Close()

	cfgPath, err := a.configPath(opts.Config)
	if err != nil {
		return err
	}

	byPath := make(map[string]string, len(opts.Paths))
	watched := make([]string, 0, len(opts.Paths)+1)
	for _, path := range opts.Paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "path", path)
		}
		text, err := readDocument(path)
		if err != nil {
			return err
		}
		byPath[abs] = path
		watched = append(watched, abs)
		session.Update(path, text, opts.CursorLine)
	}
	if cfgPath != "" {
		watched = append(watched, cfgPath)
	}

	if err := a.watcher.Start(ctx, watched...); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()
	a.logger.Info(fmt.Sprintf("watching %d document(s), cache %s", len(opts.Paths), settings.CacheDir))

	for event := range a.watcher.Events() {
		if event.Path == cfgPath {
			a.reconfigure(session, opts.Config)
			continue
		}
		uri, ok := byPath[event.Path]
		if !ok {
			continue
		}
		switch event.Operation {
		case ports.OpWrite, ports.OpCreate:
			text, err := readDocument(uri)
			if err != nil {
				a.logger.Error(err)
				continue
			}
			session.Update(uri, text, opts.CursorLine)
		case ports.OpRemove, ports.OpRename:
			session.Forget(uri)
			a.logger.Warn(fmt.Sprintf("%s was moved or removed, dropping it until it reappears", uri))
		}
	}
	return nil
}

func (a *App) reconfigure(session *Session, opts ConfigOptions) {
	settings, err := a.Settings(opts)
	if err != nil {
		a.logger.Error(err)
		return
	}
	fetcher, err := a.fetcher(settings)
	if err != nil {
		a.logger.Error(err)
		return
	}
	if err := session.Reconfigure(settings, fetcher); err != nil {
		a.logger.Error(err)
		return
	}
	a.logger.Info("configuration reloaded")
}

func (a *App) newSession(ctx context.Context, opts RenderOptions, sopts ...SessionOption) (*Session, domain.Settings, error) {
	settings, err := a.Settings(opts.Config)
	if err != nil {
		return nil, domain.Settings{}, err
	}
	sink, err := a.sinks.NewSink(opts.Format, opts.Out)
	if err != nil {
		return nil, domain.Settings{}, err
	}
	fetcher, err := a.fetcher(settings)
	if err != nil {
		return nil, domain.Settings{}, err
	}
	session, err := NewSession(ctx, a.openCache(settings), sink, a.logger, settings, fetcher, sopts...)
	if err != nil {
		return nil, domain.Settings{}, err
	}
	return session, settings, nil
}

// DocumentMatches are the matches detected in one document.
type DocumentMatches struct {
	URI     string              `json:"uri"`
	Matches []domain.EmojiMatch `json:"matches"`
}

// Detect returns the matches of every document without resolving anything.
func (a *App) Detect(_ context.Context, cfg ConfigOptions, paths []string) ([]DocumentMatches, error) {
	settings, err := a.Settings(cfg)
	if err != nil {
		return nil, err
	}
	det, err := newDetector(settings)
	if err != nil {
		return nil, err
	}

	out := make([]DocumentMatches, 0, len(paths))
	for _, path := range paths {
		text, err := readDocument(path)
		if err != nil {
			return nil, err
		}
		matches := det.Detect(text)
		if matches == nil {
			matches = []domain.EmojiMatch{}
		}
		out = append(out, DocumentMatches{URI: path, Matches: matches})
	}
	return out, nil
}

// CacheEntryInfo describes one persisted cache entry.
type CacheEntryInfo struct {
	domain.CacheEntry
	// Valid is false for expired entries and entries whose artifact is gone.
	Valid bool `json:"valid"`
}

// CacheList returns the cache directory and its entries sorted by id.
func (a *App) CacheList(cfg ConfigOptions) (string, []CacheEntryInfo, error) {
	settings, err := a.Settings(cfg)
	if err != nil {
		return "", nil, err
	}
	cache := a.openCache(settings)

	entries := cache.Entries()
	out := make([]CacheEntryInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, CacheEntryInfo{CacheEntry: e, Valid: cache.Valid(e)})
	}
	return cache.Dir(), out, nil
}

// CacheRemove evicts ids and returns how many were present.
func (a *App) CacheRemove(cfg ConfigOptions, ids []string) (int, error) {
	for _, id := range ids {
		if !domain.IsValidEmojiID(id) {
			return 0, zerr.With(domain.ErrInvalidEmojiID, "id", id)
		}
	}
	settings, err := a.Settings(cfg)
	if err != nil {
		return 0, err
	}
	cache := a.openCache(settings)

	removed := 0
	for _, id := range ids {
		if cache.Remove(id) {
			removed++
		}
	}
	return removed, nil
}

// CacheClear evicts every entry and returns how many there were.
func (a *App) CacheClear(cfg ConfigOptions) (int, error) {
	settings, err := a.Settings(cfg)
	if err != nil {
		return 0, err
	}
	return a.openCache(settings).Clear(), nil
}

func readDocument(path string) (string, error) {
	//nolint:gosec // Documents are named by the user on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrDocumentReadFailed.Error()), "path", path)
	}
	return string(data), nil
}
