package app

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"go.trai.ch/emojilens/internal/adapters/watcher" //nolint:depguard // Debouncer is shared with the app layer
	"go.trai.ch/emojilens/internal/core/domain"
	"go.trai.ch/emojilens/internal/core/ports"
	"go.trai.ch/emojilens/internal/engine/decorator"
	"go.trai.ch/emojilens/internal/engine/detector"
	"go.trai.ch/emojilens/internal/engine/emojicache"
)

// document is the latest snapshot of one open document.
type document struct {
	text       string
	cursorLine int
	version    int
	// ids are the emoji ids of the last published pass.
	ids []string
}

// Session owns the detector, cache, engine and sink of a set of open
// documents. Updates are debounced; each pass detects, renders and publishes.
type Session struct {
	ctx    context.Context
	cache  *emojicache.Cache
	engine *decorator.Engine
	sink   ports.DecorationSink
	logger ports.Logger

	debouncer   *watcher.Debouncer
	progressive bool

	// passMu serializes passes so that publications of a document stay ordered.
	passMu sync.Mutex

	mu       sync.Mutex
	detector *detector.Detector
	settings domain.Settings
	docs     map[string]*document
	closed   bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithProgressive makes passes publish immediately with resolving matches and
// publish again once their resolutions settle.
func WithProgressive(enabled bool) SessionOption {
	return func(s *Session) {
		s.progressive = enabled
	}
}

// NewSession creates a session over cache. fetcher may be nil, which disables
// resolution. Passes run with ctx, so cancelling it renders unresolved matches
// as resolving.
func NewSession(
	ctx context.Context,
	cache *emojicache.Cache,
	sink ports.DecorationSink,
	logger ports.Logger,
	settings domain.Settings,
	fetcher ports.AssetFetcher,
	opts ...SessionOption,
) (*Session, error) {
	det, err := newDetector(settings)
	if err != nil {
		return nil, err
	}

	s := &Session{
		ctx:      ctx,
		cache:    cache,
		sink:     sink,
		logger:   logger,
		detector: det,
		settings: settings,
		docs:     make(map[string]*document),
	}
	for _, opt := range opts {
		opt(s)
	}

	cache.SetExpiration(settings.CacheExpiration)
	s.engine = decorator.New(cache,
		decorator.WithFetcher(fetcher),
		decorator.WithSettings(settings),
		decorator.WithOnSettled(s.onSettled),
	)
	s.debouncer = watcher.NewDebouncer(settings.Debounce, s.run)
	return s, nil
}

func newDetector(settings domain.Settings) (*detector.Detector, error) {
	extra, err := detector.Named(settings.Patterns)
	if err != nil {
		return nil, err
	}
	return detector.New(
		detector.WithPatterns(extra...),
		detector.WithEncoding(settings.PositionEncoding),
	), nil
}

// Update stores the latest snapshot of uri and schedules a pass.
// A negative cursorLine means no cursor.
func (s *Session) Update(uri, text string, cursorLine int) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	doc, ok := s.docs[uri]
	if !ok {
		doc = &document{}
		s.docs[uri] = doc
	}
	doc.text = text
	doc.cursorLine = cursorLine
	doc.version++
	s.mu.Unlock()

	s.debouncer.Add(uri)
}

// Forget drops uri. Its pending pass, if any, publishes nothing.
func (s *Session) Forget(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

// Flush runs the scheduled passes now and waits for any running pass.
func (s *Session) Flush() {
	s.debouncer.Flush()
}

// Reconfigure applies new settings and a new fetch capability, then
// schedules a pass for every open document.
// The cache directory is fixed for the life of the session.
func (s *Session) Reconfigure(settings domain.Settings, fetcher ports.AssetFetcher) error {
	det, err := newDetector(settings)
	if err != nil {
		return err
	}
	if dir := s.cache.Dir(); settings.CacheDir != dir {
		s.logger.Warn(fmt.Sprintf("cacheDir %s takes effect after a restart, still using %s", settings.CacheDir, dir))
		settings.CacheDir = dir
	}

	s.mu.Lock()
	s.detector = det
	s.settings = settings
	uris := make([]string, 0, len(s.docs))
	for uri := range s.docs {
		uris = append(uris, uri)
	}
	s.mu.Unlock()

	s.cache.SetExpiration(settings.CacheExpiration)
	s.engine.Configure(fetcher, settings)
	s.debouncer.SetWindow(settings.Debounce)

	for _, uri := range uris {
		s.debouncer.Add(uri)
	}
	return nil
}

// Close stops scheduling. Pending passes are dropped; call Flush first to keep them.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.debouncer.Stop()
}

// run is the debouncer callback.
func (s *Session) run(uris []string) {
	s.passMu.Lock()
	defer s.passMu.Unlock()

	for _, uri := range uris {
		s.pass(uri)
	}
}

func (s *Session) pass(uri string) {
	s.mu.Lock()
	doc, ok := s.docs[uri]
	if !ok {
		s.mu.Unlock()
		return
	}
	text, cursorLine, version := doc.text, doc.cursorLine, doc.version
	det := s.detector
	s.mu.Unlock()

	matches := det.Detect(text)

	// Record the ids before rendering so settlements find this document.
	s.mu.Lock()
	if current, ok := s.docs[uri]; ok && current.version == version {
		current.ids = ids(matches)
	}
	s.mu.Unlock()

	var set domain.DecorationSet
	if s.progressive {
		set = s.engine.Render(s.ctx, matches, cursorLine)
	} else {
		set = s.engine.RenderSettled(s.ctx, matches, cursorLine)
	}

	s.mu.Lock()
	current, ok := s.docs[uri]
	stale := !ok || current.version != version
	s.mu.Unlock()

	// A newer snapshot has its own pass scheduled.
	if stale {
		return
	}

	s.logger.Debug(fmt.Sprintf("publish %s: %d match(es), pending=%t", uri, len(matches), set.Pending()))
	if err := s.sink.Publish(uri, text, matches, set); err != nil {
		s.logger.Error(err)
	}
}

// onSettled schedules every document that references id.
func (s *Session) onSettled(id string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	var uris []string
	for uri, doc := range s.docs {
		if slices.Contains(doc.ids, id) {
			uris = append(uris, uri)
		}
	}
	s.mu.Unlock()

	for _, uri := range uris {
		s.debouncer.Add(uri)
	}
}

func ids(matches []domain.EmojiMatch) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if !slices.Contains(out, m.EmojiID) {
			out = append(out, m.EmojiID)
		}
	}
	return out
}
