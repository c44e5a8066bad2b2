// Package decorator turns emoji matches and cache state into decoration sets.
package decorator

import (
	"context"
	"sync"
	"time"

	"github.com/rivo/uniseg"
	"go.trai.ch/emojilens/internal/core/domain"
	"go.trai.ch/emojilens/internal/core/ports"
	"go.trai.ch/emojilens/internal/engine/emojicache"
	"golang.org/x/sync/errgroup"
)

// DefaultRetryBackoff is how long Render waits before retrying a failed id.
const DefaultRetryBackoff = 30 * time.Second

// minIconWidth is the narrowest icon, in cells.
const minIconWidth = 2

// AssetCache is the part of the emoji cache the engine uses.
type AssetCache interface {
	Read(id string) (string, bool)
	Resolve(ctx context.Context, id string, fetch emojicache.FetchFunc) (string, bool)
	ResolveAsync(ctx context.Context, id string, fetch emojicache.FetchFunc) <-chan emojicache.Resolution
}

type lookupStatus uint8

const (
	statusHit lookupStatus = iota
	statusPending
	statusFailed
	statusUnconfigured
)

type lookup struct {
	status lookupStatus
	asset  string
}

// Engine classifies every match of a render pass and builds its decorations.
// It keeps only the pending and failed resolutions between passes.
type Engine struct {
	cache     AssetCache
	onSettled func(id string)
	backoff   time.Duration
	now       func() time.Time

	mu       sync.Mutex
	fetcher  ports.AssetFetcher
	settings domain.Settings
	pending  map[string]struct{}
	failed   map[string]time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithOnSettled registers fn to run once whenever a resolution started by
// Render settles. fn runs on its own goroutine.
func WithOnSettled(fn func(id string)) Option {
	return func(e *Engine) {
		e.onSettled = fn
	}
}

// WithRetryBackoff sets how long Render leaves a failed id alone.
func WithRetryBackoff(d time.Duration) Option {
	return func(e *Engine) {
		e.backoff = d
	}
}

// WithFetcher sets the initial fetch capability.
func WithFetcher(f ports.AssetFetcher) Option {
	return func(e *Engine) {
		e.fetcher = f
	}
}

// WithSettings sets the initial settings.
func WithSettings(s domain.Settings) Option {
	return func(e *Engine) {
		e.settings = s
	}
}

// New creates an Engine over cache.
// Without a fetcher the engine never shows icons.
func New(cache AssetCache, opts ...Option) *Engine {
	e := &Engine{
		cache:    cache,
		backoff:  DefaultRetryBackoff,
		now:      time.Now,
		settings: domain.DefaultSettings(),
		pending:  make(map[string]struct{}),
		failed:   make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Configure swaps the fetch capability and the settings.
// A nil fetcher disables resolution. Earlier failures are forgotten.
func (e *Engine) Configure(fetcher ports.AssetFetcher, settings domain.Settings) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.fetcher = fetcher
	e.settings = settings
	clear(e.failed)
}

// Render builds the decorations of matches without blocking.
// Misses start a resolution and render as resolving; the OnSettled callback
// reports when the caller should render again.
func (e *Engine) Render(ctx context.Context, matches []domain.EmojiMatch, cursorLine int) domain.DecorationSet {
	e.mu.Lock()
	fetcher, settings := e.fetcher, e.settings
	e.mu.Unlock()

	lookups := make(map[string]lookup, len(matches))
	for _, m := range matches {
		if _, ok := lookups[m.EmojiID]; ok {
			continue
		}
		lookups[m.EmojiID] = e.lookupAsync(ctx, m.EmojiID, fetcher)
	}
	return compose(matches, cursorLine, lookups, settings)
}

// RenderSettled resolves every missing id concurrently, waits for the whole
// batch, then renders once. Ids still unresolved when ctx ends render as
// resolving.
func (e *Engine) RenderSettled(ctx context.Context, matches []domain.EmojiMatch, cursorLine int) domain.DecorationSet {
	e.mu.Lock()
	fetcher, settings := e.fetcher, e.settings
	e.mu.Unlock()

	lookups := make(map[string]lookup, len(matches))
	var missing []string
	for _, m := range matches {
		id := m.EmojiID
		if _, ok := lookups[id]; ok {
			continue
		}
		if fetcher == nil {
			lookups[id] = lookup{status: statusUnconfigured}
			continue
		}
		if asset, ok := e.cache.Read(id); ok {
			lookups[id] = lookup{status: statusHit, asset: asset}
			continue
		}
		lookups[id] = lookup{status: statusPending}
		missing = append(missing, id)
	}

	if len(missing) > 0 {
		var mu sync.Mutex
		g, gctx := errgroup.WithContext(ctx)
		for _, id := range missing {
			g.Go(func() error {
				asset, ok := e.cache.Resolve(gctx, id, fetchFunc(fetcher, id))
				lk := lookup{status: statusHit, asset: asset}
				switch {
				case ok:
					e.settle(id, true)
				case gctx.Err() != nil:
					lk = lookup{status: statusPending}
				default:
					e.settle(id, false)
					lk = lookup{status: statusFailed}
				}
				mu.Lock()
				lookups[id] = lk
				mu.Unlock()
				return nil
			})
		}
		_ = g.Wait()
	}

	return compose(matches, cursorLine, lookups, settings)
}

func (e *Engine) lookupAsync(ctx context.Context, id string, fetcher ports.AssetFetcher) lookup {
	if fetcher == nil {
		return lookup{status: statusUnconfigured}
	}
	if asset, ok := e.cache.Read(id); ok {
		return lookup{status: statusHit, asset: asset}
	}

	e.mu.Lock()
	if _, ok := e.pending[id]; ok {
		e.mu.Unlock()
		return lookup{status: statusPending}
	}
	if at, ok := e.failed[id]; ok && e.now().Sub(at) < e.backoff {
		e.mu.Unlock()
		return lookup{status: statusFailed}
	}
	e.pending[id] = struct{}{}
	e.mu.Unlock()

	ch := e.cache.ResolveAsync(ctx, id, fetchFunc(fetcher, id))
	select {
	case res := <-ch:
		e.finish(id, res.OK)
		if res.OK {
			return lookup{status: statusHit, asset: res.Asset}
		}
		return lookup{status: statusFailed}
	default:
	}

	go func() {
		res := <-ch
		e.finish(id, res.OK)
		if e.onSettled != nil {
			e.onSettled(id)
		}
	}()
	return lookup{status: statusPending}
}

func (e *Engine) finish(id string, ok bool) {
	e.mu.Lock()
	delete(e.pending, id)
	e.mu.Unlock()
	e.settle(id, ok)
}

func (e *Engine) settle(id string, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if ok {
		delete(e.failed, id)
		return
	}
	e.failed[id] = e.now()
}

func fetchFunc(fetcher ports.AssetFetcher, id string) emojicache.FetchFunc {
	return func(ctx context.Context) (string, error) {
		return fetcher.FetchAsset(ctx, id)
	}
}

func compose(
	matches []domain.EmojiMatch,
	cursorLine int,
	lookups map[string]lookup,
	settings domain.Settings,
) domain.DecorationSet {
	set := domain.DecorationSet{
		States: make([]domain.MatchState, len(matches)),
		Hovers: make([]domain.Hover, len(matches)),
	}
	inline := settings.EnableInlinePreview

	for i, m := range matches {
		lk := lookups[m.EmojiID]
		state := classify(m, cursorLine, lk)
		set.States[i] = state
		set.Hovers[i] = hoverFor(i, m, lk, settings.HoverPreviewSize)

		if !inline {
			continue
		}

		switch state {
		case domain.StateResolving:
			set.Icons = append(set.Icons, inlineIcon(i, m, "", true))

		case domain.StateCollapsed:
			set.Hidden = append(set.Hidden, m.AttrWithTrailingSpaceRange)
			if lk.status != statusHit {
				continue
			}
			set.Icons = append(set.Icons, inlineIcon(i, m, lk.asset, false))
			if m.FallbackRange != nil {
				set.Hidden = append(set.Hidden, *m.FallbackRange)
			}
			set.Highlights = append(set.Highlights, insertionPoint(m))

		case domain.StateExpanded:
			switch lk.status {
			case statusHit:
				set.Icons = append(set.Icons, compositeIcon(i, m, lk.asset, false))
			case statusPending:
				set.Icons = append(set.Icons, compositeIcon(i, m, "", true))
			}
		}
	}
	return set
}

// insertionPoint is the range the inline icon of m stands in for: the fallback
// glyph, or an empty range at the icon anchor when there is none.
func insertionPoint(m domain.EmojiMatch) domain.Range {
	if m.FallbackRange != nil {
		return *m.FallbackRange
	}
	a := m.AttrWithTrailingSpaceRange
	return domain.Range{Start: a.Start, End: a.Start, StartOffset: a.StartOffset, EndOffset: a.StartOffset}
}

func classify(m domain.EmojiMatch, cursorLine int, lk lookup) domain.MatchState {
	switch {
	case m.Line == cursorLine:
		return domain.StateExpanded
	case lk.status == statusPending:
		return domain.StateResolving
	default:
		return domain.StateCollapsed
	}
}

func inlineIcon(i int, m domain.EmojiMatch, asset string, skeleton bool) domain.IconPlacement {
	anchor := m.AttrWithTrailingSpaceRange
	if m.FallbackRange != nil {
		anchor = *m.FallbackRange
	}
	return domain.IconPlacement{
		MatchIndex:   i,
		EmojiID:      m.EmojiID,
		Kind:         domain.IconInline,
		Anchor:       anchor.Start,
		AnchorOffset: anchor.StartOffset,
		Asset:        asset,
		Skeleton:     skeleton,
		Width:        GlyphWidth(m.Fallback),
	}
}

func compositeIcon(i int, m domain.EmojiMatch, asset string, skeleton bool) domain.IconPlacement {
	return domain.IconPlacement{
		MatchIndex:   i,
		EmojiID:      m.EmojiID,
		Kind:         domain.IconComposite,
		Anchor:       m.FullRange.End,
		AnchorOffset: m.FullRange.EndOffset,
		Asset:        asset,
		Skeleton:     skeleton,
		Separator:    true,
		Width:        GlyphWidth(m.Fallback),
	}
}

func hoverFor(i int, m domain.EmojiMatch, lk lookup, size int) domain.Hover {
	h := domain.Hover{
		MatchIndex: i,
		Range:      m.FullRange,
		EmojiID:    m.EmojiID,
		Fallback:   m.Fallback,
		Size:       size,
	}
	switch lk.status {
	case statusHit:
		h.Status = domain.HoverPreview
		h.Asset = lk.asset
	case statusPending:
		h.Status = domain.HoverLoading
	case statusFailed:
		h.Status = domain.HoverUnavailable
	default:
		h.Status = domain.HoverNotConfigured
	}
	h.Markdown = HoverMarkdown(h)
	return h
}

// GlyphWidth returns the display width, in cells, of the icon standing in
// for fallback.
func GlyphWidth(fallback *string) int {
	if fallback == nil {
		return minIconWidth
	}
	return max(uniseg.StringWidth(*fallback), minIconWidth)
}
