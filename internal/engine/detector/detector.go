// Package detector locates custom-emoji references in document text.
package detector

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"go.trai.ch/emojilens/internal/core/domain"
)

// Detector runs a fixed set of scanners over a text snapshot.
// It holds no per-document state and is safe for concurrent use.
type Detector struct {
	patterns []Pattern
	enc      domain.PositionEncoding
}

// Option configures a Detector.
type Option func(*Detector)

// WithPattern appends an extra scanner after the built-in ones.
func WithPattern(p Pattern) Option {
	return func(d *Detector) {
		d.patterns = append(d.patterns, p)
	}
}

// WithPatterns appends several extra scanners.
func WithPatterns(ps ...Pattern) Option {
	return func(d *Detector) {
		d.patterns = append(d.patterns, ps...)
	}
}

// WithEncoding sets the unit of Position.Character.
func WithEncoding(enc domain.PositionEncoding) Option {
	return func(d *Detector) {
		d.enc = enc
	}
}

// New creates a Detector with the built-in scanners.
func New(opts ...Option) *Detector {
	d := &Detector{patterns: Builtin(), enc: domain.EncodingUTF16}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Patterns returns the names of the active scanners in precedence order.
func (d *Detector) Patterns() []string {
	names := make([]string, len(d.patterns))
	for i, p := range d.patterns {
		names[i] = p.Name
	}
	return names
}

// Detect returns the references in text ordered by offset.
// A reference matched by several scanners is reported once, by the first.
func (d *Detector) Detect(text string) []domain.EmojiMatch {
	if text == "" {
		return nil
	}

	mapper := NewMapper(text, d.enc)
	seen := make(map[domain.MatchKey]struct{})
	var matches []domain.EmojiMatch

	for _, p := range d.patterns {
		if p.Expr == nil {
			continue
		}
		for _, loc := range p.Expr.FindAllStringSubmatchIndex(text, -1) {
			m, ok := p.build(text, loc, mapper)
			if !ok {
				continue
			}
			if _, dup := seen[m.Key()]; dup {
				continue
			}
			seen[m.Key()] = struct{}{}
			matches = append(matches, m)
		}
	}

	slices.SortStableFunc(matches, func(a, b domain.EmojiMatch) int {
		return cmp.Compare(a.Offset, b.Offset)
	})
	return matches
}

func (p Pattern) build(text string, loc []int, mapper *Mapper) (domain.EmojiMatch, bool) {
	idStart, idEnd, ok := group(loc, p.ID)
	if !ok {
		return domain.EmojiMatch{}, false
	}
	id := text[idStart:idEnd]
	if !domain.IsValidEmojiID(id) {
		return domain.EmojiMatch{}, false
	}
	attrStart, attrEnd, ok := group(loc, p.Attr)
	if !ok {
		return domain.EmojiMatch{}, false
	}
	wsStart, wsEnd, ok := group(loc, p.AttrWithSpace)
	if !ok {
		wsStart, wsEnd = attrStart, attrEnd
	}

	m := domain.EmojiMatch{
		EmojiID:                    id,
		FullRange:                  mapper.Range(loc[0], loc[1]),
		AttrRange:                  mapper.Range(attrStart, attrEnd),
		AttrWithTrailingSpaceRange: mapper.Range(wsStart, wsEnd),
		Line:                       mapper.Line(loc[0]),
		Offset:                     loc[0],
		Pattern:                    p.Name,
	}

	if fbStart, fbEnd, ok := group(loc, p.Fallback); ok {
		if start, end, found := trimmed(text, fbStart, fbEnd); found {
			glyph := text[start:end]
			r := mapper.Range(start, end)
			m.Fallback = &glyph
			m.FallbackRange = &r
		}
	}
	return m, true
}

// trimmed narrows [start, end) to its non-whitespace core.
func trimmed(text string, start, end int) (int, int, bool) {
	raw := text[start:end]
	left := strings.TrimLeftFunc(raw, unicode.IsSpace)
	core := strings.TrimRightFunc(left, unicode.IsSpace)
	if core == "" {
		return 0, 0, false
	}
	s := start + len(raw) - len(left)
	return s, s + len(core), true
}
