package detector

import (
	"sort"
	"unicode/utf8"

	"go.trai.ch/emojilens/internal/core/domain"
)

// Mapper converts byte offsets of one text snapshot into positions.
// Every range the detector reports is produced through a Mapper so that all
// ranges of a pass agree on line and column arithmetic.
type Mapper struct {
	text       string
	enc        domain.PositionEncoding
	lineStarts []int
}

// NewMapper indexes the line starts of text.
// Lines are separated by '\n'; a preceding '\r' stays part of its line.
func NewMapper(text string, enc domain.PositionEncoding) *Mapper {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Mapper{text: text, enc: enc, lineStarts: starts}
}

// Line returns the zero-based line containing offset.
func (m *Mapper) Line(offset int) int {
	offset = m.clamp(offset)
	return sort.Search(len(m.lineStarts), func(i int) bool {
		return m.lineStarts[i] > offset
	}) - 1
}

// Position returns the line and column of offset.
func (m *Mapper) Position(offset int) domain.Position {
	offset = m.clamp(offset)
	line := m.Line(offset)
	return domain.Position{
		Line:      line,
		Character: m.units(m.text[m.lineStarts[line]:offset]),
	}
}

// Range returns the range covering [start, end).
func (m *Mapper) Range(start, end int) domain.Range {
	start, end = m.clamp(start), m.clamp(end)
	return domain.Range{
		Start:       m.Position(start),
		End:         m.Position(end),
		StartOffset: start,
		EndOffset:   end,
	}
}

// offset is the inverse of Position.
// Columns past the end of a line resolve to the end of that line.
func (m *Mapper) offset(p domain.Position) int {
	if p.Line < 0 {
		return 0
	}
	if p.Line >= len(m.lineStarts) {
		return len(m.text)
	}
	end := len(m.text)
	if p.Line+1 < len(m.lineStarts) {
		end = m.lineStarts[p.Line+1] - 1
	}
	off := m.lineStarts[p.Line]
	for col := 0; off < end && col < p.Character; {
		r, size := utf8.DecodeRuneInString(m.text[off:end])
		col += runeUnits(r, size, m.enc)
		off += size
	}
	return off
}

func (m *Mapper) clamp(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(m.text) {
		return len(m.text)
	}
	return offset
}

func (m *Mapper) units(s string) int {
	switch m.enc {
	case domain.EncodingUTF8:
		return len(s)
	case domain.EncodingRunes:
		return utf8.RuneCountInString(s)
	}
	n := 0
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		n += runeUnits(r, size, m.enc)
		s = s[size:]
	}
	return n
}

func runeUnits(r rune, size int, enc domain.PositionEncoding) int {
	switch enc {
	case domain.EncodingUTF8:
		return size
	case domain.EncodingRunes:
		return 1
	}
	if r >= 0x10000 {
		return 2
	}
	return 1
}
