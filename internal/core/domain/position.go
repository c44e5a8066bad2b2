// Package domain contains the core types shared by the detector, cache and decoration engine.
package domain

// PositionEncoding selects the unit in which Position.Character is counted.
type PositionEncoding uint8

const (
	// EncodingUTF16 counts UTF-16 code units, matching editor hosts and LSP.
	EncodingUTF16 PositionEncoding = iota
	// EncodingUTF8 counts bytes.
	EncodingUTF8
	// EncodingRunes counts Unicode code points.
	EncodingRunes
)

// String returns the configuration name of the encoding.
func (e PositionEncoding) String() string {
	switch e {
	case EncodingUTF8:
		return "utf-8"
	case EncodingRunes:
		return "utf-32"
	default:
		return "utf-16"
	}
}

// ParsePositionEncoding maps a configuration name to an encoding.
// It reports false for unknown names.
func ParsePositionEncoding(name string) (PositionEncoding, bool) {
	switch name {
	case "", "utf-16", "utf16":
		return EncodingUTF16, true
	case "utf-8", "utf8":
		return EncodingUTF8, true
	case "utf-32", "utf32", "runes":
		return EncodingRunes, true
	default:
		return EncodingUTF16, false
	}
}

// Position is a zero-based line/character pair.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Before reports whether p sorts strictly before o.
func (p Position) Before(o Position) bool {
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Character < o.Character
}

// Range is a half-open span of a document snapshot.
// StartOffset and EndOffset are byte offsets into the same snapshot.
type Range struct {
	Start       Position `json:"start"`
	End         Position `json:"end"`
	StartOffset int      `json:"startOffset"`
	EndOffset   int      `json:"endOffset"`
}

// Contains reports whether o lies within r.
func (r Range) Contains(o Range) bool {
	return r.StartOffset <= o.StartOffset && o.EndOffset <= r.EndOffset
}

// Empty reports whether the range covers no text.
func (r Range) Empty() bool {
	return r.StartOffset == r.EndOffset
}

// Text returns the slice of text covered by the range.
// It returns an empty string when the offsets do not fit the text.
func (r Range) Text(text string) string {
	if r.StartOffset < 0 || r.EndOffset > len(text) || r.StartOffset > r.EndOffset {
		return ""
	}
	return text[r.StartOffset:r.EndOffset]
}
