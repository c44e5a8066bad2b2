package domain

// EmojiMatch is one recognized custom-emoji reference in a document snapshot.
// Matches are rebuilt on every detection pass and never mutated.
type EmojiMatch struct {
	// EmojiID is the literal digit string of the reference.
	EmojiID string `json:"emojiId"`
	// Fallback is the trimmed glyph between paired tags, nil when absent.
	Fallback *string `json:"fallback"`
	// FullRange covers the whole reference.
	FullRange Range `json:"fullRange"`
	// AttrRange covers the identifier attribute text.
	AttrRange Range `json:"attrRange"`
	// AttrWithTrailingSpaceRange runs from just after the tag name to just
	// before the closing bracket.
	AttrWithTrailingSpaceRange Range `json:"attrWithTrailingSpaceRange"`
	// FallbackRange covers the fallback glyph, nil when Fallback is nil.
	FallbackRange *Range `json:"fallbackRange"`
	// Line is the zero-based line of the match start.
	Line int `json:"line"`
	// Offset is the byte offset of the match start.
	Offset int `json:"offset"`
	// Pattern names the scanner that produced the match.
	Pattern string `json:"pattern"`
}

// FallbackText returns the fallback glyph or an empty string.
func (m EmojiMatch) FallbackText() string {
	if m.Fallback == nil {
		return ""
	}
	return *m.Fallback
}

// MatchKey identifies a match for deduplication.
type MatchKey struct {
	EmojiID string
	Offset  int
}

// Key returns the deduplication key of the match.
func (m EmojiMatch) Key() MatchKey {
	return MatchKey{EmojiID: m.EmojiID, Offset: m.Offset}
}

// IsValidEmojiID reports whether id is a non-empty ASCII digit string.
func IsValidEmojiID(id string) bool {
	if id == "" {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			return false
		}
	}
	return true
}
