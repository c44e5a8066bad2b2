package domain

import "time"

// CacheEntry is one resolved emoji asset.
type CacheEntry struct {
	EmojiID string `json:"emojiId"`
	// EncodedAsset is a self-contained data URI of the image.
	EncodedAsset string `json:"encodedAsset,omitempty"`
	// Path is the backing artifact on disk, empty for embedded-only entries.
	Path      string    `json:"path,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Expired reports whether the entry is older than ttl at now.
func (e CacheEntry) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.CreatedAt) > ttl
}
