package domain

import "time"

const (
	// DefaultCacheExpiration is the default time-to-live of cache entries.
	DefaultCacheExpiration = 24 * time.Hour

	// DefaultHoverPreviewSize is the default edge length, in pixels, of hover previews.
	DefaultHoverPreviewSize = 128

	// DefaultDebounce is the default delay used to coalesce document updates.
	DefaultDebounce = 50 * time.Millisecond
)

// Settings is the configuration surface consumed by the core.
type Settings struct {
	// BotToken is the credential used to build an AssetFetcher. Empty disables fetching.
	BotToken string
	// CacheExpiration is the process-wide time-to-live of cache entries.
	CacheExpiration time.Duration
	// EnableInlinePreview toggles icons, hidden ranges and highlights.
	EnableInlinePreview bool
	// HoverPreviewSize is the edge length, in pixels, of hover previews.
	HoverPreviewSize int
	// Debounce coalesces rapid document updates into one pass.
	Debounce time.Duration
	// CacheDir holds the cache record and downloaded artifacts.
	CacheDir string
	// Patterns names the optional detector patterns to enable.
	Patterns []string
	// PositionEncoding is the unit of Position.Character.
	PositionEncoding PositionEncoding
	// APIBaseURL overrides the Telegram Bot API endpoint.
	APIBaseURL string
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		CacheExpiration:     DefaultCacheExpiration,
		EnableInlinePreview: true,
		HoverPreviewSize:    DefaultHoverPreviewSize,
		Debounce:            DefaultDebounce,
		CacheDir:            DefaultCachePath(),
		PositionEncoding:    EncodingUTF16,
	}
}
