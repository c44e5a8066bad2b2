package domain

import "go.trai.ch/zerr"

var (
	// ErrCacheStoreCreateFailed is returned when the cache directory cannot be created.
	ErrCacheStoreCreateFailed = zerr.New("failed to create emoji cache directory")

	// ErrCacheStoreReadFailed is returned when the persisted cache record cannot be read.
	ErrCacheStoreReadFailed = zerr.New("failed to read emoji cache record")

	// ErrCacheStoreCorrupt is returned when the persisted cache record is truncated,
	// fails its checksum or cannot be decoded.
	ErrCacheStoreCorrupt = zerr.New("emoji cache record is corrupt")

	// ErrCacheStoreMarshalFailed is returned when the cache record cannot be marshaled.
	ErrCacheStoreMarshalFailed = zerr.New("failed to marshal emoji cache record")

	// ErrCacheStoreWriteFailed is returned when the cache record cannot be written.
	ErrCacheStoreWriteFailed = zerr.New("failed to write emoji cache record")

	// ErrAssetReadFailed is returned when a downloaded asset cannot be read.
	ErrAssetReadFailed = zerr.New("failed to read emoji asset")

	// ErrAssetDecodeFailed is returned when a downloaded asset is not a valid image.
	ErrAssetDecodeFailed = zerr.New("failed to decode emoji asset")

	// ErrFetcherNotConfigured is returned when no bot token is available to build a fetcher.
	ErrFetcherNotConfigured = zerr.New("telegram bot token is not configured")

	// ErrTelegramRequestFailed is returned when a Bot API request fails at the transport level.
	ErrTelegramRequestFailed = zerr.New("telegram bot api request failed")

	// ErrTelegramAPIError is returned when the Bot API answers with ok=false.
	ErrTelegramAPIError = zerr.New("telegram bot api returned an error")

	// ErrTelegramParseFailed is returned when a Bot API response cannot be decoded.
	ErrTelegramParseFailed = zerr.New("failed to parse telegram bot api response")

	// ErrDownloadFailed is returned when the sticker file cannot be downloaded.
	ErrDownloadFailed = zerr.New("failed to download sticker file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidSetting is returned when a config value is out of range.
	ErrInvalidSetting = zerr.New("invalid setting")

	// ErrUnknownPattern is returned when the config names a detector pattern that does not exist.
	ErrUnknownPattern = zerr.New("unknown detector pattern")

	// ErrDocumentReadFailed is returned when a document cannot be read from disk.
	ErrDocumentReadFailed = zerr.New("failed to read document")

	// ErrPublishFailed is returned when a decoration set cannot be written to its sink.
	ErrPublishFailed = zerr.New("failed to publish decorations")

	// ErrUnknownFormat is returned when an unknown output format is requested.
	ErrUnknownFormat = zerr.New("unknown output format, expected 'json' or 'text'")

	// ErrInvalidEnum is returned when a decoded state, kind or status name is unknown.
	ErrInvalidEnum = zerr.New("unknown enum value")

	// ErrInvalidEmojiID is returned when an emoji id is not a non-empty digit string.
	ErrInvalidEmojiID = zerr.New("emoji id must be a non-empty digit string")
)
