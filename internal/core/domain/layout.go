package domain

import (
	"os"
	"path/filepath"
)

const (
	// AppDirName is the per-user directory of emojilens.
	AppDirName = "emojilens"

	// CacheDirName is the name of the emoji cache directory.
	CacheDirName = "emoji-cache"

	// CacheRecordFile is the name of the persisted cache record.
	CacheRecordFile = "cache.json"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "emojilens.yaml"

	// BotTokenEnv overrides the configured bot token.
	BotTokenEnv = "EMOJILENS_BOT_TOKEN"

	// DefaultAssetExt is used when the Bot API reports a file without extension.
	DefaultAssetExt = ".webp"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultCachePath returns the default emoji cache directory.
// It joins the user cache directory, emojilens and emoji-cache, falling back
// to a dot directory in the working directory when no user cache exists.
func DefaultCachePath() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join("."+AppDirName, CacheDirName)
	}
	return filepath.Join(base, AppDirName, CacheDirName)
}

// CacheRecordPath returns the path of the cache record inside dir.
func CacheRecordPath(dir string) string {
	return filepath.Join(dir, CacheRecordFile)
}
