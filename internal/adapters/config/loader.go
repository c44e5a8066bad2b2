// Package config provides the settings loader for emojilens.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/emojilens/internal/core/domain"
	"go.trai.ch/emojilens/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// maxHoverPreviewSize bounds the hover image edge, in pixels.
	maxHoverPreviewSize = 1024
	// maxCacheExpiration bounds the cache TTL, in seconds (ten years).
	maxCacheExpiration = 10 * 365 * 24 * 60 * 60
	// maxDebounce bounds the quiet period, in milliseconds.
	maxDebounce = 60_000
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	fs     FileSystem
	getenv func(string) string
	home   func() (string, error)
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(logger, NewOSFS(), os.Getenv)
}

// NewLoaderWithFS creates a Loader over a custom filesystem and environment.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem, getenv func(string) string) *Loader {
	return &Loader{
		Logger: logger,
		fs:     fsys,
		getenv: getenv,
		home:   os.UserHomeDir,
	}
}

// Load returns the settings for cwd.
// An explicit path must exist; otherwise the nearest emojilens.yaml found by
// walking up from cwd is used, and defaults apply when there is none.
// EMOJILENS_BOT_TOKEN overrides the configured token.
func (l *Loader) Load(cwd, path string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	if path == "" {
		path = l.Discover(cwd)
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	var fileToken bool
	if path != "" {
		var cfg Configfile
		if err := l.readAndUnmarshalYAML(path, &cfg); err != nil {
			return domain.Settings{}, err
		}
		if err := l.apply(&settings, &cfg, filepath.Dir(path)); err != nil {
			return domain.Settings{}, zerr.With(err, "config", path)
		}
		fileToken = cfg.BotToken != ""
	}

	if token := strings.TrimSpace(l.getenv(domain.BotTokenEnv)); token != "" {
		if fileToken {
			l.Logger.Warn(fmt.Sprintf("%s overrides botToken from %s", domain.BotTokenEnv, path))
		}
		settings.BotToken = token
	}

	return settings, nil
}

// Discover walks up from cwd and returns the first emojilens.yaml, or "".
func (l *Loader) Discover(cwd string) string {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := l.fs.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return ""
		}
		currentDir = parentDir
	}
}

func (l *Loader) apply(s *domain.Settings, cfg *Configfile, baseDir string) error {
	s.BotToken = strings.TrimSpace(cfg.BotToken)

	if cfg.CacheExpiration != nil {
		if *cfg.CacheExpiration <= 0 || *cfg.CacheExpiration > maxCacheExpiration {
			return zerr.With(domain.ErrInvalidSetting, "cacheExpiration", *cfg.CacheExpiration)
		}
		s.CacheExpiration = time.Duration(*cfg.CacheExpiration) * time.Second
	}
	if cfg.EnableInlinePreview != nil {
		s.EnableInlinePreview = *cfg.EnableInlinePreview
	}
	if cfg.HoverPreviewSize != nil {
		if *cfg.HoverPreviewSize <= 0 || *cfg.HoverPreviewSize > maxHoverPreviewSize {
			return zerr.With(domain.ErrInvalidSetting, "hoverPreviewSize", *cfg.HoverPreviewSize)
		}
		s.HoverPreviewSize = *cfg.HoverPreviewSize
	}
	if cfg.Debounce != nil {
		if *cfg.Debounce < 0 || *cfg.Debounce > maxDebounce {
			return zerr.With(domain.ErrInvalidSetting, "debounce", *cfg.Debounce)
		}
		s.Debounce = time.Duration(*cfg.Debounce) * time.Millisecond
	}
	if cfg.CacheDir != "" {
		dir, err := l.resolveDir(baseDir, cfg.CacheDir)
		if err != nil {
			return err
		}
		s.CacheDir = dir
	}
	if cfg.PositionEncoding != "" {
		enc, ok := domain.ParsePositionEncoding(strings.ToLower(cfg.PositionEncoding))
		if !ok {
			return zerr.With(domain.ErrInvalidSetting, "positionEncoding", cfg.PositionEncoding)
		}
		s.PositionEncoding = enc
	}
	s.Patterns = cfg.Patterns
	s.APIBaseURL = strings.TrimSpace(cfg.APIBaseURL)
	return nil
}

// resolveDir expands a leading ~ and anchors relative paths at the config file.
func (l *Loader) resolveDir(baseDir, dir string) (string, error) {
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		home, err := l.home()
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrInvalidSetting.Error()), "cacheDir", dir)
		}
		return filepath.Join(home, strings.TrimPrefix(dir, "~")), nil
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir), nil
	}
	return filepath.Join(baseDir, dir), nil
}

func (l *Loader) readAndUnmarshalYAML(configPath string, target *Configfile) error {
	data, err := l.fs.ReadFile(configPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "config", configPath)
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.With(zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error()), "config", configPath)
	}

	return nil
}
