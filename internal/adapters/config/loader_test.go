package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/emojilens/internal/adapters/config"
	"go.trai.ch/emojilens/internal/core/domain"
	"go.trai.ch/emojilens/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func noEnv(string) string { return "" }

func envWith(token string) func(string) string {
	return func(key string) string {
		if key == domain.BotTokenEnv {
			return token
		}
		return ""
	}
}

func newMapLoader(t *testing.T, files fstest.MapFS, getenv func(string) string) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoaderWithFS(mockLogger, config.NewMapFSAdapter("/work", files), getenv)
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader := newMapLoader(t, fstest.MapFS{}, noEnv)

	settings, err := loader.Load("/work/notes", "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
	assert.Empty(t, loader.Discover("/work/notes"))
}

func TestLoader_Load_FullFile(t *testing.T) {
	loader := newMapLoader(t, fstest.MapFS{
		"emojilens.yaml": {Data: []byte(`
version: "1"
botToken: " 123:abc "
cacheExpiration: 3600
enableInlinePreview: false
hoverPreviewSize: 64
debounce: 120
cacheDir: .cache/emoji
patterns: [markdown]
positionEncoding: UTF-8
apiBaseURL: https://tg.example
`)},
		"notes/readme.md": {Data: []byte("x")},
	}, noEnv)

	settings, err := loader.Load("/work/notes", "")
	require.NoError(t, err)

	assert.Equal(t, domain.Settings{
		BotToken:            "123:abc",
		CacheExpiration:     time.Hour,
		EnableInlinePreview: false,
		HoverPreviewSize:    64,
		Debounce:            120 * time.Millisecond,
		CacheDir:            "/work/.cache/emoji",
		Patterns:            []string{"markdown"},
		PositionEncoding:    domain.EncodingUTF8,
		APIBaseURL:          "https://tg.example",
	}, settings)
	assert.Equal(t, "/work/emojilens.yaml", loader.Discover("/work/notes"))
}

func TestLoader_Load_PartialFileKeepsDefaults(t *testing.T) {
	loader := newMapLoader(t, fstest.MapFS{
		"emojilens.yaml": {Data: []byte("hoverPreviewSize: 256\n")},
	}, noEnv)

	settings, err := loader.Load("/work", "")
	require.NoError(t, err)

	want := domain.DefaultSettings()
	want.HoverPreviewSize = 256
	assert.Equal(t, want, settings)
}

func TestLoader_Load_NearestFileWins(t *testing.T) {
	loader := newMapLoader(t, fstest.MapFS{
		"emojilens.yaml":     {Data: []byte("hoverPreviewSize: 10\n")},
		"a/b/emojilens.yaml": {Data: []byte("hoverPreviewSize: 20\n")},
	}, noEnv)

	settings, err := loader.Load("/work/a/b/c", "")
	require.NoError(t, err)
	assert.Equal(t, 20, settings.HoverPreviewSize)
}

func TestLoader_Load_ExplicitPath(t *testing.T) {
	loader := newMapLoader(t, fstest.MapFS{
		"emojilens.yaml":   {Data: []byte("hoverPreviewSize: 10\n")},
		"custom/lens.yaml": {Data: []byte("hoverPreviewSize: 30\n")},
	}, noEnv)

	settings, err := loader.Load("/work", "custom/lens.yaml")
	require.NoError(t, err)
	assert.Equal(t, 30, settings.HoverPreviewSize)

	_, err = loader.Load("/work", "missing.yaml")
	require.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}

func TestLoader_Load_EnvOverridesToken(t *testing.T) {
	loader := newMapLoader(t, fstest.MapFS{
		"emojilens.yaml": {Data: []byte("botToken: from-file\n")},
	}, envWith("from-env"))

	settings, err := loader.Load("/work", "")
	require.NoError(t, err)
	assert.Equal(t, "from-env", settings.BotToken)

	loader = newMapLoader(t, fstest.MapFS{}, envWith("only-env"))
	settings, err = loader.Load("/work", "")
	require.NoError(t, err)
	assert.Equal(t, "only-env", settings.BotToken)
}

func TestLoader_Load_Invalid(t *testing.T) {
	tests := map[string]struct {
		content string
		wantErr error
	}{
		"yaml":              {"botToken: [unclosed\n", domain.ErrConfigParseFailed},
		"zero ttl":          {"cacheExpiration: 0\n", domain.ErrInvalidSetting},
		"overflowing ttl":   {"cacheExpiration: 9223372036854775807\n", domain.ErrInvalidSetting},
		"ttl past bound":    {"cacheExpiration: 315360001\n", domain.ErrInvalidSetting},
		"negative debounce": {"debounce: -1\n", domain.ErrInvalidSetting},
		"huge debounce":     {"debounce: 60001\n", domain.ErrInvalidSetting},
		"huge hover":        {"hoverPreviewSize: 5000\n", domain.ErrInvalidSetting},
		"encoding":          {"positionEncoding: ebcdic\n", domain.ErrInvalidSetting},
		"wrong type":        {"enableInlinePreview: maybe\n", domain.ErrConfigParseFailed},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			loader := newMapLoader(t, fstest.MapFS{
				"emojilens.yaml": {Data: []byte(tt.content)},
			}, noEnv)
			_, err := loader.Load("/work", "")
			require.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestLoader_Load_HomeCacheDir(t *testing.T) {
	loader := newMapLoader(t, fstest.MapFS{
		"emojilens.yaml": {Data: []byte("cacheDir: ~/emoji\n")},
	}, noEnv)
	loader.SetHomeForTest("/home/lens")

	settings, err := loader.Load("/work", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/lens", "emoji"), settings.CacheDir)
}

func TestLoader_Load_OSFilesystem(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "docs", "posts")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.ConfigFileName),
		[]byte("cacheDir: /abs/emoji\ncacheExpiration: 60\n"), domain.FilePerm))

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	settings, err := loader.Load(nested, "")
	require.NoError(t, err)
	assert.Equal(t, "/abs/emoji", settings.CacheDir)
	assert.Equal(t, time.Minute, settings.CacheExpiration)
	assert.Equal(t, filepath.Join(root, domain.ConfigFileName), loader.Discover(nested))
}
