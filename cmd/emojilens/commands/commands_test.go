package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/emojilens/cmd/emojilens/commands"
	"go.trai.ch/emojilens/internal/app"
	"go.trai.ch/emojilens/internal/build"
	"go.trai.ch/emojilens/internal/core/domain"
)

type mockApp struct {
	trace        bool
	annotateFunc func(ctx context.Context, opts app.RenderOptions) error
	watchFunc    func(ctx context.Context, opts app.WatchOptions) error
	detectFunc   func(ctx context.Context, cfg app.ConfigOptions, paths []string) ([]app.DocumentMatches, error)
	listFunc     func(cfg app.ConfigOptions) (string, []app.CacheEntryInfo, error)
	removeFunc   func(cfg app.ConfigOptions, ids []string) (int, error)
	clearFunc    func(cfg app.ConfigOptions) (int, error)
}

func (m *mockApp) SetTrace(enabled bool) {
	m.trace = enabled
}

func (m *mockApp) Annotate(ctx context.Context, opts app.RenderOptions) error {
	if m.annotateFunc != nil {
		return m.annotateFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, opts app.WatchOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Detect(ctx context.Context, cfg app.ConfigOptions, paths []string) ([]app.DocumentMatches, error) {
	if m.detectFunc != nil {
		return m.detectFunc(ctx, cfg, paths)
	}
	return nil, nil
}

func (m *mockApp) CacheList(cfg app.ConfigOptions) (string, []app.CacheEntryInfo, error) {
	if m.listFunc != nil {
		return m.listFunc(cfg)
	}
	return "", nil, nil
}

func (m *mockApp) CacheRemove(cfg app.ConfigOptions, ids []string) (int, error) {
	if m.removeFunc != nil {
		return m.removeFunc(cfg, ids)
	}
	return 0, nil
}

func (m *mockApp) CacheClear(cfg app.ConfigOptions) (int, error) {
	if m.clearFunc != nil {
		return m.clearFunc(cfg)
	}
	return 0, nil
}

type logSettings struct {
	json, verbose bool
}

func (l *logSettings) SetJSON(enabled bool)    { l.json = enabled }
func (l *logSettings) SetVerbose(enabled bool) { l.verbose = enabled }

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a, nil)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Annotate(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.RenderOptions
		mock := &mockApp{
			annotateFunc: func(_ context.Context, opts app.RenderOptions) error {
				captured = opts
				return nil
			},
		}

		_, err := execute(t, mock, "annotate", "a.md", "b.md", "--format", "json", "--cursor", "3", "--config", "x.yaml")
		require.NoError(t, err)
		assert.Equal(t, []string{"a.md", "b.md"}, captured.Paths)
		assert.Equal(t, "json", captured.Format)
		assert.Equal(t, 2, captured.CursorLine)
		assert.Equal(t, "x.yaml", captured.Config.Path)
		assert.NotNil(t, captured.Out)
	})

	t.Run("defaults to text without a cursor", func(t *testing.T) {
		var captured app.RenderOptions
		mock := &mockApp{
			annotateFunc: func(_ context.Context, opts app.RenderOptions) error {
				captured = opts
				return nil
			},
		}

		_, err := execute(t, mock, "annotate", "a.md")
		require.NoError(t, err)
		assert.Equal(t, "text", captured.Format)
		assert.Equal(t, -1, captured.CursorLine)
		assert.Empty(t, captured.Config.Path)
	})

	t.Run("requires a document", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "annotate")
		require.Error(t, err)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{
			annotateFunc: func(context.Context, app.RenderOptions) error {
				return errors.New("simulated error")
			},
		}
		_, err := execute(t, mock, "annotate", "a.md")
		require.ErrorContains(t, err, "simulated error")
	})
}

func TestCommands_Watch(t *testing.T) {
	var captured app.WatchOptions
	mock := &mockApp{
		watchFunc: func(_ context.Context, opts app.WatchOptions) error {
			captured = opts
			return nil
		},
	}

	_, err := execute(t, mock, "watch", "notes.md", "--progressive", "-l", "1")
	require.NoError(t, err)
	assert.True(t, captured.Progressive)
	assert.Equal(t, 0, captured.CursorLine)
	assert.Equal(t, []string{"notes.md"}, captured.Paths)
}

func TestCommands_Detect(t *testing.T) {
	glyph := "😀"
	docs := []app.DocumentMatches{{
		URI: "a.md",
		Matches: []domain.EmojiMatch{{
			EmojiID:   "42",
			Fallback:  &glyph,
			FullRange: domain.Range{Start: domain.Position{Line: 1, Character: 4}},
			Pattern:   "paired",
		}},
	}}
	mock := &mockApp{
		detectFunc: func(_ context.Context, _ app.ConfigOptions, paths []string) ([]app.DocumentMatches, error) {
			assert.Equal(t, []string{"a.md"}, paths)
			return docs, nil
		},
	}

	t.Run("text", func(t *testing.T) {
		out, err := execute(t, mock, "detect", "a.md")
		require.NoError(t, err)
		assert.Equal(t, "a.md:2:5\t42\t😀\tpaired\n", out)
	})

	t.Run("json", func(t *testing.T) {
		out, err := execute(t, mock, "detect", "a.md", "--json")
		require.NoError(t, err)

		var got []app.DocumentMatches
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "42", got[0].Matches[0].EmojiID)
	})
}

func TestCommands_Cache(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	mock := &mockApp{
		listFunc: func(app.ConfigOptions) (string, []app.CacheEntryInfo, error) {
			return "/cache", []app.CacheEntryInfo{
				{CacheEntry: domain.CacheEntry{EmojiID: "1", CreatedAt: created, Path: "/cache/1.webp"}, Valid: true},
				{CacheEntry: domain.CacheEntry{EmojiID: "2", CreatedAt: created}, Valid: false},
			}, nil
		},
		removeFunc: func(_ app.ConfigOptions, ids []string) (int, error) {
			return len(ids) - 1, nil
		},
		clearFunc: func(app.ConfigOptions) (int, error) {
			return 7, nil
		},
	}

	t.Run("list", func(t *testing.T) {
		out, err := execute(t, mock, "cache", "list")
		require.NoError(t, err)
		assert.Contains(t, out, "/cache")
		assert.Contains(t, out, "2026-01-02 03:04:05")
		assert.Contains(t, out, "/cache/1.webp")
		assert.Contains(t, out, "stale")
	})

	t.Run("list empty", func(t *testing.T) {
		out, err := execute(t, &mockApp{}, "cache", "list")
		require.NoError(t, err)
		assert.Contains(t, out, "no cached emoji")
	})

	t.Run("remove", func(t *testing.T) {
		out, err := execute(t, mock, "cache", "remove", "1", "2")
		require.NoError(t, err)
		assert.Equal(t, "removed 1 of 2 emoji\n", out)
	})

	t.Run("clear", func(t *testing.T) {
		out, err := execute(t, mock, "cache", "clear")
		require.NoError(t, err)
		assert.Equal(t, "removed 7 emoji\n", out)
	})
}

func TestCommands_GlobalFlags(t *testing.T) {
	mock := &mockApp{}
	logs := &logSettings{}

	cli := commands.New(mock, logs)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"--log-json", "--verbose", "--trace", "annotate", "a.md"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, logs.json)
	assert.True(t, logs.verbose)
	assert.True(t, mock.trace)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
}

func TestCommands_VerboseAndVersionFlags(t *testing.T) {
	t.Run("short version flag", func(t *testing.T) {
		out, err := execute(t, &mockApp{}, "-v")
		require.NoError(t, err)
		assert.Contains(t, out, "emojilens version "+build.Version)
	})

	t.Run("verbose on a subcommand", func(t *testing.T) {
		logs := &logSettings{}
		called := false
		mock := &mockApp{
			detectFunc: func(context.Context, app.ConfigOptions, []string) ([]app.DocumentMatches, error) {
				called = true
				return nil, nil
			},
		}

		cli := commands.New(mock, logs)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"detect", "a.md", "--verbose"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, called)
		assert.True(t, logs.verbose)
		assert.False(t, logs.json)
	})
}
