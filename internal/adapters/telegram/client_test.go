package telegram_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/emojilens/internal/adapters/telegram"
	"go.trai.ch/emojilens/internal/core/domain"
)

const (
	testToken = "123:secret"
	testBase  = "https://bot.test"
)

// MockRoundTripper is a helper to mock http.Client behavior.
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

func newMockClient(handler func(req *http.Request) (*http.Response, error)) *http.Client {
	return &http.Client{
		Transport: &MockRoundTripper{RoundTripFunc: handler},
	}
}

func respond(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

func decodeBody(t *testing.T, req *http.Request) map[string]any {
	t.Helper()
	var params map[string]any
	require.NoError(t, json.NewDecoder(req.Body).Decode(&params))
	return params
}

// botAPI answers the three requests of a successful fetch.
func botAPI(t *testing.T, sticker, filePath string, downloads *atomic.Int32) func(*http.Request) (*http.Response, error) {
	t.Helper()
	return func(req *http.Request) (*http.Response, error) {
		switch req.URL.Path {
		case "/bot" + testToken + "/getCustomEmojiStickers":
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
			params := decodeBody(t, req)
			assert.Equal(t, []any{"5406764870999774418"}, params["custom_emoji_ids"])
			return respond(http.StatusOK, `{"ok":true,"result":[`+sticker+`]}`), nil
		case "/bot" + testToken + "/getFile":
			params := decodeBody(t, req)
			assert.Equal(t, "thumb-1", params["file_id"])
			return respond(http.StatusOK, `{"ok":true,"result":{"file_id":"thumb-1","file_path":"`+filePath+`"}}`), nil
		case "/file/bot" + testToken + "/" + filePath:
			downloads.Add(1)
			assert.Equal(t, http.MethodGet, req.Method)
			return respond(http.StatusOK, "RIFF-bytes"), nil
		}
		t.Errorf("unexpected request %s", req.URL)
		return respond(http.StatusNotFound, `{"ok":false}`), nil
	}
}

func TestClient_FetchAsset(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var downloads atomic.Int32
	sticker := `{"file_id":"full-1","thumbnail":{"file_id":"thumb-1"}}`
	client, err := telegram.NewClientWithHTTP(testToken, testBase, dir,
		newMockClient(botAPI(t, sticker, "thumbnails/file_7.webp", &downloads)))
	require.NoError(t, err)

	path, err := client.FetchAsset(context.Background(), "5406764870999774418")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "5406764870999774418.webp"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "RIFF-bytes", string(data))

	// A second fetch reuses the file on disk.
	_, err = client.FetchAsset(context.Background(), "5406764870999774418")
	require.NoError(t, err)
	assert.Equal(t, int32(1), downloads.Load())

	leftovers, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestClient_FetchAsset_DefaultExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var downloads atomic.Int32
	sticker := `{"file_id":"full-1","thumbnail":{"file_id":"thumb-1"}}`
	client, err := telegram.NewClientWithHTTP(testToken, testBase+"/", dir,
		newMockClient(botAPI(t, sticker, "stickers/file_8", &downloads)))
	require.NoError(t, err)

	path, err := client.FetchAsset(context.Background(), "5406764870999774418")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "5406764870999774418"+domain.DefaultAssetExt), path)
}

func TestClient_FetchAsset_NoThumbnailUsesStickerFile(t *testing.T) {
	t.Parallel()

	client, err := telegram.NewClientWithHTTP(testToken, testBase, t.TempDir(), newMockClient(
		func(req *http.Request) (*http.Response, error) {
			switch req.URL.Path {
			case "/bot" + testToken + "/getCustomEmojiStickers":
				return respond(http.StatusOK, `{"ok":true,"result":[{"file_id":"full-9"}]}`), nil
			case "/bot" + testToken + "/getFile":
				assert.Equal(t, "full-9", decodeBody(t, req)["file_id"])
				return respond(http.StatusOK, `{"ok":true,"result":{"file_id":"full-9"}}`), nil
			}
			t.Errorf("unexpected request %s", req.URL)
			return nil, errors.New("unexpected")
		}))
	require.NoError(t, err)

	// No file_path means nothing can be downloaded.
	path, err := client.FetchAsset(context.Background(), "5406764870999774418")
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestClient_FetchAsset_UnknownEmoji(t *testing.T) {
	t.Parallel()

	client, err := telegram.NewClientWithHTTP(testToken, testBase, t.TempDir(), newMockClient(
		func(*http.Request) (*http.Response, error) {
			return respond(http.StatusOK, `{"ok":true,"result":[]}`), nil
		}))
	require.NoError(t, err)

	path, err := client.FetchAsset(context.Background(), "1")
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestClient_FetchAsset_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler func(*http.Request) (*http.Response, error)
		wantErr error
	}{
		{
			name: "api error",
			handler: func(*http.Request) (*http.Response, error) {
				return respond(http.StatusBadRequest, `{"ok":false,"error_code":400,"description":"Bad Request"}`), nil
			},
			wantErr: domain.ErrTelegramAPIError,
		},
		{
			name: "unauthorized",
			handler: func(*http.Request) (*http.Response, error) {
				return respond(http.StatusUnauthorized, `{"ok":false,"error_code":401,"description":"Unauthorized"}`), nil
			},
			wantErr: domain.ErrTelegramAPIError,
		},
		{
			name: "garbage",
			handler: func(*http.Request) (*http.Response, error) {
				return respond(http.StatusBadGateway, `<html>bad gateway</html>`), nil
			},
			wantErr: domain.ErrTelegramParseFailed,
		},
		{
			name: "transport",
			handler: func(*http.Request) (*http.Response, error) {
				return nil, errors.New("connection refused")
			},
			wantErr: domain.ErrTelegramRequestFailed,
		},
		{
			name: "download status",
			handler: func(req *http.Request) (*http.Response, error) {
				switch req.URL.Path {
				case "/bot" + testToken + "/getCustomEmojiStickers":
					return respond(http.StatusOK, `{"ok":true,"result":[{"file_id":"f"}]}`), nil
				case "/bot" + testToken + "/getFile":
					return respond(http.StatusOK, `{"ok":true,"result":{"file_id":"f","file_path":"a.webp"}}`), nil
				}
				return respond(http.StatusForbidden, ""), nil
			},
			wantErr: domain.ErrDownloadFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			client, err := telegram.NewClientWithHTTP(testToken, testBase, dir, newMockClient(tt.handler))
			require.NoError(t, err)

			path, err := client.FetchAsset(context.Background(), "77")
			require.ErrorContains(t, err, tt.wantErr.Error())
			assert.NotContains(t, err.Error(), "secret")
			assert.Empty(t, path)

			files, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Empty(t, files)
		})
	}
}

func TestClient_FetchAsset_InvalidID(t *testing.T) {
	t.Parallel()

	client, err := telegram.NewClientWithHTTP(testToken, testBase, t.TempDir(), newMockClient(
		func(*http.Request) (*http.Response, error) {
			t.Error("no request expected")
			return nil, errors.New("unexpected")
		}))
	require.NoError(t, err)

	_, err = client.FetchAsset(context.Background(), "12a")
	require.ErrorContains(t, err, domain.ErrInvalidEmojiID.Error())
}

func TestFactory_NewFetcher(t *testing.T) {
	t.Parallel()

	f := telegram.NewFactory()

	fetcher, err := f.NewFetcher("", "", t.TempDir())
	require.ErrorIs(t, err, domain.ErrFetcherNotConfigured)
	assert.Nil(t, fetcher)

	fetcher, err = f.NewFetcher("  ", "", t.TempDir())
	require.ErrorIs(t, err, domain.ErrFetcherNotConfigured)
	assert.Nil(t, fetcher)

	fetcher, err = f.NewFetcher(testToken, "", t.TempDir())
	require.NoError(t, err)
	assert.NotNil(t, fetcher)
}
