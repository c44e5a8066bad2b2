// Package telegram implements the AssetFetcher port over the Telegram Bot API.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/emojilens/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// DefaultAPIBaseURL is the public Bot API endpoint.
	DefaultAPIBaseURL = "https://api.telegram.org"

	httpClientTimeout = 30 * time.Second

	// maxDownloadSize caps a single sticker file.
	maxDownloadSize = 8 << 20
)

// apiResponse is the envelope of every Bot API answer.
type apiResponse[T any] struct {
	OK          bool   `json:"ok"`
	Result      T      `json:"result"`
	Description string `json:"description"`
	ErrorCode   int    `json:"error_code"`
}

type photoSize struct {
	FileID string `json:"file_id"`
}

type sticker struct {
	FileID    string     `json:"file_id"`
	Thumbnail *photoSize `json:"thumbnail"`
}

type file struct {
	FileID   string `json:"file_id"`
	FilePath string `json:"file_path"`
}

// Client downloads custom emoji stickers into a local directory.
type Client struct {
	token      string
	baseURL    string
	dir        string
	httpClient *http.Client
}

// NewClient creates a Client that stores files in dir.
// It returns domain.ErrFetcherNotConfigured when token is empty.
func NewClient(token, baseURL, dir string) (*Client, error) {
	return newClientWithHTTP(token, baseURL, dir, &http.Client{Timeout: httpClientTimeout})
}

func newClientWithHTTP(token, baseURL, dir string, client *http.Client) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domain.ErrFetcherNotConfigured
	}
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}
	return &Client{
		token:      token,
		baseURL:    strings.TrimRight(baseURL, "/"),
		dir:        filepath.Clean(dir),
		httpClient: client,
	}, nil
}

// FetchAsset returns the local file of emojiID, downloading it when absent.
// The sticker thumbnail is preferred over the full sticker file. An emoji
// unknown to Telegram yields an empty path and no error.
func (c *Client) FetchAsset(ctx context.Context, emojiID string) (string, error) {
	if !domain.IsValidEmojiID(emojiID) {
		return "", zerr.With(domain.ErrInvalidEmojiID, "emoji_id", emojiID)
	}

	var stickers []sticker
	if err := c.call(ctx, "getCustomEmojiStickers", map[string]any{
		"custom_emoji_ids": []string{emojiID},
	}, &stickers); err != nil {
		return "", zerr.With(err, "emoji_id", emojiID)
	}
	if len(stickers) == 0 {
		return "", nil
	}

	fileID := stickers[0].FileID
	if thumb := stickers[0].Thumbnail; thumb != nil && thumb.FileID != "" {
		fileID = thumb.FileID
	}

	var f file
	if err := c.call(ctx, "getFile", map[string]any{"file_id": fileID}, &f); err != nil {
		return "", zerr.With(err, "emoji_id", emojiID)
	}
	if f.FilePath == "" {
		return "", nil
	}

	ext := path.Ext(f.FilePath)
	if ext == "" {
		ext = domain.DefaultAssetExt
	}
	local := filepath.Join(c.dir, emojiID+ext)
	if _, err := os.Stat(local); err == nil {
		return local, nil
	}

	if err := c.download(ctx, f.FilePath, local); err != nil {
		return "", zerr.With(err, "emoji_id", emojiID)
	}
	return local, nil
}

// call posts params to a Bot API method and decodes its result into out.
func (c *Client) call(ctx context.Context, method string, params, out any) error {
	body, err := json.Marshal(params)
	if err != nil {
		return zerr.Wrap(err, domain.ErrTelegramRequestFailed.Error())
	}

	endpoint := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return zerr.Wrap(redact(err), domain.ErrTelegramRequestFailed.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(redact(err), domain.ErrTelegramRequestFailed.Error()), "method", method)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return zerr.Wrap(err, domain.ErrTelegramRequestFailed.Error())
	}

	var envelope apiResponse[json.RawMessage]
	if err := json.Unmarshal(data, &envelope); err != nil {
		parseErr := zerr.Wrap(err, domain.ErrTelegramParseFailed.Error())
		return zerr.With(zerr.With(parseErr, "method", method), "status_code", resp.StatusCode)
	}
	if !envelope.OK {
		apiErr := zerr.With(domain.ErrTelegramAPIError, "method", method)
		apiErr = zerr.With(apiErr, "error_code", envelope.ErrorCode)
		return zerr.With(apiErr, "description", envelope.Description)
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTelegramParseFailed.Error()), "method", method)
	}
	return nil
}

// download fetches a Bot API file into dest through a temp file.
// Redirects are followed by the http client.
func (c *Client) download(ctx context.Context, filePath, dest string) error {
	endpoint := fmt.Sprintf("%s/file/bot%s/%s", c.baseURL, c.token, strings.TrimLeft(filePath, "/"))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return zerr.Wrap(redact(err), domain.ErrDownloadFailed.Error())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zerr.Wrap(redact(err), domain.ErrDownloadFailed.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return zerr.With(domain.ErrDownloadFailed, "status_code", resp.StatusCode)
	}

	if err := os.MkdirAll(filepath.Dir(dest), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrDownloadFailed.Error())
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(dest), "download-*.tmp")
	if err != nil {
		return zerr.Wrap(err, domain.ErrDownloadFailed.Error())
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	n, err := io.Copy(tmpFile, io.LimitReader(resp.Body, maxDownloadSize+1))
	if closeErr := tmpFile.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return zerr.Wrap(err, domain.ErrDownloadFailed.Error())
	}
	if n > maxDownloadSize {
		return zerr.With(domain.ErrDownloadFailed, "size_limit", maxDownloadSize)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrDownloadFailed.Error())
	}
	if err := os.Rename(tmpName, dest); err != nil {
		return zerr.Wrap(err, domain.ErrDownloadFailed.Error())
	}
	return nil
}

// redact drops the request URL, which carries the bot token, from transport errors.
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s request: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
