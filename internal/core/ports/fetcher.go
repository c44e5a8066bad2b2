// Package ports defines the core interfaces for the application.
package ports

import "context"

// AssetFetcher turns an emoji id into a local image file.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type AssetFetcher interface {
	// FetchAsset downloads the asset of emojiID and returns its local path.
	// An empty path with a nil error means the asset does not exist.
	// Retries and timeouts are the implementation's concern.
	FetchAsset(ctx context.Context, emojiID string) (string, error)
}

// FetcherFactory builds an AssetFetcher from a credential.
type FetcherFactory interface {
	// NewFetcher returns a fetcher that downloads into dir.
	// It returns domain.ErrFetcherNotConfigured when token is empty.
	NewFetcher(token, baseURL, dir string) (AssetFetcher, error)
}
