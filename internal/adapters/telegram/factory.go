package telegram

import (
	"go.trai.ch/emojilens/internal/core/ports"
)

// Factory implements ports.FetcherFactory.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// NewFetcher returns a Client for token, or domain.ErrFetcherNotConfigured
// when token is empty.
func (f *Factory) NewFetcher(token, baseURL, dir string) (ports.AssetFetcher, error) {
	client, err := NewClient(token, baseURL, dir)
	if err != nil {
		return nil, err
	}
	return client, nil
}
