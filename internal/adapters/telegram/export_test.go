package telegram

import "net/http"

// NewClientWithHTTP exports the client constructor that takes a custom http client.
func NewClientWithHTTP(token, baseURL, dir string, client *http.Client) (*Client, error) {
	return newClientWithHTTP(token, baseURL, dir, client)
}
