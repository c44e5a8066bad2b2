package ports

// AssetEncoder turns a local image file into a self-contained renderable string.
//
//go:generate go run go.uber.org/mock/mockgen -source=encoder.go -destination=mocks/mock_encoder.go -package=mocks
type AssetEncoder interface {
	// Encode reads the file at path and returns its data URI.
	Encode(path string) (string, error)
}
