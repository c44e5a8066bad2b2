// Package imaging turns downloaded emoji artifacts into data URIs.
package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/gif"  // register gif for DecodeConfig
	_ "image/jpeg" // register jpeg for DecodeConfig
	_ "image/png"  // register png for DecodeConfig
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/emojilens/internal/core/domain"
	"go.trai.ch/zerr"
	_ "golang.org/x/image/webp" // register webp for DecodeConfig
)

// DefaultMIMEType is used for extensions that are not recognized.
const DefaultMIMEType = "image/webp"

var mimeTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// Encoder implements ports.AssetEncoder.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// MIMEType returns the MIME type for path based on its extension.
// The second result reports whether the extension is a known raster format.
func MIMEType(path string) (string, bool) {
	mime, ok := mimeTypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return DefaultMIMEType, false
	}
	return mime, true
}

// Encode reads the image at path and returns it as a base64 data URI.
// Files with a known extension must decode as an image; other files are
// passed through as the default type.
func (e *Encoder) Encode(path string) (string, error) {
	//nolint:gosec // Path comes from the emoji cache directory
	data, err := os.ReadFile(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrAssetReadFailed.Error()), "path", path)
	}

	mime, known := MIMEType(path)
	if known {
		if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrAssetDecodeFailed.Error()), "path", path)
		}
	}

	var b strings.Builder
	b.Grow(len("data:;base64,") + len(mime) + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString("data:")
	b.WriteString(mime)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String(), nil
}
