package ports

import (
	"io"

	"go.trai.ch/emojilens/internal/core/domain"
)

// DecorationSink is the host rendering boundary.
// It receives the abstract decoration instructions of one render pass.
//
//go:generate go run go.uber.org/mock/mockgen -source=sink.go -destination=mocks/mock_sink.go -package=mocks
type DecorationSink interface {
	// Publish delivers the decorations computed for the document uri.
	// text is the snapshot the ranges refer to.
	Publish(uri, text string, matches []domain.EmojiMatch, set domain.DecorationSet) error
}

// SinkFactory builds a DecorationSink for an output format.
type SinkFactory interface {
	// NewSink returns a sink writing format to w.
	// It returns domain.ErrUnknownFormat for formats it does not know.
	NewSink(format string, w io.Writer) (DecorationSink, error)
}
