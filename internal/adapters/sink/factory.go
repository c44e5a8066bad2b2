package sink

import (
	"io"

	"go.trai.ch/emojilens/internal/core/domain"
	"go.trai.ch/emojilens/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// FormatJSON selects the JSON lines sink.
	FormatJSON = "json"
	// FormatText selects the terminal sink.
	FormatText = "text"
)

// Factory implements ports.SinkFactory.
type Factory struct{}

// NewFactory creates a sink factory.
func NewFactory() *Factory {
	return &Factory{}
}

// NewSink returns the sink for format.
func (f *Factory) NewSink(format string, w io.Writer) (ports.DecorationSink, error) {
	switch format {
	case FormatJSON, "jsonl":
		return NewJSONLines(w), nil
	case FormatText, "":
		return NewTerminal(w), nil
	default:
		return nil, zerr.With(domain.ErrUnknownFormat, "format", format)
	}
}
