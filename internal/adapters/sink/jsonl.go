// Package sink implements decoration sinks: JSON lines for editor hosts and a
// coloured text rendering for terminals.
package sink

import (
	"encoding/json"
	"io"
	"sync"

	"go.trai.ch/emojilens/internal/core/domain"
	"go.trai.ch/emojilens/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DecorationSink = (*JSONLines)(nil)

// Record is one published render pass.
type Record struct {
	URI         string               `json:"uri"`
	Matches     []domain.EmojiMatch  `json:"matches"`
	Decorations domain.DecorationSet `json:"decorations"`
	// Pending is set while any match is still resolving; a later record for
	// the same uri supersedes it.
	Pending bool `json:"pending"`
}

// JSONLines writes one Record per Publish call, one JSON object per line.
type JSONLines struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewJSONLines creates a sink writing to w.
func NewJSONLines(w io.Writer) *JSONLines {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONLines{enc: enc}
}

// Publish writes the record of one pass.
func (s *JSONLines) Publish(uri, _ string, matches []domain.EmojiMatch, set domain.DecorationSet) error {
	if matches == nil {
		matches = []domain.EmojiMatch{}
	}
	rec := Record{
		URI:         uri,
		Matches:     matches,
		Decorations: set,
		Pending:     set.Pending(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enc.Encode(rec); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPublishFailed.Error()), "uri", uri)
	}
	return nil
}
