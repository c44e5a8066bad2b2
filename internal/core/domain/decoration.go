package domain

import "go.trai.ch/zerr"

// MatchState is the rendering state of one match in one render pass.
type MatchState uint8

const (
	// StateResolving means no valid cache entry exists yet.
	StateResolving MatchState = iota
	// StateCollapsed means the match is off the cursor line.
	StateCollapsed
	// StateExpanded means the match is on the cursor line.
	StateExpanded
)

// String returns the lowercase name of the state.
func (s MatchState) String() string {
	switch s {
	case StateCollapsed:
		return "collapsed"
	case StateExpanded:
		return "expanded"
	default:
		return "resolving"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s MatchState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *MatchState) UnmarshalText(text []byte) error {
	for _, candidate := range []MatchState{StateResolving, StateCollapsed, StateExpanded} {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}
	return zerr.With(ErrInvalidEnum, "state", string(text))
}

// IconKind distinguishes the inline icon from the expanded composite.
type IconKind uint8

const (
	// IconInline is the small icon placed before the fallback glyph.
	IconInline IconKind = iota
	// IconComposite is the separator plus icon placed after the full match.
	IconComposite
)

// String returns the lowercase name of the kind.
func (k IconKind) String() string {
	if k == IconComposite {
		return "composite"
	}
	return "inline"
}

// MarshalText implements encoding.TextMarshaler.
func (k IconKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *IconKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "inline":
		*k = IconInline
	case "composite":
		*k = IconComposite
	default:
		return zerr.With(ErrInvalidEnum, "kind", string(text))
	}
	return nil
}

// IconPlacement instructs the host to insert a visual at Anchor.
type IconPlacement struct {
	MatchIndex int      `json:"matchIndex"`
	EmojiID    string   `json:"emojiId"`
	Kind       IconKind `json:"kind"`
	Anchor     Position `json:"anchor"`
	// AnchorOffset is the byte offset of Anchor.
	AnchorOffset int `json:"anchorOffset"`
	// Asset is the data URI of the icon, empty for skeletons.
	Asset    string `json:"asset,omitempty"`
	Skeleton bool   `json:"skeleton"`
	// Separator is set on composites, which draw a separator mark before the icon.
	Separator bool `json:"separator"`
	// Width is the display width, in cells, of the glyph the icon stands for.
	Width int `json:"width"`
}

// HoverStatus describes what a hover can show.
type HoverStatus uint8

const (
	// HoverPreview means the decoded image is available.
	HoverPreview HoverStatus = iota
	// HoverLoading means a resolution is still in flight.
	HoverLoading
	// HoverUnavailable means resolution failed.
	HoverUnavailable
	// HoverNotConfigured means no fetch capability is configured.
	HoverNotConfigured
)

// String returns the lowercase name of the status.
func (s HoverStatus) String() string {
	switch s {
	case HoverLoading:
		return "loading"
	case HoverUnavailable:
		return "unavailable"
	case HoverNotConfigured:
		return "not-configured"
	default:
		return "preview"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s HoverStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *HoverStatus) UnmarshalText(text []byte) error {
	for _, candidate := range []HoverStatus{HoverPreview, HoverLoading, HoverUnavailable, HoverNotConfigured} {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}
	return zerr.With(ErrInvalidEnum, "status", string(text))
}

// Hover is the structured hover payload of one match.
type Hover struct {
	MatchIndex int         `json:"matchIndex"`
	Range      Range       `json:"range"`
	EmojiID    string      `json:"emojiId"`
	Fallback   *string     `json:"fallback"`
	Asset      string      `json:"asset,omitempty"`
	Size       int         `json:"size"`
	Status     HoverStatus `json:"status"`
	Markdown   string      `json:"markdown"`
}

// DecorationSet is the output of one render pass.
// States and Hovers are index-aligned with the rendered matches.
type DecorationSet struct {
	States     []MatchState    `json:"states"`
	Icons      []IconPlacement `json:"icons"`
	Hidden     []Range         `json:"hidden"`
	Highlights []Range         `json:"highlights"`
	Hovers     []Hover         `json:"hovers"`
}

// Pending reports whether any match is still resolving.
func (d DecorationSet) Pending() bool {
	for _, s := range d.States {
		if s == StateResolving {
			return true
		}
	}
	for _, h := range d.Hovers {
		if h.Status == HoverLoading {
			return true
		}
	}
	return false
}
