package sink

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/emojilens/internal/core/domain"
	"go.trai.ch/emojilens/internal/core/ports"
	"go.trai.ch/emojilens/internal/ui/output"
	"go.trai.ch/emojilens/internal/ui/style"
	"go.trai.ch/zerr"
)

var _ ports.DecorationSink = (*Terminal)(nil)

// Terminal renders the decorated document as text: hidden ranges are dropped,
// icons are drawn at their anchors and highlights are underlined.
// A legend with one line per match follows the document.
type Terminal struct {
	mu  sync.Mutex
	out *termenv.Output
}

// NewTerminal creates a terminal sink using the shared colour profile rules.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{out: output.New(w)}
}

// NewTerminalWithProfile creates a terminal sink with a fixed colour profile.
func NewTerminalWithProfile(w io.Writer, profile termenv.Profile) *Terminal {
	return &Terminal{out: output.NewWithProfile(w, profile)}
}

// Publish renders one pass.
func (t *Terminal) Publish(uri, text string, matches []domain.EmojiMatch, set domain.DecorationSet) error {
	var b strings.Builder

	b.WriteString(t.paint("» "+uri, style.Slate).String())
	b.WriteByte('\n')
	t.renderDocument(&b, text, set)
	if !strings.HasSuffix(text, "\n") {
		b.WriteByte('\n')
	}
	for _, h := range set.Hovers {
		t.renderLegend(&b, matches, h)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := t.out.WriteString(b.String()); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPublishFailed.Error()), "uri", uri)
	}
	return nil
}

func (t *Terminal) renderDocument(b *strings.Builder, text string, set domain.DecorationSet) {
	clamp := func(off int) int { return max(0, min(off, len(text))) }

	points := []int{0, len(text)}
	for _, r := range set.Hidden {
		points = append(points, clamp(r.StartOffset), clamp(r.EndOffset))
	}
	for _, r := range set.Highlights {
		points = append(points, clamp(r.StartOffset), clamp(r.EndOffset))
	}
	icons := make(map[int][]domain.IconPlacement, len(set.Icons))
	for _, icon := range set.Icons {
		at := clamp(icon.AnchorOffset)
		icons[at] = append(icons[at], icon)
		points = append(points, at)
	}
	slices.Sort(points)
	points = slices.Compact(points)

	for i, p := range points {
		for _, icon := range icons[p] {
			b.WriteString(t.renderIcon(icon, startsAt(set.Highlights, p)))
		}
		if i+1 == len(points) {
			break
		}
		next := points[i+1]
		if covered(set.Hidden, p, next) {
			continue
		}
		segment := text[p:next]
		if covered(set.Highlights, p, next) {
			b.WriteString(t.paint(segment, style.Iris).Underline().String())
			continue
		}
		b.WriteString(segment)
	}
}

func (t *Terminal) renderIcon(icon domain.IconPlacement, highlighted bool) string {
	width := max(icon.Width, 1)

	var glyph termenv.Style
	if icon.Skeleton || icon.Asset == "" {
		glyph = t.paint(strings.Repeat(style.Skeleton, width), style.Yellow)
	} else {
		glyph = t.paint(style.Icon+strings.Repeat(" ", width-1), style.Green)
	}

	if highlighted {
		glyph = glyph.Underline()
	}
	if icon.Separator {
		return t.paint(style.Separator, style.Slate).String() + glyph.String()
	}
	return glyph.String()
}

func (t *Terminal) renderLegend(b *strings.Builder, matches []domain.EmojiMatch, h domain.Hover) {
	var mark termenv.Style
	switch h.Status {
	case domain.HoverPreview:
		mark = t.paint(style.Check, style.Green)
	case domain.HoverLoading:
		mark = t.paint(style.Skeleton, style.Yellow)
	case domain.HoverNotConfigured:
		mark = t.paint(style.Warning, style.Yellow)
	default:
		mark = t.paint(style.Cross, style.Red)
	}

	fallback := "-"
	if h.Fallback != nil {
		fallback = *h.Fallback
	}
	pattern := ""
	if h.MatchIndex >= 0 && h.MatchIndex < len(matches) && matches[h.MatchIndex].Pattern != "" {
		pattern = " " + t.paint("("+matches[h.MatchIndex].Pattern+")", style.Slate).String()
	}

	fmt.Fprintf(b, "  %s %d:%d %s %s%s\n",
		mark, h.Range.Start.Line+1, h.Range.Start.Character+1, h.EmojiID, fallback, pattern)
}

func (t *Terminal) paint(s string, color lipgloss.Color) termenv.Style {
	return t.out.String(s).Foreground(t.out.Color(string(color)))
}

// startsAt reports whether one of ranges starts at offset.
func startsAt(ranges []domain.Range, offset int) bool {
	for _, r := range ranges {
		if r.StartOffset == offset {
			return true
		}
	}
	return false
}

// covered reports whether [start, end) lies inside one of ranges.
func covered(ranges []domain.Range, start, end int) bool {
	for _, r := range ranges {
		if r.StartOffset <= start && end <= r.EndOffset {
			return true
		}
	}
	return false
}
