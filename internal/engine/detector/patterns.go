package detector

import (
	"regexp"
	"slices"

	"go.trai.ch/emojilens/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// PatternPaired is the name of the paired tag scanner.
	PatternPaired = "paired"
	// PatternSelfClosing is the name of the self-closing tag scanner.
	PatternSelfClosing = "self-closing"
	// PatternMarkdown is the name of the Telegram markdown link scanner.
	PatternMarkdown = "markdown"
)

// Pattern is one independent scanner.
// The group fields are submatch indexes into Expr; a negative Fallback means
// the form carries no fallback glyph.
type Pattern struct {
	Name string
	Expr *regexp.Regexp

	ID            int
	Attr          int
	AttrWithSpace int
	Fallback      int
}

var (
	paired = Pattern{
		Name:          PatternPaired,
		Expr:          regexp.MustCompile(`(?i)<tg-emoji(\s+(emoji[-_]id=["'](\d+)["'])\s*)>([^<]*)</tg-emoji>`),
		AttrWithSpace: 1,
		Attr:          2,
		ID:            3,
		Fallback:      4,
	}

	selfClosing = Pattern{
		Name:          PatternSelfClosing,
		Expr:          regexp.MustCompile(`(?i)<tg-emoji(\s+(emoji[-_]id=["'](\d+)["'])\s*)/>`),
		AttrWithSpace: 1,
		Attr:          2,
		ID:            3,
		Fallback:      -1,
	}

	// ![👍](tg://emoji?id=5368324170671202286)
	markdown = Pattern{
		Name:          PatternMarkdown,
		Expr:          regexp.MustCompile(`!\[([^\[\]\n]*)\](\((tg://emoji\?id=(\d+))\))`),
		Fallback:      1,
		AttrWithSpace: 2,
		Attr:          3,
		ID:            4,
	}
)

// Builtin returns the scanners that are always enabled, in precedence order.
func Builtin() []Pattern {
	return []Pattern{paired, selfClosing}
}

// Optional returns the names of the scanners that can be enabled by name.
func Optional() []string {
	return []string{PatternMarkdown}
}

// Lookup returns the optional scanner registered under name.
func Lookup(name string) (Pattern, error) {
	switch name {
	case PatternMarkdown:
		return markdown, nil
	}
	err := zerr.With(domain.ErrUnknownPattern, "pattern", name)
	return Pattern{}, zerr.With(err, "known", Optional())
}

// Named resolves a list of optional scanner names, skipping duplicates and
// names of built-in scanners.
func Named(names []string) ([]Pattern, error) {
	var out []Pattern
	seen := make([]string, 0, len(names))
	for _, name := range names {
		if name == PatternPaired || name == PatternSelfClosing || slices.Contains(seen, name) {
			continue
		}
		p, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		seen = append(seen, name)
		out = append(out, p)
	}
	return out, nil
}

func group(loc []int, g int) (start, end int, ok bool) {
	if g < 0 || 2*g+1 >= len(loc) || loc[2*g] < 0 {
		return 0, 0, false
	}
	return loc[2*g], loc[2*g+1], true
}
