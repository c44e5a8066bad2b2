package decorator

import (
	"fmt"
	"strings"

	"go.trai.ch/emojilens/internal/core/domain"
)

const hoverTitle = "**Telegram Custom Emoji**\n\n"

// HoverMarkdown renders the Markdown body of a hover payload.
func HoverMarkdown(h domain.Hover) string {
	var b strings.Builder

	switch h.Status {
	case domain.HoverPreview:
		fmt.Fprintf(&b, "<img src=\"%s\" width=\"%d\" height=\"%d\"/>\n\n", h.Asset, h.Size, h.Size)
		b.WriteString(hoverTitle)
		writeTable(&b, h)
		b.WriteString("| Type | Premium Emoji |")
		return b.String()
	case domain.HoverLoading:
		b.WriteString(hoverTitle)
		b.WriteString("⏳ Loading preview\n\n")
		writeTable(&b, h)
		return strings.TrimSuffix(b.String(), "\n")
	}

	b.WriteString(hoverTitle)
	b.WriteString("⚠️ Could not load preview\n\n")
	writeTable(&b, h)
	b.WriteString("\n")
	if h.Status == domain.HoverNotConfigured {
		b.WriteString("*Configure `botToken` to enable previews*")
	} else {
		b.WriteString("*Failed to fetch from Telegram API*")
	}
	return b.String()
}

func writeTable(b *strings.Builder, h domain.Hover) {
	fallback := "none"
	if h.Fallback != nil {
		fallback = strings.ReplaceAll(*h.Fallback, "|", `\|`)
		fallback = strings.ReplaceAll(fallback, "\n", " ")
	}
	b.WriteString("| Property | Value |\n|:--|:--|\n")
	fmt.Fprintf(b, "| ID | `%s` |\n", h.EmojiID)
	fmt.Fprintf(b, "| Fallback | %s |\n", fallback)
}
