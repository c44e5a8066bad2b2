package decorator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/emojilens/internal/core/domain"
	"go.trai.ch/emojilens/internal/engine/decorator"
)

func TestHoverMarkdown(t *testing.T) {
	t.Parallel()

	glyph := "😀"
	pipe := "a|b"
	tests := []struct {
		name string
		in   domain.Hover
		want string
	}{
		{
			name: "preview",
			in: domain.Hover{
				EmojiID: "1", Fallback: &glyph, Asset: "data:image/png;base64,AA", Size: 128,
				Status: domain.HoverPreview,
			},
			want: "<img src=\"data:image/png;base64,AA\" width=\"128\" height=\"128\"/>\n\n" +
				"**Telegram Custom Emoji**\n\n" +
				"| Property | Value |\n|:--|:--|\n" +
				"| ID | `1` |\n" +
				"| Fallback | 😀 |\n" +
				"| Type | Premium Emoji |",
		},
		{
			name: "loading",
			in:   domain.Hover{EmojiID: "2", Status: domain.HoverLoading},
			want: "**Telegram Custom Emoji**\n\n" +
				"⏳ Loading preview\n\n" +
				"| Property | Value |\n|:--|:--|\n" +
				"| ID | `2` |\n" +
				"| Fallback | none |",
		},
		{
			name: "unavailable",
			in:   domain.Hover{EmojiID: "3", Fallback: &pipe, Status: domain.HoverUnavailable},
			want: "**Telegram Custom Emoji**\n\n" +
				"⚠️ Could not load preview\n\n" +
				"| Property | Value |\n|:--|:--|\n" +
				"| ID | `3` |\n" +
				"| Fallback | a\\|b |\n\n" +
				"*Failed to fetch from Telegram API*",
		},
		{
			name: "not configured",
			in:   domain.Hover{EmojiID: "4", Status: domain.HoverNotConfigured},
			want: "**Telegram Custom Emoji**\n\n" +
				"⚠️ Could not load preview\n\n" +
				"| Property | Value |\n|:--|:--|\n" +
				"| ID | `4` |\n" +
				"| Fallback | none |\n\n" +
				"*Configure `botToken` to enable previews*",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, decorator.HoverMarkdown(tt.in))
		})
	}
}
