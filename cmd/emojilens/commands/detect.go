package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/emojilens/internal/core/domain"
)

func (c *CLI) newDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect <file>...",
		Short: "List the emoji tags of documents without resolving them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := c.app.Detect(cmd.Context(), c.configOptions(), args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(out)
				enc.SetEscapeHTML(false)
				enc.SetIndent("", "  ")
				return enc.Encode(docs)
			}

			for _, doc := range docs {
				for _, m := range doc.Matches {
					_, _ = fmt.Fprintf(out, "%s:%d:%d\t%s\t%s\t%s\n",
						doc.URI, m.FullRange.Start.Line+1, m.FullRange.Start.Character+1,
						m.EmojiID, fallbackOrDash(m), m.Pattern)
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Print the matches as JSON")
	return cmd
}

func fallbackOrDash(m domain.EmojiMatch) string {
	if m.Fallback == nil {
		return "-"
	}
	return m.FallbackText()
}
