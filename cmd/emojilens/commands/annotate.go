package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/emojilens/internal/app"
)

// addRenderFlags registers the flags shared by annotate and watch.
func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "text", "Output format: text or json")
	cmd.Flags().IntP("cursor", "l", 0, "1-based line to render expanded, 0 for none")
}

func (c *CLI) renderOptions(cmd *cobra.Command, paths []string) app.RenderOptions {
	format, _ := cmd.Flags().GetString("format")
	cursor, _ := cmd.Flags().GetInt("cursor")

	return app.RenderOptions{
		Config:     c.configOptions(),
		Paths:      paths,
		Format:     format,
		CursorLine: max(cursor, 0) - 1,
		Out:        cmd.OutOrStdout(),
	}
}

func (c *CLI) newAnnotateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "annotate <file>...",
		Short: "Render the emoji decorations of documents once",
		Long: "Detects every <tg-emoji> tag, resolves its asset through the cache " +
			"and prints the decorated documents.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Annotate(cmd.Context(), c.renderOptions(cmd, args))
		},
	}
	addRenderFlags(cmd)
	return cmd
}

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file>...",
		Short: "Re-render documents whenever they or the config change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			progressive, _ := cmd.Flags().GetBool("progressive")
			return c.app.Watch(cmd.Context(), app.WatchOptions{
				RenderOptions: c.renderOptions(cmd, args),
				Progressive:   progressive,
			})
		},
	}
	addRenderFlags(cmd)
	cmd.Flags().BoolP("progressive", "p", false, "Publish loading placeholders before assets resolve")
	return cmd
}
