package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.trai.ch/emojilens/internal/app"
	"go.trai.ch/emojilens/internal/ui/style"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and prune the emoji cache",
	}
	cmd.AddCommand(c.newCacheListCmd())
	cmd.AddCommand(c.newCacheRemoveCmd())
	cmd.AddCommand(c.newCacheClearCmd())
	return cmd
}

func (c *CLI) newCacheListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cached emoji",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, entries, err := c.app.CacheList(c.configOptions())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Dir     string               `json:"dir"`
					Entries []app.CacheEntryInfo `json:"entries"`
				}{Dir: dir, Entries: entries})
			}

			_, _ = fmt.Fprintf(out, "%s %s\n", style.Icon, dir)
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(out, "no cached emoji")
				return nil
			}
			_, _ = fmt.Fprintln(out, entriesTable(entries))
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Print the entries as JSON")
	return cmd
}

func entriesTable(entries []app.CacheEntryInfo) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		status := style.Check + " valid"
		if !e.Valid {
			status = style.Cross + " stale"
		}
		path := e.Path
		if path == "" {
			path = "-"
		}
		rows = append(rows, []string{e.EmojiID, e.CreatedAt.Format(time.DateTime), status, path})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("EMOJI", "CREATED", "STATUS", "ARTIFACT").
		Rows(rows...).
		String()
}

func (c *CLI) newCacheRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <emoji-id>...",
		Short: "Evict emoji from the cache",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.app.CacheRemove(c.configOptions(), args)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %d of %d emoji\n", n, len(args))
			return nil
		},
	}
}

func (c *CLI) newCacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Evict every emoji from the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := c.app.CacheClear(c.configOptions())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %d emoji\n", n)
			return nil
		},
	}
}
