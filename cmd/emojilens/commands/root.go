// Package commands implements the CLI commands for emojilens.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/emojilens/internal/app"
	"go.trai.ch/emojilens/internal/build"
)

// CLI represents the command line interface for emojilens.
type CLI struct {
	app     Application
	logs    LogSettings
	rootCmd *cobra.Command

	configPath string
	logJSON    bool
	verbose    bool
	trace      bool
}

// Application represents the application logic interface.
type Application interface {
	SetTrace(enabled bool)
	Annotate(ctx context.Context, opts app.RenderOptions) error
	Watch(ctx context.Context, opts app.WatchOptions) error
	Detect(ctx context.Context, cfg app.ConfigOptions, paths []string) ([]app.DocumentMatches, error)
	CacheList(cfg app.ConfigOptions) (string, []app.CacheEntryInfo, error)
	CacheRemove(cfg app.ConfigOptions, ids []string) (int, error)
	CacheClear(cfg app.ConfigOptions) (int, error)
}

// LogSettings is implemented by loggers whose output can be switched at runtime.
type LogSettings interface {
	SetJSON(enabled bool)
	SetVerbose(enabled bool)
}

// New creates a new CLI instance with the given app.
// logs may be nil, in which case the logging flags are accepted and ignored.
func New(a Application, logs LogSettings) *CLI {
	c := &CLI{
		app:  a,
		logs: logs,
	}

	rootCmd := &cobra.Command{
		Use:           "emojilens",
		Short:         "Preview Telegram custom emoji in text documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(*cobra.Command, []string) {
			c.applyGlobalFlags()
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "Config file (default: nearest emojilens.yaml)")
	flags.BoolVar(&c.logJSON, "log-json", false, "Write logs as JSON")
	flags.BoolVar(&c.verbose, "verbose", false, "Enable debug logging")
	flags.BoolVar(&c.trace, "trace", false, "Log emoji cache resolution spans")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newAnnotateCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newDetectCmd())
	rootCmd.AddCommand(c.newCacheCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) applyGlobalFlags() {
	if c.logs != nil {
		c.logs.SetJSON(c.logJSON)
		c.logs.SetVerbose(c.verbose)
	}
	c.app.SetTrace(c.trace)
}

func (c *CLI) configOptions() app.ConfigOptions {
	return app.ConfigOptions{Path: c.configPath}
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
