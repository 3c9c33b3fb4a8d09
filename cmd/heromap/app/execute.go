package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/agentstation/heromap/cmd/heromap/cmd/authority"
	"github.com/agentstation/heromap/cmd/heromap/cmd/consolidate"
	"github.com/agentstation/heromap/cmd/heromap/cmd/provenance"
	"github.com/agentstation/heromap/cmd/heromap/cmd/resolve"
	"github.com/agentstation/heromap/cmd/heromap/cmd/stats"
	"github.com/agentstation/heromap/cmd/heromap/cmd/validate"
	"github.com/agentstation/heromap/cmd/heromap/cmd/version"
	"github.com/agentstation/heromap/internal/cmd/output"
	"github.com/agentstation/heromap/pkg/errors"
)

// Execute runs the heromap CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "heromap",
		Short:   "Comic character consolidation CLI",
		Version: a.version,
		Long: `Heromap consolidates comic-book character records scraped from
Wikipedia, DBpedia, Wikidata and Marvel into one canonical record per
character.

It joins the per-source records of a snapshot, collapses wiki pages that
describe the same character, resolves each character against the Marvel
catalogs and merges every field according to a fixed source precedence.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "inspect",
		Title: "Inspection Commands:",
	})

	rootCmd.PersistentFlags().StringVar(&a.flags.Config, "config", "", "config file (default is $HOME/.heromap.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.flags.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&a.flags.Quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().BoolVar(&a.flags.NoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVarP(&a.flags.Format, "format", "o", "", "output format: table, json, yaml, wide")
	rootCmd.PersistentFlags().StringVar(&a.flags.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("heromap {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("config") {
		config, err := LoadConfig(a.flags.Config)
		if err != nil {
			return err
		}
		a.config = config
	}

	if _, err := output.ParseFormat(a.flags.Format); err != nil {
		return errors.WrapValidation("format", err)
	}

	a.config.UpdateFromFlags(a.flags)

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(consolidate.NewCommand(a))
	rootCmd.AddCommand(resolve.NewCommand(a))

	// Inspection commands
	rootCmd.AddCommand(stats.NewCommand(a))
	rootCmd.AddCommand(validate.NewCommand(a))
	rootCmd.AddCommand(authority.NewCommand(a))
	rootCmd.AddCommand(provenance.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(version.NewCommand(a))
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
