// Package cmdutil provides shared flags and helpers for heromap commands.
package cmdutil

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/agentstation/heromap/cmd/application"
	"github.com/agentstation/heromap/internal/cmd/output"
	"github.com/agentstation/heromap/pkg/logging"
	"github.com/agentstation/heromap/pkg/persistence"
	"github.com/agentstation/heromap/pkg/reconciler"
)

// SnapshotFlags holds the flags of commands that read a snapshot.
type SnapshotFlags struct {
	Input       string
	Concurrency int
	NoDedupe    bool
}

// AddSnapshotFlags adds snapshot flags to a command.
func AddSnapshotFlags(cmd *cobra.Command) *SnapshotFlags {
	flags := &SnapshotFlags{}

	cmd.Flags().StringVarP(&flags.Input, "input", "i", "",
		"Snapshot directory or file (default from config)")
	cmd.Flags().IntVarP(&flags.Concurrency, "concurrency", "c", 0,
		"Bundles resolved and merged in parallel (default from config)")
	cmd.Flags().BoolVar(&flags.NoDedupe, "no-dedupe", false,
		"Keep wiki pages that describe the same character apart")

	return flags
}

// AddInputFlags adds only the --input flag, for commands that do not run a consolidation.
func AddInputFlags(cmd *cobra.Command) *SnapshotFlags {
	flags := &SnapshotFlags{}

	cmd.Flags().StringVarP(&flags.Input, "input", "i", "",
		"Snapshot directory or file (default from config)")

	return flags
}

// Options returns the reconciler options set explicitly by the flags.
func (f *SnapshotFlags) Options() []reconciler.Option {
	var opts []reconciler.Option
	if f.Concurrency > 0 {
		opts = append(opts, reconciler.WithConcurrency(f.Concurrency))
	}
	if f.NoDedupe {
		opts = append(opts, reconciler.WithDeduplication(false))
	}
	return opts
}

// InputPath returns the flag value or the configured input path.
func (f *SnapshotFlags) InputPath(app application.Application) string {
	return FirstNonEmpty(f.Input, app.InputPath())
}

// Load reads the snapshot selected by the flags.
func (f *SnapshotFlags) Load(app application.Application) (*reconciler.Input, error) {
	path := f.InputPath(app)
	app.Logger().Debug().Str("path", path).Msg("Loading snapshot")
	return persistence.Load(path)
}

// Context returns the command context carrying the application logger.
func Context(cmd *cobra.Command, app application.Application) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logging.WithLogger(ctx, app.Logger())
}

// Format returns the output format of the application, detected from the
// terminal when unset.
func Format(app application.Application) output.Format {
	return output.DetectFormat(app.OutputFormat())
}

// FirstNonEmpty returns the first non-empty value.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
