// Package stats implements the stats command.
package stats

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/heromap/cmd/application"
	"github.com/agentstation/heromap/internal/cmd/alerts"
	"github.com/agentstation/heromap/internal/cmd/cmdutil"
	"github.com/agentstation/heromap/internal/cmd/output"
	"github.com/agentstation/heromap/internal/cmd/table"
	"github.com/agentstation/heromap/pkg/reconciler"
	"github.com/agentstation/heromap/pkg/sources"
)

// Report is the structured output of the stats command.
type Report struct {
	Records  map[sources.Type]int `json:"records" yaml:"records"`
	Stats    reconciler.Stats     `json:"stats" yaml:"stats"`
	Warnings []string             `json:"warnings" yaml:"warnings"`
}

// NewCommand creates the stats command.
func NewCommand(app application.Application) *cobra.Command {
	var snapshot *cmdutil.SnapshotFlags
	var showWarnings bool

	cmd := &cobra.Command{
		Use:     "stats",
		GroupID: "inspect",
		Short:   "Show match and coverage statistics for a snapshot",
		Long: `Stats consolidates a snapshot in memory, without writing anything,
and reports per source how many records were read, how many bundles carry
the source and how the Marvel catalogs were matched.`,
		Example: `  heromap stats
  heromap stats -i data --warnings
  heromap stats -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := snapshot.Load(app)
			if err != nil {
				return err
			}

			opts := append(snapshot.Options(), reconciler.WithProvenance(false))
			r, err := app.Reconciler(opts...)
			if err != nil {
				return err
			}

			result, err := r.Run(cmdutil.Context(cmd, app), input)
			if err != nil {
				return err
			}

			format := cmdutil.Format(app)
			if !output.IsTable(format) {
				return output.FormatAny(cmd.OutOrStdout(), Report{
					Records:  input.Counts(),
					Stats:    result.Stats,
					Warnings: result.Warnings,
				}, format)
			}

			if err := output.FormatAny(cmd.OutOrStdout(), table.StatsToTableData(&result.Stats, input.Counts()), format); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Summary())
			if showWarnings {
				return alerts.NewWriter(cmd.OutOrStdout(), app.NoColor()).Write(alerts.Warnings(result.Warnings, 0))
			}
			return nil
		},
	}

	snapshot = cmdutil.AddSnapshotFlags(cmd)
	cmd.Flags().BoolVarP(&showWarnings, "warnings", "w", false, "List the warnings of the run")

	return cmd
}
