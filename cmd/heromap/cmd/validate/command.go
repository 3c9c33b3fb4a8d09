// Package validate implements the validate command.
package validate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/heromap/cmd/application"
	"github.com/agentstation/heromap/internal/cmd/cmdutil"
	"github.com/agentstation/heromap/internal/cmd/output"
	"github.com/agentstation/heromap/internal/cmd/table"
	"github.com/agentstation/heromap/pkg/errors"
	"github.com/agentstation/heromap/pkg/reconciler"
)

// NewCommand creates the validate command.
func NewCommand(app application.Application) *cobra.Command {
	var snapshot *cmdutil.SnapshotFlags

	cmd := &cobra.Command{
		Use:     "validate",
		GroupID: "inspect",
		Short:   "Check the join keys of a snapshot",
		Long: `Validate loads a snapshot and checks that every record can be joined:
wiki records need a Wikipedia URL, Marvel catalog entries a display name,
and pre-joined bundles a URL of their own.

Missing data inside a record is never a validation error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := snapshot.Load(app)
			if err != nil {
				return err
			}

			result := reconciler.ValidateInput(input)

			format := cmdutil.Format(app)
			if output.IsTable(format) {
				if len(result.Errors)+len(result.Warnings) > 0 {
					if err := output.FormatAny(cmd.OutOrStdout(), table.ValidationToTableData(result), format); err != nil {
						return err
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), result.String())
			} else if err := output.FormatAny(cmd.OutOrStdout(), result, format); err != nil {
				return err
			}

			if !result.IsValid() {
				return errors.NewValidationError("snapshot", snapshot.InputPath(app), result.String())
			}
			return nil
		},
	}

	snapshot = cmdutil.AddInputFlags(cmd)

	return cmd
}
