// Package provenance implements the provenance command.
package provenance

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/heromap/cmd/application"
	"github.com/agentstation/heromap/internal/cmd/cmdutil"
	"github.com/agentstation/heromap/internal/cmd/output"
	"github.com/agentstation/heromap/internal/cmd/table"
	"github.com/agentstation/heromap/pkg/errors"
	"github.com/agentstation/heromap/pkg/provenance"
	"github.com/agentstation/heromap/pkg/types"
)

// NewCommand creates the provenance command.
func NewCommand(app application.Application) *cobra.Command {
	var (
		file   string
		fields []string
	)

	cmd := &cobra.Command{
		Use:     "provenance [wikipedia-url]",
		GroupID: "inspect",
		Short:   "Show which source supplied each field of a record",
		Long: `Provenance reads the file written by "consolidate --provenance" and
shows, for one character, every source that contributed to each field.
Without a URL the full report is printed.`,
		Example: `  heromap provenance https://en.wikipedia.org/wiki/Hulk
  heromap provenance https://en.wikipedia.org/wiki/Hulk --fields "ranking.*"
  heromap provenance --file out/provenance.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cmdutil.FirstNonEmpty(file, app.ProvenancePath())
			if path == "" {
				return errors.NewValidationError("file", "", "no provenance file configured")
			}

			pf, err := provenance.Load(path)
			if err != nil {
				return err
			}
			if pf == nil {
				return errors.NewNotFoundError("provenance file", path)
			}

			if len(args) == 0 {
				fmt.Fprint(cmd.OutOrStdout(), provenance.GenerateReport(pf.Provenance).String())
				return nil
			}

			url := args[0]
			history := table.FilterFields(fieldsOf(pf.Provenance, url), fields)
			if len(history) == 0 {
				return errors.NewNotFoundError("character provenance", url)
			}
			return output.FormatProvenance(cmd.OutOrStdout(), history, cmdutil.Format(app))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Provenance file (default from config)")
	cmd.Flags().StringSliceVar(&fields, "fields", nil, "Only show fields matching these patterns")

	return cmd
}

// fieldsOf returns the provenance of one character keyed by field.
func fieldsOf(m provenance.Map, url string) map[string][]provenance.Provenance {
	out := make(map[string][]provenance.Provenance)
	for key, history := range m {
		resourceType, id, field, ok := provenance.SplitKey(key)
		if !ok || resourceType != types.ResourceTypeCharacter || id != url {
			continue
		}
		out[field] = history
	}
	return out
}
