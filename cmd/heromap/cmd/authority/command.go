// Package authority implements the authority command.
package authority

import (
	"cmp"
	"slices"

	"github.com/spf13/cobra"

	"github.com/agentstation/heromap/cmd/application"
	"github.com/agentstation/heromap/internal/cmd/cmdutil"
	"github.com/agentstation/heromap/internal/cmd/output"
	"github.com/agentstation/heromap/internal/cmd/table"
	"github.com/agentstation/heromap/pkg/authority"
	"github.com/agentstation/heromap/pkg/errors"
	"github.com/agentstation/heromap/pkg/sources"
)

// NewCommand creates the authority command.
func NewCommand(app application.Application) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:     "authority [field-pattern]",
		GroupID: "inspect",
		Short:   "Show which sources supply each canonical field",
		Long: `Authority prints the source precedence used when merging, one line per
field and source, highest priority first. A pattern such as "ranking.*"
limits the output to matching fields.`,
		Example: `  heromap authority
  heromap authority description
  heromap authority "ranking.*" --source marvelApi`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := authority.New().List()

			if len(args) == 1 {
				var matched []authority.Field
				for _, f := range fields {
					if authority.MatchesPattern(f.Path, args[0]) {
						matched = append(matched, f)
					}
				}
				fields = matched
			}

			if source != "" {
				st := sources.Type(source)
				if !st.IsValid() {
					return errors.NewValidationError("source", source, "unknown source")
				}
				fields = authority.FilterBySource(fields, st)
			}

			fields = sortByChain(fields)

			format := cmdutil.Format(app)
			if output.IsTable(format) {
				return output.FormatAny(cmd.OutOrStdout(), table.AuthoritiesToTableData(fields), format)
			}
			if fields == nil {
				fields = []authority.Field{}
			}
			return output.FormatAny(cmd.OutOrStdout(), fields, format)
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "Only show entries of this source")

	return cmd
}

// sortByChain keeps fields in first-seen order, each one ordered as its
// merge chain, highest priority first.
func sortByChain(fields []authority.Field) []authority.Field {
	order := make(map[string]int)
	for _, f := range fields {
		if _, ok := order[f.Path]; !ok {
			order[f.Path] = len(order)
		}
	}
	sorted := slices.Clone(fields)
	slices.SortStableFunc(sorted, func(a, b authority.Field) int {
		if c := cmp.Compare(order[a.Path], order[b.Path]); c != 0 {
			return c
		}
		return cmp.Compare(b.Priority, a.Priority)
	})
	return sorted
}
