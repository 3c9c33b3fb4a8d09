// Package resolve implements the resolve command.
package resolve

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/heromap/cmd/application"
	"github.com/agentstation/heromap/internal/cmd/cmdutil"
	"github.com/agentstation/heromap/internal/cmd/output"
	"github.com/agentstation/heromap/internal/cmd/table"
	"github.com/agentstation/heromap/pkg/errors"
	"github.com/agentstation/heromap/pkg/matcher"
	"github.com/agentstation/heromap/pkg/persistence"
	"github.com/agentstation/heromap/pkg/resolver"
	"github.com/agentstation/heromap/pkg/types"
)

// Flags holds the resolve specific flags.
type Flags struct {
	Catalog          string
	Aliases          []string
	SecretIdentities []string
	KeyFilter        string
	KeyFilterType    string
}

// Result is the structured output of the resolve command.
type Result struct {
	Character resolver.Character `json:"character" yaml:"character"`
	Key       string             `json:"key,omitempty" yaml:"key,omitempty"`
	PickType  types.PickType     `json:"pickType" yaml:"pickType"`
	Ambiguous []string           `json:"ambiguous,omitempty" yaml:"ambiguous,omitempty"`
	Record    map[string]any     `json:"record,omitempty" yaml:"record,omitempty"`
}

// NewCommand creates the resolve command.
func NewCommand(app application.Application) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "resolve <wiki name>",
		GroupID: "core",
		Short:   "Resolve a wiki character name against a Marvel catalog",
		Long: `Resolve finds the Marvel catalog entry describing a wiki character.

The catalog is a YAML or JSON object keyed by Marvel display name, such as
the marvelApi or marvelWebsite file of a snapshot. Aliases and secret
identities help pick the right variant among entries sharing a super name.`,
		Example: `  heromap resolve "Black Widow" --catalog data/marvelApi.json
  heromap resolve "Iron Man" --catalog data/marvelWebsite.yaml --secret-identity "Tony Stark"
  heromap resolve "Hulk" --catalog data/marvelApi.json --keys "Hulk (" --keys-type prefix`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, flags, args[0])
		},
	}

	cmd.Flags().StringVar(&flags.Catalog, "catalog", "", "Catalog file keyed by Marvel display name")
	cmd.Flags().StringSliceVar(&flags.Aliases, "alias", nil, "Known alias of the character (repeatable)")
	cmd.Flags().StringSliceVar(&flags.SecretIdentities, "secret-identity", nil, "Known secret identity of the character (repeatable)")
	cmd.Flags().StringVar(&flags.KeyFilter, "keys", "", "Only consider catalog keys matching this pattern")
	cmd.Flags().StringVar(&flags.KeyFilterType, "keys-type", "exact", "Key pattern type: exact, prefix, suffix, loose")
	_ = cmd.MarkFlagRequired("catalog")

	return cmd
}

func run(cmd *cobra.Command, app application.Application, flags *Flags, name string) error {
	entries, err := persistence.LoadCatalog[map[string]any](flags.Catalog)
	if err != nil {
		return err
	}

	if flags.KeyFilter != "" {
		entries, err = filterKeys(entries, flags.KeyFilterType, flags.KeyFilter)
		if err != nil {
			return err
		}
	}

	character := resolver.Character{
		Name:             name,
		Aliases:          flags.Aliases,
		SecretIdentities: flags.SecretIdentities,
	}
	match := resolver.Resolve(character, resolver.NewCatalog(entries))

	app.Logger().Debug().
		Str("name", name).
		Str("key", match.Key).
		Str("pick_type", match.Type.String()).
		Int("catalog_size", len(entries)).
		Msg("Resolved character")

	format := cmdutil.Format(app)
	if output.IsTable(format) {
		return output.FormatAny(cmd.OutOrStdout(), table.MatchToTableData(name, match.Key, match.Type, match.Ambiguous), format)
	}
	return output.FormatAny(cmd.OutOrStdout(), Result{
		Character: character,
		Key:       match.Key,
		PickType:  match.Type,
		Ambiguous: match.Ambiguous,
		Record:    match.Record,
	}, format)
}

func filterKeys(entries map[string]map[string]any, typeName, pattern string) (map[string]map[string]any, error) {
	patternType, err := matcher.ParsePatternType(typeName)
	if err != nil {
		return nil, errors.WrapValidation("keys-type", err)
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	kept, err := matcher.FilterStrings(patternType, pattern, keys...)
	if err != nil {
		return nil, errors.WrapValidation("keys", err)
	}

	filtered := make(map[string]map[string]any, len(kept))
	for _, k := range kept {
		filtered[k] = entries[k]
	}
	return filtered, nil
}
