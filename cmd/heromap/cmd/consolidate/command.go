// Package consolidate implements the consolidate command.
package consolidate

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/heromap/cmd/application"
	"github.com/agentstation/heromap/internal/cmd/alerts"
	"github.com/agentstation/heromap/internal/cmd/cmdutil"
	"github.com/agentstation/heromap/internal/cmd/output"
	"github.com/agentstation/heromap/pkg/errors"
	"github.com/agentstation/heromap/pkg/persistence"
	"github.com/agentstation/heromap/pkg/provenance"
	"github.com/agentstation/heromap/pkg/reconciler"
	"github.com/agentstation/heromap/pkg/save"
)

// Flags holds the consolidate specific flags.
type Flags struct {
	Snapshot   *cmdutil.SnapshotFlags
	Output     string
	Provenance string
	SaveFormat string
	Force      bool
	DryRun     bool
}

// NewCommand creates the consolidate command.
func NewCommand(app application.Application) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "consolidate",
		GroupID: "core",
		Short:   "Merge a snapshot into canonical character records",
		Long: `Consolidate loads a snapshot of scraped records, joins them per
Wikipedia URL, collapses duplicate pages, resolves every character against
the Marvel catalogs and writes one canonical record per character.

The output file is only rewritten when its content changes.`,
		Example: `  heromap consolidate                               # Use the configured paths
  heromap consolidate -i data -O out/characters.json
  heromap consolidate --provenance out/provenance.yaml
  heromap consolidate --dry-run -o table            # Print records instead of saving`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app, flags)
		},
	}

	flags.Snapshot = cmdutil.AddSnapshotFlags(cmd)
	cmd.Flags().StringVarP(&flags.Output, "output", "O", "", "Records file (default from config)")
	cmd.Flags().StringVar(&flags.Provenance, "provenance", "", "Write field provenance to this YAML file")
	cmd.Flags().StringVar(&flags.SaveFormat, "save-format", "", "Records file format: json or yaml (default from extension)")
	cmd.Flags().BoolVar(&flags.Force, "force", false, "Rewrite the records file even when unchanged")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "Print the records instead of saving them")

	return cmd
}

func run(cmd *cobra.Command, app application.Application, flags *Flags) error {
	logger := app.Logger()

	snapshot, err := flags.Snapshot.Load(app)
	if err != nil {
		return err
	}

	provenancePath := cmdutil.FirstNonEmpty(flags.Provenance, app.ProvenancePath())
	opts := append(flags.Snapshot.Options(), reconciler.WithProvenance(provenancePath != "" && !flags.DryRun))

	r, err := app.Reconciler(opts...)
	if err != nil {
		return err
	}

	result, err := r.Run(cmdutil.Context(cmd, app), snapshot)
	if err != nil {
		return err
	}
	for _, w := range result.Warnings {
		logger.Debug().Str("warning", w).Msg("Consolidation warning")
	}

	format := cmdutil.Format(app)
	if flags.DryRun {
		return output.FormatRecords(cmd.OutOrStdout(), result.Records, format)
	}

	path := cmdutil.FirstNonEmpty(flags.Output, app.OutputPath())
	saveFormat, err := saveFormatFor(flags.SaveFormat, path)
	if err != nil {
		return err
	}

	saved, err := persistence.Save(result.Records,
		save.WithPath(path),
		save.WithFormat(saveFormat),
		save.WithForce(flags.Force),
	)
	if err != nil {
		return err
	}
	logger.Info().
		Str("path", saved.Path).
		Str("hash", saved.Hash).
		Bool("written", saved.Written).
		Int("records", saved.Count).
		Msg("Saved records")

	if provenancePath != "" {
		if err := provenance.Save(provenancePath, result.Provenance); err != nil {
			return err
		}
		logger.Info().Str("path", provenancePath).Int("entries", len(result.Provenance)).Msg("Saved provenance")
	}

	if output.IsTable(format) {
		status, notice := "unchanged", alerts.NewInfo
		if saved.Written {
			status, notice = "written", alerts.NewSuccess
		}
		w := alerts.NewWriter(cmd.ErrOrStderr(), app.NoColor())
		if err := w.Write(notice(fmt.Sprintf("%s (%s)", saved.Path, status)).WithDetails(result.Summary())); err != nil {
			return err
		}
		if err := w.Write(alerts.Warnings(result.Warnings, maxWarnings)); err != nil {
			return err
		}
	}
	return output.FormatResult(cmd.OutOrStdout(), result, format)
}

// maxWarnings caps the warnings listed after a table-mode run.
const maxWarnings = 10

// saveFormatFor resolves the records format from the flag or the file extension.
func saveFormatFor(flag, path string) (save.Format, error) {
	if flag != "" {
		f, err := save.ParseFormat(flag)
		if err != nil {
			return f, errors.WrapValidation("save-format", err)
		}
		return f, nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return save.FormatYAML, nil
	default:
		return save.FormatJSON, nil
	}
}
