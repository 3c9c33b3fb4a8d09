package output

import (
	"io"

	"github.com/agentstation/heromap/internal/cmd/table"
	"github.com/agentstation/heromap/pkg/characters"
	"github.com/agentstation/heromap/pkg/provenance"
	"github.com/agentstation/heromap/pkg/reconciler"
)

// IsTable reports whether the format renders a table.
func IsTable(format Format) bool {
	switch format {
	case FormatTable, FormatWide, "":
		return true
	default:
		return false
	}
}

// FormatRecords writes canonical records as a table or as the raw records.
func FormatRecords(w io.Writer, records []*characters.Record, format Format) error {
	var data any = records
	if IsTable(format) {
		data = table.RecordsToTableData(records, format == FormatWide)
	}
	return NewFormatter(format).Format(w, data)
}

// FormatResult writes the totals of a run, or the whole result minus the
// records and bundles for structured formats.
func FormatResult(w io.Writer, result *reconciler.Result, format Format) error {
	if IsTable(format) {
		return NewFormatter(format).Format(w, table.SummaryToTableData(result))
	}
	return NewFormatter(format).Format(w, struct {
		Metadata reconciler.ResultMetadata `json:"metadata" yaml:"metadata"`
		Stats    reconciler.Stats          `json:"stats" yaml:"stats"`
		Warnings []string                  `json:"warnings" yaml:"warnings"`
	}{result.Metadata, result.Stats, result.Warnings})
}

// FormatProvenance writes the field provenance of one record.
func FormatProvenance(w io.Writer, fields map[string][]provenance.Provenance, format Format) error {
	var data any = fields
	if IsTable(format) {
		data = table.ProvenanceToTableData(fields)
	}
	return NewFormatter(format).Format(w, data)
}

// FormatAny formats any data type for output.
func FormatAny(w io.Writer, data any, format Format) error {
	return NewFormatter(format).Format(w, data)
}
