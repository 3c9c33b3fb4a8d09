package table

import (
	"strconv"

	"github.com/agentstation/heromap/pkg/reconciler"
	"github.com/agentstation/heromap/pkg/sources"
)

// StatsToTableData converts run statistics to a per-source table.
// Input holds the record counts of the snapshot and may be nil.
func StatsToTableData(stats *reconciler.Stats, input map[sources.Type]int) Data {
	headers := []string{"Source", "Records", "Bundles", "Matched", "Preattached", "Pick Types"}

	rows := make([][]string, 0, len(sources.Types()))
	for _, source := range sources.Types() {
		records := "-"
		if input != nil {
			records = strconv.Itoa(input[source])
		}

		matched, preattached, picks := "-", "-", "-"
		if source.IsMarvel() {
			matched = strconv.Itoa(stats.Matched(source))
			preattached = strconv.Itoa(stats.Preattached[source])
			picks = formatPicks(stats, source)
		}

		rows = append(rows, []string{
			source.String(),
			records,
			strconv.Itoa(stats.Coverage[source]),
			matched,
			preattached,
			picks,
		})
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight, AlignLeft},
	}
}

// SummaryToTableData converts the run totals to a key-value table.
func SummaryToTableData(result *reconciler.Result) Data {
	return Data{
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{"Bundles", strconv.Itoa(result.Stats.BundlesIn)},
			{"Duplicates collapsed", strconv.Itoa(result.Stats.DuplicatesCollapsed)},
			{"Records", strconv.Itoa(result.Stats.RecordsOut)},
			{"Ambiguous", strconv.Itoa(result.Stats.Ambiguous)},
			{"Warnings", strconv.Itoa(len(result.Warnings))},
			{"Concurrency", strconv.Itoa(result.Metadata.Concurrency)},
			{"Duration", result.Metadata.Duration.String()},
		},
		ColumnAlignment: []Align{AlignLeft, AlignRight},
	}
}

func formatPicks(stats *reconciler.Stats, source sources.Type) string {
	picks := stats.PickTypes(source)
	if len(picks) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(picks))
	for _, pick := range picks {
		parts = append(parts, pick.String()+"="+strconv.Itoa(stats.Matches[source][pick]))
	}
	return JoinList(parts, 0)
}
