package table

import (
	"strconv"

	"github.com/agentstation/heromap/pkg/authority"
	"github.com/agentstation/heromap/pkg/reconciler"
	"github.com/agentstation/heromap/pkg/types"
)

// MatchToTableData converts a resolution outcome to a key-value table.
func MatchToTableData(name, key string, pick types.PickType, ambiguous []string) Data {
	return Data{
		Headers: []string{"Property", "Value"},
		Rows: [][]string{
			{"Character", name},
			{"Catalog Key", OrDash(key)},
			{"Pick Type", pick.String()},
			{"Ambiguous", JoinList(ambiguous, 0)},
		},
	}
}

// AuthoritiesToTableData converts source precedence entries to table format.
func AuthoritiesToTableData(fields []authority.Field) Data {
	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, []string{f.Path, f.Source.String(), strconv.Itoa(f.Priority), string(f.When)})
	}
	return Data{
		Headers:         []string{"Field", "Source", "Priority", "When"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignRight, AlignLeft},
	}
}

// ValidationToTableData lists the errors then the warnings of a validation.
func ValidationToTableData(result *reconciler.ValidationResult) Data {
	rows := make([][]string, 0, len(result.Errors)+len(result.Warnings))
	for _, e := range result.Errors {
		rows = append(rows, []string{"error", string(e.ResourceType), OrDash(e.ResourceID), e.Field, e.Message})
	}
	for _, w := range result.Warnings {
		rows = append(rows, []string{"warning", string(w.ResourceType), OrDash(w.ResourceID), w.Field, w.Message})
	}
	return Data{
		Headers: []string{"Level", "Resource", "ID", "Field", "Message"},
		Rows:    rows,
	}
}
