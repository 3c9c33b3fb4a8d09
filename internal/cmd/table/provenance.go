package table

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/heromap/pkg/authority"
	"github.com/agentstation/heromap/pkg/provenance"
)

// ProvenanceToTableData converts the provenance of one record to table format.
// Shows all fields and their contributions in a single unified table.
func ProvenanceToTableData(fieldProvenance map[string][]provenance.Provenance) Data {
	var rows [][]string

	fields := make([]string, 0, len(fieldProvenance))
	for field := range fieldProvenance {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		history := append([]provenance.Provenance(nil), fieldProvenance[field]...)
		if len(history) == 0 {
			continue
		}
		sort.SliceStable(history, func(i, j int) bool {
			return history[i].Priority > history[j].Priority
		})

		for i, entry := range history {
			fieldName, current := "", ""
			if i == 0 {
				fieldName, current = field, "→"
			}

			rows = append(rows, []string{
				fieldName,
				current,
				formatValueAsYAML(entry.Value),
				string(entry.Source),
				OrDash(entry.PickType.String()),
				strconv.Itoa(entry.Priority),
				OrDash(entry.Reason),
			})
		}
	}

	return Data{
		Headers: []string{"Field", "Curr", "Value", "Source", "Pick Type", "Priority", "Reason"},
		Rows:    rows,
		ColumnAlignment: []Align{
			AlignLeft,   // Field
			AlignCenter, // Curr
			AlignLeft,   // Value
			AlignLeft,   // Source
			AlignLeft,   // Pick Type
			AlignRight,  // Priority
			AlignLeft,   // Reason
		},
	}
}

// MatchField checks if a field matches any of the provided patterns.
// Patterns follow authority.MatchesPattern and compare case-insensitively.
func MatchField(field string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	fieldLower := strings.ToLower(field)
	for _, pattern := range patterns {
		if authority.MatchesPattern(fieldLower, strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}

// FilterFields keeps the fields matching any pattern.
func FilterFields(fieldProvenance map[string][]provenance.Provenance, patterns []string) map[string][]provenance.Provenance {
	filtered := make(map[string][]provenance.Provenance, len(fieldProvenance))
	for field, history := range fieldProvenance {
		if MatchField(field, patterns) {
			filtered[field] = history
		}
	}
	return filtered
}

// formatValueAsYAML formats a provenance value for display.
// Lists and objects are rendered as compact YAML.
func formatValueAsYAML(val any) string {
	if val == nil {
		return "<nil>"
	}

	switch v := val.(type) {
	case string:
		if v == "" {
			return "<empty>"
		}
		return v
	case *string:
		if v == nil {
			return "<nil>"
		}
		return formatValueAsYAML(*v)
	case int, int64, uint64:
		return fmt.Sprintf("%d", v)
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%.2f", v)
	case bool:
		return strconv.FormatBool(v)
	}

	yamlBytes, err := yaml.MarshalWithOptions(val, yaml.Flow(true))
	if err != nil {
		return fmt.Sprintf("%v", val)
	}
	return strings.TrimSuffix(string(yamlBytes), "\n")
}
