// Package table converts heromap results into rows for tabular CLI output.
package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agentstation/heromap/internal/utils/ptr"
	"github.com/agentstation/heromap/pkg/characters"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// RecordsToTableData converts canonical records to table format.
func RecordsToTableData(records []*characters.Record, showDetails bool) Data {
	headers := []string{"Name", "Wikipedia", "Marvel", "Comics", "Pageviews"}
	align := []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignRight}
	if showDetails {
		headers = append(headers, "Aliases", "Teams", "Powers")
		align = append(align, AlignLeft, AlignLeft, AlignLeft)
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		row := []string{
			OrDash(r.DisplayName()),
			r.URLs.Wikipedia,
			OrDash(ptr.Deref(r.URLs.Marvel)),
			strconv.Itoa(r.Ranking.ComicCount),
			strconv.Itoa(r.Ranking.PageviewCount),
		}
		if showDetails {
			row = append(row,
				JoinList(r.Aliases, 3),
				JoinList(r.Teams, 3),
				JoinList(r.Powers, 3),
			)
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// OrDash returns s, or "-" when s is empty.
func OrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// JoinList joins up to limit items and reports how many were left out.
func JoinList(items []string, limit int) string {
	if len(items) == 0 {
		return "-"
	}
	if limit <= 0 || len(items) <= limit {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s (+%d)", strings.Join(items[:limit], ", "), len(items)-limit)
}
