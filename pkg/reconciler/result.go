package reconciler

import (
	"fmt"
	"sort"
	"time"

	"github.com/agentstation/utc"

	"github.com/agentstation/heromap/pkg/characters"
	"github.com/agentstation/heromap/pkg/provenance"
	"github.com/agentstation/heromap/pkg/sources"
	"github.com/agentstation/heromap/pkg/types"
)

// Result represents the outcome of a consolidation run.
type Result struct {
	// Core data, sorted by Wikipedia URL
	Records []*characters.Record
	Bundles []*characters.Bundle

	// Metadata
	Metadata ResultMetadata

	// Statistics about the run
	Stats Stats

	// Provenance tracking, nil unless enabled
	Provenance provenance.Map

	// Issues
	Warnings []string
}

// ResultMetadata contains metadata about the run.
type ResultMetadata struct {
	// StartTime when the run started
	StartTime utc.Time `json:"startTime" yaml:"startTime"`

	// EndTime when the run completed
	EndTime utc.Time `json:"endTime" yaml:"endTime"`

	// Duration of the run
	Duration time.Duration `json:"duration" yaml:"duration"`

	// Concurrency used for resolving and merging
	Concurrency int `json:"concurrency" yaml:"concurrency"`

	// Deduplicated indicates whether duplicate pages were collapsed
	Deduplicated bool `json:"deduplicated" yaml:"deduplicated"`
}

// Stats contains statistics about the run.
type Stats struct {
	BundlesIn           int `json:"bundlesIn" yaml:"bundlesIn"`
	DuplicatesCollapsed int `json:"duplicatesCollapsed" yaml:"duplicatesCollapsed"`
	RecordsOut          int `json:"recordsOut" yaml:"recordsOut"`
	Ambiguous           int `json:"ambiguous" yaml:"ambiguous"`

	// Matches counts pick types per Marvel source, for resolved bundles only
	Matches map[sources.Type]map[types.PickType]int `json:"matches" yaml:"matches"`

	// Preattached counts Marvel records present on the input bundles
	Preattached map[sources.Type]int `json:"preattached" yaml:"preattached"`

	// Coverage counts joined bundles carrying each source
	Coverage map[sources.Type]int `json:"coverage" yaml:"coverage"`
}

// NewResult creates a new result with defaults.
func NewResult() *Result {
	return &Result{
		Warnings: []string{},
		Stats: Stats{
			Matches: map[sources.Type]map[types.PickType]int{
				sources.MarvelAPI:     {},
				sources.MarvelWebsite: {},
			},
			Preattached: make(map[sources.Type]int),
			Coverage:    make(map[sources.Type]int),
		},
		Metadata: ResultMetadata{
			StartTime: utc.Now(),
		},
	}
}

// Finalize calculates duration and marks completion.
func (r *Result) Finalize() {
	r.Metadata.EndTime = utc.Now()
	r.Metadata.Duration = r.Metadata.EndTime.Time.Sub(r.Metadata.StartTime.Time)
}

// HasWarnings returns true if the run reported warnings.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Summary returns a human-readable summary of the result.
func (r *Result) Summary() string {
	s := fmt.Sprintf("Consolidated %d bundles into %d records (%d duplicates collapsed, %d ambiguous)",
		r.Stats.BundlesIn, r.Stats.RecordsOut, r.Stats.DuplicatesCollapsed, r.Stats.Ambiguous)
	if r.HasWarnings() {
		s += fmt.Sprintf(", %d warnings", len(r.Warnings))
	}
	return s
}

// Matched returns how many bundles of a Marvel source were resolved to a record.
func (s *Stats) Matched(source sources.Type) int {
	total := 0
	for pick, n := range s.Matches[source] {
		if pick.Matched() {
			total += n
		}
	}
	return total
}

// PickTypes returns the pick types seen for a source, most specific first,
// with none last.
func (s *Stats) PickTypes(source sources.Type) []types.PickType {
	picks := make([]types.PickType, 0, len(s.Matches[source]))
	for pick := range s.Matches[source] {
		picks = append(picks, pick)
	}
	sort.Slice(picks, func(i, j int) bool {
		ri, rj := picks[i].Rank(), picks[j].Rank()
		if ri == 0 {
			ri = len(types.PickTypes()) + 1
		}
		if rj == 0 {
			rj = len(types.PickTypes()) + 1
		}
		if ri != rj {
			return ri < rj
		}
		return picks[i] < picks[j]
	})
	return picks
}

func (s *Stats) countCoverage(bundles []*characters.Bundle) {
	for _, b := range bundles {
		for _, source := range b.Sources() {
			s.Coverage[source]++
		}
	}
}

func (s *Stats) countOutcome(o outcome) {
	for source, m := range map[sources.Type]match{
		sources.MarvelAPI:     o.api,
		sources.MarvelWebsite: o.website,
	} {
		switch {
		case m.preattached:
			s.Preattached[source]++
		case m.resolved:
			s.Matches[source][m.pick]++
		}
		if len(m.ambiguous) > 0 {
			s.Ambiguous++
		}
	}
}
