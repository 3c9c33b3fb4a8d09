// Package authority holds the per-field source precedence used to build a
// canonical character record. Each canonical field has its own chain of
// sources, walked from the highest priority down until one supplies a value.
package authority

import (
	"path/filepath"
	"sort"

	"github.com/agentstation/heromap/pkg/sources"
	"github.com/agentstation/heromap/pkg/types"
)

// When restricts a Field to records matched with certain pick types.
// Sources without a pick type, such as the wiki sources, always satisfy it.
type When string

const (
	// Any accepts every pick type.
	Any When = "any"
	// Specific rejects records matched through mainCharacterFallback.
	Specific When = "specific"
	// RealNameOnly accepts only records matched through realName.
	RealNameOnly When = "realName"
)

// Field paths of the canonical record.
const (
	PathName             = "name"
	PathDescription      = "description"
	PathThumbnail        = "thumbnail"
	PathBackgroundImage  = "backgroundImage"
	PathMainColor        = "mainColor"
	PathAliases          = "aliases"
	PathAuthors          = "authors"
	PathTeams            = "teams"
	PathSecretIdentities = "secretIdentities"
	PathSpecies          = "species"
	PathPartners         = "partners"
	PathPowers           = "powers"
	PathMarvelURL        = "urls.marvel"
	PathComicCount       = "ranking.comicCount"
	PathEventCount       = "ranking.eventCount"
	PathStoryCount       = "ranking.storyCount"
	PathSerieCount       = "ranking.serieCount"
	PathPageviewCount    = "ranking.pageviewCount"
)

// Authority determines which sources may supply each field, and in which order.
type Authority interface {
	// Find returns the highest priority entry for a field
	Find(fieldPath string) *Field

	// Chain returns every entry for a field, highest priority first
	Chain(fieldPath string) []Field

	// List returns all entries
	List() []Field
}

// Field defines the priority of one source for one field.
type Field struct {
	Path     string       `json:"path" yaml:"path"`         // e.g. "description", "ranking.comicCount"
	Source   sources.Type `json:"source" yaml:"source"`     // Which source supplies the value
	Priority int          `json:"priority" yaml:"priority"` // Priority (higher = tried first)
	When     When         `json:"when" yaml:"when"`         // Pick types the entry applies to
}

// Applies reports whether the entry may be used for a record matched with pick.
func (f Field) Applies(pick types.PickType) bool {
	switch f.When {
	case Specific:
		return !pick.IsGeneric()
	case RealNameOnly:
		return pick == types.PickRealName
	default:
		return true
	}
}

// authorities provides the standard character field authorities
type authorities struct {
	fields []Field
}

// New creates an Authority with the standard character configuration.
func New() Authority {
	return &authorities{fields: defaultCharacterAuthorities()}
}

// Find returns the highest priority entry for a field
func (a *authorities) Find(fieldPath string) *Field {
	return ByField(fieldPath, a.fields)
}

// Chain returns every entry for a field, highest priority first
func (a *authorities) Chain(fieldPath string) []Field {
	return chain(fieldPath, a.fields)
}

// List returns a copy of all entries
func (a *authorities) List() []Field {
	out := make([]Field, len(a.fields))
	copy(out, a.fields)
	return out
}

// Chain returns the standard chain for a field, highest priority first.
func Chain(fieldPath string) []Field {
	return chain(fieldPath, defaultCharacterAuthorities())
}

// Sources returns the sources of the standard chain for a field, in order.
func Sources(fieldPath string) []sources.Type {
	fields := Chain(fieldPath)
	out := make([]sources.Type, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.Source)
	}
	return out
}

func chain(fieldPath string, fields []Field) []Field {
	var matched []Field
	for _, f := range fields {
		if MatchesPattern(fieldPath, f.Path) {
			matched = append(matched, f)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Priority > matched[j].Priority
	})
	return matched
}

// ByField returns the highest priority authority for a given field path
func ByField(fieldPath string, authorities []Field) *Field {
	var bestMatch *Field
	var bestPriority int
	var bestMatchLength int

	for i, auth := range authorities {
		if MatchesPattern(fieldPath, auth.Path) {
			// Prioritize by: 1) priority, 2) pattern specificity (length), 3) order
			patternLength := len(auth.Path)
			if bestMatch == nil || auth.Priority > bestPriority ||
				(auth.Priority == bestPriority && patternLength > bestMatchLength) {
				bestMatch = &authorities[i]
				bestPriority = auth.Priority
				bestMatchLength = patternLength
			}
		}
	}

	return bestMatch
}

// MatchesPattern checks if a field path matches a pattern (supports * wildcards)
func MatchesPattern(fieldPath, pattern string) bool {
	// Handle exact matches
	if fieldPath == pattern {
		return true
	}

	// Handle simple wildcard at the end
	if len(pattern) > 0 && pattern[len(pattern)-1] == '*' {
		prefix := pattern[:len(pattern)-1]
		return len(fieldPath) >= len(prefix) && fieldPath[:len(prefix)] == prefix
	}

	// Handle filepath.Match patterns
	matched, err := filepath.Match(pattern, fieldPath)
	if err != nil {
		return false
	}
	return matched
}

// FilterBySource returns only the authorities for a specific source
func FilterBySource(authorities []Field, sourceType sources.Type) []Field {
	var filtered []Field
	for _, auth := range authorities {
		if auth.Source == sourceType {
			filtered = append(filtered, auth)
		}
	}
	return filtered
}

// defaultCharacterAuthorities returns the field authorities for characters.
// A fresh slice is built on every call.
func defaultCharacterAuthorities() []Field {
	return []Field{
		// Name - wiki first, unless the Marvel API entry was found by real name
		{Path: PathName, Source: sources.MarvelAPI, Priority: 100, When: RealNameOnly},
		{Path: PathName, Source: sources.Infobox, Priority: 90, When: Any},
		{Path: PathName, Source: sources.DBpedia, Priority: 80, When: Any},

		// Description - Marvel for the specific variant, wiki, then generic Marvel
		{Path: PathDescription, Source: sources.MarvelAPI, Priority: 100, When: Specific},
		{Path: PathDescription, Source: sources.MarvelWebsite, Priority: 90, When: Specific},
		{Path: PathDescription, Source: sources.Infobox, Priority: 80, When: Any},
		{Path: PathDescription, Source: sources.DBpedia, Priority: 70, When: Any},
		{Path: PathDescription, Source: sources.MarvelAPI, Priority: 60, When: Any},
		{Path: PathDescription, Source: sources.MarvelWebsite, Priority: 50, When: Any},

		// Thumbnail - Marvel artwork for the variant, page image, then generic artwork
		{Path: PathThumbnail, Source: sources.MarvelWebsite, Priority: 100, When: Specific},
		{Path: PathThumbnail, Source: sources.MarvelAPI, Priority: 90, When: Specific},
		{Path: PathThumbnail, Source: sources.Image, Priority: 80, When: Any},
		{Path: PathThumbnail, Source: sources.MarvelWebsite, Priority: 70, When: Any},
		{Path: PathThumbnail, Source: sources.MarvelAPI, Priority: 60, When: Any},

		// Website only
		{Path: PathBackgroundImage, Source: sources.MarvelWebsite, Priority: 100, When: Any},
		{Path: PathMainColor, Source: sources.MarvelWebsite, Priority: 100, When: Any},

		// Lists - union in priority order; the infobox records no teams or species
		{Path: PathAliases, Source: sources.Infobox, Priority: 100, When: Any},
		{Path: PathAliases, Source: sources.DBpedia, Priority: 90, When: Any},
		{Path: PathAliases, Source: sources.Wikidata, Priority: 80, When: Any},
		{Path: PathAuthors, Source: sources.Infobox, Priority: 100, When: Any},
		{Path: PathAuthors, Source: sources.DBpedia, Priority: 90, When: Any},
		{Path: PathTeams, Source: sources.DBpedia, Priority: 90, When: Any},
		{Path: PathSecretIdentities, Source: sources.Infobox, Priority: 100, When: Any},
		{Path: PathSecretIdentities, Source: sources.DBpedia, Priority: 90, When: Any},
		{Path: PathSpecies, Source: sources.DBpedia, Priority: 90, When: Any},
		{Path: PathPartners, Source: sources.Infobox, Priority: 100, When: Any},
		{Path: PathPartners, Source: sources.DBpedia, Priority: 90, When: Any},

		// Powers - DBpedia spelling wins on case-insensitive duplicates
		{Path: PathPowers, Source: sources.DBpedia, Priority: 100, When: Any},
		{Path: PathPowers, Source: sources.Infobox, Priority: 90, When: Any},

		// Links
		{Path: PathMarvelURL, Source: sources.MarvelWebsite, Priority: 100, When: Any},
		{Path: PathMarvelURL, Source: sources.MarvelAPI, Priority: 90, When: Any},

		// Ranking - appearance counters from the API, popularity from pageviews
		{Path: PathPageviewCount, Source: sources.Pageviews, Priority: 100, When: Any},
		{Path: PathComicCount, Source: sources.MarvelAPI, Priority: 100, When: Any},
		{Path: PathEventCount, Source: sources.MarvelAPI, Priority: 100, When: Any},
		{Path: PathStoryCount, Source: sources.MarvelAPI, Priority: 100, When: Any},
		{Path: PathSerieCount, Source: sources.MarvelAPI, Priority: 100, When: Any},
	}
}
