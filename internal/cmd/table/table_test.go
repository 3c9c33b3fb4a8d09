package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/heromap/internal/utils/ptr"
	"github.com/agentstation/heromap/pkg/authority"
	"github.com/agentstation/heromap/pkg/characters"
	"github.com/agentstation/heromap/pkg/provenance"
	"github.com/agentstation/heromap/pkg/reconciler"
	"github.com/agentstation/heromap/pkg/sources"
	"github.com/agentstation/heromap/pkg/types"
)

func TestRecordsToTableData(t *testing.T) {
	records := []*characters.Record{
		{
			Name:    ptr.String("Hulk"),
			Aliases: []string{"Green Goliath", "Jade Giant", "Joe Fixit", "Mr. Fixit"},
			URLs: characters.URLs{
				Wikipedia: "https://en.wikipedia.org/wiki/Hulk",
				Marvel:    ptr.String("https://www.marvel.com/characters/hulk-bruce-banner"),
			},
			Ranking: characters.Ranking{ComicCount: 12, PageviewCount: 130},
		},
		nil,
		{URLs: characters.URLs{Wikipedia: "https://en.wikipedia.org/wiki/Nobody"}},
	}

	data := RecordsToTableData(records, false)
	assert.Len(t, data.Headers, 5)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, []string{
		"Hulk",
		"https://en.wikipedia.org/wiki/Hulk",
		"https://www.marvel.com/characters/hulk-bruce-banner",
		"12",
		"130",
	}, data.Rows[0])
	assert.Equal(t, "-", data.Rows[1][0])
	assert.Equal(t, "-", data.Rows[1][2])

	wide := RecordsToTableData(records, true)
	assert.Len(t, wide.Headers, 8)
	assert.Equal(t, "Green Goliath, Jade Giant, Joe Fixit (+1)", wide.Rows[0][5])
	assert.Equal(t, "-", wide.Rows[0][6])
}

func TestJoinList(t *testing.T) {
	assert.Equal(t, "-", JoinList(nil, 3))
	assert.Equal(t, "a, b", JoinList([]string{"a", "b"}, 3))
	assert.Equal(t, "a, b, c", JoinList([]string{"a", "b", "c"}, 0))
	assert.Equal(t, "a (+2)", JoinList([]string{"a", "b", "c"}, 1))
}

func TestStatsToTableData(t *testing.T) {
	stats := &reconciler.Stats{
		Matches: map[sources.Type]map[types.PickType]int{
			sources.MarvelAPI: {
				types.PickNone:                  1,
				types.PickExactMatch:            2,
				types.PickMainCharacterFallback: 1,
			},
			sources.MarvelWebsite: {},
		},
		Preattached: map[sources.Type]int{sources.MarvelAPI: 1},
		Coverage:    map[sources.Type]int{sources.Infobox: 4, sources.MarvelAPI: 4},
	}

	data := StatsToTableData(stats, map[sources.Type]int{sources.Infobox: 5})
	require.Len(t, data.Rows, len(sources.Types()))

	assert.Equal(t, []string{"infobox", "5", "4", "-", "-", "-"}, data.Rows[0])
	assert.Equal(t, []string{
		"marvelApi", "0", "4", "3", "1", "exactMatch=2, mainCharacterFallback=1, none=1",
	}, data.Rows[3])
	assert.Equal(t, "-", data.Rows[4][5])
}

func TestAuthoritiesToTableData(t *testing.T) {
	data := AuthoritiesToTableData(authority.Chain(authority.PathName))
	require.Len(t, data.Rows, 3)
	assert.Equal(t, []string{"name", "marvelApi", "100", "realName"}, data.Rows[0])
}

func TestValidationToTableData(t *testing.T) {
	result := &reconciler.ValidationResult{
		Errors:   []reconciler.ValidationError{{ResourceType: types.ResourceTypeCharacter, Field: "url", Message: "empty"}},
		Warnings: []reconciler.ValidationWarning{{ResourceType: types.ResourceTypeCharacter, ResourceID: "x", Field: "name", Message: "w"}},
	}
	data := ValidationToTableData(result)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, "error", data.Rows[0][0])
	assert.Equal(t, "-", data.Rows[0][2])
	assert.Equal(t, "warning", data.Rows[1][0])
}

func TestProvenanceToTableData(t *testing.T) {
	fields := map[string][]provenance.Provenance{
		"name": {
			{Source: sources.DBpedia, Value: "Hulk", Priority: 80},
			{Source: sources.Infobox, Value: "Hulk", Priority: 90, Reason: "specific match"},
		},
		"aliases": {
			{Source: sources.Infobox, Value: []string{"Green Goliath"}, Priority: 100},
		},
		"empty": nil,
	}

	data := ProvenanceToTableData(fields)
	require.Len(t, data.Rows, 3)
	assert.Equal(t, "aliases", data.Rows[0][0])
	assert.Contains(t, data.Rows[0][2], "Green Goliath")
	assert.Equal(t, []string{"name", "→", "Hulk", "infobox", "-", "90", "specific match"}, data.Rows[1])
	assert.Equal(t, "", data.Rows[2][0])
	assert.Equal(t, "dbpedia", data.Rows[2][3])
}

func TestMatchField(t *testing.T) {
	assert.True(t, MatchField("ranking.comicCount", nil))
	assert.True(t, MatchField("ranking.comicCount", []string{"ranking.*"}))
	assert.True(t, MatchField("ranking.comicCount", []string{"RANKING.COMICCOUNT"}))
	assert.False(t, MatchField("name", []string{"ranking.*"}))

	filtered := FilterFields(map[string][]provenance.Provenance{
		"name":               nil,
		"ranking.comicCount": nil,
	}, []string{"ranking.*"})
	assert.Len(t, filtered, 1)
	assert.Contains(t, filtered, "ranking.comicCount")
}
