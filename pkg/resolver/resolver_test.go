package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/heromap/pkg/types"
)

type entry struct {
	X int
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name          string
		character     Character
		catalog       map[string]entry
		wantType      types.PickType
		wantKey       string
		wantAmbiguous []string
	}{
		{
			name:      "exact match",
			character: Character{Name: "Thor"},
			catalog:   map[string]entry{"Thor": {X: 1}},
			wantType:  types.PickExactMatch,
			wantKey:   "Thor",
		},
		{
			name:      "exact match wins over variants",
			character: Character{Name: "Thor", Aliases: []string{"Donald Blake"}},
			catalog:   map[string]entry{"Thor": {X: 1}, "Thor (Donald Blake)": {X: 2}},
			wantType:  types.PickExactMatch,
			wantKey:   "Thor",
		},
		{
			name:      "secret identity",
			character: Character{Name: "Abomination", SecretIdentities: []string{"Emil Blonsky"}},
			catalog:   map[string]entry{"Abomination (Emil Blonsky)": {X: 1}},
			wantType:  types.PickSecretIdentity,
			wantKey:   "Abomination (Emil Blonsky)",
		},
		{
			name:      "secret identity through aliases",
			character: Character{Name: "Abomination", Aliases: []string{"Emil Blonsky"}},
			catalog:   map[string]entry{"Abomination (Emil Blonsky)": {X: 1}},
			wantType:  types.PickSecretIdentity,
			wantKey:   "Abomination (Emil Blonsky)",
		},
		{
			name:      "secret identity with missing middle name",
			character: Character{Name: "Spider-Man", SecretIdentities: []string{"Peter Benjamin Parker"}},
			catalog:   map[string]entry{"Spider-Man (Peter Parker)": {X: 1}, "Spider-Man (Miles Morales)": {X: 2}},
			wantType:  types.PickSecretIdentity,
			wantKey:   "Spider-Man (Peter Parker)",
		},
		{
			name:      "ambiguous secret identity",
			character: Character{Name: "Baron Zemo", SecretIdentities: []string{"Helmut Zemo", "Heinrich Zemo"}},
			catalog: map[string]entry{
				"Baron Zemo (Helmut Zemo)":   {},
				"Baron Zemo (Heinrich Zemo)": {},
			},
			wantType:      types.PickNone,
			wantAmbiguous: []string{"Baron Zemo (Heinrich Zemo)", "Baron Zemo (Helmut Zemo)"},
		},
		{
			name:      "ambiguity stops resolution",
			character: Character{Name: "Baron Zemo", SecretIdentities: []string{"Helmut Zemo", "Heinrich Zemo"}},
			catalog: map[string]entry{
				"Baron Zemo (Helmut Zemo)":   {},
				"Baron Zemo (Heinrich Zemo)": {},
				"Helmut Zemo (Baron Zemo)":   {X: 3},
			},
			wantType:      types.PickNone,
			wantAmbiguous: []string{"Baron Zemo (Heinrich Zemo)", "Baron Zemo (Helmut Zemo)"},
		},
		{
			name:      "real name",
			character: Character{Name: "Emil Blonsky"},
			catalog:   map[string]entry{"Abomination (Emil Blonsky)": {X: 1}},
			wantType:  types.PickRealName,
			wantKey:   "Abomination (Emil Blonsky)",
		},
		{
			name:      "real name takes first sorted key",
			character: Character{Name: "Thor"},
			catalog:   map[string]entry{"Thor Girl (Thor)": {X: 2}, "Lady (Thor)": {X: 1}},
			wantType:  types.PickRealName,
			wantKey:   "Lady (Thor)",
		},
		{
			name:      "real name not tried for parenthesized names",
			character: Character{Name: "Hulk (Bruce Banner)"},
			catalog:   map[string]entry{"Green Scar (Hulk (Bruce Banner))": {X: 1}},
			wantType:  types.PickNone,
		},
		{
			name:      "loose match",
			character: Character{Name: "Spider-Man (Peter Parker)"},
			catalog:   map[string]entry{"Spider-Man (Peter Benjamin Parker)": {X: 1}, "Spider-Man": {X: 2}},
			wantType:  types.PickLooseMatch,
			wantKey:   "Spider-Man (Peter Benjamin Parker)",
		},
		{
			name:      "loose match in the other direction",
			character: Character{Name: "Captain America (Steven Grant Rogers)"},
			catalog:   map[string]entry{"Captain America (Steven Rogers)": {X: 1}},
			wantType:  types.PickLooseMatch,
			wantKey:   "Captain America (Steven Rogers)",
		},
		{
			name:      "main character fallback",
			character: Character{Name: "Black Widow (Claire Voyant)"},
			catalog:   map[string]entry{"Black Widow": {X: 1}},
			wantType:  types.PickMainCharacterFallback,
			wantKey:   "Black Widow",
		},
		{
			name:      "fallback ignores unrelated variants",
			character: Character{Name: "Black Widow (Claire Voyant)"},
			catalog:   map[string]entry{"Black Widow": {X: 1}, "Black Widow (Natasha Romanoff)": {X: 2}},
			wantType:  types.PickMainCharacterFallback,
			wantKey:   "Black Widow",
		},
		{
			name:      "fallback not tried for plain names",
			character: Character{Name: "Widow"},
			catalog:   map[string]entry{"Black Widow": {X: 1}},
			wantType:  types.PickNone,
		},
		{
			name:      "no match",
			character: Character{Name: "Squirrel Girl"},
			catalog:   map[string]entry{"Thor": {X: 1}},
			wantType:  types.PickNone,
		},
		{
			name:      "empty name",
			character: Character{},
			catalog:   map[string]entry{"": {X: 1}},
			wantType:  types.PickNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := NewCatalog(tt.catalog)
			got := Resolve(tt.character, catalog)

			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantKey, got.Key)
			assert.Equal(t, tt.wantAmbiguous, got.Ambiguous)
			if tt.wantKey != "" {
				assert.Equal(t, tt.catalog[tt.wantKey], got.Record)
				assert.True(t, got.Found())
			} else {
				assert.Equal(t, entry{}, got.Record)
				assert.False(t, got.Found())
			}
		})
	}
}

func TestResolveExactMatchRecord(t *testing.T) {
	got := Resolve(Character{Name: "Thor"}, NewCatalog(map[string]map[string]int{"Thor": {"x": 1}}))
	require.Equal(t, types.PickExactMatch, got.Type)
	assert.Equal(t, 1, got.Record["x"])
}

func TestResolveNilCatalog(t *testing.T) {
	got := Resolve[entry](Character{Name: "Thor"}, nil)
	assert.Equal(t, types.PickNone, got.Type)
	assert.False(t, got.IsAmbiguous())
}

func TestResolveIsDeterministic(t *testing.T) {
	entries := map[string]entry{}
	for _, k := range []string{"Hawk (Thor)", "Bolt (Thor)", "Axe (Thor)", "Cloud (Thor)", "Drum (Thor)"} {
		entries[k] = entry{}
	}
	catalog := NewCatalog(entries)

	for i := 0; i < 20; i++ {
		got := Resolve(Character{Name: "Thor"}, catalog)
		assert.Equal(t, "Axe (Thor)", got.Key)
	}
}

func TestCatalog(t *testing.T) {
	source := map[string]entry{"b": {X: 2}, "a": {X: 1}}
	c := NewCatalog(source)
	source["c"] = entry{X: 3}

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"a", "b"}, c.Keys())

	v, ok := c.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, v.X)

	_, ok = c.Get("c")
	assert.False(t, ok)

	var nilCatalog *Catalog[entry]
	assert.Zero(t, nilCatalog.Len())
	assert.Nil(t, nilCatalog.Keys())
	_, ok = nilCatalog.Get("a")
	assert.False(t, ok)
}
