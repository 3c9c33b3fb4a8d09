// Package resolver matches a character known from the wiki sources against a
// catalog of Marvel-sourced characters.
//
// Resolution tries progressively weaker rules and stops at the first one that
// succeeds:
//
//  1. exactMatch: a catalog key equals the full wiki name.
//  2. secretIdentity: exactly one "SuperName (RealName)" variant has a real
//     name loosely included in the character's secret identities or aliases.
//     Two or more such variants are ambiguous and resolve to none.
//  3. realName: for a plain wiki name, a catalog key ending in "(Name)".
//  4. looseMatch: for a "SuperName (RealName)" wiki name, a variant whose real
//     name loosely equals the wiki real name.
//  5. mainCharacterFallback: for a "SuperName (RealName)" wiki name, the
//     generic "SuperName" entry.
//
// Keys are scanned in sorted order, so a rule that takes the first match is
// deterministic.
package resolver

import (
	"github.com/agentstation/heromap/pkg/matcher"
	"github.com/agentstation/heromap/pkg/names"
	"github.com/agentstation/heromap/pkg/types"
)

// Character is the wiki-side view of a character used for resolution.
type Character struct {
	Name             string   `json:"name" yaml:"name"`
	Aliases          []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	SecretIdentities []string `json:"secretIdentities,omitempty" yaml:"secretIdentities,omitempty"`
}

// Match is the outcome of resolving one character against one catalog.
type Match[T any] struct {
	// Record is the matched catalog record, or the zero value for PickNone.
	Record T
	// Key is the catalog key that matched.
	Key string
	// Type is the confidence tag of the match.
	Type types.PickType
	// Ambiguous lists the variant keys that were rejected because more than
	// one of them was an acceptable secret identity.
	Ambiguous []string
}

// Found reports whether a catalog record was matched.
func (m Match[T]) Found() bool {
	return m.Type.Matched()
}

// IsAmbiguous reports whether resolution stopped on competing secret identities.
func (m Match[T]) IsAmbiguous() bool {
	return len(m.Ambiguous) > 0
}

// Resolve finds the catalog record describing character. It never fails: a
// character that cannot be matched, or matches ambiguously, yields PickNone.
func Resolve[T any](character Character, catalog *Catalog[T]) Match[T] {
	if character.Name == "" || catalog.Len() == 0 {
		return none[T]()
	}

	if m, ok := exactMatch(character, catalog); ok {
		return m
	}

	id := names.Parse(character.Name)
	variants := matcher.MustNew(matcher.Prefix, id.VariantPrefix()).MatchAll(catalog.Keys()...)

	m, ok := secretIdentity(character, catalog, variants)
	if ok || m.IsAmbiguous() {
		return m
	}

	if !id.HasRealName() {
		if m, ok := realName(id, catalog); ok {
			return m
		}
		return none[T]()
	}

	if m, ok := looseMatch(id, catalog, variants); ok {
		return m
	}
	if m, ok := mainCharacterFallback(id, catalog); ok {
		return m
	}
	return none[T]()
}

func none[T any]() Match[T] {
	return Match[T]{Type: types.PickNone}
}

func found[T any](catalog *Catalog[T], key string, pick types.PickType) Match[T] {
	record, _ := catalog.Get(key)
	return Match[T]{Record: record, Key: key, Type: pick}
}

func exactMatch[T any](character Character, catalog *Catalog[T]) (Match[T], bool) {
	if _, ok := catalog.Get(character.Name); !ok {
		return Match[T]{}, false
	}
	return found(catalog, character.Name, types.PickExactMatch), true
}

// secretIdentity accepts a variant only when it is the single one whose real
// name the character is known by. On ambiguity the returned Match is PickNone
// with the competing keys attached.
func secretIdentity[T any](character Character, catalog *Catalog[T], variants []string) (Match[T], bool) {
	known := make([]string, 0, len(character.SecretIdentities)+len(character.Aliases))
	known = append(known, character.SecretIdentities...)
	known = append(known, character.Aliases...)
	if len(known) == 0 {
		return Match[T]{}, false
	}

	var accepted []string
	for _, key := range variants {
		if matcher.IsLooselyIncluded(names.Parse(key).RealName, known) {
			accepted = append(accepted, key)
		}
	}

	switch len(accepted) {
	case 0:
		return Match[T]{}, false
	case 1:
		return found(catalog, accepted[0], types.PickSecretIdentity), true
	default:
		m := none[T]()
		m.Ambiguous = accepted
		return m, false
	}
}

func realName[T any](id names.Identity, catalog *Catalog[T]) (Match[T], bool) {
	key := matcher.MustNew(matcher.Suffix, id.RealNameSuffix()).MatchFirst(catalog.Keys()...)
	if key == "" {
		return Match[T]{}, false
	}
	return found(catalog, key, types.PickRealName), true
}

func looseMatch[T any](id names.Identity, catalog *Catalog[T], variants []string) (Match[T], bool) {
	for _, key := range variants {
		if matcher.IsLooselyEqualEither(names.Parse(key).RealName, id.RealName) {
			return found(catalog, key, types.PickLooseMatch), true
		}
	}
	return Match[T]{}, false
}

func mainCharacterFallback[T any](id names.Identity, catalog *Catalog[T]) (Match[T], bool) {
	if _, ok := catalog.Get(id.SuperName); !ok {
		return Match[T]{}, false
	}
	return found(catalog, id.SuperName, types.PickMainCharacterFallback), true
}
