// Package merge builds the canonical record of a character from its Bundle.
//
// Every field is computed by its own getter, which walks the field's chain in
// the authority table and stops at the first source that has a usable value;
// list fields take the union of their chain instead. Getters are pure functions
// of the Bundle and never modify it, so Merge is deterministic.
package merge

import (
	"github.com/agentstation/heromap/pkg/authority"
	"github.com/agentstation/heromap/pkg/characters"
	"github.com/agentstation/heromap/pkg/provenance"
	"github.com/agentstation/heromap/pkg/sources"
	"github.com/agentstation/heromap/pkg/types"
)

// Merge computes the canonical record of a bundle. The only failure is a
// bundle without its Wikipedia URL.
func Merge(b *characters.Bundle) (*characters.Record, error) {
	return build(b, nil)
}

// Tracked is Merge with every contributing source recorded in tracker under
// "character:<wikipediaUrl>:<field>".
func Tracked(b *characters.Bundle, tracker provenance.Tracker) (*characters.Record, error) {
	if tracker == nil || !tracker.Enabled() {
		return build(b, nil)
	}
	return build(b, func(path string, f authority.Field, pick types.PickType, value any) {
		tracker.Track(types.ResourceTypeCharacter, b.WikipediaURL, path, provenance.Provenance{
			Source:   f.Source,
			Field:    path,
			Value:    value,
			PickType: pick,
			Priority: f.Priority,
			Reason:   reason(f),
		})
	})
}

func build(b *characters.Bundle, rec recorder) (*characters.Record, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	return &characters.Record{
		Name:             name(b, rec),
		Description:      description(b, rec),
		Thumbnail:        thumbnail(b, rec),
		BackgroundImage:  backgroundImage(b, rec),
		MainColor:        mainColor(b, rec),
		Aliases:          aliases(b, rec),
		Authors:          authors(b, rec),
		Teams:            teams(b, rec),
		SecretIdentities: secretIdentities(b, rec),
		Species:          species(b, rec),
		Partners:         partners(b, rec),
		Powers:           powers(b, rec),
		URLs:             urls(b, rec),
		Ranking:          ranking(b, rec),
	}, nil
}

// recorder receives each source that contributed to a field. A nil recorder
// discards everything.
type recorder func(path string, f authority.Field, pick types.PickType, value any)

func (r recorder) record(path string, f authority.Field, pick types.PickType, value any) {
	if r != nil {
		r(path, f, pick, value)
	}
}

func reason(f authority.Field) string {
	switch f.When {
	case authority.Specific:
		return "specific match"
	case authority.RealNameOnly:
		return "matched by real name"
	default:
		return "fallback"
	}
}

// usable reports whether the chain entry can be consulted for this bundle.
func usable(b *characters.Bundle, f authority.Field) (types.PickType, bool) {
	pick := b.PickType(f.Source)
	return pick, b.Has(f.Source) && f.Applies(pick)
}

// first walks the chain of path and returns the first value a source has.
func first[T any](b *characters.Bundle, path string, value func(sources.Type) (T, bool), rec recorder) (T, bool) {
	for _, f := range authority.Chain(path) {
		pick, ok := usable(b, f)
		if !ok {
			continue
		}
		if v, ok := value(f.Source); ok {
			rec.record(path, f, pick, v)
			return v, true
		}
	}
	var zero T
	return zero, false
}

// union concatenates the lists of every source in the chain of path, keeping
// the first value for each key and dropping empty strings. The result is never nil.
func union(b *characters.Bundle, path string, values func(sources.Type) []string, key func(string) string, transform func(string) string, rec recorder) []string {
	out := make([]string, 0)
	seen := make(map[string]struct{})

	for _, f := range authority.Chain(path) {
		pick, ok := usable(b, f)
		if !ok {
			continue
		}

		var added []string
		for _, v := range values(f.Source) {
			if v == "" {
				continue
			}
			k := key(v)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			added = append(added, transform(v))
		}
		if len(added) > 0 {
			out = append(out, added...)
			rec.record(path, f, pick, added)
		}
	}
	return out
}

func identity(s string) string { return s }
