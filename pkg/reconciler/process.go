package reconciler

import (
	"fmt"

	"github.com/sourcegraph/conc/iter"

	"github.com/agentstation/heromap/pkg/characters"
	"github.com/agentstation/heromap/pkg/logging"
	"github.com/agentstation/heromap/pkg/merge"
	"github.com/agentstation/heromap/pkg/resolver"
	"github.com/agentstation/heromap/pkg/sources"
	"github.com/agentstation/heromap/pkg/types"
)

// marvelCatalogs are the two Marvel-sourced catalogs a character is resolved
// against, independently of each other.
type marvelCatalogs struct {
	api     *resolver.Catalog[*characters.MarvelAPIData]
	website *resolver.Catalog[*characters.MarvelWebsiteData]
}

// match describes how one Marvel source ended up on a bundle.
type match struct {
	pick        types.PickType
	preattached bool
	resolved    bool
	ambiguous   []string
}

// outcome is the result of processing one bundle.
type outcome struct {
	bundle   *characters.Bundle
	record   *characters.Record
	api      match
	website  match
	warnings []string
	err      error
}

// process resolves and merges every bundle. Bundles are independent, so they
// are handled in parallel; outcomes keep the order of bundles.
func (r *reconciler) process(rctx *runContext, bundles []*characters.Bundle) []outcome {
	cats := rctx.collector.catalogs()

	rctx.logger.Info().
		Int("bundle_count", len(bundles)).
		Int("marvel_api_entries", cats.api.Len()).
		Int("marvel_website_entries", cats.website.Len()).
		Msg("Resolving identities")

	mapper := iter.Mapper[*characters.Bundle, outcome]{MaxGoroutines: r.concurrency}
	return mapper.Map(bundles, func(b **characters.Bundle) outcome {
		return r.processBundle(rctx, cats, *b)
	})
}

func (r *reconciler) processBundle(rctx *runContext, cats *marvelCatalogs, b *characters.Bundle) outcome {
	o := outcome{bundle: b.Clone()}
	character := wikiCharacter(b)
	ctx := logging.WithCharacter(rctx.ctx, b.WikipediaURL)
	logger := logging.FromContext(ctx)

	if character.Name == "" && (cats.api.Len() > 0 || cats.website.Len() > 0) {
		o.warnings = append(o.warnings, fmt.Sprintf("character %s: no wiki name, identity resolution skipped", b.WikipediaURL))
	}

	if b.MarvelAPI != nil {
		o.api = match{pick: b.MarvelAPI.PickType, preattached: true}
	} else if character.Name != "" && cats.api.Len() > 0 {
		m := resolver.Resolve(character, cats.api)
		o.api = match{pick: m.Type, resolved: true, ambiguous: m.Ambiguous}
		if m.Found() && m.Record != nil {
			record := *m.Record
			record.PickType = m.Type
			o.bundle.MarvelAPI = &record
		}
	}

	if b.MarvelWebsite != nil {
		o.website = match{pick: b.MarvelWebsite.PickType, preattached: true}
	} else if character.Name != "" && cats.website.Len() > 0 {
		m := resolver.Resolve(character, cats.website)
		o.website = match{pick: m.Type, resolved: true, ambiguous: m.Ambiguous}
		if m.Found() && m.Record != nil {
			record := *m.Record
			record.PickType = m.Type
			o.bundle.MarvelWebsite = &record
		}
	}

	for _, am := range []struct {
		source sources.Type
		m      match
	}{{sources.MarvelAPI, o.api}, {sources.MarvelWebsite, o.website}} {
		if len(am.m.ambiguous) == 0 {
			continue
		}
		logging.FromContext(logging.WithSource(ctx, am.source.String())).Warn().
			Str("name", character.Name).
			Strs("candidates", am.m.ambiguous).
			Msg("Ambiguous secret identity, no match attached")
		o.warnings = append(o.warnings, fmt.Sprintf("character %s: ambiguous %s match %v", b.WikipediaURL, am.source, am.m.ambiguous))
	}

	logger.Debug().
		Str("name", character.Name).
		Str("api_pick", o.api.pick.String()).
		Str("website_pick", o.website.pick.String()).
		Msg("Resolved identity")

	o.record, o.err = merge.Tracked(o.bundle, rctx.tracker)
	return o
}

// wikiCharacter is the wiki-side identity of a bundle used for resolution.
func wikiCharacter(b *characters.Bundle) resolver.Character {
	return resolver.Character{
		Name:             b.WikiName(),
		Aliases:          merge.Aliases(b),
		SecretIdentities: merge.SecretIdentities(b),
	}
}
