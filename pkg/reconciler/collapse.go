package reconciler

import (
	"github.com/agentstation/heromap/pkg/characters"
	"github.com/agentstation/heromap/pkg/dedupe"
	"github.com/agentstation/heromap/pkg/logging"
)

// wikiRecord is the part of a bundle shared by every URL that redirects to
// the same wiki page.
type wikiRecord struct {
	Infobox  *characters.InfoboxData  `json:"infoboxData,omitempty"`
	DBpedia  *characters.DBpediaData  `json:"dbpediaData,omitempty"`
	Wikidata *characters.WikidataData `json:"wikidataData,omitempty"`
}

func (w wikiRecord) isEmpty() bool {
	return w.Infobox == nil && w.DBpedia == nil && w.Wikidata == nil
}

// collapse replaces each group of bundles with identical wiki records by its
// most viewed member, carrying the summed pageviews. Bundles without any wiki
// record are never grouped. Output order follows the input order.
func (r *reconciler) collapse(rctx *runContext, bundles []*characters.Bundle) ([]*characters.Bundle, error) {
	records := make([]dedupe.Record, 0, len(bundles))
	positions := make([]int, 0, len(bundles))

	for i, b := range bundles {
		wiki := wikiRecord{Infobox: b.Infobox, DBpedia: b.DBpedia, Wikidata: b.Wikidata}
		if wiki.isEmpty() {
			continue
		}
		record, err := dedupe.FromValue(b.WikipediaURL, wiki)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
		positions = append(positions, i)
	}

	groups, err := dedupe.Partition(records)
	if err != nil {
		return nil, err
	}

	replaced := make(map[int]*characters.Bundle)
	dropped := make(map[int]bool)

	for _, group := range groups {
		if !group.IsDuplicate() {
			continue
		}

		members := make([]dedupe.Member[int], 0, group.Size())
		for _, idx := range group.Indexes {
			pos := positions[idx]
			members = append(members, dedupe.Member[int]{
				URL:       bundles[pos].WikipediaURL,
				Pageviews: latest90(bundles[pos]),
				Data:      pos,
			})
		}

		kept := dedupe.Aggregate(members)
		for _, m := range members {
			if m.Data != kept.Data {
				dropped[m.Data] = true
			}
		}
		replaced[kept.Data] = withPageviews(bundles[kept.Data], kept.Pageviews)

		rctx.result.Stats.DuplicatesCollapsed += len(members) - 1
		logging.FromContext(logging.WithCharacter(rctx.ctx, kept.URL)).Debug().
			Strs("dropped", dedupe.Dropped(members, kept)).
			Int("pageviews", kept.Pageviews).
			Msg("Collapsed duplicate pages")
	}

	out := make([]*characters.Bundle, 0, len(bundles)-len(dropped))
	for i, b := range bundles {
		if dropped[i] {
			continue
		}
		if nb, ok := replaced[i]; ok {
			b = nb
		}
		out = append(out, b)
	}

	rctx.logger.Info().
		Int("duplicates_collapsed", rctx.result.Stats.DuplicatesCollapsed).
		Int("bundle_count", len(out)).
		Msg("Collapsed duplicate pages")

	return out, nil
}

func latest90(b *characters.Bundle) int {
	if b.Pageviews == nil {
		return 0
	}
	return b.Pageviews.Latest90
}

// withPageviews returns a copy of b whose pageview count is total.
func withPageviews(b *characters.Bundle, total int) *characters.Bundle {
	out := b.Clone()
	pv := characters.PageviewsData{}
	if b.Pageviews != nil {
		pv = *b.Pageviews
	}
	pv.Latest90 = total
	out.Pageviews = &pv
	return out
}
