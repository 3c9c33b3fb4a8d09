package reconciler

import (
	"sort"

	"github.com/agentstation/heromap/pkg/characters"
	"github.com/agentstation/heromap/pkg/errors"
	"github.com/agentstation/heromap/pkg/resolver"
	"github.com/agentstation/heromap/pkg/sources"
)

// collector encapsulates the join of source records into bundles.
type collector struct {
	input *Input
	byURL map[string]*characters.Bundle
}

// newCollector creates a new collector.
func newCollector(input *Input) *collector {
	return &collector{
		input: input,
		byURL: make(map[string]*characters.Bundle),
	}
}

// bundles joins every wiki-side record on its Wikipedia URL and returns the
// bundles sorted by URL. Two records of the same source for one URL are a
// broken join and fail the run. Keys are checked by validateInput beforehand.
func (c *collector) bundles() ([]*characters.Bundle, error) {
	for _, b := range c.input.Bundles {
		if _, exists := c.byURL[b.WikipediaURL]; exists {
			return nil, errors.NewDuplicateKeyError("bundle", b.WikipediaURL)
		}
		c.byURL[b.WikipediaURL] = b.Clone()
	}

	if err := join(c, sources.Infobox, c.input.Infobox, func(b *characters.Bundle) **characters.InfoboxData { return &b.Infobox }); err != nil {
		return nil, err
	}
	if err := join(c, sources.DBpedia, c.input.DBpedia, func(b *characters.Bundle) **characters.DBpediaData { return &b.DBpedia }); err != nil {
		return nil, err
	}
	if err := join(c, sources.Wikidata, c.input.Wikidata, func(b *characters.Bundle) **characters.WikidataData { return &b.Wikidata }); err != nil {
		return nil, err
	}
	if err := join(c, sources.Image, c.input.Image, func(b *characters.Bundle) **characters.ImageData { return &b.Image }); err != nil {
		return nil, err
	}
	if err := join(c, sources.Pageviews, c.input.Pageviews, func(b *characters.Bundle) **characters.PageviewsData { return &b.Pageviews }); err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(c.byURL))
	for url := range c.byURL {
		urls = append(urls, url)
	}
	sort.Strings(urls)

	out := make([]*characters.Bundle, 0, len(urls))
	for _, url := range urls {
		out = append(out, c.byURL[url])
	}
	return out, nil
}

// join attaches the records of one source to their bundles, creating bundles
// for URLs seen for the first time.
func join[T any](c *collector, source sources.Type, records map[string]*T, field func(*characters.Bundle) **T) error {
	for url, record := range records {
		if record == nil {
			continue
		}

		b, ok := c.byURL[url]
		if !ok {
			b = &characters.Bundle{WikipediaURL: url}
			c.byURL[url] = b
		}

		slot := field(b)
		if *slot != nil {
			return errors.NewDuplicateKeyError(source.String(), url)
		}
		*slot = record
	}
	return nil
}

// catalogs indexes the Marvel records for identity resolution.
func (c *collector) catalogs() *marvelCatalogs {
	return &marvelCatalogs{
		api:     resolver.NewCatalog(c.input.MarvelAPI),
		website: resolver.NewCatalog(c.input.MarvelWebsite),
	}
}
