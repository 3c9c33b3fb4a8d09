package reconciler

import (
	"github.com/agentstation/heromap/pkg/characters"
	"github.com/agentstation/heromap/pkg/sources"
)

// Input is the snapshot of scraped records for one run.
//
// Wiki-side records are keyed by Wikipedia URL and joined into bundles. The
// Marvel records are catalogs keyed by Marvel display name and are attached
// through identity resolution. Bundles holds records that were joined ahead
// of time; Marvel data already present on them is kept as is.
type Input struct {
	Infobox       map[string]*characters.InfoboxData       `json:"infobox,omitempty" yaml:"infobox,omitempty"`
	DBpedia       map[string]*characters.DBpediaData       `json:"dbpedia,omitempty" yaml:"dbpedia,omitempty"`
	Wikidata      map[string]*characters.WikidataData      `json:"wikidata,omitempty" yaml:"wikidata,omitempty"`
	Image         map[string]*characters.ImageData         `json:"image,omitempty" yaml:"image,omitempty"`
	Pageviews     map[string]*characters.PageviewsData     `json:"pageviews,omitempty" yaml:"pageviews,omitempty"`
	MarvelAPI     map[string]*characters.MarvelAPIData     `json:"marvelApi,omitempty" yaml:"marvelApi,omitempty"`
	MarvelWebsite map[string]*characters.MarvelWebsiteData `json:"marvelWebsite,omitempty" yaml:"marvelWebsite,omitempty"`
	Bundles       []*characters.Bundle                     `json:"bundles,omitempty" yaml:"bundles,omitempty"`
}

// Counts returns the number of records per source, not counting Bundles.
func (in *Input) Counts() map[sources.Type]int {
	return map[sources.Type]int{
		sources.Infobox:       len(in.Infobox),
		sources.DBpedia:       len(in.DBpedia),
		sources.Wikidata:      len(in.Wikidata),
		sources.Image:         len(in.Image),
		sources.Pageviews:     len(in.Pageviews),
		sources.MarvelAPI:     len(in.MarvelAPI),
		sources.MarvelWebsite: len(in.MarvelWebsite),
	}
}

// IsEmpty reports whether the input holds no record at all.
func (in *Input) IsEmpty() bool {
	if len(in.Bundles) > 0 {
		return false
	}
	for _, n := range in.Counts() {
		if n > 0 {
			return false
		}
	}
	return true
}
