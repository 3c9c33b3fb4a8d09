// Package characters defines the per-source records scraped for a character,
// the Bundle that joins them, and the canonical Record produced by merging.
package characters

import (
	"github.com/agentstation/heromap/pkg/errors"
	"github.com/agentstation/heromap/pkg/sources"
	"github.com/agentstation/heromap/pkg/types"
)

// InfoboxData is what the Wikipedia infobox scraper extracts.
type InfoboxData struct {
	Name             string   `json:"name,omitempty" yaml:"name,omitempty"`
	Aliases          []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Alliances        []string `json:"alliances,omitempty" yaml:"alliances,omitempty"`
	Authors          []string `json:"authors,omitempty" yaml:"authors,omitempty"`
	Partners         []string `json:"partners,omitempty" yaml:"partners,omitempty"`
	Powers           []string `json:"powers,omitempty" yaml:"powers,omitempty"`
	SecretIdentities []string `json:"secretIdentities,omitempty" yaml:"secretIdentities,omitempty"`
	IsHero           bool     `json:"isHero,omitempty" yaml:"isHero,omitempty"`
	Description      string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// DBpediaData is what the DBpedia scraper extracts.
type DBpediaData struct {
	Name             string   `json:"name,omitempty" yaml:"name,omitempty"`
	Aliases          []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Authors          []string `json:"authors,omitempty" yaml:"authors,omitempty"`
	Teams            []string `json:"teams,omitempty" yaml:"teams,omitempty"`
	Species          []string `json:"species,omitempty" yaml:"species,omitempty"`
	Partners         []string `json:"partners,omitempty" yaml:"partners,omitempty"`
	SecretIdentities []string `json:"secretIdentities,omitempty" yaml:"secretIdentities,omitempty"`
	Powers           []string `json:"powers,omitempty" yaml:"powers,omitempty"`
	Description      string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// WikidataData is what the Wikidata scraper extracts.
type WikidataData struct {
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// Counts are the appearance counters reported by the Marvel API.
type Counts struct {
	Comics  int `json:"comics" yaml:"comics"`
	Events  int `json:"events" yaml:"events"`
	Series  int `json:"series" yaml:"series"`
	Stories int `json:"stories" yaml:"stories"`
}

// MarvelAPIData is one character entry of the Marvel developer API.
// PickType is set when the entry was attached by identity resolution.
type MarvelAPIData struct {
	Name        string         `json:"name,omitempty" yaml:"name,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Image       string         `json:"image,omitempty" yaml:"image,omitempty"`
	URL         string         `json:"url,omitempty" yaml:"url,omitempty"`
	Counts      *Counts        `json:"counts,omitempty" yaml:"counts,omitempty"`
	PickType    types.PickType `json:"pickType,omitempty" yaml:"pickType,omitempty"`
}

// Color is the dominant color of a character page.
type Color struct {
	Red   int    `json:"red" yaml:"red"`
	Green int    `json:"green" yaml:"green"`
	Blue  int    `json:"blue" yaml:"blue"`
	Hexa  string `json:"hexa" yaml:"hexa"`
}

// MarvelWebsiteData is one character page of marvel.com.
type MarvelWebsiteData struct {
	Name               string         `json:"name,omitempty" yaml:"name,omitempty"`
	Description        string         `json:"description,omitempty" yaml:"description,omitempty"`
	Thumbnail          string         `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	FeaturedBackground string         `json:"featuredBackground,omitempty" yaml:"featuredBackground,omitempty"`
	MainColor          *Color         `json:"mainColor,omitempty" yaml:"mainColor,omitempty"`
	URL                string         `json:"url,omitempty" yaml:"url,omitempty"`
	PickType           types.PickType `json:"pickType,omitempty" yaml:"pickType,omitempty"`
}

// ImageData is the page image selected for a character.
type ImageData struct {
	URL    string `json:"url,omitempty" yaml:"url,omitempty"`
	Width  int    `json:"width,omitempty" yaml:"width,omitempty"`
	Height int    `json:"height,omitempty" yaml:"height,omitempty"`
}

// PageviewsData is the Wikipedia popularity of a page.
type PageviewsData struct {
	Latest90 int `json:"latest90" yaml:"latest90"`
	Rank     int `json:"rank,omitempty" yaml:"rank,omitempty"`
}

// Bundle joins every source record known for one character, keyed by its
// Wikipedia URL. A nil source field means the source has no record for the
// character, which is the normal case rather than an error.
type Bundle struct {
	WikipediaURL  string             `json:"wikipediaUrl" yaml:"wikipediaUrl"`
	Infobox       *InfoboxData       `json:"infoboxData,omitempty" yaml:"infoboxData,omitempty"`
	DBpedia       *DBpediaData       `json:"dbpediaData,omitempty" yaml:"dbpediaData,omitempty"`
	Wikidata      *WikidataData      `json:"wikidataData,omitempty" yaml:"wikidataData,omitempty"`
	MarvelAPI     *MarvelAPIData     `json:"marvelApiData,omitempty" yaml:"marvelApiData,omitempty"`
	MarvelWebsite *MarvelWebsiteData `json:"marvelWebsiteData,omitempty" yaml:"marvelWebsiteData,omitempty"`
	Image         *ImageData         `json:"imageData,omitempty" yaml:"imageData,omitempty"`
	Pageviews     *PageviewsData     `json:"pageviews,omitempty" yaml:"pageviews,omitempty"`
}

// Has reports whether the bundle carries a record for the given source.
func (b *Bundle) Has(source sources.Type) bool {
	if b == nil {
		return false
	}
	switch source {
	case sources.Infobox:
		return b.Infobox != nil
	case sources.DBpedia:
		return b.DBpedia != nil
	case sources.Wikidata:
		return b.Wikidata != nil
	case sources.MarvelAPI:
		return b.MarvelAPI != nil
	case sources.MarvelWebsite:
		return b.MarvelWebsite != nil
	case sources.Image:
		return b.Image != nil
	case sources.Pageviews:
		return b.Pageviews != nil
	default:
		return false
	}
}

// Sources lists the sources present in the bundle, in join order.
func (b *Bundle) Sources() []sources.Type {
	var present []sources.Type
	for _, source := range sources.Types() {
		if b.Has(source) {
			present = append(present, source)
		}
	}
	return present
}

// Validate checks the join key. It is the only precondition a bundle has.
func (b *Bundle) Validate() error {
	if b == nil {
		return errors.NewValidationError("bundle", nil, "cannot be nil")
	}
	if b.WikipediaURL == "" {
		return errors.NewValidationError("wikipediaUrl", b.WikipediaURL, "cannot be empty")
	}
	return nil
}

// WikiName returns the display name scraped from the wiki side.
func (b *Bundle) WikiName() string {
	if b.Infobox != nil && b.Infobox.Name != "" {
		return b.Infobox.Name
	}
	if b.DBpedia != nil {
		return b.DBpedia.Name
	}
	return ""
}

// PickType returns how the record of a Marvel source was matched. Sources
// without a match tag, and absent sources, return the empty PickType.
func (b *Bundle) PickType(source sources.Type) types.PickType {
	switch {
	case source == sources.MarvelAPI && b.Has(source):
		return b.MarvelAPI.PickType
	case source == sources.MarvelWebsite && b.Has(source):
		return b.MarvelWebsite.PickType
	default:
		return ""
	}
}

// Clone returns a shallow copy of the bundle. Source records are shared, so
// callers replace source pointers rather than editing the records in place.
func (b *Bundle) Clone() *Bundle {
	if b == nil {
		return nil
	}
	c := *b
	return &c
}
