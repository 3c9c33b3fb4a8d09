// Package sources names the scraped data sources that feed a character bundle.
package sources

import "slices"

// Type identifies where a piece of character data was scraped from.
type Type string

// String returns the string representation of a source type.
func (t Type) String() string {
	return string(t)
}

// Source types, one per scraper.
const (
	// Infobox is the Wikipedia infobox of the character page.
	Infobox Type = "infobox"

	// DBpedia is the DBpedia resource of the character page.
	DBpedia Type = "dbpedia"

	// Wikidata is the Wikidata entity linked from the page.
	Wikidata Type = "wikidata"

	// MarvelAPI is the official developer API.
	MarvelAPI Type = "marvelApi"

	// MarvelWebsite is the public marvel.com character page.
	MarvelWebsite Type = "marvelWebsite"

	// Image is the page image picked for the character.
	Image Type = "image"

	// Pageviews is the Wikipedia pageview statistics.
	Pageviews Type = "pageviews"
)

// Types returns all source types in join order.
func Types() []Type {
	return []Type{
		Infobox,
		DBpedia,
		Wikidata,
		MarvelAPI,
		MarvelWebsite,
		Image,
		Pageviews,
	}
}

// IsValid returns true if the Type is one of the defined constants.
func (t Type) IsValid() bool {
	return slices.Contains(Types(), t)
}

// IsWiki reports whether the source is derived from the Wikipedia page
// and therefore shared by every redirect of that page.
func (t Type) IsWiki() bool {
	switch t {
	case Infobox, DBpedia, Wikidata:
		return true
	default:
		return false
	}
}

// IsMarvel reports whether the source is attached through identity resolution.
func (t Type) IsMarvel() bool {
	return t == MarvelAPI || t == MarvelWebsite
}
