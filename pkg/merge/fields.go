package merge

import (
	"github.com/agentstation/heromap/internal/utils/ptr"
	"github.com/agentstation/heromap/pkg/authority"
	"github.com/agentstation/heromap/pkg/characters"
	"github.com/agentstation/heromap/pkg/sources"
)

// Name returns the wiki name, or the Marvel API name when the API entry was
// matched by real name.
func Name(b *characters.Bundle) *string { return name(b, nil) }

// Description returns the first description of the variant-specific Marvel
// records, the wiki records, then the generic Marvel records.
func Description(b *characters.Bundle) *string { return description(b, nil) }

// Thumbnail returns the variant-specific Marvel artwork, the page image, then
// the generic Marvel artwork.
func Thumbnail(b *characters.Bundle) *string { return thumbnail(b, nil) }

// BackgroundImage returns the featured background of the Marvel website.
func BackgroundImage(b *characters.Bundle) *string { return backgroundImage(b, nil) }

// MainColor returns a copy of the Marvel website main color.
func MainColor(b *characters.Bundle) *characters.Color { return mainColor(b, nil) }

// Aliases returns the deduplicated aliases of infobox, DBpedia and Wikidata.
func Aliases(b *characters.Bundle) []string { return aliases(b, nil) }

// Authors returns the deduplicated authors of infobox and DBpedia.
func Authors(b *characters.Bundle) []string { return authors(b, nil) }

// Teams returns the deduplicated DBpedia teams.
func Teams(b *characters.Bundle) []string { return teams(b, nil) }

// SecretIdentities returns the deduplicated secret identities of infobox and DBpedia.
func SecretIdentities(b *characters.Bundle) []string { return secretIdentities(b, nil) }

// Species returns the deduplicated DBpedia species.
func Species(b *characters.Bundle) []string { return species(b, nil) }

// Partners returns the deduplicated partners of infobox and DBpedia.
func Partners(b *characters.Bundle) []string { return partners(b, nil) }

// Powers returns the powers of DBpedia and infobox, deduplicated ignoring
// case, each starting with an upper case letter.
func Powers(b *characters.Bundle) []string { return powers(b, nil) }

// URLs links the record to its Wikipedia page and Marvel page.
func URLs(b *characters.Bundle) characters.URLs { return urls(b, nil) }

// Ranking returns the Marvel appearance counters and the pageview count.
func Ranking(b *characters.Bundle) characters.Ranking { return ranking(b, nil) }

func nonEmpty(s string) (string, bool) {
	return s, s != ""
}

func firstString(b *characters.Bundle, path string, value func(sources.Type) string, rec recorder) *string {
	v, ok := first(b, path, func(source sources.Type) (string, bool) {
		return nonEmpty(value(source))
	}, rec)
	if !ok {
		return nil
	}
	return ptr.NonEmpty(v)
}

func name(b *characters.Bundle, rec recorder) *string {
	return firstString(b, authority.PathName, func(source sources.Type) string {
		switch source {
		case sources.MarvelAPI:
			return b.MarvelAPI.Name
		case sources.Infobox:
			return b.Infobox.Name
		case sources.DBpedia:
			return b.DBpedia.Name
		}
		return ""
	}, rec)
}

func description(b *characters.Bundle, rec recorder) *string {
	return firstString(b, authority.PathDescription, func(source sources.Type) string {
		switch source {
		case sources.MarvelAPI:
			return b.MarvelAPI.Description
		case sources.MarvelWebsite:
			return b.MarvelWebsite.Description
		case sources.Infobox:
			return b.Infobox.Description
		case sources.DBpedia:
			return b.DBpedia.Description
		}
		return ""
	}, rec)
}

func thumbnail(b *characters.Bundle, rec recorder) *string {
	return firstString(b, authority.PathThumbnail, func(source sources.Type) string {
		switch source {
		case sources.MarvelWebsite:
			return b.MarvelWebsite.Thumbnail
		case sources.MarvelAPI:
			return b.MarvelAPI.Image
		case sources.Image:
			return b.Image.URL
		}
		return ""
	}, rec)
}

func backgroundImage(b *characters.Bundle, rec recorder) *string {
	return firstString(b, authority.PathBackgroundImage, func(source sources.Type) string {
		if source == sources.MarvelWebsite {
			return b.MarvelWebsite.FeaturedBackground
		}
		return ""
	}, rec)
}

func mainColor(b *characters.Bundle, rec recorder) *characters.Color {
	c, ok := first(b, authority.PathMainColor, func(source sources.Type) (characters.Color, bool) {
		if source == sources.MarvelWebsite && b.MarvelWebsite.MainColor != nil {
			return *b.MarvelWebsite.MainColor, true
		}
		return characters.Color{}, false
	}, rec)
	if !ok {
		return nil
	}
	return &c
}

func aliases(b *characters.Bundle, rec recorder) []string {
	return union(b, authority.PathAliases, func(source sources.Type) []string {
		switch source {
		case sources.Infobox:
			return b.Infobox.Aliases
		case sources.DBpedia:
			return b.DBpedia.Aliases
		case sources.Wikidata:
			return b.Wikidata.Aliases
		}
		return nil
	}, identity, identity, rec)
}

func authors(b *characters.Bundle, rec recorder) []string {
	return union(b, authority.PathAuthors, func(source sources.Type) []string {
		switch source {
		case sources.Infobox:
			return b.Infobox.Authors
		case sources.DBpedia:
			return b.DBpedia.Authors
		}
		return nil
	}, identity, identity, rec)
}

func teams(b *characters.Bundle, rec recorder) []string {
	return union(b, authority.PathTeams, func(source sources.Type) []string {
		if source == sources.DBpedia {
			return b.DBpedia.Teams
		}
		return nil
	}, identity, identity, rec)
}

func secretIdentities(b *characters.Bundle, rec recorder) []string {
	return union(b, authority.PathSecretIdentities, func(source sources.Type) []string {
		switch source {
		case sources.Infobox:
			return b.Infobox.SecretIdentities
		case sources.DBpedia:
			return b.DBpedia.SecretIdentities
		}
		return nil
	}, identity, identity, rec)
}

func species(b *characters.Bundle, rec recorder) []string {
	return union(b, authority.PathSpecies, func(source sources.Type) []string {
		if source == sources.DBpedia {
			return b.DBpedia.Species
		}
		return nil
	}, identity, identity, rec)
}

func partners(b *characters.Bundle, rec recorder) []string {
	return union(b, authority.PathPartners, func(source sources.Type) []string {
		switch source {
		case sources.Infobox:
			return b.Infobox.Partners
		case sources.DBpedia:
			return b.DBpedia.Partners
		}
		return nil
	}, identity, identity, rec)
}

func powers(b *characters.Bundle, rec recorder) []string {
	return union(b, authority.PathPowers, func(source sources.Type) []string {
		switch source {
		case sources.DBpedia:
			return b.DBpedia.Powers
		case sources.Infobox:
			return b.Infobox.Powers
		}
		return nil
	}, fold, capitalize, rec)
}

func urls(b *characters.Bundle, rec recorder) characters.URLs {
	return characters.URLs{
		Wikipedia: b.WikipediaURL,
		Marvel: firstString(b, authority.PathMarvelURL, func(source sources.Type) string {
			switch source {
			case sources.MarvelWebsite:
				return b.MarvelWebsite.URL
			case sources.MarvelAPI:
				return b.MarvelAPI.URL
			}
			return ""
		}, rec),
	}
}

func ranking(b *characters.Bundle, rec recorder) characters.Ranking {
	count := func(path string, pick func(*characters.Counts) int) int {
		v, _ := first(b, path, func(source sources.Type) (int, bool) {
			if source != sources.MarvelAPI || b.MarvelAPI.Counts == nil {
				return 0, false
			}
			return pick(b.MarvelAPI.Counts), true
		}, rec)
		return v
	}

	pageviews, _ := first(b, authority.PathPageviewCount, func(source sources.Type) (int, bool) {
		if source != sources.Pageviews {
			return 0, false
		}
		return b.Pageviews.Latest90, true
	}, rec)

	return characters.Ranking{
		ComicCount:    count(authority.PathComicCount, func(c *characters.Counts) int { return c.Comics }),
		EventCount:    count(authority.PathEventCount, func(c *characters.Counts) int { return c.Events }),
		StoryCount:    count(authority.PathStoryCount, func(c *characters.Counts) int { return c.Stories }),
		SerieCount:    count(authority.PathSerieCount, func(c *characters.Counts) int { return c.Series }),
		PageviewCount: pageviews,
	}
}
