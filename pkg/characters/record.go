package characters

// URLs links a canonical record back to its sources.
type URLs struct {
	Wikipedia string  `json:"wikipedia" yaml:"wikipedia"`
	Marvel    *string `json:"marvel" yaml:"marvel"`
}

// Ranking holds the popularity counters used to sort characters.
type Ranking struct {
	ComicCount    int `json:"comicCount" yaml:"comicCount"`
	EventCount    int `json:"eventCount" yaml:"eventCount"`
	StoryCount    int `json:"storyCount" yaml:"storyCount"`
	SerieCount    int `json:"serieCount" yaml:"serieCount"`
	PageviewCount int `json:"pageviewCount" yaml:"pageviewCount"`
}

// Record is the canonical, merged view of one character. Nil pointers are
// serialized as null and list fields are never nil.
type Record struct {
	Name             *string  `json:"name" yaml:"name"`
	Description      *string  `json:"description" yaml:"description"`
	Thumbnail        *string  `json:"thumbnail" yaml:"thumbnail"`
	BackgroundImage  *string  `json:"backgroundImage" yaml:"backgroundImage"`
	MainColor        *Color   `json:"mainColor" yaml:"mainColor"`
	Aliases          []string `json:"aliases" yaml:"aliases"`
	Authors          []string `json:"authors" yaml:"authors"`
	Teams            []string `json:"teams" yaml:"teams"`
	SecretIdentities []string `json:"secretIdentities" yaml:"secretIdentities"`
	Species          []string `json:"species" yaml:"species"`
	Partners         []string `json:"partners" yaml:"partners"`
	Powers           []string `json:"powers" yaml:"powers"`
	URLs             URLs     `json:"urls" yaml:"urls"`
	Ranking          Ranking  `json:"ranking" yaml:"ranking"`
}

// Key returns the join key the record was built from.
func (r *Record) Key() string {
	return r.URLs.Wikipedia
}

// DisplayName returns the record name or the empty string.
func (r *Record) DisplayName() string {
	if r.Name == nil {
		return ""
	}
	return *r.Name
}
