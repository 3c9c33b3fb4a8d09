// Package persistence reads source snapshots from disk and writes the
// consolidated records back.
//
// A snapshot is either a single YAML or JSON file shaped like
// reconciler.Input, or a directory holding one file per source:
//
//	data/
//	├── infobox.yaml        # keyed by Wikipedia URL
//	├── dbpedia.yaml
//	├── wikidata.json
//	├── image.yaml
//	├── pageviews.yaml
//	├── marvelApi.json      # keyed by Marvel display name
//	├── marvelWebsite.json
//	└── bundles.yaml        # optional list of pre-joined bundles
//
// Every file is optional. Records are saved sorted by Wikipedia URL and a
// file whose content would not change is left untouched.
package persistence
