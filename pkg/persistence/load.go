package persistence

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/heromap/pkg/errors"
	"github.com/agentstation/heromap/pkg/reconciler"
	"github.com/agentstation/heromap/pkg/sources"
)

// BundlesFile is the base name of the pre-joined bundles file in a snapshot directory.
const BundlesFile = "bundles"

// Extensions lists the accepted snapshot file extensions in lookup order.
var Extensions = []string{".yaml", ".yml", ".json"}

// Load reads a snapshot from a directory or a single file.
func Load(path string) (*reconciler.Input, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.WrapIO("stat", path, err)
	}
	if info.IsDir() {
		return LoadDir(path)
	}
	return LoadFile(path)
}

// LoadFile reads a snapshot stored as one document shaped like reconciler.Input.
func LoadFile(path string) (*reconciler.Input, error) {
	input := &reconciler.Input{}
	if err := decodeFile(path, input); err != nil {
		return nil, err
	}
	return input, nil
}

// LoadDir reads a snapshot directory holding one file per source.
// Missing files leave the matching source empty.
func LoadDir(dir string) (*reconciler.Input, error) {
	input := &reconciler.Input{}

	targets := []struct {
		name   string
		target any
	}{
		{sources.Infobox.String(), &input.Infobox},
		{sources.DBpedia.String(), &input.DBpedia},
		{sources.Wikidata.String(), &input.Wikidata},
		{sources.MarvelAPI.String(), &input.MarvelAPI},
		{sources.MarvelWebsite.String(), &input.MarvelWebsite},
		{sources.Image.String(), &input.Image},
		{sources.Pageviews.String(), &input.Pageviews},
		{BundlesFile, &input.Bundles},
	}

	for _, t := range targets {
		path, ok, err := find(dir, t.name)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		if err := decodeFile(path, t.target); err != nil {
			return nil, err
		}
	}

	return input, nil
}

// LoadCatalog reads a single catalog file keyed by display name.
func LoadCatalog[T any](path string) (map[string]T, error) {
	var catalog map[string]T
	if err := decodeFile(path, &catalog); err != nil {
		return nil, err
	}
	if catalog == nil {
		catalog = make(map[string]T)
	}
	return catalog, nil
}

// find returns the first file in dir named name with an accepted extension.
func find(dir, name string) (string, bool, error) {
	for _, ext := range Extensions {
		path := filepath.Join(dir, name+ext)
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", false, errors.WrapIO("stat", path, err)
		}
		if info.IsDir() {
			continue
		}
		return path, true, nil
	}
	return "", false, nil
}

func decodeFile(path string, target any) error {
	data, err := os.ReadFile(path) //nolint:gosec // snapshot paths come from the command line
	if err != nil {
		return errors.WrapIO("read", path, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return errors.WrapParse(formatOf(path), path, err)
	}
	return nil
}

func formatOf(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return "json"
	}
	return "yaml"
}
