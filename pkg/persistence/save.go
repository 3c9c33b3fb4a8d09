package persistence

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/heromap/pkg/characters"
	"github.com/agentstation/heromap/pkg/constants"
	"github.com/agentstation/heromap/pkg/errors"
	"github.com/agentstation/heromap/pkg/save"
)

// SaveResult describes the outcome of a Save.
type SaveResult struct {
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`
	Hash    string `json:"hash" yaml:"hash"`
	Count   int    `json:"count" yaml:"count"`
	Written bool   `json:"written" yaml:"written"`
}

// Save writes records sorted by Wikipedia URL to the configured writer or path.
// A path whose current content hashes the same is not rewritten unless forced.
func Save(records []*characters.Record, opts ...save.Option) (*SaveResult, error) {
	options := save.Defaults().Apply(opts...)
	if !options.Format().IsValid() {
		return nil, errors.NewValidationError("format", options.Format(), "unsupported save format")
	}

	data, err := Encode(records, options.Format())
	if err != nil {
		return nil, err
	}

	result := &SaveResult{
		Path:  options.Path(),
		Hash:  Hash(data),
		Count: len(records),
	}

	if w := options.Writer(); w != nil {
		if _, err := w.Write(data); err != nil {
			return nil, errors.WrapIO("write", "writer", err)
		}
		result.Written = true
		return result, nil
	}

	if options.Path() == "" {
		return nil, errors.NewValidationError("path", "", "a path or a writer is required")
	}

	if !options.Force() {
		unchanged, err := sameContent(options.Path(), result.Hash)
		if err != nil {
			return nil, err
		}
		if unchanged {
			return result, nil
		}
	}

	if err := writeAtomic(options.Path(), data); err != nil {
		return nil, err
	}
	result.Written = true
	return result, nil
}

// Encode serializes records sorted by Wikipedia URL in the given format.
func Encode(records []*characters.Record, format save.Format) ([]byte, error) {
	sorted := sortRecords(records)

	switch format {
	case save.FormatYAML:
		data, err := yaml.Marshal(sorted)
		if err != nil {
			return nil, errors.WrapParse("yaml", "", err)
		}
		return data, nil
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", constants.JSONIndent)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(sorted); err != nil {
			return nil, errors.WrapParse("json", "", err)
		}
		return buf.Bytes(), nil
	}
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func sortRecords(records []*characters.Record) []*characters.Record {
	sorted := make([]*characters.Record, 0, len(records))
	for _, r := range records {
		if r != nil {
			sorted = append(sorted, r)
		}
	}
	slices.SortStableFunc(sorted, func(a, b *characters.Record) int {
		return strings.Compare(a.Key(), b.Key())
	})
	return sorted
}

func sameContent(path, hash string) (bool, error) {
	current, err := os.ReadFile(path) //nolint:gosec // output path comes from the command line
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.WrapIO("read", path, err)
	}
	return Hash(current) == hash, nil
}

// writeAtomic writes data next to path and renames it into place.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.WrapIO("create", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return errors.WrapIO("write", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("close", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, constants.FilePermissions); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("chmod", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.WrapIO("rename", path, err)
	}
	return nil
}
