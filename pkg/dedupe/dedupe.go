// Package dedupe finds wiki pages that describe the same character under
// different URLs and collapses each group into one record.
//
// Redirecting pages produce records that are identical apart from their URL,
// so two records belong together when their fingerprints, a hash of the record
// without its "url" key, are equal.
package dedupe

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/agentstation/heromap/pkg/errors"
)

// URLKey is the record key excluded from the fingerprint.
const URLKey = "url"

// Record is a cleaned per-page record: a url plus arbitrary other fields.
type Record map[string]any

// URL returns the record's url field, or "" when missing.
func (r Record) URL() string {
	s, _ := r[URLKey].(string)
	return s
}

// Group is a set of records with identical fingerprints. Indexes holds the
// positions of the members in the partitioned input, in input order.
type Group struct {
	Fingerprint string
	Indexes     []int
	Records     []Record
}

// Size returns the number of records in the group.
func (g Group) Size() int {
	return len(g.Records)
}

// IsDuplicate reports whether the group holds more than one record.
func (g Group) IsDuplicate() bool {
	return len(g.Records) > 1
}

// Fingerprint returns the hex SHA-256 of the record's JSON encoding with the
// url key removed. Map keys are encoded in sorted order, so the fingerprint
// does not depend on insertion order.
func Fingerprint(record Record) (string, error) {
	content := make(map[string]any, len(record))
	for k, v := range record {
		if k == URLKey {
			continue
		}
		content[k] = v
	}

	data, err := json.Marshal(content)
	if err != nil {
		return "", errors.WrapResource("fingerprint", "record", record.URL(), err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Partition splits records into groups sharing a fingerprint. Groups appear in
// the order their first member appears; a record with no duplicate forms a
// group of one.
func Partition(records []Record) ([]Group, error) {
	groups := make([]Group, 0, len(records))
	byFingerprint := make(map[string]int, len(records))

	for i, record := range records {
		fp, err := Fingerprint(record)
		if err != nil {
			return nil, err
		}

		idx, ok := byFingerprint[fp]
		if !ok {
			idx = len(groups)
			byFingerprint[fp] = idx
			groups = append(groups, Group{Fingerprint: fp})
		}
		groups[idx].Indexes = append(groups[idx].Indexes, i)
		groups[idx].Records = append(groups[idx].Records, record)
	}

	return groups, nil
}

// FromValue converts any JSON-encodable value into a Record.
func FromValue(url string, v any) (Record, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.WrapResource("encode", "record", url, err)
	}

	record := Record{}
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.WrapResource("encode", "record", url, err)
	}
	record[URLKey] = url
	return record, nil
}
