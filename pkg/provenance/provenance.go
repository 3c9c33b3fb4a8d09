// Package provenance provides field-level tracking of which source supplied
// each value of a canonical record.
package provenance

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/agentstation/utc"
	"github.com/goccy/go-yaml"

	"github.com/agentstation/heromap/pkg/constants"
	"github.com/agentstation/heromap/pkg/errors"
	"github.com/agentstation/heromap/pkg/sources"
	"github.com/agentstation/heromap/pkg/types"
)

// Provenance tracks the origin of a field value.
type Provenance struct {
	Source    sources.Type   `yaml:"source"`             // Source that provided the value
	Field     string         `yaml:"field"`              // Field path
	Value     any            `yaml:"value,omitempty"`    // The value contributed by the source
	PickType  types.PickType `yaml:"pickType,omitempty"` // Match tag of a Marvel source
	Priority  int            `yaml:"priority"`           // Authority priority of the source
	Reason    string         `yaml:"reason,omitempty"`   // Why this source was used
	Timestamp time.Time      `yaml:"timestamp"`          // When the value was set
}

// Map tracks provenance for multiple resources.
type Map map[string][]Provenance // key is "resourceType:resourceID:fieldPath"

// Tracker manages provenance tracking during reconciliation.
// Implementations are safe for concurrent use.
type Tracker interface {
	// Track records provenance for a field
	Track(resourceType types.ResourceType, resourceID string, field string, history Provenance)

	// FindByField retrieves provenance for a specific field
	FindByField(resourceType types.ResourceType, resourceID string, field string) []Provenance

	// FindByResource retrieves all provenance for a resource
	FindByResource(resourceType types.ResourceType, resourceID string) map[string][]Provenance

	// Map returns the complete provenance map
	Map() Map

	// Enabled reports whether tracking records anything
	Enabled() bool

	// Clear removes all provenance data
	Clear()
}

// tracker is the default implementation.
type tracker struct {
	mu         sync.RWMutex
	provenance Map
	enabled    bool
}

// NewTracker creates a new provenance tracker. A disabled tracker accepts
// calls and records nothing.
func NewTracker(enabled bool) Tracker {
	return &tracker{
		provenance: make(Map),
		enabled:    enabled,
	}
}

// Track records provenance for a field.
func (p *tracker) Track(resourceType types.ResourceType, resourceID string, field string, history Provenance) {
	if !p.enabled {
		return
	}

	key := MakeKey(resourceType, resourceID, field)
	if history.Field == "" {
		history.Field = field
	}
	if history.Timestamp.IsZero() {
		history.Timestamp = utc.Now().Time
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.provenance[key] = append(p.provenance[key], history)
}

// FindByField retrieves provenance for a specific field.
func (p *tracker) FindByField(resourceType types.ResourceType, resourceID string, field string) []Provenance {
	if !p.enabled {
		return nil
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]Provenance(nil), p.provenance[MakeKey(resourceType, resourceID, field)]...)
}

// FindByResource retrieves all provenance for a resource.
func (p *tracker) FindByResource(resourceType types.ResourceType, resourceID string) map[string][]Provenance {
	if !p.enabled {
		return nil
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make(map[string][]Provenance)
	for key, info := range p.provenance {
		rt, id, field, ok := SplitKey(key)
		if ok && rt == resourceType && id == resourceID {
			result[field] = append([]Provenance(nil), info...)
		}
	}
	return result
}

// Map returns a copy of the complete provenance map.
func (p *tracker) Map() Map {
	if !p.enabled {
		return nil
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	result := make(Map, len(p.provenance))
	for k, v := range p.provenance {
		result[k] = append([]Provenance{}, v...)
	}
	return result
}

// Enabled reports whether tracking records anything.
func (p *tracker) Enabled() bool {
	return p.enabled
}

// Clear removes all provenance data.
func (p *tracker) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.provenance = make(Map)
}

// MakeKey creates the key for one field of one resource.
func MakeKey(resourceType types.ResourceType, resourceID string, field string) string {
	return fmt.Sprintf("%s:%s:%s", resourceType, resourceID, field)
}

// SplitKey reverses MakeKey. Resource IDs are URLs and may contain colons;
// resource types and field paths never do.
func SplitKey(key string) (types.ResourceType, string, string, bool) {
	first := strings.Index(key, ":")
	last := strings.LastIndex(key, ":")
	if first < 0 || first == last {
		return "", "", "", false
	}
	return types.ResourceType(key[:first]), key[first+1 : last], key[last+1:], true
}

// Report groups a provenance map by resource for display.
type Report struct {
	Resources map[string]ResourceProvenance // key is "resourceType:resourceID"
}

// ResourceProvenance contains provenance for a single resource.
type ResourceProvenance struct {
	Type   types.ResourceType
	ID     string
	Fields map[string]Field
}

// Field contains provenance for a single field. Current is the highest
// priority contribution; History holds every contribution, highest first.
type Field struct {
	Current Provenance
	History []Provenance
}

// GenerateReport creates a provenance report from a Map.
func GenerateReport(provenance Map) *Report {
	report := &Report{
		Resources: make(map[string]ResourceProvenance),
	}

	for key, infos := range provenance {
		resourceType, resourceID, field, ok := SplitKey(key)
		if !ok {
			continue
		}

		resourceKey := fmt.Sprintf("%s:%s", resourceType, resourceID)
		resource, exists := report.Resources[resourceKey]
		if !exists {
			resource = ResourceProvenance{
				Type:   resourceType,
				ID:     resourceID,
				Fields: make(map[string]Field),
			}
		}

		history := append([]Provenance(nil), infos...)
		sort.SliceStable(history, func(i, j int) bool {
			return history[i].Priority > history[j].Priority
		})

		fieldProv := Field{History: history}
		if len(history) > 0 {
			fieldProv.Current = history[0]
		}

		resource.Fields[field] = fieldProv
		report.Resources[resourceKey] = resource
	}

	return report
}

// String generates a string representation of the provenance report.
func (r *Report) String() string {
	var sb strings.Builder

	sb.WriteString("Provenance Report\n")
	sb.WriteString("=================\n\n")

	// Sort resources for consistent output
	resourceKeys := make([]string, 0, len(r.Resources))
	for key := range r.Resources {
		resourceKeys = append(resourceKeys, key)
	}
	sort.Strings(resourceKeys)

	for _, key := range resourceKeys {
		resource := r.Resources[key]
		sb.WriteString(fmt.Sprintf("%s: %s\n", resource.Type, resource.ID))
		sb.WriteString(strings.Repeat("-", 40))
		sb.WriteString("\n")

		fieldKeys := make([]string, 0, len(resource.Fields))
		for field := range resource.Fields {
			fieldKeys = append(fieldKeys, field)
		}
		sort.Strings(fieldKeys)

		for _, field := range fieldKeys {
			fieldProv := resource.Fields[field]
			sb.WriteString(fmt.Sprintf("  %s: %v (from %s", field, fieldProv.Current.Value, fieldProv.Current.Source))
			if fieldProv.Current.PickType != "" {
				sb.WriteString(fmt.Sprintf(", %s", fieldProv.Current.PickType))
			}
			sb.WriteString(")\n")

			if len(fieldProv.History) > 1 {
				for _, info := range fieldProv.History[1:] {
					sb.WriteString(fmt.Sprintf("    + %v from %s\n", info.Value, info.Source))
				}
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// ProvenanceFile represents a provenance file stored on disk.
//
//nolint:revive // Name is intentionally descriptive for external clarity
type ProvenanceFile struct {
	Provenance Map `yaml:"provenance"`
}

// Save writes the provenance map to a YAML file, creating parent directories.
func Save(path string, provenance Map) error {
	data, err := yaml.Marshal(ProvenanceFile{Provenance: provenance})
	if err != nil {
		return errors.WrapParse("yaml", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
		return errors.WrapIO("create", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// Load reads provenance data from a YAML file.
// Returns nil, nil if the file doesn't exist (not an error).
func Load(path string) (*ProvenanceFile, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from configuration
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var pf ProvenanceFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	return &pf, nil
}
