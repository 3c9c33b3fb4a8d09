package reconciler

import (
	"fmt"

	"github.com/agentstation/heromap/pkg/sources"
	"github.com/agentstation/heromap/pkg/types"
)

// ValidationResult represents the result of validating a run input.
type ValidationResult struct {
	Valid    bool                `json:"valid" yaml:"valid"`
	Errors   []ValidationError   `json:"errors" yaml:"errors"`
	Warnings []ValidationWarning `json:"warnings" yaml:"warnings"`
}

// ValidationError represents a validation error.
type ValidationError struct {
	ResourceType types.ResourceType `json:"resourceType" yaml:"resourceType"`
	ResourceID   string             `json:"resourceId,omitempty" yaml:"resourceId,omitempty"`
	Field        string             `json:"field" yaml:"field"`
	Message      string             `json:"message" yaml:"message"`
}

// ValidationWarning represents a validation warning.
type ValidationWarning struct {
	ResourceType types.ResourceType `json:"resourceType" yaml:"resourceType"`
	ResourceID   string             `json:"resourceId,omitempty" yaml:"resourceId,omitempty"`
	Field        string             `json:"field" yaml:"field"`
	Message      string             `json:"message" yaml:"message"`
}

// IsValid returns true if validation passed.
func (v *ValidationResult) IsValid() bool {
	return v.Valid && len(v.Errors) == 0
}

// HasWarnings returns true if there are warnings.
func (v *ValidationResult) HasWarnings() bool {
	return len(v.Warnings) > 0
}

// String returns a string representation of the validation result.
func (v *ValidationResult) String() string {
	if v.IsValid() {
		if v.HasWarnings() {
			return fmt.Sprintf("Validation passed with %d warnings", len(v.Warnings))
		}
		return "Validation passed"
	}
	return fmt.Sprintf("Validation failed with %d errors", len(v.Errors))
}

// String formats the warning for the run result.
func (w ValidationWarning) String() string {
	return fmt.Sprintf("%s %s: %s: %s", w.ResourceType, w.ResourceID, w.Field, w.Message)
}

// ValidateInput checks the join keys of a run input without running it.
func ValidateInput(input *Input) *ValidationResult {
	return validateInput(input)
}

// validateInput rejects empty join keys and warns about catalog entries that
// can never be matched.
func validateInput(input *Input) *ValidationResult {
	result := &ValidationResult{Valid: true}

	fail := func(source sources.Type, message string) {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			ResourceType: types.ResourceTypePage,
			Field:        "wikipediaUrl",
			Message:      fmt.Sprintf("%s: %s", source, message),
		})
	}

	for i, b := range input.Bundles {
		if b == nil || b.WikipediaURL == "" {
			fail("bundle", fmt.Sprintf("bundle %d has no wikipediaUrl", i))
		}
	}

	checkKeys(input.Infobox, sources.Infobox, fail)
	checkKeys(input.DBpedia, sources.DBpedia, fail)
	checkKeys(input.Wikidata, sources.Wikidata, fail)
	checkKeys(input.Image, sources.Image, fail)
	checkKeys(input.Pageviews, sources.Pageviews, fail)

	for name := range input.MarvelAPI {
		if name == "" {
			result.Warnings = append(result.Warnings, catalogWarning(sources.MarvelAPI))
		}
	}
	for name := range input.MarvelWebsite {
		if name == "" {
			result.Warnings = append(result.Warnings, catalogWarning(sources.MarvelWebsite))
		}
	}

	return result
}

func checkKeys[T any](records map[string]*T, source sources.Type, fail func(sources.Type, string)) {
	if _, ok := records[""]; ok {
		fail(source, "record keyed by an empty URL")
	}
}

func catalogWarning(source sources.Type) ValidationWarning {
	return ValidationWarning{
		ResourceType: types.ResourceTypeCharacter,
		Field:        "name",
		Message:      fmt.Sprintf("%s catalog entry with an empty name is never matched", source),
	}
}
