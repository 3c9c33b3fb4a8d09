// Package alerts prints short status notices for CLI runs, such as the
// outcome of a save or the warnings collected during consolidation.
package alerts

import (
	"fmt"
	"strings"
)

// Alert is a single status notice with optional detail lines.
type Alert struct {
	Level   Level
	Message string
	Details []string
	Err     error
}

// New creates an alert with the given level and message.
func New(level Level, message string) *Alert {
	return &Alert{Level: level, Message: message}
}

// NewError creates an error alert.
func NewError(message string, err error) *Alert {
	return &Alert{Level: LevelError, Message: message, Err: err}
}

// NewWarning creates a warning alert.
func NewWarning(message string) *Alert { return New(LevelWarning, message) }

// NewInfo creates an info alert.
func NewInfo(message string) *Alert { return New(LevelInfo, message) }

// NewSuccess creates a success alert.
func NewSuccess(message string) *Alert { return New(LevelSuccess, message) }

// WithDetails appends detail lines.
func (a *Alert) WithDetails(details ...string) *Alert {
	a.Details = append(a.Details, details...)
	return a
}

// String renders the alert on one line without details.
func (a *Alert) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", a.Level.Icon(), a.Message)
	if a.Err != nil {
		fmt.Fprintf(&b, ": %v", a.Err)
	}
	return b.String()
}

// Warnings builds a warning alert listing the given messages, showing at
// most limit of them. A non-positive limit shows all. It returns nil when
// there is nothing to report.
func Warnings(warnings []string, limit int) *Alert {
	if len(warnings) == 0 {
		return nil
	}
	a := NewWarning(fmt.Sprintf("%d warning(s)", len(warnings)))
	shown := warnings
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	a.WithDetails(shown...)
	if hidden := len(warnings) - len(shown); hidden > 0 {
		a.WithDetails(fmt.Sprintf("... and %d more", hidden))
	}
	return a
}
