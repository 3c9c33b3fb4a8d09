// Package errors provides custom error types for the heromap system.
// Data-quality problems in scraped sources are never errors; these types cover
// broken preconditions, configuration and I/O at the edges of the engine.
package errors

import (
	"errors"
	"fmt"
)

// Aliases of the standard library helpers, so callers import one package.
var (
	New  = errors.New
	Is   = errors.Is
	As   = errors.As
	Join = errors.Join
)

// Sentinels matched by the typed errors below.
var (
	// ErrNotFound is matched by NotFoundError.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is matched by DuplicateKeyError.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput is matched by ValidationError and DuplicateKeyError.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCanceled marks a run stopped by its context.
	ErrCanceled = errors.New("operation canceled")
)

// NotFoundError reports a missing character, catalog entry or file.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is matches ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure, such as a bundle
// arriving without its join key.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is matches ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a ValidationError.
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// DuplicateKeyError indicates two records claimed the same join key.
type DuplicateKeyError struct {
	Source string
	Key    string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate %s record for key %s", e.Source, e.Key)
}

// Is matches ErrAlreadyExists and ErrInvalidInput.
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrAlreadyExists || target == ErrInvalidInput
}

// NewDuplicateKeyError creates a DuplicateKeyError.
func NewDuplicateKeyError(source, key string) *DuplicateKeyError {
	return &DuplicateKeyError{Source: source, Key: key}
}

// ConfigError is a bad config file, env var or flag value.
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a ConfigError.
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// ParseError is a snapshot, catalog or provenance file that does not decode.
type ParseError struct {
	Format string // "json", "yaml"
	File   string
	Err    error
}

func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, message(e.Err))
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, message(e.Err))
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError is a failed read, write, create or rename.
type IOError struct {
	Operation string
	Path      string
	Err       error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, message(e.Err))
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, message(e.Err))
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ResourceError is a failed join, merge, load or save of a bundle,
// character, catalog or snapshot.
type ResourceError struct {
	Operation string
	Resource  string
	ID        string
	Err       error
}

func (e *ResourceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, message(e.Err))
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, message(e.Err))
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a ResourceError.
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	return &ResourceError{Operation: operation, Resource: resource, ID: id, Err: err}
}

func message(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// IsNotFound reports whether err matches ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists reports whether err matches ErrAlreadyExists.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidationError reports whether err matches ErrInvalidInput.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsCanceled reports whether err matches ErrCanceled.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// The Wrap helpers return nil for a nil err.

// WrapValidation turns err into a ValidationError on field.
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps err as an IOError.
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Err: err}
}

// WrapResource wraps err as a ResourceError.
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, id, err)
}

// WrapParse wraps err as a ParseError.
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Format: format, File: file, Err: err}
}
