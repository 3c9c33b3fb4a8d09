// Package application provides test doubles for the command application interface.
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/heromap/cmd/application"
	"github.com/agentstation/heromap/pkg/reconciler"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default value.
//
// Example Usage:
//
//	mock := &application.Mock{
//	    InputPathFunc: func() string { return dir },
//	    OutputFormatFunc: func() string { return "json" },
//	}
//	cmd := consolidate.NewCommand(mock)
type Mock struct {
	ReconcilerFunc     func(opts ...reconciler.Option) (reconciler.Reconciler, error)
	LoggerFunc         func() *zerolog.Logger
	OutputFormatFunc   func() string
	InputPathFunc      func() string
	OutputPathFunc     func() string
	ProvenancePathFunc func() string
	NoColorFunc        func() bool
	VersionFunc        func() string
	CommitFunc         func() string
	DateFunc           func() string
	BuiltByFunc        func() string
}

var _ application.Application = (*Mock)(nil)

// Reconciler returns the mock reconciler, or a default one built from opts.
func (m *Mock) Reconciler(opts ...reconciler.Option) (reconciler.Reconciler, error) {
	if m.ReconcilerFunc != nil {
		return m.ReconcilerFunc(opts...)
	}
	return reconciler.New(opts...)
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the output format using the mock function or "json".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "json"
}

// InputPath returns the input path using the mock function or "".
func (m *Mock) InputPath() string {
	if m.InputPathFunc != nil {
		return m.InputPathFunc()
	}
	return ""
}

// OutputPath returns the output path using the mock function or "".
func (m *Mock) OutputPath() string {
	if m.OutputPathFunc != nil {
		return m.OutputPathFunc()
	}
	return ""
}

// ProvenancePath returns the provenance path using the mock function or "".
func (m *Mock) ProvenancePath() string {
	if m.ProvenancePathFunc != nil {
		return m.ProvenancePathFunc()
	}
	return ""
}

// NoColor returns the mock color setting or false.
func (m *Mock) NoColor() bool {
	if m.NoColorFunc != nil {
		return m.NoColorFunc()
	}
	return false
}

// Version returns the version using the mock function or "test".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "test"
}

// Commit returns the commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns the date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns the builder using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}
