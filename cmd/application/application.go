// Package application provides the application interface for heromap commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            r, err := app.Reconciler()
//	            if err != nil {
//	                return err
//	            }
//	            // ... load the snapshot from app.InputPath() and run
//	            return nil
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{
//	    InputPathFunc: func() string { return "testdata" },
//	}
//	cmd := consolidate.NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/heromap/pkg/reconciler"
)

// Application provides the application interface that commands need.
// The App struct from cmd/heromap/app implements this interface.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Reconciler returns a reconciler configured from the application
	// settings, with opts applied on top.
	Reconciler(opts ...reconciler.Option) (reconciler.Reconciler, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, wide).
	OutputFormat() string

	// InputPath returns the configured snapshot directory or file.
	InputPath() string

	// OutputPath returns the configured path of the consolidated records.
	OutputPath() string

	// ProvenancePath returns where provenance is saved, empty when disabled.
	ProvenancePath() string

	// NoColor reports whether colored terminal output is disabled.
	NoColor() bool

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
