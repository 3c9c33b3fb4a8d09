// Package app provides the application context and dependency management
// for the heromap CLI. It centralizes configuration, logging and the
// construction of reconcilers for the commands.
package app

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/heromap/cmd/application"
	"github.com/agentstation/heromap/pkg/errors"
	"github.com/agentstation/heromap/pkg/reconciler"
)

// App represents the heromap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config
	flags  Flags

	// Logger
	logger *zerolog.Logger
}

var _ application.Application = (*App)(nil)

// New creates a new App instance with the given version information.
// The app is initialized from LoadConfig unless WithConfig is given.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.config == nil {
		config, err := LoadConfig("")
		if err != nil {
			return nil, errors.WrapResource("load", "config", "", err)
		}
		app.config = config
	}

	if app.logger == nil {
		logger := NewLogger(app.config)
		app.logger = &logger
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// InputPath returns the configured snapshot directory or file.
func (a *App) InputPath() string {
	return a.config.Input
}

// OutputPath returns the configured path of the consolidated records.
func (a *App) OutputPath() string {
	return a.config.Output
}

// ProvenancePath returns where provenance is saved, empty when disabled.
func (a *App) ProvenancePath() string {
	return a.config.Provenance
}

// NoColor reports whether colored output is disabled by config or flag.
func (a *App) NoColor() bool {
	return a.config.NoColor
}

// Reconciler returns a reconciler built from the configuration, with opts
// applied after the configured ones.
func (a *App) Reconciler(opts ...reconciler.Option) (reconciler.Reconciler, error) {
	base := []reconciler.Option{
		reconciler.WithConcurrency(a.config.Concurrency),
		reconciler.WithDeduplication(a.config.Deduplicate),
		reconciler.WithProvenance(a.config.Provenance != ""),
	}
	r, err := reconciler.New(append(base, opts...)...)
	if err != nil {
		return nil, errors.WrapResource("create", "reconciler", "", err)
	}
	return r, nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return errors.NewValidationError("config", nil, "config cannot be nil")
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
