// Package constants provides shared constants used throughout the heromap codebase.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Concurrency limits for a consolidation run
const (
	// DefaultConcurrency is the default number of bundles resolved and merged in parallel
	DefaultConcurrency = 8

	// MaxConcurrency caps the worker count accepted from configuration
	MaxConcurrency = 256
)

// Snapshot layout constants
const (
	// DefaultOutputFile is the file name of the consolidated records
	DefaultOutputFile = "characters.json"

	// DefaultInputDir is the directory holding one file per source
	DefaultInputDir = "data"

	// JSONIndent is the indentation used for persisted records
	JSONIndent = "  "
)
