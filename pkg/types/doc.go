// Package types provides shared type definitions used across the heromap packages.
//
// It holds the small vocabulary (pick types, resource types) that the resolver,
// the data model and provenance tracking all refer to, so none of them has to
// import another to agree on it.
//
// The package has zero dependencies.
//
//nolint:revive // Package name 'types' is appropriate for common type definitions
package types
