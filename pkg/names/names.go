// Package names parses character display names written as "SuperName (RealName)".
package names

import (
	"fmt"
	"regexp"
)

// identityPattern matches the whole name; the greedy first group means the
// real name is always the last parenthesized part.
var identityPattern = regexp.MustCompile(`^(.+) \((.+)\)$`)

// Identity is a display name split into its hero and civilian parts.
type Identity struct {
	SuperName string `json:"superName" yaml:"superName"`
	RealName  string `json:"realName,omitempty" yaml:"realName,omitempty"`
}

// Parse splits a display name. A name without a trailing parenthesized part is
// a plain super name with no real name; that is not an error.
func Parse(name string) Identity {
	match := identityPattern.FindStringSubmatch(name)
	if match == nil {
		return Identity{SuperName: name}
	}
	return Identity{SuperName: match[1], RealName: match[2]}
}

// HasRealName reports whether the name carried a parenthesized real name.
func (id Identity) HasRealName() bool {
	return id.RealName != ""
}

// String formats the identity back into display form.
func (id Identity) String() string {
	if !id.HasRealName() {
		return id.SuperName
	}
	return fmt.Sprintf("%s (%s)", id.SuperName, id.RealName)
}

// VariantPrefix is the key prefix shared by every variant of the super name,
// e.g. "Black Widow (".
func (id Identity) VariantPrefix() string {
	return id.SuperName + " ("
}

// RealNameSuffix is the key suffix of an entry whose real name is the super
// name, e.g. "(Emil Blonsky)".
func (id Identity) RealNameSuffix() string {
	return "(" + id.SuperName + ")"
}
