package types

// ResourceType identifies the kind of resource being tracked or merged.
type ResourceType string

const (
	// ResourceTypeCharacter is one consolidated character.
	ResourceTypeCharacter ResourceType = "character"

	// ResourceTypePage is one wiki page, possibly a redirect of another.
	ResourceTypePage ResourceType = "page"
)

// String returns the string representation of a resource type.
func (rt ResourceType) String() string {
	return string(rt)
}
