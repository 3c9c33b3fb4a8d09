package types

// PickType tags how a Marvel-sourced record was matched to a wiki character.
// The constants are ordered from most to least specific.
type PickType string

const (
	// PickNone means no catalog entry was accepted.
	PickNone PickType = "none"

	// PickExactMatch means the catalog key equals the full wiki name.
	PickExactMatch PickType = "exactMatch"

	// PickSecretIdentity means exactly one variant's real name is a known identity.
	PickSecretIdentity PickType = "secretIdentity"

	// PickRealName means the wiki name is the real name of a catalog entry.
	PickRealName PickType = "realName"

	// PickLooseMatch means the real names match word-for-word in one direction.
	PickLooseMatch PickType = "looseMatch"

	// PickMainCharacterFallback means the generic, non-variant entry was used.
	PickMainCharacterFallback PickType = "mainCharacterFallback"
)

// PickTypes returns the accepted pick types from most to least specific.
func PickTypes() []PickType {
	return []PickType{
		PickExactMatch,
		PickSecretIdentity,
		PickRealName,
		PickLooseMatch,
		PickMainCharacterFallback,
	}
}

// String returns the string representation of a pick type.
func (p PickType) String() string {
	return string(p)
}

// Matched reports whether the pick type denotes an accepted match.
func (p PickType) Matched() bool {
	return p != "" && p != PickNone
}

// IsGeneric reports whether the match points at the generic character entry
// rather than the specific variant.
func (p PickType) IsGeneric() bool {
	return p == PickMainCharacterFallback
}

// Rank returns the specificity of the pick type, 1 being the most specific.
// Unknown and empty pick types rank 0.
func (p PickType) Rank() int {
	for i, pt := range PickTypes() {
		if pt == p {
			return i + 1
		}
	}
	return 0
}
