package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickTypeOrdering(t *testing.T) {
	assert.Equal(t, 1, PickExactMatch.Rank())
	assert.Equal(t, 2, PickSecretIdentity.Rank())
	assert.Equal(t, 3, PickRealName.Rank())
	assert.Equal(t, 4, PickLooseMatch.Rank())
	assert.Equal(t, 5, PickMainCharacterFallback.Rank())
	assert.Equal(t, 0, PickNone.Rank())
	assert.Equal(t, 0, PickType("").Rank())
}

func TestPickTypePredicates(t *testing.T) {
	assert.True(t, PickMainCharacterFallback.IsGeneric())
	assert.False(t, PickExactMatch.IsGeneric())
	assert.False(t, PickType("").IsGeneric())

	assert.True(t, PickLooseMatch.Matched())
	assert.False(t, PickNone.Matched())
	assert.False(t, PickType("").Matched())
}
