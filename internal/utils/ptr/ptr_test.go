package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTo(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		s := "Thor"
		p := To(s)
		require.NotNil(t, p)
		assert.Equal(t, s, *p)
		assert.NotSame(t, &s, p)
	})

	t.Run("custom type", func(t *testing.T) {
		type URL string
		p := To(URL("https://en.wikipedia.org/wiki/Thor_(Marvel_Comics)"))
		require.NotNil(t, p)
		assert.Equal(t, URL("https://en.wikipedia.org/wiki/Thor_(Marvel_Comics)"), *p)
	})
}

func TestString(t *testing.T) {
	p := String("")
	require.NotNil(t, p)
	assert.Equal(t, "", *p)
}

func TestNonEmpty(t *testing.T) {
	assert.Nil(t, NonEmpty(""))

	p := NonEmpty("God of Thunder")
	require.NotNil(t, p)
	assert.Equal(t, "God of Thunder", *p)
}

func TestDeref(t *testing.T) {
	assert.Equal(t, "", Deref[string](nil))
	assert.Equal(t, 0, Deref[int](nil))
	assert.Equal(t, "x", Deref(String("x")))
}

func TestOr(t *testing.T) {
	assert.Equal(t, "-", Or(nil, "-"))
	assert.Equal(t, "x", Or(String("x"), "-"))
	assert.Equal(t, 3, Or(To(3), 0))
}

func TestMutationIndependence(t *testing.T) {
	original := "original"
	p := String(original)
	*p = "modified"

	assert.Equal(t, "original", original)
	assert.Equal(t, "modified", *p)
}
