package errors_test

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/agentstation/heromap/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "character",
			ID:       "https://en.wikipedia.org/wiki/Thor_(Marvel_Comics)",
		}
		assert.Equal(t, "character with ID https://en.wikipedia.org/wiki/Thor_(Marvel_Comics) not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("catalog", "marvelApi")
		wrapped := errors.Join(errors.New("failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "wikipediaUrl",
			Message: "cannot be empty",
		}
		assert.Equal(t, "validation failed for field wikipediaUrl: cannot be empty", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "broken join"}
		assert.Equal(t, "validation failed: broken join", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewValidationError("concurrency", -1, "must be positive")
		assert.Contains(t, err.Error(), "concurrency")
		assert.Contains(t, err.Error(), "must be positive")
	})
}

func TestDuplicateKeyError(t *testing.T) {
	err := &pkgerrors.DuplicateKeyError{Source: "infobox", Key: "https://en.wikipedia.org/wiki/Hulk"}
	assert.Equal(t, "duplicate infobox record for key https://en.wikipedia.org/wiki/Hulk", err.Error())
	assert.True(t, pkgerrors.IsAlreadyExists(err))
	assert.True(t, pkgerrors.IsValidationError(err))
}

func TestWrappedChains(t *testing.T) {
	t.Run("resource error keeps validation cause", func(t *testing.T) {
		cause := pkgerrors.NewValidationError("wikipediaUrl", "", "cannot be empty")
		err := pkgerrors.WrapResource("merge", "character", "", cause)
		require.Error(t, err)
		assert.Equal(t, "failed to merge character: validation failed for field wikipediaUrl: cannot be empty", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))

		var target *pkgerrors.ValidationError
		require.True(t, pkgerrors.As(err, &target))
		assert.Equal(t, "wikipediaUrl", target.Field)
	})

	t.Run("io error", func(t *testing.T) {
		cause := fmt.Errorf("permission denied")
		err := pkgerrors.WrapIO("write", "/tmp/characters.json", cause)
		assert.Equal(t, "IO error during write of /tmp/characters.json: permission denied", err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("parse error", func(t *testing.T) {
		cause := fmt.Errorf("unexpected token")
		err := pkgerrors.WrapParse("yaml", "infobox.json", cause)
		assert.Equal(t, "parse error in yaml file infobox.json: unexpected token", err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("config error", func(t *testing.T) {
		err := pkgerrors.NewConfigError("logging", "unknown format", nil)
		assert.Equal(t, "configuration error in logging: unknown format", err.Error())
		assert.Nil(t, errors.Unwrap(err))
	})

	t.Run("nil passthrough", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapIO("read", "x", nil))
		assert.NoError(t, pkgerrors.WrapParse("json", "x", nil))
		assert.NoError(t, pkgerrors.WrapResource("load", "snapshot", "", nil))
		assert.NoError(t, pkgerrors.WrapValidation("field", nil))
	})
}

func TestWrapTargets(t *testing.T) {
	cause := fmt.Errorf("mapping value not allowed")

	var parse *pkgerrors.ParseError
	require.True(t, pkgerrors.As(pkgerrors.WrapParse("yaml", "dbpedia.yaml", cause), &parse))
	assert.Equal(t, "dbpedia.yaml", parse.File)
	assert.Same(t, cause, parse.Err)

	var io *pkgerrors.IOError
	require.True(t, pkgerrors.As(pkgerrors.WrapIO("rename", "", cause), &io))
	assert.Equal(t, "IO error during rename: mapping value not allowed", io.Error())

	empty := &pkgerrors.ResourceError{Operation: "load", Resource: "snapshot"}
	assert.Equal(t, "failed to load snapshot: ", empty.Error())
}
