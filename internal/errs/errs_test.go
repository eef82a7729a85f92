package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSentinel = errors.New("boom")

func TestCollection(t *testing.T) {
	t.Parallel()

	t.Run("empty collection has no error", func(t *testing.T) {
		t.Parallel()

		var c Collection

		assert.False(t, c.HasError())
		assert.NoError(t, c.Err())
	})

	t.Run("nil errors are ignored", func(t *testing.T) {
		t.Parallel()

		var c Collection

		c.Add(nil)

		assert.False(t, c.HasError())
	})

	t.Run("single error is returned as is", func(t *testing.T) {
		t.Parallel()

		var c Collection

		c.Add(errSentinel)

		require.True(t, c.HasError())
		assert.Equal(t, errSentinel, c.Err())
	})

	t.Run("multiple errors are joined", func(t *testing.T) {
		t.Parallel()

		var c Collection

		c.Add(errSentinel)
		c.Addf("shape %q: %w", "Record", errSentinel)

		err := c.Err()
		require.Error(t, err)
		assert.ErrorIs(t, err, errSentinel)
		assert.ErrorContains(t, err, `shape "Record"`)
	})
}
