package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByType(t *testing.T) {
	t.Parallel()

	slots := []string{"uint8", "uint16", "uint32", "uint64", "rune"}

	t.Run("resolves a unique type", func(t *testing.T) {
		t.Parallel()

		pos, err := ByType(slots, "uint32")
		require.NoError(t, err)
		assert.Equal(t, 2, pos)
	})

	t.Run("normalizes whitespace", func(t *testing.T) {
		t.Parallel()

		pos, err := ByType([]string{"map[string] int", "string"}, "map[string]   int")
		require.NoError(t, err)
		assert.Equal(t, 0, pos)
	})

	t.Run("rejects a missing type", func(t *testing.T) {
		t.Parallel()

		_, err := ByType(slots, "string")
		require.ErrorIs(t, err, ErrTypeNotFound)
	})

	t.Run("rejects an ambiguous type", func(t *testing.T) {
		t.Parallel()

		_, err := ByType([]string{"uint32", "string", "uint32"}, "uint32")
		require.ErrorIs(t, err, ErrAmbiguousType)
		assert.ErrorContains(t, err, "slots 0 and 2")
	})

	t.Run("never picks the first of many matches", func(t *testing.T) {
		t.Parallel()

		_, err := ByType([]string{"int", "int"}, "int")
		assert.ErrorIs(t, err, ErrAmbiguousType)
	})
}

func TestCheck(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Check(3, 0))
	assert.NoError(t, Check(3, 2))
	assert.ErrorIs(t, Check(3, 3), ErrOutOfRange)
	assert.ErrorIs(t, Check(3, -1), ErrOutOfRange)
	assert.ErrorIs(t, Check(0, 0), ErrOutOfRange)
}

func TestLast(t *testing.T) {
	t.Parallel()

	for arity := 1; arity <= 24; arity++ {
		pos, err := Last(arity)
		require.NoError(t, err)
		assert.Equal(t, arity-1, pos)
	}

	_, err := Last(0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestArithmetic(t *testing.T) {
	t.Parallel()

	t.Run("add stays in range", func(t *testing.T) {
		t.Parallel()

		pos, err := Add(6, 2, 3)
		require.NoError(t, err)
		assert.Equal(t, 5, pos)

		_, err = Add(6, 2, 4)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("sub rejects negative results", func(t *testing.T) {
		t.Parallel()

		pos, err := Sub(5, 2)
		require.NoError(t, err)
		assert.Equal(t, 3, pos)

		pos, err = Sub(4, 4)
		require.NoError(t, err)
		assert.Equal(t, 0, pos)

		_, err = Sub(2, 10)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("saturating sub clamps at zero", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 3, SaturatingSub(5, 2))
		assert.Equal(t, 0, SaturatingSub(2, 10))
		assert.Equal(t, 0, SaturatingSub(4, 4))
	})
}

func TestRange(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Range(5, 1, 4))
	assert.NoError(t, Range(5, 0, 5))
	assert.ErrorIs(t, Range(5, 3, 3), ErrInvalidRange)
	assert.ErrorIs(t, Range(5, 4, 2), ErrInvalidRange)
	assert.ErrorIs(t, Range(5, -1, 2), ErrOutOfRange)
	assert.ErrorIs(t, Range(5, 2, 6), ErrOutOfRange)
}
