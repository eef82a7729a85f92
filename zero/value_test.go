package zero_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amp-labs/tuples/zero"
)

type record struct {
	Name string
	N    int
}

func TestValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, zero.Value[int]())
	assert.Equal(t, "", zero.Value[string]())
	assert.Equal(t, record{}, zero.Value[record]())
	assert.Nil(t, zero.Value[*record]())
	assert.Nil(t, zero.Value[[]int]())
}

func TestIsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, zero.IsZero(0))
	assert.True(t, zero.IsZero(""))
	assert.True(t, zero.IsZero(record{}))
	assert.True(t, zero.IsZero[[]string](nil))

	assert.False(t, zero.IsZero(42))
	assert.False(t, zero.IsZero("taken"))
	assert.False(t, zero.IsZero(record{Name: "x"}))
	assert.False(t, zero.IsZero([]string{}))
}

func TestReset(t *testing.T) {
	t.Parallel()

	s := "hello"
	old := zero.Reset(&s)

	assert.Equal(t, "hello", old)
	assert.Empty(t, s)

	n := 7
	assert.Equal(t, 7, zero.Reset(&n))
	assert.Zero(t, n)
}
