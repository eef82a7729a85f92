package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/tuples/index"
)

const sample = `
package: records
imports:
  - time
tuples:
  - name: Record
    elements: [uint8, uint16, uint32]
    byType: [uint32]
    keys:
      Age: {type: uint8}
      Tag: {index: 2}
      Seen: {last: true}
  - name: Event
    elements: [string, time.Time]
`

func TestParse(t *testing.T) {
	t.Parallel()

	f, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "records", f.Package)
	assert.Equal(t, []string{"time"}, f.Imports)
	require.Len(t, f.Tuples, 2)

	record := f.Tuples[0]
	assert.Equal(t, "Record", record.Name)
	assert.Equal(t, []string{"uint8", "uint16", "uint32"}, record.Elements)
	assert.Equal(t, 3, record.Arity())
	assert.Equal(t, []string{"uint32"}, record.ByType)
	assert.Len(t, record.Keys, 3)
}

func TestParseRejectsBadYAML(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("tuples: ["))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a well-formed manifest", func(t *testing.T) {
		t.Parallel()

		f, err := Parse([]byte(sample))
		require.NoError(t, err)
		assert.NoError(t, f.Validate(12))
	})

	t.Run("rejects an empty manifest", func(t *testing.T) {
		t.Parallel()

		f := &File{Package: "records"}
		assert.ErrorIs(t, f.Validate(12), ErrNoTuples)
	})

	t.Run("rejects a bad package name", func(t *testing.T) {
		t.Parallel()

		f := &File{
			Package: "my-records",
			Tuples:  []Shape{{Name: "A", Elements: []string{"int"}}},
		}
		assert.ErrorIs(t, f.Validate(12), ErrBadIdentifier)
	})

	t.Run("rejects unexported shape names", func(t *testing.T) {
		t.Parallel()

		f := &File{
			Package: "records",
			Tuples:  []Shape{{Name: "record", Elements: []string{"int"}}},
		}
		assert.ErrorIs(t, f.Validate(12), ErrBadIdentifier)
	})

	t.Run("rejects duplicate shape names", func(t *testing.T) {
		t.Parallel()

		f := &File{
			Package: "records",
			Tuples: []Shape{
				{Name: "Record", Elements: []string{"int"}},
				{Name: "Record", Elements: []string{"string"}},
			},
		}
		assert.ErrorIs(t, f.Validate(12), ErrDuplicateName)
	})

	t.Run("rejects arities beyond the ceiling", func(t *testing.T) {
		t.Parallel()

		f := &File{
			Package: "records",
			Tuples: []Shape{{
				Name:     "Wide",
				Elements: []string{"a", "b", "c", "d", "e"},
			}},
		}
		assert.ErrorIs(t, f.Validate(4), ErrArity)
	})

	t.Run("rejects ambiguous byType requests", func(t *testing.T) {
		t.Parallel()

		f := &File{
			Package: "records",
			Tuples: []Shape{{
				Name:     "Pair",
				Elements: []string{"int", "int"},
				ByType:   []string{"int"},
			}},
		}
		assert.ErrorIs(t, f.Validate(12), index.ErrAmbiguousType)
	})

	t.Run("rejects unknown byType requests", func(t *testing.T) {
		t.Parallel()

		f := &File{
			Package: "records",
			Tuples: []Shape{{
				Name:     "Pair",
				Elements: []string{"int", "string"},
				ByType:   []string{"bool"},
			}},
		}
		assert.ErrorIs(t, f.Validate(12), index.ErrTypeNotFound)
	})

	t.Run("reports every problem at once", func(t *testing.T) {
		t.Parallel()

		f := &File{
			Package: "bad-name",
			Tuples: []Shape{{
				Name:     "pair",
				Elements: []string{"int", "int"},
				ByType:   []string{"int"},
			}},
		}

		err := f.Validate(12)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrBadIdentifier)
		assert.ErrorIs(t, err, index.ErrAmbiguousType)
	})
}

func TestResolve(t *testing.T) {
	t.Parallel()

	shape := &Shape{
		Name:     "Record",
		Elements: []string{"uint8", "uint16", "uint32"},
	}

	t.Run("by unique type", func(t *testing.T) {
		t.Parallel()

		pos, err := shape.Resolve(KeyRef{Type: "uint16"})
		require.NoError(t, err)
		assert.Equal(t, 1, pos)
	})

	t.Run("by explicit index", func(t *testing.T) {
		t.Parallel()

		idx := 2
		pos, err := shape.Resolve(KeyRef{Index: &idx})
		require.NoError(t, err)
		assert.Equal(t, 2, pos)
	})

	t.Run("by last", func(t *testing.T) {
		t.Parallel()

		pos, err := shape.Resolve(KeyRef{Last: true})
		require.NoError(t, err)
		assert.Equal(t, 2, pos)
	})

	t.Run("out-of-range index", func(t *testing.T) {
		t.Parallel()

		idx := 3
		_, err := shape.Resolve(KeyRef{Index: &idx})
		assert.ErrorIs(t, err, index.ErrOutOfRange)
	})

	t.Run("empty selector", func(t *testing.T) {
		t.Parallel()

		_, err := shape.Resolve(KeyRef{})
		assert.ErrorIs(t, err, ErrKeySelector)
	})

	t.Run("conflicting selectors", func(t *testing.T) {
		t.Parallel()

		idx := 1
		_, err := shape.Resolve(KeyRef{Type: "uint8", Index: &idx})
		assert.ErrorIs(t, err, ErrKeySelector)
	})
}
