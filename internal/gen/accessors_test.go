package gen

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/tuples/index"
	"github.com/amp-labs/tuples/internal/manifest"
)

func recordManifest() *manifest.File {
	two := 2

	return &manifest.File{
		Package: "records",
		Tuples: []manifest.Shape{
			{
				Name:     "Record",
				Elements: []string{"uint8", "uint16", "uint32"},
				ByType:   []string{"uint32"},
				Keys: map[string]manifest.KeyRef{
					"Age":  {Type: "uint8"},
					"Tag":  {Index: &two},
					"Seen": {Last: true},
				},
			},
		},
	}
}

func TestAccessors(t *testing.T) {
	t.Parallel()

	e := NewEmitter(slogt.New(t))

	src, err := e.Accessors(recordManifest())
	require.NoError(t, err)

	text := string(src)

	assert.True(t, strings.HasPrefix(text, "// Code generated by typedgen; DO NOT EDIT.\n"))
	assert.Contains(t, text, "package records")
	assert.Contains(t, text, `"github.com/amp-labs/tuples/tuple"`)

	assert.Contains(t, text, "type Record = tuple.Tuple3[uint8, uint16, uint32]")
	assert.Contains(t, text, "func NewRecord(first uint8, second uint16, third uint32) Record")

	assert.Contains(t, text, "func RecordUint32(t Record) uint32 { return t.Get2() }")
	assert.Contains(t, text, "func RecordUint32Ref(t *Record) *uint32 { return t.Ref2() }")
	assert.Contains(t, text, "func RecordPopUint32(t Record) (uint32, tuple.Tuple2[uint8, uint16]) { return t.Pop2() }")

	assert.Contains(t, text, "type RecordAgeKey struct{}")
	assert.Contains(t, text, "func (RecordAgeKey) From(t Record) uint8 { return t.Get0() }")
	assert.Contains(t, text, "func (RecordAgeKey) FromRef(t *Record) *uint8 { return t.Ref0() }")

	assert.Contains(t, text, "type RecordTagKey struct{}")
	assert.Contains(t, text, "func (RecordTagKey) From(t Record) uint32 { return t.Get2() }")

	// Last resolves to the final slot of the shape.
	assert.Contains(t, text, "type RecordSeenKey struct{}")
	assert.Contains(t, text, "func (RecordSeenKey) From(t Record) uint32 { return t.Get2() }")

	// Compile-time assertions pin the marker interfaces.
	assert.Contains(t, text, "tuple.Key[Record, uint8]")
	assert.Contains(t, text, "tuple.RefKey[Record, uint8]")

	fset := token.NewFileSet()
	_, err = parser.ParseFile(fset, "records_gen.go", src, parser.SkipObjectResolution)
	assert.NoError(t, err)
}

func TestAccessorsExtraImports(t *testing.T) {
	t.Parallel()

	e := NewEmitter(slogt.New(t))

	src, err := e.Accessors(&manifest.File{
		Package: "events",
		Imports: []string{"time"},
		Tuples: []manifest.Shape{{
			Name:     "Event",
			Elements: []string{"string", "time.Time"},
			ByType:   []string{"time.Time"},
		}},
	})
	require.NoError(t, err)

	text := string(src)
	assert.Contains(t, text, `"time"`)
	assert.Contains(t, text, "func EventTimeTime(t Event) time.Time { return t.Get1() }")
}

func TestAccessorsSurfaceResolutionFailures(t *testing.T) {
	t.Parallel()

	e := NewEmitter(slogt.New(t))

	_, err := e.Accessors(&manifest.File{
		Package: "records",
		Tuples: []manifest.Shape{{
			Name:     "Pair",
			Elements: []string{"int", "int"},
			ByType:   []string{"int"},
		}},
	})
	assert.ErrorIs(t, err, index.ErrAmbiguousType)
}

func TestTypeIdent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Uint32", typeIdent("uint32"))
	assert.Equal(t, "TimeTime", typeIdent("time.Time"))
	assert.Equal(t, "Byte", typeIdent("[]byte"))
	assert.Equal(t, "MapStringInt", typeIdent("map[string]int"))
	assert.Equal(t, "Record", typeIdent("*Record"))
}
