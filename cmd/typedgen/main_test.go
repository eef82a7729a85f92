package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/tuples/index"
	"github.com/amp-labs/tuples/internal/gen"
)

const sampleManifest = `
package: records
tuples:
  - name: Record
    elements: [uint8, uint16, uint32]
    byType: [uint32]
    keys:
      Age: {type: uint8}
`

func TestRunGeneratesAccessors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "shapes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0o600))

	out := filepath.Join(dir, "shapes_gen.go")
	require.NoError(t, run(slogt.New(t), path, out, gen.DefaultMaxArity))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "package records")
	assert.Contains(t, text, "type Record = tuple.Tuple3[uint8, uint16, uint32]")
	assert.Contains(t, text, "type RecordAgeKey struct{}")
}

func TestRunFailsOnAmbiguity(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "shapes.yaml")
	manifest := `
package: records
tuples:
  - name: Pair
    elements: [int, int]
    byType: [int]
`
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o600))

	err := run(slogt.New(t), path, "", gen.DefaultMaxArity)
	assert.ErrorIs(t, err, index.ErrAmbiguousType)
}

func TestRunFailsOnMissingManifest(t *testing.T) {
	t.Parallel()

	err := run(slogt.New(t), filepath.Join(t.TempDir(), "absent.yaml"), "", gen.DefaultMaxArity)
	assert.Error(t, err)
}

func TestOutputName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "shapes_gen.go", outputName("shapes.yaml"))
	assert.Equal(t, filepath.Join("a", "b_gen.go"), outputName(filepath.Join("a", "b.yml")))
	assert.Equal(t, "shapes_gen.go", outputName("shapes"))
}
