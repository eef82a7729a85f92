package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/tuples/internal/gen"
)

func TestRunWritesEveryArity(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	require.NoError(t, run(slogt.New(t), dir, 4))

	for n := 1; n <= 4; n++ {
		data, err := os.ReadFile(filepath.Join(dir, gen.ArityFileName(n)))
		require.NoError(t, err)
		assert.Contains(t, string(data), "// Code generated by tuplegen; DO NOT EDIT.")
	}

	_, err := os.Stat(filepath.Join(dir, gen.ArityFileName(5)))
	assert.True(t, os.IsNotExist(err))
}

func TestRunRejectsBadCeilings(t *testing.T) {
	t.Parallel()

	log := slogt.New(t)

	assert.ErrorIs(t, run(log, t.TempDir(), 0), gen.ErrCeiling)
	assert.ErrorIs(t, run(log, t.TempDir(), gen.ExtendedMaxArity+1), gen.ErrCeiling)
}
