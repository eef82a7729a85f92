package tuple_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/tuples/internal/gen"
)

// The committed per-arity files must be exactly what tuplegen renders, so
// regenerating at the default ceiling never produces a diff.
func TestCommittedFilesMatchGenerator(t *testing.T) {
	t.Parallel()

	e := gen.NewEmitter(nil)

	for n := 1; n <= gen.DefaultMaxArity; n++ {
		t.Run(gen.ArityFileName(n), func(t *testing.T) {
			t.Parallel()

			want, err := e.ArityFile(n)
			require.NoError(t, err)

			got, err := os.ReadFile(gen.ArityFileName(n))
			require.NoError(t, err)

			assert.Equal(t, string(want), string(got))
		})
	}
}
