package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDecls(t *testing.T, src []byte) map[string]bool {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "gen.go", src, parser.SkipObjectResolution)
	require.NoError(t, err)

	decls := make(map[string]bool)

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			decls[d.Name.Name] = true
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					decls[ts.Name.Name] = true
				}
			}
		}
	}

	return decls
}

func TestArityFileName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "tuple01_gen.go", ArityFileName(1))
	assert.Equal(t, "tuple12_gen.go", ArityFileName(12))
	assert.Equal(t, "tuple24_gen.go", ArityFileName(24))
}

func TestArityFileRejectsBadCeilings(t *testing.T) {
	t.Parallel()

	e := NewEmitter(slogt.New(t))

	_, err := e.ArityFile(0)
	assert.ErrorIs(t, err, ErrCeiling)

	_, err = e.ArityFile(ExtendedMaxArity + 1)
	assert.ErrorIs(t, err, ErrCeiling)
}

func TestArityFileDeclarations(t *testing.T) {
	t.Parallel()

	e := NewEmitter(slogt.New(t))

	src, err := e.ArityFile(3)
	require.NoError(t, err)

	decls := parseDecls(t, src)

	for _, name := range []string{
		"Tuple3", "NewTuple3", "Len", "Values", "Refs3", "First", "Last",
		"Get0", "Get1", "Get2",
		"Ref0", "Ref1", "Ref2",
		"Replace0", "Replace1", "Replace2",
		"Take0", "Take1", "Take2",
		"Map0", "Map1", "Map2",
		"Apply0", "Apply1", "Apply2",
		"Pop0", "Pop1", "Pop2", "PopLast",
		"Split0", "Split1", "Split2", "Split3",
		"SplitLeft0", "SplitLeft1", "SplitLeft2",
		"SplitRight0", "SplitRight1", "SplitRight2",
		"SplitExclusive0", "SplitExclusive1", "SplitExclusive2",
		"Extract0To1", "Extract0To2", "Extract1To2", "Extract1To3", "Extract2To3",
		"Swap0And1Of3", "Swap0And2Of3", "Swap1And2Of3",
	} {
		assert.True(t, decls[name], "missing declaration %s", name)
	}

	// The full range is the tuple itself, never an extract.
	assert.False(t, decls["Extract0To3"])
	// Out-of-range positions must not exist.
	assert.False(t, decls["Get3"])
	assert.False(t, decls["Split4"])
}

func TestArityFileParsesAtEveryArity(t *testing.T) {
	t.Parallel()

	e := NewEmitter(slogt.New(t))

	for n := 1; n <= ExtendedMaxArity; n++ {
		t.Run(fmt.Sprintf("arity %d", n), func(t *testing.T) {
			t.Parallel()

			src, err := e.ArityFile(n)
			require.NoError(t, err)

			decls := parseDecls(t, src)
			assert.True(t, decls[fmt.Sprintf("Tuple%d", n)])
			assert.True(t, decls[fmt.Sprintf("NewTuple%d", n)])
			assert.True(t, decls["PopLast"])
		})
	}
}

func TestArityFileHeader(t *testing.T) {
	t.Parallel()

	e := NewEmitter(nil)

	src, err := e.ArityFile(2)
	require.NoError(t, err)

	text := string(src)
	assert.True(t, strings.HasPrefix(text, "// Code generated by tuplegen; DO NOT EDIT.\n"))
	assert.Contains(t, text, `import "github.com/amp-labs/tuples/zero"`)
}

func TestRefsIsAFreeFunction(t *testing.T) {
	t.Parallel()

	e := NewEmitter(slogt.New(t))

	src, err := e.ArityFile(3)
	require.NoError(t, err)

	// A Refs method would be a generic instantiation cycle; only the free
	// function form compiles.
	text := string(src)
	assert.Contains(t, text, "func Refs3[T0, T1, T2 any](t *Tuple3[T0, T1, T2]) Tuple3[*T0, *T1, *T2]")
	assert.NotContains(t, text, ") Refs()")
}

func TestSwapSignaturesRepeatTheSharedType(t *testing.T) {
	t.Parallel()

	e := NewEmitter(slogt.New(t))

	src, err := e.ArityFile(5)
	require.NoError(t, err)

	assert.Contains(t, string(src),
		"func Swap0And2Of5[T0, T1, T3, T4 any](t *Tuple5[T0, T1, T0, T3, T4])")
}
