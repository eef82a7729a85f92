// Package gen renders the source files of the tuple package and the typed
// accessor files produced from shape manifests.
//
// Everything here is driven by a single max-arity value: raising the ceiling
// renders more per-arity files, nothing else changes. Rendering is pure text
// assembly finished by go/format, so the output is stable and diffable.
package gen

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

const (
	// DefaultMaxArity is the ceiling the committed tuple package is
	// generated with.
	DefaultMaxArity = 12

	// ExtendedMaxArity is the highest ceiling tuplegen accepts. Raising it
	// further only costs generation and compile time, never runtime.
	ExtendedMaxArity = 24
)

// ErrCeiling is returned for arities outside [1, ExtendedMaxArity].
var ErrCeiling = errors.New("arity outside the supported ceiling")

// Emitter renders generated source files.
type Emitter struct {
	// ZeroImport is the import path of the zero-value helpers used by the
	// generated Take methods. Defaults to the module's zero package.
	ZeroImport string

	// TupleImport is the import path of the tuple package referenced by
	// generated accessor files. Defaults to the module's tuple package.
	TupleImport string

	log *slog.Logger
}

// NewEmitter returns an Emitter logging through log. A nil log discards
// debug output.
func NewEmitter(log *slog.Logger) *Emitter {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Emitter{log: log}
}

func (e *Emitter) zeroImport() string {
	if e.ZeroImport != "" {
		return e.ZeroImport
	}

	return "github.com/amp-labs/tuples/zero"
}

func (e *Emitter) tupleImport() string {
	if e.TupleImport != "" {
		return e.TupleImport
	}

	return "github.com/amp-labs/tuples/tuple"
}

func (e *Emitter) logger() *slog.Logger {
	if e.log == nil {
		return slog.New(slog.DiscardHandler)
	}

	return e.log
}

func header(tool string) string {
	return fmt.Sprintf("// Code generated by %s; DO NOT EDIT.\n\n", tool)
}

// ordinals names constructor parameters first through twelfth; positions
// beyond the table fall back to vN.
var ordinals = [...]string{
	"first", "second", "third", "fourth", "fifth", "sixth",
	"seventh", "eighth", "ninth", "tenth", "eleventh", "twelfth",
}

func paramName(i int) string {
	if i < len(ordinals) {
		return ordinals[i]
	}

	return fmt.Sprintf("v%d", i)
}

func typeNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("T%d", i)
	}

	return names
}

func typeParamsDecl(n int) string {
	return "[" + strings.Join(typeNames(n), ", ") + " any]"
}

func typeArgs(n int) string {
	return "[" + strings.Join(typeNames(n), ", ") + "]"
}

// tupleOf names the tuple type holding the given type expressions; the
// empty list is the Unit tuple.
func tupleOf(types []string) string {
	if len(types) == 0 {
		return "Unit"
	}

	return fmt.Sprintf("Tuple%d[%s]", len(types), strings.Join(types, ", "))
}

// ctorOf builds the constructor expression assembling the given element
// expressions into a tuple.
func ctorOf(elems []string) string {
	if len(elems) == 0 {
		return "Unit{}"
	}

	return fmt.Sprintf("NewTuple%d(%s)", len(elems), strings.Join(elems, ", "))
}

func slotExprs(from, to int) []string {
	exprs := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		exprs = append(exprs, fmt.Sprintf("t.v%d", i))
	}

	return exprs
}

func slotTypes(from, to int) []string {
	types := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		types = append(types, fmt.Sprintf("T%d", i))
	}

	return types
}
