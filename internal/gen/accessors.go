package gen

import (
	"fmt"
	"go/format"
	"sort"
	"strings"
	"unicode"

	"github.com/amp-labs/tuples/index"
	"github.com/amp-labs/tuples/internal/manifest"
)

// Accessors renders the typed accessor file for a validated manifest: one
// alias, constructor, set of unique-type accessors, and set of marker keys
// per declared shape. The output is gofmt-formatted.
func (e *Emitter) Accessors(f *manifest.File) ([]byte, error) {
	var b strings.Builder

	b.WriteString(header("typedgen"))
	fmt.Fprintf(&b, "package %s\n\n", f.Package)

	imports := append([]string{e.tupleImport()}, f.Imports...)
	sort.Strings(imports)

	b.WriteString("import (\n")

	for _, path := range imports {
		fmt.Fprintf(&b, "\t%q\n", path)
	}

	b.WriteString(")\n\n")

	for i := range f.Tuples {
		if err := e.writeShape(&b, &f.Tuples[i]); err != nil {
			return nil, err
		}
	}

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("formatting package %s: %w", f.Package, err)
	}

	e.logger().Debug("rendered accessor file", "package", f.Package, "shapes", len(f.Tuples), "bytes", len(src))

	return src, nil
}

func (e *Emitter) writeShape(b *strings.Builder, s *manifest.Shape) error {
	n := s.Arity()
	elems := strings.Join(s.Elements, ", ")

	fmt.Fprintf(b, "// %s is a named tuple shape of (%s).\n", s.Name, elems)
	fmt.Fprintf(b, "type %s = tuple.Tuple%d[%s]\n\n", s.Name, n, elems)

	params := make([]string, n)
	for i, typ := range s.Elements {
		params[i] = fmt.Sprintf("%s %s", paramName(i), typ)
	}

	names := make([]string, n)
	for i := range n {
		names[i] = paramName(i)
	}

	fmt.Fprintf(b, "// New%s returns a %s holding the given elements in slot order.\n", s.Name, s.Name)
	fmt.Fprintf(b, "func New%s(%s) %s {\n", s.Name, strings.Join(params, ", "), s.Name)
	fmt.Fprintf(b, "\treturn tuple.NewTuple%d(%s)\n", n, strings.Join(names, ", "))
	b.WriteString("}\n\n")

	for _, typ := range s.ByType {
		if err := e.writeByType(b, s, typ); err != nil {
			return err
		}
	}

	keyNames := make([]string, 0, len(s.Keys))
	for name := range s.Keys {
		keyNames = append(keyNames, name)
	}

	sort.Strings(keyNames)

	for _, name := range keyNames {
		if err := e.writeKey(b, s, name, s.Keys[name]); err != nil {
			return err
		}
	}

	return nil
}

func (e *Emitter) writeByType(b *strings.Builder, s *manifest.Shape, typ string) error {
	pos, err := index.ByType(s.Elements, typ)
	if err != nil {
		return fmt.Errorf("shape %q: %w", s.Name, err)
	}

	accessor := s.Name + typeIdent(typ)

	fmt.Fprintf(b, "// %s returns the %s element of t, unique at slot %d.\n", accessor, typ, pos)
	fmt.Fprintf(b, "func %s(t %s) %s { return t.Get%d() }\n\n", accessor, s.Name, typ, pos)

	fmt.Fprintf(b, "// %sRef returns a pointer to the %s element of t, unique at slot %d.\n", accessor, typ, pos)
	fmt.Fprintf(b, "func %sRef(t *%s) *%s { return t.Ref%d() }\n\n", accessor, s.Name, typ, pos)

	rest := make([]string, 0, s.Arity()-1)
	rest = append(rest, s.Elements[:pos]...)
	rest = append(rest, s.Elements[pos+1:]...)

	fmt.Fprintf(b, "// %sPop%s removes the %s element of t, returning it with the remainder.\n", s.Name, typeIdent(typ), typ)
	fmt.Fprintf(b, "func %sPop%s(t %s) (%s, tuple.%s) { return t.Pop%d() }\n\n",
		s.Name, typeIdent(typ), s.Name, typ, tupleOf(rest), pos)

	return nil
}

func (e *Emitter) writeKey(b *strings.Builder, s *manifest.Shape, name string, ref manifest.KeyRef) error {
	pos, err := s.Resolve(ref)
	if err != nil {
		return fmt.Errorf("shape %q: key %q: %w", s.Name, name, err)
	}

	keyType := s.Name + name + "Key"
	elem := s.Elements[pos]

	fmt.Fprintf(b, "// %s keys the %s slot of %s (slot %d).\n", keyType, name, s.Name, pos)
	fmt.Fprintf(b, "type %s struct{}\n\n", keyType)

	fmt.Fprintf(b, "// From returns the %s element of t.\n", name)
	fmt.Fprintf(b, "func (%s) From(t %s) %s { return t.Get%d() }\n\n", keyType, s.Name, elem, pos)

	fmt.Fprintf(b, "// FromRef returns a pointer to the %s element of t.\n", name)
	fmt.Fprintf(b, "func (%s) FromRef(t *%s) *%s { return t.Ref%d() }\n\n", keyType, s.Name, elem, pos)

	b.WriteString("var (\n")
	fmt.Fprintf(b, "\t_ tuple.Key[%s, %s] = %s{}\n", s.Name, elem, keyType)
	fmt.Fprintf(b, "\t_ tuple.RefKey[%s, %s] = %s{}\n", s.Name, elem, keyType)
	b.WriteString(")\n\n")

	return nil
}

// typeIdent derives an exported identifier fragment from a type expression:
// uint32 becomes Uint32, time.Time becomes TimeTime, []byte becomes Byte.
func typeIdent(typ string) string {
	var b strings.Builder

	boundary := true

	for _, r := range typ {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			boundary = true

			continue
		}

		if boundary {
			b.WriteRune(unicode.ToUpper(r))

			boundary = false

			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}
