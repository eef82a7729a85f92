package gen

import (
	"fmt"
	"go/format"
	"strings"

	"github.com/amp-labs/tuples/index"
)

// ArityFileName returns the file name holding the generated code for one
// arity, zero-padded so directory listings stay in arity order.
func ArityFileName(n int) string {
	return fmt.Sprintf("tuple%02d_gen.go", n)
}

// ArityFile renders the complete source file for tuples of arity n: the
// type, its constructor, and every positional operation. The output is
// gofmt-formatted.
func (e *Emitter) ArityFile(n int) ([]byte, error) {
	if n < 1 || n > ExtendedMaxArity {
		return nil, fmt.Errorf("%w: %d", ErrCeiling, n)
	}

	var b strings.Builder

	b.WriteString(header("tuplegen"))
	b.WriteString("package tuple\n\n")
	fmt.Fprintf(&b, "import %q\n\n", e.zeroImport())

	e.writeType(&b, n)
	e.writeAccess(&b, n)
	e.writeMutate(&b, n)
	e.writePop(&b, n)
	e.writeSplits(&b, n)
	e.writeExtracts(&b, n)
	e.writeSwaps(&b, n)

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("formatting arity %d: %w", n, err)
	}

	e.logger().Debug("rendered arity file", "arity", n, "bytes", len(src))

	return src, nil
}

func (e *Emitter) writeType(b *strings.Builder, n int) {
	args := typeArgs(n)

	if n == 1 {
		b.WriteString("// Tuple1 holds a single typed element.\n")
	} else {
		fmt.Fprintf(b, "// Tuple%d holds %d ordered, individually typed elements.\n", n, n)
	}
	fmt.Fprintf(b, "type Tuple%d%s struct {\n", n, typeParamsDecl(n))

	for i := range n {
		fmt.Fprintf(b, "\tv%d T%d\n", i, i)
	}

	b.WriteString("}\n\n")

	params := make([]string, n)
	for i := range n {
		params[i] = fmt.Sprintf("%s T%d", paramName(i), i)
	}

	fields := make([]string, n)
	for i := range n {
		fields[i] = fmt.Sprintf("v%d: %s", i, paramName(i))
	}

	fmt.Fprintf(b, "// NewTuple%d returns a Tuple%d holding the given elements in slot order.\n", n, n)
	fmt.Fprintf(b, "func NewTuple%d%s(%s) Tuple%d%s {\n", n, typeParamsDecl(n), strings.Join(params, ", "), n, args)
	fmt.Fprintf(b, "\treturn Tuple%d%s{%s}\n", n, args, strings.Join(fields, ", "))
	b.WriteString("}\n\n")

	fmt.Fprintf(b, "// Len returns the arity of the tuple.\n")
	fmt.Fprintf(b, "func (t Tuple%d%s) Len() int { return %d }\n\n", n, args, n)

	results := strings.Join(typeNames(n), ", ")
	if n > 1 {
		results = "(" + results + ")"
	}

	fmt.Fprintf(b, "// Values returns every element in slot order.\n")
	fmt.Fprintf(b, "func (t Tuple%d%s) Values() %s {\n", n, args, results)
	fmt.Fprintf(b, "\treturn %s\n", strings.Join(slotExprs(0, n), ", "))
	b.WriteString("}\n\n")

	refTypes := make([]string, n)
	refExprs := make([]string, n)

	for i := range n {
		refTypes[i] = fmt.Sprintf("*T%d", i)
		refExprs[i] = fmt.Sprintf("&t.v%d", i)
	}

	// A Refs method would instantiate TupleN[*T0, ...] from inside
	// TupleN[T0, ...], which the compiler rejects as an instantiation
	// cycle; a free function avoids it.
	fmt.Fprintf(b, "// Refs%d returns a tuple of pointers to every slot of t.\n", n)
	fmt.Fprintf(b, "func Refs%d%s(t *Tuple%d%s) %s {\n", n, typeParamsDecl(n), n, args, tupleOf(refTypes))
	fmt.Fprintf(b, "\treturn %s\n", ctorOf(refExprs))
	b.WriteString("}\n\n")
}

func (e *Emitter) writeAccess(b *strings.Builder, n int) {
	args := typeArgs(n)
	last, _ := index.Last(n)

	fmt.Fprintf(b, "// First returns the element in slot 0.\n")
	fmt.Fprintf(b, "func (t Tuple%d%s) First() T0 { return t.v0 }\n\n", n, args)

	fmt.Fprintf(b, "// Last returns the element in the final slot.\n")
	fmt.Fprintf(b, "func (t Tuple%d%s) Last() T%d { return t.v%d }\n\n", n, args, last, last)

	for i := range n {
		fmt.Fprintf(b, "// Get%d returns the element in slot %d.\n", i, i)
		fmt.Fprintf(b, "func (t Tuple%d%s) Get%d() T%d { return t.v%d }\n\n", n, args, i, i, i)
	}

	for i := range n {
		fmt.Fprintf(b, "// Ref%d returns a pointer to slot %d.\n", i, i)
		fmt.Fprintf(b, "func (t *Tuple%d%s) Ref%d() *T%d { return &t.v%d }\n\n", n, args, i, i, i)
	}
}

func (e *Emitter) writeMutate(b *strings.Builder, n int) {
	args := typeArgs(n)

	for i := range n {
		fmt.Fprintf(b, "// Replace%d stores v in slot %d and returns the previous element.\n", i, i)
		fmt.Fprintf(b, "func (t *Tuple%d%s) Replace%d(v T%d) T%d {\n", n, args, i, i, i)
		fmt.Fprintf(b, "\told := t.v%d\n", i)
		fmt.Fprintf(b, "\tt.v%d = v\n\n", i)
		b.WriteString("\treturn old\n}\n\n")
	}

	for i := range n {
		fmt.Fprintf(b, "// Take%d resets slot %d to its zero value and returns the previous element.\n", i, i)
		fmt.Fprintf(b, "func (t *Tuple%d%s) Take%d() T%d { return zero.Reset(&t.v%d) }\n\n", n, args, i, i, i)
	}

	for i := range n {
		fmt.Fprintf(b, "// Map%d returns a copy of t with slot %d transformed by f.\n", i, i)
		fmt.Fprintf(b, "func (t Tuple%d%s) Map%d(f func(T%d) T%d) Tuple%d%s {\n", n, args, i, i, i, n, args)
		fmt.Fprintf(b, "\tt.v%d = f(t.v%d)\n\n", i, i)
		b.WriteString("\treturn t\n}\n\n")
	}

	for i := range n {
		fmt.Fprintf(b, "// Apply%d mutates slot %d in place through f.\n", i, i)
		fmt.Fprintf(b, "func (t *Tuple%d%s) Apply%d(f func(*T%d)) { f(&t.v%d) }\n\n", n, args, i, i, i)
	}
}

func (e *Emitter) writePop(b *strings.Builder, n int) {
	args := typeArgs(n)
	last, _ := index.Last(n)

	for i := range n {
		rest := append(slotTypes(0, i), slotTypes(i+1, n)...)
		exprs := append(slotExprs(0, i), slotExprs(i+1, n)...)

		fmt.Fprintf(b, "// Pop%d removes the element in slot %d, returning it with the remaining tuple.\n", i, i)
		fmt.Fprintf(b, "func (t Tuple%d%s) Pop%d() (T%d, %s) {\n", n, args, i, i, tupleOf(rest))
		fmt.Fprintf(b, "\treturn t.v%d, %s\n", i, ctorOf(exprs))
		b.WriteString("}\n\n")
	}

	rest := slotTypes(0, last)

	fmt.Fprintf(b, "// PopLast removes the final element, returning it with the remaining tuple.\n")
	fmt.Fprintf(b, "func (t Tuple%d%s) PopLast() (T%d, %s) {\n", n, args, last, tupleOf(rest))
	fmt.Fprintf(b, "\treturn t.Pop%d()\n", last)
	b.WriteString("}\n\n")
}

func (e *Emitter) writeSplits(b *strings.Builder, n int) {
	args := typeArgs(n)

	for k := 0; k <= n; k++ {
		fmt.Fprintf(b, "// Split%d partitions t into slots [0, %d) and [%d, %d).\n", k, k, k, n)
		fmt.Fprintf(b, "func (t Tuple%d%s) Split%d() (%s, %s) {\n",
			n, args, k, tupleOf(slotTypes(0, k)), tupleOf(slotTypes(k, n)))

		switch k {
		case 0:
			b.WriteString("\treturn Unit{}, t\n")
		case n:
			b.WriteString("\treturn t, Unit{}\n")
		default:
			fmt.Fprintf(b, "\treturn %s, %s\n", ctorOf(slotExprs(0, k)), ctorOf(slotExprs(k, n)))
		}

		b.WriteString("}\n\n")
	}

	for k := range n {
		fmt.Fprintf(b, "// SplitLeft%d splits around slot %d, keeping it in the left part.\n", k, k)
		fmt.Fprintf(b, "func (t Tuple%d%s) SplitLeft%d() (%s, %s) {\n",
			n, args, k, tupleOf(slotTypes(0, k+1)), tupleOf(slotTypes(k+1, n)))
		fmt.Fprintf(b, "\treturn t.Split%d()\n", k+1)
		b.WriteString("}\n\n")
	}

	for k := range n {
		fmt.Fprintf(b, "// SplitRight%d splits around slot %d, keeping it in the right part.\n", k, k)
		fmt.Fprintf(b, "func (t Tuple%d%s) SplitRight%d() (%s, %s) {\n",
			n, args, k, tupleOf(slotTypes(0, k)), tupleOf(slotTypes(k, n)))
		fmt.Fprintf(b, "\treturn t.Split%d()\n", k)
		b.WriteString("}\n\n")
	}

	for k := range n {
		fmt.Fprintf(b, "// SplitExclusive%d isolates slot %d between the parts on either side.\n", k, k)
		fmt.Fprintf(b, "func (t Tuple%d%s) SplitExclusive%d() (%s, T%d, %s) {\n",
			n, args, k, tupleOf(slotTypes(0, k)), k, tupleOf(slotTypes(k+1, n)))
		fmt.Fprintf(b, "\treturn %s, t.v%d, %s\n",
			ctorOf(slotExprs(0, k)), k, ctorOf(slotExprs(k+1, n)))
		b.WriteString("}\n\n")
	}
}

func (e *Emitter) writeExtracts(b *strings.Builder, n int) {
	args := typeArgs(n)

	for from := 0; from < n; from++ {
		for to := from + 1; to <= n; to++ {
			if from == 0 && to == n {
				continue // the full range is the tuple itself
			}

			if err := index.Range(n, from, to); err != nil {
				panic(err) // unreachable by construction
			}

			fmt.Fprintf(b, "// Extract%dTo%d returns the elements in slots [%d, %d).\n", from, to, from, to)
			fmt.Fprintf(b, "func (t Tuple%d%s) Extract%dTo%d() %s {\n",
				n, args, from, to, tupleOf(slotTypes(from, to)))
			fmt.Fprintf(b, "\treturn %s\n", ctorOf(slotExprs(from, to)))
			b.WriteString("}\n\n")
		}
	}
}

func (e *Emitter) writeSwaps(b *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			params := make([]string, 0, n-1)
			swapArgs := make([]string, 0, n)

			for k := range n {
				switch {
				case k == j:
					swapArgs = append(swapArgs, fmt.Sprintf("T%d", i))
				default:
					params = append(params, fmt.Sprintf("T%d", k))
					swapArgs = append(swapArgs, fmt.Sprintf("T%d", k))
				}
			}

			fmt.Fprintf(b, "// Swap%dAnd%dOf%d exchanges the same-typed slots %d and %d of t.\n", i, j, n, i, j)
			fmt.Fprintf(b, "func Swap%dAnd%dOf%d[%s any](t *Tuple%d[%s]) {\n",
				i, j, n, strings.Join(params, ", "), n, strings.Join(swapArgs, ", "))
			fmt.Fprintf(b, "\tt.v%d, t.v%d = t.v%d, t.v%d\n", i, j, j, i)
			b.WriteString("}\n\n")
		}
	}
}
