// Package tuple provides fixed-arity heterogeneous tuples with positional
// access, mutation, and structural decomposition, all checked at compile
// time.
//
// The TupleN types and their operations are generated by cmd/tuplegen, one
// source file per arity up to a configured ceiling. Positions are part of
// the generated method names (Get2, Split3, Extract1To4), so an out-of-range
// position is simply an identifier that does not exist. Same-type swaps are
// free functions whose repeated type parameter makes them uninstantiable for
// slots of differing types. Type-driven and marker-driven access for named
// tuple shapes is generated by cmd/typedgen.
//
// Mutating operations (Ref, Replace, Take, Apply, swap functions) use
// pointer receivers; reading operations copy from value receivers; Map, Pop,
// Split and Extract consume a value receiver and return new tuples. The
// RefsN functions produce a tuple of pointers when an operation should act
// on a borrowed view instead of a copy.
package tuple

//go:generate go run github.com/amp-labs/tuples/cmd/tuplegen -dir .

// Unit is the tuple of arity zero. It appears as the empty side of splits
// at the outermost boundaries and as the remainder of popping a Tuple1.
type Unit struct{}

// Len returns the arity of the tuple.
func (Unit) Len() int { return 0 }

// Key maps a zero-size marker type onto one slot of the tuple shape TT.
//
// A marker implements Key once per concrete shape, so one polymorphic
// function can name the same logical field across structurally different
// tuples:
//
//	type PersonAgeKey struct{}
//
//	func (PersonAgeKey) From(t Person) uint8 { return t.Get0() }
//
//	func birthday[TT any](t TT, age Key[TT, uint8]) uint8 {
//		return age.From(t) + 1
//	}
//
// cmd/typedgen emits these implementations from a shape manifest.
type Key[TT, T any] interface {
	From(TT) T
}

// RefKey is the mutable counterpart of Key, yielding a pointer to the
// keyed slot.
type RefKey[TT, T any] interface {
	FromRef(*TT) *T
}

// At returns the slot of t selected by key. The same call site reads
// different positions on different shapes, as the key's implementations
// decide.
func At[TT, T any](t TT, key Key[TT, T]) T {
	return key.From(t)
}

// AtRef returns a pointer to the slot of t selected by key.
func AtRef[TT, T any](t *TT, key RefKey[TT, T]) *T {
	return key.FromRef(t)
}
