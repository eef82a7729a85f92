package tuple_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/tuples/tuple"
	"github.com/amp-labs/tuples/zero"
)

func TestGetByPosition(t *testing.T) {
	t.Parallel()

	tup := tuple.NewTuple5(uint8(0), uint16(1), uint32(2), uint64(3), 'a')

	assert.Equal(t, 5, tup.Len())
	assert.Equal(t, uint8(0), tup.Get0())
	assert.Equal(t, uint16(1), tup.Get1())
	assert.Equal(t, uint32(2), tup.Get2())
	assert.Equal(t, uint64(3), tup.Get3())
	assert.Equal(t, 'a', tup.Get4())

	assert.Equal(t, uint8(0), tup.First())
	assert.Equal(t, 'a', tup.Last())
}

func TestReplace(t *testing.T) {
	t.Parallel()

	tup := tuple.NewTuple2(uint32(10), uint64(20))

	old := tup.Replace0(uint32(30))

	assert.Equal(t, uint32(10), old)
	assert.Equal(t, uint32(30), tup.Get0())
	assert.Equal(t, uint64(20), tup.Get1())
}

func TestTake(t *testing.T) {
	t.Parallel()

	tup := tuple.NewTuple3("hello", 42, 3.14)

	s := tup.Take0()

	assert.Equal(t, "hello", s)
	assert.True(t, zero.IsZero(tup.Get0()))
	assert.Equal(t, 3, tup.Len())
	assert.Equal(t, 42, tup.Get1())
	assert.InEpsilon(t, 3.14, tup.Get2(), 1e-9)
}

func TestMap(t *testing.T) {
	t.Parallel()

	tup := tuple.NewTuple3("a", uint8(1), 2)

	mapped := tup.Map0(strings.ToUpper).Map1(func(v uint8) uint8 { return v + 1 })

	assert.Equal(t, "A", mapped.Get0())
	assert.Equal(t, uint8(2), mapped.Get1())
	assert.Equal(t, 2, mapped.Get2())

	// Map consumes a copy; the receiver is untouched.
	assert.Equal(t, "a", tup.Get0())
}

func TestApply(t *testing.T) {
	t.Parallel()

	tup := tuple.NewTuple2("a", 1)

	tup.Apply0(func(s *string) { *s += "b" })
	tup.Apply1(func(n *int) { *n *= 10 })

	assert.Equal(t, "ab", tup.Get0())
	assert.Equal(t, 10, tup.Get1())
}

func TestRefMutation(t *testing.T) {
	t.Parallel()

	tup := tuple.NewTuple2("a", 'b')

	*tup.Ref0() = "c"
	*tup.Ref1() = 'd'

	assert.Equal(t, tuple.NewTuple2("c", 'd'), tup)
}

func TestRefs(t *testing.T) {
	t.Parallel()

	tup := tuple.NewTuple3("a", "b", "c")
	refs := tuple.Refs3(&tup)

	// Writing through the pointer view mutates the source tuple.
	*refs.Get0() = "z"
	require.Equal(t, "z", tup.Get0())

	// A segment of the pointer view still aliases the source tuple.
	lastTwo := refs.Extract1To3()
	*lastTwo.Get1() += "d"

	assert.Equal(t, "cd", tup.Get2())
	assert.Equal(t, tuple.NewTuple3("z", "b", "cd"), tup)
}

func TestSplitRecombine(t *testing.T) {
	t.Parallel()

	tup := tuple.NewTuple5(uint8(0), uint16(1), uint32(2), uint64(3), 'a')

	t.Run("boundary 0", func(t *testing.T) {
		t.Parallel()

		left, right := tup.Split0()

		assert.Equal(t, tuple.Unit{}, left)
		assert.Equal(t, tup, right)
	})

	t.Run("boundary 2", func(t *testing.T) {
		t.Parallel()

		left, right := tup.Split2()

		assert.Equal(t, tuple.NewTuple2(uint8(0), uint16(1)), left)
		assert.Equal(t, tuple.NewTuple3(uint32(2), uint64(3), 'a'), right)

		l0, l1 := left.Values()
		r0, r1, r2 := right.Values()
		assert.Equal(t, tup, tuple.NewTuple5(l0, l1, r0, r1, r2))
	})

	t.Run("boundary 3", func(t *testing.T) {
		t.Parallel()

		left, right := tup.Split3()

		l0, l1, l2 := left.Values()
		r0, r1 := right.Values()
		assert.Equal(t, tup, tuple.NewTuple5(l0, l1, l2, r0, r1))
	})

	t.Run("boundary 5", func(t *testing.T) {
		t.Parallel()

		left, right := tup.Split5()

		assert.Equal(t, tup, left)
		assert.Equal(t, tuple.Unit{}, right)
	})
}

func TestSplitAroundElement(t *testing.T) {
	t.Parallel()

	tup := tuple.NewTuple5(uint8(1), uint16(2), uint32(3), uint64(4), int8(5))

	t.Run("left keeps the boundary element", func(t *testing.T) {
		t.Parallel()

		left, right := tup.SplitLeft2()

		assert.Equal(t, tuple.NewTuple3(uint8(1), uint16(2), uint32(3)), left)
		assert.Equal(t, tuple.NewTuple2(uint64(4), int8(5)), right)
	})

	t.Run("right keeps the boundary element", func(t *testing.T) {
		t.Parallel()

		left, right := tup.SplitRight2()

		assert.Equal(t, tuple.NewTuple2(uint8(1), uint16(2)), left)
		assert.Equal(t, tuple.NewTuple3(uint32(3), uint64(4), int8(5)), right)
	})

	t.Run("exclusive isolates the boundary element", func(t *testing.T) {
		t.Parallel()

		left, elem, right := tup.SplitExclusive2()

		assert.Equal(t, tuple.NewTuple2(uint8(1), uint16(2)), left)
		assert.Equal(t, uint32(3), elem)
		assert.Equal(t, tuple.NewTuple2(uint64(4), int8(5)), right)
	})

	t.Run("exclusive at the edges", func(t *testing.T) {
		t.Parallel()

		left, elem, right := tup.SplitExclusive0()

		assert.Equal(t, tuple.Unit{}, left)
		assert.Equal(t, uint8(1), elem)
		assert.Equal(t, tuple.NewTuple4(uint16(2), uint32(3), uint64(4), int8(5)), right)

		left2, elem2, right2 := tup.SplitExclusive4()

		assert.Equal(t, tuple.NewTuple4(uint8(1), uint16(2), uint32(3), uint64(4)), left2)
		assert.Equal(t, int8(5), elem2)
		assert.Equal(t, tuple.Unit{}, right2)
	})
}

func TestExtract(t *testing.T) {
	t.Parallel()

	tup := tuple.NewTuple8(uint8(0), uint16(1), uint32(2), uint64(3), uint(4), uint8(5), uint16(6), uint32(7))

	assert.Equal(t, tuple.NewTuple3(uint16(1), uint32(2), uint64(3)), tup.Extract1To4())
	assert.Equal(t, tuple.NewTuple4(uint32(2), uint64(3), uint(4), uint8(5)), tup.Extract2To6())
	assert.Equal(t, tuple.NewTuple1(uint8(0)), tup.Extract0To1())
}

func TestSwap(t *testing.T) {
	t.Parallel()

	t.Run("swaps same-typed slots", func(t *testing.T) {
		t.Parallel()

		tup := tuple.NewTuple5(uint32(1), "x", uint32(2), 'y', uint32(3))

		tuple.Swap0And2Of5(&tup)

		assert.Equal(t, tuple.NewTuple5(uint32(2), "x", uint32(1), 'y', uint32(3)), tup)
	})

	t.Run("double swap restores the tuple", func(t *testing.T) {
		t.Parallel()

		tup := tuple.NewTuple5(uint32(1), "x", uint32(2), 'y', uint32(3))
		orig := tup

		tuple.Swap0And4Of5(&tup)
		tuple.Swap0And4Of5(&tup)

		assert.Equal(t, orig, tup)
	})
}

func TestPop(t *testing.T) {
	t.Parallel()

	tup := tuple.NewTuple4(uint8(1), uint16(2), uint32(3), uint64(4))

	t.Run("pops the addressed element", func(t *testing.T) {
		t.Parallel()

		popped, rest := tup.Pop2()

		assert.Equal(t, uint32(3), popped)
		assert.Equal(t, tuple.NewTuple3(uint8(1), uint16(2), uint64(4)), rest)
	})

	t.Run("reinserting reproduces the original", func(t *testing.T) {
		t.Parallel()

		popped, rest := tup.Pop1()

		r0, r1, r2 := rest.Values()
		assert.Equal(t, tup, tuple.NewTuple4(r0, popped, r1, r2))
	})

	t.Run("popping the only slot leaves Unit", func(t *testing.T) {
		t.Parallel()

		single := tuple.NewTuple1("only")

		popped, rest := single.Pop0()

		assert.Equal(t, "only", popped)
		assert.Equal(t, tuple.Unit{}, rest)
		assert.Equal(t, 0, rest.Len())
	})

	t.Run("pop last", func(t *testing.T) {
		t.Parallel()

		popped, rest := tup.PopLast()

		assert.Equal(t, uint64(4), popped)
		assert.Equal(t, tuple.NewTuple3(uint8(1), uint16(2), uint32(3)), rest)
	})
}

func TestLastResolvesToFinalSlot(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a", tuple.NewTuple1("a").Last())
	assert.Equal(t, 2, tuple.NewTuple2("a", 2).Last())
	assert.Equal(t, 'c', tuple.NewTuple3("a", 2, 'c').Last())

	big := tuple.NewTuple12(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, "eleven")
	assert.Equal(t, 12, big.Len())
	assert.Equal(t, "eleven", big.Last())
}

func TestArityInvariants(t *testing.T) {
	t.Parallel()

	tup := tuple.NewTuple6("a", 1, 'c', 2.5, uint8(4), true)

	t.Run("split parts sum to the arity", func(t *testing.T) {
		t.Parallel()

		left, right := tup.Split4()
		assert.Equal(t, tup.Len(), left.Len()+right.Len())
	})

	t.Run("pop parts sum to the arity", func(t *testing.T) {
		t.Parallel()

		_, rest := tup.Pop3()
		assert.Equal(t, tup.Len(), rest.Len()+1)
	})

	t.Run("exclusive split parts sum to the arity", func(t *testing.T) {
		t.Parallel()

		left, _, right := tup.SplitExclusive3()
		assert.Equal(t, tup.Len(), left.Len()+right.Len()+1)
	})
}

// Person and Employee give the same logical field different positions; a
// marker key names it uniformly across both shapes.
type (
	Person   = tuple.Tuple3[string, uint8, float64]
	Employee = tuple.Tuple4[uint8, string, string, bool]
)

type PersonAgeKey struct{}

func (PersonAgeKey) From(t Person) uint8 { return t.Get1() }

func (PersonAgeKey) FromRef(t *Person) *uint8 { return t.Ref1() }

type EmployeeAgeKey struct{}

func (EmployeeAgeKey) From(t Employee) uint8 { return t.Get0() }

func (EmployeeAgeKey) FromRef(t *Employee) *uint8 { return t.Ref0() }

var (
	_ tuple.Key[Person, uint8]      = PersonAgeKey{}
	_ tuple.RefKey[Person, uint8]   = PersonAgeKey{}
	_ tuple.Key[Employee, uint8]    = EmployeeAgeKey{}
	_ tuple.RefKey[Employee, uint8] = EmployeeAgeKey{}
)

func age[TT any](t TT, key tuple.Key[TT, uint8]) uint8 {
	return key.From(t)
}

func TestMarkerKeys(t *testing.T) {
	t.Parallel()

	person := tuple.NewTuple3("Alice", uint8(67), 3.5)
	employee := tuple.NewTuple4(uint8(29), "Diana", "engineering", true)

	t.Run("one function reads the keyed slot of both shapes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, uint8(67), age(person, PersonAgeKey{}))
		assert.Equal(t, uint8(29), age(employee, EmployeeAgeKey{}))
	})

	t.Run("At applies a key at its shape's position", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, uint8(67), tuple.At(person, PersonAgeKey{}))
		assert.Equal(t, uint8(29), tuple.At(employee, EmployeeAgeKey{}))
	})

	t.Run("ref keys mutate the keyed slot", func(t *testing.T) {
		t.Parallel()

		p := person
		ref := tuple.AtRef(&p, PersonAgeKey{})
		*ref += 1

		require.Equal(t, uint8(68), age(p, PersonAgeKey{}))
		assert.Equal(t, uint8(67), age(person, PersonAgeKey{}))
	})
}

func TestUnit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, tuple.Unit{}.Len())
}
