// Package index resolves tuple slot positions at generation time.
//
// A position request is either an explicit zero-based integer or the name of
// an element type that must occur in exactly one slot. Every failure mode is
// a sentinel error so that the code generators can turn it into a build
// failure; nothing in this package ever runs as part of generated code.
package index

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTypeNotFound is returned when no slot holds the requested type.
	ErrTypeNotFound = errors.New("no slot matches the requested type")

	// ErrAmbiguousType is returned when the requested type occurs in more
	// than one slot. Ambiguity is never resolved by picking the first match.
	ErrAmbiguousType = errors.New("requested type matches more than one slot")

	// ErrOutOfRange is returned when a position falls outside [0, arity).
	ErrOutOfRange = errors.New("position out of range")

	// ErrInvalidRange is returned when a range request is empty or inverted.
	ErrInvalidRange = errors.New("invalid range")
)

// Normalize canonicalizes a type expression for comparison.
// Whitespace differences never distinguish two slot types.
func Normalize(typ string) string {
	return strings.Join(strings.Fields(typ), " ")
}

// ByType resolves the position of the single slot holding the given type.
// It fails with ErrTypeNotFound when no slot matches and with
// ErrAmbiguousType when two or more do.
func ByType(slots []string, want string) (int, error) {
	want = Normalize(want)
	found := -1

	for i, slot := range slots {
		if Normalize(slot) != want {
			continue
		}

		if found >= 0 {
			return 0, fmt.Errorf("%w: %q in slots %d and %d", ErrAmbiguousType, want, found, i)
		}

		found = i
	}

	if found < 0 {
		return 0, fmt.Errorf("%w: %q not in %v", ErrTypeNotFound, want, slots)
	}

	return found, nil
}

// Check validates an explicit position against an arity.
func Check(arity, pos int) error {
	if pos < 0 || pos >= arity {
		return fmt.Errorf("%w: %d with arity %d", ErrOutOfRange, pos, arity)
	}

	return nil
}

// Last returns the position of the final slot of a tuple with the given
// arity. The empty tuple has no final slot.
func Last(arity int) (int, error) {
	if arity < 1 {
		return 0, fmt.Errorf("%w: arity %d has no last slot", ErrOutOfRange, arity)
	}

	return arity - 1, nil
}

// Add offsets a position forward, requiring the result to stay in range.
func Add(arity, pos, offset int) (int, error) {
	sum := pos + offset
	if err := Check(arity, sum); err != nil {
		return 0, err
	}

	return sum, nil
}

// Sub offsets a position backward. Results below zero are an error;
// use SaturatingSub when clamping is wanted instead.
func Sub(pos, offset int) (int, error) {
	diff := pos - offset
	if diff < 0 {
		return 0, fmt.Errorf("%w: %d - %d is negative", ErrOutOfRange, pos, offset)
	}

	return diff, nil
}

// SaturatingSub offsets a position backward, clamping at slot zero.
func SaturatingSub(pos, offset int) int {
	if diff := pos - offset; diff > 0 {
		return diff
	}

	return 0
}

// Range validates a half-open extraction range [start, end) against an
// arity. The range must contain at least one slot.
func Range(arity, start, end int) error {
	if start >= end {
		return fmt.Errorf("%w: [%d, %d) is empty", ErrInvalidRange, start, end)
	}

	if start < 0 || end > arity {
		return fmt.Errorf("%w: [%d, %d) with arity %d", ErrOutOfRange, start, end, arity)
	}

	return nil
}
