// Package zero provides zero-value helpers for generic type parameters.
//
// Taking an element out of a tuple slot leaves the slot holding its type's
// zero value; this package supplies that value and the matching predicate.
package zero

import "reflect"

// Value returns the zero value for type T.
//
// Example:
//
//	slot := zero.Value[string]() // ""
//	ptr := zero.Value[*Record]() // nil
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}

// IsZero reports whether value is the zero value for type T, comparing
// deeply so that composite element types are handled as well.
//
// Example:
//
//	zero.IsZero(0)          // true
//	zero.IsZero("taken")    // false
//	zero.IsZero[[]int](nil) // true
func IsZero[T any](value T) bool {
	var zeroVal T

	return reflect.DeepEqual(value, zeroVal)
}

// Reset stores the zero value of T through the given pointer and returns
// the previous value.
//
// Example:
//
//	s := "hello"
//	old := zero.Reset(&s) // old == "hello", s == ""
func Reset[T any](p *T) T {
	var zeroVal T

	old := *p
	*p = zeroVal

	return old
}
