// Package errs accumulates validation errors so the generators can report
// every problem in a manifest at once instead of stopping at the first.
package errs

import (
	"errors"
	"fmt"
)

// Collection gathers errors from a sequence of checks. The zero value is
// ready to use. It is not safe for concurrent use.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Addf appends a formatted error to the collection. The format string
// supports %w wrapping.
func (c *Collection) Addf(format string, args ...any) {
	c.Add(fmt.Errorf(format, args...))
}

// HasError reports whether the collection holds at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Err returns the collected errors as a single error: nil when empty, the
// sole error when there is one, and errors.Join otherwise.
func (c *Collection) Err() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
