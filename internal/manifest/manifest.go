// Package manifest loads and validates the YAML shape manifests consumed by
// cmd/typedgen.
//
// A manifest names concrete tuple shapes and, per shape, the type-driven
// accessors and marker keys to generate. All position resolution goes
// through the index package, so an ambiguous type, an unknown type, or an
// out-of-range position fails validation, and with it the go:generate run.
package manifest

import (
	"errors"
	"fmt"
	"go/token"
	"os"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/amp-labs/tuples/index"
	"github.com/amp-labs/tuples/internal/errs"
)

var (
	// ErrNoTuples is returned for a manifest declaring no shapes.
	ErrNoTuples = errors.New("manifest declares no tuples")

	// ErrBadIdentifier is returned for names that are not valid exported
	// Go identifiers.
	ErrBadIdentifier = errors.New("not a valid identifier")

	// ErrDuplicateName is returned when two shapes share a name.
	ErrDuplicateName = errors.New("duplicate tuple name")

	// ErrArity is returned for shapes outside the generated arity range.
	ErrArity = errors.New("arity outside the supported range")

	// ErrKeySelector is returned when a key does not set exactly one of
	// type, index, or last.
	ErrKeySelector = errors.New("key must set exactly one of type, index, last")
)

// File is a parsed shape manifest.
type File struct {
	// Package is the package name of the generated file.
	Package string `yaml:"package"`

	// Imports lists extra import paths needed by element types such as
	// time.Time.
	Imports []string `yaml:"imports"`

	// Tuples are the named shapes to generate accessors for.
	Tuples []Shape `yaml:"tuples"`
}

// Shape is one named tuple layout.
type Shape struct {
	// Name is the exported alias declared for the shape.
	Name string `yaml:"name"`

	// Elements are the slot type expressions in order.
	Elements []string `yaml:"elements"`

	// ByType lists element types to generate unique-type accessors for.
	ByType []string `yaml:"byType"`

	// Keys maps marker names to slot selectors.
	Keys map[string]KeyRef `yaml:"keys"`
}

// KeyRef selects the slot a marker resolves to. Exactly one field may be
// set.
type KeyRef struct {
	// Type selects the single slot holding this type.
	Type string `yaml:"type"`

	// Index selects a slot by explicit position.
	Index *int `yaml:"index"`

	// Last selects the final slot of the shape.
	Last bool `yaml:"last"`
}

// Load reads and parses a manifest file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	return Parse(data)
}

// Parse decodes a manifest from YAML.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	return &f, nil
}

// Arity returns the shape's slot count.
func (s *Shape) Arity() int {
	return len(s.Elements)
}

// Resolve maps a key selector to a concrete slot position within the shape.
func (s *Shape) Resolve(ref KeyRef) (int, error) {
	set := 0
	if ref.Type != "" {
		set++
	}

	if ref.Index != nil {
		set++
	}

	if ref.Last {
		set++
	}

	if set != 1 {
		return 0, ErrKeySelector
	}

	switch {
	case ref.Type != "":
		return index.ByType(s.Elements, ref.Type)
	case ref.Index != nil:
		if err := index.Check(s.Arity(), *ref.Index); err != nil {
			return 0, err
		}

		return *ref.Index, nil
	default:
		return index.Last(s.Arity())
	}
}

// Validate checks the whole manifest against the generated arity ceiling,
// reporting every problem it finds.
func (f *File) Validate(maxArity int) error {
	var c errs.Collection

	if !token.IsIdentifier(f.Package) {
		c.Addf("package %q: %w", f.Package, ErrBadIdentifier)
	}

	if len(f.Tuples) == 0 {
		c.Add(ErrNoTuples)
	}

	seen := make(map[string]bool, len(f.Tuples))

	for i := range f.Tuples {
		shape := &f.Tuples[i]

		if seen[shape.Name] {
			c.Addf("shape %q: %w", shape.Name, ErrDuplicateName)
		}

		seen[shape.Name] = true
		shape.validate(&c, maxArity)
	}

	return c.Err()
}

func (s *Shape) validate(c *errs.Collection, maxArity int) {
	if !isExportedIdentifier(s.Name) {
		c.Addf("shape %q: %w", s.Name, ErrBadIdentifier)
	}

	if s.Arity() < 1 || s.Arity() > maxArity {
		c.Addf("shape %q: %w: %d not in [1, %d]", s.Name, ErrArity, s.Arity(), maxArity)
	}

	for i, elem := range s.Elements {
		if index.Normalize(elem) == "" {
			c.Addf("shape %q: slot %d: empty element type", s.Name, i)
		}
	}

	for _, typ := range s.ByType {
		if _, err := index.ByType(s.Elements, typ); err != nil {
			c.Addf("shape %q: byType: %w", s.Name, err)
		}
	}

	for name, ref := range s.Keys {
		if !isExportedIdentifier(name) {
			c.Addf("shape %q: key %q: %w", s.Name, name, ErrBadIdentifier)
		}

		if _, err := s.Resolve(ref); err != nil {
			c.Addf("shape %q: key %q: %w", s.Name, name, err)
		}
	}
}

func isExportedIdentifier(name string) bool {
	if !token.IsIdentifier(name) {
		return false
	}

	r, _ := utf8.DecodeRuneInString(name)

	return unicode.IsUpper(r)
}
