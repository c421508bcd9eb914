package fdkeys

import (
	"github.com/jonlawlor/fdkeys/att"
)

// Schema is the heading of a relation together with the functional
// dependencies that hold in it.  It lets the dependency algebra be used
// with attribute names instead of ids.
type Schema struct {
	heading att.Heading
	deps    *DependencySet
}

// NewSchema creates a Schema with the given heading and no dependencies.
func NewSchema(heading att.Heading) (*Schema, error) {
	h, err := att.NewHeading(heading)
	if err != nil {
		return nil, err
	}
	deps, err := NewDependencySet(h.Degree())
	if err != nil {
		return nil, err
	}
	return &Schema{h, deps}, nil
}

// Heading returns the attribute names of the schema.
func (s *Schema) Heading() att.Heading {
	return s.heading
}

// Dependencies returns the dependencies of the schema.
func (s *Schema) Dependencies() *DependencySet {
	return s.deps
}

// AddDependency adds the dependency lhs -> rhs.
func (s *Schema) AddDependency(lhs, rhs []att.Attribute) error {
	if len(lhs) == 0 || len(rhs) == 0 {
		return ErrEmptySide
	}
	l, err := s.heading.Set(lhs...)
	if err != nil {
		return err
	}
	r, err := s.heading.Set(rhs...)
	if err != nil {
		return err
	}
	return s.deps.Add(l, r)
}

// Set converts attribute names into a set.
func (s *Schema) Set(names ...att.Attribute) (att.Set, error) {
	return s.heading.Set(names...)
}

// Names converts a set back into attribute names, in heading order.
func (s *Schema) Names(set att.Set) []att.Attribute {
	return s.heading.Names(set)
}

// Closure returns the names of the attributes determined by names.
func (s *Schema) Closure(names ...att.Attribute) ([]att.Attribute, error) {
	set, err := s.heading.Set(names...)
	if err != nil {
		return nil, err
	}
	return s.heading.Names(Closure(set, s.deps)), nil
}

// IsSuperkey returns true if names determine every attribute of the schema.
func (s *Schema) IsSuperkey(names ...att.Attribute) (bool, error) {
	set, err := s.heading.Set(names...)
	if err != nil {
		return false, err
	}
	return IsSuperkey(set, s.deps), nil
}

// MinimalKey returns a candidate key contained in names, which have to be a
// superkey.
func (s *Schema) MinimalKey(names ...att.Attribute) ([]att.Attribute, error) {
	set, err := s.heading.Set(names...)
	if err != nil {
		return nil, err
	}
	if !IsSuperkey(set, s.deps) {
		return nil, ErrNotSuperkey
	}
	return s.heading.Names(Minimize(set, s.deps)), nil
}

// Enumerator returns a new Enumerator over the dependencies of the schema.
func (s *Schema) Enumerator(opts ...Option) *Enumerator {
	return NewEnumerator(s.deps, opts...)
}

// CandidateKeys returns every candidate key of the schema, in canonical
// order: smallest first, each key alphabetized.
func (s *Schema) CandidateKeys(opts ...Option) att.CandKeys {
	return att.KeysOf(s.heading, s.Enumerator(opts...).All())
}
