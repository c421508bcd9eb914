package fdkeys

import (
	"github.com/jonlawlor/fdkeys/att"
)

// Dependency is a functional dependency: the attributes of LHS determine
// the attributes of RHS.
type Dependency struct {
	LHS att.Set
	RHS att.Set
}

// DependencySet is an ordered list of functional dependencies over an
// attribute universe of fixed degree.  Dependencies can only be added;
// the order they are added in decides the order keys are discovered in,
// not which keys there are.
type DependencySet struct {
	degree int
	deps   []Dependency
}

// NewDependencySet creates an empty set of dependencies over the attributes
// 0 to n-1.
func NewDependencySet(n int) (*DependencySet, error) {
	if n < 1 || n > att.MaxAttributes {
		return nil, &att.DegreeError{Degree: n}
	}
	return &DependencySet{degree: n}, nil
}

// MustDependencySet is like NewDependencySet followed by Add for each of the
// dependencies, and panics on any error.  It is meant for literals in
// tests and examples.
func MustDependencySet(n int, deps ...Dependency) *DependencySet {
	ds, err := NewDependencySet(n)
	if err != nil {
		panic(err)
	}
	for _, d := range deps {
		if err := ds.Add(d.LHS, d.RHS); err != nil {
			panic(err)
		}
	}
	return ds
}

// Add appends the dependency lhs -> rhs.  Both sides have to be non empty
// and inside the universe.
func (ds *DependencySet) Add(lhs, rhs att.Set) error {
	if lhs.IsEmpty() || rhs.IsEmpty() {
		return ErrEmptySide
	}
	universe := ds.Universe()
	for _, s := range [...]att.Set{lhs, rhs} {
		if extra := s.Difference(universe); !extra.IsEmpty() {
			return &att.InvalidAttributeError{ID: extra.IDs()[0], Degree: ds.degree}
		}
	}
	ds.deps = append(ds.deps, Dependency{lhs, rhs})
	return nil
}

// Degree is the number of attributes in the universe.
func (ds *DependencySet) Degree() int {
	return ds.degree
}

// Universe is the set of all attributes.
func (ds *DependencySet) Universe() att.Set {
	return att.Full(ds.degree)
}

// Len is the number of dependencies.
func (ds *DependencySet) Len() int {
	return len(ds.deps)
}

// At returns the i-th dependency.
func (ds *DependencySet) At(i int) Dependency {
	return ds.deps[i]
}

// All returns a copy of the dependencies, in the order they were added.
func (ds *DependencySet) All() []Dependency {
	deps := make([]Dependency, len(ds.deps))
	copy(deps, ds.deps)
	return deps
}
