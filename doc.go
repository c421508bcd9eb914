// Package fdkeys finds the candidate keys of a relation from its functional
// dependencies, as described in C. J. Date's "Database in Depth".
//
// Basics
//
// A functional dependency X -> Y says that any two tuples of a relation
// which agree on the attributes in X also agree on the attributes in Y.
// The closure of a set of attributes is everything it determines through
// the dependencies.  A set whose closure is the whole heading is a
// superkey, and a superkey none of whose proper subsets is a superkey is a
// candidate key.  Every relation has at least one candidate key, and may
// have many.
//
// Attributes are identified by their position in the heading and sets of
// them are represented as bit masks, in the subpackage
// github.com/jonlawlor/fdkeys/att.  A heading holds at most 32 attributes.
//
// The package is built in layers.  Closure and IsSuperkey compute
// attribute closures over a DependencySet.  Minimize reduces a superkey
// to one candidate key inside it.  An Enumerator finds all of the
// candidate keys with the algorithm of C. L. Lucchesi and S. L. Osborn,
// "Candidate keys for relations" (1978), which produces each key exactly
// once and in time polynomial in the number of keys.  Schema puts names on
// all of this.
//
// Reading dependencies from files is done in github.com/jonlawlor/fdkeys/fdfile,
// and reports on the results in github.com/jonlawlor/fdkeys/report.
//
package fdkeys

// variable naming conventions
//
// s, s1, s2, ... all represent attribute sets, and c is a closure under
// construction.
//
// k, k0, k2, ... all represent candidate keys, found is the list of keys
// discovered so far and pending is the queue of keys still to be expanded.
//
// d is a single dependency and deps is a DependencySet.
