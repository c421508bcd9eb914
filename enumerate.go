package fdkeys

import (
	"github.com/rs/zerolog"

	"github.com/jonlawlor/fdkeys/att"
)

// Stats counts the work done by one run of an Enumerator.
type Stats struct {
	// Candidates is the number of seed sets built from a key and a
	// dependency.
	Candidates int `json:"candidates" yaml:"candidates"`
	// Pruned is the number of seeds skipped because they contain a key that
	// was already found.
	Pruned int `json:"pruned" yaml:"pruned"`
	// Reductions is the number of calls to Minimize.
	Reductions int `json:"reductions" yaml:"reductions"`
	// Keys is the number of candidate keys found.
	Keys int `json:"keys" yaml:"keys"`
}

// Option configures an Enumerator.
type Option func(*Enumerator)

// WithLogger sends debug events about the search to log.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Enumerator) {
		e.log = log
	}
}

// Enumerator finds all of the candidate keys of a set of dependencies,
// using the algorithm of Lucchesi and Osborn.  An Enumerator is not safe
// for concurrent use; independent analyses should each use their own.
type Enumerator struct {
	deps  *DependencySet
	log   zerolog.Logger
	stats Stats
}

// NewEnumerator creates an Enumerator over deps.
func NewEnumerator(deps *DependencySet, opts ...Option) *Enumerator {
	e := &Enumerator{
		deps: deps,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// All returns every candidate key, each exactly once, in the order they
// were discovered.
//
// The search starts from the key contained in the whole universe.  For a
// key K and a dependency X -> Y, the set X ∪ (K - Y) is also a superkey;
// unless it contains a key that has already been found, it is reduced to
// a new key, which in turn gets the same treatment.  The keys are
// processed first in, first out.
func (e *Enumerator) All() []att.Set {
	var stats Stats
	deps := e.deps

	k0 := Minimize(deps.Universe(), deps)
	stats.Reductions++
	e.log.Debug().Str("key", k0.String()).Msg("found initial key")

	found := []att.Set{k0}
	pending := []att.Set{k0}
	for len(pending) > 0 {
		k := pending[0]
		pending = pending[1:]
		for _, d := range deps.deps {
			stats.Candidates++
			s := d.LHS.Union(k.Difference(d.RHS))
			if subsumes(s, found) {
				stats.Pruned++
				continue
			}
			k2 := Minimize(s, deps)
			stats.Reductions++
			if contains(found, k2) {
				continue
			}
			e.log.Debug().
				Str("key", k2.String()).
				Str("from", k.String()).
				Str("seed", s.String()).
				Msg("found key")
			found = append(found, k2)
			pending = append(pending, k2)
		}
	}

	stats.Keys = len(found)
	e.stats = stats
	e.log.Debug().
		Int("keys", stats.Keys).
		Int("candidates", stats.Candidates).
		Int("pruned", stats.Pruned).
		Msg("search finished")
	return found
}

// Stats returns the counters of the last call to All.
func (e *Enumerator) Stats() Stats {
	return e.stats
}

// Enumerate returns every candidate key of deps.
func Enumerate(deps *DependencySet) []att.Set {
	return NewEnumerator(deps).All()
}

// subsumes returns true if s contains any of the keys.
func subsumes(s att.Set, keys []att.Set) bool {
	for _, k := range keys {
		if s.Contains(k) {
			return true
		}
	}
	return false
}

func contains(keys []att.Set, k att.Set) bool {
	for _, k2 := range keys {
		if k2 == k {
			return true
		}
	}
	return false
}
