package fdkeys

import (
	"github.com/jonlawlor/fdkeys/att"
)

// Closure returns the smallest set that contains seed and is closed under
// every dependency in deps: whenever it contains the LHS of a dependency,
// it also contains its RHS.
//
// The closure is found by passing over the dependencies until a pass adds
// nothing, or until every attribute is in the set.  seed is trusted to be
// a subset of the universe.
func Closure(seed att.Set, deps *DependencySet) att.Set {
	n := deps.degree
	c := seed
	if c.IsFull(n) {
		return c
	}
	for changed := true; changed; {
		changed = false
		for _, d := range deps.deps {
			if c.Contains(d.LHS) && !c.Contains(d.RHS) {
				c = c.Union(d.RHS)
				if c.IsFull(n) {
					return c
				}
				changed = true
			}
		}
	}
	return c
}

// IsSuperkey returns true if the closure of candidate is the whole
// universe.  It gives the same answer as Closure(candidate, deps).IsFull,
// but stops as soon as the answer is known.
func IsSuperkey(candidate att.Set, deps *DependencySet) bool {
	n := deps.degree
	c := candidate
	if c.IsFull(n) {
		return true
	}
	for changed := true; changed; {
		changed = false
		for _, d := range deps.deps {
			if c.Contains(d.LHS) && !c.Contains(d.RHS) {
				c = c.Union(d.RHS)
				if c.IsFull(n) {
					return true
				}
				changed = true
			}
		}
	}
	return false
}
