package fdkeys

import (
	"github.com/jonlawlor/fdkeys/att"
)

// Minimize shrinks a superkey down to one of the candidate keys it
// contains.  Each attribute of superkey is dropped in ascending order if
// what is left is still a superkey.  Since dropping attributes can only
// make closures smaller, a single pass is enough for the result to be
// minimal.
//
// superkey has to be a superkey of deps; otherwise it is returned as is.
func Minimize(superkey att.Set, deps *DependencySet) att.Set {
	key := superkey
	for it := superkey.Iter(); ; {
		id, ok := it.Next()
		if !ok {
			return key
		}
		if reduced := key.Without(id); IsSuperkey(reduced, deps) {
			key = reduced
		}
	}
}
