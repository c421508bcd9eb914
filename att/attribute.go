// Package att represents attributes, the sets of attributes that functional
// dependencies and candidate keys are made of, and the headings which give
// attributes their names.
package att

import (
	"sort"
	"strings"
)

// Attribute represents a particular attribute's name in a relation
type Attribute string

// CandKeys is a set of candidate keys
// they should be unique and sorted
type CandKeys [][]Attribute

// Heading is the ordered list of attribute names of a relation.  The
// position of a name is its ID.
type Heading []Attribute

// Letters returns the heading A, B, C, ... of degree n.  It is the heading
// used when attributes are only given by letter.
func Letters(n int) Heading {
	if n < 0 || n > 26 {
		panic(&DegreeError{n})
	}
	h := make(Heading, n)
	for i := range h {
		h[i] = Attribute(ID(i).Letter())
	}
	return h
}

// NewHeading checks that names can be used as a heading: there has to be
// at least one and at most MaxAttributes of them, and no duplicates.
func NewHeading(names []Attribute) (Heading, error) {
	if len(names) == 0 || len(names) > MaxAttributes {
		return nil, &DegreeError{len(names)}
	}
	seen := make(map[Attribute]struct{}, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			return nil, &DuplicateAttributeError{n}
		}
		seen[n] = struct{}{}
	}
	h := make(Heading, len(names))
	copy(h, names)
	return h, nil
}

// Degree is the number of attributes in the heading.
func (h Heading) Degree() int {
	return len(h)
}

// Index returns the id of the named attribute.
func (h Heading) Index(name Attribute) (ID, error) {
	for i, n := range h {
		if n == name {
			return ID(i), nil
		}
	}
	return 0, &UnknownAttributeError{name, h}
}

// Set converts names into a set of ids.
func (h Heading) Set(names ...Attribute) (Set, error) {
	var s Set
	for _, n := range names {
		id, err := h.Index(n)
		if err != nil {
			return 0, err
		}
		s = s.With(id)
	}
	return s, nil
}

// Names converts a set of ids back into names, in heading order.  Ids that
// the heading does not have are skipped.
func (h Heading) Names(s Set) []Attribute {
	names := make([]Attribute, 0, s.Len())
	for it := s.Iter(); ; {
		id, ok := it.Next()
		if !ok || int(id) >= len(h) {
			return names
		}
		names = append(names, h[id])
	}
}

// Join writes the names of the set separated by sep.
func (h Heading) Join(s Set, sep string) string {
	names := h.Names(s)
	str := make([]string, len(names))
	for i := range names {
		str[i] = string(names[i])
	}
	return strings.Join(str, sep)
}

func (h Heading) String() string {
	return "{" + h.Join(Full(len(h)), ", ") + "}"
}

// KeysOf names each of the sets and puts the result in canonical order.
func KeysOf(h Heading, sets []Set) CandKeys {
	cks := make(CandKeys, len(sets))
	for i, s := range sets {
		cks[i] = h.Names(s)
	}
	OrderCandidateKeys(cks)
	return cks
}

// OrderCandidateKeys alphabetizes the attributes of every key and then sorts
// the keys, smallest first.
func OrderCandidateKeys(ckeys CandKeys) {
	// first go through each set of keys and alphabetize
	// this is used to compare sets of candidate keys
	for _, ck := range ckeys {
		sort.Slice(ck, func(i, j int) bool { return ck[i] < ck[j] })
	}

	// then sort by length so that smaller keys are first
	sort.Sort(ckeys)
}

// String2CandKeys converts string keys into candidate keys.
func String2CandKeys(ckeystrs [][]string) CandKeys {
	cks := make([][]Attribute, len(ckeystrs))
	for i, ckstr := range ckeystrs {
		cks[i] = make([]Attribute, len(ckstr))
		for j, str := range ckstr {
			cks[i][j] = Attribute(str)
		}
	}
	return cks
}

// definitions for the candidate key sorting
func (cks CandKeys) Len() int {
	return len(cks)
}
func (cks CandKeys) Swap(i, j int) {
	cks[i], cks[j] = cks[j], cks[i]
}

// Less compares two candidate keys
func less(ck1 []Attribute, ck2 []Attribute) bool {
	if len(ck1) == len(ck2) {
		// alphabetical ordering
		for k := range ck1 {
			if ck1[k] < ck2[k] {
				return true
			} else if ck1[k] > ck2[k] {
				return false
			}
		}
		return false
	}
	if len(ck1) < len(ck2) {
		return true
	}
	return false
}

func (cks CandKeys) Less(i, j int) bool {
	// note this is smallest to largest
	return less(cks[i], cks[j])
}
