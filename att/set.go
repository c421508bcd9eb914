package att

import (
	"math/bits"
	"strconv"
	"strings"
)

// MaxAttributes is the largest attribute universe a Set can represent.
const MaxAttributes = 32

// ID identifies an attribute by its position in a heading, starting at 0.
type ID uint8

// Letter returns the conventional single letter name of the attribute, A
// for 0, B for 1, and so on.  Ids past Z are written as their number.
func (id ID) Letter() string {
	if id < 26 {
		return string(rune('A' + id))
	}
	return "#" + strconv.Itoa(int(id))
}

// Set is a set of attribute ids in the range [0, MaxAttributes).  It is a
// value type: the algebra methods return new sets and leave their
// receivers alone.  The zero value is the empty set.
type Set uint32

// Empty returns the empty set.
func Empty() Set {
	return 0
}

// Full returns the set containing the first n attributes.
func Full(n int) Set {
	if n < 0 || n > MaxAttributes {
		panic(&DegreeError{n})
	}
	return Set(uint64(1)<<uint(n) - 1)
}

// Of returns the set of the given ids.  Ids are trusted to be in range.
func Of(ids ...ID) Set {
	var s Set
	for _, id := range ids {
		s |= 1 << id
	}
	return s
}

// Union returns the attributes in either s or t.
func (s Set) Union(t Set) Set {
	return s | t
}

// Intersection returns the attributes in both s and t.
func (s Set) Intersection(t Set) Set {
	return s & t
}

// Difference returns the attributes in s that are not in t.  The result is
// a subset of s, so it stays inside any universe that s is inside of, no
// matter what bits t carries.
func (s Set) Difference(t Set) Set {
	return s &^ t
}

// Contains returns true if every attribute of sub is also in s.  This is
// the subset test: s.Contains(sub) means sub ⊆ s.
func (s Set) Contains(sub Set) bool {
	return s&sub == sub
}

// Has returns true if the attribute id is in s.
func (s Set) Has(id ID) bool {
	return id < MaxAttributes && s&(1<<id) != 0
}

// Len returns the number of attributes in s.
func (s Set) Len() int {
	return bits.OnesCount32(uint32(s))
}

// IsEmpty returns true if s has no attributes.
func (s Set) IsEmpty() bool {
	return s == 0
}

// IsFull returns true if s holds n attributes.  Only the count is checked,
// which is enough when s is known to be a subset of a universe of degree n.
func (s Set) IsFull(n int) bool {
	return s.Len() == n
}

// With returns s plus the attribute id.  The id is trusted to be in range.
func (s Set) With(id ID) Set {
	return s | 1<<id
}

// Without returns s minus the attribute id.
func (s Set) Without(id ID) Set {
	return s &^ (1 << id)
}

// Insert adds id to s.  Adding an attribute that is already present does
// nothing.  Only ids a Set cannot hold are rejected; use InsertIn to check
// against the degree of a universe, as DependencySet.Add does for whole
// sets.
func (s *Set) Insert(id ID) error {
	return s.InsertIn(id, MaxAttributes)
}

// InsertIn adds id to s, which is a set over the universe of degree n.
func (s *Set) InsertIn(id ID, n int) error {
	if err := checkID(id, n); err != nil {
		return err
	}
	*s |= 1 << id
	return nil
}

// Remove deletes id from s.  The attribute has to be present.
func (s *Set) Remove(id ID) error {
	return s.RemoveIn(id, MaxAttributes)
}

// RemoveIn deletes id from s, which is a set over the universe of degree n.
func (s *Set) RemoveIn(id ID, n int) error {
	if err := checkID(id, n); err != nil {
		return err
	}
	if *s&(1<<id) == 0 {
		return &AbsentAttributeError{ID: id}
	}
	*s &^= 1 << id
	return nil
}

func checkID(id ID, n int) error {
	if n > MaxAttributes {
		n = MaxAttributes
	}
	if int(id) >= n {
		return &InvalidAttributeError{ID: id, Degree: n}
	}
	return nil
}

// Iter returns an iterator over the ids in s, in ascending order.
func (s Set) Iter() Iterator {
	return Iterator{rest: uint32(s)}
}

// IDs returns the ids in s in ascending order.
func (s Set) IDs() []ID {
	ids := make([]ID, 0, s.Len())
	for it := s.Iter(); ; {
		id, ok := it.Next()
		if !ok {
			return ids
		}
		ids = append(ids, id)
	}
}

// String writes the set with letter names, like {A, C}.
func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, id := range s.IDs() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(id.Letter())
	}
	b.WriteByte('}')
	return b.String()
}

// Iterator walks the members of a Set.  It works on its own copy of the
// bits, so the set it came from can change while it is in use, and a new
// pass only needs another call to Iter.
type Iterator struct {
	rest uint32
}

// Next returns the next id, or false when there are no more.
func (it *Iterator) Next() (ID, bool) {
	if it.rest == 0 {
		return 0, false
	}
	id := ID(bits.TrailingZeros32(it.rest))
	it.rest &= it.rest - 1
	return id, true
}
