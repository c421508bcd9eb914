package att

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tests for the attribute set algebra

func TestSetAlgebra(t *testing.T) {
	ab := Of(0, 1)
	bc := Of(1, 2)
	fix := []struct {
		name string
		in   Set
		out  Set
	}{
		{"union", ab.Union(bc), Of(0, 1, 2)},
		{"intersection", ab.Intersection(bc), Of(1)},
		{"difference", ab.Difference(bc), Of(0)},
		{"difference of disjoint", ab.Difference(Of(5)), ab},
		{"difference of superset", ab.Difference(Full(4)), Empty()},
		{"difference stays in universe", Full(3).Difference(Of(1, 20, 31)), Of(0, 2)},
		{"union with empty", ab.Union(Empty()), ab},
		{"with", ab.With(3), Of(0, 1, 3)},
		{"with present", ab.With(1), ab},
		{"without", ab.Without(0), Of(1)},
		{"without absent", ab.Without(7), ab},
		{"full", Full(3), Of(0, 1, 2)},
		{"full of none", Full(0), Empty()},
		{"full of max", Full(MaxAttributes), Set(0xFFFFFFFF)},
	}
	for i, tt := range fix {
		if tt.in != tt.out {
			t.Errorf("%d. %s => %v, want %v", i, tt.name, tt.in, tt.out)
		}
	}
}

func TestSetContains(t *testing.T) {
	fix := []struct {
		super Set
		sub   Set
		out   bool
	}{
		{Of(0, 1, 2), Of(0, 2), true},
		{Of(0, 1, 2), Of(0, 1, 2), true},
		{Of(0, 1, 2), Empty(), true},
		{Empty(), Empty(), true},
		{Of(0, 2), Of(0, 1), false},
		{Empty(), Of(4), false},
	}
	for i, tt := range fix {
		if got := tt.super.Contains(tt.sub); got != tt.out {
			t.Errorf("%d. %v.Contains(%v) => %t, want %t", i, tt.super, tt.sub, got, tt.out)
		}
	}
}

func TestSetLen(t *testing.T) {
	assert.Equal(t, 0, Empty().Len())
	assert.True(t, Empty().IsEmpty())
	assert.Equal(t, 3, Of(0, 4, 31).Len())
	assert.True(t, Full(9).IsFull(9))
	assert.False(t, Of(0, 1).IsFull(3))
	assert.True(t, Of(2).Has(2))
	assert.False(t, Of(2).Has(3))
	assert.False(t, Full(MaxAttributes).Has(MaxAttributes))
}

func TestSetFullPanics(t *testing.T) {
	assert.Panics(t, func() { Full(MaxAttributes + 1) })
	assert.Panics(t, func() { Full(-1) })
}

func TestSetInsert(t *testing.T) {
	var s Set
	require.NoError(t, s.Insert(3))
	require.NoError(t, s.Insert(3))
	require.NoError(t, s.Insert(0))
	assert.Equal(t, Of(0, 3), s)
	assert.Equal(t, 2, s.Len())

	err := s.Insert(MaxAttributes)
	var invalid *InvalidAttributeError
	require.Error(t, err)
	require.True(t, asInvalid(err, &invalid))
	assert.Equal(t, ID(MaxAttributes), invalid.ID)
	assert.Equal(t, Of(0, 3), s)
}

func TestSetRemove(t *testing.T) {
	s := Of(1, 2)
	require.NoError(t, s.Remove(1))
	assert.Equal(t, Of(2), s)

	err := s.Remove(1)
	require.Error(t, err)
	absent, ok := err.(*AbsentAttributeError)
	require.True(t, ok)
	assert.Equal(t, ID(1), absent.ID)
	assert.Equal(t, "att: attribute B is not in the set", err.Error())

	err = s.Remove(40)
	require.Error(t, err)
	_, ok = err.(*InvalidAttributeError)
	assert.True(t, ok)
	assert.Equal(t, Of(2), s)
}

func TestSetInsertIn(t *testing.T) {
	var s Set
	require.NoError(t, s.InsertIn(2, 3))
	assert.Equal(t, Of(2), s)

	fix := []struct {
		id     ID
		n      int
		degree int
	}{
		{3, 3, 3},
		{25, 9, 9},
		{31, 31, 31},
		{40, 64, MaxAttributes},
	}
	for i, tt := range fix {
		var invalid *InvalidAttributeError
		err := s.InsertIn(tt.id, tt.n)
		if !asInvalid(err, &invalid) {
			t.Fatalf("%d. InsertIn(%d, %d) => %v, want InvalidAttributeError", i, tt.id, tt.n, err)
		}
		assert.Equal(t, tt.id, invalid.ID)
		assert.Equal(t, tt.degree, invalid.Degree)
	}
	assert.Equal(t, Of(2), s)
	assert.EqualError(t, s.InsertIn(3, 3), "att: attribute 3 out of range, expected ids 0 to 2")
}

func TestSetRemoveIn(t *testing.T) {
	s := Of(0, 4)
	var invalid *InvalidAttributeError
	require.True(t, asInvalid(s.RemoveIn(4, 4), &invalid))
	assert.Equal(t, 4, invalid.Degree)
	assert.Equal(t, Of(0, 4), s)

	require.NoError(t, s.RemoveIn(4, 5))
	assert.Equal(t, Of(0), s)

	_, ok := s.RemoveIn(1, 5).(*AbsentAttributeError)
	assert.True(t, ok)
}

func TestSetIter(t *testing.T) {
	s := Of(31, 0, 7, 3)
	assert.Equal(t, []ID{0, 3, 7, 31}, s.IDs())
	assert.Equal(t, []ID{}, Empty().IDs())

	// passes are independent of each other and of the set
	it := s.Iter()
	first, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, ID(0), first)
	require.NoError(t, s.Remove(3))
	second, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, ID(3), second)

	again := s.Iter()
	var got []ID
	for {
		id, ok := again.Next()
		if !ok {
			break
		}
		got = append(got, id)
	}
	assert.Equal(t, []ID{0, 7, 31}, got)

	var drained Iterator
	_, ok = drained.Next()
	assert.False(t, ok)
}

func TestSetString(t *testing.T) {
	fix := []struct {
		in  Set
		out string
	}{
		{Empty(), "{}"},
		{Of(0), "{A}"},
		{Of(7, 8, 3), "{D, H, I}"},
		{Of(25, 26), "{Z, #26}"},
	}
	for i, tt := range fix {
		if s := tt.in.String(); s != tt.out {
			t.Errorf("%d. String() => %s, want %s", i, s, tt.out)
		}
	}
}

func asInvalid(err error, target **InvalidAttributeError) bool {
	e, ok := err.(*InvalidAttributeError)
	if ok {
		*target = e
	}
	return ok
}

func BenchmarkSetIter(b *testing.B) {
	s := Full(26)
	for i := 0; i < b.N; i++ {
		it := s.Iter()
		for {
			if _, ok := it.Next(); !ok {
				break
			}
		}
	}
}
