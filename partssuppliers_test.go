package fdkeys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonlawlor/fdkeys/att"
)

// This file contains example schemas for a suppliers, parts & orders database,
// using the example provided by C. J. Date in his book "Database in Depth" in
// Figure 1-3.  The dependencies are the ones the sample data satisfies.

func mustSchema(heading []att.Attribute, deps ...[2][]att.Attribute) *Schema {
	s, err := NewSchema(heading)
	if err != nil {
		panic(err)
	}
	for _, d := range deps {
		if err := s.AddDependency(d[0], d[1]); err != nil {
			panic(err)
		}
	}
	return s
}

func fd(lhs []att.Attribute, rhs ...att.Attribute) [2][]att.Attribute {
	return [2][]att.Attribute{lhs, rhs}
}

// suppliers schema, with candidate keys {SNO}, {SName}
var suppliers = mustSchema(
	[]att.Attribute{"SNO", "SName", "Status", "City"},
	fd([]att.Attribute{"SNO"}, "SName", "Status", "City"),
	fd([]att.Attribute{"SName"}, "SNO"),
)

// parts schema, with candidate key {PNO}
var parts = mustSchema(
	[]att.Attribute{"PNO", "PName", "Color", "Weight", "City"},
	fd([]att.Attribute{"PNO"}, "PName", "Color", "Weight", "City"),
)

// orders schema, with candidate key {PNO, SNO}
var orders = mustSchema(
	[]att.Attribute{"PNO", "SNO", "Qty"},
	fd([]att.Attribute{"PNO", "SNO"}, "Qty"),
)

func TestCandidateKeys(t *testing.T) {
	fix := []struct {
		name string
		in   att.CandKeys
		out  att.CandKeys
	}{
		{"suppliers", suppliers.CandidateKeys(), att.String2CandKeys([][]string{{"SNO"}, {"SName"}})},
		{"parts", parts.CandidateKeys(), att.String2CandKeys([][]string{{"PNO"}})},
		{"orders", orders.CandidateKeys(), att.String2CandKeys([][]string{{"PNO", "SNO"}})},
	}
	for i, dt := range fix {
		assert.Equal(t, dt.out, dt.in, "%d. %s.CandidateKeys()", i, dt.name)
	}
}

func TestSchemaClosure(t *testing.T) {
	c, err := suppliers.Closure("SName")
	require.NoError(t, err)
	assert.Equal(t, []att.Attribute{"SNO", "SName", "Status", "City"}, c)

	c, err = orders.Closure("SNO")
	require.NoError(t, err)
	assert.Equal(t, []att.Attribute{"SNO"}, c)

	_, err = orders.Closure("Weight")
	require.Error(t, err)
	_, ok := err.(*att.UnknownAttributeError)
	assert.True(t, ok)
}

func TestSchemaIsSuperkey(t *testing.T) {
	fix := []struct {
		schema *Schema
		in     []att.Attribute
		out    bool
	}{
		{suppliers, []att.Attribute{"SName", "City"}, true},
		{suppliers, []att.Attribute{"Status", "City"}, false},
		{orders, []att.Attribute{"Qty", "SNO", "PNO"}, true},
		{orders, []att.Attribute{"PNO", "Qty"}, false},
	}
	for i, tt := range fix {
		got, err := tt.schema.IsSuperkey(tt.in...)
		require.NoError(t, err)
		if got != tt.out {
			t.Errorf("%d. %v.IsSuperkey(%v) => %t, want %t", i, tt.schema, tt.in, got, tt.out)
		}
	}
	_, err := parts.IsSuperkey("SNO")
	assert.Error(t, err)
}

func TestSchemaMinimalKey(t *testing.T) {
	k, err := suppliers.MinimalKey("City", "SName", "Status")
	require.NoError(t, err)
	assert.Equal(t, []att.Attribute{"SName"}, k)

	k, err = parts.MinimalKey("PNO", "PName", "Color", "Weight", "City")
	require.NoError(t, err)
	assert.Equal(t, []att.Attribute{"PNO"}, k)

	_, err = orders.MinimalKey("PNO", "Qty")
	assert.Equal(t, ErrNotSuperkey, err)

	_, err = orders.MinimalKey("Color")
	assert.Error(t, err)
}

func TestSchemaAddDependency(t *testing.T) {
	s, err := NewSchema(att.Heading{"A", "B"})
	require.NoError(t, err)
	assert.Equal(t, ErrEmptySide, s.AddDependency(nil, []att.Attribute{"A"}))
	assert.Equal(t, ErrEmptySide, s.AddDependency([]att.Attribute{"A"}, nil))
	assert.Error(t, s.AddDependency([]att.Attribute{"A"}, []att.Attribute{"C"}))
	assert.Error(t, s.AddDependency([]att.Attribute{"C"}, []att.Attribute{"A"}))
	assert.Equal(t, 0, s.Dependencies().Len())

	require.NoError(t, s.AddDependency([]att.Attribute{"A"}, []att.Attribute{"B"}))
	assert.Equal(t, att.String2CandKeys([][]string{{"A"}}), s.CandidateKeys())
}

func TestNewSchemaErrors(t *testing.T) {
	_, err := NewSchema(nil)
	assert.Error(t, err)
	_, err = NewSchema(att.Heading{"A", "A"})
	assert.Error(t, err)
}
