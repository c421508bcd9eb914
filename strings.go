// strings deals with string representation of dependencies and schemas

package fdkeys

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/jonlawlor/fdkeys/att"
)

// String writes the dependency with letter names, like A,B -> C.
func (d Dependency) String() string {
	return joinLetters(d.LHS) + " -> " + joinLetters(d.RHS)
}

func joinLetters(s att.Set) string {
	ids := s.IDs()
	str := make([]string, len(ids))
	for i, id := range ids {
		str[i] = id.Letter()
	}
	return strings.Join(str, ",")
}

// String writes the dependencies, one per line.
func (ds *DependencySet) String() string {
	lines := make([]string, len(ds.deps))
	for i, d := range ds.deps {
		lines[i] = d.String()
	}
	return strings.Join(lines, "\n")
}

// FormatDependency writes a dependency with the attribute names of the
// schema.
func (s *Schema) FormatDependency(d Dependency) string {
	return s.heading.Join(d.LHS, ",") + " -> " + s.heading.Join(d.RHS, ",")
}

// FormatDependencies writes every dependency of the schema with
// FormatDependency.
func (s *Schema) FormatDependencies() []string {
	lines := make([]string, s.deps.Len())
	for i, d := range s.deps.deps {
		lines[i] = s.FormatDependency(d)
	}
	return lines
}

// String returns the heading of the schema, like Schema(SNO, SName, City).
func (s *Schema) String() string {
	str := make([]string, len(s.heading))
	for i, n := range s.heading {
		str[i] = string(n)
	}
	return "Schema(" + strings.Join(str, ", ") + ")"
}

// PrettyPrint returns a table of the dependencies of the schema.
func PrettyPrint(s *Schema) string {
	buf := new(bytes.Buffer)
	table := tablewriter.NewWriter(buf)
	table.SetHeader([]string{"#", "Determinant", "Dependent"})
	for i, d := range s.deps.deps {
		table.Append([]string{
			strconv.Itoa(i + 1),
			s.heading.Join(d.LHS, ", "),
			s.heading.Join(d.RHS, ", "),
		})
	}
	table.Render()
	return buf.String()
}
