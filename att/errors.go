// errors are the failures of attribute set construction.  All of them point
// at a bug in the caller: input has to be validated against its heading
// before it becomes a Set.

package att

import "fmt"

// InvalidAttributeError represents an attribute id that is outside of the
// universe it is used in.
type InvalidAttributeError struct {
	ID     ID
	Degree int
}

func (e *InvalidAttributeError) Error() string {
	return fmt.Sprintf("att: attribute %d out of range, expected ids 0 to %d", e.ID, e.Degree-1)
}

// AbsentAttributeError represents the removal of an attribute that is not
// in the set.
type AbsentAttributeError struct {
	ID ID
}

func (e *AbsentAttributeError) Error() string {
	return fmt.Sprintf("att: attribute %s is not in the set", e.ID.Letter())
}

// DegreeError represents an attribute universe size that a Set can not
// hold.
type DegreeError struct {
	Degree int
}

func (e *DegreeError) Error() string {
	return fmt.Sprintf("att: degree %d out of range, expected 1 to %d", e.Degree, MaxAttributes)
}

// DuplicateAttributeError represents a heading that names the same
// attribute twice.
type DuplicateAttributeError struct {
	Name Attribute
}

func (e *DuplicateAttributeError) Error() string {
	return fmt.Sprintf("att: duplicate attribute '%s' in heading", e.Name)
}

// UnknownAttributeError represents a name that is not in a heading.
type UnknownAttributeError struct {
	Name    Attribute
	Heading Heading
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("att: unknown attribute '%s', expected one of %s", e.Name, e.Heading)
}
