package fdfile

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrEmpty is returned for input without an attribute count.
	ErrEmpty = errors.New("fdfile: file is empty")

	// ErrMissingArrow is returned for a dependency without a '->'.
	ErrMissingArrow = errors.New("fdfile: missing '->'")

	// ErrExtraArrow is returned for a dependency with more than one '->'.
	ErrExtraArrow = errors.New("fdfile: more than one '->'")

	// ErrEmptyLHS is returned for a dependency with nothing left of the '->'.
	ErrEmptyLHS = errors.New("fdfile: left-hand side empty")

	// ErrEmptyRHS is returned for a dependency with nothing right of the '->'.
	ErrEmptyRHS = errors.New("fdfile: right-hand side empty")

	// ErrEmptyName is returned when a list of attributes has an empty entry,
	// as in A,,B.
	ErrEmptyName = errors.New("fdfile: missing attribute name")
)

// CountError represents an attribute count that is not a number, or that is
// out of range.
type CountError struct {
	Text string
	Max  int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("fdfile: invalid attribute count '%s': must be between 1 and %d", e.Text, e.Max)
}

// LetterError represents an attribute that is not one of the letters of the
// heading.
type LetterError struct {
	Name   string
	Degree int
}

func (e *LetterError) Error() string {
	if len(e.Name) != 1 || e.Name[0] < 'A' || e.Name[0] > 'Z' {
		return fmt.Sprintf("fdfile: invalid attribute '%s': expected a letter A to Z", e.Name)
	}
	return fmt.Sprintf("fdfile: invalid attribute %s: expected attributes from A to %c", e.Name, 'A'+e.Degree-1)
}

// LineError puts the line number of the text format on an error.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("fdfile: line %d: %s", e.Line, trimPrefix(e.Err))
}

// Cause returns the underlying error, for github.com/pkg/errors.
func (e *LineError) Cause() error { return e.Err }

// Unwrap returns the underlying error, for the errors package.
func (e *LineError) Unwrap() error { return e.Err }

// DependencyError puts the position and text of an entry of the YAML
// format on an error.
type DependencyError struct {
	Index int
	Text  string
	Err   error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("fdfile: dependency %d '%s': %s", e.Index, e.Text, trimPrefix(e.Err))
}

// Cause returns the underlying error, for github.com/pkg/errors.
func (e *DependencyError) Cause() error { return e.Err }

// Unwrap returns the underlying error, for the errors package.
func (e *DependencyError) Unwrap() error { return e.Err }

// trimPrefix drops the package name from a wrapped error message.
func trimPrefix(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i > 0 && !strings.ContainsAny(msg[:i], " '") {
		return msg[i+2:]
	}
	return msg
}
