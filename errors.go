// errors are the failures that can come out of building dependency sets.
// Errors about single attributes live in the att package.

package fdkeys

import "errors"

var (
	// ErrEmptySide is returned when a dependency has no attributes on its
	// left or right hand side.
	ErrEmptySide = errors.New("fdkeys: dependency side is empty")

	// ErrNotSuperkey is returned when a key is asked for inside a set of
	// attributes that does not determine the whole heading.
	ErrNotSuperkey = errors.New("fdkeys: attributes are not a superkey")
)
