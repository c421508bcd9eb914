// Package fdfile reads sets of functional dependencies from files.
//
// The text format is the classic one.  The first line is the number of
// attributes n, which are named by the letters A to Z, and every line after
// it is a dependency:
//
//	3
//	A -> B
//	B -> C
//	C,B -> A
//
// Blank lines and lines starting with # are skipped.
//
// The YAML format allows attribute names longer than one letter:
//
//	attributes: [SNO, SName, Status, City]
//	dependencies:
//	  - SNO -> SName, Status, City
//	  - SName -> SNO
package fdfile

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/jonlawlor/fdkeys"
	"github.com/jonlawlor/fdkeys/att"
)

// MaxLetters is the largest attribute count of the text format.
const MaxLetters = 26

const (
	arrow   = "->"
	delim   = ","
	comment = "#"
)

// Parse reads a schema in the text format.
func Parse(r io.Reader) (*fdkeys.Schema, error) {
	var s *fdkeys.Schema
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, comment) {
			continue
		}
		if s == nil {
			n, err := parseCount(text)
			if err != nil {
				return nil, &LineError{line, err}
			}
			if s, err = fdkeys.NewSchema(att.Letters(n)); err != nil {
				return nil, &LineError{line, err}
			}
			continue
		}
		lhs, rhs, err := SplitDependency(text)
		if err == nil {
			err = checkLetters(s.Heading().Degree(), lhs, rhs)
		}
		if err == nil {
			err = s.AddDependency(lhs, rhs)
		}
		if err != nil {
			return nil, &LineError{line, err}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "fdfile: read failed")
	}
	if s == nil {
		return nil, ErrEmpty
	}
	return s, nil
}

func parseCount(text string) (int, error) {
	n, err := strconv.Atoi(text)
	if err != nil || n < 1 || n > MaxLetters {
		return 0, &CountError{text, MaxLetters}
	}
	return n, nil
}

func checkLetters(n int, sides ...[]att.Attribute) error {
	for _, side := range sides {
		for _, name := range side {
			if len(name) != 1 || name[0] < 'A' || name[0] >= byte('A'+n) {
				return &LetterError{string(name), n}
			}
		}
	}
	return nil
}

// SplitDependency splits a dependency like A, B -> C into the names of its
// left and right hand sides.  Space around names is ignored.
func SplitDependency(text string) (lhs, rhs []att.Attribute, err error) {
	i := strings.Index(text, arrow)
	if i < 0 {
		return nil, nil, ErrMissingArrow
	}
	left, right := text[:i], text[i+len(arrow):]
	if strings.Contains(right, arrow) {
		return nil, nil, ErrExtraArrow
	}
	if lhs, err = SplitNames(left); err == nil && len(lhs) == 0 {
		err = ErrEmptyLHS
	}
	if err != nil {
		return nil, nil, err
	}
	if rhs, err = SplitNames(right); err == nil && len(rhs) == 0 {
		err = ErrEmptyRHS
	}
	if err != nil {
		return nil, nil, err
	}
	return lhs, rhs, nil
}

// SplitNames splits a comma separated list of attribute names.  Space
// around names is ignored, and an empty list gives no names.
func SplitNames(list string) ([]att.Attribute, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	parts := strings.Split(list, delim)
	names := make([]att.Attribute, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, ErrEmptyName
		}
		names[i] = att.Attribute(p)
	}
	return names, nil
}
