package fdfile

import (
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/jonlawlor/fdkeys"
	"github.com/jonlawlor/fdkeys/att"
)

// Document is the YAML format of a schema.  Either Attributes names the
// attributes, or Count gives their number and they are named by letter.
type Document struct {
	Count        int      `yaml:"count,omitempty"`
	Attributes   []string `yaml:"attributes,omitempty"`
	Dependencies []string `yaml:"dependencies"`
}

// ParseYAML reads a schema in the YAML format.  Unknown fields are an
// error.
func ParseYAML(r io.Reader) (*fdkeys.Schema, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "fdfile: read failed")
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmpty
	}
	var doc Document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, errors.Wrap(err, "fdfile: invalid yaml")
	}
	return doc.Schema()
}

// Schema builds the schema the document describes.
func (doc *Document) Schema() (*fdkeys.Schema, error) {
	heading, err := doc.heading()
	if err != nil {
		return nil, err
	}
	s, err := fdkeys.NewSchema(heading)
	if err != nil {
		return nil, err
	}
	for i, text := range doc.Dependencies {
		lhs, rhs, err := SplitDependency(text)
		if err == nil {
			err = s.AddDependency(lhs, rhs)
		}
		if err != nil {
			return nil, &DependencyError{i + 1, text, err}
		}
	}
	return s, nil
}

func (doc *Document) heading() (att.Heading, error) {
	switch {
	case len(doc.Attributes) > 0:
		if doc.Count != 0 && doc.Count != len(doc.Attributes) {
			return nil, errors.Errorf("fdfile: count %d does not match %d attributes", doc.Count, len(doc.Attributes))
		}
		names := make([]att.Attribute, len(doc.Attributes))
		for i, a := range doc.Attributes {
			if a = strings.TrimSpace(a); a == "" || strings.ContainsAny(a, delim+arrow) {
				return nil, errors.Errorf("fdfile: invalid attribute name '%s'", doc.Attributes[i])
			}
			names[i] = att.Attribute(a)
		}
		return att.NewHeading(names)
	case doc.Count >= 1 && doc.Count <= MaxLetters:
		return att.Letters(doc.Count), nil
	default:
		return nil, &CountError{strconv.Itoa(doc.Count), MaxLetters}
	}
}

// Load reads the schema in the named file.  Files ending in .yaml or .yml
// are in the YAML format, all others in the text format.
func Load(path string) (*fdkeys.Schema, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrapf(err, "could not open file at '%s'", path)
	}
	defer f.Close()

	var s *fdkeys.Schema
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		s, err = ParseYAML(f)
	default:
		s, err = Parse(f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return s, nil
}
