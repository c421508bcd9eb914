// Package report renders the result of a candidate key analysis as text, a
// table, JSON or YAML.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/jonlawlor/fdkeys"
	"github.com/jonlawlor/fdkeys/att"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Format is the way a report is written.
type Format string

const (
	// Text lists the keys one per line, with a short header.
	Text Format = "text"
	// Table puts the keys in a table.
	Table Format = "table"
	// JSON writes the report as an indented JSON object.
	JSON Format = "json"
	// YAML writes the report as a YAML document.
	YAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{Text, Table, JSON, YAML}

// ParseFormat checks that name is one of the supported formats.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if string(f) == strings.ToLower(name) {
			return f, nil
		}
	}
	return "", errors.Errorf("report: unknown format '%s'", name)
}

// Report is the analysis of one schema.
type Report struct {
	Source       string          `json:"source,omitempty" yaml:"source,omitempty"`
	Attributes   []att.Attribute `json:"attributes" yaml:"attributes"`
	Dependencies []string        `json:"dependencies" yaml:"dependencies"`
	Keys         att.CandKeys    `json:"keys" yaml:"keys"`
	Stats        fdkeys.Stats    `json:"stats" yaml:"stats"`
	Elapsed      string          `json:"elapsed" yaml:"elapsed"`
}

// New runs the analysis of s and records it, along with the time it took.
func New(source string, s *fdkeys.Schema, opts ...fdkeys.Option) *Report {
	e := s.Enumerator(opts...)
	start := time.Now()
	keys := e.All()
	elapsed := time.Since(start)
	return &Report{
		Source:       source,
		Attributes:   s.Heading(),
		Dependencies: s.FormatDependencies(),
		Keys:         att.KeysOf(s.Heading(), keys),
		Stats:        e.Stats(),
		Elapsed:      elapsed.String(),
	}
}

// Write writes the report in the given format.
func Write(w io.Writer, r *Report, f Format) error {
	switch f {
	case Text:
		return writeText(w, r)
	case Table:
		return writeTable(w, r)
	case JSON:
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return errors.Wrap(err, "report: json encoding failed")
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case YAML:
		b, err := yaml.Marshal(r)
		if err != nil {
			return errors.Wrap(err, "report: yaml encoding failed")
		}
		_, err = w.Write(b)
		return err
	default:
		return errors.Errorf("report: unknown format '%s'", f)
	}
}

func writeText(w io.Writer, r *Report) error {
	var b strings.Builder
	if r.Source != "" {
		fmt.Fprintf(&b, "Source: %s\n", r.Source)
	}
	fmt.Fprintf(&b, "Number of attributes: %d\n", len(r.Attributes))
	fmt.Fprintf(&b, "Number of dependencies: %d\n", len(r.Dependencies))
	fmt.Fprintf(&b, "Candidate keys (%d):\n", len(r.Keys))
	for _, k := range r.Keys {
		fmt.Fprintf(&b, "  %s\n", joinKey(k))
	}
	fmt.Fprintf(&b, "Elapsed: %s\n", r.Elapsed)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeTable(w io.Writer, r *Report) error {
	if r.Source != "" {
		if _, err := fmt.Fprintf(w, "%s\n", r.Source); err != nil {
			return err
		}
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Candidate key", "Size"})
	for i, k := range r.Keys {
		table.Append([]string{strconv.Itoa(i + 1), joinKey(k), strconv.Itoa(len(k))})
	}
	table.SetFooter([]string{"", "elapsed " + r.Elapsed, strconv.Itoa(len(r.Keys))})
	table.Render()
	return nil
}

func joinKey(k []att.Attribute) string {
	str := make([]string, len(k))
	for i := range k {
		str[i] = string(k[i])
	}
	return "{" + strings.Join(str, ", ") + "}"
}
