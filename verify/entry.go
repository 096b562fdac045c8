// Package verify holds file verification records and the checksums used to
// produce them.
package verify

import (
	"path/filepath"
	"strings"

	"github.com/moneta-go/value"
	"github.com/moneta-go/value/internal/textbuf"
)

// Entry records the expected and calculated checksum of one file.
type Entry struct {
	Directory  string
	Filename   string
	Original   string
	Calculated string
	Algorithm  Algorithm
}

// Path returns the file location.
func (e *Entry) Path() string {
	return filepath.Join(e.Directory, e.Filename)
}

// Check hashes the file, stores the digest in Calculated and reports whether
// it matches Original.
func (e *Entry) Check() (bool, error) {
	sum, err := HashFile(e.Path(), e.Algorithm)
	if err != nil {
		return false, err
	}
	e.Calculated = sum
	return e.Matches(), nil
}

// Matches compares the digests without hashing.
func (e *Entry) Matches() bool {
	return e.Calculated != "" && strings.EqualFold(e.Original, e.Calculated)
}

// ToString renders the record as a brace block of string fields.
func (e *Entry) ToString(tag string, indent int) string {
	fields := [...]struct{ name, text string }{
		{"directory", e.Directory},
		{"filename", e.Filename},
		{"original", e.Original},
		{"calculated", e.Calculated},
		{"hash_algorithm", e.Algorithm.String()},
	}
	buf := textbuf.Indent(nil, tag, indent)
	buf = textbuf.Append(buf, "{\n")
	for i, f := range fields {
		v := value.NewString(f.text)
		buf = textbuf.Append(buf, v.ToString(`"`+f.name+`": `, indent+textbuf.Step))
		v.Destroy()
		if i < len(fields)-1 {
			buf = textbuf.Append(buf, ",")
		}
		buf = textbuf.Append(buf, "\n")
	}
	buf = textbuf.Indent(buf, "", indent)
	return textbuf.String(textbuf.Append(buf, "}"))
}

// NewValue wraps e in a ValueVerifyEntry.
func (e *Entry) NewValue() (*value.Value, error) {
	return value.Create(value.ValueVerifyEntry, e)
}
