package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/KimNorgaard/go-dd/ast"
	dderrors "github.com/KimNorgaard/go-dd/errors"
	"github.com/KimNorgaard/go-dd/internal/token"
)

// Formatter writes a .dd AST to an output stream.
type Formatter struct {
	w   io.Writer
	err error
}

// New returns a new formatter that writes to w.
func New(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

// Format validates the document and writes its .dd text to the writer.
// Nothing is written when the document cannot be read back unchanged.
func (f *Formatter) Format(doc *ast.Document) error {
	if err := Validate(doc); err != nil {
		return err
	}
	for i, s := range doc.Sections {
		if i > 0 {
			f.write("\n")
		}
		f.writeSection(s)
	}
	return f.err
}

func (f *Formatter) write(s string) {
	if f.err != nil {
		return
	}
	_, f.err = io.WriteString(f.w, s)
}

func (f *Formatter) writeSection(s *ast.Section) {
	f.write("[" + s.Name + "]\n")
	switch b := s.Body.(type) {
	case *ast.KeyValueBody:
		for _, p := range b.Pairs {
			f.write(p.String())
			f.write("\n")
		}
	case *ast.LineListBody:
		for _, l := range b.Lines {
			f.write(l.Text)
			f.write("\n")
		}
	}
}

// Validate reports the first part of doc that would not parse back to
// the same document.
func Validate(doc *ast.Document) error {
	seen := make(map[string]bool, len(doc.Sections))
	for _, s := range doc.Sections {
		if reason := checkSectionName(s.Name); reason != "" {
			return &dderrors.UnencodableError{Section: s.Name, Value: s.Name, Reason: reason}
		}
		if seen[s.Name] {
			return &dderrors.UnencodableError{Section: s.Name, Value: s.Name, Reason: "duplicate section"}
		}
		seen[s.Name] = true

		switch b := s.Body.(type) {
		case *ast.KeyValueBody:
			if err := validatePairs(s.Name, b); err != nil {
				return err
			}
		case *ast.LineListBody:
			for _, l := range b.Lines {
				if reason := checkRecord(l.Text); reason != "" {
					return &dderrors.UnencodableError{Section: s.Name, Value: l.Text, Reason: reason}
				}
			}
		case nil:
			return &dderrors.UnencodableError{Section: s.Name, Reason: "section has no body"}
		default:
			return fmt.Errorf("dd: unsupported body type for formatting: %T", b)
		}
	}
	return nil
}

func validatePairs(section string, b *ast.KeyValueBody) error {
	keys := make(map[string]bool, len(b.Pairs))
	for _, p := range b.Pairs {
		if reason := checkKey(p.Key); reason != "" {
			return &dderrors.UnencodableError{Section: section, Key: p.Key, Value: p.Key, Reason: reason}
		}
		if keys[p.Key] {
			return &dderrors.UnencodableError{Section: section, Key: p.Key, Value: p.Value, Reason: "duplicate key"}
		}
		keys[p.Key] = true
		if reason := checkValue(p.Value); reason != "" {
			return &dderrors.UnencodableError{Section: section, Key: p.Key, Value: p.Value, Reason: reason}
		}
	}
	return nil
}

func checkSectionName(name string) string {
	switch {
	case name == "":
		return "empty section name"
	case strings.ContainsAny(name, "[]"):
		return "section name contains a bracket"
	}
	return checkValue(name)
}

func checkKey(key string) string {
	switch {
	case key == "":
		return "empty key"
	case strings.ContainsAny(key, ":="):
		return "key contains a delimiter"
	case token.IsCommentMarker(key[0]):
		return "key starts with a comment marker"
	case token.IsHeader(key):
		return "key starts with a bracket"
	}
	return checkValue(key)
}

func checkRecord(line string) string {
	switch {
	case line == "":
		return "empty line"
	case token.IsCommentMarker(line[0]):
		return "line starts with a comment marker"
	case token.IsHeader(line):
		return "line starts with a bracket"
	}
	return checkValue(line)
}

func checkValue(s string) string {
	switch {
	case strings.ContainsAny(s, "\r\n"):
		return "contains a line break"
	case strings.TrimSpace(s) != s:
		return "has leading or trailing whitespace"
	}
	return ""
}
