// Package errors defines the error types returned while reading and
// writing .dd files. Every error carries the section, key or line that
// caused it so a map author can find the offending spot.
package errors

import (
	"fmt"
	"strconv"
)

// MalformedSectionError reports a line that violates the section grammar:
// a broken header, content outside any section, or a key/value line
// without a delimiter.
type MalformedSectionError struct {
	Section string // empty when the line precedes every header
	Line    int
	Text    string
	Reason  string
}

func (e *MalformedSectionError) Error() string {
	if e.Section == "" {
		return fmt.Sprintf("dd: line %d: %s: %q", e.Line, e.Reason, e.Text)
	}
	return fmt.Sprintf("dd: line %d: section [%s]: %s: %q", e.Line, e.Section, e.Reason, e.Text)
}

// MissingSectionError reports that a required section is absent.
type MissingSectionError struct {
	Section string
}

func (e *MissingSectionError) Error() string {
	return "dd: missing required section [" + e.Section + "]"
}

// MissingFieldError reports that a required key is absent from its section.
type MissingFieldError struct {
	Section string
	Key     string
}

func (e *MissingFieldError) Error() string {
	return "dd: section [" + e.Section + "]: missing required key " + strconv.Quote(e.Key)
}

// FieldTypeError reports a value that could not be converted to the type
// its field requires.
type FieldTypeError struct {
	Section  string
	Key      string
	Expected string
	Actual   string
	Err      error
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("dd: section [%s]: key %q: cannot use %q as %s", e.Section, e.Key, e.Actual, e.Expected)
}

func (e *FieldTypeError) Unwrap() error { return e.Err }

// MalformedNoteError reports a HitObjects line that is not a valid note.
// Line is the 1-based source line, or 0 when the note was parsed on its own.
type MalformedNoteError struct {
	Line int
	Text string
	Err  error
}

func (e *MalformedNoteError) Error() string {
	return lineError("note", e.Line, e.Text, e.Err)
}

func (e *MalformedNoteError) Unwrap() error { return e.Err }

// MalformedEventError reports an Events line that is not a valid event.
type MalformedEventError struct {
	Line int
	Text string
	Err  error
}

func (e *MalformedEventError) Error() string {
	return lineError("event", e.Line, e.Text, e.Err)
}

func (e *MalformedEventError) Unwrap() error { return e.Err }

// UnknownEventError reports an event whose type code is not recognized.
// It is only returned when unknown events are configured to be rejected.
type UnknownEventError struct {
	Line int
	Code int
	Text string
}

func (e *UnknownEventError) Error() string {
	return fmt.Sprintf("dd: line %d: unknown event type %d: %q", e.Line, e.Code, e.Text)
}

// UnencodableError reports a value that cannot be written in a form that
// reads back unchanged, such as a title containing a newline.
type UnencodableError struct {
	Section string
	Key     string // empty for line-list entries
	Value   string
	Reason  string
}

func (e *UnencodableError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("dd: section [%s]: cannot encode %q: %s", e.Section, e.Value, e.Reason)
	}
	return fmt.Sprintf("dd: section [%s]: key %q: cannot encode %q: %s", e.Section, e.Key, e.Value, e.Reason)
}

func lineError(kind string, line int, text string, err error) string {
	msg := "dd: "
	if line > 0 {
		msg += "line " + strconv.Itoa(line) + ": "
	}
	msg += "malformed " + kind + " " + strconv.Quote(text)
	if err != nil {
		msg += ": " + trimPrefix(err.Error())
	}
	return msg
}

// trimPrefix drops the package prefix of a wrapped error so nested
// messages read "dd: ...: cause" instead of repeating "dd:".
func trimPrefix(s string) string {
	const prefix = "dd: "
	if len(s) >= len(prefix) && s[:len(prefix)] == prefix {
		return s[len(prefix):]
	}
	return s
}
