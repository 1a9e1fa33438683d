package dd

import (
	"strconv"

	dderrors "github.com/KimNorgaard/go-dd/errors"
)

// NoteType is the kind of a playable note.
type NoteType int

const (
	TapNote NoteType = iota
	HoldNote
	FlickNote
)

func (t NoteType) String() string {
	switch t {
	case TapNote:
		return "tap"
	case HoldNote:
		return "hold"
	case FlickNote:
		return "flick"
	}
	return "NoteType(" + strconv.Itoa(int(t)) + ")"
}

func validNoteType(n int) bool {
	return NoteType(n) >= TapNote && NoteType(n) <= FlickNote
}

var noteFields = []string{"time", "lane", "type", "length"}

// Note is a single playable object of the HitObjects section, written as
//
//	<time>,<lane>,<type>,<length>
//
// where time and length are milliseconds and length is 0 for notes that
// are not held.
type Note struct {
	Time   int
	Lane   int
	Type   NoteType
	Length int
}

// ParseNote decodes one HitObjects line.
func ParseNote(line string) (Note, error) {
	r := newRecord(SectionHitObjects, line, noteFields...)
	n := Note{
		Time:   r.readInt(0),
		Lane:   r.readInt(1),
		Type:   NoteType(r.readEnum(2, "NoteType", validNoteType)),
		Length: r.readInt(3),
	}
	if r.err != nil {
		return Note{}, &dderrors.MalformedNoteError{Text: line, Err: r.err}
	}
	return n, nil
}

// String returns the HitObjects line of the note.
func (n Note) String() string {
	return joinFields(
		strconv.Itoa(n.Time),
		strconv.Itoa(n.Lane),
		strconv.Itoa(int(n.Type)),
		strconv.Itoa(n.Length),
	)
}

// MarshalText implements encoding.TextMarshaler.
func (n Note) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Note) UnmarshalText(text []byte) error {
	parsed, err := ParseNote(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
