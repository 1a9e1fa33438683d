package dd

import (
	"strconv"
	"strings"

	dderrors "github.com/KimNorgaard/go-dd/errors"
	"github.com/KimNorgaard/go-dd/internal/mapper"
)

// EventType is the type code leading every Events line.
type EventType int

const (
	SpeedChange EventType = iota
	BPMChange
	FeverToggle
)

func (t EventType) String() string {
	switch t {
	case SpeedChange:
		return "speed change"
	case BPMChange:
		return "bpm change"
	case FeverToggle:
		return "fever toggle"
	}
	return "EventType(" + strconv.Itoa(int(t)) + ")"
}

// Known reports whether t is one of the recognized event types.
func (t EventType) Known() bool {
	return t >= SpeedChange && t <= FeverToggle
}

// Event is a timed instruction of the Events section. Its dynamic type is
// one of SpeedEvent, BPMEvent, FeverEvent or UnknownEvent.
type Event interface {
	// Type returns the type code written at the start of the line.
	Type() EventType
	// String returns the Events line of the event.
	String() string

	event()
}

// SpeedEvent changes the scroll speed multiplier, written as
//
//	0,<time>,<multiplier>
type SpeedEvent struct {
	Time       int
	Multiplier float64
}

// BPMEvent changes the tempo, written as
//
//	1,<time>,<bpm>
type BPMEvent struct {
	Time int
	BPM  float64
}

// FeverEvent turns fever mode on or off, written as
//
//	2,<time>,<active>
//
// where active is 1 or 0.
type FeverEvent struct {
	Time   int
	Active bool
}

// UnknownEvent is an event line whose type code is not recognized. Text is
// the full line, kept verbatim.
type UnknownEvent struct {
	Code EventType
	Text string
}

func (SpeedEvent) event()   {}
func (BPMEvent) event()     {}
func (FeverEvent) event()   {}
func (UnknownEvent) event() {}

func (SpeedEvent) Type() EventType     { return SpeedChange }
func (BPMEvent) Type() EventType       { return BPMChange }
func (FeverEvent) Type() EventType     { return FeverToggle }
func (e UnknownEvent) Type() EventType { return e.Code }

func (e SpeedEvent) String() string {
	return joinFields(code(SpeedChange), strconv.Itoa(e.Time), mapper.FormatFloat(e.Multiplier, 64))
}

func (e BPMEvent) String() string {
	return joinFields(code(BPMChange), strconv.Itoa(e.Time), mapper.FormatFloat(e.BPM, 64))
}

func (e FeverEvent) String() string {
	return joinFields(code(FeverToggle), strconv.Itoa(e.Time), formatBool(e.Active))
}

func (e UnknownEvent) String() string { return e.Text }

func code(t EventType) string { return strconv.Itoa(int(t)) }

// ParseEvent decodes one Events line. A line whose type code is not
// recognized decodes to an UnknownEvent without error.
func ParseEvent(line string) (Event, error) {
	line = strings.TrimSpace(line)
	head, _, _ := strings.Cut(line, ",")
	n, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return nil, &dderrors.MalformedEventError{
			Text: line,
			Err: &dderrors.FieldTypeError{
				Section:  SectionEvents,
				Key:      "type",
				Expected: "int",
				Actual:   strings.TrimSpace(head),
				Err:      err,
			},
		}
	}

	t := EventType(n)
	if !t.Known() {
		return UnknownEvent{Code: t, Text: line}, nil
	}

	var (
		ev Event
		r  *record
	)
	switch t {
	case SpeedChange:
		r = newRecord(SectionEvents, line, "type", "time", "multiplier")
		ev = SpeedEvent{Time: r.readInt(1), Multiplier: r.readFloat(2)}
	case BPMChange:
		r = newRecord(SectionEvents, line, "type", "time", "bpm")
		ev = BPMEvent{Time: r.readInt(1), BPM: r.readFloat(2)}
	case FeverToggle:
		r = newRecord(SectionEvents, line, "type", "time", "active")
		ev = FeverEvent{Time: r.readInt(1), Active: r.readBool(2)}
	}
	if r.err != nil {
		return nil, &dderrors.MalformedEventError{Text: line, Err: r.err}
	}
	return ev, nil
}

// readsBackUnknown reports whether e.Text decodes to e itself.
func readsBackUnknown(e UnknownEvent) bool {
	parsed, err := ParseEvent(e.Text)
	return err == nil && parsed == Event(e)
}
