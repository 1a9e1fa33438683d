package dd

import (
	"context"
	"fmt"
	"io"

	"github.com/KimNorgaard/go-dd/ast"
	dderrors "github.com/KimNorgaard/go-dd/errors"
	"github.com/KimNorgaard/go-dd/internal/formatter"
	"github.com/KimNorgaard/go-dd/internal/mapper"
	"github.com/KimNorgaard/go-dd/pkg/logger"
)

// Encoder writes .dd files to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the .dd encoding of d to the stream.
//
// The output always holds the four sections Metadata, Difficulty,
// HitObjects and Events. Events are written grouped by kind: speed
// changes, BPM changes, fever toggles, then any unknown events. Values
// that would not read back unchanged are reported as *UnencodableError
// before anything is written.
func (e *Encoder) Encode(d *Difficulty) error {
	if d == nil {
		return fmt.Errorf("dd: Encode(nil *Difficulty)")
	}
	o, err := newOptions(e.opts)
	if err != nil {
		return err
	}

	doc, err := encodeDocument(d)
	if err != nil {
		return err
	}
	if err := formatter.New(e.w).Format(doc); err != nil {
		return err
	}

	o.logger.Debug(context.Background(), "encoded difficulty",
		logger.String("name", d.FullName()),
		logger.Int("notes", len(d.Notes)),
		logger.Int("events", eventCount(d)),
	)
	return nil
}

func encodeDocument(d *Difficulty) (*ast.Document, error) {
	sections, err := mapper.Encode(d)
	if err != nil {
		return nil, err
	}

	notes := &ast.LineListBody{}
	for _, n := range d.Notes {
		notes.Append(n.String(), 0)
	}

	events := &ast.LineListBody{}
	for _, ev := range d.SpeedEvents {
		events.Append(ev.String(), 0)
	}
	for _, ev := range d.BPMEvents {
		events.Append(ev.String(), 0)
	}
	for _, ev := range d.FeverEvents {
		events.Append(ev.String(), 0)
	}
	for _, ev := range d.UnknownEvents {
		if !readsBackUnknown(ev) {
			return nil, &dderrors.UnencodableError{
				Section: SectionEvents,
				Value:   ev.Text,
				Reason:  "does not read back as an unknown event",
			}
		}
		events.Append(ev.String(), 0)
	}

	sections = append(sections,
		&ast.Section{Name: SectionHitObjects, Body: notes},
		&ast.Section{Name: SectionEvents, Body: events},
	)
	return &ast.Document{Sections: sections}, nil
}
