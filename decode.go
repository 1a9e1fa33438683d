package dd

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/KimNorgaard/go-dd/ast"
	dderrors "github.com/KimNorgaard/go-dd/errors"
	"github.com/KimNorgaard/go-dd/internal/lexer"
	"github.com/KimNorgaard/go-dd/internal/mapper"
	"github.com/KimNorgaard/go-dd/internal/parser"
	"github.com/KimNorgaard/go-dd/pkg/logger"
)

// schema declares the body shape of every .dd section.
var schema = ast.Schema{
	Sections: map[string]ast.Shape{
		SectionMetadata:   ast.KeyValue,
		SectionDifficulty: ast.KeyValue,
		SectionHitObjects: ast.LineList,
		SectionEvents:     ast.LineList,
	},
	Default: ast.LineList,
}

// Decoder reads and decodes .dd files from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
//
// Functional options can be provided to configure the decoding process,
// such as the handling of unknown events with the UnknownEvents option.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the whole input and stores the decoded difficulty in d.
//
// The sections Metadata, Difficulty and HitObjects are required and every
// key of Metadata and Difficulty must be present. The Events section is
// optional. The first problem found is returned as one of the error types
// of this package, or as the reader's own error, and d is left untouched.
func (dec *Decoder) Decode(d *Difficulty) error {
	if dec.r == nil {
		return fmt.Errorf("dd: Decode(nil reader)")
	}
	if d == nil {
		return fmt.Errorf("dd: Decode(nil *Difficulty)")
	}
	o, err := newOptions(dec.opts)
	if err != nil {
		return err
	}

	data, err := io.ReadAll(dec.r)
	if err != nil {
		return fmt.Errorf("dd: read: %w", err)
	}

	doc, err := parser.New(lexer.New(bytes.NewReader(data)), schema).Parse()
	if err != nil {
		return err
	}

	ds := &decodeState{opts: o, ctx: context.Background()}
	out, err := ds.decodeDocument(doc)
	if err != nil {
		return err
	}
	*d = *out
	return nil
}

type decodeState struct {
	opts *options
	ctx  context.Context
}

func (ds *decodeState) decodeDocument(doc *ast.Document) (*Difficulty, error) {
	d := new(Difficulty)
	if err := mapper.Decode(doc, d); err != nil {
		return nil, err
	}

	hitObjects, err := lineList(doc, SectionHitObjects)
	if err != nil {
		return nil, err
	}
	if hitObjects == nil {
		return nil, &dderrors.MissingSectionError{Section: SectionHitObjects}
	}
	if err := ds.decodeNotes(hitObjects, d); err != nil {
		return nil, err
	}

	events, err := lineList(doc, SectionEvents)
	if err != nil {
		return nil, err
	}
	if events != nil {
		if err := ds.decodeEvents(events, d); err != nil {
			return nil, err
		}
	}

	ds.opts.logger.Debug(ds.ctx, "decoded difficulty",
		logger.String("name", d.FullName()),
		logger.Int("notes", len(d.Notes)),
		logger.Int("events", eventCount(d)),
	)
	return d, nil
}

// lineList returns the body of the named line-list section, or nil when
// the section is absent.
func lineList(doc *ast.Document, name string) (*ast.LineListBody, error) {
	s := doc.Section(name)
	if s == nil {
		return nil, nil
	}
	body, ok := s.Body.(*ast.LineListBody)
	if !ok {
		return nil, fmt.Errorf("dd: section [%s] is not a line-list section", name)
	}
	return body, nil
}

func (ds *decodeState) decodeNotes(body *ast.LineListBody, d *Difficulty) error {
	if len(body.Lines) > 0 {
		d.Notes = make([]Note, 0, len(body.Lines))
	}
	for _, line := range body.Lines {
		n, err := ParseNote(line.Text)
		if err != nil {
			if noteErr, ok := err.(*dderrors.MalformedNoteError); ok {
				noteErr.Line = line.Line
			}
			return err
		}
		d.Notes = append(d.Notes, n)
	}
	return nil
}

func (ds *decodeState) decodeEvents(body *ast.LineListBody, d *Difficulty) error {
	for _, line := range body.Lines {
		ev, err := ParseEvent(line.Text)
		if err != nil {
			if eventErr, ok := err.(*dderrors.MalformedEventError); ok {
				eventErr.Line = line.Line
			}
			return err
		}

		switch ev := ev.(type) {
		case SpeedEvent:
			d.SpeedEvents = append(d.SpeedEvents, ev)
		case BPMEvent:
			d.BPMEvents = append(d.BPMEvents, ev)
		case FeverEvent:
			d.FeverEvents = append(d.FeverEvents, ev)
		case UnknownEvent:
			if err := ds.unknownEvent(line.Line, ev, d); err != nil {
				return err
			}
		default:
			panic(fmt.Sprintf("dd: unhandled event type %T", ev))
		}
	}
	return nil
}

func (ds *decodeState) unknownEvent(line int, ev UnknownEvent, d *Difficulty) error {
	switch ds.opts.unknownEvents {
	case PreserveUnknownEvents:
		ds.opts.logger.Debug(ds.ctx, "preserving unknown event",
			logger.Int("line", line),
			logger.Int("code", int(ev.Code)),
		)
		d.UnknownEvents = append(d.UnknownEvents, ev)
	case RejectUnknownEvents:
		return &dderrors.UnknownEventError{Line: line, Code: int(ev.Code), Text: ev.Text}
	default:
		ds.opts.logger.Debug(ds.ctx, "dropping unknown event",
			logger.Int("line", line),
			logger.Int("code", int(ev.Code)),
		)
	}
	return nil
}

func eventCount(d *Difficulty) int {
	return len(d.SpeedEvents) + len(d.BPMEvents) + len(d.FeverEvents) + len(d.UnknownEvents)
}
