// Package ast declares the types used to represent a parsed .dd file
// before it is mapped onto a Difficulty.
package ast

import (
	"bytes"
	"slices"
)

// Shape selects how the body of a section is read.
type Shape int

const (
	// KeyValue bodies hold "Key: Value" lines.
	KeyValue Shape = iota
	// LineList bodies hold raw record lines kept verbatim and in order.
	LineList
)

func (s Shape) String() string {
	switch s {
	case KeyValue:
		return "key/value"
	case LineList:
		return "line-list"
	}
	return "unknown"
}

// Schema declares the body shape of each section by name. Sections not
// listed take the Default shape.
type Schema struct {
	Sections map[string]Shape
	Default  Shape
}

// ShapeOf returns the declared shape for the named section.
func (s Schema) ShapeOf(name string) Shape {
	if shape, ok := s.Sections[name]; ok {
		return shape
	}
	return s.Default
}

// Node is the base interface for all AST nodes.
type Node interface {
	// String returns the .dd text of the node.
	String() string
}

// Body is the content of a section. It is implemented by *KeyValueBody
// and *LineListBody only.
type Body interface {
	Node
	Shape() Shape
	bodyNode()
}

// Document is the root node of a .dd file: its sections in source order.
type Document struct {
	Sections []*Section
}

// Section returns the section with the given name, or nil.
func (d *Document) Section(name string) *Section {
	for _, s := range d.Sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// String returns a string representation of the node.
func (d *Document) String() string {
	var out bytes.Buffer
	for i, s := range d.Sections {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(s.String())
	}
	return out.String()
}

// Equal reports whether two documents hold the same sections with the
// same content. Source positions are ignored.
func (d *Document) Equal(o *Document) bool {
	return slices.EqualFunc(d.Sections, o.Sections, func(a, b *Section) bool {
		return a.Equal(b)
	})
}

// Section is a named block of the file.
type Section struct {
	Name string
	Line int // line of the header, 0 when built in code
	Body Body
}

func (s *Section) String() string {
	var out bytes.Buffer
	out.WriteString("[" + s.Name + "]\n")
	if s.Body != nil {
		out.WriteString(s.Body.String())
	}
	return out.String()
}

// Equal reports whether two sections have the same name and content.
func (s *Section) Equal(o *Section) bool {
	if s.Name != o.Name {
		return false
	}
	switch a := s.Body.(type) {
	case *KeyValueBody:
		b, ok := o.Body.(*KeyValueBody)
		return ok && a.Equal(b)
	case *LineListBody:
		b, ok := o.Body.(*LineListBody)
		return ok && a.Equal(b)
	}
	return s.Body == nil && o.Body == nil
}

// Pair is a single "Key: Value" entry.
type Pair struct {
	Key   string
	Value string
	Line  int
}

func (p *Pair) String() string {
	if p.Value == "" {
		return p.Key + ":"
	}
	return p.Key + ": " + p.Value
}

// KeyValueBody is a flat mapping of keys to values. Pairs keep the
// position of the first occurrence of each key.
type KeyValueBody struct {
	Pairs []*Pair
}

func (b *KeyValueBody) bodyNode()    {}
func (b *KeyValueBody) Shape() Shape { return KeyValue }

// Get returns the value for key.
func (b *KeyValueBody) Get(key string) (string, bool) {
	if p := b.pair(key); p != nil {
		return p.Value, true
	}
	return "", false
}

// Set stores value under key. An existing key keeps its position and
// takes the new value.
func (b *KeyValueBody) Set(key, value string, line int) {
	if p := b.pair(key); p != nil {
		p.Value = value
		p.Line = line
		return
	}
	b.Pairs = append(b.Pairs, &Pair{Key: key, Value: value, Line: line})
}

// Line returns the source line of key, or 0.
func (b *KeyValueBody) Line(key string) int {
	if p := b.pair(key); p != nil {
		return p.Line
	}
	return 0
}

func (b *KeyValueBody) pair(key string) *Pair {
	for _, p := range b.Pairs {
		if p.Key == key {
			return p
		}
	}
	return nil
}

func (b *KeyValueBody) String() string {
	var out bytes.Buffer
	for _, p := range b.Pairs {
		out.WriteString(p.String())
		out.WriteString("\n")
	}
	return out.String()
}

// Equal reports whether both bodies hold the same pairs in the same order.
func (b *KeyValueBody) Equal(o *KeyValueBody) bool {
	return slices.EqualFunc(b.Pairs, o.Pairs, func(x, y *Pair) bool {
		return x.Key == y.Key && x.Value == y.Value
	})
}

// Line is a single raw record of a line-list body.
type Line struct {
	Text string
	Line int
}

// LineListBody is an ordered sequence of raw record lines.
type LineListBody struct {
	Lines []*Line
}

func (b *LineListBody) bodyNode()    {}
func (b *LineListBody) Shape() Shape { return LineList }

// Append adds a record line.
func (b *LineListBody) Append(text string, line int) {
	b.Lines = append(b.Lines, &Line{Text: text, Line: line})
}

// Texts returns the record lines without positions.
func (b *LineListBody) Texts() []string {
	texts := make([]string, len(b.Lines))
	for i, l := range b.Lines {
		texts[i] = l.Text
	}
	return texts
}

func (b *LineListBody) String() string {
	var out bytes.Buffer
	for _, l := range b.Lines {
		out.WriteString(l.Text)
		out.WriteString("\n")
	}
	return out.String()
}

// Equal reports whether both bodies hold the same lines in the same order.
func (b *LineListBody) Equal(o *LineListBody) bool {
	return slices.Equal(b.Texts(), o.Texts())
}

// NewKeyValueSection builds a key/value section from ordered key/value
// pairs given as alternating arguments.
func NewKeyValueSection(name string, kv ...string) *Section {
	body := &KeyValueBody{}
	for i := 0; i+1 < len(kv); i += 2 {
		body.Set(kv[i], kv[i+1], 0)
	}
	return &Section{Name: name, Body: body}
}

// NewLineListSection builds a line-list section from record lines.
func NewLineListSection(name string, lines ...string) *Section {
	body := &LineListBody{}
	for _, l := range lines {
		body.Append(l, 0)
	}
	return &Section{Name: name, Body: body}
}
