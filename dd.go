package dd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/KimNorgaard/go-dd/ast"
	"github.com/KimNorgaard/go-dd/internal/formatter"
	"github.com/KimNorgaard/go-dd/internal/lexer"
	"github.com/KimNorgaard/go-dd/internal/parser"
)

// Marshal returns the .dd encoding of d.
func Marshal(d *Difficulty, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, opts...)
	if err := e.Encode(d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses the .dd encoded data and stores the result in d.
// d is left untouched when an error is returned.
func Unmarshal(data []byte, d *Difficulty, opts ...Option) error {
	return NewDecoder(bytes.NewReader(data), opts...).Decode(d)
}

// ReadFile reads and decodes the named .dd file.
func ReadFile(name string, opts ...Option) (*Difficulty, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("dd: read %s: %w", name, err)
	}
	d := new(Difficulty)
	if err := Unmarshal(data, d, opts...); err != nil {
		return nil, err
	}
	return d, nil
}

// WriteFile encodes d and writes it to the named file, creating it with
// mode 0644 if needed. Nothing is written when encoding fails.
func WriteFile(name string, d *Difficulty, opts ...Option) error {
	data, err := Marshal(d, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("dd: write %s: %w", name, err)
	}
	return nil
}

// Parse parses data into its section tree without interpreting any field.
// Metadata and Difficulty are read as key/value pairs, every other section
// as a list of raw lines.
// It is meant for tools that inspect or rewrite files at the section level.
func Parse(data []byte) (*ast.Document, error) {
	return parser.New(lexer.New(bytes.NewReader(data)), schema).Parse()
}

// Format returns the .dd text of doc.
func Format(doc *ast.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := formatter.New(&buf).Format(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
