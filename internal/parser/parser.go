package parser

import (
	"strings"

	"github.com/KimNorgaard/go-dd/ast"
	dderrors "github.com/KimNorgaard/go-dd/errors"
	"github.com/KimNorgaard/go-dd/internal/lexer"
	"github.com/KimNorgaard/go-dd/internal/token"
)

// Delimiters accepted between a key and its value.
const delimiters = ":="

// Parser holds the state of the parser.
type Parser struct {
	l      *lexer.Lexer
	schema ast.Schema

	curToken token.Token
	section  *ast.Section
}

// New creates a new parser. The schema decides, per section name, whether
// a body is read as key/value pairs or as raw record lines.
func New(l *lexer.Lexer, schema ast.Schema) *Parser {
	p := &Parser{l: l, schema: schema}
	p.nextToken()
	return p
}

// Parse reads the whole input and returns the document. It stops at the
// first malformed line. A failing reader fails the parse with its error.
func (p *Parser) Parse() (*ast.Document, error) {
	doc := &ast.Document{Sections: []*ast.Section{}}
	seen := make(map[string]bool)

	for !p.curTokenIs(token.EOF) {
		switch p.curToken.Type {
		case token.SECTION:
			name := p.curToken.Literal
			if seen[name] {
				err := p.malformed("duplicate section")
				err.Section = name
				return nil, err
			}
			seen[name] = true
			p.section = newSection(name, p.curToken.Line, p.schema.ShapeOf(name))
			doc.Sections = append(doc.Sections, p.section)
		case token.TEXT:
			if err := p.parseBodyLine(); err != nil {
				return nil, err
			}
		case token.ILLEGAL:
			err := p.malformed(p.curToken.Literal)
			err.Section = ""
			return nil, err
		}
		p.nextToken()
	}
	if err := p.l.Err(); err != nil {
		return nil, err
	}
	return doc, nil
}

func newSection(name string, line int, shape ast.Shape) *ast.Section {
	s := &ast.Section{Name: name, Line: line}
	switch shape {
	case ast.LineList:
		s.Body = &ast.LineListBody{Lines: []*ast.Line{}}
	default:
		s.Body = &ast.KeyValueBody{Pairs: []*ast.Pair{}}
	}
	return s
}

func (p *Parser) parseBodyLine() error {
	if p.section == nil {
		return p.malformed("content before first section header")
	}
	switch body := p.section.Body.(type) {
	case *ast.LineListBody:
		body.Append(p.curToken.Literal, p.curToken.Line)
	case *ast.KeyValueBody:
		key, value, ok := splitPair(p.curToken.Literal)
		if !ok {
			return p.malformed("missing key/value delimiter")
		}
		if key == "" {
			return p.malformed("empty key")
		}
		body.Set(key, value, p.curToken.Line)
	}
	return nil
}

// splitPair splits a line at the first delimiter.
func splitPair(line string) (key, value string, ok bool) {
	i := strings.IndexAny(line, delimiters)
	if i < 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:]), true
}

func (p *Parser) nextToken() {
	p.curToken = p.l.NextToken()
	for p.curTokenIs(token.COMMENT) {
		p.curToken = p.l.NextToken()
	}
}

func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}

func (p *Parser) malformed(reason string) *dderrors.MalformedSectionError {
	e := &dderrors.MalformedSectionError{
		Line:   p.curToken.Line,
		Text:   p.curToken.Raw,
		Reason: reason,
	}
	if p.section != nil {
		e.Section = p.section.Name
	}
	return e
}
