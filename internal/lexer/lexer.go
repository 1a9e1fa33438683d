package lexer

import (
	"bufio"
	"io"
	"strings"

	"github.com/KimNorgaard/go-dd/internal/token"
)

const byteOrderMark = "\ufeff"

// Lexer holds the state for tokenizing .dd source, one line at a time.
type Lexer struct {
	r    *bufio.Reader
	line int
	done bool
	err  error
}

// New creates and returns a new Lexer.
func New(r io.Reader) *Lexer {
	return &Lexer{r: bufio.NewReader(r)}
}

// NextToken scans the input and returns the token for the next
// significant line. Blank lines are skipped.
func (l *Lexer) NextToken() token.Token {
	for {
		raw, ok := l.readLine()
		if !ok {
			return token.Token{Type: token.EOF, Line: l.line}
		}
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		tok := token.Token{Raw: line, Line: l.line}
		switch {
		case token.IsCommentMarker(line[0]):
			tok.Type = token.COMMENT
			tok.Literal = strings.TrimSpace(line[1:])
		case token.IsHeader(line):
			name, reason := readHeader(line)
			if reason != "" {
				tok.Type = token.ILLEGAL
				tok.Literal = reason
			} else {
				tok.Type = token.SECTION
				tok.Literal = name
			}
		default:
			tok.Type = token.TEXT
			tok.Literal = line
		}
		return tok
	}
}

// Err returns the first read error other than io.EOF, if any.
func (l *Lexer) Err() error {
	return l.err
}

// readLine returns the next physical line without its terminator. Lines
// end at "\n", "\r\n" or a lone "\r". A read error ends the input and
// drops the unfinished line.
func (l *Lexer) readLine() (string, bool) {
	if l.done {
		return "", false
	}
	var (
		b    strings.Builder
		read bool
	)
	for {
		c, err := l.r.ReadByte()
		if err != nil {
			l.done = true
			if err != io.EOF {
				l.err = err
				return "", false
			}
			if !read {
				return "", false
			}
			break
		}
		read = true
		if c == '\n' {
			break
		}
		if c == '\r' {
			if next, err := l.r.Peek(1); err == nil && next[0] == '\n' {
				_, _ = l.r.ReadByte()
			}
			break
		}
		b.WriteByte(c)
	}
	l.line++
	s := b.String()
	if l.line == 1 {
		s = strings.TrimPrefix(s, byteOrderMark)
	}
	return s, true
}

// readHeader extracts the section name from a line starting with '['.
// A non-empty reason means the header is malformed.
func readHeader(line string) (name string, reason string) {
	if !strings.HasSuffix(line, "]") {
		return "", "unterminated section header"
	}
	name = strings.TrimSpace(line[1 : len(line)-1])
	if name == "" {
		return "", "empty section name"
	}
	if strings.ContainsAny(name, "[]") {
		return "", "invalid character in section name"
	}
	return name, ""
}
