package lexer_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/KimNorgaard/go-dd/internal/lexer"
	"github.com/KimNorgaard/go-dd/internal/token"
	"github.com/stretchr/testify/require"
)

func TestNextToken(t *testing.T) {
	input := `
# Top-level comment
[Metadata]
  Artist: A
Title=T

; another comment
[HitObjects]
1000,0,0,0
	2000,1,1,500
[ Events ]
[broken
[]
[a]b]
`
	expectedTokens := []struct {
		expectedType    token.Type
		expectedLiteral string
		expectedLine    int
	}{
		{token.COMMENT, "Top-level comment", 2},
		{token.SECTION, "Metadata", 3},
		{token.TEXT, "Artist: A", 4},
		{token.TEXT, "Title=T", 5},
		{token.COMMENT, "another comment", 7},
		{token.SECTION, "HitObjects", 8},
		{token.TEXT, "1000,0,0,0", 9},
		{token.TEXT, "2000,1,1,500", 10},
		{token.SECTION, "Events", 11},
		{token.ILLEGAL, "unterminated section header", 12},
		{token.ILLEGAL, "empty section name", 13},
		{token.ILLEGAL, "invalid character in section name", 14},
		{token.EOF, "", 14},
	}

	l := lexer.New(strings.NewReader(input))
	for i, tt := range expectedTokens {
		tok := l.NextToken()
		require.Equal(t, tt.expectedType, tok.Type, "tests[%d] - tokentype wrong", i)
		require.Equal(t, tt.expectedLiteral, tok.Literal, "tests[%d] - literal wrong", i)
		require.Equal(t, tt.expectedLine, tok.Line, "tests[%d] - line wrong", i)
	}

	// EOF is sticky.
	require.Equal(t, token.EOF, l.NextToken().Type)
}

func TestNextToken_RawKeepsSourceLine(t *testing.T) {
	l := lexer.New(strings.NewReader("  [broken  \n"))
	tok := l.NextToken()
	require.Equal(t, token.ILLEGAL, tok.Type)
	require.Equal(t, "[broken", tok.Raw)
}

func TestNextToken_LineEndings(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"LF", "[Metadata]\nArtist: A\n"},
		{"CRLF", "[Metadata]\r\nArtist: A\r\n"},
		{"CR", "[Metadata]\rArtist: A\r"},
		{"Mixed", "[Metadata]\rArtist: A\r\n"},
		{"No trailing newline", "[Metadata]\nArtist: A"},
		{"Byte order mark", "\ufeff[Metadata]\nArtist: A\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := lexer.New(strings.NewReader(tc.input))

			tok := l.NextToken()
			require.Equal(t, token.SECTION, tok.Type)
			require.Equal(t, "Metadata", tok.Literal)
			require.Equal(t, 1, tok.Line)

			tok = l.NextToken()
			require.Equal(t, token.TEXT, tok.Type)
			require.Equal(t, "Artist: A", tok.Literal)
			require.Equal(t, 2, tok.Line)

			require.Equal(t, token.EOF, l.NextToken().Type)
		})
	}
}

func TestNextToken_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "\n\n", "   \n\t\n"} {
		l := lexer.New(strings.NewReader(input))
		require.Equal(t, token.EOF, l.NextToken().Type)
	}
}

func TestNextToken_CarriageReturnSplitsLine(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		literals []string
		lines    []int
	}{
		{"Inside value", "Thumbnail=0\r0\n", []string{"Thumbnail=0", "0"}, []int{1, 2}},
		{"Inside record", "0,0,0,0\r100,1,0,0", []string{"0,0,0,0", "100,1,0,0"}, []int{1, 2}},
		{"Blank CR lines", "a\r\r\rb\r\n", []string{"a", "b"}, []int{1, 4}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := lexer.New(strings.NewReader(tc.input))
			for i, want := range tc.literals {
				tok := l.NextToken()
				require.Equal(t, token.TEXT, tok.Type)
				require.Equal(t, want, tok.Literal)
				require.Equal(t, tc.lines[i], tok.Line)
			}
			require.Equal(t, token.EOF, l.NextToken().Type)
			require.NoError(t, l.Err())
		})
	}
}

func TestNextToken_ReadError(t *testing.T) {
	diskFailure := errors.New("disk failure")
	l := lexer.New(io.MultiReader(strings.NewReader("[HitObjects]\n0,0,0,0\n100,1"), iotest.ErrReader(diskFailure)))

	tok := l.NextToken()
	require.Equal(t, token.SECTION, tok.Type)
	tok = l.NextToken()
	require.Equal(t, token.TEXT, tok.Type)
	require.Equal(t, "0,0,0,0", tok.Literal)

	// The unfinished line is dropped.
	require.Equal(t, token.EOF, l.NextToken().Type)
	require.ErrorIs(t, l.Err(), diskFailure)
}
