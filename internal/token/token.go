package token

// Type is the type of a token.
type Type string

// Token represents one lexical line of a .dd file.
type Token struct {
	Type    Type
	Literal string
	Raw     string // the trimmed source line
	Line    int
}

const (
	// Special tokens
	ILLEGAL Type = "ILLEGAL" // A malformed header line
	EOF     Type = "EOF"     // End of file

	// Lines
	SECTION Type = "SECTION" // [Metadata]
	TEXT    Type = "TEXT"    // Artist: A  or  1000,0,0,0
	COMMENT Type = "COMMENT" // # a comment  or  ; a comment
)

// Comment markers recognized at the start of a line.
const (
	HashComment      = '#'
	SemicolonComment = ';'
)

// IsCommentMarker reports whether ch starts a comment line.
func IsCommentMarker(ch byte) bool {
	return ch == HashComment || ch == SemicolonComment
}

// IsHeader reports whether a trimmed line has the shape of a section header.
func IsHeader(line string) bool {
	return len(line) > 0 && line[0] == '['
}
