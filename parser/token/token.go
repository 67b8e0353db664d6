// Package token defines the lexical classes of tokens produced by the lexer.
// Tokens themselves are plain strings.
package token

// Type is the lexical class of a token.
type Type uint

// Type constants used for the lexer/parser.
const (
	INVALID Type = iota

	// Atomic expressions & literals
	ATOM
	STRING

	// Delimiters
	PAREN_L
	PAREN_R

	numTokenTypes
)

// Delimiter and marker characters recognized by the lexer.
const (
	ParenL        = '('
	ParenR        = ')'
	Quote         = '"'
	CommentMarker = ';'
	// CommentMarkerAlt is an alternate line comment marker, allowing
	// "#!" interpreter lines at the top of a source file.
	CommentMarkerAlt = '#'
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID: "invalid",
		ATOM:    "atom",
		STRING:  "string",
		PAREN_L: "(",
		PAREN_R: ")",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

// TypeOf returns the lexical class of text.
func TypeOf(text string) Type {
	switch {
	case text == "":
		return INVALID
	case text == string(ParenL):
		return PAREN_L
	case text == string(ParenR):
		return PAREN_R
	case text[0] == Quote:
		return STRING
	default:
		return ATOM
	}
}

// IsSeparator returns true if c separates tokens outside of a string.
func IsSeparator(c rune) bool {
	switch c {
	case ' ', '\n', '\t', '\r':
		return true
	}
	return false
}

// IsCommentMarker returns true if c begins a line comment outside of a
// string.
func IsCommentMarker(c rune) bool {
	return c == CommentMarker || c == CommentMarkerAlt
}
