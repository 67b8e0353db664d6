// Package lexer splits source text into tokens.
package lexer

import (
	"strings"

	"github.com/nicferrier/nicrisp/parser/token"
)

// Lexer accumulates tokens from runes scanned one at a time.  A Lexer never
// rejects input.  A string that is never closed is emitted as a token without
// its closing quote.
type Lexer struct {
	tokens    []string
	buf       strings.Builder
	inString  bool
	inComment bool
}

// New initializes and returns a new Lexer.
func New() *Lexer {
	return &Lexer{}
}

// Tokenize returns the tokens contained in text.
func Tokenize(text string) []string {
	lex := New()
	lex.WriteString(text)
	return lex.Tokens()
}

// WriteString scans every rune of text.
func (lex *Lexer) WriteString(text string) {
	for _, c := range text {
		lex.ScanRune(c)
	}
}

// ScanRune scans c.
func (lex *Lexer) ScanRune(c rune) {
	switch {
	case lex.inComment:
		if c == '\n' {
			lex.inComment = false
		}
	case lex.inString:
		lex.buf.WriteRune(c)
		if c == token.Quote {
			lex.inString = false
			lex.flush()
		}
	case c == token.Quote:
		lex.flush()
		lex.inString = true
		lex.buf.WriteRune(c)
	case c == token.ParenL || c == token.ParenR:
		lex.flush()
		lex.emit(string(c))
	case token.IsCommentMarker(c):
		lex.flush()
		lex.inComment = true
	case token.IsSeparator(c):
		lex.flush()
	default:
		lex.buf.WriteRune(c)
	}
}

// Tokens flushes any pending token and returns all tokens scanned so far.
func (lex *Lexer) Tokens() []string {
	lex.flush()
	lex.inString = false
	return lex.tokens
}

func (lex *Lexer) flush() {
	if lex.buf.Len() == 0 {
		return
	}
	lex.emit(lex.buf.String())
	lex.buf.Reset()
}

func (lex *Lexer) emit(text string) {
	lex.tokens = append(lex.tokens, text)
}
