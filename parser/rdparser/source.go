package rdparser

import "github.com/nicferrier/nicrisp/parser/token"

// TokenSource is a cursor over a sequence of tokens.  Token is the most
// recently scanned token and Peek is the token that will be scanned next.
type TokenSource struct {
	tokens []string
	pos    int
	Token  string
	Peek   string
}

// NewTokenSource initializes and returns a new TokenSource that scans tokens.
func NewTokenSource(tokens []string) *TokenSource {
	s := &TokenSource{
		tokens: tokens,
	}
	s.setPeek()
	return s
}

// AcceptType scans the next token if it is one of the given types.
func (s *TokenSource) AcceptType(typ ...token.Type) bool {
	if s.IsEOF() {
		return false
	}
	for _, typ := range typ {
		if token.TypeOf(s.Peek) == typ {
			s.Scan()
			return true
		}
	}
	return false
}

// Scan advances to the next token.  Scan returns false if there are no more
// tokens.
func (s *TokenSource) Scan() bool {
	if s.IsEOF() {
		s.Token = ""
		return false
	}
	s.Token = s.Peek
	s.pos++
	s.setPeek()
	return true
}

// IsEOF returns true if all tokens have been scanned.
func (s *TokenSource) IsEOF() bool {
	return s.pos >= len(s.tokens)
}

// Rest returns the tokens which have not been scanned.
func (s *TokenSource) Rest() []string {
	return s.tokens[s.pos:]
}

func (s *TokenSource) setPeek() {
	if s.IsEOF() {
		s.Peek = ""
		return
	}
	s.Peek = s.tokens[s.pos]
}
