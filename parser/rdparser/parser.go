package rdparser

import (
	"io"
	"io/ioutil"

	"github.com/nicferrier/nicrisp/lisp"
	"github.com/nicferrier/nicrisp/parser/lexer"
	"github.com/nicferrier/nicrisp/parser/token"
)

type reader struct {
}

// NewReader returns a lisp.Reader to use in a lisp.Runtime.
func NewReader() lisp.Reader {
	return &reader{}
}

// Read implements lisp.Reader.
func (_ *reader) Read(name string, r io.Reader) ([]*lisp.LVal, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseProgram(lexer.Tokenize(string(b)))
}

// Parse consumes one expression from the beginning of tokens and returns it
// along with the tokens that were not consumed.
func Parse(tokens []string) (*lisp.LVal, []string, error) {
	p := New(tokens)
	expr := p.ParseExpression()
	if expr.Type == lisp.LError {
		return nil, nil, lisp.GoError(expr)
	}
	return expr, p.src.Rest(), nil
}

// ParseProgram parses every expression in tokens.  An empty token sequence
// produces no expressions and no error.
func ParseProgram(tokens []string) ([]*lisp.LVal, error) {
	return New(tokens).ParseProgram()
}

// Parser is a lisp parser.
type Parser struct {
	src *TokenSource
}

// New initializes and returns a new Parser that reads from tokens.
func New(tokens []string) *Parser {
	return &Parser{
		src: NewTokenSource(tokens),
	}
}

// ParseProgram parses expressions until the tokens are exhausted.
func (p *Parser) ParseProgram() ([]*lisp.LVal, error) {
	var exprs []*lisp.LVal
	for !p.src.IsEOF() {
		expr := p.ParseExpression()
		if expr.Type == lisp.LError {
			return nil, lisp.GoError(expr)
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// ParseExpression parses a single expression.  Parse errors are returned as
// LError values.
func (p *Parser) ParseExpression() *lisp.LVal {
	if !p.src.Scan() {
		return lisp.Errorf("could not get token")
	}
	switch token.TypeOf(p.src.Token) {
	case token.PAREN_L:
		return p.parseList()
	case token.PAREN_R:
		return lisp.Errorf("unexpected closing parenthesis")
	default:
		return ParseAtom(p.src.Token)
	}
}

func (p *Parser) parseList() *lisp.LVal {
	var cells []*lisp.LVal
	for {
		if p.src.IsEOF() {
			return lisp.Errorf("no closing parenthesis")
		}
		if p.src.AcceptType(token.PAREN_R) {
			return lisp.List(cells)
		}
		expr := p.ParseExpression()
		if expr.Type == lisp.LError {
			return expr
		}
		cells = append(cells, expr)
	}
}
