/*
Package parser provides a lisp parser.

	expr     := '(' <expr>* ')' | <bool> | <number> | <string> | <symbol>
	bool     := 'true' | 'false'
	number   := /[+-]?[0-9]+/ <fraction>? <exponent>?
	fraction := '.' <digit>*
	exponent := e /[+-]?[0-9]+/
	string   := '"' <any character except '"'>* '"'
	symbol   := /[^[:space:]()"]+/

Text following ';' or '#' up to the end of the line is a comment.
*/
package parser

import (
	"fmt"
	"io"
	"os"

	"github.com/nicferrier/nicrisp/lisp"
	"github.com/nicferrier/nicrisp/parser/lexer"
	"github.com/nicferrier/nicrisp/parser/rdparser"
)

// NewReader returns a lisp.Reader that parses source text.
func NewReader() lisp.Reader {
	return rdparser.NewReader()
}

// ParseLVal parses LVal values from text and returns them.  Text containing
// only whitespace and comments produces no values and no error.
func ParseLVal(text []byte) ([]*lisp.LVal, error) {
	return rdparser.ParseProgram(lexer.Tokenize(string(text)))
}

// Parse parses expressions from text and evaluates them in env.  If print is
// true the value of each expression is written to stdout.  Parse returns true
// if any expression was evaluated.
func Parse(env *lisp.LEnv, print bool, text []byte) (bool, error) {
	var w io.Writer
	if print {
		w = os.Stdout
	}
	n, err := Eval(env, w, text)
	return n > 0, err
}

// Eval parses expressions from text and evaluates them in env, writing the
// value of each expression to w when w is not nil.  The number of
// expressions evaluated is returned.  Evaluation stops at the first error.
func Eval(env *lisp.LEnv, w io.Writer, text []byte) (int, error) {
	exprs, err := ParseLVal(text)
	if err != nil {
		return 0, err
	}
	for i, expr := range exprs {
		v := env.Eval(expr)
		if v.Type == lisp.LError {
			return i, lisp.GoError(v)
		}
		if w != nil {
			fmt.Fprintln(w, v)
		}
	}
	return len(exprs), nil
}
