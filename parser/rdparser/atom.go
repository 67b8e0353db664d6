package rdparser

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/nicferrier/nicrisp/lisp"
	"github.com/nicferrier/nicrisp/parser/token"
	parsec "github.com/prataprc/goparsec"
)

// numberParsers recognize the textual float grammar: an optional sign,
// digits with an optional fraction, and an optional exponent.  The infinity
// and NaN spellings are recognized as well, each with an optional sign.
var numberParsers = []parsec.Parser{
	parsec.Token(`[+-]?([0-9]+([.][0-9]*)?|[.][0-9]+)([eE][+-]?[0-9]+)?`, "DECIMAL"),
	parsec.Token(`[+-]?(?i:infinity|inf)`, "INFINITY"),
	parsec.Token(`[+-]?(?i:nan)`, "NAN"),
}

// ParseAtom returns the LVal denoted by the single token text.  ParseAtom
// never fails.  Text that is not a boolean, string or number is a symbol.
func ParseAtom(text string) *lisp.LVal {
	switch text {
	case "true":
		return lisp.Bool(true)
	case "false":
		return lisp.Bool(false)
	}
	if token.TypeOf(text) == token.STRING {
		return lisp.String(unquoteString(text))
	}
	if x, ok := parseNumber(text); ok {
		return lisp.Number(x)
	}
	return lisp.Symbol(text)
}

func parseNumber(text string) (float64, bool) {
	for _, p := range numberParsers {
		node, s := p(parsec.NewScanner([]byte(text)))
		term, ok := node.(*parsec.Terminal)
		if !ok || term.Value != text || !s.Endof() {
			continue
		}
		// strconv.ParseFloat rejects a signed NaN.
		if term.Name == "NAN" {
			return math.NaN(), true
		}
		x, err := strconv.ParseFloat(text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		return x, true
	}
	return 0, false
}

// unquoteString strips the quote marker from both ends of text.  There are
// no escape sequences.  A string that was never closed only loses its
// opening quote.
func unquoteString(text string) string {
	text = text[1:]
	return strings.TrimSuffix(text, string(token.Quote))
}
