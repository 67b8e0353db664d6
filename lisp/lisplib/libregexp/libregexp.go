// Package libregexp provides procedures for matching strings against regular
// expressions.
package libregexp

import (
	"regexp"

	"github.com/nicferrier/nicrisp/lisp"
	"github.com/nicferrier/nicrisp/lisp/lisplib/internal/libutil"
)

// LoadPackage adds the regexp builtins to env
func LoadPackage(env *lisp.LEnv) error {
	return env.AddBuiltins(libutil.Defs(builtins)...)
}

var builtins = []*libutil.Builtin{
	libutil.Function("regexp-compile", BuiltinCompile),
	libutil.Function("regexp-pattern", BuiltinPattern),
	libutil.Function("regexp-match?", BuiltinIsMatch),
	libutil.Function("regexp-find", BuiltinFind),
}

// BuiltinCompile returns a compiled regular expression.
func BuiltinCompile(args []*lisp.LVal) *lisp.LVal {
	if len(args) != 1 {
		return lisp.Errorf("regexp-compile expects one argument (got %d)", len(args))
	}
	patt := args[0]
	if patt.Type != lisp.LString {
		return lisp.Errorf("argument is not a string: %v", patt.Type)
	}
	re, err := regexp.Compile(patt.Str)
	if err != nil {
		return lisp.Error(err)
	}
	return lisp.Native(re)
}

// BuiltinPattern returns the source text of a compiled regular expression.
func BuiltinPattern(args []*lisp.LVal) *lisp.LVal {
	if len(args) != 1 {
		return lisp.Errorf("regexp-pattern expects one argument (got %d)", len(args))
	}
	re, lerr := getRegexp(args[0])
	if lerr != nil {
		return lerr
	}
	return lisp.String(re.String())
}

// BuiltinIsMatch returns true if the text matches the regular expression.
func BuiltinIsMatch(args []*lisp.LVal) *lisp.LVal {
	re, text, lerr := matchArgs("regexp-match?", args)
	if lerr != nil {
		return lerr
	}
	return lisp.Bool(re.MatchString(text))
}

// BuiltinFind returns a list of the leftmost match and its submatches.  The
// list is empty when the text does not match.
func BuiltinFind(args []*lisp.LVal) *lisp.LVal {
	re, text, lerr := matchArgs("regexp-find", args)
	if lerr != nil {
		return lerr
	}
	m := re.FindStringSubmatch(text)
	cells := make([]*lisp.LVal, len(m))
	for i := range m {
		cells[i] = lisp.String(m[i])
	}
	return lisp.List(cells)
}

func matchArgs(name string, args []*lisp.LVal) (*regexp.Regexp, string, *lisp.LVal) {
	if len(args) != 2 {
		return nil, "", lisp.Errorf("%s expects two arguments (got %d)", name, len(args))
	}
	re, lerr := getRegexp(args[0])
	if lerr != nil {
		return nil, "", lerr
	}
	if args[1].Type != lisp.LString {
		return nil, "", lisp.Errorf("argument is not a string: %v", args[1].Type)
	}
	return re, args[1].Str, nil
}

// getRegexp accepts a compiled regular expression or a pattern string.
func getRegexp(v *lisp.LVal) (*regexp.Regexp, *lisp.LVal) {
	switch v.Type {
	case lisp.LString:
		re, err := regexp.Compile(v.Str)
		if err != nil {
			return nil, lisp.Error(err)
		}
		return re, nil
	case lisp.LNative:
		re, ok := v.Native.(*regexp.Regexp)
		if !ok {
			return nil, lisp.Errorf("argument is not a regexp: %v", v)
		}
		return re, nil
	default:
		return nil, lisp.Errorf("argument is not a regexp: %v", v.Type)
	}
}
