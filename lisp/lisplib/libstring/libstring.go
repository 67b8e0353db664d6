// Package libstring provides procedures for building strings.
package libstring

import (
	"fmt"
	"strings"

	"github.com/nicferrier/nicrisp/lisp"
	"github.com/nicferrier/nicrisp/lisp/lisplib/internal/libutil"
)

// LoadPackage adds the string builtins to env
func LoadPackage(env *lisp.LEnv) error {
	return env.AddBuiltins(libutil.Defs(builtins)...)
}

var builtins = []*libutil.Builtin{
	libutil.Function("format", BuiltinFormat),
	libutil.Function("concat", BuiltinConcat),
	libutil.Function("string-len", BuiltinLen),
}

// text returns the content of a string or the display form of any other
// value.
func text(v *lisp.LVal) string {
	if v.Type == lisp.LString {
		return v.Str
	}
	return v.String()
}

// BuiltinFormat substitutes its remaining arguments for each ``{}'' in its
// first.  Literal braces are written ``{{'' and ``}}''.
func BuiltinFormat(args []*lisp.LVal) *lisp.LVal {
	if len(args) < 1 {
		return lisp.Errorf("pass a format string")
	}
	if args[0].Type != lisp.LString {
		return lisp.Errorf("first argument is not a string")
	}
	parts, err := parseFormatString(args[0].Str)
	if err != nil {
		return lisp.Error(err)
	}
	fvals := args[1:]
	var buf strings.Builder
	n := 0
	for _, p := range parts {
		if p.typ != formatValue {
			buf.WriteString(p.text)
			continue
		}
		if n >= len(fvals) {
			return lisp.Errorf("too many formatting directives for supplied values")
		}
		buf.WriteString(text(fvals[n]))
		n++
	}
	if n < len(fvals) {
		return lisp.Errorf("too many values for formatting directives")
	}
	return lisp.String(buf.String())
}

// BuiltinConcat joins the text of its arguments.
func BuiltinConcat(args []*lisp.LVal) *lisp.LVal {
	var buf strings.Builder
	for _, v := range args {
		buf.WriteString(text(v))
	}
	return lisp.String(buf.String())
}

// BuiltinLen returns the number of characters in a string.
func BuiltinLen(args []*lisp.LVal) *lisp.LVal {
	if len(args) != 1 {
		return lisp.Errorf("string-len expects one argument (got %d)", len(args))
	}
	if args[0].Type != lisp.LString {
		return lisp.Errorf("argument is not a string: %v", args[0].Type)
	}
	return lisp.Number(float64(len([]rune(args[0].Str))))
}

type formatPartType uint

const (
	formatText formatPartType = iota
	formatValue
)

type formatPart struct {
	typ  formatPartType
	text string
}

func parseFormatString(f string) ([]formatPart, error) {
	var parts []formatPart
	for len(f) > 0 {
		i := strings.IndexAny(f, "{}")
		if i < 0 {
			parts = append(parts, formatPart{formatText, f})
			break
		}
		if i > 0 {
			parts = append(parts, formatPart{formatText, f[:i]})
			f = f[i:]
		}
		switch {
		case strings.HasPrefix(f, "{{"):
			parts = append(parts, formatPart{formatText, "{"})
			f = f[2:]
		case strings.HasPrefix(f, "}}"):
			parts = append(parts, formatPart{formatText, "}"})
			f = f[2:]
		case f[0] == '}':
			return nil, fmt.Errorf("unexpected closing brace '}' outside of formatting directive")
		default:
			end := strings.IndexByte(f, '}')
			if end < 0 {
				return nil, fmt.Errorf("unclosed formatting directive")
			}
			// TODO:  Allow non-empty formatting directives
			if strings.TrimSpace(f[1:end]) != "" {
				return nil, fmt.Errorf("formatting directives must be empty")
			}
			parts = append(parts, formatPart{formatValue, ""})
			f = f[end+1:]
		}
	}
	return parts, nil
}
