package lisp

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// LValType is the type of an LVal
type LValType uint

// Possible LValType values
const (
	LInvalid LValType = iota
	LBool
	LSymbol
	LNumber
	LString
	LList
	LFun
	LClosure
	LNative
	LError
)

var lvalTypeStrings = []string{
	LInvalid: "INVALID",
	LBool:    "bool",
	LSymbol:  "symbol",
	LNumber:  "number",
	LString:  "string",
	LList:    "list",
	LFun:     "builtin",
	LClosure: "closure",
	LNative:  "native",
	LError:   "error",
}

func (t LValType) String() string {
	if int(t) >= len(lvalTypeStrings) {
		return lvalTypeStrings[LInvalid]
	}
	return lvalTypeStrings[t]
}

// LBuiltin is a native procedure.  It receives its arguments fully evaluated
// and returns either a result or an LError value.  An LBuiltin has no access
// to the environment it is called from.
type LBuiltin func(args []*LVal) *LVal

// LVal is a lisp value.  LVal values are not modified once constructed;
// rebinding a name with ``def'' replaces the binding, never the value.
type LVal struct {
	Type LValType

	Bool  bool
	Num   float64
	Str   string // symbol name, string content, builtin name, error message
	Cells []*LVal

	// Variables needed for function values
	Builtin LBuiltin
	Env     *LEnv
	Formals *LVal
	Body    *LVal

	// Native holds a value produced outside the core, such as a parsed
	// document.  The core stores and forwards it without inspection.
	Native interface{}
}

// Bool returns an LVal representing the boolean b.
func Bool(b bool) *LVal {
	return &LVal{
		Type: LBool,
		Bool: b,
	}
}

// Symbol returns an LVal resprenting the symbol s
func Symbol(s string) *LVal {
	return &LVal{
		Type: LSymbol,
		Str:  s,
	}
}

// Number returns an LVal representing the number x.
func Number(x float64) *LVal {
	return &LVal{
		Type: LNumber,
		Num:  x,
	}
}

// String returns an LVal representing the string str.
func String(str string) *LVal {
	return &LVal{
		Type: LString,
		Str:  str,
	}
}

// List returns an LVal representing a list of the given cells.  Lists are
// both literal data and the syntax of every compound form.
func List(cells []*LVal) *LVal {
	return &LVal{
		Type:  LList,
		Cells: cells,
	}
}

// Fun returns an LVal representing the native procedure fn.  The name is
// used when the function is displayed.
func Fun(name string, fn LBuiltin) *LVal {
	return &LVal{
		Type:    LFun,
		Str:     name,
		Builtin: fn,
	}
}

// Closure returns a user defined function which binds the symbols in formals
// and evaluates body in a child of env.
func Closure(env *LEnv, formals *LVal, body *LVal) *LVal {
	return &LVal{
		Type:    LClosure,
		Env:     env,
		Formals: formals,
		Body:    body,
	}
}

// Native returns an LVal wrapping a value produced outside the core.
func Native(x interface{}) *LVal {
	return &LVal{
		Type:   LNative,
		Native: x,
	}
}

// Error returns an LVal representing the error corresponding to err.
func Error(err error) *LVal {
	var lerr *ErrorVal
	if errors.As(err, &lerr) {
		return (*LVal)(lerr)
	}
	return &LVal{
		Type: LError,
		Str:  err.Error(),
	}
}

// Errorf returns an LVal representing with a formatted error message.
func Errorf(format string, v ...interface{}) *LVal {
	return &LVal{
		Type: LError,
		Str:  fmt.Sprintf(format, v...),
	}
}

// Len returns the number of cells in v.
func (v *LVal) Len() int {
	if v == nil {
		return 0
	}
	return len(v.Cells)
}

// IsKeyword returns true if v is a self-evaluating symbol.
func (v *LVal) IsKeyword() bool {
	return v.Type == LSymbol && isKeyword(v.Str)
}

// IsCallable returns true if v may appear at the head of an evaluated list.
func (v *LVal) IsCallable() bool {
	return v.Type == LFun || v.Type == LClosure
}

// FormalNames returns the names of a closure's formal arguments.
func (v *LVal) FormalNames() []string {
	if v.Formals == nil {
		return nil
	}
	names := make([]string, len(v.Formals.Cells))
	for i, c := range v.Formals.Cells {
		names[i] = c.Str
	}
	return names
}

// String returns the display form of v.  Strings are quoted and lists are
// rendered as comma separated sequences, e.g. (1,"a",(2,3)).
func (v *LVal) String() string {
	switch v.Type {
	case LBool:
		return strconv.FormatBool(v.Bool)
	case LSymbol:
		return v.Str
	case LNumber:
		return formatNumber(v.Num)
	case LString:
		return `"` + v.Str + `"`
	case LList:
		return exprString(v, "(", ")")
	case LFun:
		return fmt.Sprintf("<builtin-function ``%s''>", v.Str)
	case LClosure:
		return fmt.Sprintf("(fn %v %v)", v.Formals, v.Body)
	case LNative:
		if s, ok := v.Native.(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprintf("<native %T>", v.Native)
	case LError:
		return v.Str
	default:
		return fmt.Sprintf("%#v", v)
	}
}

func formatNumber(x float64) string {
	switch {
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	case math.IsNaN(x):
		return "NaN"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func exprString(v *LVal, left string, right string) string {
	if len(v.Cells) == 0 {
		return left + right
	}
	var buf bytes.Buffer
	buf.WriteString(left)
	for i, c := range v.Cells {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString(c.String())
	}
	buf.WriteString(right)
	return buf.String()
}
