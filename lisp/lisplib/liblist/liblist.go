// Package liblist provides procedures for constructing and taking apart
// lists.
package liblist

import (
	"math"

	"github.com/nicferrier/nicrisp/lisp"
	"github.com/nicferrier/nicrisp/lisp/lisplib/internal/libutil"
)

// MaxSequenceLength is the largest list that ``num'' will construct.
const MaxSequenceLength = 1 << 24

// LoadPackage adds the list builtins to env
func LoadPackage(env *lisp.LEnv) error {
	return env.AddBuiltins(libutil.Defs(builtins)...)
}

var builtins = []*libutil.Builtin{
	libutil.Function("list", BuiltinList),
	libutil.Function("car", BuiltinCAR),
	libutil.Function("cdr", BuiltinCDR),
	libutil.Function("len", BuiltinLen),
	libutil.Function("num", BuiltinNum),
}

// BuiltinList returns its arguments as a list.
func BuiltinList(args []*lisp.LVal) *lisp.LVal {
	cells := make([]*lisp.LVal, len(args))
	copy(cells, args)
	return lisp.List(cells)
}

func listArg(args []*lisp.LVal) *lisp.LVal {
	if len(args) < 1 {
		return lisp.Errorf("pass a list")
	}
	if args[0].Type != lisp.LList {
		return lisp.Errorf("arg is not a list")
	}
	return args[0]
}

// BuiltinCAR returns the first element of a list.
func BuiltinCAR(args []*lisp.LVal) *lisp.LVal {
	lis := listArg(args)
	if lis.Type == lisp.LError {
		return lis
	}
	if lis.Len() == 0 {
		return lisp.Errorf("empty list")
	}
	return lis.Cells[0]
}

// BuiltinCDR returns a list of all but the first element of a list.
func BuiltinCDR(args []*lisp.LVal) *lisp.LVal {
	lis := listArg(args)
	if lis.Type == lisp.LError {
		return lis
	}
	if lis.Len() == 0 {
		return lisp.Errorf("empty list")
	}
	cells := make([]*lisp.LVal, lis.Len()-1)
	copy(cells, lis.Cells[1:])
	return lisp.List(cells)
}

// BuiltinLen returns the number of elements in a list.
func BuiltinLen(args []*lisp.LVal) *lisp.LVal {
	lis := listArg(args)
	if lis.Type == lisp.LError {
		return lis
	}
	return lisp.Number(float64(lis.Len()))
}

// BuiltinNum returns the list of integers in [start, max).  The start defaults
// to zero.  Fractional bounds are truncated.
func BuiltinNum(args []*lisp.LVal) *lisp.LVal {
	if len(args) < 1 {
		return lisp.Errorf("pass a max value")
	}
	max, ok := intArg(args[0])
	if !ok {
		return lisp.Errorf("arg is not a number")
	}
	var start int64
	if len(args) > 1 {
		start, ok = intArg(args[1])
		if !ok {
			return lisp.Errorf("arg is not a number")
		}
	}
	if max <= start {
		return lisp.List(nil)
	}
	if n := max - start; n < 0 || n > MaxSequenceLength {
		return lisp.Errorf("sequence too long: %d elements", max-start)
	}
	cells := make([]*lisp.LVal, 0, max-start)
	for i := start; i < max; i++ {
		cells = append(cells, lisp.Number(float64(i)))
	}
	return lisp.List(cells)
}

// intArg truncates a number to an integer, saturating at the bounds of
// int64.  NaN truncates to zero.
func intArg(v *lisp.LVal) (int64, bool) {
	if v.Type != lisp.LNumber {
		return 0, false
	}
	x := math.Trunc(v.Num)
	switch {
	case math.IsNaN(x):
		return 0, true
	case x >= math.MaxInt64:
		return math.MaxInt64, true
	case x <= math.MinInt64:
		return math.MinInt64, true
	}
	return int64(x), true
}
