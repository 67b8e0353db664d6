package lisp

import "errors"

// LBuiltinDef is a built-in function
type LBuiltinDef interface {
	Name() string
	Eval(args []*LVal) *LVal
}

type langBuiltin struct {
	name string
	fun  LBuiltin
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Eval(args []*LVal) *LVal {
	return fun.fun(args)
}

var langBuiltins = []*langBuiltin{
	{"=", builtinEqNum},
	{">", builtinGT},
	{">=", builtinGEq},
	{"<", builtinLT},
	{"<=", builtinLEq},
}

// DefaultBuiltins returns the default set of LBuiltinDefs added to LEnv
// objects when LEnv.AddBuiltins is called without arguments.
func DefaultBuiltins() []LBuiltinDef {
	ops := make([]LBuiltinDef, len(langBuiltins))
	for i := range langBuiltins {
		ops[i] = langBuiltins[i]
	}
	return ops
}

var errNotNumber = errors.New("expected a number")

// Floats returns the numeric values of args.  An error is returned if any
// argument is not a number.
func Floats(args []*LVal) ([]float64, error) {
	xs := make([]float64, len(args))
	for i, v := range args {
		if v.Type != LNumber {
			return nil, errNotNumber
		}
		xs[i] = v.Num
	}
	return xs, nil
}

// tonicity checks that rel holds between each consecutive pair of numbers
// in args.
func tonicity(args []*LVal, rel func(a, b float64) bool) *LVal {
	xs, err := Floats(args)
	if err != nil {
		return Error(err)
	}
	if len(xs) == 0 {
		return Errorf("expected at least one number")
	}
	for i := 1; i < len(xs); i++ {
		if !rel(xs[i-1], xs[i]) {
			return Bool(false)
		}
	}
	return Bool(true)
}

func builtinEqNum(args []*LVal) *LVal {
	return tonicity(args, func(a, b float64) bool { return a == b })
}

func builtinGT(args []*LVal) *LVal {
	return tonicity(args, func(a, b float64) bool { return a > b })
}

func builtinGEq(args []*LVal) *LVal {
	return tonicity(args, func(a, b float64) bool { return a >= b })
}

func builtinLT(args []*LVal) *LVal {
	return tonicity(args, func(a, b float64) bool { return a < b })
}

func builtinLEq(args []*LVal) *LVal {
	return tonicity(args, func(a, b float64) bool { return a <= b })
}
