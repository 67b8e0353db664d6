// Package libmath provides arithmetic procedures.
package libmath

import (
	"github.com/nicferrier/nicrisp/lisp"
	"github.com/nicferrier/nicrisp/lisp/lisplib/internal/libutil"
)

// LoadPackage adds the math builtins to env
func LoadPackage(env *lisp.LEnv) error {
	return env.AddBuiltins(libutil.Defs(builtins)...)
}

var builtins = []*libutil.Builtin{
	libutil.Function("+", builtinAdd),
	libutil.Function("-", builtinSub),
	libutil.Function("*", builtinMul),
	libutil.Function("/", builtinDiv),
}

func builtinAdd(args []*lisp.LVal) *lisp.LVal {
	xs, err := lisp.Floats(args)
	if err != nil {
		return lisp.Error(err)
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return lisp.Number(sum)
}

// builtinSub subtracts the sum of the remaining arguments from the first.
func builtinSub(args []*lisp.LVal) *lisp.LVal {
	xs, err := lisp.Floats(args)
	if err != nil {
		return lisp.Error(err)
	}
	if len(xs) == 0 {
		return lisp.Errorf("expected at least one number")
	}
	var rest float64
	for _, x := range xs[1:] {
		rest += x
	}
	return lisp.Number(xs[0] - rest)
}

func builtinMul(args []*lisp.LVal) *lisp.LVal {
	xs, err := lisp.Floats(args)
	if err != nil {
		return lisp.Error(err)
	}
	if len(xs) == 0 {
		return lisp.Errorf("expected at least one number")
	}
	prod := xs[0]
	for _, x := range xs[1:] {
		prod *= x
	}
	return lisp.Number(prod)
}

func builtinDiv(args []*lisp.LVal) *lisp.LVal {
	xs, err := lisp.Floats(args)
	if err != nil {
		return lisp.Error(err)
	}
	if len(xs) == 0 {
		return lisp.Errorf("expected at least one number")
	}
	quo := xs[0]
	for _, x := range xs[1:] {
		quo /= x
	}
	return lisp.Number(quo)
}
