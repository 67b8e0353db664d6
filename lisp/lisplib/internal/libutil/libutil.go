// Package libutil contains helpers shared by the library packages.
package libutil

import "github.com/nicferrier/nicrisp/lisp"

// Builtin is a named native procedure which implements lisp.LBuiltinDef.
type Builtin struct {
	name string
	fun  lisp.LBuiltin
}

// Function returns a Builtin that binds fn to name.
func Function(name string, fn lisp.LBuiltin) *Builtin {
	return &Builtin{name, fn}
}

// Name implements lisp.LBuiltinDef.
func (fun *Builtin) Name() string {
	return fun.name
}

// Eval implements lisp.LBuiltinDef.
func (fun *Builtin) Eval(args []*lisp.LVal) *lisp.LVal {
	return fun.fun(args)
}

// Defs converts funs to a slice of lisp.LBuiltinDef.
func Defs(funs []*Builtin) []lisp.LBuiltinDef {
	defs := make([]lisp.LBuiltinDef, len(funs))
	for i := range funs {
		defs[i] = funs[i]
	}
	return defs
}
