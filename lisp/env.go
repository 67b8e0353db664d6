package lisp

import (
	"fmt"
	"io"
	"strings"
	"sync/atomic"
)

var envCount uint64

func getEnvID() uint {
	return uint(atomic.AddUint64(&envCount, 1))
}

// LEnv is a lisp environment.  Environments form a chain through their
// Parent links which is consulted, innermost first, during name resolution.
// A closure holds a reference to the environment it was created in, so an
// environment lives as long as any closure or evaluation still references
// it.
type LEnv struct {
	ID      uint
	Scope   map[string]*LVal
	Parent  *LEnv
	Runtime *Runtime
}

// NewEnv returns initializes and returns a new LEnv.
func NewEnv(parent *LEnv) *LEnv {
	var runtime *Runtime
	if parent != nil {
		runtime = parent.Runtime
	} else {
		runtime = StandardRuntime()
	}
	return &LEnv{
		ID:      getEnvID(),
		Scope:   make(map[string]*LVal),
		Parent:  parent,
		Runtime: runtime,
	}
}

// NewCallEnv returns a child of parent which binds each name in formals to
// the corresponding value in args.  If the number of formals does not match
// the number of arguments an LError is returned as the second value.
func NewCallEnv(parent *LEnv, formals *LVal, args []*LVal) (*LEnv, *LVal) {
	var nformals int
	if formals != nil {
		nformals = len(formals.Cells)
	}
	if nformals != len(args) {
		return nil, Errorf("expected %d arguments, got %d", nformals, len(args))
	}
	env := NewEnv(parent)
	for i := 0; i < nformals; i++ {
		env.Scope[formals.Cells[i].Str] = args[i]
	}
	return env, nil
}

func isKeyword(name string) bool {
	return strings.HasPrefix(name, KeywordPrefix)
}

// Get takes an LSymbol k and returns the LVal it is bound to in env.
func (env *LEnv) Get(k *LVal) *LVal {
	if k.Type != LSymbol {
		return Errorf("not a symbol: %v", k.Type)
	}
	if isKeyword(k.Str) {
		return k
	}
	for e := env; e != nil; e = e.Parent {
		v, ok := e.Scope[k.Str]
		if ok {
			return v
		}
	}
	return Errorf("unbound symbol: %v", k.Str)
}

// Put takes an LSymbol k and binds it to v in env.  Ancestors of env are
// never modified.
func (env *LEnv) Put(k, v *LVal) *LVal {
	if k.Type != LSymbol {
		return Errorf("not a symbol: %v", k.Type)
	}
	if isKeyword(k.Str) {
		return Errorf("cannot bind keyword symbol: %v", k.Str)
	}
	if v == nil || v.Type == LError {
		return Errorf("cannot bind %v to an invalid value", k.Str)
	}
	env.Scope[k.Str] = v
	return k
}

// Root returns the environment at the end of env's parent chain.
func (env *LEnv) Root() *LEnv {
	for env.Parent != nil {
		env = env.Parent
	}
	return env
}

// AddBuiltins binds the given funs to their names in env.  When called with no
// arguments AddBuiltins adds the DefaultBuiltins to env.  An error is returned
// if a name is already bound.
func (env *LEnv) AddBuiltins(funs ...LBuiltinDef) error {
	if len(funs) == 0 {
		funs = DefaultBuiltins()
	}
	for _, f := range funs {
		if _, ok := env.Scope[f.Name()]; ok {
			return fmt.Errorf("symbol already defined: %s", f.Name())
		}
		lerr := env.Put(Symbol(f.Name()), Fun(f.Name(), f.Eval))
		if lerr.Type == LError {
			return GoError(lerr)
		}
	}
	return nil
}

// LoadString parses source with the runtime's Reader and evaluates each
// expression in env.  The value of the last expression is returned, or nil if
// source contains no expressions.  Evaluation stops at the first error.
func (env *LEnv) LoadString(name, source string) (*LVal, error) {
	return env.Load(name, strings.NewReader(source))
}

// Load is like LoadString but reads source from r.
func (env *LEnv) Load(name string, r io.Reader) (*LVal, error) {
	if env.Runtime.Reader == nil {
		return nil, fmt.Errorf("no reader for environment runtime")
	}
	exprs, err := env.Runtime.Reader.Read(name, r)
	if err != nil {
		return nil, err
	}
	var ret *LVal
	for _, expr := range exprs {
		ret = env.Eval(expr)
		if ret.Type == LError {
			return nil, GoError(ret)
		}
	}
	return ret, nil
}

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.  Any error encountered is returned as an LError and aborts the
// remainder of the evaluation.
func (env *LEnv) Eval(v *LVal) *LVal {
	switch v.Type {
	case LBool, LNumber, LString, LNative:
		return v
	case LSymbol:
		return env.Get(v)
	case LList:
		return env.EvalList(v)
	case LFun, LClosure:
		return Errorf("unexpected form")
	case LError:
		return v
	default:
		return Errorf("invalid value: %v", v.Type)
	}
}

// EvalList evaluates the compound form s.  Special forms are dispatched
// before any argument is evaluated.  Otherwise the head and the arguments
// are evaluated left to right and the head is applied to the arguments.
func (env *LEnv) EvalList(s *LVal) *LVal {
	if s.Type != LList {
		return Errorf("not a list: %v", s.Type)
	}
	if len(s.Cells) == 0 {
		return Errorf("empty form cannot be evaluated")
	}
	head, forms := s.Cells[0], s.Cells[1:]
	if head.Type == LSymbol {
		if op, ok := specialOps[head.Str]; ok {
			return op(env, forms)
		}
	}

	f := env.Eval(head)
	if f.Type == LError {
		return f
	}
	if !f.IsCallable() {
		return Errorf("not callable: %v", f)
	}
	args := make([]*LVal, len(forms))
	for i := range forms {
		args[i] = env.Eval(forms[i])
		if args[i].Type == LError {
			return args[i]
		}
	}
	return env.Call(f, args)
}

// Call invokes fun with the already evaluated args.  A closure's body is
// evaluated in a child of the environment the closure captured, not in env.
func (env *LEnv) Call(fun *LVal, args []*LVal) *LVal {
	switch fun.Type {
	case LFun:
		r := fun.Builtin(args)
		if r == nil {
			return Errorf("%s: no value returned", fun.Str)
		}
		return r
	case LClosure:
		callenv, lerr := NewCallEnv(fun.Env, fun.Formals, args)
		if lerr != nil {
			return lerr
		}
		env.Runtime.Logger.Debug("apply closure",
			"env", callenv.ID,
			"formals", fun.FormalNames())
		return callenv.Eval(fun.Body)
	default:
		return Errorf("not callable: %v", fun)
	}
}
