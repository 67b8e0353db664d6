package lisp

type specialOp func(env *LEnv, forms []*LVal) *LVal

// specialOps is populated during init because the special operators refer
// back to the evaluator which consults this table.
var specialOps map[string]specialOp

func init() {
	specialOps = map[string]specialOp{
		SpecialIf:     opIf,
		SpecialDef:    opDef,
		SpecialFn:     opFn,
		SpecialRepeat: opRepeat,
	}
}

// IsSpecialOp returns true if name is handled by the evaluator when it
// appears at the head of a list.
func IsSpecialOp(name string) bool {
	_, ok := specialOps[name]
	return ok
}

func opIf(env *LEnv, forms []*LVal) *LVal {
	if len(forms) == 0 {
		return Errorf("expected test form")
	}
	test := env.Eval(forms[0])
	if test.Type == LError {
		return test
	}
	if test.Type != LBool {
		return Errorf("unexpected test form='%v'", forms[0])
	}
	i := 2
	if test.Bool {
		i = 1
	}
	if i >= len(forms) {
		return Errorf("expected form idx=%d", i)
	}
	return env.Eval(forms[i])
}

func opDef(env *LEnv, forms []*LVal) *LVal {
	if len(forms) == 0 {
		return Errorf("expected first form")
	}
	name := forms[0]
	if name.Type != LSymbol {
		return Errorf("expected first form to be a symbol")
	}
	if len(forms) < 2 {
		return Errorf("expected second form")
	}
	if len(forms) > 2 {
		return Errorf("def can only have two forms")
	}
	v := env.Eval(forms[1])
	if v.Type == LError {
		return v
	}
	return env.Put(name, v)
}

func opFn(env *LEnv, forms []*LVal) *LVal {
	if len(forms) == 0 {
		return Errorf("expected args form")
	}
	if len(forms) < 2 {
		return Errorf("expected second form")
	}
	if len(forms) > 2 {
		return Errorf("fn definition can only have two forms")
	}
	formals, body := forms[0], forms[1]
	if formals.Type != LList {
		return Errorf("expected args form to be a list")
	}
	for _, sym := range formals.Cells {
		if sym.Type != LSymbol {
			return Errorf("expected symbols in the argument list")
		}
	}
	return Closure(env, formals, body)
}

func opRepeat(env *LEnv, forms []*LVal) *LVal {
	if len(forms) != 2 {
		return Errorf("repeat expects two forms (got %d)", len(forms))
	}
	fun := env.Eval(forms[0])
	if fun.Type == LError {
		return fun
	}
	if fun.Type != LClosure {
		return Errorf("repeat expects a closure (got %v)", fun.Type)
	}
	if fun.Formals.Len() != 1 {
		return Errorf("repeat expects a closure of one argument (got %d)", fun.Formals.Len())
	}
	lis := env.Eval(forms[1])
	if lis.Type == LError {
		return lis
	}
	if lis.Type != LList {
		return Errorf("repeat expects a list (got %v)", lis.Type)
	}
	cells := make([]*LVal, len(lis.Cells))
	for i, x := range lis.Cells {
		cells[i] = env.Call(fun, []*LVal{x})
		if cells[i].Type == LError {
			return cells[i]
		}
	}
	return List(cells)
}
