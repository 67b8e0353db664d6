package risptest

import "testing"

func TestEval(t *testing.T) {
	tests := TestSuite{
		{"atoms", TestSequence{
			{"3", "3"},
			{"-2.5", "-2.5"},
			{"1e3", "1000"},
			{"true", "true"},
			{"false", "false"},
			{`"a string"`, `"a string"`},
			{`""`, `""`},
			{":key", ":key"},
			{"1.2.3", "unbound symbol: 1.2.3"},
		}},
		{"symbols", TestSequence{
			// A bit brittle, but it's ok for now. Replace with a more robust
			// test later if problematic.
			{"a", "unbound symbol: a"},
			{"()", "empty form cannot be evaluated"},
			{"(1 2)", "not callable: 1"},
			{`("a")`, `not callable: "a"`},
		}},
		{"arithmetic", TestSequence{
			{"(+ 1 2 3)", "6"},
			{"(- 10 1 2)", "7"},
			{"(* 2 3 4)", "24"},
			{"(+ 1 (* 2 3))", "7"},
			{"(/ 1 4)", "0.25"},
		}},
		{"comparison", TestSequence{
			{"(< 1 2 3)", "true"},
			{"(< 1 3 2)", "false"},
			{"(<)", "expected at least one number"},
			{"(< 1)", "true"},
			{"(= 2 2 2)", "true"},
			{"(= 2 2 3)", "false"},
			{"(>= 3 3 1)", "true"},
			{"(> 3 3)", "false"},
			{"(<= 1 1 2)", "true"},
			{`(= 1 "1")`, "expected a number"},
		}},
		{"lists", TestSequence{
			{"(list)", "()"},
			{`(list 1 "a" (list 2 3))`, `(1,"a",(2,3))`},
			{"(car (list 1 2 3))", "1"},
			{"(cdr (list 1 2 3))", "(2,3)"},
			{"(len (list 1 2 3))", "3"},
			{"(num 4)", "(0,1,2,3)"},
			{"(num 0)", "()"},
		}},
		{"function basics", TestSequence{
			{"(fn (x) x)", "(fn (x) x)"},
			{"((fn (x) x) 1)", "1"},
			{"(fn (x) (+ x 1))", "(fn (x) (+,x,1))"},
			{"((fn () (+ 1 1)))", "2"},
			{"((fn (x y) (+ x y)) 1 2)", "3"},
			{"((fn (x y) (+ x y)) 1)", "expected 2 arguments, got 1"},
			{"((fn (x) x) 1 2)", "expected 1 arguments, got 2"},
			{"(fn (x))", "expected second form"},
			{"(fn)", "expected args form"},
			{"(fn (x) x x)", "fn definition can only have two forms"},
			{"(fn x x)", "expected args form to be a list"},
			{"(fn (1) x)", "expected symbols in the argument list"},
		}},
		{"builtin values", TestSequence{
			{"+", "<builtin-function ``+''>"},
			{"(def plus +)", "plus"},
			{"(plus 1 2)", "3"},
		}},
		{"keywords", TestSequence{
			{":null", ":null"},
			{"(list :a :b)", "(:a,:b)"},
			{"(def :a 1)", "cannot bind keyword symbol: :a"},
			{":a", ":a"},
		}},
		{"errors abort evaluation", TestSequence{
			{"(+ 1 (car (list)))", "empty list"},
			{"(list 1 undefined (car (list)))", "unbound symbol: undefined"},
		}},
	}
	RunTestSuite(t, tests)
}
