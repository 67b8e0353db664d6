package risptest

import "testing"

func TestScope(t *testing.T) {
	tests := TestSuite{
		{"def", TestSequence{
			{"(def x 5)", "x"},
			{"x", "5"},
			{"(def x (+ x 1))", "x"},
			{"x", "6"},
		}},
		{"fresh environment", TestSequence{
			// Each test runs in its own root environment.
			{"x", "unbound symbol: x"},
		}},
		{"lexical scope", TestSequence{
			{"(def x 1)", "x"},
			{"((fn (x) x) 2)", "2"},
			{"x", "1"},
			{"(def f (fn (y) (+ x y)))", "f"},
			{"((fn (x) (f 2)) 10)", "3"},
		}},
		{"closures capture environment references", TestSequence{
			{"(def y 1)", "y"},
			{"(def f (fn (x) (+ x y)))", "f"},
			{"(f 10)", "11"},
			{"(def y 2)", "y"},
			{"(f 10)", "12"},
		}},
		{"def inside a call is local", TestSequence{
			{"(def g (fn (v) (def z v)))", "g"},
			{"(g 1)", "z"},
			{"z", "unbound symbol: z"},
		}},
		{"returned closures", TestSequence{
			{"(def adder (fn (n) (fn (x) (+ x n))))", "adder"},
			{"(def add2 (adder 2))", "add2"},
			{"(add2 5)", "7"},
			{"((adder 10) 5)", "15"},
			{"(repeat (adder 1) (list 1 2 3))", "(2,3,4)"},
		}},
		{"recursion", TestSequence{
			{"(def fact (fn (n) (if (<= n 1) 1 (* n (fact (- n 1))))))", "fact"},
			{"(fact 5)", "120"},
		}},
		{"errors keep prior definitions", TestSequence{
			{"(def a 1)", "a"},
			{"(def b (+ a undefined))", "unbound symbol: undefined"},
			{"a", "1"},
			{"b", "unbound symbol: b"},
		}},
	}
	RunTestSuite(t, tests)
}
