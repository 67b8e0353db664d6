package libmath_test

import (
	"testing"

	"github.com/nicferrier/nicrisp/risptest"
)

func TestMath(t *testing.T) {
	tests := risptest.TestSuite{
		{"add", risptest.TestSequence{
			{"(+)", "0"},
			{"(+ 2)", "2"},
			{"(+ 1 2 3)", "6"},
			{"(+ 1 1.5)", "2.5"},
			{"(+ 1 (+ 2 3))", "6"},
			{`(+ 1 "2")`, "expected a number"},
		}},
		{"sub", risptest.TestSequence{
			{"(-)", "expected at least one number"},
			{"(- 2)", "2"},
			{"(- 10 1 2)", "7"},
			{"(- 0.5 1)", "-0.5"},
		}},
		{"mul", risptest.TestSequence{
			{"(*)", "expected at least one number"},
			{"(* 2)", "2"},
			{"(* 2 3 4)", "24"},
			{"(* 2 0.75)", "1.5"},
			{"(* 2 true)", "expected a number"},
		}},
		{"div", risptest.TestSequence{
			{"(/)", "expected at least one number"},
			{"(/ 2)", "2"},
			{"(/ 12 2 3)", "2"},
			{"(/ 1 0)", "inf"},
			{"(/ -1 0)", "-inf"},
		}},
	}
	risptest.RunTestSuite(t, tests)
}
