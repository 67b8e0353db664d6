// NOTE:  This file uses package name suffixed with _test to avoid an import
// cycle.
package libstring_test

import (
	"testing"

	"github.com/nicferrier/nicrisp/risptest"
)

func TestString(t *testing.T) {
	tests := risptest.TestSuite{
		{"format", risptest.TestSequence{
			{`(format "posts/{}" 1)`, `"posts/1"`},
			{`(format "{} + {} = {}" 1 2 (+ 1 2))`, `"1 + 2 = 3"`},
			{`(format "{}: {}" "name" (list 1 "a"))`, `"name: (1,"a")"`},
			{`(format "{ }" :k)`, `":k"`},
			{`(format "{{}}")`, `"{}"`},
			{`(format "no directives")`, `"no directives"`},
			{`(format "")`, `""`},
			{`(format "{}")`, "too many formatting directives for supplied values"},
			{`(format "x" 1)`, "too many values for formatting directives"},
			{`(format "{x}" 1)`, "formatting directives must be empty"},
			{`(format "{" 1)`, "unclosed formatting directive"},
			{`(format "}" 1)`, "unexpected closing brace '}' outside of formatting directive"},
			{`(format 1)`, "first argument is not a string"},
			{`(format)`, "pass a format string"},
		}},
		{"concat", risptest.TestSequence{
			{`(concat)`, `""`},
			{`(concat "a" "b" 1 true)`, `"ab1true"`},
		}},
		{"string-len", risptest.TestSequence{
			{`(string-len "")`, "0"},
			{`(string-len "héllo")`, "5"},
			{`(string-len 1)`, "argument is not a string: number"},
		}},
	}
	risptest.RunTestSuite(t, tests)
}
