package libjson_test

import (
	"testing"

	"github.com/nicferrier/nicrisp/lisp"
	"github.com/nicferrier/nicrisp/lisp/lisplib/libjson"
	"github.com/nicferrier/nicrisp/lisp/lispjson"
	"github.com/nicferrier/nicrisp/risptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	tests := risptest.TestSuite{
		{"parse", risptest.TestSequence{
			{`(json-parse "[1, 2.5, true]")`, "[\n  1,\n  2.5,\n  true\n]"},
			{`(json-parse "12")`, "12"},
			{`(json-parse "[1,")`, "unexpected end of JSON input"},
			{`(json-parse 1)`, "json-parse expects a string (got number)"},
			{`(json-parse)`, "json-parse expects one argument (got 0)"},
		}},
		{"get", risptest.TestSequence{
			{`(def doc (json-parse "[1, [2, 3], null, false]"))`, "doc"},
			{`(json-get doc 0)`, "1"},
			{`(+ (json-get doc 1 0) (json-get doc 1 1))`, "5"},
			{`(json-get doc 1)`, "[\n  2,\n  3\n]"},
			{`(json-get doc 2)`, ":null"},
			{`(json-get doc 3)`, "false"},
			{`(json-get doc)`, "[\n  1,\n  [\n    2,\n    3\n  ],\n  null,\n  false\n]"},
			{`(json-get doc 4)`, "index out of range: 4"},
			{`(json-get doc -1)`, "index out of range: -1"},
			{`(json-get doc 0.5)`, "array index is not an integer: 0.5"},
			{`(json-get doc "a")`, `array index is not a number: "a"`},
			{`(json-get doc 0 0)`, "cannot index number document"},
			{`(json-get 1 0)`, "json-get expects a document (got number)"},
		}},
		{"keys", risptest.TestSequence{
			{`(json-keys (json-parse "[1]"))`, "document is not an object: array"},
			{`(json-keys "{}")`, "json-keys expects a document (got string)"},
			{`(json-keys)`, "json-keys expects one argument (got 0)"},
		}},
		{"pretty", risptest.TestSequence{
			{`(json-pretty (json-parse "[]"))`, `"[]"`},
			{`(json-pretty "[]")`, "json-pretty expects a document (got string)"},
		}},
	}
	risptest.RunTestSuite(t, tests)
}

func callBuiltin(t *testing.T, name string, args ...*lisp.LVal) *lisp.LVal {
	t.Helper()
	for _, fn := range libjson.Builtins(lispjson.DefaultSerializer) {
		if fn.Name() == name {
			return fn.Eval(args)
		}
	}
	t.Fatalf("no builtin named %q", name)
	return nil
}

func TestObjectDocuments(t *testing.T) {
	doc := lispjson.Load([]byte(`{"name": "risp", "tags": ["a", "<b>"], "meta": {"n": 2}}`))
	require.Equal(t, lisp.LNative, doc.Type)

	v := callBuiltin(t, "json-get", doc, lisp.String("name"))
	assert.Equal(t, `"risp"`, v.String())

	v = callBuiltin(t, "json-get", doc, lisp.String("tags"), lisp.Number(1))
	assert.Equal(t, `"<b>"`, v.String())

	v = callBuiltin(t, "json-get", doc, lisp.String("meta"), lisp.String("n"))
	assert.Equal(t, lisp.LNumber, v.Type)
	assert.Equal(t, 2.0, v.Num)

	v = callBuiltin(t, "json-get", doc, lisp.String("missing"))
	assert.Equal(t, lisp.LError, v.Type)
	assert.Equal(t, `key not found: "missing"`, v.Str)

	v = callBuiltin(t, "json-get", doc, lisp.Number(0))
	assert.Equal(t, lisp.LError, v.Type)
	assert.Equal(t, "object key is not a string: 0", v.Str)

	v = callBuiltin(t, "json-keys", doc)
	assert.Equal(t, `("meta","name","tags")`, v.String())

	v = callBuiltin(t, "json-keys", callBuiltin(t, "json-get", doc, lisp.String("meta")))
	assert.Equal(t, `("n")`, v.String())

	v = callBuiltin(t, "json-keys", lispjson.Load([]byte(`{}`)))
	assert.Equal(t, "()", v.String())

	v = callBuiltin(t, "json-pretty", doc)
	require.Equal(t, lisp.LString, v.Type)
	assert.Equal(t, `{
  "meta": {
    "n": 2
  },
  "name": "risp",
  "tags": [
    "a",
    "<b>"
  ]
}`, v.Str)
}

func TestLoadPackage(t *testing.T) {
	env := lisp.NewEnv(nil)
	require.NoError(t, lisp.InitializeUserEnv(env))
	require.NoError(t, libjson.LoadPackage(env))
	assert.Equal(t, lisp.LFun, env.Get(lisp.Symbol("json-parse")).Type)
	assert.Error(t, libjson.LoadPackage(env))
}
