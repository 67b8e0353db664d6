// Package libjson provides procedures for parsing JSON text and reading the
// resulting documents.
package libjson

import (
	"github.com/nicferrier/nicrisp/lisp"
	"github.com/nicferrier/nicrisp/lisp/lisplib/internal/libutil"
	"github.com/nicferrier/nicrisp/lisp/lispjson"
)

// LoadPackage adds the json builtins to env
func LoadPackage(env *lisp.LEnv) error {
	return env.AddBuiltins(libutil.Defs(Builtins(lispjson.DefaultSerializer))...)
}

// Builtins takes the serializer for a lisp environment and returns a set of
// builtin functions that use it.
func Builtins(s *lispjson.Serializer) []*libutil.Builtin {
	b := &builtins{s}
	return []*libutil.Builtin{
		libutil.Function("json-parse", b.Parse),
		libutil.Function("json-get", b.Get),
		libutil.Function("json-keys", b.Keys),
		libutil.Function("json-pretty", b.Pretty),
	}
}

type builtins struct {
	s *lispjson.Serializer
}

// Parse reads a string of JSON text and returns a document.
func (b *builtins) Parse(args []*lisp.LVal) *lisp.LVal {
	if len(args) != 1 {
		return lisp.Errorf("json-parse expects one argument (got %d)", len(args))
	}
	if args[0].Type != lisp.LString {
		return lisp.Errorf("json-parse expects a string (got %v)", args[0].Type)
	}
	return b.s.Load([]byte(args[0].Str))
}

// Get indexes a document by each of its remaining arguments in turn.  String
// keys select object members and numbers select array elements.
func (b *builtins) Get(args []*lisp.LVal) *lisp.LVal {
	if len(args) < 1 {
		return lisp.Errorf("json-get expects a document")
	}
	doc, ok := lispjson.GetDocument(args[0])
	if !ok {
		return lisp.Errorf("json-get expects a document (got %v)", args[0].Type)
	}
	x := doc.Interface()
	for _, key := range args[1:] {
		var err error
		x, err = lispjson.NewDocument(x).Index(key)
		if err != nil {
			return lisp.Error(err)
		}
	}
	return b.s.Value(x)
}

// Keys returns the sorted member names of an object document as a list of
// strings.
func (b *builtins) Keys(args []*lisp.LVal) *lisp.LVal {
	if len(args) != 1 {
		return lisp.Errorf("json-keys expects one argument (got %d)", len(args))
	}
	doc, ok := lispjson.GetDocument(args[0])
	if !ok {
		return lisp.Errorf("json-keys expects a document (got %v)", args[0].Type)
	}
	keys, err := doc.Keys()
	if err != nil {
		return lisp.Error(err)
	}
	cells := make([]*lisp.LVal, len(keys))
	for i, k := range keys {
		cells[i] = lisp.String(k)
	}
	return lisp.List(cells)
}

// Pretty returns the indented JSON text of a document.
func (b *builtins) Pretty(args []*lisp.LVal) *lisp.LVal {
	if len(args) != 1 {
		return lisp.Errorf("json-pretty expects one argument (got %d)", len(args))
	}
	doc, ok := lispjson.GetDocument(args[0])
	if !ok {
		return lisp.Errorf("json-pretty expects a document (got %v)", args[0].Type)
	}
	s, err := doc.Pretty()
	if err != nil {
		return lisp.Error(err)
	}
	return lisp.String(s)
}
