// Package lispjson implements opaque JSON document values.  Documents are
// produced by parsing JSON text and are only taken apart by indexing, which
// converts scalar JSON values to their lisp equivalents.
package lispjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/nicferrier/nicrisp/lisp"
)

// DefaultSerializer is the Serializer used by the exported function Load.
var DefaultSerializer = &Serializer{
	Null: lisp.Symbol(lisp.KeywordPrefix + "null"),
}

// Load parses b as JSON and returns a document LVal.
func Load(b []byte) *lisp.LVal {
	return DefaultSerializer.Load(b)
}

// Serializer defines conversion rules from JSON to lisp values.
type Serializer struct {
	// Null is the value returned when a JSON null is indexed.
	Null *lisp.LVal
}

// Load parses b and returns an LVal wrapping a Document.  Any decoding error
// is returned as an LError.
func (s *Serializer) Load(b []byte) *lisp.LVal {
	var x interface{}
	err := json.Unmarshal(b, &x)
	if err != nil {
		return lisp.Error(err)
	}
	return lisp.Native(&Document{x})
}

// Value returns an LVal representing x.  Strings, numbers and booleans become
// the equivalent lisp values, null becomes s.Null and objects and arrays are
// wrapped as documents.
func (s *Serializer) Value(x interface{}) *lisp.LVal {
	if x == nil {
		return s.Null
	}
	switch x := x.(type) {
	case bool:
		return lisp.Bool(x)
	case string:
		return lisp.String(x)
	case float64:
		return lisp.Number(x)
	case map[string]interface{}, []interface{}:
		return lisp.Native(&Document{x})
	default:
		return lisp.Errorf("unable to load json type: %T", x)
	}
}

// Document is a parsed JSON value.
type Document struct {
	value interface{}
}

// NewDocument returns a Document containing the decoded JSON value x.
func NewDocument(x interface{}) *Document {
	return &Document{x}
}

// GetDocument returns the Document contained in v, if any.
func GetDocument(v *lisp.LVal) (*Document, bool) {
	if v.Type != lisp.LNative {
		return nil, false
	}
	doc, ok := v.Native.(*Document)
	return doc, ok
}

// Interface returns the decoded JSON value.
func (d *Document) Interface() interface{} {
	return d.value
}

// Kind returns the name of the JSON type of the document.
func (d *Document) Kind() string {
	switch d.value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64:
		return "number"
	case map[string]interface{}:
		return "object"
	case []interface{}:
		return "array"
	default:
		return fmt.Sprintf("%T", d.value)
	}
}

// Keys returns the sorted keys of an object document.
func (d *Document) Keys() ([]string, error) {
	m, ok := d.value.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("document is not an object: %s", d.Kind())
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Index returns the value of an object member when key is a string or an
// array element when key is a number.
func (d *Document) Index(key *lisp.LVal) (interface{}, error) {
	switch x := d.value.(type) {
	case map[string]interface{}:
		if key.Type != lisp.LString {
			return nil, fmt.Errorf("object key is not a string: %v", key)
		}
		v, ok := x[key.Str]
		if !ok {
			return nil, fmt.Errorf("key not found: %v", key)
		}
		return v, nil
	case []interface{}:
		if key.Type != lisp.LNumber {
			return nil, fmt.Errorf("array index is not a number: %v", key)
		}
		if key.Num != math.Trunc(key.Num) {
			return nil, fmt.Errorf("array index is not an integer: %v", key)
		}
		if key.Num < 0 || key.Num >= float64(len(x)) {
			return nil, fmt.Errorf("index out of range: %v", key)
		}
		return x[int(key.Num)], nil
	default:
		return nil, fmt.Errorf("cannot index %s document", d.Kind())
	}
}

// Pretty returns the document as indented JSON text.
func (d *Document) Pretty() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	err := enc.Encode(d.value)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// String implements fmt.Stringer.  It returns the same text as Pretty.
func (d *Document) String() string {
	s, err := d.Pretty()
	if err != nil {
		return fmt.Sprintf("<json %s: %v>", d.Kind(), err)
	}
	return s
}
