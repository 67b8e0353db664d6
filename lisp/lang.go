package lisp

// KeywordPrefix marks self-evaluating symbols.  A symbol whose name begins
// with KeywordPrefix evaluates to itself and is never looked up in an
// environment.
const KeywordPrefix = ":"

// Names of the special forms handled directly by the evaluator.  Special
// forms are recognized only in the head position of a list and cannot be
// shadowed with ``def''.
const (
	SpecialIf     = "if"
	SpecialDef    = "def"
	SpecialFn     = "fn"
	SpecialRepeat = "repeat"
)
