package engine

import "errors"

// Every detected problem is fatal to its line. The three categories match
// the validation stages; details are wrapped around these sentinels so
// callers can classify with errors.Is.
var (
	ErrLexical  = errors.New("lexical error")
	ErrSyntax   = errors.New("syntax error")
	ErrSemantic = errors.New("semantic error")
)
