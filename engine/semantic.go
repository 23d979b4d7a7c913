package engine

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/itsyagirlmay/Compiler-Techniques/tokenizer"
)

// Characters that may survive syntax validation inside a
// semicolon-terminated line but are never semantically legal.
var disallowedSymbols = []string{"%", "$", "&", "<", ">"}

// CheckSemantic rejects disallowed symbols and undeclared identifiers.
// The first offending token wins.
func CheckSemantic(tokens []tokenizer.Token, st Statement, decls *Declarations) error {
	for _, token := range tokens {
		if slices.Contains(disallowedSymbols, token.Raw) {
			return fmt.Errorf("%w: invalid symbol %q", ErrSemantic, token.Raw)
		}
	}

	switch st.Kind {
	case Input:
		for i := 1; i < len(tokens); i += 2 {
			if !decls.Declared(tokens[i].Raw) {
				return undeclared(tokens[i].Raw)
			}
		}
	case Write:
		if !decls.Declared(tokens[1].Raw) {
			return undeclared(tokens[1].Raw)
		}
	case Assign:
		if !decls.Declared(st.Target) {
			return undeclared(st.Target)
		}
		for i := st.ExprAt; i < len(tokens); i += 2 {
			if tokens[i].Type == tokenizer.IDENTIFIER && !decls.Declared(tokens[i].Raw) {
				return undeclared(tokens[i].Raw)
			}
		}
	}

	return nil
}

func undeclared(name string) error {
	return fmt.Errorf("%w: undeclared identifier %q", ErrSemantic, name)
}
