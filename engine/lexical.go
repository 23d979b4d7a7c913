package engine

import (
	"fmt"

	"github.com/itsyagirlmay/Compiler-Techniques/tokenizer"
)

// CheckLexical re-verifies that every keyword-classified token is a
// member of the reserved-word set. The tokenizer's exact-match
// classification already guarantees this; the check guards against the
// classifier loosening later and must stay.
func CheckLexical(tokens []tokenizer.Token) error {
	for _, token := range tokens {
		if token.Type == tokenizer.KEYWORD && !tokenizer.IsKeyword(token.Raw) {
			return fmt.Errorf("%w: misspelled keyword %q", ErrLexical, token.Raw)
		}
	}
	return nil
}
