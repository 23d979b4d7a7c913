package engine

import (
	"fmt"

	"github.com/itsyagirlmay/Compiler-Techniques/tokenizer"
)

// CheckSyntax runs the line through a fixed battery of checks and, when
// they all pass, classifies the statement. The first violation wins.
func CheckSyntax(tokens []tokenizer.Token) (Statement, error) {
	for _, token := range tokens {
		if token.Type == tokenizer.NUMBER {
			return Statement{}, fmt.Errorf("%w: numbers not allowed (%q)", ErrSyntax, token.Raw)
		}
	}

	// A literal semicolon is tolerated here; the semantic pass never
	// admits the other tracked characters.
	for _, token := range tokens {
		if token.Type == tokenizer.INVALID && token.Raw != ";" {
			return Statement{}, fmt.Errorf("%w: invalid character %q", ErrSyntax, token.Raw)
		}
	}

	for i := 0; i < len(tokens)-1; i++ {
		if tokens[i].Type == tokenizer.OPERATOR && tokens[i+1].Type == tokenizer.OPERATOR {
			return Statement{}, fmt.Errorf("%w: combined operators %q", ErrSyntax, tokens[i].Raw+tokens[i+1].Raw)
		}
	}

	if len(tokens) > 0 && tokens[len(tokens)-1].Raw == ";" {
		return Statement{}, fmt.Errorf("%w: semicolon not allowed at line end", ErrSyntax)
	}

	if len(tokens) == 0 {
		return Statement{}, fmt.Errorf("%w: empty line", ErrSyntax)
	}

	return classify(tokens)
}

func classify(tokens []tokenizer.Token) (Statement, error) {
	first := tokens[0]

	if len(tokens) == 1 && first.Type == tokenizer.KEYWORD {
		switch first.Raw {
		case "BEGIN":
			return Statement{Kind: Begin}, nil
		case "END":
			return Statement{Kind: End}, nil
		}
	}

	if first.Type == tokenizer.KEYWORD && (first.Raw == "INTEGER" || first.Raw == "INPUT") {
		if err := checkIdentifierList(tokens, first.Raw); err != nil {
			return Statement{}, err
		}
		if first.Raw == "INTEGER" {
			return Statement{Kind: IntegerDecl}, nil
		}
		return Statement{Kind: Input}, nil
	}

	if first.Type == tokenizer.KEYWORD && first.Raw == "WRITE" {
		if len(tokens) != 2 || tokens[1].Type != tokenizer.IDENTIFIER {
			return Statement{}, fmt.Errorf("%w: WRITE expects one identifier", ErrSyntax)
		}
		return Statement{Kind: Write}, nil
	}

	// LET <id> = <expr>
	if first.Type == tokenizer.KEYWORD && first.Raw == "LET" &&
		len(tokens) >= 3 &&
		tokens[1].Type == tokenizer.IDENTIFIER &&
		tokens[2].Type == tokenizer.SYMBOL && tokens[2].Raw == "=" {
		st := Statement{Kind: Assign, Target: tokens[1].Raw, ExprAt: 3}
		return st, checkExpression(tokens, st.ExprAt)
	}

	// <id> = <expr>
	if first.Type == tokenizer.IDENTIFIER &&
		len(tokens) >= 2 &&
		tokens[1].Type == tokenizer.SYMBOL && tokens[1].Raw == "=" {
		st := Statement{Kind: Assign, Target: first.Raw, ExprAt: 2}
		return st, checkExpression(tokens, st.ExprAt)
	}

	return Statement{}, fmt.Errorf("%w: invalid line structure", ErrSyntax)
}

// checkIdentifierList validates the alternating <id> , <id> , ... shape
// following INTEGER and INPUT.
func checkIdentifierList(tokens []tokenizer.Token, keyword string) error {
	for i := 1; i < len(tokens); i += 2 {
		if tokens[i].Type != tokenizer.IDENTIFIER {
			return fmt.Errorf("%w: expected identifier after %s", ErrSyntax, keyword)
		}
		if i+1 < len(tokens) && tokens[i+1].Type != tokenizer.SYMBOL {
			return fmt.Errorf("%w: expected ',' or end after identifier", ErrSyntax)
		}
	}
	return nil
}

// checkExpression validates the <id> (<op> <id>)* shape: identifiers on
// even offsets, operators on odd ones, first and last an identifier.
func checkExpression(tokens []tokenizer.Token, exprAt int) error {
	if exprAt >= len(tokens) {
		return fmt.Errorf("%w: expected expression after '='", ErrSyntax)
	}
	for i := exprAt; i < len(tokens); i++ {
		if (i-exprAt)%2 == 0 {
			if tokens[i].Type != tokenizer.IDENTIFIER {
				return fmt.Errorf("%w: expected identifier in expression", ErrSyntax)
			}
		} else {
			if tokens[i].Type != tokenizer.OPERATOR {
				return fmt.Errorf("%w: expected operator in expression", ErrSyntax)
			}
		}
	}
	if tokens[len(tokens)-1].Type != tokenizer.IDENTIFIER {
		return fmt.Errorf("%w: expected identifier in expression", ErrSyntax)
	}
	return nil
}
