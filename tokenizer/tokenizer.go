// Package tokenizer splits one source line into classified tokens.
package tokenizer

import "golang.org/x/exp/slices"

type TokenType string

const (
	KEYWORD    = TokenType("keyword")
	IDENTIFIER = TokenType("identifier")
	OPERATOR   = TokenType("operator")
	SYMBOL     = TokenType("symbol")
	NUMBER     = TokenType("number")
	INVALID    = TokenType("invalid")
)

type Token struct {
	Type TokenType
	Raw  string
}

var keywords = []string{
	"BEGIN",
	"INTEGER",
	"LET",
	"INPUT",
	"WRITE",
	"END",
}

func IsKeyword(value string) bool {
	return slices.Contains(keywords, value)
}

var operators = []string{"+", "-", "*", "/"}

func isOperator(char byte) bool {
	return slices.Contains(operators, string(char))
}

var symbols = []string{"=", ",", ")"}

func isSymbol(char byte) bool {
	return slices.Contains(symbols, string(char))
}

func isAlpha(char byte) bool {
	return char >= 'A' && char <= 'Z' || char >= 'a' && char <= 'z'
}

func isDigit(char byte) bool {
	return char >= '0' && char <= '9'
}

// Tokenize scans the line left to right and classifies each run of
// characters, in priority order: reserved word, identifier, operator,
// symbol, number, anything else invalid. Whitespace separates tokens
// and is discarded. Invalid characters are kept as tokens so the
// validators can name them; the semicolon special case lives there too.
func Tokenize(line string) []Token {
	tokens := make([]Token, 0)

	for i := 0; i < len(line); {
		char := line[i]
		switch {
		case char == ' ' || char == '\t' || char == '\r' || char == '\n':
			i++
		case isAlpha(char):
			j := i
			for j < len(line) && isAlpha(line[j]) {
				j++
			}
			word := line[i:j]
			if IsKeyword(word) {
				tokens = append(tokens, Token{Type: KEYWORD, Raw: word})
			} else {
				tokens = append(tokens, Token{Type: IDENTIFIER, Raw: word})
			}
			i = j
		case isOperator(char):
			tokens = append(tokens, Token{Type: OPERATOR, Raw: string(char)})
			i++
		case isSymbol(char):
			tokens = append(tokens, Token{Type: SYMBOL, Raw: string(char)})
			i++
		case isDigit(char):
			j := i
			for j < len(line) && isDigit(line[j]) {
				j++
			}
			tokens = append(tokens, Token{Type: NUMBER, Raw: line[i:j]})
			i = j
		default:
			tokens = append(tokens, Token{Type: INVALID, Raw: string(char)})
			i++
		}
	}

	return tokens
}
