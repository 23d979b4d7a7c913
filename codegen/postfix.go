// Package codegen lowers a validated assignment through postfix order,
// three-address code, assembly, a peephole pass, and binary encoding.
package codegen

import "github.com/itsyagirlmay/Compiler-Techniques/tokenizer"

var precedence = map[string]int{
	"+": 1,
	"-": 1,
	"*": 2,
	"/": 2,
}

// ToPostfix converts the expression tokens, starting at exprAt, into
// postfix order by shunting-yard. Popping while the stack top's
// precedence is greater than or equal keeps same-precedence operators
// left-associative.
func ToPostfix(tokens []tokenizer.Token, exprAt int) []string {
	output := make([]string, 0, len(tokens)-exprAt)
	stack := make([]string, 0)

	for _, token := range tokens[exprAt:] {
		switch token.Type {
		case tokenizer.IDENTIFIER:
			output = append(output, token.Raw)
		case tokenizer.OPERATOR:
			for len(stack) > 0 && precedence[stack[len(stack)-1]] >= precedence[token.Raw] {
				output = append(output, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, token.Raw)
		}
	}

	for len(stack) > 0 {
		output = append(output, stack[len(stack)-1])
		stack = stack[:len(stack)-1]
	}

	return output
}
