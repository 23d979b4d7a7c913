// Package analyzer drives one source line through the whole pipeline.
package analyzer

import (
	"github.com/itsyagirlmay/Compiler-Techniques/codegen"
	"github.com/itsyagirlmay/Compiler-Techniques/engine"
	"github.com/itsyagirlmay/Compiler-Techniques/tokenizer"
)

// Result is the structured outcome of compiling one source line. Tokens
// are always present; Statement is meaningful when validation got far
// enough to classify the line; the lowering fields are filled for valid
// assignments only.
type Result struct {
	Line      string
	Tokens    []tokenizer.Token
	Statement engine.Statement
	Err       error

	Postfix      []string
	Intermediate []codegen.Instruction
	Assembly     []string
	Optimized    []codegen.Optimized
	Binary       []string
}

func (r Result) Valid() bool {
	return r.Err == nil
}

// CompileLine tokenizes and validates one line, then lowers it down to
// binary when it is an assignment. The first error stops the line;
// decls is shared across the run and grows on INTEGER lines.
func CompileLine(line string, decls *engine.Declarations) Result {
	result := Result{Line: line}

	result.Tokens = tokenizer.Tokenize(line)
	if err := engine.CheckLexical(result.Tokens); err != nil {
		result.Err = err
		return result
	}

	st, err := engine.CheckSyntax(result.Tokens)
	if err != nil {
		result.Err = err
		return result
	}
	result.Statement = st

	// A declaration's names are recorded before its own semantic pass,
	// so every later line may reference them.
	if st.Kind == engine.IntegerDecl {
		decls.Record(result.Tokens)
	}

	if err := engine.CheckSemantic(result.Tokens, st, decls); err != nil {
		result.Err = err
		return result
	}

	if st.Kind != engine.Assign {
		return result
	}

	result.Postfix = codegen.ToPostfix(result.Tokens, st.ExprAt)

	intermediate, err := codegen.Generate(result.Postfix)
	if err != nil {
		result.Err = err
		return result
	}
	result.Intermediate = intermediate

	result.Assembly = codegen.Assemble(intermediate, st.Target)

	optimized, err := codegen.Optimize(result.Assembly)
	if err != nil {
		result.Err = err
		return result
	}
	result.Optimized = optimized

	result.Binary = codegen.Encode(optimized)
	return result
}

// Run compiles a whole program in order, sharing one declaration set.
// Errors are line-scoped: a failed line never stops the ones after it.
func Run(lines []string) []Result {
	decls := engine.NewDeclarations()
	results := make([]Result, 0, len(lines))
	for _, line := range lines {
		results = append(results, CompileLine(line, decls))
	}
	return results
}
