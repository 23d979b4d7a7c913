package codegen

import (
	"fmt"
	"strings"
)

// Optimized is one collapsed three-operand instruction: Opcode Dest, Op1, Op2.
type Optimized struct {
	Opcode string
	Dest   string
	Op1    string
	Op2    string
}

func (o Optimized) String() string {
	return fmt.Sprintf("%s %s, %s, %s", o.Opcode, o.Dest, o.Op1, o.Op2)
}

// Optimize merges each (LDA a, OP b, STR c) triple into one OP c, a, b.
// The input must be exactly the assembler's output: any count that is
// not a multiple of three, or a triple missing its LDA/STR frame, is
// rejected as malformed.
func Optimize(assembly []string) ([]Optimized, error) {
	if len(assembly)%3 != 0 {
		return nil, fmt.Errorf("%w: %d assembly instructions, want a multiple of three", ErrMalformed, len(assembly))
	}

	optimized := make([]Optimized, 0, len(assembly)/3)
	for i := 0; i < len(assembly); i += 3 {
		load := strings.Fields(assembly[i])
		operate := strings.Fields(assembly[i+1])
		store := strings.Fields(assembly[i+2])

		if len(load) != 2 || len(operate) != 2 || len(store) != 2 ||
			load[0] != "LDA" || store[0] != "STR" {
			return nil, fmt.Errorf("%w: unexpected triple %q, %q, %q",
				ErrMalformed, assembly[i], assembly[i+1], assembly[i+2])
		}

		optimized = append(optimized, Optimized{
			Opcode: operate[0],
			Dest:   store[1],
			Op1:    load[1],
			Op2:    operate[1],
		})
	}

	return optimized, nil
}
