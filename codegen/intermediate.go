package codegen

import "fmt"

// Instruction is one three-address operation: Dest = Op1 Operator Op2.
type Instruction struct {
	Dest     string
	Op1      string
	Operator string
	Op2      string
}

func (in Instruction) String() string {
	return fmt.Sprintf("%s = %s %s %s", in.Dest, in.Op1, in.Operator, in.Op2)
}

// Operands are single-letter identifiers; anything longer is treated as
// an operator, which is why multi-letter names cannot reach the later
// stages without tripping the underflow check below.
func isOperand(item string) bool {
	if len(item) != 1 {
		return false
	}
	return item[0] >= 'A' && item[0] <= 'Z' || item[0] >= 'a' && item[0] <= 'z'
}

// Generate turns a postfix sequence into three-address instructions.
// Temporaries are named t1, t2, ... with the counter local to this one
// expression. Operands pop as op2 then op1; the order matters for the
// non-commutative operators.
func Generate(postfix []string) ([]Instruction, error) {
	instructions := make([]Instruction, 0)
	stack := make([]string, 0)
	temp := 1

	for _, item := range postfix {
		if isOperand(item) {
			stack = append(stack, item)
			continue
		}

		if len(stack) < 2 {
			return nil, fmt.Errorf("%w: operand stack underflow at %q", ErrMalformed, item)
		}
		op2 := stack[len(stack)-1]
		op1 := stack[len(stack)-2]
		stack = stack[:len(stack)-2]

		dest := fmt.Sprintf("t%d", temp)
		temp++
		instructions = append(instructions, Instruction{Dest: dest, Op1: op1, Operator: item, Op2: op2})
		stack = append(stack, dest)
	}

	return instructions, nil
}
