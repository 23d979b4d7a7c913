package codegen

import (
	"fmt"
	"strings"
)

var opcodeBits = map[string]string{
	"ADD": "01000001",
	"SUB": "01010011",
	"MUL": "01001101",
	"DIV": "01000100",
}

// characterBits maps every single letter to its 8-bit character code.
var characterBits = map[string]string{}

func init() {
	for char := byte('A'); char <= 'Z'; char++ {
		characterBits[string(char)] = fmt.Sprintf("%08b", char)
	}
	for char := byte('a'); char <= 'z'; char++ {
		characterBits[string(char)] = fmt.Sprintf("%08b", char)
	}
}

const (
	unknownOpcodeBits  = "00000000"
	unknownOperandBits = "01110100"
)

// Encode renders each optimized instruction as four 8-bit fields:
// opcode, destination, operand1, operand2, joined by two spaces.
//
// Operands absent from the character table (multi-letter names, so in
// practice the temporaries t1, t2, ...) all encode to the same sentinel
// pattern instead of failing, which makes their codes ambiguous. The
// leniency is inherited from the illustrative target encoding and kept
// on purpose.
func Encode(optimized []Optimized) []string {
	lines := make([]string, 0, len(optimized))

	for _, in := range optimized {
		fields := []string{
			lookup(opcodeBits, in.Opcode, unknownOpcodeBits),
			lookup(characterBits, in.Dest, unknownOperandBits),
			lookup(characterBits, in.Op1, unknownOperandBits),
			lookup(characterBits, in.Op2, unknownOperandBits),
		}
		lines = append(lines, strings.Join(fields, "  "))
	}

	return lines
}

func lookup(table map[string]string, key, fallback string) string {
	if bits, ok := table[key]; ok {
		return bits
	}
	return fallback
}
