package codegen

var mnemonics = map[string]string{
	"+": "ADD",
	"-": "SUB",
	"*": "MUL",
	"/": "DIV",
}

// Assemble emits a load/operate/store triple per three-address
// instruction. Every store targets the instruction's own temporary,
// except the last one, which stores straight to the assignment target
// and saves the final temporary-to-variable copy.
func Assemble(instructions []Instruction, target string) []string {
	assembly := make([]string, 0, len(instructions)*3)

	for i, in := range instructions {
		dest := in.Dest
		if i == len(instructions)-1 {
			dest = target
		}
		assembly = append(assembly,
			"LDA "+in.Op1,
			mnemonics[in.Operator]+" "+in.Op2,
			"STR "+dest,
		)
	}

	return assembly
}
