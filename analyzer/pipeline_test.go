package analyzer_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/itsyagirlmay/Compiler-Techniques/analyzer"
	"github.com/itsyagirlmay/Compiler-Techniques/codegen"
	"github.com/itsyagirlmay/Compiler-Techniques/engine"
)

var _ = Describe("CompileLine", func() {
	var decls *engine.Declarations

	BeforeEach(func() {
		decls = engine.NewDeclarations()
	})

	It("lowers a simple assignment all the way to binary", func() {
		Expect(analyzer.CompileLine("INTEGER A, B, C", decls).Err).NotTo(HaveOccurred())
		Expect(decls.Names()).To(Equal([]string{"A", "B", "C"}))

		result := analyzer.CompileLine("LET B = A + C", decls)
		Expect(result.Err).NotTo(HaveOccurred())
		Expect(result.Statement.Kind).To(Equal(engine.Assign))
		Expect(result.Postfix).To(Equal([]string{"A", "C", "+"}))
		Expect(result.Intermediate).To(Equal([]codegen.Instruction{
			{Dest: "t1", Op1: "A", Operator: "+", Op2: "C"},
		}))
		Expect(result.Assembly).To(Equal([]string{"LDA A", "ADD C", "STR B"}))
		Expect(result.Optimized).To(Equal([]codegen.Optimized{
			{Opcode: "ADD", Dest: "B", Op1: "A", Op2: "C"},
		}))
		Expect(result.Binary).To(Equal([]string{"01000001  01000010  01000001  01000011"}))
	})

	It("stores intermediate results to temporaries and only the last to the target", func() {
		analyzer.CompileLine("INTEGER A, B, C, M", decls)

		result := analyzer.CompileLine("M = A / B + C", decls)
		Expect(result.Err).NotTo(HaveOccurred())
		Expect(result.Postfix).To(Equal([]string{"A", "B", "/", "C", "+"}))
		Expect(result.Assembly).To(Equal([]string{
			"LDA A", "DIV B", "STR t1",
			"LDA t1", "ADD C", "STR M",
		}))
		Expect(result.Optimized).To(Equal([]codegen.Optimized{
			{Opcode: "DIV", Dest: "t1", Op1: "A", Op2: "B"},
			{Opcode: "ADD", Dest: "M", Op1: "t1", Op2: "C"},
		}))
		// The temporary has no character code and encodes to the sentinel.
		Expect(result.Binary).To(Equal([]string{
			"01000100  01110100  01000001  01000010",
			"01000001  01001101  01110100  01000011",
		}))
	})

	It("rejects use before declaration and skips the lowering stages", func() {
		result := analyzer.CompileLine("WRITE M", decls)
		Expect(result.Err).To(MatchError(engine.ErrSemantic))
		Expect(result.Err.Error()).To(ContainSubstring(`undeclared identifier "M"`))
		Expect(result.Postfix).To(BeNil())
		Expect(result.Binary).To(BeNil())
	})

	It("rejects combined operators before the semantic stage runs", func() {
		analyzer.CompileLine("INTEGER A, B, M", decls)

		result := analyzer.CompileLine("LET B = A */ M", decls)
		Expect(result.Err).To(MatchError(engine.ErrSyntax))
		Expect(result.Err.Error()).To(ContainSubstring("combined operators"))
		Expect(result.Postfix).To(BeNil())
	})

	It("lets a declaration's names be used by later lines only", func() {
		Expect(analyzer.CompileLine("INPUT A", decls).Err).To(MatchError(engine.ErrSemantic))
		Expect(analyzer.CompileLine("INTEGER A", decls).Err).NotTo(HaveOccurred())
		Expect(analyzer.CompileLine("INPUT A", decls).Err).NotTo(HaveOccurred())
	})

	It("never grows the declaration set on non-INTEGER lines", func() {
		analyzer.CompileLine("INTEGER A", decls)
		analyzer.CompileLine("INPUT A", decls)
		analyzer.CompileLine("WRITE A", decls)
		analyzer.CompileLine("LET A = A + A", decls)
		Expect(decls.Names()).To(Equal([]string{"A"}))
	})

	It("accepts a copy assignment without emitting code", func() {
		analyzer.CompileLine("INTEGER A, B", decls)

		result := analyzer.CompileLine("B = A", decls)
		Expect(result.Err).NotTo(HaveOccurred())
		Expect(result.Postfix).To(Equal([]string{"A"}))
		Expect(result.Intermediate).To(BeEmpty())
		Expect(result.Assembly).To(BeEmpty())
		Expect(result.Optimized).To(BeEmpty())
		Expect(result.Binary).To(BeEmpty())
	})

	It("reports the operand underflow on multi-letter identifiers loudly", func() {
		analyzer.CompileLine("INTEGER ab, c", decls)

		result := analyzer.CompileLine("LET ab = ab + c", decls)
		Expect(result.Err).To(MatchError(codegen.ErrMalformed))
	})
})

var _ = Describe("Run", func() {
	It("isolates errors to their line and keeps compiling", func() {
		program := []string{
			"BEGIN",
			"INTEGER A, B, C, M",
			"LET B = A */ M",
			"M = A/B+C",
			"WRITE M",
			"END",
		}

		results := analyzer.Run(program)
		Expect(results).To(HaveLen(len(program)))

		Expect(results[2].Err).To(MatchError(engine.ErrSyntax))
		Expect(results[3].Err).NotTo(HaveOccurred())
		Expect(results[3].Optimized).To(HaveLen(2))
		Expect(results[4].Err).NotTo(HaveOccurred())
		Expect(results[5].Statement.Kind).To(Equal(engine.End))
	})

	It("compiles the expression battery from the course program", func() {
		results := analyzer.Run([]string{
			"INTEGER G, H, I, a, c, B, N",
			"N = G/H-I+a*B/c",
		})

		result := results[1]
		Expect(result.Err).NotTo(HaveOccurred())
		Expect(result.Postfix).To(Equal([]string{"G", "H", "/", "I", "-", "a", "B", "*", "c", "/", "+"}))
		Expect(result.Intermediate).To(HaveLen(5))
		Expect(result.Assembly).To(HaveLen(15))
		Expect(result.Optimized).To(HaveLen(5))
		Expect(result.Binary).To(HaveLen(5))
		Expect(result.Assembly[14]).To(Equal("STR N"))
	})
})
