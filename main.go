package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/itsyagirlmay/Compiler-Techniques/analyzer"
	"github.com/itsyagirlmay/Compiler-Techniques/engine"
	"github.com/itsyagirlmay/Compiler-Techniques/logger"
	"github.com/itsyagirlmay/Compiler-Techniques/onerror"
	"github.com/itsyagirlmay/Compiler-Techniques/writer"
)

// demoProgram exercises every statement form and most error paths.
var demoProgram = []string{
	"BEGIN",
	"INTEGER A, B, C, E, M, N, G, H, I, a, c",
	"INPUT A, B, C",
	"LET B = A */ M",
	"LET G = a + c",
	"temp = <s%**h - j / w +d +*$&;",
	"M = A/B+C",
	"N = G/H-I+a*B/c",
	"WRITE M",
	"WRITEE F;",
	"END",
}

func main() {
	var filename string
	var interactive, verbose bool
	flag.StringVar(&filename, "f", "", "compile the program in the given file")
	flag.BoolVar(&interactive, "i", false, "read statements from stdin until \"quit\"")
	flag.BoolVar(&verbose, "v", false, "print per-stage chatter")
	flag.Parse()
	logger.Toggle(verbose)

	fmt.Println("V Compiler")
	fmt.Println("------------------------")

	switch {
	case interactive:
		runInteractive()
	case filename != "":
		runProgram(readProgram(filename))
	default:
		runProgram(demoProgram)
	}

	fmt.Println("\nCompilation Complete")
	atexit.Exit(0)
}

func runProgram(lines []string) {
	results := analyzer.Run(lines)
	for i, result := range results {
		writer.Output(os.Stdout, i+1, result)
	}
	writer.Summary(os.Stdout, results)
}

// runInteractive compiles one statement per prompt against a shared
// declaration set, until the quit sentinel.
func runInteractive() {
	decls := engine.NewDeclarations()
	scanner := bufio.NewScanner(os.Stdin)

	for lineNr := 1; ; lineNr++ {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "quit" {
			break
		}

		result := analyzer.CompileLine(line, decls)
		writer.Output(os.Stdout, lineNr, result)
		logger.Printf("declared so far: %v\n", decls.Names())
	}
	onerror.Log(scanner.Err())
}

func readProgram(filename string) []string {
	content, err := os.ReadFile(filename)
	onerror.Logf("error reading file\n", err)

	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
