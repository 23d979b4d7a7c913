// Package writer renders compilation results for the console.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/itsyagirlmay/Compiler-Techniques/analyzer"
)

// Output writes the per-line report: the source line, its tokens, the
// validation status, and, for valid assignments, every lowering stage.
func Output(out io.Writer, lineNr int, result analyzer.Result) {
	fmt.Fprintf(out, "\nLine %d: %s\n", lineNr, result.Line)

	tokens := make([]string, 0, len(result.Tokens))
	for _, token := range result.Tokens {
		tokens = append(tokens, fmt.Sprintf("%s (%s)", token.Raw, token.Type))
	}
	fmt.Fprintf(out, "  Tokens: %s\n", strings.Join(tokens, ", "))

	if result.Err != nil {
		fmt.Fprintf(out, "  Error: %s\n", result.Err)
		return
	}
	fmt.Fprintln(out, "  Status: Valid")

	if result.Postfix == nil {
		return
	}

	fmt.Fprintf(out, "  Postfix: %s\n", strings.Join(result.Postfix, " "))

	fmt.Fprintln(out, "  ICR:")
	for _, instruction := range result.Intermediate {
		fmt.Fprintf(out, "    %s\n", instruction)
	}

	fmt.Fprintln(out, "  Assembly:")
	for _, instruction := range result.Assembly {
		fmt.Fprintf(out, "    %s\n", instruction)
	}

	fmt.Fprintln(out, "  Optimized Assembly:")
	for _, instruction := range result.Optimized {
		fmt.Fprintf(out, "    %s\n", instruction)
	}

	fmt.Fprintln(out, "  TMC:")
	for _, code := range result.Binary {
		fmt.Fprintf(out, "    %s\n", code)
	}
}

// Summary writes one table over the whole run: line number, source,
// statement form, and outcome.
func Summary(out io.Writer, results []analyzer.Result) {
	tw := table.NewWriter()
	tw.SetTitle("Compilation Summary")
	tw.AppendHeader(table.Row{"Line", "Source", "Statement", "Outcome"})

	for i, result := range results {
		statement := "-"
		outcome := "valid"
		if result.Valid() {
			statement = result.Statement.Kind.String()
		} else {
			outcome = result.Err.Error()
		}
		tw.AppendRow(table.Row{i + 1, result.Line, statement, outcome})
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, tw.Render())
}
