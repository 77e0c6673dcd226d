package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ltungv/lox/loxer/internal/lox"
)

// Prints the syntax tree of every expression given on the command line.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: ast_printer <expression>...")
		os.Exit(64)
	}

	source := strings.Join(os.Args[1:], " ")
	reporter := lox.NewDiagnosticReporter(os.Stderr)
	parser := lox.NewParser(source, lox.SkipComments(lox.NewScanner(source)))
	printer := lox.AstPrinter{}
	for result := range parser.All() {
		if result.Err != nil {
			reporter.Report(source, result.Span, result.Err)
			continue
		}
		fmt.Println(printer.Print(result.Expr))
	}
	if reporter.HadError() {
		os.Exit(65)
	}
}
