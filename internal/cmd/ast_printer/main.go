package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ltungv/lox/exprlox/internal/lox"
)

// Prints the prefix form of the expression given on the command line, e.g.
//
//	$ ast_printer '-123 * (45.67)'
//	(* (- 123) (group 45.67))
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: ast_printer <expression>")
		os.Exit(64)
	}

	reporter := lox.NewSimpleReporter(os.Stderr)
	tokens, err := lox.Scan(strings.Join(os.Args[1:], " "))
	if err != nil {
		reporter.Report(err)
		os.Exit(65)
	}
	expression, err := lox.Parse(tokens)
	if err != nil {
		reporter.Report(err)
		os.Exit(65)
	}

	printer := lox.AstPrinter{}
	fmt.Println(printer.Print(expression))
}
