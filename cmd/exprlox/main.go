package main

// This is an interpreter for the expression subset of the Lox programming
// language written in Go.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kr/pretty"
	"github.com/peterh/liner"

	"github.com/ltungv/lox/exprlox/internal/lox"
)

const (
	exitUsage   = 64
	exitData    = 65
	exitRuntime = 70
	exitIO      = 74

	historyFile = ".exprlox_history"
)

type options struct {
	dumpTokens  bool
	printAst    bool
	historyPath string
}

func main() {
	opts := parseFlags()
	args := flag.Args()
	if len(args) > 1 {
		flag.Usage()
		os.Exit(exitUsage)
	}

	reporter := lox.NewSimpleReporter(os.Stderr)
	if len(args) != 1 {
		runPrompt(opts, reporter)
	} else {
		runFile(args[0], opts, reporter)
	}
}

func parseFlags() *options {
	opts := new(options)
	home, _ := os.UserHomeDir()

	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: exprlox [flags] [script]")
		flag.PrintDefaults()
	}
	flag.BoolVar(&opts.dumpTokens, "tokens", false, "dump the scanned tokens to stderr")
	flag.BoolVar(&opts.printAst, "ast", false, "print the syntax tree before evaluating it")
	flag.StringVar(
		&opts.historyPath,
		"history",
		filepath.Join(home, historyFile),
		"file used to keep the prompt history",
	)
	flag.Parse()
	return opts
}

// run goes through every stage of the interpreter and stops at the first one
// that fails. The returned error has already been reported.
func run(script string, opts *options, reporter lox.Reporter) error {
	tokens, err := lox.Scan(script)
	if opts.dumpTokens {
		pretty.Fprintf(os.Stderr, "%# v\n", tokens)
	}
	if err != nil {
		reporter.Report(err)
		return err
	}

	expr, err := lox.Parse(tokens)
	if err != nil {
		reporter.Report(err)
		return err
	}
	if opts.printAst {
		printer := &lox.AstPrinter{}
		fmt.Println(printer.Print(expr))
	}

	value, err := lox.Evaluate(expr)
	if err != nil {
		reporter.Report(err)
		return err
	}
	fmt.Println(value)
	return nil
}

// Run the interpreter in REPL mode
func runPrompt(opts *options, reporter lox.Reporter) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(opts.historyPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer saveHistory(ln, opts.historyPath)

	for {
		line, err := ln.Prompt("> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		// every line is a run on its own, errors do not carry over
		_ = run(line, opts, reporter)
	}
}

// Run the given file as script
func runFile(fpath string, opts *options, reporter lox.Reporter) {
	bytes, err := os.ReadFile(fpath)
	exitOnError(err, exitIO)

	err = run(string(bytes), opts, reporter)
	exitIf(err != nil && lox.IsStaticError(err), exitData)
	exitIf(err != nil, exitRuntime)
}

func saveHistory(ln *liner.State, fpath string) {
	f, err := os.Create(fpath)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = ln.WriteHistory(f)
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
