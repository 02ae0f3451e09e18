// Package main implements the MinCaml front-end driver.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
)

// Driver flags
var (
	emitTokens   = flag.Bool("emit-tokens", false, "Output token stream")
	withComments = flag.Bool("comments", false, "Include comments in the token stream")
	emitAST      = flag.Bool("emit-ast", false, "Output AST")
	astFormat    = flag.String("ast-format", "text", "AST output format (text or json)")
	repl         = flag.Bool("repl", false, "Start an interactive read-parse-print loop")
	version      = flag.Bool("version", false, "Print version")
)

// Version information
const Version = "0.1.0-dev"

// Exit codes
const (
	exitOK    = 0
	exitError = 1 // input had errors or could not be read
	exitUsage = 2
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "MinCaml front end %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: mincamlc [options] <file.ml>\n")
		fmt.Fprintf(os.Stderr, "       mincamlc -repl\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("mincamlc version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(exitOK)
	}

	if *repl {
		os.Exit(runREPL())
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "error: no input file")
		fmt.Fprintln(os.Stderr, "usage: mincamlc [options] <file.ml>")
		os.Exit(exitUsage)
	}

	// "-" reads from standard input.
	filename := args[0]

	// Handle -emit-tokens
	if *emitTokens {
		os.Exit(runEmitTokens(filename, *withComments))
	}

	// Handle -emit-ast
	if *emitAST {
		os.Exit(runEmitAST(filename, *astFormat))
	}

	os.Exit(runCheck(filename))
}
