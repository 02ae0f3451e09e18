package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/you-not-fish/mincaml/internal/syntax"
)

// loadFile reads the whole input; "-" names standard input.
func loadFile(filename string) (string, error) {
	if filename == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "read standard input")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", filename)
	}
	return string(data), nil
}

// displayName is the file name used in diagnostics.
func displayName(filename string) string {
	if filename == "-" {
		return "<stdin>"
	}
	return filename
}

// formatDiag renders a diagnostic as "file:line:col: severity: message".
func formatDiag(d *syntax.Diagnostic) string {
	where := d.Loc.String()
	if d.Filename != "" {
		where = d.Filename + ":" + where
	}
	return fmt.Sprintf("%s: %s: %s", where, d.Severity, d.Msg)
}

// formatErr renders err for the terminal, using formatDiag for diagnostics.
func formatErr(err error) string {
	var d *syntax.Diagnostic
	if errors.As(err, &d) {
		return formatDiag(d)
	}
	return "error: " + err.Error()
}

// printWarning is installed as the warning handler for file modes.
func printWarning(d *syntax.Diagnostic) {
	fmt.Fprintln(os.Stderr, formatDiag(d))
}

// runCheck parses the input and only reports diagnostics.
func runCheck(filename string) int {
	src, err := loadFile(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, formatErr(err))
		return exitError
	}

	_, err = syntax.Parse(src,
		syntax.WithFilename(displayName(filename)),
		syntax.WithWarningHandler(printWarning))
	if err != nil {
		fmt.Fprintln(os.Stderr, formatErr(err))
		return exitError
	}
	return exitOK
}

// runEmitAST parses the input file and outputs the AST.
func runEmitAST(filename, format string) int {
	if format != "text" && format != "json" {
		fmt.Fprintf(os.Stderr, "error: unknown AST format %q (want text or json)\n", format)
		return exitUsage
	}

	src, err := loadFile(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, formatErr(err))
		return exitError
	}

	root, err := syntax.Parse(src,
		syntax.WithFilename(displayName(filename)),
		syntax.WithWarningHandler(printWarning))
	if err != nil {
		fmt.Fprintln(os.Stderr, formatErr(err))
		return exitError
	}

	switch format {
	case "json":
		if err := syntax.FprintJSON(os.Stdout, root); err != nil {
			fmt.Fprintln(os.Stderr, formatErr(errors.Wrap(err, "encode AST")))
			return exitError
		}
	default:
		syntax.Fprint(os.Stdout, root)
	}
	return exitOK
}

// runEmitTokens lexes the input file and prints all tokens with their ranges.
// Lexing continues past errors, which are listed after the token table.
func runEmitTokens(filename string, comments bool) int {
	src, err := loadFile(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, formatErr(err))
		return exitError
	}

	var warnings []string
	lex := syntax.NewLexer(src,
		syntax.WithFilename(displayName(filename)),
		syntax.WithWarningHandler(func(d *syntax.Diagnostic) {
			warnings = append(warnings, formatDiag(d))
		}))

	next := lex.Next
	if comments {
		next = lex.NextRaw
	}

	// Print header
	fmt.Printf("%-20s %-12s %-8s %s\n", "RANGE", "TOKEN", "CLASS", "LITERAL")
	fmt.Printf("%-20s %-12s %-8s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 12), strings.Repeat("-", 8), strings.Repeat("-", 20))

	var errs []string
	for {
		tok, err := next()
		if err != nil {
			errs = append(errs, formatErr(err))
			continue
		}

		fmt.Printf("%-20s %-12s %-8s %s\n", tok.Range, tok.Kind, tokenClass(tok.Kind), formatLiteral(tok.Lit))

		if tok.IsEOF() {
			break
		}
	}

	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, w)
	}

	// Print any errors
	if len(errs) > 0 {
		fmt.Println()
		fmt.Println("Errors:")
		for _, e := range errs {
			fmt.Printf("  %s\n", e)
		}
		return exitError
	}

	return exitOK
}

// tokenClass names the lexical class of k for the token table.
func tokenClass(k syntax.Kind) string {
	switch {
	case k.IsKeyword():
		return "keyword"
	case k.IsLiteral():
		return "literal"
	case k.IsPunct():
		return "punct"
	case k.IsEOF():
		return "eof"
	}
	return "-"
}

// formatLiteral formats a literal for display, escaping special characters.
func formatLiteral(lit string) string {
	if lit == "" {
		return "\"\""
	}

	// Show the content with escapes visible for readability
	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lit {
		switch r {
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\r':
			b.WriteString("\\r")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}
