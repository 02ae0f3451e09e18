package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"

	"github.com/you-not-fish/mincaml/internal/syntax"
)

const (
	promptMain  = "# "
	promptCont  = "  "
	historyFile = ".mincaml_history"
)

// prompter reads one line of input. *liner.State implements it.
type prompter interface {
	Prompt(prompt string) (string, error)
}

// runREPL reads expressions from the terminal and prints their parse.
func runREPL() int {
	fmt.Printf("MinCaml front end %s. Type :help for commands.\n", Version)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if home, err := os.UserHomeDir(); err == nil {
		histPath := filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	s := &session{
		in:       ln,
		out:      os.Stdout,
		errOut:   os.Stderr,
		remember: ln.AppendHistory,
	}
	s.run()
	return exitOK
}

// session is one interactive loop. It prints either the compact
// S-expression form or the full tree of every parsed expression.
type session struct {
	in       prompter
	out      io.Writer
	errOut   io.Writer
	remember func(string) // records an entry in the history; may be nil
	tree     bool
}

func (s *session) run() {
	for {
		src, ok := s.read()
		if !ok {
			fmt.Fprintln(s.out)
			return
		}

		cmd := strings.TrimSpace(src)
		if cmd == "" {
			continue
		}
		if strings.HasPrefix(cmd, ":") {
			if !s.command(cmd) {
				return
			}
			continue
		}

		if s.remember != nil {
			s.remember(strings.ReplaceAll(src, "\n", " "))
		}
		s.eval(src)
	}
}

// command runs a colon command and reports whether the loop goes on.
func (s *session) command(cmd string) bool {
	switch cmd {
	case ":quit", ":q":
		return false
	case ":tree":
		s.tree = true
	case ":sexp":
		s.tree = false
	case ":help":
		fmt.Fprintln(s.out, ":tree  print the full syntax tree with source ranges")
		fmt.Fprintln(s.out, ":sexp  print compact S-expressions (default)")
		fmt.Fprintln(s.out, ":quit  leave")
	default:
		fmt.Fprintf(s.errOut, "unknown command %s; type :help\n", cmd)
	}
	return true
}

func (s *session) eval(src string) {
	root, err := syntax.Parse(src, syntax.WithWarningHandler(func(d *syntax.Diagnostic) {
		fmt.Fprintln(s.errOut, formatDiag(d))
	}))
	if err != nil {
		fmt.Fprintln(s.errOut, formatErr(err))
		return
	}

	if s.tree {
		syntax.Fprint(s.out, root)
		return
	}
	for _, x := range root.Exprs {
		fmt.Fprintln(s.out, syntax.ExprString(x))
	}
}

// read collects lines until they form a complete input. An empty line
// submits whatever has been typed so far; Ctrl-C discards it.
// ok is false at end of input.
func (s *session) read() (src string, ok bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := s.in.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			if strings.TrimSpace(line) == "" {
				return b.String(), true
			}
			b.WriteByte('\n')
		}
		b.WriteString(line)

		text := b.String()
		if !needsMore(text) {
			return text, true
		}
	}
}

// needsMore reports whether src stops in the middle of a construct,
// including inside a comment.
func needsMore(src string) bool {
	p := syntax.NewParser(src)
	_, err := p.Parse()
	if err != nil {
		return syntax.IsIncomplete(err)
	}
	// The only lexer warning is an unterminated comment.
	return len(p.Warnings()) > 0
}
