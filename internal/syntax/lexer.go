package syntax

import (
	"fmt"
	"strconv"
	"strings"
)

// Lexer turns MinCaml source text into tokens, one per call.
type Lexer struct {
	src  *Scanner
	conf config

	warnings []*Diagnostic

	// Literal accumulation
	litBuf strings.Builder
}

// NewLexer creates a Lexer for the given source text.
func NewLexer(text string, opts ...Option) *Lexer {
	return newLexer(text, newConfig(opts))
}

func newLexer(text string, conf config) *Lexer {
	return &Lexer{
		src:  NewScanner(text),
		conf: conf,
	}
}

// Next returns the next token, skipping comments.
// At end of input it keeps returning the EOF token.
func (l *Lexer) Next() (Token, error) {
	for {
		tok, err := l.NextRaw()
		if err != nil || tok.Kind != _Comment {
			return tok, err
		}
	}
}

// NextRaw is like Next but also returns comment tokens.
//
// On an invalid character the character is consumed before the error is
// returned, so calling NextRaw again makes progress.
func (l *Lexer) NextRaw() (Token, error) {
	l.skipWhitespace()

	start := l.src.Loc()
	ch, ok := l.src.CurrentChar()
	switch {
	case !ok:
		return Token{Kind: _EOF, Range: SourceRange{Start: start, End: start}}, nil

	case isLetter(ch):
		return l.lexIdent(), nil

	case isDigit(ch):
		return l.lexNumber()

	case isOperatorChar(ch):
		return l.lexOperator()

	case ch == '(':
		return l.lexParenOrComment(), nil
	}

	if k, ok := punctuation[ch]; ok {
		l.src.ConsumeChar()
		return l.token(k, start, string(ch)), nil
	}

	l.src.ConsumeChar()
	return Token{}, l.errorAt(start, fmt.Sprintf("invalid character %q", ch))
}

// Warnings returns the warnings reported so far.
func (l *Lexer) Warnings() []*Diagnostic {
	return l.warnings
}

// token builds a token of kind k that starts at start and ends at the cursor.
func (l *Lexer) token(k Kind, start SourceLoc, lit string) Token {
	return Token{
		Kind:  k,
		Range: SourceRange{Start: start, End: l.src.Loc()},
		Lit:   lit,
	}
}

func (l *Lexer) errorAt(loc SourceLoc, msg string) *Diagnostic {
	return &Diagnostic{
		Loc:      loc,
		Msg:      msg,
		Severity: SeverityError,
		Stage:    StageLexer,
		Filename: l.conf.filename,
	}
}

func (l *Lexer) warnAt(loc SourceLoc, msg string) {
	d := &Diagnostic{
		Loc:      loc,
		Msg:      msg,
		Severity: SeverityWarning,
		Stage:    StageLexer,
		Filename: l.conf.filename,
	}
	l.warnings = append(l.warnings, d)
	if l.conf.warnh != nil {
		l.conf.warnh(d)
	}
}

// skipWhitespace skips spaces, tabs, newlines and carriage returns.
func (l *Lexer) skipWhitespace() {
	for {
		ch, ok := l.src.CurrentChar()
		if !ok || !isWhitespace(ch) {
			return
		}
		l.src.ConsumeChar()
	}
}

// take appends the current character to the literal and consumes it.
func (l *Lexer) take() {
	ch, _ := l.src.CurrentChar()
	l.litBuf.WriteRune(ch)
	l.src.ConsumeChar()
}

// takeWhile takes characters as long as cond holds.
func (l *Lexer) takeWhile(cond func(rune) bool) {
	for {
		ch, ok := l.src.CurrentChar()
		if !ok || !cond(ch) {
			return
		}
		l.take()
	}
}

// at reports whether the current character is one of chars.
func (l *Lexer) at(chars string) bool {
	ch, ok := l.src.CurrentChar()
	return ok && strings.ContainsRune(chars, ch)
}

// lexIdent scans an identifier, keyword, boolean or word operator.
//
// A dot continues the identifier only when a letter follows it, so dotted
// builtins such as Array.make stay one token while a.(i) still splits.
func (l *Lexer) lexIdent() Token {
	start := l.src.Loc()
	l.litBuf.Reset()

	for {
		l.takeWhile(isIdentChar)
		if !l.at(".") {
			break
		}
		if next, ok := l.src.Peek(); !ok || !isLetter(next) {
			break
		}
		l.take()
	}

	name := l.litBuf.String()
	tok := l.token(LookupKeyword(name), start, name)
	if tok.Kind == _Bool {
		tok.Bool = name == "true"
	}
	return tok
}

// lexNumber scans an integer or float literal.
//
//	int:   digits
//	float: digits '.' digits? exponent?
//	       digits exponent
func (l *Lexer) lexNumber() (Token, error) {
	start := l.src.Loc()
	l.litBuf.Reset()

	l.takeWhile(isDigit)
	isFloat := false
	if l.at(".") {
		isFloat = true
		l.take()
		l.takeWhile(isDigit)
		if l.at("eE") {
			l.scanExponent()
		}
	} else if l.at("eE") {
		isFloat = true
		l.scanExponent()
	}

	text := l.litBuf.String()
	if isFloat {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Token{}, l.errorAt(start, fmt.Sprintf("invalid float literal '%s'", text))
		}
		tok := l.token(_Float, start, text)
		tok.Float = v
		return tok, nil
	}

	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Token{}, l.errorAt(start, fmt.Sprintf("invalid integer literal '%s'", text))
	}
	tok := l.token(_Int, start, text)
	tok.Int = v
	return tok, nil
}

// scanExponent scans 'e' or 'E', an optional sign and digits.
func (l *Lexer) scanExponent() {
	l.take()
	if l.at("+-") {
		l.take()
	}
	l.takeWhile(isDigit)
}

// lexOperator scans a maximal run of operator characters.
func (l *Lexer) lexOperator() (Token, error) {
	start := l.src.Loc()
	l.litBuf.Reset()
	l.takeWhile(isOperatorChar)
	run := l.litBuf.String()

	switch run {
	case "->":
		return l.token(_Arrow, start, run), nil
	case "<-":
		return l.token(_LessMinus, start, run), nil
	case "+", "-", "*", "/":
		// A single trailing dot selects the float variant.
		if l.at(".") {
			l.take()
			run = l.litBuf.String()
		}
		return l.token(_Operator, start, run), nil
	case "=", "<>", "<=", ">=", "<", ">":
		return l.token(_Operator, start, run), nil
	}
	return Token{}, l.errorAt(start, fmt.Sprintf("invalid operator '%s'", run))
}

// lexParenOrComment scans '(' or a nested block comment (* ... *).
// An unterminated comment is reported as a warning and ends at end of input.
func (l *Lexer) lexParenOrComment() Token {
	start := l.src.Loc()
	l.litBuf.Reset()
	l.take() // (

	if !l.at("*") {
		return l.token(_Lparen, start, "(")
	}
	l.take() // *

	depth := 1
	for depth > 0 && !l.src.AtEOF() {
		ch, _ := l.src.CurrentChar()
		l.take()
		switch {
		case ch == '*' && l.at(")"):
			l.take()
			depth--
		case ch == '(' && l.at("*"):
			l.take()
			depth++
		}
	}

	if depth > 0 {
		l.warnAt(start, "unterminated comment")
	}
	return l.token(_Comment, start, l.litBuf.String())
}
