package syntax

import (
	"errors"
	"testing"
)

// ----------------------------------------------------------------------------
// Test helpers

// lexAll returns all tokens of src up to, but not including, EOF.
func lexAll(t *testing.T, src string, opts ...Option) []Token {
	t.Helper()
	l := NewLexer(src, opts...)
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("lex %q: %v", src, err)
		}
		if tok.IsEOF() {
			return toks
		}
		toks = append(toks, tok)
	}
}

// lexOne returns the only token of src.
func lexOne(t *testing.T, src string) Token {
	t.Helper()
	toks := lexAll(t, src)
	if len(toks) != 1 {
		t.Fatalf("lex %q: got %d tokens, want 1", src, len(toks))
	}
	return toks[0]
}

// lexError lexes src until the first error and returns it.
func lexError(t *testing.T, src string) *Diagnostic {
	t.Helper()
	l := NewLexer(src)
	for {
		tok, err := l.Next()
		if err != nil {
			var d *Diagnostic
			if !errors.As(err, &d) {
				t.Fatalf("error %v is not a *Diagnostic", err)
			}
			return d
		}
		if tok.IsEOF() {
			t.Fatalf("lex %q: no error", src)
		}
	}
}

// ----------------------------------------------------------------------------
// Numbers

func TestLexInt(t *testing.T) {
	tests := []struct {
		src  string
		want int64
	}{
		{"0", 0},
		{"10", 10},
		{"007", 7},
		{"9223372036854775807", 9223372036854775807},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tok := lexOne(t, tt.src)
			if tok.Kind != _Int {
				t.Fatalf("kind = %s, want INT", tok.Kind)
			}
			if tok.Int != tt.want {
				t.Errorf("value = %d, want %d", tok.Int, tt.want)
			}
			if tok.Lit != tt.src {
				t.Errorf("lit = %q, want %q", tok.Lit, tt.src)
			}
		})
	}
}

func TestLexFloat(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"10.", 10.0},
		{"2.5", 2.5},
		{"3.14e-2", 0.0314},
		{"1e3", 1000},
		{"1.5E+2", 150},
		{"0.125", 0.125},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tok := lexOne(t, tt.src)
			if tok.Kind != _Float {
				t.Fatalf("kind = %s, want FLOAT", tok.Kind)
			}
			if tok.Float != tt.want {
				t.Errorf("value = %v, want %v", tok.Float, tt.want)
			}
		})
	}
}

func TestLexNumberErrors(t *testing.T) {
	tests := []struct {
		src string
		msg string
	}{
		{"99999999999999999999", "invalid integer literal '99999999999999999999'"},
		{"1e", "invalid float literal '1e'"},
		{"2.5e+", "invalid float literal '2.5e+'"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			d := lexError(t, tt.src)
			if d.Msg != tt.msg {
				t.Errorf("msg = %q, want %q", d.Msg, tt.msg)
			}
			if d.Loc != loc(1, 1, 0) {
				t.Errorf("loc = %s, want 1:1", d.Loc)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// Identifiers and keywords

func TestLexIdent(t *testing.T) {
	tests := []struct {
		src  string
		kind Kind
		lit  string
	}{
		{"x", _Ident, "x"},
		{"x1", _Ident, "x1"},
		{"print_int", _Ident, "print_int"},
		{"x'", _Ident, "x"}, // ' is not part of an identifier; reported later
		{"let", _Let, "let"},
		{"letx", _Ident, "letx"},
		{"Array.make", _ArrayCreate, "Array.make"},
		{"Array.create", _ArrayCreate, "Array.create"},
		{"create_array", _ArrayCreate, "create_array"},
		{"lsl", _Operator, "lsl"},
		{"land", _Operator, "land"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tok, err := NewLexer(tt.src).Next()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tok.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", tok.Kind, tt.kind)
			}
			if tok.Lit != tt.lit {
				t.Errorf("lit = %q, want %q", tok.Lit, tt.lit)
			}
		})
	}
}

func TestLexBool(t *testing.T) {
	toks := lexAll(t, "true false")
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2", len(toks))
	}
	if toks[0].Kind != _Bool || !toks[0].Bool {
		t.Errorf("true lexed as %s %v", toks[0].Kind, toks[0].Bool)
	}
	if toks[1].Kind != _Bool || toks[1].Bool {
		t.Errorf("false lexed as %s %v", toks[1].Kind, toks[1].Bool)
	}
}

// A dot followed by anything but a letter ends the identifier, so array
// indexing splits into separate tokens.
func TestLexArrayIndex(t *testing.T) {
	toks := lexAll(t, "a.(0) <- x.(i)")
	want := []Kind{_Ident, _Dot, _Lparen, _Int, _Rparen, _LessMinus, _Ident, _Dot, _Lparen, _Ident, _Rparen}

	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d = %s, want %s", i, toks[i].Kind, k)
		}
	}
}

// ----------------------------------------------------------------------------
// Operators and punctuation

func TestLexOperators(t *testing.T) {
	ops := []string{"+", "-", "*", "/", "+.", "-.", "*.", "/.", "=", "<>", "<=", ">=", "<", ">"}

	for _, op := range ops {
		t.Run(op, func(t *testing.T) {
			tok := lexOne(t, op)
			if tok.Kind != _Operator {
				t.Fatalf("kind = %s, want OP", tok.Kind)
			}
			if tok.Lit != op {
				t.Errorf("lit = %q, want %q", tok.Lit, op)
			}
		})
	}
}

func TestLexPunctuation(t *testing.T) {
	tests := []struct {
		src  string
		kind Kind
	}{
		{"(", _Lparen},
		{")", _Rparen},
		{",", _Comma},
		{".", _Dot},
		{";", _Semi},
		{":", _Colon},
		{"->", _Arrow},
		{"<-", _LessMinus},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tok := lexOne(t, tt.src)
			if tok.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", tok.Kind, tt.kind)
			}
		})
	}
}

func TestLexFloatOperatorNeedsAdjacentDot(t *testing.T) {
	toks := lexAll(t, "x - .")
	if len(toks) != 3 || toks[1].Lit != "-" || toks[2].Kind != _Dot {
		t.Errorf("got %v, want x, -, .", toks)
	}
}

func TestLexInvalidOperator(t *testing.T) {
	tests := []struct {
		src string
		msg string
		at  SourceLoc
	}{
		{"=>", "invalid operator '=>'", loc(1, 1, 0)},
		{"x ++ y", "invalid operator '++'", loc(1, 3, 2)},
		{"a<>=b", "invalid operator '<>='", loc(1, 2, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			d := lexError(t, tt.src)
			if d.Msg != tt.msg {
				t.Errorf("msg = %q, want %q", d.Msg, tt.msg)
			}
			if d.Loc != tt.at {
				t.Errorf("loc = %+v, want %+v", d.Loc, tt.at)
			}
			if d.Stage != StageLexer || d.Severity != SeverityError {
				t.Errorf("stage/severity = %s/%s, want lexer/error", d.Stage, d.Severity)
			}
		})
	}
}

// ----------------------------------------------------------------------------
// Invalid characters

func TestLexInvalidChar(t *testing.T) {
	tests := []struct {
		src string
		msg string
		at  SourceLoc
	}{
		{"@", "invalid character '@'", loc(1, 1, 0)},
		{"x $", "invalid character '$'", loc(1, 3, 2)},
		{"\n  λ", "invalid character 'λ'", loc(2, 3, 3)},
		{"_x", "invalid character '_'", loc(1, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			d := lexError(t, tt.src)
			if d.Msg != tt.msg {
				t.Errorf("msg = %q, want %q", d.Msg, tt.msg)
			}
			if d.Loc != tt.at {
				t.Errorf("loc = %+v, want %+v", d.Loc, tt.at)
			}
		})
	}
}

// The offending character is consumed, so lexing can continue after it.
func TestLexInvalidCharProgress(t *testing.T) {
	l := NewLexer("x @ y")

	tok, err := l.Next()
	if err != nil || tok.Lit != "x" {
		t.Fatalf("first token = %v, %v; want x", tok, err)
	}
	if _, err := l.Next(); err == nil {
		t.Fatal("expected error for '@'")
	}
	tok, err = l.Next()
	if err != nil || tok.Lit != "y" {
		t.Fatalf("token after error = %v, %v; want y", tok, err)
	}
	tok, err = l.Next()
	if err != nil || !tok.IsEOF() {
		t.Fatalf("last token = %v, %v; want EOF", tok, err)
	}
}

func TestLexErrorFilename(t *testing.T) {
	_, err := NewLexer("@", WithFilename("a.ml")).Next()
	if err == nil {
		t.Fatal("expected error")
	}
	if got, want := err.Error(), "a.ml:1:1: invalid character '@'"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

// ----------------------------------------------------------------------------
// Comments

func TestLexNestedComment(t *testing.T) {
	l := NewLexer("(*outer (*inner*) still-outer*) x")
	tok, err := l.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != _Ident || tok.Lit != "x" {
		t.Errorf("got %s %q, want identifier x", tok.Kind, tok)
	}
	if w := l.Warnings(); len(w) != 0 {
		t.Errorf("unexpected warnings: %v", w)
	}
}

func TestLexRawComment(t *testing.T) {
	src := "(* a (* b *) c *)1"
	l := NewLexer(src)

	tok, err := l.NextRaw()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Kind != _Comment {
		t.Fatalf("kind = %s, want COMMENT", tok.Kind)
	}
	if want := "(* a (* b *) c *)"; tok.Lit != want {
		t.Errorf("lit = %q, want %q", tok.Lit, want)
	}
	if got, want := tok.Range.End, loc(1, 18, 17); got != want {
		t.Errorf("end = %+v, want %+v", got, want)
	}

	tok, err = l.NextRaw()
	if err != nil || tok.Kind != _Int {
		t.Errorf("after comment got %s, %v; want INT", tok.Kind, err)
	}
}

func TestLexUnterminatedComment(t *testing.T) {
	var handled []*Diagnostic
	l := NewLexer("x (* unterminated (* nested *)", WithWarningHandler(func(d *Diagnostic) {
		handled = append(handled, d)
	}))

	if tok, err := l.Next(); err != nil || tok.Lit != "x" {
		t.Fatalf("first token = %v, %v; want x", tok, err)
	}
	tok, err := l.Next()
	if err != nil {
		t.Fatalf("unterminated comment raised an error: %v", err)
	}
	if !tok.IsEOF() {
		t.Errorf("got %s, want EOF", tok.Kind)
	}

	w := l.Warnings()
	if len(w) != 1 {
		t.Fatalf("got %d warnings, want 1", len(w))
	}
	if w[0].Msg != "unterminated comment" || w[0].Severity != SeverityWarning {
		t.Errorf("warning = %q (%s), want unterminated comment", w[0].Msg, w[0].Severity)
	}
	if w[0].Loc != loc(1, 3, 2) {
		t.Errorf("warning loc = %+v, want 1:3", w[0].Loc)
	}
	if len(handled) != 1 || handled[0] != w[0] {
		t.Errorf("warning handler got %v, want the recorded warning", handled)
	}
}

func TestLexLoneParen(t *testing.T) {
	toks := lexAll(t, "( *)")
	want := []Kind{_Lparen, _Operator, _Rparen}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d = %s, want %s", i, toks[i].Kind, k)
		}
	}
}

// ----------------------------------------------------------------------------
// Ranges

func TestLexRanges(t *testing.T) {
	src := "let\n  x =\t3.5 (* c *) +. y"
	toks := lexAll(t, src)

	want := []SourceRange{
		{Start: loc(1, 1, 0), End: loc(1, 4, 3)},     // let
		{Start: loc(2, 3, 6), End: loc(2, 4, 7)},     // x
		{Start: loc(2, 5, 8), End: loc(2, 6, 9)},     // =
		{Start: loc(2, 7, 10), End: loc(2, 10, 13)},  // 3.5
		{Start: loc(2, 19, 22), End: loc(2, 21, 24)}, // +.
		{Start: loc(2, 22, 25), End: loc(2, 23, 26)}, // y
	}

	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, r := range want {
		if toks[i].Range != r {
			t.Errorf("token %d (%s) range = %s, want %s", i, toks[i], toks[i].Range, r)
		}
	}
}

func TestLexEOF(t *testing.T) {
	l := NewLexer("  \n")
	for i := 0; i < 3; i++ {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
		if !tok.IsEOF() {
			t.Fatalf("call %d: got %s, want EOF", i, tok.Kind)
		}
		want := SourceRange{Start: loc(2, 1, 3), End: loc(2, 1, 3)}
		if tok.Range != want {
			t.Errorf("call %d: EOF range = %s, want %s", i, tok.Range, want)
		}
	}
}
