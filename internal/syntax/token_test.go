package syntax

import (
	"strconv"
	"strings"
	"testing"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{_EOF, "EOF"},
		{_Comment, "COMMENT"},
		{_Bool, "BOOL"},
		{_Int, "INT"},
		{_Float, "FLOAT"},
		{_Ident, "IDENT"},
		{_Operator, "OP"},

		{_If, "if"},
		{_Then, "then"},
		{_Else, "else"},
		{_Let, "let"},
		{_In, "in"},
		{_Rec, "rec"},
		{_Fun, "fun"},
		{_Not, "not"},
		{_ArrayCreate, "Array.make"},
		{_Input, "input"},
		{_Output, "output"},

		{_Lparen, "("},
		{_Rparen, ")"},
		{_Comma, ","},
		{_Dot, "."},
		{_Semi, ";"},
		{_Colon, ":"},
		{_Arrow, "->"},
		{_LessMinus, "<-"},

		{kindCount, "kind(" + strconv.Itoa(int(kindCount)) + ")"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindClasses(t *testing.T) {
	for k := Kind(0); k < kindCount; k++ {
		classes := 0
		for _, in := range []bool{k.IsKeyword(), k.IsLiteral(), k.IsPunct()} {
			if in {
				classes++
			}
		}
		if classes > 1 {
			t.Errorf("%s belongs to %d classes", k, classes)
		}
	}

	if !_Let.IsKeyword() || !_Output.IsKeyword() {
		t.Error("let/output not reported as keywords")
	}
	if _Ident.IsKeyword() || _Operator.IsKeyword() {
		t.Error("identifier or operator reported as keyword")
	}
	if !_Float.IsLiteral() || _Ident.IsLiteral() {
		t.Error("IsLiteral misclassifies FLOAT or IDENT")
	}
	if !_Lparen.IsPunct() || !_LessMinus.IsPunct() || _Operator.IsPunct() {
		t.Error("IsPunct misclassifies punctuation")
	}
	if !_EOF.IsEOF() || _Semi.IsEOF() {
		t.Error("IsEOF misclassifies")
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		want  Kind
	}{
		{"if", _If},
		{"then", _Then},
		{"else", _Else},
		{"let", _Let},
		{"in", _In},
		{"rec", _Rec},
		{"fun", _Fun},
		{"not", _Not},
		{"input", _Input},
		{"output", _Output},
		{"true", _Bool},
		{"false", _Bool},
		{"create_array", _ArrayCreate},
		{"Array.create", _ArrayCreate},
		{"Array.make", _ArrayCreate},
		{"lxor", _Operator},
		{"lsr", _Operator},

		{"x", _Ident},
		{"If", _Ident},
		{"print_int", _Ident},
		{"Array", _Ident},
		{"Array.length", _Ident},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			if got := LookupKeyword(tt.ident); got != tt.want {
				t.Errorf("LookupKeyword(%q) = %s, want %s", tt.ident, got, tt.want)
			}
		})
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: _EOF}, "EOF"},
		{Token{Kind: _Ident, Lit: "foo"}, "foo"},
		{Token{Kind: _Operator, Lit: "+."}, "+."},
		{Token{Kind: _Int, Lit: "42", Int: 42}, "42"},
		{Token{Kind: _Float, Lit: "1e3", Float: 1000}, "1e3"},
		{Token{Kind: _Bool, Lit: "true", Bool: true}, "true"},
		{Token{Kind: _Bool, Lit: "false"}, "false"},
		{Token{Kind: _ArrayCreate, Lit: "create_array"}, "create_array"},
		{Token{Kind: _Let, Lit: "let"}, "let"},
		{Token{Kind: _LessMinus, Lit: "<-"}, "<-"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.tok.String(); got != tt.want {
				t.Errorf("Token.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Re-lexing the spelling of every token yields the same token sequence.
func TestTokenRoundTrip(t *testing.T) {
	src := `if then else let in rec fun not input output true false
		create_array Array.create Array.make ( ) , . ; : -> <-
		+ - * / +. -. *. /. = <> <= >= < > lxor lor land lsl lsr
		x y1 snake_case 42 2.5 1e10`

	first := lexAll(t, src)

	var spelled []string
	for _, tok := range first {
		spelled = append(spelled, tok.String())
	}
	second := lexAll(t, strings.Join(spelled, " "))

	if len(first) != len(second) {
		t.Fatalf("round trip produced %d tokens, want %d", len(second), len(first))
	}
	for i := range first {
		if first[i].Kind != second[i].Kind || first[i].String() != second[i].String() {
			t.Errorf("token %d: got %s %q, want %s %q",
				i, second[i].Kind, second[i], first[i].Kind, first[i])
		}
	}
}
