// Package syntax implements lexical and syntactic analysis for MinCaml.
package syntax

import (
	"fmt"
	"strconv"
)

// Kind is the type of a lexical token.
type Kind uint8

const (
	// Special tokens
	_EOF     Kind = iota // end of file
	_Comment             // (* ... *), never seen by the parser

	// Literals
	_Bool  // true, false
	_Int   // 123
	_Float // 1.5, 1e3, 10.
	_Ident // foo, x1, print_int

	// Operator with its spelling in Token.Lit: + - * / +. -. *. /. = <> <= >= < >
	// and the word operators lxor lor land lsl lsr.
	_Operator

	// Keywords
	_If
	_Then
	_Else
	_Let
	_In
	_Rec
	_Fun
	_Not
	_ArrayCreate // create_array, Array.create, Array.make
	_Input
	_Output

	// Punctuation
	_Lparen    // (
	_Rparen    // )
	_Comma     // ,
	_Dot       // .
	_Semi      // ;
	_Colon     // :
	_Arrow     // ->
	_LessMinus // <-

	kindCount
)

// kindNames maps kinds to their string representation.
var kindNames = [...]string{
	_EOF:     "EOF",
	_Comment: "COMMENT",

	_Bool:  "BOOL",
	_Int:   "INT",
	_Float: "FLOAT",
	_Ident: "IDENT",

	_Operator: "OP",

	_If:          "if",
	_Then:        "then",
	_Else:        "else",
	_Let:         "let",
	_In:          "in",
	_Rec:         "rec",
	_Fun:         "fun",
	_Not:         "not",
	_ArrayCreate: arrayMake,
	_Input:       "input",
	_Output:      "output",

	_Lparen:    "(",
	_Rparen:    ")",
	_Comma:     ",",
	_Dot:       ".",
	_Semi:      ";",
	_Colon:     ":",
	_Arrow:     "->",
	_LessMinus: "<-",
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// IsKeyword reports whether k is a keyword.
func (k Kind) IsKeyword() bool {
	return k >= _If && k <= _Output
}

// IsLiteral reports whether k is a boolean, integer or float literal.
func (k Kind) IsLiteral() bool {
	return k >= _Bool && k <= _Float
}

// IsPunct reports whether k is punctuation.
func (k Kind) IsPunct() bool {
	return k >= _Lparen && k <= _LessMinus
}

// IsEOF reports whether k is the end-of-file kind.
func (k Kind) IsEOF() bool {
	return k == _EOF
}

// Token is a lexical token with its source range.
type Token struct {
	Kind  Kind
	Range SourceRange
	Lit   string // source text of the token

	// Decoded literal values; only the one matching Kind is set.
	Bool  bool
	Int   int64
	Float float64
}

// String returns the canonical spelling of the token. Keywords and
// punctuation round-trip exactly; other tokens return their source text.
func (t Token) String() string {
	switch t.Kind {
	case _Ident, _Operator, _Int, _Float, _Comment, _ArrayCreate:
		return t.Lit
	case _Bool:
		return strconv.FormatBool(t.Bool)
	}
	return t.Kind.String()
}

// IsEOF reports whether t is the end-of-file token.
func (t Token) IsEOF() bool {
	return t.Kind == _EOF
}

// arrayMake is the builtin every array constructor alias stands for.
const arrayMake = "Array.make"

// keywords maps reserved words to their kind.
// Word operators map to _Operator and keep their spelling in Token.Lit.
var keywords = map[string]Kind{
	"if":     _If,
	"then":   _Then,
	"else":   _Else,
	"let":    _Let,
	"in":     _In,
	"rec":    _Rec,
	"fun":    _Fun,
	"not":    _Not,
	"input":  _Input,
	"output": _Output,

	"true":  _Bool,
	"false": _Bool,

	"create_array": _ArrayCreate,
	"Array.create": _ArrayCreate,
	"Array.make":   _ArrayCreate,

	"lxor": _Operator,
	"lor":  _Operator,
	"land": _Operator,
	"lsl":  _Operator,
	"lsr":  _Operator,
}

// LookupKeyword returns the kind for the given identifier string.
// If the identifier is not reserved, it returns the identifier kind.
func LookupKeyword(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return _Ident
}

// punctuation maps characters that form a token on their own.
// '(' is absent because it may open a comment.
var punctuation = map[rune]Kind{
	')': _Rparen,
	',': _Comma,
	'.': _Dot,
	';': _Semi,
	':': _Colon,
}
