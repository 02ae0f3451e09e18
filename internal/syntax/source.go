package syntax

import "unicode/utf8"

// Scanner is a cursor over source text with one character of lookahead.
// It tracks the location of the current character; it never backtracks.
type Scanner struct {
	buf  string    // source text
	offs int       // byte offset of the character after ch
	ch   rune      // current character, -1 at end of input
	loc  SourceLoc // location of ch
}

// NewScanner returns a Scanner positioned at the first character of text.
// Invalid UTF-8 bytes are read as utf8.RuneError, one byte each.
func NewScanner(text string) *Scanner {
	s := &Scanner{
		buf: text,
		loc: SourceLoc{Line: 1, Column: 1, Offset: 0},
	}
	s.read()
	return s
}

// read decodes the character at offs into ch.
func (s *Scanner) read() {
	if s.offs >= len(s.buf) {
		s.ch = -1
		return
	}
	r, width := utf8.DecodeRuneInString(s.buf[s.offs:])
	s.ch = r
	s.offs += width
}

// CurrentChar returns the character at the cursor without consuming it.
// ok is false at end of input.
func (s *Scanner) CurrentChar() (ch rune, ok bool) {
	if s.ch < 0 {
		return 0, false
	}
	return s.ch, true
}

// Peek returns the character after the current one without consuming
// anything. ok is false if there is no such character.
func (s *Scanner) Peek() (ch rune, ok bool) {
	if s.ch < 0 || s.offs >= len(s.buf) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.buf[s.offs:])
	return r, true
}

// ConsumeChar advances the cursor by one character.
// A newline moves to column 1 of the next line; any other character moves
// one column right. The offset always grows by one. At end of input
// ConsumeChar does nothing.
func (s *Scanner) ConsumeChar() {
	if s.ch < 0 {
		return
	}
	if s.ch == '\n' {
		s.loc.Line++
		s.loc.Column = 1
	} else {
		s.loc.Column++
	}
	s.loc.Offset++
	s.read()
}

// Loc returns the location of the current character, or of the end of
// input once everything is consumed.
func (s *Scanner) Loc() SourceLoc {
	return s.loc
}

// AtEOF reports whether all input has been consumed.
func (s *Scanner) AtEOF() bool {
	return s.ch < 0
}

// Character classification helpers

// isLetter reports whether r is an ASCII letter.
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

// isDigit reports whether r is a decimal digit (0-9).
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isIdentChar reports whether r may continue an identifier.
// Dots are handled separately by the lexer.
func isIdentChar(r rune) bool {
	return isLetter(r) || isDigit(r) || r == '_'
}

// isWhitespace reports whether r is skipped between tokens.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// isOperatorChar reports whether r can occur in an operator run.
func isOperatorChar(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '=', '<', '>':
		return true
	}
	return false
}
