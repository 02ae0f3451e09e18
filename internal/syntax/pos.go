package syntax

import "fmt"

// SourceLoc is a location in the source text.
// The zero value is an invalid location.
type SourceLoc struct {
	Line   int // 1-based line number
	Column int // 1-based column number, counted in code points
	Offset int // 0-based number of code points before this location
}

// String returns the location in the format "line:col".
func (l SourceLoc) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// IsValid reports whether the location is valid.
// A location is valid if line > 0.
func (l SourceLoc) IsValid() bool {
	return l.Line > 0
}

// SourceRange is the half-open range [Start, End) of source text.
type SourceRange struct {
	Start SourceLoc // inclusive
	End   SourceLoc // exclusive
}

// String returns the range in the format "line:col-line:col".
func (r SourceRange) String() string {
	return r.Start.String() + "-" + r.End.String()
}

// IsValid reports whether both ends are valid and End does not precede Start.
func (r SourceRange) IsValid() bool {
	return r.Start.IsValid() && r.End.IsValid() && r.End.Offset >= r.Start.Offset
}

// Len returns the number of code points covered by the range.
func (r SourceRange) Len() int {
	return r.End.Offset - r.Start.Offset
}

// Contains reports whether o lies within r.
func (r SourceRange) Contains(o SourceRange) bool {
	return r.Start.Offset <= o.Start.Offset && o.End.Offset <= r.End.Offset
}

// Span returns the range from the start of from to the end of to.
func Span(from, to SourceRange) SourceRange {
	return SourceRange{Start: from.Start, End: to.End}
}
