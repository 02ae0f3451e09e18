package syntax

import (
	"github.com/you-not-fish/mincaml/internal/optional"
	"github.com/you-not-fish/mincaml/internal/types"
)

// ----------------------------------------------------------------------------
// Interfaces
//
// The set of expression nodes is closed: Expr has an unexported marker
// method, so only this package can add variants and consumers can switch
// over them exhaustively.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Range() SourceRange // exact source extent of the node
	Pos() SourceLoc     // first character belonging to the node
	End() SourceLoc     // first character after the node
	aNode()             // marker method to restrict implementations to this package
	setRange(r SourceRange)
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	rng SourceRange
}

func (n *node) Range() SourceRange       { return n.rng }
func (n *node) Pos() SourceLoc           { return n.rng.Start }
func (n *node) End() SourceLoc           { return n.rng.End }
func (n *node) aNode()                   {}
func (n *node) setRange(rng SourceRange) { n.rng = rng }

// expr is embedded in all expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// ----------------------------------------------------------------------------
// Root

// Root is a parsed compilation unit: top-level expressions in evaluation
// order. Its range spans from the first expression to the last.
type Root struct {
	node
	Exprs []Expr
}

// ----------------------------------------------------------------------------
// Literals and variables

// BoolLit represents true or false.
type BoolLit struct {
	expr
	Value bool
}

// IntLit represents an integer literal.
type IntLit struct {
	expr
	Value int64
}

// FloatLit represents a floating point literal.
type FloatLit struct {
	expr
	Value float64
}

// UnitLit represents the unit value ().
type UnitLit struct {
	expr
}

// Var represents a reference to a variable.
type Var struct {
	expr
	Name string
}

// ----------------------------------------------------------------------------
// Operators

// UnaryExpr represents a prefix operation: not X, -X, -.X
type UnaryExpr struct {
	expr
	Op UnaryOp
	X  Expr
}

// BinaryExpr represents an infix operation: X Op Y
type BinaryExpr struct {
	expr
	Op BinaryOp
	X  Expr // left operand
	Y  Expr // right operand
}

// ----------------------------------------------------------------------------
// Control and binding

// IfExpr represents: if Cond then Then [else Else]
// A missing else branch evaluates to unit.
type IfExpr struct {
	expr
	Cond      Expr
	Then      Expr
	Else      optional.Optional[Expr]
	IfRange   SourceRange                    // range of the if keyword
	ElseRange optional.Optional[SourceRange] // range of the else keyword
}

// LetExpr represents: let Name = Body [in Next]
type LetExpr struct {
	expr
	Name      string
	NameRange SourceRange
	Type      types.Type // declared type; an unresolved *types.Var if not annotated
	Body      Expr
	Next      optional.Optional[Expr]
}

// Param is a parameter of a let rec function.
type Param struct {
	Name  string
	Type  types.Type // an unresolved *types.Var if not annotated
	Range SourceRange
}

// LetRecExpr represents: let rec Name Params = Body [in Next]
type LetRecExpr struct {
	expr
	Name      string
	NameRange SourceRange
	Result    types.Type // declared return type; an unresolved *types.Var if not annotated
	Params    []Param
	Body      Expr
	Next      optional.Optional[Expr]
}

// ----------------------------------------------------------------------------
// Arrays and calls

// ArrayGet represents: Array.(Index)
type ArrayGet struct {
	expr
	Array Expr
	Index Expr
}

// ArrayPut represents: Array.(Index) <- Value
type ArrayPut struct {
	expr
	Array Expr
	Index Expr
	Value Expr
}

// CallExpr represents function application by juxtaposition: Fun Args...
// Args is never empty.
type CallExpr struct {
	expr
	Fun  Expr
	Args []Expr
}
