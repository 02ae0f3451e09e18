package syntax

import "github.com/you-not-fish/mincaml/internal/optional"

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order, visiting children in
// source order. If visitor returns false, children are not visited.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Root:
		for _, x := range n.Exprs {
			Walk(x, v)
		}

	case *UnaryExpr:
		Walk(n.X, v)

	case *BinaryExpr:
		Walk(n.X, v)
		Walk(n.Y, v)

	case *IfExpr:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		walkOptional(n.Else, v)

	case *LetExpr:
		Walk(n.Body, v)
		walkOptional(n.Next, v)

	case *LetRecExpr:
		Walk(n.Body, v)
		walkOptional(n.Next, v)

	case *ArrayGet:
		Walk(n.Array, v)
		Walk(n.Index, v)

	case *ArrayPut:
		Walk(n.Array, v)
		Walk(n.Index, v)
		Walk(n.Value, v)

	case *CallExpr:
		Walk(n.Fun, v)
		for _, a := range n.Args {
			Walk(a, v)
		}

	// Leaf nodes: BoolLit, IntLit, FloatLit, UnitLit, Var
	// No children to visit
	}
}

func walkOptional(x optional.Optional[Expr], v Visitor) {
	if e, ok := x.Get(); ok {
		Walk(e, v)
	}
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}
