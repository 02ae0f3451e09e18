package syntax

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/you-not-fish/mincaml/internal/optional"
)

// Fprint writes a textual representation of the AST to w.
// Each node is printed on its own line with its source range; children
// are indented below their parent.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

// section prints a labeled child block.
func (p *printer) section(label string, nodes ...Expr) {
	p.printf("%s:\n", label)
	p.indent++
	for _, n := range nodes {
		p.print(n)
	}
	p.indent--
}

func (p *printer) optSection(label string, x optional.Optional[Expr]) {
	if e, ok := x.Get(); ok {
		p.section(label, e)
	}
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	switch n := node.(type) {
	case *Root:
		p.printf("Root %s\n", n.rng)
		p.indent++
		for _, x := range n.Exprs {
			p.print(x)
		}
		p.indent--

	case *BoolLit:
		p.printf("BoolLit %s %t\n", n.rng, n.Value)

	case *IntLit:
		p.printf("IntLit %s %d\n", n.rng, n.Value)

	case *FloatLit:
		p.printf("FloatLit %s %s\n", n.rng, formatFloat(n.Value))

	case *UnitLit:
		p.printf("UnitLit %s\n", n.rng)

	case *Var:
		p.printf("Var %s %q\n", n.rng, n.Name)

	case *UnaryExpr:
		p.printf("UnaryExpr %s %s\n", n.rng, n.Op)
		p.indent++
		p.print(n.X)
		p.indent--

	case *BinaryExpr:
		p.printf("BinaryExpr %s %s\n", n.rng, n.Op)
		p.indent++
		p.section("X", n.X)
		p.section("Y", n.Y)
		p.indent--

	case *IfExpr:
		p.printf("IfExpr %s\n", n.rng)
		p.indent++
		p.section("Cond", n.Cond)
		p.section("Then", n.Then)
		p.optSection("Else", n.Else)
		p.indent--

	case *LetExpr:
		p.printf("LetExpr %s %q : %s\n", n.rng, n.Name, n.Type)
		p.indent++
		p.section("Body", n.Body)
		p.optSection("Next", n.Next)
		p.indent--

	case *LetRecExpr:
		p.printf("LetRecExpr %s %q : %s\n", n.rng, n.Name, n.Result)
		p.indent++
		p.printf("Params:\n")
		p.indent++
		for _, param := range n.Params {
			p.printf("%s %q : %s\n", param.Range, param.Name, param.Type)
		}
		p.indent--
		p.section("Body", n.Body)
		p.optSection("Next", n.Next)
		p.indent--

	case *ArrayGet:
		p.printf("ArrayGet %s\n", n.rng)
		p.indent++
		p.section("Array", n.Array)
		p.section("Index", n.Index)
		p.indent--

	case *ArrayPut:
		p.printf("ArrayPut %s\n", n.rng)
		p.indent++
		p.section("Array", n.Array)
		p.section("Index", n.Index)
		p.section("Value", n.Value)
		p.indent--

	case *CallExpr:
		p.printf("CallExpr %s\n", n.rng)
		p.indent++
		p.section("Fun", n.Fun)
		p.section("Args", n.Args...)
		p.indent--

	default:
		p.printf("<%T>\n", node)
	}
}

// formatFloat formats v so that it always reads back as a float.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEn") {
		s += "."
	}
	return s
}

// ExprString returns a compact S-expression form of x, e.g.
// (+ 1 (* 2 3)) for 1 + 2 * 3. Source ranges are omitted.
func ExprString(x Expr) string {
	var b strings.Builder
	writeExpr(&b, x)
	return b.String()
}

func writeExpr(b *strings.Builder, x Expr) {
	switch n := x.(type) {
	case nil:
		b.WriteString("<nil>")
	case *BoolLit:
		b.WriteString(strconv.FormatBool(n.Value))
	case *IntLit:
		b.WriteString(strconv.FormatInt(n.Value, 10))
	case *FloatLit:
		b.WriteString(formatFloat(n.Value))
	case *UnitLit:
		b.WriteString("()")
	case *Var:
		b.WriteString(n.Name)
	case *UnaryExpr:
		writeList(b, n.Op.String(), n.X)
	case *BinaryExpr:
		writeList(b, n.Op.String(), n.X, n.Y)
	case *IfExpr:
		if e, ok := n.Else.Get(); ok {
			writeList(b, "if", n.Cond, n.Then, e)
		} else {
			writeList(b, "if", n.Cond, n.Then)
		}
	case *LetExpr:
		b.WriteString("(let ")
		b.WriteString(n.Name)
		b.WriteByte(' ')
		writeExpr(b, n.Body)
		writeNext(b, n.Next)
		b.WriteByte(')')
	case *LetRecExpr:
		b.WriteString("(letrec ")
		b.WriteString(n.Name)
		b.WriteString(" (")
		for i, param := range n.Params {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(param.Name)
		}
		b.WriteString(") ")
		writeExpr(b, n.Body)
		writeNext(b, n.Next)
		b.WriteByte(')')
	case *ArrayGet:
		writeList(b, "get", n.Array, n.Index)
	case *ArrayPut:
		writeList(b, "put", n.Array, n.Index, n.Value)
	case *CallExpr:
		writeList(b, "call", append([]Expr{n.Fun}, n.Args...)...)
	default:
		fmt.Fprintf(b, "<%T>", x)
	}
}

func writeList(b *strings.Builder, head string, elems ...Expr) {
	b.WriteByte('(')
	b.WriteString(head)
	for _, e := range elems {
		b.WriteByte(' ')
		writeExpr(b, e)
	}
	b.WriteByte(')')
}

func writeNext(b *strings.Builder, next optional.Optional[Expr]) {
	if e, ok := next.Get(); ok {
		b.WriteByte(' ')
		writeExpr(b, e)
	}
}
