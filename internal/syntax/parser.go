package syntax

import (
	"fmt"

	"github.com/you-not-fish/mincaml/internal/optional"
	"github.com/you-not-fish/mincaml/internal/types"
)

// Parser performs syntax analysis on MinCaml source code.
//
// It keeps one token of lookahead (tok) and the token consumed before it
// (last), so that node ranges can end where the construct actually ended.
// The first error aborts parsing; there is no recovery.
type Parser struct {
	lex  *Lexer
	conf config

	tok  Token // next token to be parsed
	last Token // most recently consumed token
}

// NewParser creates a new Parser for the given source text.
func NewParser(text string, opts ...Option) *Parser {
	conf := newConfig(opts)
	return &Parser{
		lex:  newLexer(text, conf),
		conf: conf,
	}
}

// Parse parses text and returns its AST, or the first lex or parse
// error as a *Diagnostic.
func Parse(text string, opts ...Option) (*Root, error) {
	return NewParser(text, opts...).Parse()
}

// Warnings returns the lexer warnings reported so far.
func (p *Parser) Warnings() []*Diagnostic {
	return p.lex.Warnings()
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token.
func (p *Parser) next() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.last = p.tok
	p.tok = tok
	return nil
}

// got reports whether the current token has kind k.
// If so, it consumes the token.
func (p *Parser) got(k Kind) (bool, error) {
	if p.tok.Kind != k {
		return false, nil
	}
	return true, p.next()
}

// want consumes a token of kind k or reports "expected k" at loc.
func (p *Parser) want(k Kind, loc SourceLoc) error {
	if p.tok.Kind != k {
		return p.errorAt(loc, fmt.Sprintf("expected '%s'", k))
	}
	return p.next()
}

// isOp reports whether the current token is the operator spelled op.
func (p *Parser) isOp(op string) bool {
	return p.tok.Kind == _Operator && p.tok.Lit == op
}

// wantEqual consumes '=' or reports an error.
func (p *Parser) wantEqual() error {
	if !p.isOp("=") {
		return p.errorAt(p.tok.Range.Start, "expected '='")
	}
	return p.next()
}

// rangeFrom returns the range from start to the end of the last consumed token.
func (p *Parser) rangeFrom(start SourceLoc) SourceRange {
	return SourceRange{Start: start, End: p.last.Range.End}
}

// ----------------------------------------------------------------------------
// Error handling

// errorAt returns a parse error at loc.
func (p *Parser) errorAt(loc SourceLoc, msg string) *Diagnostic {
	return &Diagnostic{
		Loc:      loc,
		Msg:      msg,
		Severity: SeverityError,
		Stage:    StageParser,
		Filename: p.conf.filename,
		AtEOF:    p.tok.Kind == _EOF,
	}
}

// unexpected reports the current token as not starting an expression.
func (p *Parser) unexpected() *Diagnostic {
	if p.tok.Kind == _EOF {
		return p.errorAt(p.tok.Range.Start, "unexpected end of input")
	}
	return p.errorAt(p.tok.Range.Start, fmt.Sprintf("unexpected '%s'", p.tok))
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses the whole input. It may be called once per Parser.
func (p *Parser) Parse() (*Root, error) {
	if err := p.next(); err != nil {
		return nil, err
	}

	root := &Root{}
	for p.tok.Kind != _EOF {
		// e1; e2 at the top level is plain sequencing.
		if p.tok.Kind == _Semi {
			if err := p.next(); err != nil {
				return nil, err
			}
			continue
		}
		x, err := p.mustExpr(0)
		if err != nil {
			return nil, err
		}
		root.Exprs = append(root.Exprs, x)
	}

	if n := len(root.Exprs); n > 0 {
		root.rng = Span(root.Exprs[0].Range(), root.Exprs[n-1].Range())
	} else {
		root.rng = p.tok.Range
	}
	return root, nil
}

// ----------------------------------------------------------------------------
// Expressions

// mustExpr is like expr but reports an error if no expression starts here.
func (p *Parser) mustExpr(prec int) (Expr, error) {
	x, err := p.expr(prec)
	if err != nil {
		return nil, err
	}
	if x == nil {
		return nil, p.unexpected()
	}
	return x, nil
}

// expr parses an expression whose binary operators bind at least as
// tightly as prec. It returns nil, nil if no expression starts here.
func (p *Parser) expr(prec int) (Expr, error) {
	x, err := p.operand()
	if err != nil || x == nil {
		return x, err
	}
	return p.binaryExpr(x, prec)
}

// binaryExpr folds binary operators onto the left operand x.
// Implements precedence climbing; operators are left associative.
func (p *Parser) binaryExpr(x Expr, prec int) (Expr, error) {
	for p.tok.Kind == _Operator {
		form, ok := binaryForms[p.tok.Lit]
		if !ok {
			return x, nil
		}
		oprec := form.op.Precedence()
		if oprec < prec {
			return x, nil
		}

		if err := p.next(); err != nil {
			return nil, err
		}

		// Parse right operand with higher precedence (left associative)
		y, err := p.mustExpr(oprec + 1)
		if err != nil {
			return nil, err
		}
		x = makeBinary(form, x, y)
	}
	return x, nil
}

// makeBinary builds the node for x op y. Swapped or negated comparisons
// keep the range of the whole source comparison.
func makeBinary(form binaryForm, x, y Expr) Expr {
	rng := Span(x.Range(), y.Range())
	if form.swap {
		x, y = y, x
	}
	var e Expr = &BinaryExpr{Op: form.op, X: x, Y: y}
	e.setRange(rng)
	if form.not {
		e = &UnaryExpr{Op: Not, X: e}
		e.setRange(rng)
	}
	return e
}

// operand parses everything but a trailing binary operator chain:
// an atom with its array or application suffix, a prefix operation,
// if, let and let rec. It returns nil, nil if no operand starts here.
func (p *Parser) operand() (Expr, error) {
	a, err := p.simpleExpr()
	if err != nil {
		return nil, err
	}
	if a != nil {
		// The array check must come before application: a.(i) is not a
		// call of a.
		if p.tok.Kind == _Dot {
			return p.arrayAccess(a)
		}
		return p.application(a)
	}

	switch p.tok.Kind {
	case _Not:
		return p.unaryExpr(Not)

	case _Operator:
		switch p.tok.Lit {
		case "-":
			return p.unaryExpr(Neg)
		case "-.":
			return p.unaryExpr(FNeg)
		}

	case _If:
		return p.ifExpr()

	case _Let:
		return p.letExpr()

	case _ArrayCreate:
		// All aliases name the same builtin.
		fn := &Var{Name: arrayMake}
		fn.rng = p.tok.Range
		if err := p.next(); err != nil {
			return nil, err
		}
		return p.application(fn)
	}
	return nil, nil
}

// simpleExpr parses an atom: (), (e), a literal or a variable.
// It returns nil, nil if the current token does not start an atom.
func (p *Parser) simpleExpr() (Expr, error) {
	var x Expr
	switch p.tok.Kind {
	case _Lparen:
		return p.parenExpr()
	case _Bool:
		x = &BoolLit{Value: p.tok.Bool}
	case _Int:
		x = &IntLit{Value: p.tok.Int}
	case _Float:
		x = &FloatLit{Value: p.tok.Float}
	case _Ident:
		x = &Var{Name: p.tok.Lit}
	default:
		return nil, nil
	}
	x.setRange(p.tok.Range)
	return x, p.next()
}

// parenExpr parses () or ( e; ... ). The parentheses become part of the
// range of the inner expression, so even a leaf written (x) covers "(x)".
func (p *Parser) parenExpr() (Expr, error) {
	open := p.tok.Range.Start
	if err := p.next(); err != nil {
		return nil, err
	}

	if ok, err := p.got(_Rparen); err != nil {
		return nil, err
	} else if ok {
		u := &UnitLit{}
		u.rng = p.rangeFrom(open)
		return u, nil
	}

	x, err := p.seqExpr()
	if err != nil {
		return nil, err
	}
	if err := p.want(_Rparen, open); err != nil {
		return nil, err
	}
	x.setRange(p.rangeFrom(open))
	return x, nil
}

// arrayAccess parses a.(i) and a.(i) <- v after the atom a.
// Reads may be chained: a.(i).(j).
func (p *Parser) arrayAccess(a Expr) (Expr, error) {
	for p.tok.Kind == _Dot {
		if err := p.next(); err != nil {
			return nil, err
		}
		if p.tok.Kind != _Lparen {
			return nil, p.errorAt(p.tok.Range.Start, "expected '(' after '.'")
		}
		open := p.tok.Range.Start
		if err := p.next(); err != nil {
			return nil, err
		}
		index, err := p.mustExpr(0)
		if err != nil {
			return nil, err
		}
		if err := p.want(_Rparen, open); err != nil {
			return nil, err
		}

		if ok, err := p.got(_LessMinus); err != nil {
			return nil, err
		} else if ok {
			value, err := p.mustExpr(0)
			if err != nil {
				return nil, err
			}
			put := &ArrayPut{Array: a, Index: index, Value: value}
			put.rng = p.rangeFrom(a.Pos())
			return put, nil
		}

		get := &ArrayGet{Array: a, Index: index}
		get.rng = p.rangeFrom(a.Pos())
		a = get
	}
	return a, nil
}

// application collects the atoms following fn as call arguments.
// Without arguments fn is returned unchanged.
func (p *Parser) application(fn Expr) (Expr, error) {
	var args []Expr
	for {
		arg, err := p.simpleExpr()
		if err != nil {
			return nil, err
		}
		if arg == nil {
			break
		}
		args = append(args, arg)
	}
	if len(args) == 0 {
		return fn, nil
	}

	call := &CallExpr{Fun: fn, Args: args}
	call.rng = p.rangeFrom(fn.Pos())
	return call, nil
}

// unaryExpr parses not X, -X or -.X; the operator is the current token.
func (p *Parser) unaryExpr(op UnaryOp) (Expr, error) {
	start := p.tok.Range.Start
	if err := p.next(); err != nil {
		return nil, err
	}
	x, err := p.mustExpr(op.Precedence())
	if err != nil {
		return nil, err
	}
	u := &UnaryExpr{Op: op, X: x}
	u.rng = p.rangeFrom(start)
	return u, nil
}

// ifExpr parses: if cond then e1 [else e2]
func (p *Parser) ifExpr() (Expr, error) {
	n := &IfExpr{IfRange: p.tok.Range}
	if err := p.next(); err != nil {
		return nil, err
	}

	var err error
	if n.Cond, err = p.mustExpr(0); err != nil {
		return nil, err
	}
	if err := p.want(_Then, p.tok.Range.Start); err != nil {
		return nil, err
	}
	if n.Then, err = p.mustExpr(0); err != nil {
		return nil, err
	}

	if p.tok.Kind == _Else {
		n.ElseRange = optional.Some(p.tok.Range)
		if err := p.next(); err != nil {
			return nil, err
		}
		e, err := p.mustExpr(0)
		if err != nil {
			return nil, err
		}
		n.Else = optional.Some(e)
	}

	n.rng = p.rangeFrom(n.IfRange.Start)
	return n, nil
}

// letExpr parses: let binder = body [in next] and dispatches let rec.
//
// Without "in" the binding ends the surrounding sequence and stands as a
// top-level expression of its own. The grammar does not settle whether
// that form should be an error; it is accepted here.
func (p *Parser) letExpr() (Expr, error) {
	start := p.tok.Range.Start
	if err := p.next(); err != nil {
		return nil, err
	}
	if p.tok.Kind == _Rec {
		if err := p.next(); err != nil {
			return nil, err
		}
		return p.letRecExpr(start)
	}

	b, err := p.binder("malformed let binding")
	if err != nil {
		return nil, err
	}
	if err := p.wantEqual(); err != nil {
		return nil, err
	}
	body, err := p.mustExpr(0)
	if err != nil {
		return nil, err
	}
	next, err := p.inExpr()
	if err != nil {
		return nil, err
	}

	n := &LetExpr{Name: b.Name, NameRange: b.Range, Type: b.Type, Body: body, Next: next}
	n.rng = p.rangeFrom(start)
	return n, nil
}

// letRecExpr parses the rest of: let rec name params [: type] = body [in next]
func (p *Parser) letRecExpr(start SourceLoc) (Expr, error) {
	if p.tok.Kind != _Ident {
		return nil, p.errorAt(p.tok.Range.Start, "expected function name after 'let rec'")
	}
	n := &LetRecExpr{Name: p.tok.Lit, NameRange: p.tok.Range}
	if err := p.next(); err != nil {
		return nil, err
	}

	for p.tok.Kind == _Ident || p.tok.Kind == _Lparen {
		param, err := p.binder("malformed let rec argument list")
		if err != nil {
			return nil, err
		}
		n.Params = append(n.Params, param)
	}
	if len(n.Params) == 0 {
		return nil, p.errorAt(p.tok.Range.Start, "malformed let rec argument list")
	}

	n.Result = types.NewVar()
	if ok, err := p.got(_Colon); err != nil {
		return nil, err
	} else if ok {
		if n.Result, err = p.typeExpr(); err != nil {
			return nil, err
		}
	}

	if err := p.wantEqual(); err != nil {
		return nil, err
	}
	var err error
	if n.Body, err = p.mustExpr(0); err != nil {
		return nil, err
	}
	if n.Next, err = p.inExpr(); err != nil {
		return nil, err
	}

	n.rng = p.rangeFrom(start)
	return n, nil
}

// inExpr parses an optional "in next" continuation. The continuation
// extends over a whole sequence: let x = 1 in f x; g x binds x in both.
func (p *Parser) inExpr() (optional.Optional[Expr], error) {
	ok, err := p.got(_In)
	if err != nil || !ok {
		return optional.None[Expr](), err
	}
	x, err := p.seqExpr()
	if err != nil {
		return optional.None[Expr](), err
	}
	return optional.Some(x), nil
}

// seqName is the name bound to the discarded left side of e1; e2.
// Identifiers cannot start with '_', so it never captures a user name.
const seqName = "_"

// seqExpr parses e1; e2; ... inside a scope. Each e1; rest becomes
// let _ : unit = e1 in rest, with the name range on the ';'.
// A let without "in" ends the sequence, and a trailing ';' before ')'
// or end of input is allowed.
func (p *Parser) seqExpr() (Expr, error) {
	x, err := p.mustExpr(0)
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != _Semi || endsSequence(x) {
		return x, nil
	}

	semi := p.tok.Range
	if err := p.next(); err != nil {
		return nil, err
	}
	if p.tok.Kind == _Rparen || p.tok.Kind == _EOF {
		return x, nil
	}
	rest, err := p.seqExpr()
	if err != nil {
		return nil, err
	}

	n := &LetExpr{
		Name:      seqName,
		NameRange: semi,
		Type:      types.Typ[types.Unit],
		Body:      x,
		Next:      optional.Some(rest),
	}
	n.rng = Span(x.Range(), rest.Range())
	return n, nil
}

// endsSequence reports whether x is a let or let rec without "in".
func endsSequence(x Expr) bool {
	switch x := x.(type) {
	case *LetExpr:
		return x.Next.IsNone()
	case *LetRecExpr:
		return x.Next.IsNone()
	}
	return false
}

// binder parses a bound name, either bare or annotated:
//
//	name
//	( name : type )
//
// A bare name gets a fresh unresolved type. Structural errors are reported
// with msg at the start of the binder.
func (p *Parser) binder(msg string) (Param, error) {
	start := p.tok.Range.Start

	if p.tok.Kind == _Ident {
		b := Param{Name: p.tok.Lit, Type: types.NewVar(), Range: p.tok.Range}
		return b, p.next()
	}
	if p.tok.Kind != _Lparen {
		return Param{}, p.errorAt(start, msg)
	}

	if err := p.next(); err != nil {
		return Param{}, err
	}
	if p.tok.Kind != _Ident {
		return Param{}, p.errorAt(start, msg)
	}
	b := Param{Name: p.tok.Lit}
	if err := p.next(); err != nil {
		return Param{}, err
	}
	if p.tok.Kind != _Colon {
		return Param{}, p.errorAt(start, msg)
	}
	if err := p.next(); err != nil {
		return Param{}, err
	}

	var err error
	if b.Type, err = p.typeExpr(); err != nil {
		return Param{}, err
	}
	if p.tok.Kind != _Rparen {
		return Param{}, p.errorAt(start, msg)
	}
	if err := p.next(); err != nil {
		return Param{}, err
	}
	b.Range = p.rangeFrom(start)
	return b, nil
}

// typeExpr parses a type annotation: a basic type name followed by any
// number of "array" suffixes, e.g. int, float array array.
func (p *Parser) typeExpr() (types.Type, error) {
	if p.tok.Kind != _Ident {
		return nil, p.errorAt(p.tok.Range.Start, "expected type")
	}
	b := types.LookupBasic(p.tok.Lit)
	if b == nil {
		return nil, p.errorAt(p.tok.Range.Start, fmt.Sprintf("unknown type '%s'", p.tok.Lit))
	}
	var t types.Type = b
	if err := p.next(); err != nil {
		return nil, err
	}
	for p.tok.Kind == _Ident && p.tok.Lit == "array" {
		t = types.NewArray(t)
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	return t, nil
}
