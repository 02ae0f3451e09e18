package syntax

import "fmt"

// UnaryPrec is the binding power of the prefix operators not, - and -.
// It sits above every binary operator. The value is provisional and should be
// revisited if a tighter binary operator (exponentiation, say) is added.
const UnaryPrec = 10

// UnaryOp is a prefix operator.
type UnaryOp uint8

const (
	Not  UnaryOp = iota // not
	Neg                 // -
	FNeg                // -.
)

var unaryOpNames = [...]string{
	Not:  "not",
	Neg:  "-",
	FNeg: "-.",
}

// String returns the operator as spelled in source.
func (op UnaryOp) String() string {
	if int(op) < len(unaryOpNames) {
		return unaryOpNames[op]
	}
	return fmt.Sprintf("UnaryOp(%d)", op)
}

// Precedence returns the binding power of the operator.
func (op UnaryOp) Precedence() int {
	return UnaryPrec
}

// BinaryOp is an infix operator.
type BinaryOp uint8

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Xor
	Or
	And
	Sll
	Srl
	FAdd
	FSub
	FMul
	FDiv
	Equal
	LessEqual
)

var binaryOpNames = [...]string{
	Add:       "+",
	Sub:       "-",
	Mul:       "*",
	Div:       "/",
	Xor:       "lxor",
	Or:        "lor",
	And:       "land",
	Sll:       "lsl",
	Srl:       "lsr",
	FAdd:      "+.",
	FSub:      "-.",
	FMul:      "*.",
	FDiv:      "/.",
	Equal:     "=",
	LessEqual: "<=",
}

// String returns the operator as spelled in source.
func (op BinaryOp) String() string {
	if int(op) < len(binaryOpNames) {
		return binaryOpNames[op]
	}
	return fmt.Sprintf("BinaryOp(%d)", op)
}

// Precedence returns the binding power of the operator (higher binds tighter):
//
//	1: = <=
//	2: lxor lor land
//	3: + - +. -.
//	4: * / *. /.
//	6: lsl lsr
func (op BinaryOp) Precedence() int {
	switch op {
	case Equal, LessEqual:
		return 1
	case Xor, Or, And:
		return 2
	case Add, Sub, FAdd, FSub:
		return 3
	case Mul, Div, FMul, FDiv:
		return 4
	case Sll, Srl:
		return 6
	}
	return 0
}

// binaryForm describes how an operator spelling maps onto the AST.
// Comparisons other than = and <= are expressed with swapped operands
// and/or an enclosing not.
type binaryForm struct {
	op   BinaryOp
	swap bool // operands are exchanged
	not  bool // result is negated
}

var binaryForms = map[string]binaryForm{
	"+":    {op: Add},
	"-":    {op: Sub},
	"*":    {op: Mul},
	"/":    {op: Div},
	"lxor": {op: Xor},
	"lor":  {op: Or},
	"land": {op: And},
	"lsl":  {op: Sll},
	"lsr":  {op: Srl},
	"+.":   {op: FAdd},
	"-.":   {op: FSub},
	"*.":   {op: FMul},
	"/.":   {op: FDiv},

	"=":  {op: Equal},
	"<>": {op: Equal, not: true},
	"<=": {op: LessEqual},
	">=": {op: LessEqual, swap: true},
	"<":  {op: LessEqual, swap: true, not: true},
	">":  {op: LessEqual, not: true},
}
