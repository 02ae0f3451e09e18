package types

import "strings"

// Func represents a function type: p1 -> p2 -> ... -> result.
type Func struct {
	typ
	params []Type
	result Type
}

// NewFunc creates a new function type.
func NewFunc(params []Type, result Type) *Func {
	return &Func{params: params, result: result}
}

// Params returns the parameter types.
func (f *Func) Params() []Type {
	return f.params
}

// NumParams returns the number of parameters.
func (f *Func) NumParams() int {
	return len(f.params)
}

// Param returns the i'th parameter type.
func (f *Func) Param(i int) Type {
	return f.params[i]
}

// Result returns the result type.
func (f *Func) Result() Type {
	return f.result
}

// Underlying implements Type.
func (f *Func) Underlying() Type {
	return f
}

// String implements Type.
func (f *Func) String() string {
	var buf strings.Builder
	for _, p := range f.params {
		// Arrows are right associative, so a function parameter needs parens.
		if _, ok := p.Underlying().(*Func); ok {
			buf.WriteString("(" + p.String() + ")")
		} else {
			buf.WriteString(p.String())
		}
		buf.WriteString(" -> ")
	}
	buf.WriteString(f.result.String())
	return buf.String()
}

// Code implements Type.
func (f *Func) Code() string {
	return "f"
}

// Tuple represents a tuple type: e1 * e2 * ...
type Tuple struct {
	typ
	elems []Type
}

// NewTuple creates a new tuple type.
func NewTuple(elems []Type) *Tuple {
	return &Tuple{elems: elems}
}

// Elems returns the element types.
func (t *Tuple) Elems() []Type {
	return t.elems
}

// Len returns the number of elements.
func (t *Tuple) Len() int {
	return len(t.elems)
}

// Underlying implements Type.
func (t *Tuple) Underlying() Type {
	return t
}

// String implements Type.
func (t *Tuple) String() string {
	parts := make([]string, len(t.elems))
	for i, e := range t.elems {
		parts[i] = operandString(e)
	}
	return strings.Join(parts, " * ")
}

// Code implements Type.
func (t *Tuple) Code() string {
	return "t"
}

// Array represents an array type: elem array.
type Array struct {
	typ
	elem Type
}

// NewArray creates a new array type with the given element type.
func NewArray(elem Type) *Array {
	return &Array{elem: elem}
}

// Elem returns the array element type.
func (a *Array) Elem() Type {
	return a.elem
}

// Underlying implements Type.
func (a *Array) Underlying() Type {
	return a
}

// String implements Type.
func (a *Array) String() string {
	return operandString(a.elem) + " array"
}

// Code implements Type.
func (a *Array) Code() string {
	return "a"
}

// operandString formats t for use inside a tuple or before a postfix
// constructor, adding parens around functions and tuples.
func operandString(t Type) string {
	switch t.Underlying().(type) {
	case *Func, *Tuple:
		return "(" + t.String() + ")"
	}
	return t.String()
}
