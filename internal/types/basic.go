package types

// BasicKind describes the kind of basic type.
type BasicKind int

const (
	Unit BasicKind = iota
	Bool
	Int
	Float
)

// Basic represents one of the predeclared types: unit, bool, int, float.
type Basic struct {
	typ
	kind BasicKind
	name string
	code string
}

// Kind returns the kind of the basic type.
func (b *Basic) Kind() BasicKind {
	return b.kind
}

// Name returns the name of the basic type.
func (b *Basic) Name() string {
	return b.name
}

// Underlying implements Type.
func (b *Basic) Underlying() Type {
	return b
}

// String implements Type.
func (b *Basic) String() string {
	return b.name
}

// Code implements Type.
func (b *Basic) Code() string {
	return b.code
}

// Typ holds the predeclared basic types, indexed by BasicKind.
var Typ = []*Basic{
	Unit:  {kind: Unit, name: "unit", code: "u"},
	Bool:  {kind: Bool, name: "bool", code: "b"},
	Int:   {kind: Int, name: "int", code: "i"},
	Float: {kind: Float, name: "float", code: "d"},
}

// LookupBasic returns the basic type spelled name in source, or nil.
func LookupBasic(name string) *Basic {
	for _, b := range Typ {
		if b.name == name {
			return b
		}
	}
	return nil
}
