package types

// Var is a type placeholder. The parser creates unresolved variables for
// slots the source does not annotate; inference resolves them later.
type Var struct {
	typ
	ref Type // nil while unresolved
}

// NewVar returns a fresh unresolved type variable.
func NewVar() *Var {
	return &Var{}
}

// Resolved returns the type the variable was resolved to, if any.
func (v *Var) Resolved() (Type, bool) {
	return v.ref, v.ref != nil
}

// Resolve binds the variable to t.
// It panics if v is already resolved or if t is, or resolves to, v itself.
func (v *Var) Resolve(t Type) {
	if v.ref != nil {
		panic("types: type variable resolved twice")
	}
	if t.Underlying() == Type(v) {
		panic("types: type variable resolved to itself")
	}
	v.ref = t
}

// Underlying implements Type.
func (v *Var) Underlying() Type {
	if v.ref == nil {
		return v
	}
	return v.ref.Underlying()
}

// String implements Type.
func (v *Var) String() string {
	if v.ref == nil {
		return "'_"
	}
	return v.ref.String()
}

// Code implements Type.
// An unresolved variable has no code; asking for one is a caller bug.
func (v *Var) Code() string {
	if v.ref == nil {
		panic("types: Code of unresolved type variable")
	}
	return v.ref.Code()
}
