// Package types implements the MinCaml type representation.
// The front end only stores types in declared-type slots; inference and
// checking happen in later stages that fill the placeholder variables.
package types

// Type is the interface implemented by all types.
// The set of implementations is closed: *Basic, *Func, *Tuple, *Array and *Var.
type Type interface {
	// Underlying returns the type with resolved placeholders followed.
	// For an unresolved *Var it returns the variable itself.
	Underlying() Type

	// String returns the type in ML syntax.
	String() string

	// Code returns the one-letter code used when minting temporary names.
	Code() string

	// aType is a marker method to restrict implementations to this package.
	aType()
}

// typ is a base struct for all type implementations.
type typ struct{}

func (typ) aType() {}
