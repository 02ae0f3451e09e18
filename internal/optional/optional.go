// Package optional provides a value that may or may not be present.
//
// AST fields that are legitimately absent (an if without else, a let without
// an in-continuation) use Optional instead of a nil interface so that callers
// must ask before they use the value.
package optional

// Optional holds either a value of type T or nothing.
// The zero value is None.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the held value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether a value is present.
func (o Optional[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the Optional is empty.
func (o Optional[T]) IsNone() bool {
	return !o.ok
}

// MustGet returns the held value and panics if the Optional is empty.
func (o Optional[T]) MustGet() T {
	if !o.ok {
		panic("optional: MustGet on empty value")
	}
	return o.value
}
