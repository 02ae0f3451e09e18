package types

// Identical reports whether x and y are identical types.
// Resolved variables are looked through; two unresolved variables are
// identical only if they are the same variable.
func Identical(x, y Type) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}
	return identical(x.Underlying(), y.Underlying())
}

func identical(x, y Type) bool {
	if x == y {
		return true
	}
	switch x := x.(type) {
	case *Basic:
		if y, ok := y.(*Basic); ok {
			return x.kind == y.kind
		}
	case *Array:
		if y, ok := y.(*Array); ok {
			return Identical(x.elem, y.elem)
		}
	case *Tuple:
		if y, ok := y.(*Tuple); ok {
			return identicalLists(x.elems, y.elems)
		}
	case *Func:
		if y, ok := y.(*Func); ok {
			return identicalLists(x.params, y.params) && Identical(x.result, y.result)
		}
	}
	return false
}

func identicalLists(xs, ys []Type) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if !Identical(xs[i], ys[i]) {
			return false
		}
	}
	return true
}

// IsResolved reports whether t contains no unresolved variables.
func IsResolved(t Type) bool {
	switch t := t.Underlying().(type) {
	case *Var:
		return false
	case *Array:
		return IsResolved(t.elem)
	case *Tuple:
		for _, e := range t.elems {
			if !IsResolved(e) {
				return false
			}
		}
		return true
	case *Func:
		for _, p := range t.params {
			if !IsResolved(p) {
				return false
			}
		}
		return IsResolved(t.result)
	}
	return true
}
