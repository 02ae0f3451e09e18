package syntax

import (
	"encoding/json"
	"io"

	"github.com/you-not-fish/mincaml/internal/optional"
)

// FprintJSON writes a JSON representation of the AST to w.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Root:
		return map[string]interface{}{
			"type":  "Root",
			"range": rangeJSON(n.rng),
			"exprs": mapSlice(n.Exprs, func(x Expr) interface{} { return toJSON(x) }),
		}

	case *BoolLit:
		return leafJSON("BoolLit", n.rng, n.Value)

	case *IntLit:
		return leafJSON("IntLit", n.rng, n.Value)

	case *FloatLit:
		return leafJSON("FloatLit", n.rng, n.Value)

	case *UnitLit:
		return map[string]interface{}{
			"type":  "UnitLit",
			"range": rangeJSON(n.rng),
		}

	case *Var:
		return map[string]interface{}{
			"type":  "Var",
			"range": rangeJSON(n.rng),
			"name":  n.Name,
		}

	case *UnaryExpr:
		return map[string]interface{}{
			"type":  "UnaryExpr",
			"range": rangeJSON(n.rng),
			"op":    n.Op.String(),
			"x":     toJSON(n.X),
		}

	case *BinaryExpr:
		return map[string]interface{}{
			"type":  "BinaryExpr",
			"range": rangeJSON(n.rng),
			"op":    n.Op.String(),
			"x":     toJSON(n.X),
			"y":     toJSON(n.Y),
		}

	case *IfExpr:
		m := map[string]interface{}{
			"type":    "IfExpr",
			"range":   rangeJSON(n.rng),
			"ifRange": rangeJSON(n.IfRange),
			"cond":    toJSON(n.Cond),
			"then":    toJSON(n.Then),
		}
		setOptional(m, "else", n.Else)
		if r, ok := n.ElseRange.Get(); ok {
			m["elseRange"] = rangeJSON(r)
		}
		return m

	case *LetExpr:
		m := map[string]interface{}{
			"type":      "LetExpr",
			"range":     rangeJSON(n.rng),
			"name":      n.Name,
			"nameRange": rangeJSON(n.NameRange),
			"vartype":   n.Type.String(),
			"body":      toJSON(n.Body),
		}
		setOptional(m, "next", n.Next)
		return m

	case *LetRecExpr:
		m := map[string]interface{}{
			"type":      "LetRecExpr",
			"range":     rangeJSON(n.rng),
			"name":      n.Name,
			"nameRange": rangeJSON(n.NameRange),
			"result":    n.Result.String(),
			"params":    mapSlice(n.Params, paramJSON),
			"body":      toJSON(n.Body),
		}
		setOptional(m, "next", n.Next)
		return m

	case *ArrayGet:
		return map[string]interface{}{
			"type":  "ArrayGet",
			"range": rangeJSON(n.rng),
			"array": toJSON(n.Array),
			"index": toJSON(n.Index),
		}

	case *ArrayPut:
		return map[string]interface{}{
			"type":  "ArrayPut",
			"range": rangeJSON(n.rng),
			"array": toJSON(n.Array),
			"index": toJSON(n.Index),
			"value": toJSON(n.Value),
		}

	case *CallExpr:
		return map[string]interface{}{
			"type":  "CallExpr",
			"range": rangeJSON(n.rng),
			"fun":   toJSON(n.Fun),
			"args":  mapSlice(n.Args, func(x Expr) interface{} { return toJSON(x) }),
		}

	default:
		return map[string]interface{}{
			"type": "unknown",
		}
	}
}

func leafJSON(typ string, rng SourceRange, value interface{}) map[string]interface{} {
	return map[string]interface{}{
		"type":  typ,
		"range": rangeJSON(rng),
		"value": value,
	}
}

func paramJSON(p Param) interface{} {
	return map[string]interface{}{
		"name":    p.Name,
		"range":   rangeJSON(p.Range),
		"vartype": p.Type.String(),
	}
}

func rangeJSON(r SourceRange) map[string]interface{} {
	return map[string]interface{}{
		"start": locJSON(r.Start),
		"end":   locJSON(r.End),
	}
}

func locJSON(l SourceLoc) map[string]interface{} {
	return map[string]interface{}{
		"line":   l.Line,
		"column": l.Column,
		"offset": l.Offset,
	}
}

func setOptional(m map[string]interface{}, key string, x optional.Optional[Expr]) {
	if e, ok := x.Get(); ok {
		m[key] = toJSON(e)
	}
}

func mapSlice[T any](items []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(items))
	for i, item := range items {
		result[i] = f(item)
	}
	return result
}
