package lang

import (
	"encoding/json"

	"github.com/goccy/go-yaml"
)

// Node kinds reported by [ToMap].
const (
	KindConstant       = "constant"
	KindVariable       = "variable"
	KindGroup          = "group"
	KindNegate         = "negate"
	KindNegative       = "negative"
	KindOperator       = "operator"
	KindTernary        = "ternary"
	KindFunction       = "function"
	KindAssignment     = "assignment"
	KindMultiStatement = "statements"
)

// ToMap converts e to a tree of native Go values. Every node becomes a map
// with a "kind" key and kind-specific fields.
func ToMap(e Expr) map[string]any {
	switch n := e.(type) {
	case Constant:
		m := map[string]any{"kind": KindConstant, "value": n.Value}
		if n.Name != "" {
			m["name"] = n.Name
		}

		return m

	case *Variable:
		return map[string]any{"kind": KindVariable, "name": n.Name}

	case Group:
		return map[string]any{"kind": KindGroup, "x": ToMap(n.X)}

	case Negate:
		return map[string]any{"kind": KindNegate, "x": ToMap(n.X)}

	case Negative:
		return map[string]any{"kind": KindNegative, "x": ToMap(n.X)}

	case Binary:
		return map[string]any{
			"kind":  KindOperator,
			"sign":  n.Op.String(),
			"left":  ToMap(n.L),
			"right": ToMap(n.R),
		}

	case Ternary:
		return map[string]any{
			"kind": KindTernary,
			"cond": ToMap(n.Cond),
			"then": ToMap(n.Then),
			"else": ToMap(n.Else),
		}

	case Function:
		args := make([]any, len(n.Args))
		for i, arg := range n.Args {
			args[i] = ToMap(arg)
		}

		return map[string]any{"kind": KindFunction, "name": n.Name, "args": args}

	case Assignment:
		return map[string]any{
			"kind": KindAssignment,
			"name": n.Var.Name,
			"x":    ToMap(n.X),
		}

	case MultiStatement:
		stmts := make([]any, 0, len(n.Statements))

		for _, s := range n.Statements {
			m := ToMap(s.X)
			if s.Return {
				m["return"] = true
			}

			stmts = append(stmts, m)

			if s.Return {
				break
			}
		}

		return map[string]any{"kind": KindMultiStatement, "statements": stmts}

	default:
		return nil
	}
}

// MarshalJSON encodes the [ToMap] form of e as JSON.
func MarshalJSON(e Expr) ([]byte, error) {
	return json.Marshal(ToMap(e))
}

// MarshalYAML encodes the [ToMap] form of e as YAML.
func MarshalYAML(e Expr, opts ...yaml.EncodeOption) ([]byte, error) {
	return yaml.MarshalWithOptions(ToMap(e), opts...)
}
