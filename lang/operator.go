package lang

//go:generate go tool stringer --linecomment --type Operator --output operator_string.go

import "math"

// Epsilon is the tolerance used by the == and != operators.
const Epsilon = 1e-5

// Operator identifies a binary operation.
// Its String method returns the canonical sign.
type Operator int

const (
	OpAdd Operator = iota // +
	OpSub                 // -
	OpMul                 // *
	OpDiv                 // /
	OpMod                 // %
	OpPow                 // **
	OpLt                  // <
	OpLe                  // <=
	OpGt                  // >
	OpGe                  // >=
	OpEq                  // ==
	OpNe                  // !=
	OpAnd                 // &&
	OpOr                  // ||
)

// operators maps every accepted sign to its operation.
// The caret is an alias of the power operator.
var operators = map[string]Operator{
	"+":  OpAdd,
	"-":  OpSub,
	"*":  OpMul,
	"/":  OpDiv,
	"%":  OpMod,
	"**": OpPow,
	"^":  OpPow,
	"<":  OpLt,
	"<=": OpLe,
	">":  OpGt,
	">=": OpGe,
	"==": OpEq,
	"!=": OpNe,
	"&&": OpAnd,
	"||": OpOr,
}

// LookupOperator returns the operation with the given sign.
func LookupOperator(sign string) (Operator, bool) {
	op, ok := operators[sign]

	return op, ok
}

// Precedence returns the binding strength of op; higher binds tighter.
func (op Operator) Precedence() int {
	switch op {
	case OpPow:
		return 5
	case OpMul, OpDiv, OpMod:
		return 4
	case OpAdd, OpSub:
		return 3
	case OpLt, OpLe, OpGt, OpGe, OpEq, OpNe:
		return 2
	case OpAnd, OpOr:
		return 1
	default:
		return 0
	}
}

// RightAssociative reports whether a chain of op groups from the right.
func (op Operator) RightAssociative() bool { return op == OpPow }

// Apply computes a op b. Both operands are already evaluated, so the logical
// operators do not short-circuit here; see [Eval].
func (op Operator) Apply(a, b float64) float64 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		if b == 0 {
			return a
		}

		return a / b
	case OpMod:
		return math.Mod(a, b)
	case OpPow:
		return math.Pow(a, b)
	case OpLt:
		return boolean(a < b)
	case OpLe:
		return boolean(a <= b)
	case OpGt:
		return boolean(a > b)
	case OpGe:
		return boolean(a >= b)
	case OpEq:
		return boolean(Equal(a, b))
	case OpNe:
		return boolean(!Equal(a, b))
	case OpAnd:
		return boolean(a != 0 && b != 0)
	case OpOr:
		return boolean(a != 0 || b != 0)
	default:
		return 0
	}
}

// Equal reports whether a and b differ by less than [Epsilon].
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func boolean(b bool) float64 {
	if b {
		return 1
	}

	return 0
}
