package lang

import (
	"strconv"
	"strings"
)

// Expr is a compiled expression tree node.
//
// The set of node types is closed: [Constant], [*Variable], [Group],
// [Negate], [Negative], [Binary], [Ternary], [Function], [Assignment], and
// [MultiStatement]. Trees are immutable after construction; only
// [*Variable] leaves refer to mutable state.
//
// String returns source text that parses back to an equivalent tree.
type Expr interface {
	String() string
	expr()
}

// Constant is a literal or a named constant resolved at parse time.
type Constant struct {
	Name  string // Empty for numeric literals
	Value float64
}

// Variable is a named, mutable cell shared by the builder that registered it,
// the host, and every tree that refers to it.
type Variable struct {
	Name  string
	Value float64
}

// NewVariable returns a variable cell with an initial value.
func NewVariable(name string, value float64) *Variable {
	return &Variable{Name: name, Value: value}
}

// Set stores v in the cell.
func (v *Variable) Set(value float64) { v.Value = value }

// Get returns the current value of the cell.
func (v *Variable) Get() float64 { return v.Value }

// Group is a parenthesized subexpression.
type Group struct{ X Expr }

// Negate is logical not: 1 if X evaluates to zero, else 0.
type Negate struct{ X Expr }

// Negative is arithmetic negation.
type Negative struct{ X Expr }

// Binary applies Op to L and R.
type Binary struct {
	L, R Expr
	Op   Operator
}

// Ternary evaluates Then if Cond is nonzero, else Else.
type Ternary struct {
	Cond, Then, Else Expr
}

// Func computes a function result from its evaluated arguments.
type Func func(args []float64) float64

// Function is a call of a registered function.
type Function struct {
	Fn   Func
	Name string
	Args []Expr
}

// Assignment stores the value of X in Var and yields it.
type Assignment struct {
	Var *Variable
	X   Expr
}

// Statement is one element of a [MultiStatement].
type Statement struct {
	X      Expr
	Return bool // Ends the sequence after evaluation
}

// MultiStatement evaluates its statements in order, stopping after the first
// return-flagged statement.
type MultiStatement struct {
	Statements []Statement
}

func (Constant) expr()       {}
func (*Variable) expr()      {}
func (Group) expr()          {}
func (Negate) expr()         {}
func (Negative) expr()       {}
func (Binary) expr()         {}
func (Ternary) expr()        {}
func (Function) expr()       {}
func (Assignment) expr()     {}
func (MultiStatement) expr() {}

func (c Constant) String() string {
	if c.Name != "" {
		return c.Name
	}

	return formatNumber(c.Value)
}

func (v *Variable) String() string { return v.Name }

func (g Group) String() string { return "(" + g.X.String() + ")" }

func (n Negate) String() string { return "!" + operand(n.X) }

func (n Negative) String() string { return "-" + operand(n.X) }

func (b Binary) String() string {
	return side(b.L, b.Op, false) + " " + b.Op.String() + " " +
		side(b.R, b.Op, true)
}

func (t Ternary) String() string {
	cond := t.Cond.String()
	if _, ok := t.Cond.(Ternary); ok {
		cond = "(" + cond + ")"
	}

	return cond + " ? " + t.Then.String() + " : " + t.Else.String()
}

func (f Function) String() string {
	var sb strings.Builder

	sb.WriteString(f.Name)
	sb.WriteByte('(')

	for i, arg := range f.Args {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(arg.String())
	}

	sb.WriteByte(')')

	return sb.String()
}

func (a Assignment) String() string {
	return a.Var.Name + " = " + a.X.String()
}

func (m MultiStatement) String() string {
	part := make([]string, 0, len(m.Statements))

	for _, s := range m.Statements {
		if s.Return {
			part = append(part, "return "+s.X.String())

			break
		}

		part = append(part, s.X.String())
	}

	return strings.Join(part, "; ")
}

// formatNumber renders v in a form the lexer reads back as a decimal.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// operand renders the operand of a prefix operator, parenthesizing it unless
// it is a single symbol or group.
func operand(e Expr) string {
	s := e.String()

	switch x := e.(type) {
	case *Variable, Group, Function:
		return s
	case Constant:
		if x.Name != "" || x.Value >= 0 {
			return s
		}
	}

	return "(" + s + ")"
}

// side renders one operand of a binary operator, parenthesizing it when the
// operand would otherwise bind differently.
func side(e Expr, parent Operator, right bool) string {
	s := e.String()

	switch x := e.(type) {
	case Binary:
		p, q := x.Op.Precedence(), parent.Precedence()
		if p < q || (p == q && right != parent.RightAssociative()) {
			return "(" + s + ")"
		}
	case Ternary, Assignment, MultiStatement:
		return "(" + s + ")"
	}

	return s
}
