package lang

// Eval computes the value of e.
//
// Comparisons and logical operators yield 1 for true and 0 for false.
// The operands of && and || and the branches of a [Ternary] are evaluated
// only when needed. A zero divisor is replaced by 1.
//
// Eval writes to the variable cells of any [Assignment] it reaches and is
// not safe for concurrent use on trees that share variables.
func Eval(e Expr) float64 {
	switch n := e.(type) {
	case Constant:
		return n.Value

	case *Variable:
		return n.Value

	case Group:
		return Eval(n.X)

	case Negate:
		return boolean(Eval(n.X) == 0)

	case Negative:
		return -Eval(n.X)

	case Binary:
		return evalBinary(n)

	case Ternary:
		if Eval(n.Cond) != 0 {
			return Eval(n.Then)
		}

		return Eval(n.Else)

	case Function:
		var buf [4]float64

		args := buf[:0]
		for _, arg := range n.Args {
			args = append(args, Eval(arg))
		}

		return n.Fn(args)

	case Assignment:
		v := Eval(n.X)
		n.Var.Value = v

		return v

	case MultiStatement:
		var v float64

		for _, s := range n.Statements {
			v = Eval(s.X)
			if s.Return {
				break
			}
		}

		return v

	default:
		return 0
	}
}

func evalBinary(n Binary) float64 {
	switch n.Op {
	case OpAnd:
		if Eval(n.L) == 0 {
			return 0
		}

		return boolean(Eval(n.R) != 0)

	case OpOr:
		if Eval(n.L) != 0 {
			return 1
		}

		return boolean(Eval(n.R) != 0)

	default:
		return n.Op.Apply(Eval(n.L), Eval(n.R))
	}
}
