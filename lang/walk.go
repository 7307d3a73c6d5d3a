package lang

// Walk calls fn for e and for each of its descendants in depth-first order.
// If fn returns false, the children of that node are skipped.
func Walk(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}

	switch n := e.(type) {
	case Group:
		Walk(n.X, fn)
	case Negate:
		Walk(n.X, fn)
	case Negative:
		Walk(n.X, fn)
	case Binary:
		Walk(n.L, fn)
		Walk(n.R, fn)
	case Ternary:
		Walk(n.Cond, fn)
		Walk(n.Then, fn)
		Walk(n.Else, fn)
	case Function:
		for _, arg := range n.Args {
			Walk(arg, fn)
		}
	case Assignment:
		Walk(n.Var, fn)
		Walk(n.X, fn)
	case MultiStatement:
		for _, s := range n.Statements {
			Walk(s.X, fn)
		}
	}
}

// Count returns the number of nodes in e.
func Count(e Expr) int {
	n := 0

	Walk(e, func(Expr) bool {
		n++

		return true
	})

	return n
}

// Variables returns the distinct variables referenced by e, in the order
// they are first reached.
func Variables(e Expr) []*Variable {
	var (
		vars []*Variable
		seen = make(map[*Variable]bool)
	)

	Walk(e, func(x Expr) bool {
		if v, ok := x.(*Variable); ok && !seen[v] {
			seen[v] = true
			vars = append(vars, v)
		}

		return true
	})

	return vars
}
