package lang

import (
	"log/slog"
	"strconv"
	"strings"
)

// parseSymbols builds the tree for one lexed list.
func (b *Builder) parseSymbols(syms []symbol) (Expr, error) {
	if len(syms) == 0 {
		return nil, ErrEmptyExpression
	}

	if t, ok, err := b.tryTernary(syms); ok {
		return t, err
	}

	if len(syms) == 1 {
		return b.valueFromSymbol(syms[0])
	}

	if len(syms) == 2 && syms[1].list &&
		(syms[0].isName() || syms[0].text == "-") {
		return b.createFunction(syms[0].text, syms[1].group)
	}

	at := splitIndex(syms)
	if at < 0 {
		return nil, unsplittable(syms)
	}

	if at == 0 || at == len(syms)-1 {
		return nil, ErrMalformedValue.With(
			slog.String("symbol", render(syms)),
			slog.String("operator", syms[at].text),
		)
	}

	op, _ := syms[at].operator()

	left, err := b.parseSymbols(syms[:at])
	if err != nil {
		return nil, err
	}

	right, err := b.parseSymbols(syms[at+1:])
	if err != nil {
		return nil, err
	}

	return Binary{Op: op, L: left, R: right}, nil
}

// tryTernary recognizes cond ? then : else at the top level of syms.
// The colon paired with the first question mark is the first one reached
// after every nested question mark before it has been closed.
func (b *Builder) tryTernary(syms []symbol) (Expr, bool, error) {
	question, questions := -1, 0
	colon, colons := -1, 0

	for i, s := range syms {
		if s.list {
			continue
		}

		switch s.text {
		case "?":
			if question < 0 {
				question = i
			}

			questions++

		case ":":
			if colons+1 == questions && colon < 0 {
				colon = i
			}

			colons++
		}
	}

	if questions != colons || question <= 0 || question+1 >= colon ||
		colon >= len(syms)-1 {
		return nil, false, nil
	}

	cond, err := b.parseSymbols(syms[:question])
	if err != nil {
		return nil, true, err
	}

	then, err := b.parseSymbols(syms[question+1 : colon])
	if err != nil {
		return nil, true, err
	}

	other, err := b.parseSymbols(syms[colon+1:])
	if err != nil {
		return nil, true, err
	}

	return Ternary{Cond: cond, Then: then, Else: other}, true, nil
}

// splitIndex returns the position of the operator that binds loosest in
// syms, or -1 if there is none. Among equals it picks the rightmost for
// left-associative operators and the leftmost for right-associative ones.
// A minus sign in prefix position is not a candidate.
func splitIndex(syms []symbol) int {
	at, low := -1, 0

	for i, s := range syms {
		op, ok := s.operator()
		if !ok || (op == OpSub && (i == 0 || syms[i-1].separates())) {
			continue
		}

		switch p := op.Precedence(); {
		case at < 0 || p < low:
			at, low = i, p
		case p == low && !op.RightAssociative():
			at = i
		}
	}

	return at
}

// unsplittable explains why a list of several symbols has no operator to
// split on.
func unsplittable(syms []symbol) error {
	for _, s := range syms {
		if !s.list && (s.text == "?" || s.text == ":" || s.text == ",") {
			return ErrUnknownOperator.With(slog.String("operator", s.text))
		}
	}

	return ErrMalformedValue.With(slog.String("symbol", render(syms)))
}

// valueFromSymbol converts a single symbol into a leaf or group.
func (b *Builder) valueFromSymbol(s symbol) (Expr, error) {
	if s.list {
		x, err := b.parseSymbols(s.group)
		if err != nil {
			return nil, err
		}

		return Group{X: x}, nil
	}

	text := s.text

	if rest, ok := strings.CutPrefix(text, "!"); ok && rest != "" {
		x, err := b.valueFromSymbol(token(rest))
		if err != nil {
			return nil, err
		}

		return Negate{X: x}, nil
	}

	if isDecimal(text) {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, ErrMalformedValue.Wrap(err).
				With(slog.String("symbol", text))
		}

		return Constant{Value: v}, nil
	}

	if s.isName() {
		name, neg := strings.CutPrefix(text, "-")
		if x, ok := b.lookup(name); ok {
			if neg {
				return Negative{X: x}, nil
			}

			return x, nil
		}
	}

	return nil, ErrMalformedValue.With(slog.String("symbol", text))
}

// lookup resolves a name to a variable or, failing that, a constant.
func (b *Builder) lookup(name string) (Expr, bool) {
	if v, ok := b.variables[name]; ok {
		return v, true
	}

	if c, ok := b.constants[name]; ok {
		return Constant{Name: name, Value: c}, true
	}

	return nil, false
}

// createFunction builds a call of name with the given argument list.
// A leading ! or - on the name applies logical or arithmetic negation to
// the call.
func (b *Builder) createFunction(name string, args []symbol) (Expr, error) {
	switch {
	case name == "!" || name == "-":
		x, err := b.parseSymbols(args)
		if err != nil {
			return nil, err
		}

		if name == "!" {
			return Negate{X: Group{X: x}}, nil
		}

		return Negative{X: Group{X: x}}, nil

	case strings.HasPrefix(name, "!"):
		x, err := b.createFunction(name[1:], args)
		if err != nil {
			return nil, err
		}

		return Negate{X: x}, nil

	case strings.HasPrefix(name, "-"):
		x, err := b.createFunction(name[1:], args)
		if err != nil {
			return nil, err
		}

		return Negative{X: x}, nil
	}

	factory, ok := b.functions[name]
	if !ok {
		return nil, ErrUnknownFunction.With(slog.String("function", name))
	}

	values, err := b.arguments(name, args)
	if err != nil {
		return nil, err
	}

	return factory(values, name)
}

// arguments parses each comma-separated segment of args. A trailing comma
// is ignored.
func (b *Builder) arguments(name string, args []symbol) ([]Expr, error) {
	var (
		values []Expr
		start  int
	)

	for i := 0; i <= len(args); i++ {
		if i < len(args) && (args[i].list || args[i].text != ",") {
			continue
		}

		if i == start {
			if i == len(args) {
				break
			}

			return nil, ErrMalformedValue.With(
				slog.String("symbol", render(args)),
				slog.String("function", name),
			)
		}

		x, err := b.parseSymbols(args[start:i])
		if err != nil {
			return nil, err
		}

		values = append(values, x)
		start = i + 1
	}

	return values, nil
}
