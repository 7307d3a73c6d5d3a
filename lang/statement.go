package lang

import (
	"log/slog"
	"strings"
)

// compile splits source into statements and builds the tree for each.
// It returns the tree, the number of lexed symbols, and the first error.
//
// A source of one plain expression or one assignment compiles to that node
// alone; anything else compiles to a [MultiStatement].
//
// Variables created by assignments are removed again if compilation fails.
func (b *Builder) compile(source string) (Expr, int, error) {
	var (
		stmts   []Statement
		created []string
		tokens  int
	)

	for part := range strings.SplitSeq(source, ";") {
		text := strings.TrimSpace(part)
		if text == "" {
			continue
		}

		st, n, err := b.statement(text, &created)
		if err != nil {
			for _, name := range created {
				delete(b.variables, name)
			}

			return nil, 0, err
		}

		tokens += n

		stmts = append(stmts, st)
	}

	switch {
	case len(stmts) == 0:
		return nil, 0, ErrEmptyExpression
	case len(stmts) == 1 && !stmts[0].Return:
		return stmts[0].X, tokens, nil
	default:
		return MultiStatement{Statements: stmts}, tokens, nil
	}
}

// statement compiles one statement. Names of variables it had to create
// are appended to created.
func (b *Builder) statement(text string, created *[]string) (Statement, int, error) {
	var st Statement

	if rest, ok := cutKeyword(text, "return"); ok {
		st.Return = true
		text = rest

		if text == "" {
			return st, 0, ErrEmptyExpression.With(slog.String("statement", "return"))
		}
	}

	at := assignIndex(text)
	if at < 0 {
		x, n, err := b.expression(text)
		st.X = x

		return st, n, err
	}

	name := strings.TrimSpace(text[:at])

	v, err := b.target(name, created)
	if err != nil {
		return st, 0, err
	}

	x, n, err := b.expression(text[at+1:])
	if err != nil {
		return st, 0, err
	}

	st.X = Assignment{Var: v, X: x}

	return st, n, nil
}

// expression lexes and parses a single expression.
func (b *Builder) expression(text string) (Expr, int, error) {
	syms, err := lex(text)
	if err != nil {
		return nil, 0, err
	}

	x, err := b.parseSymbols(syms)
	if err != nil {
		return nil, 0, err
	}

	return x, count(syms), nil
}

// target resolves the variable written by an assignment to name, creating
// it with value 0 if it does not exist.
func (b *Builder) target(name string, created *[]string) (*Variable, error) {
	if !isIdentifier(name) {
		return nil, ErrInvalidAssignment.With(slog.String("target", name))
	}

	if v, ok := b.variables[name]; ok {
		return v, nil
	}

	if _, ok := b.constants[name]; ok {
		return nil, ErrInvalidAssignment.With(
			slog.String("target", name),
			slog.String("reason", "constant"),
		)
	}

	v := NewVariable(name, 0)
	b.variables[name] = v
	*created = append(*created, name)

	b.logger.Debug("declare variable", slog.String("name", name))

	return v, nil
}

// assignIndex returns the index of the first '=' in text that is not part
// of ==, !=, <=, or >=, or -1.
func assignIndex(text string) int {
	for i := 0; i < len(text); i++ {
		if text[i] != '=' {
			continue
		}

		if i+1 < len(text) && text[i+1] == '=' {
			i++

			continue
		}

		if i > 0 && strings.IndexByte("!<>=", text[i-1]) >= 0 {
			continue
		}

		return i
	}

	return -1
}

// cutKeyword removes a leading keyword followed by a non-identifier
// character or the end of text.
func cutKeyword(text, keyword string) (string, bool) {
	rest, ok := strings.CutPrefix(text, keyword)
	if !ok {
		return text, false
	}

	if rest != "" && (isWord(rune(rest[0])) || rest[0] == '.') {
		return text, false
	}

	return strings.TrimSpace(rest), true
}

// isIdentifier reports whether name can be declared by an assignment.
func isIdentifier(name string) bool {
	if name == "" || (name[0] >= '0' && name[0] <= '9') || name[0] == '.' {
		return false
	}

	for i := range len(name) {
		if !isWord(rune(name[i])) && name[i] != '.' {
			return false
		}
	}

	return true
}
