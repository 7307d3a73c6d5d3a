package lang

import (
	"log/slog"
	"strings"
)

// symbol is one element of a lexed expression: either a token or the
// contents of a parenthesized group.
type symbol struct {
	text  string
	group []symbol
	list  bool
}

func token(text string) symbol { return symbol{text: text} }

func group(syms []symbol) symbol { return symbol{group: syms, list: true} }

// operator returns the binary operation named by the token, if any.
func (s symbol) operator() (Operator, bool) {
	if s.list {
		return 0, false
	}

	return LookupOperator(s.text)
}

// separates reports whether a minus sign following s is unary.
func (s symbol) separates() bool {
	if s.list {
		return false
	}

	if _, ok := s.operator(); ok {
		return true
	}

	return s.text == "?" || s.text == ":" || s.text == ","
}

// isName reports whether the token can name a variable, constant, or
// function (possibly with a leading ! or -).
func (s symbol) isName() bool {
	if s.list || isDecimal(s.text) {
		return false
	}

	_, op := s.operator()

	return !op && s.text != "?" && s.text != ":" && s.text != ","
}

func (s symbol) String() string {
	if s.list {
		return "(" + render(s.group) + ")"
	}

	return s.text
}

func render(syms []symbol) string {
	var sb strings.Builder

	for _, s := range syms {
		sb.WriteString(s.String())
	}

	return sb.String()
}

// count returns the total number of tokens and groups in syms.
func count(syms []symbol) int {
	n := len(syms)

	for _, s := range syms {
		if s.list {
			n += count(s.group)
		}
	}

	return n
}

// lex breaks source down into a nested symbol list.
func lex(source string) ([]symbol, error) {
	var (
		sb            strings.Builder
		opens, closes int
	)

	for i, r := range source {
		switch {
		case isSpace(r):
			continue
		case !isAllowed(r):
			return nil, ErrIllegalCharacter.With(
				slog.String("character", string(r)),
				slog.Int("offset", i),
			)
		case r == '(':
			opens++
		case r == ')':
			closes++
		}

		sb.WriteRune(r)
	}

	if opens != closes {
		return nil, ErrUnbalancedParentheses.With(
			slog.Int("open", opens),
			slog.Int("close", closes),
		)
	}

	if sb.Len() == 0 {
		return nil, ErrEmptyExpression
	}

	syms, err := scan(sb.String())
	if err != nil {
		return nil, err.With(slog.Int("open", opens), slog.Int("close", closes))
	}

	return syms, nil
}

// scan tokenizes s, which contains no whitespace, recursing into groups.
func scan(s string) ([]symbol, *Error) {
	var (
		syms []symbol
		buf  strings.Builder
	)

	flush := func() {
		if buf.Len() > 0 {
			syms = append(syms, token(buf.String()))
			buf.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		if sign := operatorAt(s, i); sign != "" {
			// A minus sign at the start of a list or after another operator
			// or a comma binds to whatever follows it.
			if sign == "-" && buf.Len() == 0 &&
				(len(syms) == 0 || syms[len(syms)-1].separates()) {
				buf.WriteByte('-')

				continue
			}

			flush()

			syms = append(syms, token(sign))
			i += len(sign) - 1

			continue
		}

		switch s[i] {
		case ',':
			flush()

			syms = append(syms, token(","))

		case '(':
			flush()

			end := closing(s, i)
			if end < 0 {
				return nil, ErrUnbalancedParentheses
			}

			inner, err := scan(s[i+1 : end])
			if err != nil {
				return nil, err
			}

			syms = append(syms, group(inner))
			i = end

		case ')':
			return nil, ErrUnbalancedParentheses

		default:
			buf.WriteByte(s[i])
		}
	}

	flush()

	return syms, nil
}

// operatorAt returns the operator sign starting at s[i], preferring
// two-character signs, or "" if there is none.
func operatorAt(s string, i int) string {
	if i+1 < len(s) {
		switch sign := s[i : i+2]; sign {
		case "==", "!=", "<=", ">=", "&&", "||", "**":
			return sign
		}
	}

	switch s[i] {
	case '+', '-', '*', '/', '%', '^', '<', '>', '?', ':':
		return s[i : i+1]
	}

	return ""
}

// closing returns the index of the parenthesis matching the one at s[i], or
// -1 if it is never closed.
func closing(s string, i int) int {
	depth := 0

	for j := i; j < len(s); j++ {
		switch s[j] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return j
			}
		}
	}

	return -1
}

// isDecimal reports whether s matches -?[0-9]+(\.[0-9]+)?.
func isDecimal(s string) bool {
	s = strings.TrimPrefix(s, "-")

	whole, frac, dot := strings.Cut(s, ".")
	if !digits(whole) {
		return false
	}

	return !dot || digits(frac)
}

func digits(s string) bool {
	if s == "" {
		return false
	}

	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

func isWord(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

func isAllowed(r rune) bool {
	return isWord(r) || strings.ContainsRune("+-/*%^&|<>=!?:.,()", r)
}
