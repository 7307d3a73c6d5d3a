package repl

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/molang/lang"
)

// builtinParams names the parameters of the built-in functions. Optional
// parameters are bracketed.
var builtinParams = map[string][]string{
	"floor": {"x"},
	"ceil":  {"x"},
	"round": {"x"},
	"trunc": {"x"},
	"abs":   {"x"},
	"sin":   {"x"},
	"cos":   {"x"},
	"exp":   {"x"},
	"ln":    {"x"},
	"sqrt":  {"x"},

	"clamp": {"x", "lo", "hi"},
	"min":   {"a", "b"},
	"max":   {"a", "b"},
	"mod":   {"x", "y"},
	"pow":   {"x", "y"},

	"lerp":       {"a", "b", "t"},
	"lerprotate": {"a", "b", "t"},
	"random":     {"[lo]", "[hi]"},
}

var (
	signatureStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	signatureNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("6")).
				Bold(true)
	currentParamStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11")).
				Bold(true)
	signatureSeparatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// functionCall represents a detected function call in the input.
type functionCall struct {
	name     string // function name (e.g., "math.sqrt")
	argIndex int    // current argument index (0-based)
	inCall   bool   // true if cursor is inside parameter list
}

// detectFunctionCall analyzes the input to determine if the cursor is inside
// a function call's parameter list. It returns the function name, current
// argument index, and whether we're inside a call.
func detectFunctionCall(input string, cursor int) functionCall {
	if cursor > len(input) {
		cursor = len(input)
	}

	// Scan backward from cursor to the unmatched opening paren.
	depth := 0
	open := -1

scan:
	for i := cursor; i > 0; {
		r, size := utf8.DecodeLastRuneInString(input[:i])
		i -= size

		switch r {
		case ')':
			depth++
		case '(':
			if depth == 0 {
				open = i

				break scan
			}

			depth--
		}
	}

	if open == -1 {
		return functionCall{}
	}

	nameStart := open

	for nameStart > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:nameStart])
		if !isNameRune(r) {
			break
		}

		nameStart -= size
	}

	name := input[nameStart:open]
	if name == "" {
		// A grouping paren, not a call. Look further out.
		return detectFunctionCall(input, open)
	}

	// Count arguments by counting commas at depth 0 in the parameter list.
	argIndex := 0
	depth = 0

	for _, r := range input[open+1 : cursor] {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				argIndex++
			}
		}
	}

	return functionCall{
		name:     name,
		argIndex: argIndex,
		inCall:   true,
	}
}

// signature returns the display signature and parameter names of the
// function registered as name. Returns an empty signature if b has no such
// function.
func signature(b *lang.Builder, name string) (string, []string) {
	lo, hi, ok := b.Arity(name)
	if !ok {
		return "", nil
	}

	params, known := builtinParams[name]
	if !known || len(params) != hi {
		params = make([]string, hi)
		for i := range params {
			params[i] = "x" + strconv.Itoa(i+1)
			if i >= lo {
				params[i] = "[" + params[i] + "]"
			}
		}
	}

	return name + "(" + strings.Join(params, ", ") + ")", params
}

// renderSignatureHint renders the function signature with the current
// parameter highlighted.
func renderSignatureHint(
	signature string,
	params []string,
	currentArgIdx int,
) string {
	if signature == "" {
		return ""
	}

	openParen := strings.Index(signature, "(")
	if openParen == -1 {
		return signatureStyle.Render(signature)
	}

	funcName := signature[:openParen]

	if len(params) == 0 {
		return signatureNameStyle.Render(funcName) +
			signatureStyle.Render("()")
	}

	var b strings.Builder
	b.WriteString(signatureNameStyle.Render(funcName))
	b.WriteString(signatureStyle.Render("("))

	for i, param := range params {
		if i > 0 {
			b.WriteString(signatureSeparatorStyle.Render(", "))
		}

		if currentArgIdx == i {
			b.WriteString(currentParamStyle.Render(param))
		} else {
			b.WriteString(signatureStyle.Render(param))
		}
	}

	b.WriteString(signatureStyle.Render(")"))

	return b.String()
}
