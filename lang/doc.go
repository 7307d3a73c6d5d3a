// Package lang implements a small numeric expression language in the style
// of Molang: formulas are compiled once into a tree and evaluated repeatedly
// against a mutable environment of variables.
//
// # Values
//
// Every value is a float64. Comparisons and logical operators yield 1 for
// true and 0 for false, and any nonzero value is true. The == and !=
// operators compare with a tolerance of [Epsilon]. Division by zero divides
// by 1 instead.
//
// # Syntax
//
// Operators, from loosest to tightest binding:
//
//	c ? a : b          ternary (only the chosen branch is evaluated)
//	&&  ||             logical, short-circuit
//	<  <=  >  >=  ==  !=
//	+  -
//	*  /  %
//	**  ^              power, right-associative
//
// All other binary operators are left-associative. A leading ! is logical
// not and a leading - is arithmetic negation:
//
//	-x       !flag      -(a + b)      !floor(t)      max(-1, -2)
//
// Whitespace is insignificant. Names consist of ASCII letters, digits, '_',
// and '.', so namespaced names such as query.age or temp.x are ordinary
// identifiers.
//
// # Statements
//
// A source may hold several statements separated by ';'. A statement of
// the form name = expr assigns to a variable, declaring it with value 0 if
// it does not exist. A statement beginning with return ends evaluation of
// the sequence:
//
//	t = 1; t = t + 2; return t * 10
//
// # Environment
//
// A [Builder] owns the variables, constants, and functions visible to the
// expressions it compiles. Compiled trees refer to the builder's variable
// cells directly, so host-side changes through [Variable.Set] are observed
// by the next [Eval]. The constants PI and E and the functions floor, ceil,
// round, trunc, clamp, min, max, abs, sin, cos, exp, ln, sqrt, mod, pow,
// lerp, lerprotate, and random are predefined.
package lang
