// Package scalar provides the numeric parameter type used throughout quarc:
// a Value is either a concrete float64 or a symbolic arithmetic expression
// over named free parameters.
//
// 🚀 What is a symbolic Value?
//
//	Rotation angles and noise rates in a circuit are often not known when
//	the circuit is written: they are free parameters, fixed only at run
//	time.  A Value carries either the final number (Concrete) or the
//	expression text (Symbolic), e.g. "2*theta+pi/4", and the two forms are
//	interchangeable everywhere a parameter is accepted.
//
// ✨ Key features:
//   - immutable value semantics: no method mutates its receiver
//   - full arithmetic grammar: + - * / ^, unary minus, parentheses,
//     float literals, named variables, constants pi and e, and the calls
//     sin cos tan asin acos atan exp log sqrt
//   - Evaluate binds names to numbers and computes the result exactly once
//   - Bind performs partial substitution: bound names are replaced,
//     constant subtrees are folded, unbound names remain symbolic
//   - lossless JSON: Concrete is a JSON number, Symbolic is a JSON string
//
// ⚙️ Usage:
//
//	import "github.com/quarclab/quarc/scalar"
//
//	theta := scalar.Symbolic("2*x+1")
//	v, err := theta.Evaluate(scalar.Bindings{"x": 3})
//	// v == 7.0, err == nil
//
// Expressions are parsed once, when the Value is constructed; malformed
// text surfaces as a *ParseError on the first Evaluate or Substitute, so
// construction itself never fails.
//
// Error handling (sentinel errors):
//
//   - ErrParse: the expression text is malformed; errors.As against
//     *ParseError yields the byte offset and reason.
//   - ErrUnboundVariable: Evaluate was called with bindings missing a
//     referenced name; errors.As against *UnboundVariableError yields it.
//
// Arithmetic follows IEEE 754 float64 semantics, including Inf and NaN.
package scalar
