package scalar

import (
	"errors"
	"fmt"
)

var (
	// ErrParse marks any malformed expression; inspect *ParseError for the offset.
	ErrParse = errors.New("scalar: parse error")
	// ErrUnboundVariable marks evaluation against bindings that miss a referenced name.
	ErrUnboundVariable = errors.New("scalar: unbound variable")
)

// ParseError reports the first syntax error found in an expression.
// It matches ErrParse under errors.Is.
type ParseError struct {
	Expr string // the full expression text
	Pos  int    // byte offset of the offending token
	Msg  string // human-readable reason
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("scalar: parse %q at offset %d: %s", e.Expr, e.Pos, e.Msg)
}

// Is reports target == ErrParse so callers can match without the concrete type.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// UnboundVariableError identifies the variable a binding set failed to provide.
// It matches ErrUnboundVariable under errors.Is.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("scalar: unbound variable %q", e.Name)
}

// Is reports target == ErrUnboundVariable.
func (e *UnboundVariableError) Is(target error) bool { return target == ErrUnboundVariable }

// Bindings maps free parameter names to concrete values.
type Bindings map[string]float64

// Value is an immutable tagged union: either a concrete float64 or a
// symbolic expression over named parameters. The zero Value is Concrete 0.
type Value struct {
	concrete float64
	expr     string
	tree     node  // parsed expression, nil when concrete or unparsable
	parseErr error // held until Evaluate, so construction never fails
	symbolic bool
}

// Float returns a concrete Value.
func Float(v float64) Value { return Value{concrete: v} }

// Symbolic returns a symbolic Value holding expr. The text is parsed
// immediately; if it is malformed the resulting Value reports a
// *ParseError from Evaluate and binds to itself. An expression without
// variables ("pi/2") is still Symbolic until evaluated.
func Symbolic(expr string) Value {
	tree, err := parse(expr)
	return Value{expr: expr, tree: tree, parseErr: err, symbolic: true}
}

// IsSymbolic reports whether the Value carries an expression rather than a number.
func (v Value) IsSymbolic() bool { return v.symbolic }

// Float returns the concrete number and true, or 0 and false for a symbolic Value.
func (v Value) Float() (float64, bool) {
	if v.symbolic {
		return 0, false
	}
	return v.concrete, true
}

// Expression returns the expression text and true, or "" and false for a
// concrete Value. The text is returned verbatim as given to Symbolic.
func (v Value) Expression() (string, bool) {
	if !v.symbolic {
		return "", false
	}
	return v.expr, true
}
