package scalar

import (
	"encoding/json"
	"sort"
	"strconv"
)

// Evaluate resolves the Value to a number. Concrete values return
// themselves and ignore the bindings. Symbolic values evaluate their
// expression against b; every referenced name must be present.
//
// Errors: *ParseError when the expression text was malformed,
// *UnboundVariableError when a referenced name is missing from b.
// Complexity: O(len(expression)).
func (v Value) Evaluate(b Bindings) (float64, error) {
	if !v.symbolic {
		return v.concrete, nil
	}
	if v.parseErr != nil {
		return 0, v.parseErr
	}
	return v.tree.eval(b)
}

// Bind substitutes the bound names into the expression and folds numeric
// subtrees. A fully folded expression becomes Concrete; otherwise the
// result is a reduced Symbolic whose text is the canonical rendering of
// the remaining tree. The named constants pi and e do not fold, so
// "pi/2" stays readable. Concrete and unparsable values bind to
// themselves; a parse failure still surfaces on the next Evaluate.
func (v Value) Bind(b Bindings) Value {
	if !v.symbolic || v.parseErr != nil {
		return v
	}
	folded := v.tree.bind(b)
	if lit, ok := folded.(litNode); ok {
		return Float(lit.v)
	}
	return Value{expr: render(folded), tree: folded, symbolic: true}
}

// Variables lists the distinct free parameter names referenced by the
// Value, sorted. Concrete and unparsable values reference none.
func (v Value) Variables() []string {
	if !v.symbolic || v.parseErr != nil {
		return nil
	}
	seen := make(map[string]struct{})
	v.tree.vars(seen)
	if len(seen) == 0 {
		return nil
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String renders the Value: the verbatim expression text for Symbolic,
// the shortest exact decimal form for Concrete.
func (v Value) String() string {
	if v.symbolic {
		return v.expr
	}
	return strconv.FormatFloat(v.concrete, 'g', -1, 64)
}

// Equal reports representational equality: two Concrete values with the
// same float64, or two Symbolic values with identical expression text.
// It does not attempt algebraic equivalence ("x+x" != "2*x").
func (v Value) Equal(o Value) bool {
	if v.symbolic != o.symbolic {
		return false
	}
	if v.symbolic {
		return v.expr == o.expr
	}
	return v.concrete == o.concrete
}

// MarshalJSON encodes Concrete as a JSON number and Symbolic as a JSON
// string holding the expression verbatim, so decoding is lossless.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.symbolic {
		return json.Marshal(v.expr)
	}
	return json.Marshal(v.concrete)
}

// UnmarshalJSON reverses MarshalJSON: numbers decode to Concrete, strings
// to Symbolic.
func (v *Value) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*v = Float(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*v = Symbolic(s)
	return nil
}
