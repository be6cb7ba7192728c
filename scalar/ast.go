package scalar

import (
	"math"
	"strconv"
	"strings"
)

// node is one vertex of a parsed expression tree. Implementations are
// immutable; bind returns a new subtree with bound variables replaced and
// constant subtrees folded to literals.
type node interface {
	eval(b Bindings) (float64, error)
	bind(b Bindings) node
	vars(seen map[string]struct{})
	// write renders the canonical text form. parent is the precedence of
	// the enclosing operator; the node parenthesizes itself when needed.
	write(sb *strings.Builder, parent int)
}

// Operator precedence levels used by both the parser and the printer.
const (
	precAdd   = 1 // + -
	precMul   = 2 // * /
	precPow   = 3 // ^ (right-associative)
	precUnary = 3 // unary minus binds like ^ so -x^2 reads -(x^2)
	precAtom  = 4
)

// functions names every callable accepted by the grammar.
var functions = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"asin": math.Asin,
	"acos": math.Acos,
	"atan": math.Atan,
	"exp":  math.Exp,
	"log":  math.Log,
	"sqrt": math.Sqrt,
}

// constants names the predefined nullary symbols.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// litNode is a float literal.
type litNode struct{ v float64 }

func (n litNode) eval(Bindings) (float64, error) { return n.v, nil }
func (n litNode) bind(Bindings) node             { return n }
func (n litNode) vars(map[string]struct{})       {}
func (n litNode) write(sb *strings.Builder, parent int) {
	if n.v < 0 && parent > precAdd {
		sb.WriteByte('(')
		sb.WriteString(strconv.FormatFloat(n.v, 'g', -1, 64))
		sb.WriteByte(')')
		return
	}
	sb.WriteString(strconv.FormatFloat(n.v, 'g', -1, 64))
}

// constNode is a named constant (pi, e); it keeps its name when printed.
type constNode struct {
	name string
	v    float64
}

func (n constNode) eval(Bindings) (float64, error)   { return n.v, nil }
func (n constNode) bind(Bindings) node               { return n }
func (n constNode) vars(map[string]struct{})         {}
func (n constNode) write(sb *strings.Builder, _ int) { sb.WriteString(n.name) }

// varNode is a free parameter reference.
type varNode struct{ name string }

func (n varNode) eval(b Bindings) (float64, error) {
	v, ok := b[n.name]
	if !ok {
		return 0, &UnboundVariableError{Name: n.name}
	}
	return v, nil
}

func (n varNode) bind(b Bindings) node {
	if v, ok := b[n.name]; ok {
		return litNode{v: v}
	}
	return n
}

func (n varNode) vars(seen map[string]struct{})    { seen[n.name] = struct{}{} }
func (n varNode) write(sb *strings.Builder, _ int) { sb.WriteString(n.name) }

// negNode is unary minus.
type negNode struct{ x node }

func (n negNode) eval(b Bindings) (float64, error) {
	v, err := n.x.eval(b)
	if err != nil {
		return 0, err
	}
	return -v, nil
}

func (n negNode) bind(b Bindings) node {
	x := n.x.bind(b)
	if lit, ok := x.(litNode); ok {
		return litNode{v: -lit.v}
	}
	return negNode{x: x}
}

func (n negNode) vars(seen map[string]struct{}) { n.x.vars(seen) }
func (n negNode) write(sb *strings.Builder, parent int) {
	if parent > precUnary {
		sb.WriteByte('(')
		sb.WriteByte('-')
		n.x.write(sb, precUnary)
		sb.WriteByte(')')
		return
	}
	sb.WriteByte('-')
	n.x.write(sb, precUnary)
}

// binNode is a binary operator application.
type binNode struct {
	op   byte // one of + - * / ^
	l, r node
}

func applyBin(op byte, l, r float64) float64 {
	switch op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	case '/':
		return l / r
	default: // '^'
		return math.Pow(l, r)
	}
}

func binPrec(op byte) int {
	switch op {
	case '+', '-':
		return precAdd
	case '*', '/':
		return precMul
	default:
		return precPow
	}
}

func (n binNode) eval(b Bindings) (float64, error) {
	l, err := n.l.eval(b)
	if err != nil {
		return 0, err
	}
	r, err := n.r.eval(b)
	if err != nil {
		return 0, err
	}
	return applyBin(n.op, l, r), nil
}

func (n binNode) bind(b Bindings) node {
	l, r := n.l.bind(b), n.r.bind(b)
	ll, lok := l.(litNode)
	rl, rok := r.(litNode)
	if lok && rok {
		return litNode{v: applyBin(n.op, ll.v, rl.v)}
	}
	return binNode{op: n.op, l: l, r: r}
}

func (n binNode) vars(seen map[string]struct{}) {
	n.l.vars(seen)
	n.r.vars(seen)
}

func (n binNode) write(sb *strings.Builder, parent int) {
	prec := binPrec(n.op)
	if prec < parent {
		sb.WriteByte('(')
	}
	n.l.write(sb, prec)
	sb.WriteByte(n.op)
	// Right operand needs one level more for left-associative operators so
	// a-(b-c) and a/(b/c) keep their parentheses; ^ is right-associative.
	if n.op == '^' {
		n.r.write(sb, prec)
	} else {
		n.r.write(sb, prec+1)
	}
	if prec < parent {
		sb.WriteByte(')')
	}
}

// callNode applies one of the predefined functions.
type callNode struct {
	fn  string
	arg node
}

func (n callNode) eval(b Bindings) (float64, error) {
	v, err := n.arg.eval(b)
	if err != nil {
		return 0, err
	}
	return functions[n.fn](v), nil
}

func (n callNode) bind(b Bindings) node {
	arg := n.arg.bind(b)
	if lit, ok := arg.(litNode); ok {
		return litNode{v: functions[n.fn](lit.v)}
	}
	return callNode{fn: n.fn, arg: arg}
}

func (n callNode) vars(seen map[string]struct{}) { n.arg.vars(seen) }
func (n callNode) write(sb *strings.Builder, _ int) {
	sb.WriteString(n.fn)
	sb.WriteByte('(')
	n.arg.write(sb, 0)
	sb.WriteByte(')')
}

// render produces the canonical text of a subtree.
func render(n node) string {
	var sb strings.Builder
	n.write(&sb, 0)
	return sb.String()
}
