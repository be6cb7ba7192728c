package render

import (
	"fmt"
	"strings"

	"github.com/quarclab/quarc/circuit"
)

// cellKind selects the style a diagram cell is painted with.
type cellKind int

const (
	kindGate cellKind = iota
	kindControl
	kindTarget
	kindMeasure
	kindNoise
	kindCross
)

// cell is one column entry on one qubit wire. Boxed cells render as
// ┤token├; bare cells embed the token directly into the wire.
type cell struct {
	token string
	kind  cellKind
	boxed bool
}

// column is one operation's vertical slice of the diagram.
type column struct {
	cells map[int]cell
	lo    int // lowest involved qubit, -1 when none
	hi    int // highest involved qubit
}

// Draw renders the circuit as a Unicode wire diagram: register
// definitions first, the gate grid next, conditional bodies and wireless
// pragmas after it. The result always ends without a trailing newline
// and is identical run to run.
func Draw(c circuit.Circuit, opts ...Option) string {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var lines []string
	for _, op := range c.Operations() {
		if def, ok := op.(circuit.DefineRegister); ok {
			lines = append(lines, o.paint(registerHeader(def), headerStyle))
		}
	}

	qubits := c.QubitCount()
	cols, extras := buildColumns(c, qubits)
	if qubits > 0 && len(cols) > 0 {
		lines = append(lines, drawGrid(cols, qubits, o)...)
	}
	for _, extra := range extras {
		lines = append(lines, renderExtra(extra, o)...)
	}

	return strings.Join(lines, "\n")
}

// registerHeader formats one definition line above the grid.
func registerHeader(def circuit.DefineRegister) string {
	suffix := ""
	if def.Output {
		suffix = " output"
	}

	return fmt.Sprintf("%s: %s[%d]%s", def.Name, def.Element, def.Length, suffix)
}

// extra is a post-grid block: a conditional body or a wireless pragma.
type extra struct {
	label string
	body  *circuit.Circuit
}

// buildColumns turns the top-level operations into grid columns plus the
// blocks rendered after the grid.
func buildColumns(c circuit.Circuit, qubits int) ([]column, []extra) {
	var cols []column
	var extras []extra
	for _, op := range c.Operations() {
		col, ex, ok := opColumn(op, qubits)
		if ex != nil {
			extras = append(extras, *ex)
		}
		if ok {
			cols = append(cols, col)
		}
	}

	return cols, extras
}

// opColumn builds one operation's column. The switch is exhaustive over
// the closed variant set.
func opColumn(op circuit.Operation, qubits int) (column, *extra, bool) {
	col := column{cells: make(map[int]cell), lo: -1}
	put := func(q int, cl cell) {
		col.cells[q] = cl
		if col.lo == -1 || q < col.lo {
			col.lo = q
		}
		if q > col.hi {
			col.hi = q
		}
	}
	box := func(q int, token string) { put(q, cell{token: token, kind: kindGate, boxed: true}) }
	allRows := func(cl cell) {
		for q := 0; q < qubits; q++ {
			put(q, cl)
		}
	}

	switch g := op.(type) {
	case circuit.Hadamard:
		box(g.Qubit, "H")
	case circuit.PauliX:
		box(g.Qubit, "X")
	case circuit.PauliY:
		box(g.Qubit, "Y")
	case circuit.PauliZ:
		box(g.Qubit, "Z")
	case circuit.SqrtPauliX:
		box(g.Qubit, "√X")
	case circuit.SGate:
		box(g.Qubit, "S")
	case circuit.TGate:
		box(g.Qubit, "T")
	case circuit.RotateX:
		box(g.Qubit, "Rx("+g.Theta.String()+")")
	case circuit.RotateY:
		box(g.Qubit, "Ry("+g.Theta.String()+")")
	case circuit.RotateZ:
		box(g.Qubit, "Rz("+g.Theta.String()+")")
	case circuit.PhaseShift:
		box(g.Qubit, "P("+g.Phi.String()+")")
	case circuit.CNOT:
		put(g.Control, cell{token: "●", kind: kindControl})
		put(g.Target, cell{token: "⊕", kind: kindTarget})
	case circuit.ControlledPauliZ:
		put(g.Control, cell{token: "●", kind: kindControl})
		put(g.Target, cell{token: "●", kind: kindControl})
	case circuit.ControlledPhaseShift:
		put(g.Control, cell{token: "●", kind: kindControl})
		put(g.Target, cell{token: "P(" + g.Phi.String() + ")", kind: kindGate, boxed: true})
	case circuit.SWAP:
		put(g.Qubit0, cell{token: "×", kind: kindTarget})
		put(g.Qubit1, cell{token: "×", kind: kindTarget})
	case circuit.ISwap:
		put(g.Qubit0, cell{token: "×i", kind: kindTarget})
		put(g.Qubit1, cell{token: "×i", kind: kindTarget})
	case circuit.Toffoli:
		put(g.Control0, cell{token: "●", kind: kindControl})
		put(g.Control1, cell{token: "●", kind: kindControl})
		put(g.Target, cell{token: "⊕", kind: kindTarget})
	case circuit.DefineRegister:
		return column{}, nil, false // rendered as a header line
	case circuit.MeasureQubit:
		put(g.Qubit, cell{token: fmt.Sprintf("M→%s[%d]", g.Readout, g.ReadoutIndex), kind: kindMeasure})
	case circuit.PragmaRepeatedMeasurement:
		mark := cell{token: "M→" + g.Readout, kind: kindMeasure}
		if qs := g.InvolvedQubits(); len(qs) > 0 {
			for _, q := range qs {
				put(q, mark)
			}
		} else {
			allRows(mark)
		}
	case circuit.PragmaSetStateVector:
		if qs := g.InvolvedQubits(); len(qs) > 0 {
			for _, q := range qs {
				put(q, cell{token: "|ψ⟩", kind: kindGate, boxed: true})
			}
		} else {
			allRows(cell{token: "|ψ⟩", kind: kindGate, boxed: true})
		}
	case circuit.PragmaGetStateVector:
		mark := cell{token: "⟨ψ|", kind: kindGate, boxed: true}
		if qs := g.InvolvedQubits(); len(qs) > 0 {
			for _, q := range qs {
				put(q, mark)
			}
		} else {
			allRows(mark)
		}
	case circuit.PragmaConditional:
		token := fmt.Sprintf("%s[%d]?", g.Register, g.Bit)
		for _, q := range g.InvolvedQubits() {
			put(q, cell{token: token, kind: kindGate, boxed: true})
		}
		body := g.Body
		ex := &extra{label: fmt.Sprintf("if %s[%d]:", g.Register, g.Bit), body: &body}
		if len(col.cells) == 0 {
			return column{}, ex, false
		}

		return col, ex, true
	case circuit.PragmaDamping:
		put(g.Qubit, cell{token: "damp", kind: kindNoise, boxed: true})
	case circuit.PragmaDephasing:
		put(g.Qubit, cell{token: "deph", kind: kindNoise, boxed: true})
	case circuit.PragmaDepolarising:
		put(g.Qubit, cell{token: "depo", kind: kindNoise, boxed: true})
	}
	if len(col.cells) == 0 {
		return column{}, &extra{label: op.String()}, false
	}

	return col, nil, true
}

// drawGrid renders the qubit wires.
func drawGrid(cols []column, qubits int, o Options) []string {
	widths := make([]int, len(cols))
	for i, col := range cols {
		for _, cl := range col.cells {
			w := len([]rune(cl.token))
			if cl.boxed {
				w += 2
			}
			if w > widths[i] {
				widths[i] = w
			}
		}
	}

	labelWidth := len(fmt.Sprintf("q%d:", qubits-1))
	lines := make([]string, qubits)
	for q := 0; q < qubits; q++ {
		var sb strings.Builder
		label := fmt.Sprintf("q%d:", q)
		sb.WriteString(o.paint(label, labelStyle))
		sb.WriteString(strings.Repeat(" ", labelWidth-len(label)+1))
		sb.WriteString("─")
		for i, col := range cols {
			sb.WriteString(renderCell(col, q, widths[i], o))
			sb.WriteString("─")
		}
		lines[q] = sb.String()
	}

	return lines
}

// renderCell paints one wire segment: the operation's token, a crossing
// mark when the column's vertical link passes through, or plain wire.
func renderCell(col column, q, width int, o Options) string {
	cl, ok := col.cells[q]
	if !ok {
		if col.lo >= 0 && q > col.lo && q < col.hi {
			cl = cell{token: "┼", kind: kindCross}
		} else {
			return strings.Repeat("─", width)
		}
	}

	token := cl.token
	if cl.boxed {
		token = "┤" + token + "├"
	}
	fill := width - len([]rune(token))
	left := fill / 2

	return strings.Repeat("─", left) + o.paintCell(token, cl.kind) + strings.Repeat("─", fill-left)
}

// renderExtra renders a post-grid block: an indented conditional body or
// a one-line pragma note.
func renderExtra(ex extra, o Options) []string {
	if ex.body == nil {
		return []string{o.paint(ex.label, headerStyle)}
	}
	lines := []string{o.paint(ex.label, headerStyle)}
	sub := Draw(*ex.body, WithColor(o.Color))
	for _, line := range strings.Split(sub, "\n") {
		lines = append(lines, "  "+line)
	}

	return lines
}

// paint styles a non-cell fragment when color is on.
func (o Options) paint(text string, style interface{ Render(...string) string }) string {
	if !o.Color {
		return text
	}

	return style.Render(text)
}

// paintCell styles a cell token by kind when color is on.
func (o Options) paintCell(token string, k cellKind) string {
	if !o.Color {
		return token
	}
	switch k {
	case kindControl:
		return controlStyle.Render(token)
	case kindTarget:
		return gateStyle.Render(token)
	case kindMeasure:
		return measureStyle.Render(token)
	case kindNoise:
		return noiseStyle.Render(token)
	case kindCross:
		return token
	default:
		return gateStyle.Render(token)
	}
}
