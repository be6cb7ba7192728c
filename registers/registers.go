package registers

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrKindMismatch indicates a register name redeclared under a different element kind.
	ErrKindMismatch = errors.New("registers: register redeclared with a different kind")
	// ErrNotDeclared indicates a row append to a register that was never declared.
	ErrNotDeclared = errors.New("registers: register not declared")
)

// Kind selects the element type stored by a register.
type Kind int

const (
	Bit Kind = iota
	Float
	Complex
)

// String returns the canonical kind name, also used as the text form.
func (k Kind) String() string {
	switch k {
	case Bit:
		return "Bit"
	case Float:
		return "Float"
	case Complex:
		return "Complex"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Bit, Float, Complex:
		return []byte(k.String()), nil
	default:
		return nil, fmt.Errorf("registers: unknown kind %d", int(k))
	}
}

// UnmarshalText decodes a kind name produced by MarshalText.
func (k *Kind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Bit":
		*k = Bit
	case "Float":
		*k = Float
	case "Complex":
		*k = Complex
	default:
		return fmt.Errorf("registers: unknown kind %q", text)
	}

	return nil
}

// BitRow holds one shot's bit values, indexed by register slot.
type BitRow []bool

// FloatRow holds one shot's float values.
type FloatRow []float64

// ComplexRow holds one shot's complex values.
type ComplexRow []complex128

// BitRegisters maps a register name to its recorded rows, one per shot.
type BitRegisters map[string][]BitRow

// FloatRegisters maps a register name to its recorded float rows.
type FloatRegisters map[string][]FloatRow

// ComplexRegisters maps a register name to its recorded complex rows.
type ComplexRegisters map[string][]ComplexRow

// Space bundles all classical registers produced by one or more circuit
// executions. The maps are the authoritative storage; the methods below
// are the cooperative access path used by backends and estimators.
type Space struct {
	Bits      BitRegisters
	Floats    FloatRegisters
	Complexes ComplexRegisters
}

// NewSpace returns an empty Space with all three families allocated.
func NewSpace() Space {
	return Space{
		Bits:      make(BitRegisters),
		Floats:    make(FloatRegisters),
		Complexes: make(ComplexRegisters),
	}
}

// Declare registers name under kind k with zero rows. Declaring the same
// name twice under the same kind is a no-op; under a different kind it
// fails with ErrKindMismatch.
func (s Space) Declare(name string, k Kind) error {
	if have, ok := s.KindOf(name); ok {
		if have != k {
			return fmt.Errorf("%w: %q is %s, redeclared as %s", ErrKindMismatch, name, have, k)
		}

		return nil
	}
	switch k {
	case Bit:
		s.Bits[name] = nil
	case Float:
		s.Floats[name] = nil
	case Complex:
		s.Complexes[name] = nil
	default:
		return fmt.Errorf("registers: unknown kind %d", int(k))
	}

	return nil
}

// KindOf reports the declared kind of name, scanning Bit, Float, Complex
// in that order when a hand-built Space holds the name more than once.
func (s Space) KindOf(name string) (Kind, bool) {
	if _, ok := s.Bits[name]; ok {
		return Bit, true
	}
	if _, ok := s.Floats[name]; ok {
		return Float, true
	}
	if _, ok := s.Complexes[name]; ok {
		return Complex, true
	}

	return 0, false
}

// AppendBitRow records one shot's row for a declared bit register.
func (s Space) AppendBitRow(name string, row BitRow) error {
	if err := s.checkDeclared(name, Bit); err != nil {
		return err
	}
	s.Bits[name] = append(s.Bits[name], row)

	return nil
}

// AppendFloatRow records one shot's row for a declared float register.
func (s Space) AppendFloatRow(name string, row FloatRow) error {
	if err := s.checkDeclared(name, Float); err != nil {
		return err
	}
	s.Floats[name] = append(s.Floats[name], row)

	return nil
}

// AppendComplexRow records one shot's row for a declared complex register.
func (s Space) AppendComplexRow(name string, row ComplexRow) error {
	if err := s.checkDeclared(name, Complex); err != nil {
		return err
	}
	s.Complexes[name] = append(s.Complexes[name], row)

	return nil
}

func (s Space) checkDeclared(name string, k Kind) error {
	have, ok := s.KindOf(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotDeclared, name)
	}
	if have != k {
		return fmt.Errorf("%w: %q is %s, written as %s", ErrKindMismatch, name, have, k)
	}

	return nil
}

// BitRows returns the rows of a bit register and whether it is declared.
// A declared register with zero recorded shots returns (nil-or-empty, true).
func (s Space) BitRows(name string) ([]BitRow, bool) {
	rows, ok := s.Bits[name]

	return rows, ok
}

// FloatRows returns the rows of a float register and whether it is declared.
func (s Space) FloatRows(name string) ([]FloatRow, bool) {
	rows, ok := s.Floats[name]

	return rows, ok
}

// ComplexRows returns the rows of a complex register and whether it is declared.
func (s Space) ComplexRows(name string) ([]ComplexRow, bool) {
	rows, ok := s.Complexes[name]

	return rows, ok
}

// Names lists the declared register names of one kind, sorted.
func (s Space) Names(k Kind) []string {
	var names []string
	switch k {
	case Bit:
		for name := range s.Bits {
			names = append(names, name)
		}
	case Float:
		for name := range s.Floats {
			names = append(names, name)
		}
	case Complex:
		for name := range s.Complexes {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	return names
}

// Merge pools two spaces into a new one: every register of the receiver
// appears first, and rows of registers present in both are appended in
// other's order after the receiver's. Neither input is modified; row
// storage is shared, so rows must be treated as immutable.
func (s Space) Merge(other Space) Space {
	out := NewSpace()
	for name, rows := range s.Bits {
		out.Bits[name] = append([]BitRow(nil), rows...)
	}
	for name, rows := range other.Bits {
		out.Bits[name] = append(out.Bits[name], rows...)
	}
	for name, rows := range s.Floats {
		out.Floats[name] = append([]FloatRow(nil), rows...)
	}
	for name, rows := range other.Floats {
		out.Floats[name] = append(out.Floats[name], rows...)
	}
	for name, rows := range s.Complexes {
		out.Complexes[name] = append([]ComplexRow(nil), rows...)
	}
	for name, rows := range other.Complexes {
		out.Complexes[name] = append(out.Complexes[name], rows...)
	}

	return out
}

// Equal reports whether two spaces hold the same registers with the same
// rows in the same order.
func (s Space) Equal(other Space) bool {
	if len(s.Bits) != len(other.Bits) ||
		len(s.Floats) != len(other.Floats) ||
		len(s.Complexes) != len(other.Complexes) {
		return false
	}
	for name, rows := range s.Bits {
		theirs, ok := other.Bits[name]
		if !ok || len(rows) != len(theirs) {
			return false
		}
		for i := range rows {
			if len(rows[i]) != len(theirs[i]) {
				return false
			}
			for j := range rows[i] {
				if rows[i][j] != theirs[i][j] {
					return false
				}
			}
		}
	}
	for name, rows := range s.Floats {
		theirs, ok := other.Floats[name]
		if !ok || len(rows) != len(theirs) {
			return false
		}
		for i := range rows {
			if len(rows[i]) != len(theirs[i]) {
				return false
			}
			for j := range rows[i] {
				if rows[i][j] != theirs[i][j] {
					return false
				}
			}
		}
	}
	for name, rows := range s.Complexes {
		theirs, ok := other.Complexes[name]
		if !ok || len(rows) != len(theirs) {
			return false
		}
		for i := range rows {
			if len(rows[i]) != len(theirs[i]) {
				return false
			}
			for j := range rows[i] {
				if rows[i][j] != theirs[i][j] {
					return false
				}
			}
		}
	}

	return true
}
