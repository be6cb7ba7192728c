package measurement

import (
	"sort"

	"github.com/quarclab/quarc/registers"
)

// ProductSpec describes one Pauli-Z parity observable: the bit register
// it reads and the row slots whose bits enter the parity.
type ProductSpec struct {
	Readout string
	Qubits  []int
}

// PauliZProduct is a measurement descriptor: registered parity products
// plus named linear combinations over their estimates. The zero value is
// ready to use.
type PauliZProduct struct {
	products []ProductSpec
	combos   map[string]map[int]float64
}

// NewPauliZProduct returns an empty descriptor.
func NewPauliZProduct() PauliZProduct {
	return PauliZProduct{combos: make(map[string]map[int]float64)}
}

// AddPauliProduct registers a parity product over the named bit register
// and returns its index. Indices start at 0, follow insertion order, and
// are never reused; products cannot be removed. Duplicate slots in the
// mask cancel pairwise under the parity, mirroring Z*Z = identity.
func (m *PauliZProduct) AddPauliProduct(readout string, qubits []int) int {
	m.products = append(m.products, ProductSpec{
		Readout: readout,
		Qubits:  append([]int(nil), qubits...),
	})

	return len(m.products) - 1
}

// AddLinearCombination names a weighted sum of product estimates. Every
// index in terms must already be registered; an unknown or negative index
// fails eagerly with *UnknownProductIndexError. Redefining an existing
// name overwrites it.
func (m *PauliZProduct) AddLinearCombination(name string, terms map[int]float64) error {
	for idx := range terms {
		if idx < 0 || idx >= len(m.products) {
			return &UnknownProductIndexError{Name: name, Index: idx}
		}
	}
	if m.combos == nil {
		m.combos = make(map[string]map[int]float64)
	}
	combo := make(map[int]float64, len(terms))
	for idx, coeff := range terms {
		combo[idx] = coeff
	}
	m.combos[name] = combo

	return nil
}

// Evaluate computes every named output from the recorded rows. Per
// product: parity per row is the XOR of the masked bits, each row
// contributes (-1)^parity, and the estimate is the mean contribution.
// Only products referenced by some combination are demanded from the
// space.
//
// Errors: *MissingRegisterError when a required register is absent,
// *NoDataError when it is present with zero rows, *MaskRangeError when a
// mask slot exceeds a row's width.
// Complexity: O(rows * mask size) per required product.
func (m PauliZProduct) Evaluate(space registers.Space) (map[string]float64, error) {
	needed := make(map[int]struct{})
	for _, combo := range m.combos {
		for idx := range combo {
			needed[idx] = struct{}{}
		}
	}

	estimates := make(map[int]float64, len(needed))
	for idx := range needed {
		est, err := m.estimate(m.products[idx], space)
		if err != nil {
			return nil, err
		}
		estimates[idx] = est
	}

	out := make(map[string]float64, len(m.combos))
	for name, combo := range m.combos {
		sum := 0.0
		for idx, coeff := range combo {
			sum += coeff * estimates[idx]
		}
		out[name] = sum
	}

	return out, nil
}

// estimate computes the mean parity contribution of one product.
func (m PauliZProduct) estimate(spec ProductSpec, space registers.Space) (float64, error) {
	rows, ok := space.BitRows(spec.Readout)
	if !ok {
		return 0, &MissingRegisterError{Readout: spec.Readout}
	}
	if len(rows) == 0 {
		return 0, &NoDataError{Readout: spec.Readout}
	}

	sum := 0.0
	for _, row := range rows {
		parity := false
		for _, slot := range spec.Qubits {
			if slot < 0 || slot >= len(row) {
				return 0, &MaskRangeError{Readout: spec.Readout, Slot: slot, RowLen: len(row)}
			}
			parity = parity != row[slot]
		}
		if parity {
			sum--
		} else {
			sum++
		}
	}

	return sum / float64(len(rows)), nil
}

// Products returns a deep copy of the registered products in index order.
func (m PauliZProduct) Products() []ProductSpec {
	out := make([]ProductSpec, len(m.products))
	for i, p := range m.products {
		out[i] = ProductSpec{Readout: p.Readout, Qubits: append([]int(nil), p.Qubits...)}
	}

	return out
}

// Combinations returns a deep copy of the named combinations.
func (m PauliZProduct) Combinations() map[string]map[int]float64 {
	out := make(map[string]map[int]float64, len(m.combos))
	for name, combo := range m.combos {
		c := make(map[int]float64, len(combo))
		for idx, coeff := range combo {
			c[idx] = coeff
		}
		out[name] = c
	}

	return out
}

// OutputNames lists the defined combination names, sorted.
func (m PauliZProduct) OutputNames() []string {
	names := make([]string, 0, len(m.combos))
	for name := range m.combos {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Clone returns an independent copy of the descriptor.
func (m PauliZProduct) Clone() PauliZProduct {
	return PauliZProduct{products: m.Products(), combos: m.Combinations()}
}

// Equal reports whether two descriptors register the same products in the
// same order with the same combinations.
func (m PauliZProduct) Equal(other PauliZProduct) bool {
	if len(m.products) != len(other.products) || len(m.combos) != len(other.combos) {
		return false
	}
	for i, p := range m.products {
		q := other.products[i]
		if p.Readout != q.Readout || len(p.Qubits) != len(q.Qubits) {
			return false
		}
		for j := range p.Qubits {
			if p.Qubits[j] != q.Qubits[j] {
				return false
			}
		}
	}
	for name, combo := range m.combos {
		theirs, ok := other.combos[name]
		if !ok || len(combo) != len(theirs) {
			return false
		}
		for idx, coeff := range combo {
			c, ok := theirs[idx]
			if !ok || c != coeff {
				return false
			}
		}
	}

	return true
}
