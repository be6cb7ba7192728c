package measurement

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Wire format: products as an ordered array (index = position), then
// combinations sorted by name with terms sorted by product index, so the
// encoding is deterministic.

type productJSON struct {
	Readout string `json:"readout"`
	Qubits  []int  `json:"qubits"`
}

type termJSON struct {
	Product     int     `json:"product"`
	Coefficient float64 `json:"coefficient"`
}

type combinationJSON struct {
	Name  string     `json:"name"`
	Terms []termJSON `json:"terms"`
}

type pauliZProductJSON struct {
	Products     []productJSON     `json:"pauli_products"`
	Combinations []combinationJSON `json:"linear_combinations"`
}

// MarshalJSON encodes the descriptor deterministically.
func (m PauliZProduct) MarshalJSON() ([]byte, error) {
	wire := pauliZProductJSON{
		Products:     make([]productJSON, len(m.products)),
		Combinations: make([]combinationJSON, 0, len(m.combos)),
	}
	for i, p := range m.products {
		wire.Products[i] = productJSON{Readout: p.Readout, Qubits: append([]int(nil), p.Qubits...)}
	}
	for _, name := range m.OutputNames() {
		combo := m.combos[name]
		terms := make([]termJSON, 0, len(combo))
		for idx, coeff := range combo {
			terms = append(terms, termJSON{Product: idx, Coefficient: coeff})
		}
		sort.Slice(terms, func(i, j int) bool { return terms[i].Product < terms[j].Product })
		wire.Combinations = append(wire.Combinations, combinationJSON{Name: name, Terms: terms})
	}

	return json.Marshal(wire)
}

// UnmarshalJSON rebuilds the descriptor through the regular registration
// path, so a wire form with dangling term indices is rejected exactly
// like a bad AddLinearCombination call.
func (m *PauliZProduct) UnmarshalJSON(data []byte) error {
	var wire pauliZProductJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("measurement: decode: %w", err)
	}

	rebuilt := NewPauliZProduct()
	for _, p := range wire.Products {
		rebuilt.AddPauliProduct(p.Readout, p.Qubits)
	}
	for _, combo := range wire.Combinations {
		terms := make(map[int]float64, len(combo.Terms))
		for _, term := range combo.Terms {
			terms[term.Product] = term.Coefficient
		}
		if err := rebuilt.AddLinearCombination(combo.Name, terms); err != nil {
			return fmt.Errorf("measurement: decode: %w", err)
		}
	}
	*m = rebuilt

	return nil
}
