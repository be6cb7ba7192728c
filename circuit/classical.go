package circuit

import (
	"fmt"

	"github.com/quarclab/quarc/registers"
	"github.com/quarclab/quarc/scalar"
)

// DefineRegister declares classical storage the circuit writes into.
// Length is fixed at declaration. Output controls whether the backend
// returns the register to the caller or keeps it as internal scratch.
type DefineRegister struct {
	Name    string         `json:"name"`
	Length  int            `json:"length"`
	Element registers.Kind `json:"element"`
	Output  bool           `json:"output"`
}

func (d DefineRegister) Kind() Kind                                    { return KindDefineRegister }
func (d DefineRegister) InvolvedQubits() []int                         { return nil }
func (d DefineRegister) Substitute(scalar.Bindings) (Operation, error) { return d, nil }
func (d DefineRegister) Bind(scalar.Bindings) Operation                { return d }

func (d DefineRegister) String() string {
	suffix := ""
	if d.Output {
		suffix = ", output"
	}

	return fmt.Sprintf("DefineRegister(%s, %s[%d]%s)", d.Name, d.Element, d.Length, suffix)
}
func (d DefineRegister) isOperation() {}

// MeasureQubit projectively measures one qubit and stores the bit at
// Readout[ReadoutIndex].
type MeasureQubit struct {
	Qubit        int    `json:"qubit"`
	Readout      string `json:"readout"`
	ReadoutIndex int    `json:"readout_index"`
}

func (m MeasureQubit) Kind() Kind                                    { return KindMeasureQubit }
func (m MeasureQubit) InvolvedQubits() []int                         { return []int{m.Qubit} }
func (m MeasureQubit) Substitute(scalar.Bindings) (Operation, error) { return m, nil }
func (m MeasureQubit) Bind(scalar.Bindings) Operation                { return m }

func (m MeasureQubit) String() string {
	return fmt.Sprintf("MeasureQubit(%d -> %s[%d])", m.Qubit, m.Readout, m.ReadoutIndex)
}
func (m MeasureQubit) isOperation() {}
