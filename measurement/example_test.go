package measurement_test

import (
	"fmt"

	"github.com/quarclab/quarc/measurement"
	"github.com/quarclab/quarc/registers"
)

// ExamplePauliZProduct estimates <Z0 Z1> from four recorded shots.
func ExamplePauliZProduct() {
	space := registers.NewSpace()
	_ = space.Declare("ro", registers.Bit)
	_ = space.AppendBitRow("ro", registers.BitRow{false, false})
	_ = space.AppendBitRow("ro", registers.BitRow{true, true})
	_ = space.AppendBitRow("ro", registers.BitRow{false, false})
	_ = space.AppendBitRow("ro", registers.BitRow{true, false})

	m := measurement.NewPauliZProduct()
	zz := m.AddPauliProduct("ro", []int{0, 1})
	_ = m.AddLinearCombination("corr", map[int]float64{zz: 1.0})

	values, err := m.Evaluate(space)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("corr = %.2f\n", values["corr"])
	// Output:
	// corr = 0.50
}
