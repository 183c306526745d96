package window

import "fmt"

func ExampleGenerate() {
	w := Generate(TypeHann, 4, WithPeriodic())
	fmt.Printf("%.2f %.1f\n", w, EquivalentNoiseBandwidth(w))
	// Output:
	// [0.00 0.50 1.00 0.50] 1.5
}
