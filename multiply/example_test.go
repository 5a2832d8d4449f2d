package multiply_test

import (
	"fmt"

	"github.com/sparsekit/csrmul/csr"
	"github.com/sparsekit/csrmul/multiply"
)

// ExampleMultiply multiplies a diagonal matrix by a full 2x2 matrix and
// prints the product's CSR triple.
func ExampleMultiply() {
	// |1 0|       |3 4|
	// |0 2|  and  |5 6|
	a, _ := csr.NewFromParts(2, 2,
		[]float32{1, 2},
		[]int{0, 1},
		[]int{0, 1, 2})
	b, _ := csr.NewFromParts(2, 2,
		[]float32{3, 4, 5, 6},
		[]int{0, 1, 0, 1},
		[]int{0, 2, 4})

	c, err := multiply.Multiply(a, b, multiply.WithKernel(multiply.Scatter))
	if err != nil {
		fmt.Println("multiply failed:", err)
		return
	}

	fmt.Println("values:", c.Values)
	fmt.Println("columns:", c.ColIndices)
	fmt.Println("row pointers:", c.RowPtr)
	// Output:
	// values: [3 4 10 12]
	// columns: [0 1 0 1]
	// row pointers: [0 2 4]
}

// ExampleParseKernel maps a CLI-style numeric selector onto a kernel.
func ExampleParseKernel() {
	k, err := multiply.ParseKernel(5)
	if err != nil {
		fmt.Println("bad selector:", err)
		return
	}
	fmt.Println(k)
	// Output:
	// scatter-predicted
}
