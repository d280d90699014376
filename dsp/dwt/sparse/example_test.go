package sparse_test

import (
	"fmt"

	"github.com/cwbudde/algo-wavelet/dsp/dwt/sparse"
	"github.com/cwbudde/algo-wavelet/dsp/wavelet"
)

func ExampleMatrixWavedec() {
	haar, _ := wavelet.Lookup("haar")

	dec, _ := sparse.NewMatrixWavedec(haar, 1)
	c, _ := dec.Apply([][]float64{{1, 2, 3, 4}})
	fmt.Printf("%.4f\n", c.Approx()[0])
	fmt.Printf("%.4f\n", c.Detail(1)[0])

	rec, _ := sparse.NewMatrixWaverec(haar, 1)
	y, _ := rec.Apply(c)
	fmt.Printf("%.4f\n", y[0])

	// Output:
	// [2.1213 4.9497]
	// [-0.7071 -0.7071]
	// [1.0000 2.0000 3.0000 4.0000]
}

func ExampleConstructAnalysis() {
	haar, _ := wavelet.Lookup("haar")
	a, _ := sparse.ConstructAnalysis(haar, 8, "zero")
	rows, cols := a.Dims()
	fmt.Println(rows, cols, a.NNZ())

	// Output:
	// 8 8 16
}
