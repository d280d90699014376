package dwt_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-wavelet/dsp/dwt"
	"github.com/cwbudde/algo-wavelet/dsp/pad"
	"github.com/cwbudde/algo-wavelet/dsp/wavelet"
)

func ExampleWavedecSignal() {
	haar, _ := wavelet.Lookup("haar")
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}

	c, _ := dwt.WavedecSignal(x, haar, dwt.WithLevel(1))

	fmt.Printf("bands: %v\n", c.Lengths())
	fmt.Printf("cA[0:3]: %.4f %.4f %.4f\n", c[0][0][0], c[0][0][1], c[0][0][2])
	fmt.Printf("cD[0]: %.4f\n", c[1][0][0])

	// Output:
	// bands: [8 8]
	// cA[0:3]: 2.1213 4.9497 7.7782
	// cD[0]: -0.7071
}

func ExampleWaverecSignal() {
	db2, _ := wavelet.Lookup("db2")
	x := []float64{0, 1, 2, 3, 4, 5, 5, 4, 3, 2, 1, 0}

	c, _ := dwt.WavedecSignal(x, db2, dwt.WithLevel(2), dwt.WithMode(pad.ModeZero))
	y, _ := dwt.WaverecSignal(c, db2)

	maxErr := 0.0
	for i := range x {
		maxErr = math.Max(maxErr, math.Abs(y[i]-x[i]))
	}

	fmt.Println(c.Lengths())
	fmt.Println(len(y), maxErr < 1e-12)

	// Output:
	// [5 5 7]
	// 12 true
}

func ExamplePadFor() {
	fmt.Println(dwt.PadFor(16, 4))
	fmt.Println(dwt.PadFor(17, 4))

	// Output:
	// {2 2}
	// {2 3}
}
