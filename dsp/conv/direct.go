package conv

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-wavelet/dsp/buffer"
)

var scratch = buffer.NewPool()

// stridedTo evaluates one dot product per output sample.
func stridedTo(dst, x, kernel []float64, stride int) {
	m := len(kernel)
	for k := range dst {
		off := k * stride
		dst[k] = floats.Dot(kernel, x[off:off+m])
	}
}

// transposedAddTo scatters a scaled copy of the kernel per input sample.
// Uses vecmath operations to vectorize the inner loop.
func transposedAddTo(dst, x, kernel []float64, stride int) {
	m := len(kernel)
	buf := scratch.Get(m)
	defer scratch.Put(buf)
	temp := buf.Samples()
	for k, v := range x {
		if v == 0 {
			continue
		}
		off := k * stride
		vecmath.ScaleBlock(temp, kernel, v)
		vecmath.AddBlockInPlace(dst[off:off+m], temp)
	}
}
