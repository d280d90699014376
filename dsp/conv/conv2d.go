package conv

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Strided2D computes the strided valid 2-D cross-correlation of a row-major
// h×w plane with a row-major kh×kw kernel. The same stride applies to both
// axes.
func Strided2D(x []float64, h, w int, kernel []float64, kh, kw, stride int) (out []float64, outH, outW int, err error) {
	if err := check2D(x, h, w, kernel, kh, kw); err != nil {
		return nil, 0, 0, err
	}
	if err := checkStrided(h, kh, stride); err != nil {
		return nil, 0, 0, fmt.Errorf("height: %w", err)
	}
	if err := checkStrided(w, kw, stride); err != nil {
		return nil, 0, 0, fmt.Errorf("width: %w", err)
	}

	outH = StridedLen(h, kh, stride)
	outW = StridedLen(w, kw, stride)
	out = make([]float64, outH*outW)
	for i := range outH {
		row := out[i*outW : (i+1)*outW]
		for a := range kh {
			src := x[(i*stride+a)*w : (i*stride+a+1)*w]
			krow := kernel[a*kw : (a+1)*kw]
			for j := range row {
				off := j * stride
				row[j] += floats.Dot(krow, src[off:off+kw])
			}
		}
	}
	return out, outH, outW, nil
}

// Transposed2DAddTo accumulates the strided transposed 2-D convolution of a
// row-major h×w plane with a kh×kw kernel into dst, which must be a
// TransposedLen(h, kh, stride)×TransposedLen(w, kw, stride) plane.
func Transposed2DAddTo(dst, x []float64, h, w int, kernel []float64, kh, kw, stride int) error {
	if err := check2D(x, h, w, kernel, kh, kw); err != nil {
		return err
	}
	if err := checkTransposed(h, kh, stride); err != nil {
		return err
	}
	outH := TransposedLen(h, kh, stride)
	outW := TransposedLen(w, kw, stride)
	if len(dst) != outH*outW {
		return fmt.Errorf("%w: expected %dx%d, got %d", ErrLengthMismatch, outH, outW, len(dst))
	}

	temp := make([]float64, kw)
	for i := range h {
		for j := range w {
			v := x[i*w+j]
			if v == 0 {
				continue
			}
			for a := range kh {
				off := (i*stride+a)*outW + j*stride
				vecmath.ScaleBlock(temp, kernel[a*kw:(a+1)*kw], v)
				vecmath.AddBlockInPlace(dst[off:off+kw], temp)
			}
		}
	}
	return nil
}

func check2D(x []float64, h, w int, kernel []float64, kh, kw int) error {
	if h <= 0 || w <= 0 || len(x) == 0 {
		return ErrEmptyInput
	}
	if kh <= 0 || kw <= 0 || len(kernel) == 0 {
		return ErrEmptyKernel
	}
	if len(x) != h*w {
		return fmt.Errorf("%w: input %d, want %dx%d", ErrLengthMismatch, len(x), h, w)
	}
	if len(kernel) != kh*kw {
		return fmt.Errorf("%w: kernel %d, want %dx%d", ErrLengthMismatch, len(kernel), kh, kw)
	}
	return nil
}
