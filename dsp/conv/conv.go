package conv

import (
	"errors"
	"fmt"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
	ErrInvalidStride  = errors.New("conv: invalid stride")
	ErrShortInput     = errors.New("conv: input shorter than kernel")
)

// fftThreshold is the kernel length from which the FFT path is used.
const fftThreshold = 64

// StridedLen returns the output length of a strided correlation of an
// n-sample input with an m-tap kernel, or 0 if the kernel does not fit.
func StridedLen(n, m, stride int) int {
	if n < m || m <= 0 || stride <= 0 {
		return 0
	}
	return (n-m)/stride + 1
}

// TransposedLen returns the output length of a strided transposed
// convolution of an n-sample input with an m-tap kernel.
func TransposedLen(n, m, stride int) int {
	if n <= 0 || m <= 0 || stride <= 0 {
		return 0
	}
	return (n-1)*stride + m
}

func checkStrided(n, m, stride int) error {
	if n == 0 {
		return ErrEmptyInput
	}
	if m == 0 {
		return ErrEmptyKernel
	}
	if stride <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidStride, stride)
	}
	if n < m {
		return fmt.Errorf("%w: %d < %d", ErrShortInput, n, m)
	}
	return nil
}

func checkTransposed(n, m, stride int) error {
	if n == 0 {
		return ErrEmptyInput
	}
	if m == 0 {
		return ErrEmptyKernel
	}
	if stride <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidStride, stride)
	}
	return nil
}

// Strided computes the strided valid cross-correlation of x with kernel.
// The result has StridedLen(len(x), len(kernel), stride) samples.
func Strided(x, kernel []float64, stride int) ([]float64, error) {
	if len(kernel) >= fftThreshold {
		return StridedFFT(x, kernel, stride)
	}
	return StridedDirect(x, kernel, stride)
}

// StridedDirect computes the strided correlation in the time domain.
func StridedDirect(x, kernel []float64, stride int) ([]float64, error) {
	if err := checkStrided(len(x), len(kernel), stride); err != nil {
		return nil, err
	}
	dst := make([]float64, StridedLen(len(x), len(kernel), stride))
	stridedTo(dst, x, kernel, stride)
	return dst, nil
}

// StridedTo computes the strided correlation into dst, which must have
// StridedLen(len(x), len(kernel), stride) samples. It always uses the
// direct path and does not allocate.
func StridedTo(dst, x, kernel []float64, stride int) error {
	if err := checkStrided(len(x), len(kernel), stride); err != nil {
		return err
	}
	if want := StridedLen(len(x), len(kernel), stride); len(dst) != want {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, want, len(dst))
	}
	stridedTo(dst, x, kernel, stride)
	return nil
}

// Transposed computes the strided transposed convolution of x with kernel.
// The result has TransposedLen(len(x), len(kernel), stride) samples.
func Transposed(x, kernel []float64, stride int) ([]float64, error) {
	if len(kernel) >= fftThreshold {
		return TransposedFFT(x, kernel, stride)
	}
	return TransposedDirect(x, kernel, stride)
}

// TransposedDirect computes the transposed convolution in the time domain.
func TransposedDirect(x, kernel []float64, stride int) ([]float64, error) {
	if err := checkTransposed(len(x), len(kernel), stride); err != nil {
		return nil, err
	}
	dst := make([]float64, TransposedLen(len(x), len(kernel), stride))
	transposedAddTo(dst, x, kernel, stride)
	return dst, nil
}

// TransposedAddTo accumulates the transposed convolution of x with kernel
// into dst, which must have TransposedLen(len(x), len(kernel), stride)
// samples. Summing several channels into one buffer is the synthesis step
// of a filter bank.
func TransposedAddTo(dst, x, kernel []float64, stride int) error {
	if err := checkTransposed(len(x), len(kernel), stride); err != nil {
		return err
	}
	if want := TransposedLen(len(x), len(kernel), stride); len(dst) != want {
		return fmt.Errorf("%w: expected %d, got %d", ErrLengthMismatch, want, len(dst))
	}
	transposedAddTo(dst, x, kernel, stride)
	return nil
}
