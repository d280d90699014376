package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// StridedFFT computes the strided correlation through a full FFT-based
// linear correlation, keeping every stride-th valid lag.
func StridedFFT(x, kernel []float64, stride int) ([]float64, error) {
	if err := checkStrided(len(x), len(kernel), stride); err != nil {
		return nil, err
	}

	// Correlation is convolution with the time-reversed kernel.
	m := len(kernel)
	rev := make([]float64, m)
	for i, v := range kernel {
		rev[m-1-i] = v
	}
	full, err := convolveFFT(x, rev)
	if err != nil {
		return nil, err
	}

	// Valid lag t lives at full index t + m - 1.
	dst := make([]float64, StridedLen(len(x), m, stride))
	for k := range dst {
		dst[k] = full[k*stride+m-1]
	}
	return dst, nil
}

// TransposedFFT computes the transposed convolution as zero-stuffing
// followed by an FFT-based full linear convolution.
func TransposedFFT(x, kernel []float64, stride int) ([]float64, error) {
	if err := checkTransposed(len(x), len(kernel), stride); err != nil {
		return nil, err
	}

	up := make([]float64, (len(x)-1)*stride+1)
	for k, v := range x {
		up[k*stride] = v
	}
	return convolveFFT(up, kernel)
}

// convolveFFT returns the full linear convolution of a and b.
func convolveFFT(a, b []float64) ([]float64, error) {
	n := len(a)
	m := len(b)
	outputLen := n + m - 1
	fftSize := nextPowerOf2(outputLen)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	aPadded := make([]complex128, fftSize)
	bPadded := make([]complex128, fftSize)
	for i, v := range a {
		aPadded[i] = complex(v, 0)
	}
	for i, v := range b {
		bPadded[i] = complex(v, 0)
	}

	aFreq := make([]complex128, fftSize)
	bFreq := make([]complex128, fftSize)
	if err := plan.Forward(aFreq, aPadded); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	if err := plan.Forward(bFreq, bPadded); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	for i := range aFreq {
		aFreq[i] *= bFreq[i]
	}

	// Reuse aPadded as the time-domain output.
	if err := plan.Inverse(aPadded, aFreq); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	result := make([]float64, outputLen)
	for i := range result {
		result[i] = real(aPadded[i])
	}
	return result, nil
}

// nextPowerOf2 returns the smallest power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
