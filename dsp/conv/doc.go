// Package conv provides the strided convolution primitives used by the
// wavelet filter banks.
//
// Two operations are offered, each in 1-D and 2-D form:
//
//   - Strided correlation: y[k] = sum_j h[j] * x[k*stride + j] over the
//     positions where the kernel fully overlaps the input. This is the
//     "convolution" of most array libraries, and with a time-reversed kernel
//     it is a true convolution followed by decimation.
//   - Strided transposed convolution: y[k*stride + j] += x[k] * h[j]. This is
//     upsampling by stride followed by full linear convolution, the adjoint of
//     strided correlation.
//
// # Algorithm Selection
//
// [Strided] and [Transposed] automatically select the algorithm:
//   - Kernel length < 64: direct evaluation with vecmath block kernels
//   - Kernel length >= 64: FFT-based evaluation through algo-fft
//
// Wavelet filters are almost always short, so the direct path is the common
// one; [StridedDirect], [StridedFFT], [TransposedDirect] and
// [TransposedFFT] force a specific path.
//
// # Usage
//
//	y, err := conv.Strided(x, kernel, 2)          // analysis: filter and decimate
//	err = conv.TransposedAddTo(dst, y, rec, 2)    // synthesis: upsample and accumulate
//	out, oh, ow, err := conv.Strided2D(plane, h, w, k2, kh, kw, 2)
package conv
