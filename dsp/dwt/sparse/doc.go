// Package sparse implements the discrete wavelet transform as products with
// sparse analysis and synthesis matrices.
//
// One analysis level of an n-sample signal is the [2M, n] matrix
//
//	A = [C_lo; C_hi] · P
//
// where P is the boundary extension operator of a pad.Mode and C_lo, C_hi
// are stride-2 correlation matrices with the analysis filters. Rows 0..M-1
// yield the approximation, rows M..2M-1 the detail, with
// M = floor((n+L-1)/2). A·x matches one level of dwt.Wavedec exactly. The
// synthesis matrix S [n, 2M] is the transposed convolution with the
// reconstruction filters followed by the crop back to n samples, so S·A = I.
//
// Matrices are immutable once built and are shared through a [Cache].
package sparse
