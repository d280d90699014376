// Package dwt implements multi-level discrete wavelet transforms of batched
// 1-D signals and batched multi-channel 2-D planes.
//
// The forward transforms ([Wavedec], [Wavedec2]) pad each level with
// [PadFor], correlate with the time-reversed analysis filters and decimate
// by two. The inverse transforms ([Waverec], [Waverec2]) upsample, convolve
// with the synthesis filters and crop the padding again. Coefficient lengths,
// the default decomposition level and the band ordering match PyWavelets:
//
//	Coeffs  = [cA_n, cD_n, cD_n-1, ..., cD_1]
//	Coeffs2 = {Approx: LL_n, Details: [(H_n, V_n, D_n), ..., (H_1, V_1, D_1)]}
//
// Each level halves a band of length n into floor((n+L-1)/2) samples for a
// filter of length L.
//
// # Usage
//
//	w, _ := wavelet.Lookup("db2")
//	c, err := dwt.WavedecSignal(x, w, dwt.WithLevel(3), dwt.WithMode(pad.ModeZero))
//	y, err := dwt.WaverecSignal(c, w)
//
// Odd-length inputs reconstruct with one trailing extra sample at the finest
// level, as in the reference implementation. The matrix engine in package
// sparse returns the exact input length instead.
package dwt
