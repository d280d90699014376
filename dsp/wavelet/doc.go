// Package wavelet provides the filter banks consumed by the discrete wavelet
// transforms in [github.com/cwbudde/algo-wavelet/dsp/dwt].
//
// A wavelet is described by four equal-length FIR sequences: the analysis
// (decomposition) low-pass and high-pass filters and the synthesis
// (reconstruction) low-pass and high-pass filters. Anything that can report
// these four sequences satisfies [Source]; the package ships a small catalog
// of published orthogonal wavelets and a [Learnable] source whose scaling
// filter is a mutable parameter vector.
//
// # Usage
//
//	w, err := wavelet.Lookup("db2")
//	bank, err := wavelet.Build(w, true) // analysis orientation
//
// Filters are stored in the orientation published by PyWavelets. The
// transforms apply the analysis filters time-reversed so that a strided
// cross-correlation computes the true convolution; [Build] performs that
// flip when asked to.
//
// # Decomposition depth
//
// [MaxLevel] mirrors the reference maximum-level rule
// floor(log2(n / (L-1))) so that unspecified levels match the reference
// implementation exactly.
package wavelet
