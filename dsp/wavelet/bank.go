package wavelet

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"
	"math/bits"
)

// Bank holds the four filters of a wavelet, oriented for use by a transform.
type Bank struct {
	DecLo []float64
	DecHi []float64
	RecLo []float64
	RecHi []float64
}

// Build converts src into a Bank. When flip is true every filter is
// time-reversed so that a strided cross-correlation with it implements the
// convolution of the transform. The returned slices are fresh copies.
func Build(src Source, flip bool) (Bank, error) {
	if src == nil {
		return Bank{}, fmt.Errorf("%w: nil source", ErrInvalidSpec)
	}
	decLo, decHi, recLo, recHi := src.FilterBank()
	if err := validate(decLo, decHi, recLo, recHi); err != nil {
		return Bank{}, fmt.Errorf("%s: %w", src.Name(), err)
	}

	orient := clone
	if flip {
		orient = reversed
	}
	return Bank{
		DecLo: orient(decLo),
		DecHi: orient(decHi),
		RecLo: orient(recLo),
		RecHi: orient(recHi),
	}, nil
}

// Len returns the filter length L.
func (b Bank) Len() int {
	return len(b.DecLo)
}

// Analysis2D returns the four separable analysis filters ordered
// LL, LH, HL, HH, each an L×L row-major kernel.
func (b Bank) Analysis2D() [4][]float64 {
	return outerBank(b.DecLo, b.DecHi)
}

// Synthesis2D returns the four separable synthesis filters ordered
// LL, LH, HL, HH, each an L×L row-major kernel.
func (b Bank) Synthesis2D() [4][]float64 {
	return outerBank(b.RecLo, b.RecHi)
}

func outerBank(lo, hi []float64) [4][]float64 {
	return [4][]float64{
		Outer(lo, lo),
		Outer(hi, lo),
		Outer(lo, hi),
		Outer(hi, hi),
	}
}

// Outer returns the outer product of a and b as a len(a)×len(b) row-major
// matrix: out[i*len(b)+j] = a[i]*b[j]. The first factor runs along the rows
// (height), the second along the columns (width).
func Outer(a, b []float64) []float64 {
	out := make([]float64, len(a)*len(b))
	for i, av := range a {
		row := out[i*len(b) : (i+1)*len(b)]
		for j, bv := range b {
			row[j] = av * bv
		}
	}
	return out
}

// MaxLevel returns the deepest useful decomposition level for a signal of
// dataLen samples and a filter of filtLen taps, following the reference
// rule floor(log2(dataLen / (filtLen-1))) with integer division.
// It returns 0 when filtLen < 2 or dataLen < filtLen-1.
func MaxLevel(dataLen, filtLen int) int {
	if filtLen < 2 || dataLen < filtLen-1 {
		return 0
	}
	return bits.Len(uint(dataLen/(filtLen-1))) - 1
}

// MaxLevelN returns the minimum MaxLevel over all axes of shape.
func MaxLevelN(shape []int, filtLen int) int {
	if len(shape) == 0 {
		return 0
	}
	level := MaxLevel(shape[0], filtLen)
	for _, n := range shape[1:] {
		level = min(level, MaxLevel(n, filtLen))
	}
	return level
}

// Fingerprint returns a stable identity for the filters of src, combining
// its name with a hash of the coefficient bits. Two sources with the same
// name but different coefficients get different fingerprints.
func Fingerprint(src Source) string {
	decLo, decHi, recLo, recHi := src.FilterBank()
	h := fnv.New64a()
	var buf [8]byte
	for _, f := range [][]float64{decLo, decHi, recLo, recHi} {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(f)))
		_, _ = h.Write(buf[:])
		for _, v := range f {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = h.Write(buf[:])
		}
	}
	return fmt.Sprintf("%s/%016x", src.Name(), h.Sum64())
}
