package sparse

import (
	"fmt"

	"github.com/cwbudde/algo-wavelet/dsp/dwt"
	"github.com/cwbudde/algo-wavelet/dsp/pad"
	"github.com/cwbudde/algo-wavelet/dsp/wavelet"
)

// ConstructAnalysis builds the [2M, n] single-level analysis matrix of w for
// n-sample signals extended with mode.
func ConstructAnalysis(w wavelet.Source, n int, mode pad.Mode) (*CSR, error) {
	bank, err := wavelet.Build(w, true)
	if err != nil {
		return nil, err
	}
	L := bank.Len()
	if n < L {
		return nil, fmt.Errorf("%w: %d samples for a %d-tap filter", dwt.ErrInsufficientLength, n, L)
	}
	mode, err = pad.ParseMode(string(mode))
	if err != nil {
		return nil, err
	}

	p := dwt.PadFor(n, L)
	M := dwt.BandLen(n, L)
	b := newBuilder(2*M, n)
	for half, filt := range [2][]float64{bank.DecLo, bank.DecHi} {
		for k := range M {
			for j, v := range filt {
				// Padded sample 2k+j reads source sample col.
				col, ok := mode.Index(2*k+j-p.Left, n)
				if !ok {
					continue
				}
				b.add(half*M+k, col, v)
			}
		}
	}
	return b.build(), nil
}

// ConstructSynthesis builds the [n, 2M] single-level synthesis matrix of w.
// Its columns take the approximation followed by the detail band.
func ConstructSynthesis(w wavelet.Source, n int) (*CSR, error) {
	bank, err := wavelet.Build(w, false)
	if err != nil {
		return nil, err
	}
	L := bank.Len()
	if n < L {
		return nil, fmt.Errorf("%w: %d samples for a %d-tap filter", dwt.ErrInsufficientLength, n, L)
	}

	left := dwt.PadFor(n, L).Left
	M := dwt.BandLen(n, L)
	b := newBuilder(n, 2*M)
	for half, filt := range [2][]float64{bank.RecLo, bank.RecHi} {
		for k := range M {
			for j, v := range filt {
				row := 2*k + j - left
				if row < 0 || row >= n {
					continue
				}
				b.add(row, half*M+k, v)
			}
		}
	}
	return b.build(), nil
}
