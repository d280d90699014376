package dwt

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-wavelet/dsp/buffer"
	"github.com/cwbudde/algo-wavelet/dsp/conv"
	"github.com/cwbudde/algo-wavelet/dsp/pad"
	"github.com/cwbudde/algo-wavelet/dsp/wavelet"
)

// Errors returned by the transforms.
var (
	ErrEmptyInput           = errors.New("dwt: empty input")
	ErrShape                = errors.New("dwt: inconsistent shape")
	ErrInvalidLevel         = errors.New("dwt: invalid level")
	ErrInsufficientLength   = errors.New("dwt: signal too short for requested level")
	ErrReconstructionLength = errors.New("dwt: reconstruction length mismatch")
)

var scratch = buffer.NewPool()

// ResolveLevel validates a requested level against the maximum level of the
// input. Zero requests the maximum level.
func ResolveLevel(requested, maxLevel int) (int, error) {
	switch {
	case requested < 0:
		return 0, fmt.Errorf("%w: %d", ErrInvalidLevel, requested)
	case requested == 0:
		if maxLevel < 1 {
			return 0, fmt.Errorf("%w: no complete level fits", ErrInsufficientLength)
		}
		return maxLevel, nil
	case requested > maxLevel:
		return 0, fmt.Errorf("%w: level %d > max %d", ErrInsufficientLength, requested, maxLevel)
	}
	return requested, nil
}

// Wavedec computes the multi-level wavelet decomposition of each row of
// data. All rows must have the same length.
func Wavedec(data [][]float64, w wavelet.Source, opts ...Option) (Coeffs, error) {
	cfg := applyOptions(opts)
	n, err := rowLen(data)
	if err != nil {
		return nil, err
	}
	mode, err := pad.ParseMode(string(cfg.mode))
	if err != nil {
		return nil, err
	}
	bank, err := wavelet.Build(w, true)
	if err != nil {
		return nil, err
	}
	level, err := ResolveLevel(cfg.level, wavelet.MaxLevel(n, bank.Len()))
	if err != nil {
		return nil, err
	}

	c := make(Coeffs, level+1)
	for i := range c {
		c[i] = make(Band, len(data))
	}

	err = forEach(len(data), cfg.workers, func(b int) error {
		approx := data[b]
		for l := 1; l <= level; l++ {
			lo, hi, err := analyze(approx, bank, mode)
			if err != nil {
				return err
			}
			c[level+1-l][b] = hi
			approx = lo
		}
		c[0][b] = approx
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// WavedecSignal decomposes a single signal.
func WavedecSignal(x []float64, w wavelet.Source, opts ...Option) (Coeffs, error) {
	return Wavedec([][]float64{x}, w, opts...)
}

// Waverec reconstructs the rows of a decomposition produced by Wavedec.
// Only the filters of w are used; padding options are ignored except
// WithWorkers.
func Waverec(c Coeffs, w wavelet.Source, opts ...Option) ([][]float64, error) {
	cfg := applyOptions(opts)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	bank, err := wavelet.Build(w, false)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, c.Batch())
	err = forEach(len(out), cfg.workers, func(b int) error {
		approx := c[0][b]
		for pos := 1; pos < len(c); pos++ {
			next := -1
			if pos+1 < len(c) {
				next = len(c[pos+1][b])
			}
			rec, err := synthesize(approx, c[pos][b], bank, next)
			if err != nil {
				return fmt.Errorf("level %d: %w", len(c)-pos, err)
			}
			approx = rec
		}
		if len(c) == 1 {
			approx = append([]float64(nil), approx...)
		}
		out[b] = approx
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// WaverecSignal reconstructs a single signal from a batch-1 decomposition.
func WaverecSignal(c Coeffs, w wavelet.Source, opts ...Option) ([]float64, error) {
	if c.Batch() != 1 {
		return nil, fmt.Errorf("%w: batch %d, want 1", ErrShape, c.Batch())
	}
	rows, err := Waverec(c, w, opts...)
	if err != nil {
		return nil, err
	}
	return rows[0], nil
}

// analyze runs one analysis level. bank holds time-reversed filters.
func analyze(x []float64, bank wavelet.Bank, mode pad.Mode) (lo, hi []float64, err error) {
	p := PadFor(len(x), bank.Len())
	buf := scratch.Get(len(x) + p.Total())
	defer scratch.Put(buf)
	padded := buf.Samples()
	if err := pad.ApplyTo(padded, x, p.Left, mode); err != nil {
		return nil, nil, err
	}
	lo, err = conv.Strided(padded, bank.DecLo, 2)
	if err != nil {
		return nil, nil, err
	}
	hi, err = conv.Strided(padded, bank.DecHi, 2)
	if err != nil {
		return nil, nil, err
	}
	return lo, hi, nil
}

// synthesize runs one synthesis level. next is the length of the next finer
// detail band, or -1 at the finest level.
func synthesize(lo, hi []float64, bank wavelet.Bank, next int) ([]float64, error) {
	if len(lo) != len(hi) {
		return nil, fmt.Errorf("%w: approximation %d, detail %d", ErrShape, len(lo), len(hi))
	}
	if len(lo) == 0 {
		return nil, ErrEmptyInput
	}

	full := make([]float64, conv.TransposedLen(len(lo), bank.Len(), 2))
	if err := conv.TransposedAddTo(full, lo, bank.RecLo, 2); err != nil {
		return nil, err
	}
	if err := conv.TransposedAddTo(full, hi, bank.RecHi, 2); err != nil {
		return nil, err
	}

	left, right, err := crop(len(full), bank.Len(), next)
	if err != nil {
		return nil, err
	}
	return full[left : len(full)-right], nil
}

// crop returns the samples to drop from both ends of a synthesis output of
// length n so it matches the next finer band. When the symmetric crop
// misses by one, one more sample is taken from the right.
func crop(n, filtLen, next int) (left, right int, err error) {
	left = cropBase(filtLen)
	right = left
	if next >= 0 && n-left-right != next {
		right++
		if n-left-right != next {
			return 0, 0, fmt.Errorf("%w: predicted %d, next band %d", ErrReconstructionLength, n-left-right, next)
		}
	}
	if n-left-right <= 0 {
		return 0, 0, fmt.Errorf("%w: nothing left after cropping %d samples", ErrReconstructionLength, n)
	}
	return left, right, nil
}

func rowLen(data [][]float64) (int, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return 0, ErrEmptyInput
	}
	n := len(data[0])
	for b, row := range data {
		if len(row) != n {
			return 0, fmt.Errorf("%w: row %d has %d samples, want %d", ErrShape, b, len(row), n)
		}
	}
	return n, nil
}
