package sparse

import (
	"fmt"

	"github.com/cwbudde/algo-wavelet/dsp/dwt"
	"github.com/cwbudde/algo-wavelet/dsp/pad"
	"github.com/cwbudde/algo-wavelet/dsp/wavelet"
)

// Option configures a matrix transform.
type Option func(*config)

type config struct {
	mode   pad.Mode
	cache  *Cache
	length int
}

func defaultConfig() config {
	return config{
		mode:  pad.ModeReflect,
		cache: defaultCache,
	}
}

// WithMode sets the boundary extension built into the analysis matrices.
// Defaults to pad.ModeReflect.
func WithMode(m pad.Mode) Option {
	return func(c *config) {
		if m != "" {
			c.mode = m
		}
	}
}

// WithCache sets the matrix cache. Defaults to DefaultCache().
func WithCache(cache *Cache) Option {
	return func(c *config) {
		if cache != nil {
			c.cache = cache
		}
	}
}

// WithLength fixes the signal length returned by MatrixWaverec. Without it
// the finest level yields the even length 2M-L+2, the same length
// dwt.Waverec returns.
func WithLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.length = n
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// MatrixWavedec is a multi-level forward transform through cached analysis
// matrices.
type MatrixWavedec struct {
	w     wavelet.Source
	level int
	cfg   config
}

// NewMatrixWavedec returns a forward transform. Level 0 selects the maximum
// level for each input length.
func NewMatrixWavedec(w wavelet.Source, level int, opts ...Option) (*MatrixWavedec, error) {
	if _, err := wavelet.Build(w, false); err != nil {
		return nil, err
	}
	if level < 0 {
		return nil, fmt.Errorf("%w: %d", dwt.ErrInvalidLevel, level)
	}
	cfg := applyOptions(opts)
	if _, err := pad.ParseMode(string(cfg.mode)); err != nil {
		return nil, err
	}
	return &MatrixWavedec{w: w, level: level, cfg: cfg}, nil
}

// Apply decomposes every row of data. The result has the same layout as
// dwt.Wavedec.
func (t *MatrixWavedec) Apply(data [][]float64) (dwt.Coeffs, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, dwt.ErrEmptyInput
	}
	n := len(data[0])
	L := filterLen(t.w)
	level, err := dwt.ResolveLevel(t.level, wavelet.MaxLevel(n, L))
	if err != nil {
		return nil, err
	}

	c := make(dwt.Coeffs, level+1)
	approx := data
	for l := 1; l <= level; l++ {
		a, err := t.cfg.cache.Analysis(t.w, len(approx[0]), l, t.cfg.mode)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", l, err)
		}
		out, err := a.MulBatch(approx)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w: %w", l, dwt.ErrShape, err)
		}
		M := len(out[0]) / 2
		lo := make(dwt.Band, len(out))
		hi := make(dwt.Band, len(out))
		for b, row := range out {
			lo[b] = row[:M:M]
			hi[b] = row[M:]
		}
		c[level+1-l] = hi
		approx = lo
	}
	c[0] = approx
	return c, nil
}

// MatrixWaverec is a multi-level inverse transform through cached synthesis
// matrices. With WithLength it returns exactly the original length.
type MatrixWaverec struct {
	w     wavelet.Source
	level int
	cfg   config
}

// NewMatrixWaverec returns an inverse transform for coefficients of the
// given level. Level 0 accepts any level.
func NewMatrixWaverec(w wavelet.Source, level int, opts ...Option) (*MatrixWaverec, error) {
	if _, err := wavelet.Build(w, false); err != nil {
		return nil, err
	}
	if level < 0 {
		return nil, fmt.Errorf("%w: %d", dwt.ErrInvalidLevel, level)
	}
	return &MatrixWaverec{w: w, level: level, cfg: applyOptions(opts)}, nil
}

// Apply reconstructs the rows of c. The result depends only on c and the
// options, never on what the cache holds.
func (t *MatrixWaverec) Apply(c dwt.Coeffs) ([][]float64, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if t.level > 0 && c.Level() != t.level {
		return nil, fmt.Errorf("%w: coefficients have %d levels, want %d", dwt.ErrInvalidLevel, c.Level(), t.level)
	}
	L := filterLen(t.w)

	approx := [][]float64(c[0])
	for pos := 1; pos < len(c); pos++ {
		level := len(c) - pos
		n := t.targetLength(c, pos, L)
		s, err := t.cfg.cache.Synthesis(t.w, n, level)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", level, err)
		}
		if _, cols := s.Dims(); cols != 2*len(approx[0]) {
			return nil, fmt.Errorf("%w: level %d: %d coefficients for a %d-sample signal",
				dwt.ErrReconstructionLength, level, 2*len(approx[0]), n)
		}

		stacked := make([][]float64, len(approx))
		for b := range approx {
			row := make([]float64, 0, 2*len(approx[b]))
			row = append(row, approx[b]...)
			stacked[b] = append(row, c[pos][b]...)
		}
		approx, err = s.MulBatch(stacked)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", level, err)
		}
	}
	if len(c) == 1 {
		out := make([][]float64, len(approx))
		for b, row := range approx {
			out[b] = append([]float64(nil), row...)
		}
		return out, nil
	}
	return approx, nil
}

// targetLength returns the signal length the synthesis at pos produces:
// the next finer band length, or at the finest level the WithLength value or
// the even length 2M-L+2.
func (t *MatrixWaverec) targetLength(c dwt.Coeffs, pos, L int) int {
	if pos+1 < len(c) {
		return len(c[pos+1][0])
	}
	if t.cfg.length > 0 {
		return t.cfg.length
	}
	return 2*len(c[pos][0]) - L + 2
}

func filterLen(w wavelet.Source) int {
	decLo, _, _, _ := w.FilterBank()
	return len(decLo)
}
