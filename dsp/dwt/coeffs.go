package dwt

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Band holds one coefficient band for every batch row, shape [batch][length].
type Band [][]float64

// Coeffs is a 1-D decomposition ordered coarsest first:
// [cA_n, cD_n, ..., cD_1].
type Coeffs []Band

// Level returns the number of detail bands.
func (c Coeffs) Level() int {
	if len(c) == 0 {
		return 0
	}
	return len(c) - 1
}

// Approx returns the approximation band.
func (c Coeffs) Approx() Band {
	if len(c) == 0 {
		return nil
	}
	return c[0]
}

// Detail returns the detail band of the given level, 1 being the finest.
// It returns nil for levels outside 1..Level().
func (c Coeffs) Detail(level int) Band {
	if level < 1 || level > c.Level() {
		return nil
	}
	return c[len(c)-level]
}

// Batch returns the number of rows.
func (c Coeffs) Batch() int {
	if len(c) == 0 {
		return 0
	}
	return len(c[0])
}

// Lengths returns the per-row length of every band, coarsest first.
func (c Coeffs) Lengths() []int {
	out := make([]int, len(c))
	for i, band := range c {
		if len(band) > 0 {
			out[i] = len(band[0])
		}
	}
	return out
}

// Validate checks that every band has the same batch size, that rows within
// a band have equal length and that the approximation and coarsest detail
// agree.
func (c Coeffs) Validate() error {
	if len(c) == 0 || len(c[0]) == 0 {
		return ErrEmptyInput
	}
	batch := len(c[0])
	for i, band := range c {
		if len(band) != batch {
			return fmt.Errorf("%w: band %d has batch %d, want %d", ErrShape, i, len(band), batch)
		}
		for b, row := range band {
			if len(row) != len(band[0]) {
				return fmt.Errorf("%w: band %d row %d has %d samples, want %d", ErrShape, i, b, len(row), len(band[0]))
			}
		}
		if len(band[0]) == 0 {
			return fmt.Errorf("%w: band %d is empty", ErrShape, i)
		}
	}
	if len(c) > 1 && len(c[0][0]) != len(c[1][0]) {
		return fmt.Errorf("%w: approximation %d, coarsest detail %d", ErrShape, len(c[0][0]), len(c[1][0]))
	}
	return nil
}

// Flatten concatenates the bands of every row, coarsest first.
func (c Coeffs) Flatten() [][]float64 {
	total := 0
	for _, n := range c.Lengths() {
		total += n
	}
	out := make([][]float64, c.Batch())
	for b := range out {
		row := make([]float64, 0, total)
		for _, band := range c {
			row = append(row, band[b]...)
		}
		out[b] = row
	}
	return out
}

// Energy returns the sum of squares of every band over all rows.
func (c Coeffs) Energy() []float64 {
	out := make([]float64, len(c))
	for i, band := range c {
		for _, row := range band {
			out[i] += floats.Dot(row, row)
		}
	}
	return out
}

// Unflatten splits flattened rows back into bands of the given lengths.
// The bands share memory with flat.
func Unflatten(flat [][]float64, lengths []int) (Coeffs, error) {
	if len(flat) == 0 || len(lengths) == 0 {
		return nil, ErrEmptyInput
	}
	total := 0
	for i, n := range lengths {
		if n <= 0 {
			return nil, fmt.Errorf("%w: band %d has length %d", ErrShape, i, n)
		}
		total += n
	}

	c := make(Coeffs, len(lengths))
	for i := range c {
		c[i] = make(Band, len(flat))
	}
	for b, row := range flat {
		if len(row) != total {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrShape, b, len(row), total)
		}
		off := 0
		for i, n := range lengths {
			c[i][b] = row[off : off+n : off+n]
			off += n
		}
	}
	return c, nil
}
