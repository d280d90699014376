package sparse

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// ErrDims is returned when operand sizes do not match a matrix.
var ErrDims = errors.New("sparse: dimension mismatch")

// CSR is an immutable matrix in compressed sparse row form. It implements
// mat.Matrix.
type CSR struct {
	rows, cols int
	indptr     []int
	indices    []int
	data       []float64
}

var _ mat.Matrix = (*CSR)(nil)

// Dims returns the number of rows and columns.
func (m *CSR) Dims() (r, c int) {
	return m.rows, m.cols
}

// At returns the element at row i, column j. It panics when the indices are
// out of range, like the gonum matrix types.
func (m *CSR) At(i, j int) float64 {
	if uint(i) >= uint(m.rows) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) >= uint(m.cols) {
		panic(mat.ErrColAccess)
	}
	cols := m.indices[m.indptr[i]:m.indptr[i+1]]
	if k, ok := slices.BinarySearch(cols, j); ok {
		return m.data[m.indptr[i]+k]
	}
	return 0
}

// T returns an implicit transpose.
func (m *CSR) T() mat.Matrix {
	return mat.Transpose{Matrix: m}
}

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int {
	return len(m.data)
}

// Bandwidth returns the widest column span of any row.
func (m *CSR) Bandwidth() int {
	width := 0
	for i := range m.rows {
		lo, hi := m.indptr[i], m.indptr[i+1]
		if lo == hi {
			continue
		}
		width = max(width, m.indices[hi-1]-m.indices[lo]+1)
	}
	return width
}

// MulVec computes dst = m·x.
func (m *CSR) MulVec(dst, x []float64) error {
	if len(x) != m.cols || len(dst) != m.rows {
		return fmt.Errorf("%w: [%d %d]·%d -> %d", ErrDims, m.rows, m.cols, len(x), len(dst))
	}
	for i := range m.rows {
		var sum float64
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			sum += m.data[k] * x[m.indices[k]]
		}
		dst[i] = sum
	}
	return nil
}

// MulBatch multiplies every row of x, treated as a column vector, by m.
func (m *CSR) MulBatch(x [][]float64) ([][]float64, error) {
	out := make([][]float64, len(x))
	for b, row := range x {
		out[b] = make([]float64, m.rows)
		if err := m.MulVec(out[b], row); err != nil {
			return nil, fmt.Errorf("row %d: %w", b, err)
		}
	}
	return out, nil
}

// Dense returns m as a dense gonum matrix.
func (m *CSR) Dense() *mat.Dense {
	d := mat.NewDense(m.rows, m.cols, nil)
	for i := range m.rows {
		for k := m.indptr[i]; k < m.indptr[i+1]; k++ {
			d.Set(i, m.indices[k], m.data[k])
		}
	}
	return d
}

// builder accumulates (row, col, value) triplets; duplicates are summed.
type builder struct {
	rows, cols int
	entries    []map[int]float64
}

func newBuilder(rows, cols int) *builder {
	return &builder{
		rows:    rows,
		cols:    cols,
		entries: make([]map[int]float64, rows),
	}
}

func (b *builder) add(i, j int, v float64) {
	if b.entries[i] == nil {
		b.entries[i] = make(map[int]float64)
	}
	b.entries[i][j] += v
}

func (b *builder) build() *CSR {
	m := &CSR{
		rows:   b.rows,
		cols:   b.cols,
		indptr: make([]int, b.rows+1),
	}
	for i, row := range b.entries {
		cols := make([]int, 0, len(row))
		for j, v := range row {
			if v != 0 {
				cols = append(cols, j)
			}
		}
		slices.Sort(cols)
		for _, j := range cols {
			m.indices = append(m.indices, j)
			m.data = append(m.data, row[j])
		}
		m.indptr[i+1] = len(m.data)
	}
	return m
}
