package conv

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-wavelet/internal/testutil"
)

func TestStrided(t *testing.T) {
	tests := []struct {
		name     string
		x        []float64
		kernel   []float64
		stride   int
		expected []float64
	}{
		{
			name:     "pairwise sums",
			x:        []float64{1, 2, 3, 4, 5, 6},
			kernel:   []float64{1, 1},
			stride:   2,
			expected: []float64{3, 7, 11},
		},
		{
			name:     "stride 1",
			x:        []float64{1, 2, 3},
			kernel:   []float64{1, 2},
			stride:   1,
			expected: []float64{5, 8},
		},
		{
			name:     "odd tail dropped",
			x:        []float64{1, 2, 3, 4, 5},
			kernel:   []float64{1, 0, -1},
			stride:   2,
			expected: []float64{-2, -2},
		},
		{
			name:     "kernel equals input",
			x:        []float64{1, 2, 3},
			kernel:   []float64{3, 2, 1},
			stride:   2,
			expected: []float64{10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Strided(tt.x, tt.kernel, tt.stride)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, got, tt.expected, 1e-12)

			dst := make([]float64, StridedLen(len(tt.x), len(tt.kernel), tt.stride))
			if err := StridedTo(dst, tt.x, tt.kernel, tt.stride); err != nil {
				t.Fatalf("StridedTo() error = %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, dst, tt.expected, 1e-12)
		})
	}
}

func TestStridedErrors(t *testing.T) {
	if _, err := Strided(nil, []float64{1}, 2); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := Strided([]float64{1}, nil, 2); !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}
	if _, err := Strided([]float64{1, 2}, []float64{1}, 0); !errors.Is(err, ErrInvalidStride) {
		t.Errorf("expected ErrInvalidStride, got %v", err)
	}
	if _, err := Strided([]float64{1, 2}, []float64{1, 2, 3}, 2); !errors.Is(err, ErrShortInput) {
		t.Errorf("expected ErrShortInput, got %v", err)
	}
	if err := StridedTo(make([]float64, 3), []float64{1, 2, 3, 4}, []float64{1, 1}, 2); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestTransposed(t *testing.T) {
	got, err := Transposed([]float64{1, 2}, []float64{1, 1, 1}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 1, 3, 2, 2}, 1e-12)

	// Accumulation into an existing buffer.
	dst := []float64{1, 1, 1, 1, 1}
	if err := TransposedAddTo(dst, []float64{1, 2}, []float64{1, 1, 1}, 2); err != nil {
		t.Fatalf("TransposedAddTo() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, dst, []float64{2, 2, 4, 3, 3}, 1e-12)

	if err := TransposedAddTo(make([]float64, 4), []float64{1, 2}, []float64{1, 1, 1}, 2); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
	if _, err := Transposed([]float64{1}, []float64{1}, -1); !errors.Is(err, ErrInvalidStride) {
		t.Errorf("expected ErrInvalidStride, got %v", err)
	}
}

func TestTransposedImpulse(t *testing.T) {
	for _, m := range []int{3, 80} {
		kernel := testutil.DeterministicNoise(int64(m), 1, m)
		x := testutil.Impulse(4, 2)
		got, err := Transposed(x, kernel, 2)
		if err != nil {
			t.Fatalf("m=%d: unexpected error: %v", m, err)
		}
		if len(got) != TransposedLen(4, m, 2) {
			t.Fatalf("m=%d: len = %d, want %d", m, len(got), TransposedLen(4, m, 2))
		}
		want := make([]float64, len(got))
		copy(want[4:], kernel)
		testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
	}
}

func TestStridedFFTMatchesDirect(t *testing.T) {
	x := testutil.DeterministicNoise(1, 1, 301)
	for _, m := range []int{2, 7, 64, 97} {
		kernel := testutil.DeterministicNoise(int64(m), 1, m)
		for _, stride := range []int{1, 2, 3} {
			direct, err := StridedDirect(x, kernel, stride)
			if err != nil {
				t.Fatalf("StridedDirect() error = %v", err)
			}
			fft, err := StridedFFT(x, kernel, stride)
			if err != nil {
				t.Fatalf("StridedFFT() error = %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, fft, direct, 1e-9)
		}
	}
}

func TestTransposedFFTMatchesDirect(t *testing.T) {
	x := testutil.DeterministicNoise(2, 1, 150)
	for _, m := range []int{2, 6, 80} {
		kernel := testutil.DeterministicNoise(int64(m), 1, m)
		for _, stride := range []int{1, 2} {
			direct, err := TransposedDirect(x, kernel, stride)
			if err != nil {
				t.Fatalf("TransposedDirect() error = %v", err)
			}
			fft, err := TransposedFFT(x, kernel, stride)
			if err != nil {
				t.Fatalf("TransposedFFT() error = %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, fft, direct, 1e-9)
		}
	}
}

// Transposed is the adjoint of Strided: <S x, y> == <x, T y>.
func TestTransposedIsAdjoint(t *testing.T) {
	kernel := []float64{0.3, -1.2, 0.7, 2.1}
	const stride = 2
	y := testutil.DeterministicNoise(3, 1, 9)
	n := TransposedLen(len(y), len(kernel), stride)
	x := testutil.DeterministicNoise(4, 1, n)

	sx, err := Strided(x, kernel, stride)
	if err != nil {
		t.Fatalf("Strided() error = %v", err)
	}
	ty, err := Transposed(y, kernel, stride)
	if err != nil {
		t.Fatalf("Transposed() error = %v", err)
	}
	if len(sx) != len(y) || len(ty) != len(x) {
		t.Fatalf("shape mismatch: %d/%d %d/%d", len(sx), len(y), len(ty), len(x))
	}

	var lhs, rhs float64
	for i := range y {
		lhs += sx[i] * y[i]
	}
	for i := range x {
		rhs += x[i] * ty[i]
	}
	testutil.RequireNearlyEqual(t, lhs, rhs, 1e-10)
}

func TestStrided2D(t *testing.T) {
	plane := testutil.Ramp(1, 16)
	got, h, w, err := Strided2D(plane, 4, 4, []float64{1, 1, 1, 1}, 2, 2, 2)
	if err != nil {
		t.Fatalf("Strided2D() error = %v", err)
	}
	if h != 2 || w != 2 {
		t.Fatalf("shape = %dx%d, want 2x2", h, w)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{14, 22, 46, 54}, 1e-12)

	// Non-square kernel on a non-square plane.
	got, h, w, err = Strided2D(testutil.Ramp(0, 15), 3, 5, []float64{1, -1}, 1, 2, 2)
	if err != nil {
		t.Fatalf("Strided2D() error = %v", err)
	}
	if h != 2 || w != 2 {
		t.Fatalf("shape = %dx%d, want 2x2", h, w)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{-1, -1, -1, -1}, 1e-12)
}

func TestStrided2DMatchesSeparable(t *testing.T) {
	const h, w = 9, 12
	plane := testutil.DeterministicNoise(5, 1, h*w)
	col := []float64{0.5, -0.25, 1}
	row := []float64{2, 1, -1, 0.5}
	kernel := make([]float64, len(col)*len(row))
	for a, cv := range col {
		for b, rv := range row {
			kernel[a*len(row)+b] = cv * rv
		}
	}

	got, oh, ow, err := Strided2D(plane, h, w, kernel, len(col), len(row), 2)
	if err != nil {
		t.Fatalf("Strided2D() error = %v", err)
	}

	// Rows first, then columns.
	tmpW := StridedLen(w, len(row), 2)
	tmp := make([]float64, h*tmpW)
	for i := range h {
		if err := StridedTo(tmp[i*tmpW:(i+1)*tmpW], plane[i*w:(i+1)*w], row, 2); err != nil {
			t.Fatalf("StridedTo() error = %v", err)
		}
	}
	want := make([]float64, oh*ow)
	column := make([]float64, h)
	for j := range tmpW {
		for i := range h {
			column[i] = tmp[i*tmpW+j]
		}
		out, err := Strided(column, col, 2)
		if err != nil {
			t.Fatalf("Strided() error = %v", err)
		}
		for i, v := range out {
			want[i*ow+j] = v
		}
	}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-12)
}

func TestTransposed2DAddTo(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	dst := make([]float64, 4*4)
	if err := Transposed2DAddTo(dst, x, 2, 2, []float64{1, 1, 1, 1}, 2, 2, 2); err != nil {
		t.Fatalf("Transposed2DAddTo() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, dst, []float64{
		1, 1, 2, 2,
		1, 1, 2, 2,
		3, 3, 4, 4,
		3, 3, 4, 4,
	}, 0)

	if err := Transposed2DAddTo(make([]float64, 15), x, 2, 2, []float64{1, 1, 1, 1}, 2, 2, 2); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
	if _, _, _, err := Strided2D(x, 2, 2, []float64{1, 1, 1}, 1, 3, 1); !errors.Is(err, ErrShortInput) {
		t.Errorf("expected ErrShortInput, got %v", err)
	}
	if _, _, _, err := Strided2D(x, 3, 2, []float64{1}, 1, 1, 1); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
}
