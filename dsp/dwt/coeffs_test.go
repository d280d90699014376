package dwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-wavelet/internal/testutil"
)

func TestCoeffsAccessors(t *testing.T) {
	c := Coeffs{
		Band{{1, 2}, {3, 4}},
		Band{{5, 6}, {7, 8}},
		Band{{9, 10, 11}, {12, 13, 14}},
	}
	require.NoError(t, c.Validate())
	assert.Equal(t, 2, c.Level())
	assert.Equal(t, 2, c.Batch())
	assert.Equal(t, []int{2, 2, 3}, c.Lengths())
	assert.Equal(t, c[0], c.Approx())
	assert.Equal(t, c[2], c.Detail(1))
	assert.Equal(t, c[1], c.Detail(2))
	assert.Nil(t, c.Detail(0))
	assert.Nil(t, c.Detail(3))

	var empty Coeffs
	assert.Equal(t, 0, empty.Level())
	assert.Equal(t, 0, empty.Batch())
	assert.Nil(t, empty.Approx())
}

func TestFlattenUnflatten(t *testing.T) {
	db2 := mustLookup(t, "db2")
	data := [][]float64{
		testutil.DeterministicNoise(1, 1, 45),
		testutil.DeterministicNoise(2, 1, 45),
	}
	c, err := Wavedec(data, db2, WithLevel(3))
	require.NoError(t, err)

	flat := c.Flatten()
	require.Len(t, flat, 2)
	total := 0
	for _, n := range c.Lengths() {
		total += n
	}
	require.Len(t, flat[0], total)

	back, err := Unflatten(flat, c.Lengths())
	require.NoError(t, err)
	assert.Equal(t, c, back)

	// The restored coefficients still reconstruct the input.
	out, err := Waverec(back, db2)
	require.NoError(t, err)
	testutil.RequireSliceNearlyEqual(t, out[1][:45], data[1], 1e-9)
}

func TestUnflattenErrors(t *testing.T) {
	_, err := Unflatten(nil, []int{1})
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = Unflatten([][]float64{{1, 2, 3}}, []int{1, 1})
	require.ErrorIs(t, err, ErrShape)

	_, err = Unflatten([][]float64{{1, 2}}, []int{2, 0})
	require.ErrorIs(t, err, ErrShape)
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		c    Coeffs
	}{
		{"batch mismatch", Coeffs{Band{{1}, {2}}, Band{{1}}}},
		{"ragged rows", Coeffs{Band{{1, 2}, {3}}, Band{{1, 2}, {3, 4}}}},
		{"empty band", Coeffs{Band{{}}, Band{{}}}},
		{"approx detail mismatch", Coeffs{Band{{1, 2}}, Band{{1, 2, 3}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.c.Validate(), ErrShape)
		})
	}
}

func TestEnergyHaar(t *testing.T) {
	haar := mustLookup(t, "haar")
	x := testutil.DeterministicNoise(4, 1, 64)
	c, err := WavedecSignal(x, haar)
	require.NoError(t, err)

	var want, got float64
	for _, v := range x {
		want += v * v
	}
	for _, e := range c.Energy() {
		got += e
	}
	assert.InDelta(t, want, got, 1e-9)
}

func TestCoeffs2FlattenUnflatten(t *testing.T) {
	db2 := mustLookup(t, "db2")
	c, err := Wavedec2(noisePlanes(3, 2, 1, 24, 18), db2, WithLevel(2))
	require.NoError(t, err)

	bands := c.Flatten()
	require.Len(t, bands, 7)
	assert.Same(t, c.Approx, bands[0])
	assert.Same(t, c.Details[0].V, bands[2])
	assert.Same(t, c.Details[1].D, bands[6])

	values := c.FlattenValues()
	require.Len(t, values, 7)
	assert.Equal(t, c.Details[1].H.Data, values[4])
	values[4][0] += 1
	assert.NotEqual(t, c.Details[1].H.Data[0], values[4][0])

	back, err := Unflatten2(bands)
	require.NoError(t, err)
	assert.Equal(t, c, back)

	_, err = Unflatten2(bands[:3])
	require.ErrorIs(t, err, ErrShape)
	_, err = Unflatten2([]*Planes{bands[0], bands[4], bands[5], bands[6]})
	require.ErrorIs(t, err, ErrShape)
}

func TestPlanes(t *testing.T) {
	p := NewPlanes(2, 3, 4, 5)
	require.NoError(t, p.Validate())
	assert.Equal(t, 6, p.Count())

	p.Set(1, 2, 3, 4, 7)
	assert.InDelta(t, 7.0, p.Data[len(p.Data)-1], 0)
	assert.InDelta(t, 7.0, p.Plane(5)[19], 0)
	assert.InDelta(t, 7.0, p.At(1, 2, 3, 4), 0)

	q := p.Clone()
	q.Set(0, 0, 0, 0, 1)
	assert.InDelta(t, 0.0, p.At(0, 0, 0, 0), 0)

	var nilPlanes *Planes
	require.ErrorIs(t, nilPlanes.Validate(), ErrEmptyInput)
	require.ErrorIs(t, (&Planes{Batch: 1, Channels: 1, Height: 0, Width: 2}).Validate(), ErrEmptyInput)
}
