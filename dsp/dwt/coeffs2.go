package dwt

import "fmt"

// Detail2 holds the three detail bands of one 2-D level. H comes from the
// high-pass filter along height (LH), V from the high-pass filter along
// width (HL) and D from both (HH).
type Detail2 struct {
	H *Planes
	V *Planes
	D *Planes
}

// Coeffs2 is a 2-D decomposition. Details are ordered coarsest first.
type Coeffs2 struct {
	Approx  *Planes
	Details []Detail2
}

// Level returns the number of detail levels.
func (c Coeffs2) Level() int {
	return len(c.Details)
}

// Flatten returns the bands in order [LL_n, H_n, V_n, D_n, ..., H_1, V_1, D_1].
// The planes are shared, not copied.
func (c Coeffs2) Flatten() []*Planes {
	out := make([]*Planes, 0, 1+3*len(c.Details))
	out = append(out, c.Approx)
	for _, d := range c.Details {
		out = append(out, d.H, d.V, d.D)
	}
	return out
}

// FlattenValues returns a copy of the data of every band in Flatten order.
func (c Coeffs2) FlattenValues() [][]float64 {
	bands := c.Flatten()
	out := make([][]float64, len(bands))
	for i, p := range bands {
		out[i] = append([]float64(nil), p.Data...)
	}
	return out
}

// Validate checks that all bands share batch and channel counts and that
// the three bands of each level and the approximation agree in size.
func (c Coeffs2) Validate() error {
	if err := c.Approx.Validate(); err != nil {
		return err
	}
	for i, d := range c.Details {
		for _, p := range []*Planes{d.H, d.V, d.D} {
			if err := p.Validate(); err != nil {
				return fmt.Errorf("level %d: %w", len(c.Details)-i, err)
			}
			if p.Batch != c.Approx.Batch || p.Channels != c.Approx.Channels {
				return fmt.Errorf("%w: level %d has [%d %d] planes, want [%d %d]",
					ErrShape, len(c.Details)-i, p.Batch, p.Channels, c.Approx.Batch, c.Approx.Channels)
			}
		}
		if !d.H.sameShape(d.V) || !d.H.sameShape(d.D) {
			return fmt.Errorf("%w: level %d detail bands differ in size", ErrShape, len(c.Details)-i)
		}
	}
	if len(c.Details) > 0 {
		h := c.Details[0].H
		if h.Height != c.Approx.Height || h.Width != c.Approx.Width {
			return fmt.Errorf("%w: approximation %dx%d, coarsest detail %dx%d",
				ErrShape, c.Approx.Height, c.Approx.Width, h.Height, h.Width)
		}
	}
	return nil
}

// Unflatten2 rebuilds a 2-D decomposition from bands in Flatten order.
func Unflatten2(bands []*Planes) (Coeffs2, error) {
	if len(bands) == 0 || (len(bands)-1)%3 != 0 {
		return Coeffs2{}, fmt.Errorf("%w: %d bands, want 1+3k", ErrShape, len(bands))
	}
	c := Coeffs2{Approx: bands[0]}
	for i := 1; i < len(bands); i += 3 {
		c.Details = append(c.Details, Detail2{H: bands[i], V: bands[i+1], D: bands[i+2]})
	}
	if err := c.Validate(); err != nil {
		return Coeffs2{}, err
	}
	return c, nil
}
