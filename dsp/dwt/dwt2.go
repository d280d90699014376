package dwt

import (
	"fmt"

	"github.com/cwbudde/algo-wavelet/dsp/conv"
	"github.com/cwbudde/algo-wavelet/dsp/pad"
	"github.com/cwbudde/algo-wavelet/dsp/wavelet"
)

// Wavedec2 computes the multi-level 2-D decomposition of every plane of
// data. The default level is the largest level that fits both axes.
func Wavedec2(data *Planes, w wavelet.Source, opts ...Option) (Coeffs2, error) {
	cfg := applyOptions(opts)
	if err := data.Validate(); err != nil {
		return Coeffs2{}, err
	}
	mode, err := pad.ParseMode(string(cfg.mode))
	if err != nil {
		return Coeffs2{}, err
	}
	bank, err := wavelet.Build(w, true)
	if err != nil {
		return Coeffs2{}, err
	}
	L := bank.Len()
	level, err := ResolveLevel(cfg.level, wavelet.MaxLevelN([]int{data.Height, data.Width}, L))
	if err != nil {
		return Coeffs2{}, err
	}

	// Allocate every band up front so workers write disjoint planes.
	c := Coeffs2{Details: make([]Detail2, level)}
	h, w2 := data.Height, data.Width
	for l := 1; l <= level; l++ {
		h, w2 = BandLen(h, L), BandLen(w2, L)
		c.Details[level-l] = Detail2{
			H: NewPlanes(data.Batch, data.Channels, h, w2),
			V: NewPlanes(data.Batch, data.Channels, h, w2),
			D: NewPlanes(data.Batch, data.Channels, h, w2),
		}
	}
	c.Approx = NewPlanes(data.Batch, data.Channels, h, w2)

	filt := bank.Analysis2D()
	err = forEach(data.Count(), cfg.workers, func(i int) error {
		ll := data.Plane(i)
		ph, pw := data.Height, data.Width
		for l := 1; l <= level; l++ {
			bands, oh, ow, err := analyze2(ll, ph, pw, filt, L, mode)
			if err != nil {
				return err
			}
			d := c.Details[level-l]
			copy(d.H.Plane(i), bands[1])
			copy(d.V.Plane(i), bands[2])
			copy(d.D.Plane(i), bands[3])
			ll, ph, pw = bands[0], oh, ow
		}
		copy(c.Approx.Plane(i), ll)
		return nil
	})
	if err != nil {
		return Coeffs2{}, err
	}
	return c, nil
}

// Waverec2 reconstructs the planes of a decomposition produced by Wavedec2.
func Waverec2(c Coeffs2, w wavelet.Source, opts ...Option) (*Planes, error) {
	cfg := applyOptions(opts)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	bank, err := wavelet.Build(w, false)
	if err != nil {
		return nil, err
	}
	L := bank.Len()

	// Output geometry follows from the band sizes alone.
	h, w2 := c.Approx.Height, c.Approx.Width
	for pos := range c.Details {
		nextH, nextW := -1, -1
		if pos+1 < len(c.Details) {
			nextH, nextW = c.Details[pos+1].H.Height, c.Details[pos+1].H.Width
		}
		top, bottom, err := crop(conv.TransposedLen(h, L, 2), L, nextH)
		if err != nil {
			return nil, fmt.Errorf("level %d height: %w", len(c.Details)-pos, err)
		}
		left, right, err := crop(conv.TransposedLen(w2, L, 2), L, nextW)
		if err != nil {
			return nil, fmt.Errorf("level %d width: %w", len(c.Details)-pos, err)
		}
		h = conv.TransposedLen(h, L, 2) - top - bottom
		w2 = conv.TransposedLen(w2, L, 2) - left - right
	}

	out := NewPlanes(c.Approx.Batch, c.Approx.Channels, h, w2)
	filt := bank.Synthesis2D()
	err = forEach(out.Count(), cfg.workers, func(i int) error {
		ll := c.Approx.Plane(i)
		ph, pw := c.Approx.Height, c.Approx.Width
		for pos, d := range c.Details {
			nextH, nextW := -1, -1
			if pos+1 < len(c.Details) {
				nextH, nextW = c.Details[pos+1].H.Height, c.Details[pos+1].H.Width
			}
			bands := [4][]float64{ll, d.H.Plane(i), d.V.Plane(i), d.D.Plane(i)}
			rec, rh, rw, err := synthesize2(bands, ph, pw, filt, L, nextH, nextW)
			if err != nil {
				return err
			}
			ll, ph, pw = rec, rh, rw
		}
		copy(out.Plane(i), ll)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// analyze2 runs one 2-D analysis level on a single plane and returns the
// LL, LH, HL and HH bands.
func analyze2(plane []float64, h, w int, filt [4][]float64, L int, mode pad.Mode) (bands [4][]float64, oh, ow int, err error) {
	ph := PadFor(h, L)
	pw := PadFor(w, L)
	padded, H, W, err := pad.Apply2D(plane, h, w, ph.Left, ph.Right, pw.Left, pw.Right, mode)
	if err != nil {
		return bands, 0, 0, err
	}
	for k := range bands {
		bands[k], oh, ow, err = conv.Strided2D(padded, H, W, filt[k], L, L, 2)
		if err != nil {
			return bands, 0, 0, err
		}
	}
	return bands, oh, ow, nil
}

// synthesize2 runs one 2-D synthesis level on a single plane. nextH and
// nextW are the size of the next finer band, or -1 at the finest level.
func synthesize2(bands [4][]float64, h, w int, filt [4][]float64, L, nextH, nextW int) ([]float64, int, int, error) {
	fullH := conv.TransposedLen(h, L, 2)
	fullW := conv.TransposedLen(w, L, 2)
	full := make([]float64, fullH*fullW)
	for k := range bands {
		if err := conv.Transposed2DAddTo(full, bands[k], h, w, filt[k], L, L, 2); err != nil {
			return nil, 0, 0, err
		}
	}

	top, bottom, err := crop(fullH, L, nextH)
	if err != nil {
		return nil, 0, 0, err
	}
	left, right, err := crop(fullW, L, nextW)
	if err != nil {
		return nil, 0, 0, err
	}

	outH := fullH - top - bottom
	outW := fullW - left - right
	out := make([]float64, outH*outW)
	for y := range outH {
		src := full[(y+top)*fullW+left:]
		copy(out[y*outW:(y+1)*outW], src[:outW])
	}
	return out, outH, outW, nil
}
