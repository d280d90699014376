// Package pad extends finite signals beyond their edges.
//
// The supported boundary modes follow the conventions of common array
// libraries so that padded transforms stay numerically comparable with the
// reference wavelet implementation:
//
//	input            1 2 3 4
//	ModeReflect    3 2 1 2 3 4 3 2   (mirror, edge sample not repeated)
//	ModeSymmetric  2 1 1 2 3 4 4 3   (mirror, edge sample repeated)
//	ModeReplicate  1 1 1 2 3 4 4 4
//	ModeCircular   3 4 1 2 3 4 1 2
//	ModeZero       0 0 1 2 3 4 0 0
//
// Mirrored and circular modes repeat their pattern when the pad is longer
// than the signal, so any pad amount is valid for any non-empty input.
package pad

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by padding functions.
var (
	ErrUnknownMode = errors.New("pad: unknown mode")
	ErrEmptyInput  = errors.New("pad: empty input")
	ErrNegativePad = errors.New("pad: negative pad amount")
	ErrLength      = errors.New("pad: buffer length mismatch")
)

// Mode selects the boundary extension strategy.
type Mode string

// Supported modes.
const (
	ModeReflect   Mode = "reflect"
	ModeSymmetric Mode = "symmetric"
	ModeReplicate Mode = "replicate"
	ModeCircular  Mode = "circular"
	ModeZero      Mode = "zero"
	// ModeConstant is the array-library name of ModeZero.
	ModeConstant Mode = "constant"
)

// ParseMode converts a mode name into a Mode. Names are case-insensitive;
// "periodic" and "edge" are accepted as aliases of circular and replicate.
func ParseMode(name string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(name)))
	switch m {
	case ModeReflect, ModeSymmetric, ModeReplicate, ModeCircular, ModeZero:
		return m, nil
	case ModeConstant:
		return ModeZero, nil
	case "periodic":
		return ModeCircular, nil
	case "edge":
		return ModeReplicate, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Valid reports whether m is a supported mode.
func (m Mode) Valid() bool {
	_, err := ParseMode(string(m))
	return err == nil
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	return string(m)
}

// Index maps position i of the infinitely extended signal of length n to a
// source index in [0, n). ok is false when the position reads an implicit
// zero (ModeZero outside the signal). n must be positive.
func (m Mode) Index(i, n int) (idx int, ok bool) {
	if i >= 0 && i < n {
		return i, true
	}

	switch m {
	case ModeZero, ModeConstant:
		return 0, false
	case ModeReplicate:
		if i < 0 {
			return 0, true
		}
		return n - 1, true
	case ModeCircular:
		return mod(i, n), true
	case ModeSymmetric:
		p := 2 * n
		i = mod(i, p)
		if i >= n {
			i = p - 1 - i
		}
		return i, true
	default: // ModeReflect
		if n == 1 {
			return 0, true
		}
		p := 2 * (n - 1)
		i = mod(i, p)
		if i >= n {
			i = p - i
		}
		return i, true
	}
}

// Apply returns x extended by left samples before and right samples after
// its edges.
func Apply(x []float64, left, right int, m Mode) ([]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if left < 0 || right < 0 {
		return nil, fmt.Errorf("%w: left=%d right=%d", ErrNegativePad, left, right)
	}
	mode, err := ParseMode(string(m))
	if err != nil {
		return nil, err
	}

	out := make([]float64, left+len(x)+right)
	fill(out, x, left, mode)
	return out, nil
}

// ApplyTo writes the extension of x into dst, which must have length
// left + len(x) + right for some non-negative right.
func ApplyTo(dst, x []float64, left int, m Mode) error {
	if len(x) == 0 {
		return ErrEmptyInput
	}
	if left < 0 || len(dst) < left+len(x) {
		return fmt.Errorf("%w: dst=%d left=%d src=%d", ErrLength, len(dst), left, len(x))
	}
	mode, err := ParseMode(string(m))
	if err != nil {
		return err
	}
	fill(dst, x, left, mode)
	return nil
}

// Apply2D pads a row-major height×width plane on all four sides and returns
// the padded plane together with its new height and width.
func Apply2D(plane []float64, height, width, top, bottom, left, right int, m Mode) (out []float64, outH, outW int, err error) {
	if height <= 0 || width <= 0 {
		return nil, 0, 0, ErrEmptyInput
	}
	if len(plane) != height*width {
		return nil, 0, 0, fmt.Errorf("%w: plane=%d, want %dx%d", ErrLength, len(plane), height, width)
	}
	if top < 0 || bottom < 0 || left < 0 || right < 0 {
		return nil, 0, 0, fmt.Errorf("%w: top=%d bottom=%d left=%d right=%d", ErrNegativePad, top, bottom, left, right)
	}
	mode, err := ParseMode(string(m))
	if err != nil {
		return nil, 0, 0, err
	}

	outH = top + height + bottom
	outW = left + width + right
	out = make([]float64, outH*outW)
	for y := range outH {
		dst := out[y*outW : (y+1)*outW]
		src, ok := mode.Index(y-top, height)
		if !ok {
			continue
		}
		fill(dst, plane[src*width:(src+1)*width], left, mode)
	}
	return out, outH, outW, nil
}

func fill(dst, x []float64, left int, mode Mode) {
	n := len(x)
	copy(dst[left:left+n], x)
	for i := range left {
		dst[i] = at(x, i-left, mode)
	}
	for i := left + n; i < len(dst); i++ {
		dst[i] = at(x, i-left, mode)
	}
}

func at(x []float64, i int, mode Mode) float64 {
	idx, ok := mode.Index(i, len(x))
	if !ok {
		return 0
	}
	return x[idx]
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
