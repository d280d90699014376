package wavelet

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// Errors returned by wavelet construction and lookup.
var (
	ErrInvalidSpec    = errors.New("wavelet: invalid filter bank")
	ErrUnknownWavelet = errors.New("wavelet: unknown wavelet")
)

// Source is the capability the transforms consume: a named filter bank.
//
// Implementations may compute the filters on every call (see [Learnable]);
// callers must not modify the returned slices.
type Source interface {
	Name() string
	FilterBank() (decLo, decHi, recLo, recHi []float64)
}

// Wavelet is an immutable filter bank backed by a static coefficient table.
type Wavelet struct {
	name  string
	decLo []float64
	decHi []float64
	recLo []float64
	recHi []float64
}

// New creates a wavelet from explicit filters. The slices are copied.
func New(name string, decLo, decHi, recLo, recHi []float64) (*Wavelet, error) {
	if err := validate(decLo, decHi, recLo, recHi); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &Wavelet{
		name:  name,
		decLo: clone(decLo),
		decHi: clone(decHi),
		recLo: clone(recLo),
		recHi: clone(recHi),
	}, nil
}

// Orthogonal derives the full bank of an orthogonal wavelet from its
// reconstruction scaling filter h:
//
//	rec_lo[k] = h[k]
//	rec_hi[k] = (-1)^k h[L-1-k]
//	dec_lo    = reverse(rec_lo)
//	dec_hi    = reverse(rec_hi)
func Orthogonal(name string, scaling []float64) (*Wavelet, error) {
	if len(scaling) < 2 {
		return nil, fmt.Errorf("%w: %s: scaling filter length %d < 2", ErrInvalidSpec, name, len(scaling))
	}
	decLo, decHi, recLo, recHi := qmf(scaling)
	return &Wavelet{name: name, decLo: decLo, decHi: decHi, recLo: recLo, recHi: recHi}, nil
}

// Name returns the wavelet name.
func (w *Wavelet) Name() string {
	return w.name
}

// FilterBank returns the four filters in published orientation.
func (w *Wavelet) FilterBank() (decLo, decHi, recLo, recHi []float64) {
	return w.decLo, w.decHi, w.recLo, w.recHi
}

// Len returns the filter length L.
func (w *Wavelet) Len() int {
	return len(w.decLo)
}

// String implements fmt.Stringer.
func (w *Wavelet) String() string {
	return fmt.Sprintf("%s(L=%d)", w.name, len(w.decLo))
}

// catalog holds reconstruction scaling filters (rec_lo) of orthogonal
// wavelets as published by PyWavelets.
var catalog = map[string][]float64{
	"haar": {math.Sqrt2 / 2, math.Sqrt2 / 2},
	"db1":  {math.Sqrt2 / 2, math.Sqrt2 / 2},
	"db2": {
		0.48296291314469025, 0.836516303737469,
		0.22414386804185735, -0.12940952255092145,
	},
	"db3": {
		0.3326705529509569, 0.8068915093133388, 0.4598775021193313,
		-0.13501102001039084, -0.08544127388224149, 0.035226291882100656,
	},
	"db4": {
		0.23037781330885523, 0.7148465705525415, 0.6308807679295904,
		-0.02798376941698385, -0.18703481171888114, 0.030841381835986965,
		0.032883011666982945, -0.010597401784997278,
	},
	"sym4": {
		0.0322231006040427, -0.012603967262037833, -0.09921954357684722,
		0.29785779560527736, 0.8037387518059161, 0.49761866763201545,
		-0.02963552764599851, -0.07576571478927333,
	},
	"coif1": {
		-0.0727326195128539, 0.3378976624578092, 0.8525720202122554,
		0.38486484686420286, -0.0727326195128539, -0.01565572813546454,
	},
}

// aliases maps catalog names that share coefficients.
var aliases = map[string]string{
	"sym2": "db2",
	"sym3": "db3",
}

// Lookup returns the catalog wavelet with the given (case-insensitive) name.
func Lookup(name string) (*Wavelet, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	h, ok := catalog[key]
	if !ok {
		alias, isAlias := aliases[key]
		if !isAlias {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWavelet, name)
		}
		h = catalog[alias]
	}
	return Orthogonal(key, h)
}

// Names returns the sorted list of catalog names.
func Names() []string {
	names := make([]string, 0, len(catalog)+len(aliases))
	for name := range catalog {
		names = append(names, name)
	}
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func qmf(h []float64) (decLo, decHi, recLo, recHi []float64) {
	n := len(h)
	recLo = clone(h)
	recHi = make([]float64, n)
	for k := range n {
		v := h[n-1-k]
		if k%2 == 1 {
			v = -v
		}
		recHi[k] = v
	}
	return reversed(recLo), reversed(recHi), recLo, recHi
}

func validate(decLo, decHi, recLo, recHi []float64) error {
	n := len(decLo)
	if n < 2 {
		return fmt.Errorf("%w: filter length %d < 2", ErrInvalidSpec, n)
	}
	if len(decHi) != n || len(recLo) != n || len(recHi) != n {
		return fmt.Errorf("%w: unequal filter lengths %d/%d/%d/%d",
			ErrInvalidSpec, len(decLo), len(decHi), len(recLo), len(recHi))
	}
	return nil
}

func clone(s []float64) []float64 {
	c := make([]float64, len(s))
	copy(c, s)
	return c
}

func reversed(s []float64) []float64 {
	r := make([]float64, len(s))
	for i, v := range s {
		r[len(s)-1-i] = v
	}
	return r
}
